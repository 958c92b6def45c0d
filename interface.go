package cqljdbc

import (
	"encoding/hex"
)

// RawColumn is one column of a raw row, exactly as delivered by the
// transport layer: undecoded name and value bytes plus the write metadata
// the server attaches to every cell.
type RawColumn struct {
	Name  []byte
	Value []byte

	// Timestamp and TTL are carried through untouched; decoding ignores
	// them.
	Timestamp int64
	TTL       int32
}

// RawRow is one undecoded record: the row key and its ordered columns.
type RawRow struct {
	Key     []byte
	Columns []RawColumn
}

// RowSource is a forward-only pull source of raw rows.  Next returns io.EOF
// once the source is exhausted.  Implementations must not block on I/O of
// their own; rows are assumed pre-fetched, or the source handles its own
// blocking.
type RowSource interface {
	Next() (*RawRow, error)
	Close() error
}

// Schema maps column names to the type tags that select a codec for their
// name and value bytes.  Columns absent from a map fall back to the
// per-result default tag.
type Schema struct {
	DefaultNameType  string
	DefaultValueType string
	NameTypes        map[string]string
	ValueTypes       map[string]string
}

// NameTypeTag resolves the tag used to decode a column's name bytes.
func (s *Schema) NameTypeTag(name []byte) string {
	if tag, ok := s.NameTypes[string(name)]; ok {
		return tag
	}
	return s.DefaultNameType
}

// ValueTypeTag resolves the tag used to decode a column's value bytes.
func (s *Schema) ValueTypeTag(name []byte) string {
	if tag, ok := s.ValueTypes[string(name)]; ok {
		return tag
	}
	return s.DefaultValueType
}

// CollectionShape marks a column as logically a list, set, or map even
// though its value was decoded through a scalar codec.
type CollectionShape uint8

const (
	NotCollection CollectionShape = iota
	ListShape
	SetShape
	MapShape
)

func (s CollectionShape) String() string {
	switch s {
	case ListShape:
		return "list"
	case SetShape:
		return "set"
	case MapShape:
		return "map"
	default:
		return "none"
	}
}

// RowID identifies a row by its raw key bytes; no decoding is applied.
type RowID []byte

func (r RowID) String() string {
	return hex.EncodeToString(r)
}
