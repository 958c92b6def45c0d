package resultset

import (
	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
	"github.com/TW-Brandon/cassandra-jdbc/codec"
)

// TypedColumn is one materialized cell: the raw bytes, the decoded native
// value, the codecs that decoded them, and the collection shape.
//
// Invariant: Value() is nil iff the raw value bytes are absent or empty.
type TypedColumn struct {
	name     string
	rawName  []byte
	rawValue []byte
	value    cqljdbc.Value

	typeTag    string
	nameCodec  codec.Codec
	valueCodec codec.Codec
	shape      cqljdbc.CollectionShape
}

// Name is the column name decoded through the name codec.
func (c *TypedColumn) Name() string {
	return c.name
}

// Value is the decoded native value; nil when the column value is absent.
func (c *TypedColumn) Value() cqljdbc.Value {
	return c.value
}

// RawValue returns a copy of the raw value bytes, or nil when absent.
func (c *TypedColumn) RawValue() []byte {
	if c.rawValue == nil {
		return nil
	}
	raw := make([]byte, len(c.rawValue))
	copy(raw, c.rawValue)
	return raw
}

// ValueString is the textual rendering of the value; empty when absent.
func (c *TypedColumn) ValueString() string {
	if c.value == nil {
		return ""
	}
	return c.value.String()
}

// TypeTag is the resolved value type tag, e.g. "Int32Type".
func (c *TypedColumn) TypeTag() string {
	return c.typeTag
}

// Codec is the codec that decoded the value bytes.
func (c *TypedColumn) Codec() codec.Codec {
	return c.valueCodec
}

// Shape reports whether the column is logically a list, set, or map.
func (c *TypedColumn) Shape() cqljdbc.CollectionShape {
	return c.shape
}
