// Package codec maps type tags ("AsciiType", "Int32Type", ...) to the
// codecs that decode raw column bytes into native values and describe their
// JDBC-style metadata.
package codec

import (
	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

// Codec decodes raw column bytes into one variant of the value union and
// reports the metadata the result set surfaces per column.
type Codec interface {
	// Decode converts non-empty raw bytes into a native value.  Absent or
	// empty values never reach a codec; the caller represents them as nil.
	Decode(raw []byte) (cqljdbc.Value, error)

	// Kind is the union variant Decode produces.
	Kind() cqljdbc.Kind

	// JDBCType is the java.sql.Types code for this codec's values.
	JDBCType() int

	Precision(v cqljdbc.Value) int
	Scale(v cqljdbc.Value) int
	Signed() bool
	CaseSensitive() bool
	Currency() bool
}

// Registry is an immutable table from type tag to codec, constructed once
// and passed into the result set.
type Registry struct {
	byTag map[string]Codec
}

// NewRegistry copies the given table into a Registry.
func NewRegistry(codecs map[string]Codec) *Registry {
	byTag := make(map[string]Codec, len(codecs))
	for tag, codec := range codecs {
		byTag[tag] = codec
	}
	return &Registry{byTag: byTag}
}

// Default returns a Registry covering the built-in marshal types.  The
// collection tags (ListType, SetType, MapType) are intentionally absent;
// resolution falls back to the ascii codec with the collection shape
// recorded on the column.
func Default() *Registry {
	return NewRegistry(map[string]Codec{
		"AsciiType":         Ascii,
		"UTF8Type":          UTF8,
		"BytesType":         Bytes,
		"BooleanType":       Boolean,
		"Int32Type":         Int32,
		"LongType":          Long,
		"CounterColumnType": Counter,
		"IntegerType":       Varint,
		"DecimalType":       Decimal,
		"FloatType":         Float,
		"DoubleType":        Double,
		"DateType":          Date,
		"UUIDType":          UUID,
		"TimeUUIDType":      TimeUUID,
		"LexicalUUIDType":   LexicalUUID,
	})
}

// Lookup resolves a type tag; ok is false for unregistered tags.
func (r *Registry) Lookup(tag string) (Codec, bool) {
	codec, ok := r.byTag[tag]
	return codec, ok
}
