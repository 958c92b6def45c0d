package codec

import (
	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

var (
	Ascii Codec = textCodec{}
	UTF8  Codec = textCodec{}
)

type textCodec struct{}

func (textCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	return cqljdbc.String(raw), nil
}

func (textCodec) Kind() cqljdbc.Kind {
	return cqljdbc.KindString
}

func (textCodec) JDBCType() int {
	return TypeVarchar
}

func (textCodec) Precision(v cqljdbc.Value) int {
	if v == nil {
		return -1
	}
	return len(v.String())
}

func (textCodec) Scale(cqljdbc.Value) int {
	return 0
}

func (textCodec) Signed() bool {
	return false
}

func (textCodec) CaseSensitive() bool {
	return true
}

func (textCodec) Currency() bool {
	return false
}
