package codec

import (
	"github.com/dropbox/godropbox/errors"
	"github.com/google/uuid"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

var (
	Bytes       Codec = bytesCodec{}
	UUID        Codec = uuidCodec{}
	TimeUUID    Codec = timeUUIDCodec{}
	LexicalUUID Codec = lexicalUUIDCodec{}
)

type bytesCodec struct{}

func (bytesCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	// Copy so the decoded value does not alias the source buffer.
	value := make(cqljdbc.Bytes, len(raw))
	copy(value, raw)
	return value, nil
}

func (bytesCodec) Kind() cqljdbc.Kind { return cqljdbc.KindBytes }
func (bytesCodec) JDBCType() int      { return TypeBinary }

func (bytesCodec) Precision(v cqljdbc.Value) int {
	b, ok := v.(cqljdbc.Bytes)
	if !ok {
		return -1
	}
	return len(b)
}

func (bytesCodec) Scale(cqljdbc.Value) int { return 0 }
func (bytesCodec) Signed() bool            { return false }
func (bytesCodec) CaseSensitive() bool     { return false }
func (bytesCodec) Currency() bool          { return false }

type uuidCodec struct{}

func (uuidCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "expected 16 bytes for a uuid value, got %d", len(raw))
	}
	return cqljdbc.UUID(u), nil
}

func (uuidCodec) Kind() cqljdbc.Kind { return cqljdbc.KindUUID }
func (uuidCodec) JDBCType() int      { return TypeOther }

func (uuidCodec) Precision(v cqljdbc.Value) int {
	return renderedWidth(v, 36)
}

func (uuidCodec) Scale(cqljdbc.Value) int { return 0 }
func (uuidCodec) Signed() bool            { return false }
func (uuidCodec) CaseSensitive() bool     { return false }
func (uuidCodec) Currency() bool          { return false }

// timeUUIDCodec and lexicalUUIDCodec share the uuid wire format; they stay
// distinct types so registry entries keep their own identity.
type timeUUIDCodec struct {
	uuidCodec
}

type lexicalUUIDCodec struct {
	uuidCodec
}
