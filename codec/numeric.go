package codec

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/dropbox/godropbox/errors"
	"gopkg.in/inf.v0"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

var (
	Boolean Codec = booleanCodec{}
	Int32   Codec = int32Codec{}
	Long    Codec = longCodec{}
	Counter Codec = counterCodec{}
	Varint  Codec = varintCodec{}
	Decimal Codec = decimalCodec{}
	Float   Codec = floatCodec{}
	Double  Codec = doubleCodec{}
)

type booleanCodec struct{}

func (booleanCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) != 1 {
		return nil, errors.Newf("expected 1 byte for a boolean value, got %d", len(raw))
	}
	return cqljdbc.Bool(raw[0] != 0), nil
}

func (booleanCodec) Kind() cqljdbc.Kind        { return cqljdbc.KindBool }
func (booleanCodec) JDBCType() int             { return TypeBoolean }
func (booleanCodec) Precision(cqljdbc.Value) int { return 1 }
func (booleanCodec) Scale(cqljdbc.Value) int   { return 0 }
func (booleanCodec) Signed() bool              { return false }
func (booleanCodec) CaseSensitive() bool       { return false }
func (booleanCodec) Currency() bool            { return false }

type int32Codec struct{}

func (int32Codec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) != 4 {
		return nil, errors.Newf("expected 4 bytes for an int32 value, got %d", len(raw))
	}
	return cqljdbc.Int64(int32(binary.BigEndian.Uint32(raw))), nil
}

func (int32Codec) Kind() cqljdbc.Kind  { return cqljdbc.KindInt64 }
func (int32Codec) JDBCType() int       { return TypeInteger }
func (int32Codec) Precision(v cqljdbc.Value) int {
	return renderedWidth(v, 11)
}
func (int32Codec) Scale(cqljdbc.Value) int { return 0 }
func (int32Codec) Signed() bool            { return true }
func (int32Codec) CaseSensitive() bool     { return false }
func (int32Codec) Currency() bool          { return false }

type longCodec struct{}

func (longCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) != 8 {
		return nil, errors.Newf("expected 8 bytes for a long value, got %d", len(raw))
	}
	return cqljdbc.Int64(int64(binary.BigEndian.Uint64(raw))), nil
}

func (longCodec) Kind() cqljdbc.Kind  { return cqljdbc.KindInt64 }
func (longCodec) JDBCType() int       { return TypeBigInt }
func (longCodec) Precision(v cqljdbc.Value) int {
	return renderedWidth(v, 20)
}
func (longCodec) Scale(cqljdbc.Value) int { return 0 }
func (longCodec) Signed() bool            { return true }
func (longCodec) CaseSensitive() bool     { return false }
func (longCodec) Currency() bool          { return false }

// counterCodec shares the long wire format; it stays a distinct type so the
// metadata view can recognize counter columns as auto-increment.
type counterCodec struct {
	longCodec
}

type varintCodec struct{}

func (varintCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) == 0 {
		return nil, errors.New("expected at least 1 byte for a varint value")
	}
	return (*cqljdbc.BigInt)(decodeTwosComplement(raw)), nil
}

func (varintCodec) Kind() cqljdbc.Kind  { return cqljdbc.KindBigInt }
func (varintCodec) JDBCType() int       { return TypeNumeric }
func (varintCodec) Precision(v cqljdbc.Value) int {
	return renderedWidth(v, -1)
}
func (varintCodec) Scale(cqljdbc.Value) int { return 0 }
func (varintCodec) Signed() bool            { return true }
func (varintCodec) CaseSensitive() bool     { return false }
func (varintCodec) Currency() bool          { return false }

type decimalCodec struct{}

func (decimalCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) < 5 {
		return nil, errors.Newf("expected at least 5 bytes for a decimal value, got %d", len(raw))
	}
	scale := int32(binary.BigEndian.Uint32(raw[:4]))
	unscaled := decodeTwosComplement(raw[4:])
	return (*cqljdbc.Decimal)(inf.NewDecBig(unscaled, inf.Scale(scale))), nil
}

func (decimalCodec) Kind() cqljdbc.Kind { return cqljdbc.KindDecimal }
func (decimalCodec) JDBCType() int      { return TypeDecimal }

func (decimalCodec) Precision(v cqljdbc.Value) int {
	d, ok := v.(*cqljdbc.Decimal)
	if !ok {
		return -1
	}
	return len(new(big.Int).Abs(d.Dec().UnscaledBig()).String())
}

func (decimalCodec) Scale(v cqljdbc.Value) int {
	d, ok := v.(*cqljdbc.Decimal)
	if !ok {
		return 0
	}
	return int(d.Dec().Scale())
}

func (decimalCodec) Signed() bool        { return true }
func (decimalCodec) CaseSensitive() bool { return false }
func (decimalCodec) Currency() bool      { return false }

type floatCodec struct{}

func (floatCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) != 4 {
		return nil, errors.Newf("expected 4 bytes for a float value, got %d", len(raw))
	}
	return cqljdbc.Float64(math.Float32frombits(binary.BigEndian.Uint32(raw))), nil
}

func (floatCodec) Kind() cqljdbc.Kind  { return cqljdbc.KindFloat64 }
func (floatCodec) JDBCType() int       { return TypeFloat }
func (floatCodec) Precision(v cqljdbc.Value) int {
	return renderedWidth(v, 7)
}
func (floatCodec) Scale(cqljdbc.Value) int { return 0 }
func (floatCodec) Signed() bool            { return true }
func (floatCodec) CaseSensitive() bool     { return false }
func (floatCodec) Currency() bool          { return false }

type doubleCodec struct{}

func (doubleCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) != 8 {
		return nil, errors.Newf("expected 8 bytes for a double value, got %d", len(raw))
	}
	return cqljdbc.Float64(math.Float64frombits(binary.BigEndian.Uint64(raw))), nil
}

func (doubleCodec) Kind() cqljdbc.Kind  { return cqljdbc.KindFloat64 }
func (doubleCodec) JDBCType() int       { return TypeDouble }
func (doubleCodec) Precision(v cqljdbc.Value) int {
	return renderedWidth(v, 15)
}
func (doubleCodec) Scale(cqljdbc.Value) int { return 0 }
func (doubleCodec) Signed() bool            { return true }
func (doubleCodec) CaseSensitive() bool     { return false }
func (doubleCodec) Currency() bool          { return false }

// decodeTwosComplement reads a big-endian two's-complement integer of
// arbitrary width.
func decodeTwosComplement(raw []byte) *big.Int {
	n := new(big.Int).SetBytes(raw)
	if raw[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(raw)*8)))
	}
	return n
}

// renderedWidth reports the display width of a value, or the given default
// when the value is absent.
func renderedWidth(v cqljdbc.Value, absent int) int {
	if v == nil {
		return absent
	}
	return len(v.String())
}
