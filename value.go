package cqljdbc

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/inf.v0"
)

// Kind names one variant of the Value union.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt64
	KindFloat64
	KindDecimal
	KindBigInt
	KindString
	KindBytes
	KindTime
	KindUUID
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt64:
		return "Int64"
	case KindFloat64:
		return "Float64"
	case KindDecimal:
		return "Decimal"
	case KindBigInt:
		return "BigInt"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	case KindTime:
		return "Time"
	case KindUUID:
		return "UUID"
	default:
		return "Unknown"
	}
}

// Value is the closed union of decoded column values.  A nil Value
// represents an absent column value; every coercion dispatches on the
// concrete variant, so the set below is the whole universe of native types.
type Value interface {
	Kind() Kind
	String() string
}

type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

type Int64 int64

func (Int64) Kind() Kind       { return KindInt64 }
func (v Int64) String() string { return strconv.FormatInt(int64(v), 10) }

type Float64 float64

func (Float64) Kind() Kind       { return KindFloat64 }
func (v Float64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// Decimal is an arbitrary-precision fixed-point value; used as *Decimal.
type Decimal inf.Dec

func (*Decimal) Kind() Kind       { return KindDecimal }
func (v *Decimal) String() string { return (*inf.Dec)(v).String() }

// Dec returns the underlying inf.Dec.
func (v *Decimal) Dec() *inf.Dec { return (*inf.Dec)(v) }

// BigInt is an arbitrary-precision integer; used as *BigInt.
type BigInt big.Int

func (*BigInt) Kind() Kind       { return KindBigInt }
func (v *BigInt) String() string { return (*big.Int)(v).String() }

// Int returns the underlying big.Int.
func (v *BigInt) Int() *big.Int { return (*big.Int)(v) }

type String string

func (String) Kind() Kind       { return KindString }
func (v String) String() string { return string(v) }

type Bytes []byte

func (Bytes) Kind() Kind       { return KindBytes }
func (v Bytes) String() string { return hex.EncodeToString(v) }

type Time time.Time

func (Time) Kind() Kind       { return KindTime }
func (v Time) String() string { return time.Time(v).UTC().Format("2006-01-02 15:04:05.999Z07:00") }

type UUID uuid.UUID

func (UUID) Kind() Kind       { return KindUUID }
func (v UUID) String() string { return uuid.UUID(v).String() }
