package codec

import (
	"encoding/binary"
	"time"

	"github.com/dropbox/godropbox/errors"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

// Date decodes DateType columns: a timestamp stored as epoch milliseconds.
var Date Codec = dateCodec{}

type dateCodec struct{}

func (dateCodec) Decode(raw []byte) (cqljdbc.Value, error) {
	if len(raw) != 8 {
		return nil, errors.Newf("expected 8 bytes for a date value, got %d", len(raw))
	}
	millis := int64(binary.BigEndian.Uint64(raw))
	return cqljdbc.Time(time.UnixMilli(millis).UTC()), nil
}

func (dateCodec) Kind() cqljdbc.Kind { return cqljdbc.KindTime }
func (dateCodec) JDBCType() int      { return TypeTimestamp }

func (dateCodec) Precision(v cqljdbc.Value) int {
	return renderedWidth(v, -1)
}

func (dateCodec) Scale(cqljdbc.Value) int { return 0 }
func (dateCodec) Signed() bool            { return false }
func (dateCodec) CaseSensitive() bool     { return false }
func (dateCodec) Currency() bool          { return false }
