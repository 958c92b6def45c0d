// Package resultset exposes a forward-only, read-only cursor over decoded
// rows with typed getters, was-null tracking, and a metadata view.
//
// The supported coercions per native value variant are:
//
//	variant  | getters that accept it
//	Bool     | bool, string, object
//	Int64    | bool, byte, short, int, long, float, double, decimal, bigint, date, time, timestamp, string, object
//	Float64  | float, double, decimal, string, object
//	Decimal  | decimal, string, object
//	BigInt   | bool, byte, short, int, long, float, double, decimal, bigint, string, object
//	String   | everything parseable from its text, string, object
//	Bytes    | string, object
//	Time     | date, time, timestamp, string, object
//	UUID     | string, object
//
// Bytes and RowID getters read the raw wire bytes, never the decoded value.
package resultset

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/inf.v0"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
	"github.com/TW-Brandon/cassandra-jdbc/codec"
	"github.com/dropbox/godropbox/errors"
)

// rowNumber sentinel once the source is exhausted.
const afterLast = math.MaxInt32

// Textual formats accepted when coercing strings to temporal values.
const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02 15:04:05.999999999"
)

// ResultSet is a forward-only cursor over decoded rows.  Next is serialized
// internally, but a ResultSet is not meant to be shared across goroutines
// without external synchronization.
type ResultSet struct {
	// mu serializes Next.
	mu sync.Mutex

	rows     *rowBuffer
	schema   *cqljdbc.Schema
	registry *codec.Registry

	stmt           Statement
	rsType         int
	fetchDirection int
	fetchSize      int

	rowNumber int
	curRowKey []byte

	// columns and index are rebuilt together on every advance; index maps
	// name to 1-based ordinal.  Both nil is the closed sentinel.
	columns []*TypedColumn
	index   map[string]int

	wasNull bool
}

// New builds a cursor over src decoding through schema and registry.  The
// first row, if any, is decoded eagerly so metadata is available before the
// first Next; the row is buffered, not consumed, so the first Next serves
// it again.  A nil registry selects codec.Default(); a nil stmt selects
// forward-only read-only defaults.
func New(src cqljdbc.RowSource, schema *cqljdbc.Schema, registry *codec.Registry, stmt Statement) (*ResultSet, error) {
	if schema == nil {
		return nil, errors.New("schema must not be nil")
	}
	if registry == nil {
		registry = codec.Default()
	}
	if stmt == nil {
		stmt = defaultStatement()
	}
	r := &ResultSet{
		rows:           newRowBuffer(src),
		schema:         schema,
		registry:       registry,
		stmt:           stmt,
		rsType:         stmt.ResultSetType(),
		fetchDirection: stmt.FetchDirection(),
		fetchSize:      stmt.FetchSize(),
		columns:        []*TypedColumn{},
		index:          map[string]int{},
	}
	head, err := r.rows.peek()
	if err != nil {
		return nil, err
	}
	if head != nil {
		if err := r.populate(head); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// populate decodes one raw row into a fresh (columns, index) pair and
// replaces the previous pair wholesale.  Duplicate names are
// last-write-wins.
func (r *ResultSet) populate(row *cqljdbc.RawRow) error {
	columns := make([]*TypedColumn, 0, len(row.Columns))
	index := make(map[string]int, len(row.Columns))
	for i := range row.Columns {
		column, err := r.decodeColumn(&row.Columns[i])
		if err != nil {
			return err
		}
		columns = append(columns, column)
		// One greater than the 0-based position in the slice.
		index[column.name] = len(columns)
	}
	r.columns = columns
	r.index = index
	return nil
}

func (r *ResultSet) decodeColumn(raw *cqljdbc.RawColumn) (*TypedColumn, error) {
	nameTag := r.schema.NameTypeTag(raw.Name)
	nameCodec, ok := r.registry.Lookup(nameTag)
	if !ok {
		// Names must always render; fall back to text.
		nameCodec = codec.Ascii
	}

	valueTag := r.schema.ValueTypeTag(raw.Name)
	shape := cqljdbc.NotCollection
	valueCodec, ok := r.registry.Lookup(valueTag)
	if !ok {
		switch valueTag {
		case "ListType":
			shape = cqljdbc.ListShape
		case "SetType":
			shape = cqljdbc.SetShape
		case "MapType":
			shape = cqljdbc.MapShape
		default:
			return nil, errors.Newf("no codec registered for type tag %q", valueTag)
		}
		valueCodec = codec.Ascii
	}

	name, err := nameCodec.Decode(raw.Name)
	if err != nil {
		return nil, err
	}
	column := &TypedColumn{
		name:       name.String(),
		rawName:    raw.Name,
		typeTag:    valueTag,
		nameCodec:  nameCodec,
		valueCodec: valueCodec,
		shape:      shape,
	}
	if len(raw.Value) > 0 {
		column.rawValue = raw.Value
		column.value, err = valueCodec.Decode(raw.Value)
		if err != nil {
			return nil, err
		}
	}
	return column, nil
}

func (r *ResultSet) checkClosed() error {
	if r.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Next advances to the next row, returning false once the source is
// exhausted; exhaustion is terminal, not an error.
func (r *ResultSet) Next() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkClosed(); err != nil {
		return false, err
	}
	row, err := r.rows.next()
	if err != nil {
		return false, err
	}
	if row == nil {
		r.rowNumber = afterLast
		return false, nil
	}
	if err := r.populate(row); err != nil {
		return false, err
	}
	// The key becomes visible only once the row is current; the eager
	// decode at construction leaves it nil.
	r.curRowKey = row.Key
	r.rowNumber++
	return true, nil
}

// Close releases the column storage and closes the underlying source.
// Closing twice is harmless; every other method fails afterwards.
func (r *ResultSet) Close() error {
	if r.IsClosed() {
		return nil
	}
	r.columns = nil
	r.index = nil
	return r.rows.close()
}

// IsClosed reports whether the column storage has been released.
func (r *ResultSet) IsClosed() bool {
	return r.columns == nil
}

// column resolves a 1-based index to the current row's typed column.
func (r *ResultSet) column(index int) (*TypedColumn, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	if index < 1 || index > len(r.columns) {
		return nil, &OutOfRangeError{Index: index, Count: len(r.columns)}
	}
	return r.columns[index-1], nil
}

// columnByName resolves a case-sensitive column name.
func (r *ResultSet) columnByName(name string) (*TypedColumn, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	i, ok := r.index[name]
	if !ok {
		return nil, &UnknownColumnError{Name: name}
	}
	return r.columns[i-1], nil
}

// FindColumn returns the 1-based ordinal of the named column.
func (r *ResultSet) FindColumn(name string) (int, error) {
	if err := r.checkClosed(); err != nil {
		return 0, err
	}
	i, ok := r.index[name]
	if !ok {
		return 0, &UnknownColumnError{Name: name}
	}
	return i, nil
}

// WasNull reports whether the most recent getter read an absent value.
func (r *ResultSet) WasNull() bool {
	return r.wasNull
}

// RowKey returns the raw key bytes of the current row, nil before the
// first advance.
func (r *ResultSet) RowKey() []byte {
	return r.curRowKey
}

// Row is the current row number: 0 before the first row, the after-last
// sentinel once exhausted.
func (r *ResultSet) Row() (int, error) {
	if err := r.checkClosed(); err != nil {
		return 0, err
	}
	return r.rowNumber, nil
}

func (r *ResultSet) IsBeforeFirst() (bool, error) {
	if err := r.checkClosed(); err != nil {
		return false, err
	}
	return r.rowNumber == 0, nil
}

func (r *ResultSet) IsFirst() (bool, error) {
	if err := r.checkClosed(); err != nil {
		return false, err
	}
	return r.rowNumber == 1, nil
}

func (r *ResultSet) IsAfterLast() (bool, error) {
	if err := r.checkClosed(); err != nil {
		return false, err
	}
	return r.rowNumber == afterLast, nil
}

// IsLast looks ahead into the source rather than comparing positions.
func (r *ResultSet) IsLast() (bool, error) {
	if err := r.checkClosed(); err != nil {
		return false, err
	}
	return !r.rows.hasNext(), nil
}

// Repositioning is not part of the single-pass source model.

func (r *ResultSet) Absolute(int) error { return ErrNotSupported }
func (r *ResultSet) Relative(int) error { return ErrNotSupported }
func (r *ResultSet) First() error       { return ErrNotSupported }
func (r *ResultSet) Last() error        { return ErrNotSupported }
func (r *ResultSet) Previous() error    { return ErrNotSupported }

func (r *ResultSet) BeforeFirst() error {
	if r.rsType == TypeForwardOnly {
		return ErrForwardOnly
	}
	return ErrNotSupported
}

func (r *ResultSet) AfterLast() error {
	if r.rsType == TypeForwardOnly {
		return ErrForwardOnly
	}
	return ErrNotSupported
}

// Statement configuration surface.

func (r *ResultSet) Statement() (Statement, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	return r.stmt, nil
}

func (r *ResultSet) Type() (int, error) {
	if err := r.checkClosed(); err != nil {
		return 0, err
	}
	return r.rsType, nil
}

func (r *ResultSet) Concurrency() (int, error) {
	if err := r.checkClosed(); err != nil {
		return 0, err
	}
	return r.stmt.ResultSetConcurrency(), nil
}

func (r *ResultSet) Holdability() (int, error) {
	if err := r.checkClosed(); err != nil {
		return 0, err
	}
	return r.stmt.ResultSetHoldability(), nil
}

func (r *ResultSet) FetchDirection() (int, error) {
	if err := r.checkClosed(); err != nil {
		return 0, err
	}
	return r.fetchDirection, nil
}

func (r *ResultSet) SetFetchDirection(direction int) error {
	if err := r.checkClosed(); err != nil {
		return err
	}
	switch direction {
	case FetchForward, FetchReverse, FetchUnknown:
	default:
		return &InvalidArgumentError{Reason: "fetch direction value of " + strconv.Itoa(direction) + " is illegal"}
	}
	if r.rsType == TypeForwardOnly && direction != FetchForward {
		return &InvalidArgumentError{Reason: "attempt to set an illegal direction on a forward-only ResultSet: " + strconv.Itoa(direction)}
	}
	r.fetchDirection = direction
	return nil
}

func (r *ResultSet) FetchSize() (int, error) {
	if err := r.checkClosed(); err != nil {
		return 0, err
	}
	return r.fetchSize, nil
}

func (r *ResultSet) SetFetchSize(size int) error {
	if err := r.checkClosed(); err != nil {
		return err
	}
	if size < 0 {
		return &InvalidArgumentError{Reason: "fetch size of " + strconv.Itoa(size) + " rows may not be negative"}
	}
	r.fetchSize = size
	return nil
}

// Warnings are not collected by this implementation.

func (r *ResultSet) Warnings() (error, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *ResultSet) ClearWarnings() error {
	return r.checkClosed()
}

// Metadata reflects the current row's columns.
func (r *ResultSet) Metadata() (*Metadata, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	return &Metadata{rs: r}, nil
}

// Column returns the typed column at a 1-based index.
func (r *ResultSet) Column(index int) (*TypedColumn, error) {
	return r.column(index)
}

// ColumnByName returns the typed column with the given name.
func (r *ResultSet) ColumnByName(name string) (*TypedColumn, error) {
	return r.columnByName(name)
}

// Typed getters.  Every getter records was-null and returns the target's
// zero value (numeric/boolean) or the Go zero (string/bytes/time/object)
// when the column value is absent.

func (r *ResultSet) GetBool(index int) (bool, error) {
	column, err := r.column(index)
	if err != nil {
		return false, err
	}
	return r.boolValue(column)
}

func (r *ResultSet) GetBoolByName(name string) (bool, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return false, err
	}
	return r.boolValue(column)
}

func (r *ResultSet) boolValue(column *TypedColumn) (bool, error) {
	v := column.value
	r.wasNull = v == nil
	if r.wasNull {
		return false, nil
	}
	switch v := v.(type) {
	case cqljdbc.Bool:
		return bool(v), nil
	case cqljdbc.Int64:
		return v != 0, nil
	case *cqljdbc.BigInt:
		return v.Int().Sign() != 0, nil
	case cqljdbc.String:
		if strings.EqualFold(string(v), "true") {
			return true, nil
		}
		if strings.EqualFold(string(v), "false") {
			return false, nil
		}
		return false, &NotBooleanError{Value: string(v)}
	}
	return false, notTranslatable(v, "bool")
}

func (r *ResultSet) GetByte(index int) (byte, error) {
	column, err := r.column(index)
	if err != nil {
		return 0, err
	}
	n, err := r.intValue(column, "byte", 8)
	return byte(n), err
}

func (r *ResultSet) GetByteByName(name string) (byte, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return 0, err
	}
	n, err := r.intValue(column, "byte", 8)
	return byte(n), err
}

func (r *ResultSet) GetShort(index int) (int16, error) {
	column, err := r.column(index)
	if err != nil {
		return 0, err
	}
	n, err := r.intValue(column, "int16", 16)
	return int16(n), err
}

func (r *ResultSet) GetShortByName(name string) (int16, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return 0, err
	}
	n, err := r.intValue(column, "int16", 16)
	return int16(n), err
}

func (r *ResultSet) GetInt(index int) (int, error) {
	column, err := r.column(index)
	if err != nil {
		return 0, err
	}
	n, err := r.intValue(column, "int", 32)
	return int(int32(n)), err
}

func (r *ResultSet) GetIntByName(name string) (int, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return 0, err
	}
	n, err := r.intValue(column, "int", 32)
	return int(int32(n)), err
}

func (r *ResultSet) GetLong(index int) (int64, error) {
	column, err := r.column(index)
	if err != nil {
		return 0, err
	}
	return r.intValue(column, "int64", 64)
}

func (r *ResultSet) GetLongByName(name string) (int64, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return 0, err
	}
	return r.intValue(column, "int64", 64)
}

// intValue coerces to an integer of the given width; narrowing is silent
// truncation, matching the standard conversion rules.
func (r *ResultSet) intValue(column *TypedColumn, target string, bits int) (int64, error) {
	v := column.value
	r.wasNull = v == nil
	if r.wasNull {
		return 0, nil
	}
	switch v := v.(type) {
	case cqljdbc.Int64:
		return int64(v), nil
	case *cqljdbc.BigInt:
		return v.Int().Int64(), nil
	case cqljdbc.String:
		n, err := strconv.ParseInt(string(v), 10, bits)
		if err != nil {
			return 0, notTranslatable(v, target)
		}
		return n, nil
	}
	return 0, notTranslatable(v, target)
}

func (r *ResultSet) GetFloat(index int) (float32, error) {
	column, err := r.column(index)
	if err != nil {
		return 0, err
	}
	f, err := r.floatValue(column, "float32")
	return float32(f), err
}

func (r *ResultSet) GetFloatByName(name string) (float32, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return 0, err
	}
	f, err := r.floatValue(column, "float32")
	return float32(f), err
}

func (r *ResultSet) GetDouble(index int) (float64, error) {
	column, err := r.column(index)
	if err != nil {
		return 0, err
	}
	return r.floatValue(column, "float64")
}

func (r *ResultSet) GetDoubleByName(name string) (float64, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return 0, err
	}
	return r.floatValue(column, "float64")
}

func (r *ResultSet) floatValue(column *TypedColumn, target string) (float64, error) {
	v := column.value
	r.wasNull = v == nil
	if r.wasNull {
		return 0, nil
	}
	switch v := v.(type) {
	case cqljdbc.Float64:
		return float64(v), nil
	case cqljdbc.Int64:
		return float64(v), nil
	case *cqljdbc.BigInt:
		f, _ := new(big.Float).SetInt(v.Int()).Float64()
		return f, nil
	case cqljdbc.String:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, notTranslatable(v, target)
		}
		return f, nil
	}
	return 0, notTranslatable(v, target)
}

// GetDecimal never returns nil: an absent value reads as decimal zero.
func (r *ResultSet) GetDecimal(index int) (*inf.Dec, error) {
	column, err := r.column(index)
	if err != nil {
		return nil, err
	}
	return r.decimalValue(column)
}

func (r *ResultSet) GetDecimalByName(name string) (*inf.Dec, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return nil, err
	}
	return r.decimalValue(column)
}

func (r *ResultSet) decimalValue(column *TypedColumn) (*inf.Dec, error) {
	v := column.value
	r.wasNull = v == nil
	if r.wasNull {
		return new(inf.Dec), nil
	}
	switch v := v.(type) {
	case *cqljdbc.Decimal:
		return v.Dec(), nil
	case cqljdbc.Int64:
		return inf.NewDec(int64(v), 0), nil
	case cqljdbc.Float64:
		d, ok := new(inf.Dec).SetString(strconv.FormatFloat(float64(v), 'f', -1, 64))
		if !ok {
			return nil, notTranslatable(v, "Decimal")
		}
		return d, nil
	case *cqljdbc.BigInt:
		return inf.NewDecBig(new(big.Int).Set(v.Int()), 0), nil
	case cqljdbc.String:
		d, ok := new(inf.Dec).SetString(string(v))
		if !ok {
			return nil, notTranslatable(v, "Decimal")
		}
		return d, nil
	}
	return nil, notTranslatable(v, "Decimal")
}

// GetBigInt never returns nil: an absent value reads as zero.
func (r *ResultSet) GetBigInt(index int) (*big.Int, error) {
	column, err := r.column(index)
	if err != nil {
		return nil, err
	}
	return r.bigIntValue(column)
}

func (r *ResultSet) GetBigIntByName(name string) (*big.Int, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return nil, err
	}
	return r.bigIntValue(column)
}

func (r *ResultSet) bigIntValue(column *TypedColumn) (*big.Int, error) {
	v := column.value
	r.wasNull = v == nil
	if r.wasNull {
		return new(big.Int), nil
	}
	switch v := v.(type) {
	case *cqljdbc.BigInt:
		return v.Int(), nil
	case cqljdbc.Int64:
		return big.NewInt(int64(v)), nil
	case cqljdbc.String:
		n, ok := new(big.Int).SetString(string(v), 10)
		if !ok {
			return nil, notTranslatable(v, "BigInt")
		}
		return n, nil
	}
	return nil, notTranslatable(v, "BigInt")
}

// GetBytes returns a copy of the raw wire bytes of the column value, never
// the decoded native value; nil when absent.
func (r *ResultSet) GetBytes(index int) ([]byte, error) {
	column, err := r.column(index)
	if err != nil {
		return nil, err
	}
	return r.bytesValue(column), nil
}

func (r *ResultSet) GetBytesByName(name string) ([]byte, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return nil, err
	}
	return r.bytesValue(column), nil
}

func (r *ResultSet) bytesValue(column *TypedColumn) []byte {
	r.wasNull = column.rawValue == nil
	return column.RawValue()
}

// GetRowID wraps the raw wire bytes as a row identifier; nil when absent.
func (r *ResultSet) GetRowID(index int) (cqljdbc.RowID, error) {
	column, err := r.column(index)
	if err != nil {
		return nil, err
	}
	return cqljdbc.RowID(r.bytesValue(column)), nil
}

func (r *ResultSet) GetRowIDByName(name string) (cqljdbc.RowID, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return nil, err
	}
	return cqljdbc.RowID(r.bytesValue(column)), nil
}

func (r *ResultSet) GetDate(index int) (time.Time, error) {
	column, err := r.column(index)
	if err != nil {
		return time.Time{}, err
	}
	return r.timeValue(column, "Date", dateLayout)
}

func (r *ResultSet) GetDateByName(name string) (time.Time, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return time.Time{}, err
	}
	return r.timeValue(column, "Date", dateLayout)
}

func (r *ResultSet) GetTime(index int) (time.Time, error) {
	column, err := r.column(index)
	if err != nil {
		return time.Time{}, err
	}
	return r.timeValue(column, "Time", timeLayout)
}

func (r *ResultSet) GetTimeByName(name string) (time.Time, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return time.Time{}, err
	}
	return r.timeValue(column, "Time", timeLayout)
}

func (r *ResultSet) GetTimestamp(index int) (time.Time, error) {
	column, err := r.column(index)
	if err != nil {
		return time.Time{}, err
	}
	return r.timeValue(column, "Timestamp", timestampLayout)
}

func (r *ResultSet) GetTimestampByName(name string) (time.Time, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return time.Time{}, err
	}
	return r.timeValue(column, "Timestamp", timestampLayout)
}

// timeValue coerces to a temporal value; integers are epoch milliseconds,
// strings parse with the target's canonical layout.  Absence reads as the
// zero time with was-null set.
func (r *ResultSet) timeValue(column *TypedColumn, target, layout string) (time.Time, error) {
	v := column.value
	r.wasNull = v == nil
	if r.wasNull {
		return time.Time{}, nil
	}
	switch v := v.(type) {
	case cqljdbc.Int64:
		return time.UnixMilli(int64(v)).UTC(), nil
	case cqljdbc.Time:
		return time.Time(v), nil
	case cqljdbc.String:
		t, err := time.Parse(layout, string(v))
		if err != nil {
			return time.Time{}, notTranslatable(v, target)
		}
		return t, nil
	}
	return time.Time{}, notTranslatable(v, target)
}

// GetString renders any native value as text; empty when absent.
func (r *ResultSet) GetString(index int) (string, error) {
	column, err := r.column(index)
	if err != nil {
		return "", err
	}
	return r.stringValue(column), nil
}

func (r *ResultSet) GetStringByName(name string) (string, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return "", err
	}
	return r.stringValue(column), nil
}

func (r *ResultSet) stringValue(column *TypedColumn) string {
	r.wasNull = column.value == nil
	if r.wasNull {
		return ""
	}
	return column.value.String()
}

// GetObject returns the native value as-is; nil when absent.  Collection
// shaped string columns pass through untransformed, with the shape
// available on the column itself.
func (r *ResultSet) GetObject(index int) (cqljdbc.Value, error) {
	column, err := r.column(index)
	if err != nil {
		return nil, err
	}
	return r.objectValue(column), nil
}

func (r *ResultSet) GetObjectByName(name string) (cqljdbc.Value, error) {
	column, err := r.columnByName(name)
	if err != nil {
		return nil, err
	}
	return r.objectValue(column), nil
}

func (r *ResultSet) objectValue(column *TypedColumn) cqljdbc.Value {
	r.wasNull = column.value == nil
	return column.value
}

// GetURL is not supported; the underlying model has no URL representation.
func (r *ResultSet) GetURL(int) (string, error) {
	return "", ErrNotSupported
}

func (r *ResultSet) GetURLByName(string) (string, error) {
	return "", ErrNotSupported
}

func notTranslatable(v cqljdbc.Value, target string) error {
	return &NotTranslatableError{Source: v.Kind().String(), Target: target}
}
