package resultset

import (
	. "gopkg.in/check.v1"

	. "github.com/dropbox/godropbox/gocheck2"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
	"github.com/TW-Brandon/cassandra-jdbc/codec"
)

type MetadataSuite struct{}

var _ = Suite(&MetadataSuite{})

func (s *MetadataSuite) newResultSet(c *C) *ResultSet {
	rows := []*cqljdbc.RawRow{
		{
			Key: []byte{0x01},
			Columns: []cqljdbc.RawColumn{
				column("id", int32Bytes(-123)),
				column("note", []byte("Hello")),
				column("price", decimalBytes(2, 1099)),
				column("hits", longBytes(8)),
			},
		},
	}
	rs, err := New(
		cqljdbc.NewInMemorySource(rows),
		testSchema(map[string]string{
			"id":    "Int32Type",
			"price": "DecimalType",
			"hits":  "CounterColumnType",
		}),
		nil,
		&StatementConfig{
			Type:            TypeForwardOnly,
			Concurrency:     ConcurReadOnly,
			Holdability:     HoldCursorsOverCommit,
			Direction:       FetchForward,
			Cluster:         "Test Cluster",
			CurrentKeyspace: "shop",
		})
	c.Assert(err, IsNil)
	ok, err := rs.Next()
	c.Assert(err, IsNil)
	c.Assert(ok, IsTrue)
	return rs
}

func (s *MetadataSuite) TestNamesAndLabels(c *C) {
	rs := s.newResultSet(c)
	meta, err := rs.Metadata()
	c.Assert(err, IsNil)

	c.Assert(meta.ColumnCount(), Equals, 4)
	name, err := meta.ColumnName(1)
	c.Assert(err, IsNil)
	c.Assert(name, Equals, "id")
	label, err := meta.ColumnLabel(2)
	c.Assert(err, IsNil)
	c.Assert(label, Equals, "note")

	_, err = meta.ColumnName(5)
	_, isOor := err.(*OutOfRangeError)
	c.Assert(isOor, IsTrue)
}

func (s *MetadataSuite) TestTypeReflection(c *C) {
	rs := s.newResultSet(c)
	meta, err := rs.Metadata()
	c.Assert(err, IsNil)

	code, err := meta.ColumnType(1)
	c.Assert(err, IsNil)
	c.Assert(code, Equals, codec.TypeInteger)
	code, err = meta.ColumnType(2)
	c.Assert(err, IsNil)
	c.Assert(code, Equals, codec.TypeVarchar)
	code, err = meta.ColumnType(3)
	c.Assert(err, IsNil)
	c.Assert(code, Equals, codec.TypeDecimal)

	typeName, err := meta.ColumnTypeName(1)
	c.Assert(err, IsNil)
	c.Assert(typeName, Equals, "Int32Type")
	typeName, err = meta.ColumnTypeName(4)
	c.Assert(err, IsNil)
	c.Assert(typeName, Equals, "CounterColumnType")

	className, err := meta.ColumnClassName(1)
	c.Assert(err, IsNil)
	c.Assert(className, Equals, "Int64")
	className, err = meta.ColumnClassName(2)
	c.Assert(err, IsNil)
	c.Assert(className, Equals, "String")
}

func (s *MetadataSuite) TestPrecisionScaleAndDisplaySize(c *C) {
	rs := s.newResultSet(c)
	meta, err := rs.Metadata()
	c.Assert(err, IsNil)

	// id = -123 renders as 4 characters.
	precision, err := meta.Precision(1)
	c.Assert(err, IsNil)
	c.Assert(precision, Equals, 4)
	scale, err := meta.Scale(1)
	c.Assert(err, IsNil)
	c.Assert(scale, Equals, 0)

	// price = 10.99: unscaled digit count 4, scale 2.
	precision, err = meta.Precision(3)
	c.Assert(err, IsNil)
	c.Assert(precision, Equals, 4)
	scale, err = meta.Scale(3)
	c.Assert(err, IsNil)
	c.Assert(scale, Equals, 2)

	size, err := meta.ColumnDisplaySize(2)
	c.Assert(err, IsNil)
	c.Assert(size, Equals, len("Hello"))
	size, err = meta.ColumnDisplaySize(3)
	c.Assert(err, IsNil)
	c.Assert(size, Equals, len("10.99"))
}

func (s *MetadataSuite) TestConnectionContext(c *C) {
	rs := s.newResultSet(c)
	meta, err := rs.Metadata()
	c.Assert(err, IsNil)

	catalog, err := meta.CatalogName(1)
	c.Assert(err, IsNil)
	c.Assert(catalog, Equals, "Test Cluster")
	schema, err := meta.SchemaName(1)
	c.Assert(err, IsNil)
	c.Assert(schema, Equals, "shop")

	_, err = meta.TableName(1)
	c.Assert(err, Equals, ErrNotSupported)
}

func (s *MetadataSuite) TestColumnFlags(c *C) {
	rs := s.newResultSet(c)
	meta, err := rs.Metadata()
	c.Assert(err, IsNil)

	nullable, err := meta.Nullable(1)
	c.Assert(err, IsNil)
	c.Assert(nullable, Equals, ColumnNullable)

	signed, err := meta.Signed(1)
	c.Assert(err, IsNil)
	c.Assert(signed, IsTrue)
	signed, err = meta.Signed(2)
	c.Assert(err, IsNil)
	c.Assert(signed, IsFalse)

	caseSensitive, err := meta.CaseSensitive(2)
	c.Assert(err, IsNil)
	c.Assert(caseSensitive, IsTrue)
	caseSensitive, err = meta.CaseSensitive(1)
	c.Assert(err, IsNil)
	c.Assert(caseSensitive, IsFalse)

	currency, err := meta.Currency(3)
	c.Assert(err, IsNil)
	c.Assert(currency, IsFalse)

	searchable, err := meta.Searchable(1)
	c.Assert(err, IsNil)
	c.Assert(searchable, IsFalse)

	autoIncrement, err := meta.AutoIncrement(4)
	c.Assert(err, IsNil)
	c.Assert(autoIncrement, IsTrue)
	autoIncrement, err = meta.AutoIncrement(1)
	c.Assert(err, IsNil)
	c.Assert(autoIncrement, IsFalse)

	writable, err := meta.Writable(1)
	c.Assert(err, IsNil)
	c.Assert(writable, IsTrue)
	definitely, err := meta.DefinitelyWritable(1)
	c.Assert(err, IsNil)
	c.Assert(definitely, IsTrue)
	readOnly, err := meta.ReadOnly(1)
	c.Assert(err, IsNil)
	c.Assert(readOnly, IsFalse)

	// Index 0 is never reachable through the 1-based contract.
	_, err = meta.ReadOnly(0)
	_, isOor := err.(*OutOfRangeError)
	c.Assert(isOor, IsTrue)
}

func (s *MetadataSuite) TestMetadataTracksCurrentRow(c *C) {
	rows := []*cqljdbc.RawRow{
		{Key: []byte{0x01}, Columns: []cqljdbc.RawColumn{column("a", []byte("x"))}},
		{
			Key: []byte{0x02},
			Columns: []cqljdbc.RawColumn{
				column("a", []byte("y")),
				column("b", []byte("z")),
			},
		},
	}
	rs := newTestResultSet(c, rows, nil)
	meta, err := rs.Metadata()
	c.Assert(err, IsNil)

	// Pre-advance metadata reflects the eagerly decoded first row.
	c.Assert(meta.ColumnCount(), Equals, 1)

	ok, err := rs.Next()
	c.Assert(err, IsNil)
	c.Assert(ok, IsTrue)
	c.Assert(meta.ColumnCount(), Equals, 1)

	ok, err = rs.Next()
	c.Assert(err, IsNil)
	c.Assert(ok, IsTrue)
	c.Assert(meta.ColumnCount(), Equals, 2)
}
