package cqljdbc

import (
	"bytes"
	"io"

	. "gopkg.in/check.v1"

	. "github.com/dropbox/godropbox/gocheck2"
)

// CheckSource should only be used in tests.
func CheckSource(c *C, src RowSource, expected []*RawRow) {
	// Ensure that the RowSource yields exactly the expected rows.
	for _, row := range expected {
		actual, err := src.Next()
		c.Assert(err, IsNil)
		c.Assert(bytes.Equal(actual.Key, row.Key), IsTrue)
		c.Assert(len(actual.Columns), Equals, len(row.Columns))
		for i := range row.Columns {
			c.Assert(bytes.Equal(actual.Columns[i].Name, row.Columns[i].Name), IsTrue)
			c.Assert(bytes.Equal(actual.Columns[i].Value, row.Columns[i].Value), IsTrue)
		}
	}
	_, err := src.Next()
	c.Assert(err, Equals, io.EOF)
	// Repeated calls to Next should continue to return io.EOF after
	// reaching the end of the RowSource.
	_, err = src.Next()
	c.Assert(err, Equals, io.EOF)
	// Repeated calls to Close should be handled properly.
	err = src.Close()
	c.Assert(err, IsNil)
	err = src.Close()
	c.Assert(err, IsNil)
}
