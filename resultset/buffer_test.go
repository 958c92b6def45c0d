package resultset

import (
	. "gopkg.in/check.v1"

	. "github.com/dropbox/godropbox/gocheck2"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

type RowBufferSuite struct{}

var _ = Suite(&RowBufferSuite{})

func (s *RowBufferSuite) TestPeekDoesNotConsume(c *C) {
	rows := []*cqljdbc.RawRow{
		{Key: []byte{0x01}},
		{Key: []byte{0x02}},
	}
	b := newRowBuffer(cqljdbc.NewInMemorySource(rows))

	peeked, err := b.peek()
	c.Assert(err, IsNil)
	c.Assert(peeked, Equals, rows[0])
	// Peeking again returns the same buffered row.
	peeked, err = b.peek()
	c.Assert(err, IsNil)
	c.Assert(peeked, Equals, rows[0])

	row, err := b.next()
	c.Assert(err, IsNil)
	c.Assert(row, Equals, rows[0])
	row, err = b.next()
	c.Assert(err, IsNil)
	c.Assert(row, Equals, rows[1])
}

func (s *RowBufferSuite) TestExhaustion(c *C) {
	b := newRowBuffer(cqljdbc.NewInMemorySource([]*cqljdbc.RawRow{
		{Key: []byte{0x01}},
	}))
	c.Assert(b.hasNext(), IsTrue)

	row, err := b.next()
	c.Assert(err, IsNil)
	c.Assert(row, NotNil)

	c.Assert(b.hasNext(), IsFalse)
	row, err = b.next()
	c.Assert(err, IsNil)
	c.Assert(row, IsNil)
	// Exhaustion is sticky.
	row, err = b.next()
	c.Assert(err, IsNil)
	c.Assert(row, IsNil)
}

func (s *RowBufferSuite) TestClose(c *C) {
	b := newRowBuffer(cqljdbc.NewInMemorySource([]*cqljdbc.RawRow{
		{Key: []byte{0x01}},
	}))
	c.Assert(b.hasNext(), IsTrue)
	c.Assert(b.close(), IsNil)
	c.Assert(b.hasNext(), IsFalse)
}
