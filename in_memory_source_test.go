package cqljdbc

import (
	. "gopkg.in/check.v1"
)

type InMemorySourceSuite struct{}

var _ = Suite(&InMemorySourceSuite{})

func (s *InMemorySourceSuite) TestInMemorySource(c *C) {
	rows := []*RawRow{
		{
			Key: []byte{0x01},
			Columns: []RawColumn{
				{Name: []byte("id"), Value: []byte{0, 0, 0, 1}},
				{Name: []byte("name"), Value: []byte("ewd")},
			},
		},
		{
			Key: []byte{0x02},
			Columns: []RawColumn{
				{Name: []byte("id"), Value: []byte{0, 0, 0, 2}},
				{Name: []byte("name"), Value: []byte("dmr")},
			},
		},
		{
			Key: []byte{0x03},
			Columns: []RawColumn{
				{Name: []byte("id"), Value: []byte{0, 0, 0, 3}},
				{Name: []byte("name"), Value: nil},
			},
		},
	}
	CheckSource(c, NewInMemorySource(rows), rows)
}
