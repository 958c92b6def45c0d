package cqljdbc

import (
	"io"
)

// inMemorySource serves a fixed slice of raw rows; it backs tests and
// pre-fetched result pages.
type inMemorySource struct {
	rows []*RawRow
}

var _ RowSource = (*inMemorySource)(nil)

func NewInMemorySource(rows []*RawRow) *inMemorySource {
	return &inMemorySource{
		rows: rows,
	}
}

func (m *inMemorySource) Next() (*RawRow, error) {
	if len(m.rows) == 0 {
		return nil, io.EOF
	}
	r := m.rows[0]
	m.rows = m.rows[1:]
	return r, nil
}

func (m *inMemorySource) Close() error {
	m.rows = nil
	return nil
}
