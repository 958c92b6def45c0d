package resultset

import (
	"io"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

// rowBuffer is a two-slot view over a RowSource: a peeked head row plus the
// pending stream.  Peeking lets the result set decode the first row for
// metadata before the first Next without requiring the source to be
// rewindable.
type rowBuffer struct {
	src  cqljdbc.RowSource
	head *cqljdbc.RawRow
	// done is set once the source has returned io.EOF.
	done bool
}

func newRowBuffer(src cqljdbc.RowSource) *rowBuffer {
	return &rowBuffer{src: src}
}

// peek returns the next row without consuming it; (nil, nil) on exhaustion.
func (b *rowBuffer) peek() (*cqljdbc.RawRow, error) {
	if b.head != nil {
		return b.head, nil
	}
	if b.done {
		return nil, nil
	}
	row, err := b.src.Next()
	if err == io.EOF {
		b.done = true
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	b.head = row
	return row, nil
}

// next consumes and returns the next row; (nil, nil) on exhaustion.
func (b *rowBuffer) next() (*cqljdbc.RawRow, error) {
	row, err := b.peek()
	if err != nil || row == nil {
		return nil, err
	}
	b.head = nil
	return row, nil
}

// hasNext reports whether another row remains, buffering it if needed.
// Source errors read as exhaustion here; they resurface on next.
func (b *rowBuffer) hasNext() bool {
	row, err := b.peek()
	return err == nil && row != nil
}

func (b *rowBuffer) close() error {
	b.head = nil
	b.done = true
	return b.src.Close()
}
