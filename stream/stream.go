// The stream package defines a binary representation for spooling raw rows
// to disk, so a non-replayable row stream can be buffered and re-scanned.
// All fields are big-endian, matching the column wire encoding; a value
// length of -1 marks an absent column value.
package stream

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/dropbox/godropbox/errors"

	cqljdbc "github.com/TW-Brandon/cassandra-jdbc"
)

var byteOrder = binary.BigEndian

const absentValue = int32(-1)

type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) WriteRow(row *cqljdbc.RawRow) error {
	if err := writeBytes(w.w, row.Key); err != nil {
		return err
	}
	if err := binary.Write(w.w, byteOrder, uint32(len(row.Columns))); err != nil {
		return err
	}
	for i := range row.Columns {
		if err := w.writeColumn(&row.Columns[i]); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeColumn(col *cqljdbc.RawColumn) error {
	if err := writeBytes(w.w, col.Name); err != nil {
		return err
	}
	if col.Value == nil {
		if err := binary.Write(w.w, byteOrder, absentValue); err != nil {
			return err
		}
	} else {
		if err := binary.Write(w.w, byteOrder, int32(len(col.Value))); err != nil {
			return err
		}
		if _, err := w.w.Write(col.Value); err != nil {
			return err
		}
	}
	if err := binary.Write(w.w, byteOrder, col.Timestamp); err != nil {
		return err
	}
	return binary.Write(w.w, byteOrder, col.TTL)
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}

func writeBytes(w *bufio.Writer, b []byte) error {
	if err := binary.Write(w, byteOrder, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// Spool drains src into a file at path and returns the number of rows
// written.  The source is not closed.
func Spool(path string, src cqljdbc.RowSource) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	w := NewWriter(f)
	numRows := 0
	for {
		row, err := src.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			f.Close()
			return numRows, err
		}
		if err := w.WriteRow(row); err != nil {
			f.Close()
			return numRows, err
		}
		numRows++
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return numRows, err
	}
	return numRows, f.Close()
}

type scan struct {
	r      *bufio.Reader
	closed bool
	c      io.Closer
}

var _ cqljdbc.RowSource = (*scan)(nil)

// NewScan reads spooled rows back as a RowSource.
func NewScan(path string) (*scan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &scan{
		r: bufio.NewReader(f),
		c: f,
	}, nil
}

func (s *scan) Next() (*cqljdbc.RawRow, error) {
	if s.closed {
		return nil, errors.New("Cannot call Next after scan was closed")
	}
	key, err := readBytes(s.r)
	if err != nil {
		// A clean end of file is exhaustion; anything mid-row reads as
		// corruption and surfaces as ErrUnexpectedEOF.
		return nil, err
	}
	var numColumns uint32
	if err := binary.Read(s.r, byteOrder, &numColumns); err != nil {
		return nil, eofIsUnexpected(err)
	}
	columns := make([]cqljdbc.RawColumn, numColumns)
	for i := range columns {
		if err := s.readColumn(&columns[i]); err != nil {
			return nil, eofIsUnexpected(err)
		}
	}
	return &cqljdbc.RawRow{
		Key:     key,
		Columns: columns,
	}, nil
}

func (s *scan) readColumn(col *cqljdbc.RawColumn) error {
	name, err := readBytes(s.r)
	if err != nil {
		return err
	}
	col.Name = name
	var valueLen int32
	if err := binary.Read(s.r, byteOrder, &valueLen); err != nil {
		return err
	}
	if valueLen != absentValue {
		col.Value = make([]byte, valueLen)
		if _, err := io.ReadFull(s.r, col.Value); err != nil {
			return eofIsUnexpected(err)
		}
	}
	if err := binary.Read(s.r, byteOrder, &col.Timestamp); err != nil {
		return err
	}
	return binary.Read(s.r, byteOrder, &col.TTL)
}

func (s *scan) Close() error {
	if s.closed {
		return nil
	}
	defer func() {
		s.closed = true
	}()
	return s.c.Close()
}

func readBytes(r *bufio.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, byteOrder, &length); err != nil {
		return nil, err
	}
	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, eofIsUnexpected(err)
	}
	return b, nil
}

func eofIsUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
