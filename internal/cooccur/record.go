// Package cooccur implements the hybrid dense/overflow co-occurrence
// accumulator and its external-merge output stage.
package cooccur

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// RecordSize is the wire size of one CREC: int32 + int32 + float32.
const RecordSize = 12

// CREC is one co-occurrence record: w1 and w2 are 1-based vocabulary
// ranks, val is the accumulated weight. The float width (float32) is
// fixed here and used consistently by both the writer and reader.
type CREC struct {
	W1, W2 int32
	Val    float32
}

// SameKey reports whether c and o share the same (w1, w2) key.
func (c CREC) SameKey(o CREC) bool {
	return c.W1 == o.W1 && c.W2 == o.W2
}

// Less orders records by (w1, w2) ascending, the sort and merge key.
func (c CREC) Less(o CREC) bool {
	if c.W1 != o.W1 {
		return c.W1 < o.W1
	}
	return c.W2 < o.W2
}

// RecordWriter appends CRECs to an underlying stream in wire format.
type RecordWriter struct {
	w   *bufio.Writer
	buf [RecordSize]byte
}

// NewRecordWriter wraps w for buffered CREC output.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: bufio.NewWriterSize(w, 64*1024)}
}

// Write appends one record.
func (rw *RecordWriter) Write(c CREC) error {
	binary.LittleEndian.PutUint32(rw.buf[0:4], uint32(c.W1))
	binary.LittleEndian.PutUint32(rw.buf[4:8], uint32(c.W2))
	binary.LittleEndian.PutUint32(rw.buf[8:12], math.Float32bits(c.Val))
	_, err := rw.w.Write(rw.buf[:])
	return err
}

// Flush flushes any buffered bytes to the underlying writer.
func (rw *RecordWriter) Flush() error {
	return rw.w.Flush()
}

// RecordReader reads CRECs from an underlying stream in wire format.
type RecordReader struct {
	r   *bufio.Reader
	buf [RecordSize]byte
}

// NewRecordReader wraps r for buffered CREC input.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// Read returns the next record, or io.EOF once the stream is exhausted.
// A short trailing read (1..RecordSize-1 bytes before EOF) is reported as
// io.ErrUnexpectedEOF since the wire format has no framing to recover
// from a truncated record.
func (rr *RecordReader) Read() (CREC, error) {
	_, err := io.ReadFull(rr.r, rr.buf[:])
	if err != nil {
		return CREC{}, err
	}
	return CREC{
		W1:  int32(binary.LittleEndian.Uint32(rr.buf[0:4])),
		W2:  int32(binary.LittleEndian.Uint32(rr.buf[4:8])),
		Val: math.Float32frombits(binary.LittleEndian.Uint32(rr.buf[8:12])),
	}, nil
}
