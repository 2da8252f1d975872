package cooccur

import (
	"fmt"
	"os"
	"sort"

	"github.com/wordstat/wordstat/internal/wordstat"
)

// ChunkNamer produces the path for the NNNN-th temp file (0000 is
// reserved for the serialized dense block; overflow chunks start at
// 0001).
type ChunkNamer func(seq int) string

// Overflow is the bounded in-memory buffer of sparse (w1,w2,val) triples
// for pairs that fall outside the dense block's residency cutoff. When
// full it sorts, deduplicates, and flushes to the next temp file.
type Overflow struct {
	buf     []CREC
	cursor  int
	namer   ChunkNamer
	nextSeq int
	paths   []string
}

// NewOverflow allocates a buffer with capacity + slack records. Slack
// covers the case where sub-token splitting makes a single outer
// iteration emit up to 2*windowSize*(1+maxSubtokens) records before the
// feeder's headroom check runs again.
func NewOverflow(capacity int64, slack int64, namer ChunkNamer) (*Overflow, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: overflow capacity must be positive, got %d", wordstat.ErrAlloc, capacity)
	}
	return &Overflow{
		buf:     make([]CREC, capacity+slack),
		namer:   namer,
		nextSeq: 1,
	}, nil
}

// Headroom returns the number of free slots remaining in the buffer.
func (o *Overflow) Headroom() int64 {
	return int64(len(o.buf) - o.cursor)
}

// Add appends one record. Callers are expected to have checked Headroom
// against the feeder's threshold before the enclosing window iteration;
// Add itself still forces a defensive flush if the buffer is somehow at
// capacity, so a worst-case sub-token burst cannot overrun the backing
// array.
func (o *Overflow) Add(c CREC) error {
	if o.cursor >= len(o.buf) {
		if err := o.Flush(); err != nil {
			return err
		}
	}
	o.buf[o.cursor] = c
	o.cursor++
	return nil
}

// Flush sorts the buffer by (w1,w2), merges adjacent duplicate keys by
// summing val, writes the merged stream to the next temp file, and resets
// the cursor. A flush with an empty buffer is a no-op and does not
// advance the sequence counter.
func (o *Overflow) Flush() error {
	if o.cursor == 0 {
		return nil
	}

	records := o.buf[:o.cursor]
	sort.Slice(records, func(i, j int) bool { return records[i].Less(records[j]) })

	path := o.namer(o.nextSeq)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create chunk %s: %v", wordstat.ErrIO, path, err)
	}

	w := NewRecordWriter(f)
	old := records[0]
	for _, r := range records[1:] {
		if r.SameKey(old) {
			old.Val += r.Val
			continue
		}
		if err := w.Write(old); err != nil {
			f.Close()
			return fmt.Errorf("%w: write chunk %s: %v", wordstat.ErrIO, path, err)
		}
		old = r
	}
	if err := w.Write(old); err != nil {
		f.Close()
		return fmt.Errorf("%w: write chunk %s: %v", wordstat.ErrIO, path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: flush chunk %s: %v", wordstat.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close chunk %s: %v", wordstat.ErrIO, path, err)
	}

	o.paths = append(o.paths, path)
	o.nextSeq++
	o.cursor = 0
	return nil
}

// Paths returns every chunk file written so far.
func (o *Overflow) Paths() []string {
	return o.paths
}
