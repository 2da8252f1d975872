package cooccur

import (
	"container/heap"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wordstat/wordstat/internal/utils"
	"github.com/wordstat/wordstat/internal/wordstat"
)

// source is one open temp file being drained by the merger.
type source struct {
	id   int
	path string
	f    *os.File
	r    *RecordReader
	done bool
}

// Merge k-way merges N sorted, duplicate-free CREC streams (paths[0] is
// the serialized dense block, the rest are overflow chunks) into a single
// sorted, duplicate-free stream written to w. It deletes every input file
// once consumed. Returns the number of records emitted.
func Merge(paths []string, w *RecordWriter) (int64, error) {
	sources := make([]*source, 0, len(paths))
	defer func() {
		for _, s := range sources {
			if s.f != nil {
				s.f.Close()
			}
		}
	}()

	h := &utils.MergeHeap{}
	heap.Init(h)

	for id, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return 0, fmt.Errorf("%w: open chunk %s: %v", wordstat.ErrIO, path, err)
		}
		s := &source{id: id, path: path, f: f, r: NewRecordReader(f)}
		sources = append(sources, s)

		if err := pushNext(h, s); err != nil {
			return 0, err
		}
	}

	var emitted int64
	var old CREC
	haveOld := false

	for h.Len() > 0 {
		top := heap.Pop(h).(utils.MergeCand)
		cur := CREC{W1: top.W1, W2: top.W2, Val: top.Val}

		switch {
		case !haveOld:
			old = cur
			haveOld = true
		case cur.SameKey(old):
			old.Val += cur.Val
		default:
			if err := w.Write(old); err != nil {
				return emitted, fmt.Errorf("%w: write output: %v", wordstat.ErrIO, err)
			}
			emitted++
			old = cur
		}

		if err := pushNext(h, sources[top.Source]); err != nil {
			return emitted, err
		}
	}

	if haveOld {
		if err := w.Write(old); err != nil {
			return emitted, fmt.Errorf("%w: write output: %v", wordstat.ErrIO, err)
		}
		emitted++
	}

	if err := w.Flush(); err != nil {
		return emitted, fmt.Errorf("%w: flush output: %v", wordstat.ErrIO, err)
	}

	for _, s := range sources {
		s.f.Close()
		s.f = nil
		if err := os.Remove(s.path); err != nil {
			return emitted, fmt.Errorf("%w: remove chunk %s: %v", wordstat.ErrIO, s.path, err)
		}
	}

	return emitted, nil
}

// pushNext reads the next record from s, pushing it into h, or marks s
// done on EOF.
func pushNext(h *utils.MergeHeap, s *source) error {
	if s.done {
		return nil
	}
	rec, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.done = true
			return nil
		}
		return fmt.Errorf("%w: read chunk %s: %v", wordstat.ErrIO, s.path, err)
	}
	heap.Push(h, utils.MergeCand{W1: rec.W1, W2: rec.W2, Val: rec.Val, Source: s.id})
	return nil
}
