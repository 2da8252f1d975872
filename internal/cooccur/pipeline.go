package cooccur

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/wordstat/wordstat/internal/corpus"
	"github.com/wordstat/wordstat/internal/vocab"
	"github.com/wordstat/wordstat/internal/window"
	"github.com/wordstat/wordstat/internal/wordstat"
)

// Options configures one run of Run. It is the configuration value the
// CLI layer builds from flags; no package-level mutable state is held.
type Options struct {
	Window            int
	Symmetric         bool
	DistanceWeighting bool
	MemoryGiB         float64
	MaxProduct        int64 // 0 means derive from MemoryGiB
	OverflowLength    int64 // 0 means derive from MemoryGiB
	OverflowFileHead  string
	Logger            *slog.Logger
}

// namer builds the "<file_head>_NNNN.bin" path convention: 0000 is
// reserved for the serialized dense block, overflow chunks start at 0001.
func namer(head string) ChunkNamer {
	return func(seq int) string {
		return fmt.Sprintf("%s_%04d.bin", head, seq)
	}
}

// Run drives the full ingest-then-merge pipeline: tokens from r are fed
// through the sliding-window enumerator, routed to the dense block or the
// overflow buffer, and finally k-way merged into a single sorted,
// duplicate-free CREC stream written to w.
func Run(r io.Reader, w io.Writer, idx *vocab.Index, opts Options) (int64, error) {
	if opts.Window <= 0 {
		return 0, fmt.Errorf("%w: window size must be positive, got %d", wordstat.ErrConfig, opts.Window)
	}
	if opts.MemoryGiB <= 0 {
		return 0, fmt.Errorf("%w: memory budget must be positive, got %f", wordstat.ErrConfig, opts.MemoryGiB)
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	plan := PlanMemory(opts.MemoryGiB, RecordSize)
	maxProduct := plan.MaxProduct
	if opts.MaxProduct > 0 {
		maxProduct = opts.MaxProduct
	}
	overflowLen := plan.OverflowLength
	if opts.OverflowLength > 0 {
		overflowLen = opts.OverflowLength
	}

	log.Info("memory plan", "max_product", maxProduct, "overflow_length", overflowLen, "vocab_size", idx.Size())

	dense := NewDense(idx.Size(), maxProduct)

	slack := int64(2 * opts.Window * 8)
	overflow, err := NewOverflow(overflowLen, slack, namer(opts.OverflowFileHead))
	if err != nil {
		return 0, err
	}

	headroomNeeded := int64(opts.Window)
	if opts.Symmetric {
		headroomNeeded = int64(2 * opts.Window)
	}

	enum := window.New(window.Config{
		Window:            opts.Window,
		Symmetric:         opts.Symmetric,
		DistanceWeighting: opts.DistanceWeighting,
	}, idx)

	src := corpus.New(r)

	var emitErr error
	// Checked on every overflow-routed pair rather than once per window
	// iteration: strictly more conservative, and the overflow buffer's
	// slack plus Add's own defensive flush backstop this regardless.
	emit := func(p window.Pair) {
		if emitErr != nil {
			return
		}
		if dense.Resident(p.W1, p.W2) {
			dense.Add(p.W1, p.W2, p.Weight)
			return
		}
		if overflow.Headroom() < headroomNeeded {
			if err := overflow.Flush(); err != nil {
				emitErr = err
				return
			}
		}
		if err := overflow.Add(CREC{W1: p.W1, W2: p.W2, Val: float32(p.Weight)}); err != nil {
			emitErr = err
		}
	}

	var ingested int64
	for {
		ev, err := src.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("%w: read corpus: %v", wordstat.ErrIO, err)
		}
		enum.Feed(ev, emit)
		if emitErr != nil {
			return 0, emitErr
		}
		if ev.Kind == corpus.EventToken {
			ingested++
		}
	}

	if err := overflow.Flush(); err != nil {
		return 0, err
	}

	densePath := namer(opts.OverflowFileHead)(0)
	df, err := os.Create(densePath)
	if err != nil {
		return 0, fmt.Errorf("%w: create dense chunk %s: %v", wordstat.ErrIO, densePath, err)
	}
	denseWriter := NewRecordWriter(df)
	denseCells, err := dense.WriteTo(denseWriter)
	if err != nil {
		df.Close()
		return 0, err
	}
	if err := denseWriter.Flush(); err != nil {
		df.Close()
		return 0, fmt.Errorf("%w: flush dense chunk %s: %v", wordstat.ErrIO, densePath, err)
	}
	if err := df.Close(); err != nil {
		return 0, fmt.Errorf("%w: close dense chunk %s: %v", wordstat.ErrIO, densePath, err)
	}

	log.Info("ingest complete", "tokens", ingested, "dense_cells", denseCells, "overflow_chunks", len(overflow.Paths()))

	paths := append([]string{densePath}, overflow.Paths()...)

	outWriter := NewRecordWriter(w)
	emitted, err := Merge(paths, outWriter)
	if err != nil {
		return emitted, err
	}

	log.Info("merge complete", "records", emitted)
	return emitted, nil
}
