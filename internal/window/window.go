// Package window enumerates (target, context, weight) co-occurrence
// triples from a token stream using a sliding window over each line.
package window

import (
	"strings"

	"github.com/wordstat/wordstat/internal/corpus"
)

// SepChar splits a multi-word context token into its components; each
// component that resolves to a rank contributes its own triple alongside
// the whole-token match. The target side of a pair is never split.
const SepChar = '_'

// Ranker resolves a token to its vocabulary rank.
type Ranker interface {
	Rank(word string) (rank int32, ok bool)
}

// Pair is one emitted (target, context, weight) triple, ranks already
// resolved.
type Pair struct {
	W1, W2 int32
	Weight float64
}

// Config holds the knobs that affect enumeration, threaded explicitly
// rather than held in package globals.
type Config struct {
	Window            int
	Symmetric         bool
	DistanceWeighting bool
}

// Enumerator walks a token/line-break event stream and emits Pairs via
// Emit. It owns a circular history buffer sized to Window tokens.
type Enumerator struct {
	cfg     Config
	ranker  Ranker
	history []string
	pos     int // line-position counter, reset to 0 on LineBreak
}

// New builds an Enumerator for the given window configuration and
// vocabulary lookup.
func New(cfg Config, ranker Ranker) *Enumerator {
	return &Enumerator{
		cfg:     cfg,
		ranker:  ranker,
		history: make([]string, cfg.Window),
	}
}

// Feed consumes one corpus.Event and calls emit for every triple it
// produces. LineBreak resets the line-position counter; the circular
// buffer needs no explicit clearing because the k >= max(0, j-W) bound
// guarantees stale slots from the previous line are never read.
func (e *Enumerator) Feed(ev corpus.Event, emit func(Pair)) {
	switch ev.Kind {
	case corpus.EventLineBreak:
		e.pos = 0
		return
	case corpus.EventToken:
		e.feedToken(ev.Text, emit)
	}
}

func (e *Enumerator) feedToken(t string, emit func(Pair)) {
	w := e.cfg.Window
	j := e.pos

	w1, hasW1 := e.rank(t)

	if hasW1 {
		lo := j - w
		if lo < 0 {
			lo = 0
		}
		for k := lo; k < j; k++ {
			c := e.history[k%w]
			weight := 1.0
			if e.cfg.DistanceWeighting {
				weight = 1.0 / float64(j-k)
			}

			if w2, ok := e.rank(c); ok {
				e.emitBoth(w1, w2, weight, emit)
			}

			if strings.IndexByte(c, SepChar) >= 0 {
				for _, sub := range strings.Split(c, string(SepChar)) {
					if sub == "" {
						continue
					}
					if w2, ok := e.rank(sub); ok {
						e.emitBoth(w1, w2, weight, emit)
					}
				}
			}
		}
	}

	// History is written even for OOV targets: their slot still matters
	// as a future context, and a later sub-token split may still resolve.
	e.history[j%w] = t
	e.pos++
}

func (e *Enumerator) emitBoth(w1, w2 int32, weight float64, emit func(Pair)) {
	emit(Pair{W1: w1, W2: w2, Weight: weight})
	if e.cfg.Symmetric {
		emit(Pair{W1: w2, W2: w1, Weight: weight})
	}
}

func (e *Enumerator) rank(word string) (int32, bool) {
	return e.ranker.Rank(word)
}
