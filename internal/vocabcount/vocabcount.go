// Package vocabcount builds a frequency-ranked vocabulary from a token
// stream: count every token, fold separator-joined multi-word tokens'
// counts into their sub-tokens, then emit words sorted by count
// descending (ties broken alphabetically).
package vocabcount

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wordstat/wordstat/internal/corpus"
	"github.com/wordstat/wordstat/internal/window"
	"github.com/wordstat/wordstat/internal/wordstat"
)

// Options configures one counting run.
type Options struct {
	MaxVocab int // 0 means unbounded
	MinCount int // entries below this count are dropped; default 1
}

type entry struct {
	word  string
	count int64
}

// Count reads whitespace-delimited tokens from r and returns the
// frequency-ranked vocabulary. It returns wordstat.ErrCorpus if the
// literal token "<unk>" appears in the stream.
func Count(r io.Reader, opts Options) ([]entry, error) {
	counts := make(map[string]int64, 1<<16)

	src := corpus.New(r)
	for {
		ev, err := src.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: read corpus: %v", wordstat.ErrIO, err)
		}
		if ev.Kind != corpus.EventToken {
			continue
		}
		if ev.Text == "<unk>" {
			return nil, fmt.Errorf("%w: literal <unk> token found in corpus", wordstat.ErrCorpus)
		}
		counts[ev.Text]++
	}

	// Fold sub-token counts from SEP_CHAR-joined multi-word tokens. Order
	// doesn't matter: this only ever adds to existing entries or is a
	// no-op for sub-tokens the corpus never produced standalone.
	for word, n := range counts {
		if strings.IndexByte(word, window.SepChar) < 0 {
			continue
		}
		for _, sub := range strings.Split(word, string(window.SepChar)) {
			if sub == "" {
				continue
			}
			if _, ok := counts[sub]; ok {
				counts[sub] += n
			}
		}
	}

	entries := make([]entry, 0, len(counts))
	for w, n := range counts {
		entries = append(entries, entry{word: w, count: n})
	}

	minCount := opts.MinCount
	if minCount <= 0 {
		minCount = 1
	}

	if opts.MaxVocab > 0 && opts.MaxVocab < len(entries) {
		sort.Slice(entries, func(i, j int) bool { return entries[i].count > entries[j].count })
		entries = entries[:opts.MaxVocab]
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].word < entries[j].word
	})

	cut := len(entries)
	for i, e := range entries {
		if e.count < int64(minCount) {
			cut = i
			break
		}
	}
	return entries[:cut], nil
}

// Write emits entries as "<word> <count>\n" lines.
func Write(w io.Writer, entries []entry) error {
	buf := make([]byte, 0, 64)
	for _, e := range entries {
		buf = buf[:0]
		buf = append(buf, e.word...)
		buf = append(buf, ' ')
		buf = fmt.Appendf(buf, "%d\n", e.count)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w: write vocab: %v", wordstat.ErrIO, err)
		}
	}
	return nil
}
