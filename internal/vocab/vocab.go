// Package vocab loads a frequency-ranked word list and answers rank
// lookups for the co-occurrence pipeline.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordstat/wordstat/internal/wordstat"
)

// Index maps words to their 1-based frequency rank. Ranks are a dense
// permutation of 1..V in the order entries were read, lowest rank being
// the most frequent word. Index is read-only after Load returns.
type Index struct {
	rank map[string]int32
	size int
}

// Load reads lines of "<word> <count>" from path, in file order, and
// assigns the k-th entry rank k. The count column is read for validation
// only; order alone defines rank.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", wordstat.ErrVocabLoad, path, err)
	}
	defer f.Close()

	idx, err := LoadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", wordstat.ErrVocabLoad, path, err)
	}
	return idx, nil
}

// LoadFrom reads the same "<word> <count>" format from an arbitrary
// reader, useful for tests and for piping a vocabulary straight out of
// vocab-count without touching disk.
func LoadFrom(r io.Reader) (*Index, error) {
	idx := &Index{rank: make(map[string]int32, 1<<16)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	rank := int32(1)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed line %q, want \"<word> <count>\"", line)
		}
		word := fields[0]
		if _, dup := idx.rank[word]; dup {
			return nil, fmt.Errorf("duplicate word %q", word)
		}
		idx.rank[word] = rank
		rank++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(idx.rank) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}

	idx.size = len(idx.rank)
	return idx, nil
}

// Rank returns the 1-based frequency rank of word, or ok=false if word is
// out of vocabulary. OOV lookups are the expected common case, not an
// error.
func (idx *Index) Rank(word string) (rank int32, ok bool) {
	rank, ok = idx.rank[word]
	return rank, ok
}

// Size returns V, the number of distinct vocabulary entries.
func (idx *Index) Size() int {
	return idx.size
}
