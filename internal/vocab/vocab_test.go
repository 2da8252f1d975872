package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordstat/wordstat/internal/wordstat"
)

func TestLoadFromAssignsDenseRanksInFileOrder(t *testing.T) {
	idx, err := LoadFrom(strings.NewReader("the 100\nof 80\nand 60\n"))
	require.NoError(t, err)
	require.Equal(t, 3, idx.Size())

	rank, ok := idx.Rank("the")
	require.True(t, ok)
	require.EqualValues(t, 1, rank)

	rank, ok = idx.Rank("of")
	require.True(t, ok)
	require.EqualValues(t, 2, rank)

	rank, ok = idx.Rank("and")
	require.True(t, ok)
	require.EqualValues(t, 3, rank)
}

func TestLoadFromOOVLookupIsNotAnError(t *testing.T) {
	idx, err := LoadFrom(strings.NewReader("a 1\n"))
	require.NoError(t, err)

	_, ok := idx.Rank("zzz")
	require.False(t, ok)
}

func TestLoadFromRejectsEmptyFile(t *testing.T) {
	_, err := LoadFrom(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoadFromRejectsMalformedLine(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("onlyoneword\n"))
	require.Error(t, err)
}

func TestLoadFromRejectsDuplicateWord(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("a 1\na 2\n"))
	require.Error(t, err)
}

func TestLoadMissingFileWrapsVocabLoadError(t *testing.T) {
	_, err := Load("/nonexistent/path/vocab.txt")
	require.Error(t, err)
	require.ErrorIs(t, err, wordstat.ErrVocabLoad)
}
