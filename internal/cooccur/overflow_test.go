package cooccur

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func namerIn(dir, head string) ChunkNamer {
	return func(seq int) string {
		return filepath.Join(dir, fmt.Sprintf("%s_%04d.bin", head, seq))
	}
}

func TestOverflowFlushSortsDedupsAndWrites(t *testing.T) {
	dir := t.TempDir()
	o, err := NewOverflow(10, 4, namerIn(dir, "ov"))
	require.NoError(t, err)

	require.NoError(t, o.Add(CREC{W1: 3, W2: 1, Val: 1}))
	require.NoError(t, o.Add(CREC{W1: 1, W2: 2, Val: 1}))
	require.NoError(t, o.Add(CREC{W1: 1, W2: 2, Val: 2}))
	require.NoError(t, o.Flush())

	require.Len(t, o.Paths(), 1)

	f, err := os.Open(o.Paths()[0])
	require.NoError(t, err)
	defer f.Close()

	r := NewRecordReader(f)
	var got []CREC
	for {
		c, err := r.Read()
		if err != nil {
			break
		}
		got = append(got, c)
	}
	require.Equal(t, []CREC{
		{W1: 1, W2: 2, Val: 3},
		{W1: 3, W2: 1, Val: 1},
	}, got)
}

func TestOverflowEmptyFlushIsNoop(t *testing.T) {
	dir := t.TempDir()
	o, err := NewOverflow(10, 4, namerIn(dir, "ov"))
	require.NoError(t, err)
	require.NoError(t, o.Flush())
	require.Empty(t, o.Paths())
}

func TestOverflowHeadroomAndDefensiveFlush(t *testing.T) {
	dir := t.TempDir()
	o, err := NewOverflow(2, 0, namerIn(dir, "ov"))
	require.NoError(t, err)
	require.EqualValues(t, 2, o.Headroom())

	require.NoError(t, o.Add(CREC{W1: 1, W2: 1, Val: 1}))
	require.NoError(t, o.Add(CREC{W1: 1, W2: 2, Val: 1}))
	require.Zero(t, o.Headroom())

	// buffer is full; Add forces a defensive flush before accepting more.
	require.NoError(t, o.Add(CREC{W1: 1, W2: 3, Val: 1}))
	require.Len(t, o.Paths(), 1)
}

func TestNewOverflowRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewOverflow(0, 0, namerIn(t.TempDir(), "ov"))
	require.Error(t, err)
}
