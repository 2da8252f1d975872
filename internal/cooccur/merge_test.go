package cooccur

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeChunk(t *testing.T, path string, records []CREC) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := NewRecordWriter(f)
	for _, r := range records {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Flush())
}

func readAll(t *testing.T, buf *bytes.Buffer) []CREC {
	t.Helper()
	r := NewRecordReader(buf)
	var out []CREC
	for {
		c, err := r.Read()
		if err != nil {
			break
		}
		out = append(out, c)
	}
	return out
}

func TestMergeSortsDedupsAcrossFilesAndDeletesInputs(t *testing.T) {
	dir := t.TempDir()
	p0 := filepath.Join(dir, "0000.bin")
	p1 := filepath.Join(dir, "0001.bin")
	p2 := filepath.Join(dir, "0002.bin")

	writeChunk(t, p0, []CREC{{W1: 1, W2: 2, Val: 1}, {W1: 2, W2: 1, Val: 1}})
	writeChunk(t, p1, []CREC{{W1: 1, W2: 2, Val: 0.5}, {W1: 3, W2: 1, Val: 2}})
	writeChunk(t, p2, []CREC{{W1: 3, W2: 1, Val: 1}})

	var out bytes.Buffer
	w := NewRecordWriter(&out)
	n, err := Merge([]string{p0, p1, p2}, w)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	got := readAll(t, &out)
	require.Equal(t, []CREC{
		{W1: 1, W2: 2, Val: 1.5},
		{W1: 2, W2: 1, Val: 1},
		{W1: 3, W2: 1, Val: 3},
	}, got)

	for _, p := range []string{p0, p1, p2} {
		_, err := os.Stat(p)
		require.True(t, os.IsNotExist(err), "temp file %s should be deleted after merge", p)
	}
}

func TestMergeOutputIsSortedAndUnique(t *testing.T) {
	dir := t.TempDir()
	p0 := filepath.Join(dir, "a.bin")
	writeChunk(t, p0, []CREC{{W1: 1, W2: 1, Val: 1}, {W1: 5, W2: 2, Val: 1}, {W1: 5, W2: 9, Val: 1}})

	var out bytes.Buffer
	w := NewRecordWriter(&out)
	_, err := Merge([]string{p0}, w)
	require.NoError(t, err)

	got := readAll(t, &out)
	for i := 1; i < len(got); i++ {
		require.True(t, got[i-1].Less(got[i]), "output must be strictly ascending by (w1,w2)")
	}
}

func TestMergeSingleEmptyFile(t *testing.T) {
	dir := t.TempDir()
	p0 := filepath.Join(dir, "empty.bin")
	writeChunk(t, p0, nil)

	var out bytes.Buffer
	w := NewRecordWriter(&out)
	n, err := Merge([]string{p0}, w)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, out.Len())
}
