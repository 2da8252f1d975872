package cooccur

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewRecordWriter(&buf)

	want := []CREC{
		{W1: 1, W2: 2, Val: 0.5},
		{W1: 3, W2: 1, Val: 12.25},
	}
	for _, c := range want {
		require.NoError(t, w.Write(c))
	}
	require.NoError(t, w.Flush())
	require.Equal(t, len(want)*RecordSize, buf.Len())

	r := NewRecordReader(&buf)
	var got []CREC
	for {
		c, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, c)
	}
	require.Equal(t, want, got)
}

func TestRecordReaderReportsUnexpectedEOFOnTruncatedRecord(t *testing.T) {
	r := NewRecordReader(bytes.NewReader([]byte{1, 2, 3}))
	_, err := r.Read()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
