package cooccur

import "fmt"

// Dense is the fixed-size flat-array accumulator for frequent-word pairs.
// Row i (1-based) has length L(i) = min(maxProduct/i, V); storage is one
// flat slice of size S = sum(L(i)), addressed through an offset table.
type Dense struct {
	vocabSize  int
	maxProduct int64
	off        []int64 // off[0]=1, off[i] = off[i-1] + L(i)
	cells      []float32
}

// NewDense allocates the dense block for a vocabulary of size V and a
// residency cutoff maxProduct.
func NewDense(vocabSize int, maxProduct int64) *Dense {
	off := make([]int64, vocabSize+1)
	off[0] = 1
	for i := 1; i <= vocabSize; i++ {
		off[i] = off[i-1] + rowLen(i, vocabSize, maxProduct)
	}

	size := off[vocabSize] - 1
	return &Dense{
		vocabSize:  vocabSize,
		maxProduct: maxProduct,
		off:        off,
		cells:      make([]float32, size),
	}
}

func rowLen(i, vocabSize int, maxProduct int64) int64 {
	l := maxProduct / int64(i)
	if l > int64(vocabSize) {
		l = int64(vocabSize)
	}
	if l < 0 {
		l = 0
	}
	return l
}

// Resident reports whether pair (i, j) belongs in the dense block: it
// does iff j < maxProduct/i (strict, integer division).
func (d *Dense) Resident(i, j int32) bool {
	return int64(j) < d.maxProduct/int64(i)
}

// Add accumulates weight into cell (i, j). Callers must have already
// confirmed Resident(i, j).
func (d *Dense) Add(i, j int32, weight float64) {
	idx := d.off[i-1] + int64(j) - 2
	d.cells[idx] += float32(weight)
}

// WriteTo streams every non-zero cell to w as (i, j, val) records, in
// (i, j) ascending order with no duplicates — the dense block's output is
// already sorted.
func (d *Dense) WriteTo(w *RecordWriter) (int64, error) {
	var n int64
	for i := 1; i <= d.vocabSize; i++ {
		length := d.off[i] - d.off[i-1]
		base := d.off[i-1]
		for j := int64(1); j <= length; j++ {
			val := d.cells[base+j-2]
			if val == 0 {
				continue
			}
			if err := w.Write(CREC{W1: int32(i), W2: int32(j), Val: val}); err != nil {
				return n, fmt.Errorf("write dense cell (%d,%d): %w", i, j, err)
			}
			n++
		}
	}
	return n, nil
}
