// Package utils holds small container/heap-compatible priority queues
// shared by the pipeline's merge stage.
package utils

// MergeCand is one candidate in the k-way merge heap: a CREC-shaped key
// tagged with the index of the source file it came from. Adapted from the
// tokenizer's BPE merge-candidate heap entry, repurposed here to order
// temp-file cursors by (w1, w2) instead of merge pairs by rank.
type MergeCand struct {
	W1, W2 int32
	Val    float32
	Source int // source file id, in [0, N)
}

// MergeHeap is a container/heap.Interface ordering MergeCand by (w1, w2)
// ascending; ties broken by source id so Pop is deterministic.
type MergeHeap []MergeCand

func (h MergeHeap) Len() int { return len(h) }
func (h MergeHeap) Less(i, j int) bool {
	if h[i].W1 != h[j].W1 {
		return h[i].W1 < h[j].W1
	}
	if h[i].W2 != h[j].W2 {
		return h[i].W2 < h[j].W2
	}
	return h[i].Source < h[j].Source
}
func (h MergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *MergeHeap) Push(x any)   { *h = append(*h, x.(MergeCand)) }
func (h *MergeHeap) Pop() any     { old := *h; n := len(old); x := old[n-1]; *h = old[:n-1]; return x }
