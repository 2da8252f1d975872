// Command wordstat computes word-word co-occurrence statistics over a
// tokenized corpus: vocab-count produces a frequency-ranked vocabulary,
// cooccur produces the weighted co-occurrence triples used to fit a
// log-bilinear word-embedding model.
package main

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatalf("wordstat: %v", err)
	}
}
