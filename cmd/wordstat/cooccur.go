package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wordstat/wordstat/internal/cliterm"
	"github.com/wordstat/wordstat/internal/cooccur"
	"github.com/wordstat/wordstat/internal/vocab"
)

func newCooccurCmd() *cobra.Command {
	var (
		symmetric         bool
		windowSize        int
		vocabFile         string
		memory            float64
		maxProduct        int64
		overflowLength    int64
		overflowFile      string
		distanceWeighting bool
	)

	cmd := &cobra.Command{
		Use:   "cooccur",
		Short: "Compute weighted word-word co-occurrence statistics from a token stream on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := vocab.Load(vocabFile)
			if err != nil {
				return err
			}

			head := overflowFile
			if head == "overflow" {
				head = fmt.Sprintf("%s-%s", overflowFile, uuid.NewString()[:8])
			}

			if verbosity > 0 {
				cliterm.Header("wordstat cooccur")
				cliterm.Summary(
					"vocab size", fmt.Sprintf("%d", idx.Size()),
					"window", fmt.Sprintf("%d", windowSize),
					"memory budget", humanize.IBytes(uint64(memory*(1<<30))),
					"overflow prefix", head,
				)
			}

			log := newLogger()
			n, err := cooccur.Run(os.Stdin, os.Stdout, idx, cooccur.Options{
				Window:            windowSize,
				Symmetric:         symmetric,
				DistanceWeighting: distanceWeighting,
				MemoryGiB:         memory,
				MaxProduct:        maxProduct,
				OverflowLength:    overflowLength,
				OverflowFileHead:  head,
				Logger:            log,
			})
			if err != nil {
				return err
			}

			if verbosity > 0 {
				cliterm.Step(fmt.Sprintf("wrote %s records", humanize.Comma(n)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&symmetric, "symmetric", true, "count right context in addition to left context")
	cmd.Flags().IntVar(&windowSize, "window-size", 15, "number of context words to each side")
	cmd.Flags().StringVar(&vocabFile, "vocab-file", "vocab.txt", "path to the frequency-ranked vocabulary")
	cmd.Flags().Float64Var(&memory, "memory", 4.0, "soft memory budget in GiB")
	cmd.Flags().Int64Var(&maxProduct, "max-product", 0, "override the derived dense/overflow residency cutoff")
	cmd.Flags().Int64Var(&overflowLength, "overflow-length", 0, "override the derived overflow buffer capacity")
	cmd.Flags().StringVar(&overflowFile, "overflow-file", "overflow", "temp-file prefix for the dense block and overflow chunks")
	cmd.Flags().BoolVar(&distanceWeighting, "distance-weighting", true, "weight context words by 1/distance")

	return cmd
}
