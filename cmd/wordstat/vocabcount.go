package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wordstat/wordstat/internal/cliterm"
	"github.com/wordstat/wordstat/internal/vocabcount"
)

func newVocabCountCmd() *cobra.Command {
	var maxVocab, minCount int

	cmd := &cobra.Command{
		Use:   "vocab-count",
		Short: "Build a frequency-ranked vocabulary from a token stream on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := vocabcount.Count(os.Stdin, vocabcount.Options{
				MaxVocab: maxVocab,
				MinCount: minCount,
			})
			if err != nil {
				return err
			}

			if verbosity > 0 {
				cliterm.Step(fmt.Sprintf("using vocabulary of size %s", humanize.Comma(int64(len(entries)))))
			}

			return vocabcount.Write(os.Stdout, entries)
		},
	}

	cmd.Flags().IntVar(&maxVocab, "max-vocab", 0, "truncate vocabulary to this many entries, 0 for no limit")
	cmd.Flags().IntVar(&minCount, "min-count", 1, "drop entries occurring fewer than this many times")

	return cmd
}
