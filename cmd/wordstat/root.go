package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbosity int

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordstat",
		Short:         "Word co-occurrence statistics for log-bilinear embedding training",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().IntVar(&verbosity, "verbose", 2, "progress verbosity 0-3")

	root.AddCommand(newVocabCountCmd())
	root.AddCommand(newCooccurCmd())

	return root
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 3:
		level = slog.LevelDebug
	case verbosity >= 1:
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
