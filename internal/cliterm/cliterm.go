// Package cliterm renders the small set of progress and summary lines the
// wordstat commands print to stderr, styled with ANSI color only when
// stderr is a terminal.
package cliterm

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

var styled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

const (
	dim   = "\x1b[2m"
	bold  = "\x1b[1m"
	red   = "\x1b[31m"
	reset = "\x1b[0m"
)

func wrap(code, s string) string {
	if !styled {
		return s
	}
	return code + s + reset
}

// Header prints a bold section title.
func Header(text string) {
	fmt.Fprintln(os.Stderr, wrap(bold, text))
}

// Summary prints each pair as an indented "key: value" line.
func Summary(pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(os.Stderr, "  %s %s\n", wrap(dim, pairs[i]+":"), pairs[i+1])
	}
}

// Step prints a single progress line.
func Step(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// Error prints a failure line.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, wrap(red, "error: "+msg))
}
