// Package console provides colored, verbosity-gated output for the CLI.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

// Printer writes CLI output with quiet and verbose gating. Success and
// progress lines go to out, error lines to errOut.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	verbose bool
}

// NewPrinter creates a Printer writing to the given writers.
func NewPrinter(out, errOut io.Writer, quiet, verbose bool) *Printer {
	return &Printer{out: out, errOut: errOut, quiet: quiet, verbose: verbose}
}

// Success prints a green line to standard output unless quiet.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Success(format string, a ...any) {
	if p.quiet {
		return
	}
	successColor.Fprintf(p.out, format+"\n", a...)
}

// Error prints a red line to standard error unless quiet.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) Error(format string, a ...any) {
	if p.quiet {
		return
	}
	errorColor.Fprintf(p.errOut, format+"\n", a...)
}

// Verbose prints an uncolored progress line, only in verbose mode.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Verbose(format string, a ...any) {
	if p.quiet || !p.verbose {
		return
	}
	fmt.Fprintf(p.out, format+"\n", a...)
}
