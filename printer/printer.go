/*
File    : wick/printer/printer.go
*/

// Package printer defines the value sink that `print` statements write
// through. Diagnostics do not pass through it: the CLI and REPL write
// them to their own output directly. Like Reporter, it is an injected
// boundary collaborator, not core algorithmics: a named interface
// rather than a bare io.Writer field, so tests can substitute an
// accumulator that records the exact sequence of printed values.
package printer

import (
	"fmt"
	"io"
)

// Printer accepts one printable line at a time. What "line-equivalent"
// means is up to the implementation: the console Printer appends a
// newline per call, a test Printer just appends the string.
type Printer interface {
	Print(s string)
}

// Console writes each Print call to an underlying io.Writer with a
// trailing newline, matching the CLI printer contract.
type Console struct {
	W io.Writer
}

// NewConsole wraps w as a Console Printer.
func NewConsole(w io.Writer) *Console {
	return &Console{W: w}
}

// Print writes s followed by a newline to the underlying writer.
func (c *Console) Print(s string) {
	fmt.Fprintln(c.W, s)
}

// Recorder accumulates printed strings without newlines, so tests can
// compare the exact sequence of values a program printed against a list
// of expected printed strings.
type Recorder struct {
	Lines []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Print appends s to the recorded sequence.
func (r *Recorder) Print(s string) {
	r.Lines = append(r.Lines, s)
}
