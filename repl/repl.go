/*
File    : wick/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for Wick. It provides
// an interactive environment where users enter Wick code line by line,
// with command history and colored diagnostics, and globals preserved
// across lines. Structured after an earlier REPL implementation
// (same Banner/Version/Prompt/Line shape and readline/color plumbing),
// rewired onto the lexer/parser/resolver/eval pipeline in file.Compile.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wick-lang/wick/eval"
	"github.com/wick-lang/wick/file"
	"github.com/wick-lang/wick/printer"
	"github.com/wick-lang/wick/reporter"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the presentation configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
	NoColor bool
}

// New creates a Repl with the given presentation settings.
func New(banner, version, line, prompt string, noColor bool) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, NoColor: noColor}
}

// printBanner displays the welcome banner and usage instructions.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Wick!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop, reading lines via readline and writing
// results/diagnostics to writer, until '.exit' or EOF. One Evaluator is
// created for the whole session so variable and function definitions
// persist across lines; the Reporter is reset between lines so one line's
// error doesn't poison the next (see reporter.Reporter.Reset).
func (r *Repl) Start(writer io.Writer) {
	if r.NoColor {
		color.NoColor = true
	}

	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	report := reporter.New()
	p := printer.NewConsole(writer)
	ev := eval.New(p, report)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, ev, report)
	}
}

// evalLine compiles and runs a single REPL line against the session's
// long-lived Evaluator, printing any diagnostics in red.
func (r *Repl) evalLine(writer io.Writer, line string, ev *eval.Evaluator, report *reporter.Reporter) {
	report.Reset()

	statements, locals, ok := file.Compile(line, report)
	if !ok {
		for _, d := range report.Diagnostics() {
			redColor.Fprintf(writer, "[line %d] %s\n", d.Line, d.Message)
		}
		return
	}

	file.RunWith(ev, statements, locals, report)
	if report.HadRuntimeError() {
		for _, d := range report.Diagnostics() {
			redColor.Fprintf(writer, "[line %d] %s\n", d.Line, d.Message)
		}
	}
}
