/*
File    : wick/file/file.go
*/

// Package file runs a complete Wick source unit through the
// lex -> parse -> resolve -> evaluate pipeline and reports the exit code
// the CLI should use: 0 on success, 70 on any stage that recorded an
// error. It is its own reusable package (rather than inlined in main) so
// both the one-shot file runner and the REPL, which needs the same
// pipeline minus the exit-code decision, can share it.
package file

import (
	"os"

	"github.com/wick-lang/wick/eval"
	"github.com/wick-lang/wick/lexer"
	"github.com/wick-lang/wick/parser"
	"github.com/wick-lang/wick/printer"
	"github.com/wick-lang/wick/reporter"
	"github.com/wick-lang/wick/resolver"
)

// ExitOK, ExitRuntimeError mirror the CLI's exit code contract. CLI
// misuse (ExitUsage, 64) is decided by main before it ever calls here.
const (
	ExitOK           = 0
	ExitRuntimeError = 70
)

// Read loads path's contents as a Wick source string.
func Read(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(contents), nil
}

// Compile lexes, parses, and resolves source, returning the statement
// list and side-table ready for evaluation. ok is false if any stage
// recorded an error (check report.HadError() for the diagnostics); the
// REPL uses this directly so it can keep reusing one Evaluator/globals
// across lines instead of going through Run, which always builds a new
// Evaluator.
func Compile(source string, report *reporter.Reporter) (statements []parser.Stmt, locals resolver.Locals, ok bool) {
	tokens := lexer.New(source, report).Scan()
	if report.HadError() {
		return nil, nil, false
	}

	statements = parser.New(tokens, report).Parse()
	if report.HadError() {
		return nil, nil, false
	}

	locals = resolver.New(report).Resolve(statements)
	if report.HadError() {
		return nil, nil, false
	}
	return statements, locals, true
}

// Run lexes, parses, resolves, and evaluates source against a
// freshly-created Evaluator, printing through p and reporting through
// report. It returns the process exit code the CLI should use and
// aborts the pipeline (without evaluating) the instant any stage before
// evaluation reports an error.
func Run(source string, p printer.Printer, report *reporter.Reporter) int {
	tokens := lexer.New(source, report).Scan()
	if report.HadError() {
		return ExitRuntimeError
	}

	statements := parser.New(tokens, report).Parse()
	if report.HadError() {
		return ExitRuntimeError
	}

	locals := resolver.New(report).Resolve(statements)
	if report.HadError() {
		return ExitRuntimeError
	}

	ev := eval.New(p, report)
	return RunWith(ev, statements, locals, report)
}

// RunWith evaluates an already-resolved program against an existing
// Evaluator, letting the REPL reuse one Evaluator (and its globals)
// across many lines while Run creates a fresh one for a one-shot script.
func RunWith(ev *eval.Evaluator, statements []parser.Stmt, locals resolver.Locals, report *reporter.Reporter) int {
	if err := ev.Run(statements, locals); err != nil || report.HadRuntimeError() {
		return ExitRuntimeError
	}
	return ExitOK
}
