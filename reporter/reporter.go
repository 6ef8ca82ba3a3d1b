/*
File    : wick/reporter/reporter.go
*/

// Package reporter collects diagnostics produced anywhere in the
// lex/parse/resolve/evaluate pipeline and tracks the had-error flags the
// CLI uses to decide its exit code. It is an injected collaborator, not
// part of the core algorithmics, so every pipeline stage can share one
// instance and report through the same interface.
package reporter

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Diagnostic is a single recorded error, already formatted for display
// but keeping its line number for script-mode source-line annotation.
type Diagnostic struct {
	Line    int
	Message string
}

// Reporter accumulates diagnostics and exposes the two sticky flags the
// pipeline checks after each stage: HadError (lex/parse/resolve) and
// HadRuntimeError (evaluation). Both flags are readable non-destructively
// and only ever transition false -> true, except that Reset clears them.
type Reporter struct {
	diagnostics     []Diagnostic
	hadError        bool
	hadRuntimeError bool
}

// New returns a Reporter with no diagnostics and both flags clear.
func New() *Reporter {
	return &Reporter{}
}

// Error records a lex/parse-time diagnostic and sets HadError. offset and
// length describe the offending span within the line; most callers that
// don't track columns pass 0, 0.
func (r *Reporter) Error(line, offset, length int, message string) {
	r.hadError = true
	r.diagnostics = append(r.diagnostics, Diagnostic{Line: line, Message: message})
}

// ErrorToken records a parse-time diagnostic anchored to a specific token
// (e.g. "at 'foo'") and sets HadError. line and lexeme are passed
// separately rather than as a lexer.Token to keep this package
// dependency-free.
func (r *Reporter) ErrorToken(line int, lexeme string, atEOF bool, message string) {
	where := "at '" + lexeme + "'"
	if atEOF {
		where = "at end"
	}
	r.Error(line, 0, 0, message+" ["+where+"]")
}

// RuntimeError records an evaluation-time diagnostic and sets
// HadRuntimeError. Unlike Error/ErrorToken, a runtime error halts the
// current run invocation immediately (see eval package).
func (r *Reporter) RuntimeError(line int, message string) {
	r.hadRuntimeError = true
	r.diagnostics = append(r.diagnostics, Diagnostic{Line: line, Message: message})
}

// HadError reports whether any lex/parse/resolve diagnostic was recorded
// since the Reporter was created or last Reset.
func (r *Reporter) HadError() bool {
	return r.hadError
}

// HadRuntimeError reports whether a runtime diagnostic was recorded.
func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntimeError
}

// Diagnostics returns every recorded diagnostic in reporting order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Reset clears both flags and the diagnostic list. Used by the REPL
// between lines: a script-ending error must not poison the next line,
// since globals persist but error state should not.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
	r.diagnostics = nil
}

// Err folds every recorded diagnostic into a single multierror, for
// embedders that want a plain Go error rather than polling the flags.
// Grounded on hashicorp/go-multierror's use throughout hashicorp-nomad for
// aggregating independent failures from one pass. Returns nil if no
// diagnostic was recorded.
func (r *Reporter) Err() error {
	var result *multierror.Error
	for _, d := range r.diagnostics {
		result = multierror.Append(result, fmt.Errorf("line %d: %s", d.Line, d.Message))
	}
	return result.ErrorOrNil()
}
