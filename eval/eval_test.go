/*
File    : wick/eval/eval_test.go
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wick-lang/wick/lexer"
	"github.com/wick-lang/wick/parser"
	"github.com/wick-lang/wick/printer"
	"github.com/wick-lang/wick/reporter"
	"github.com/wick-lang/wick/resolver"
)

// run lexes, parses, resolves, and evaluates src against a fresh
// Evaluator, returning the Recorder's printed sequence and the Reporter
// used throughout, so tests can assert both output and diagnostics.
func run(t *testing.T, src string) ([]string, *reporter.Reporter) {
	t.Helper()
	report := reporter.New()
	tokens := lexer.New(src, report).Scan()
	require.False(t, report.HadError(), "lex errors: %v", report.Diagnostics())

	stmts := parser.New(tokens, report).Parse()
	require.False(t, report.HadError(), "parse errors: %v", report.Diagnostics())

	locals := resolver.New(report).Resolve(stmts)
	if report.HadError() {
		return nil, report
	}

	rec := printer.NewRecorder()
	ev := New(rec, report)
	ev.Run(stmts, locals)
	return rec.Lines, report
}

func TestEval_IterativeFibonacci(t *testing.T) {
	out, report := run(t, `
		var a=0; var temp; for (var b=1; a<100; b=temp+b){ print a; temp=a; a=b; }
	`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"0", "1", "1", "2", "3", "5", "8", "13", "21", "34", "55", "89"}, out)
}

func TestEval_RecursiveFibonacciWithClosedOverCounter(t *testing.T) {
	out, report := run(t, `
		var c=0; fun fib(n){c=c+1; if(n<=1) return n; return fib(n-2)+fib(n-1);} print fib(5);
	`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"5"}, out)
}

func TestEval_ClosureCapturesByReferenceToScope(t *testing.T) {
	out, report := run(t, `
		fun makeCounter(){var i=0; fun count(){i=i+1; return i;} return count;} var c=makeCounter(); print c(); print c();
	`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"1", "2"}, out)
}

func TestEval_GlobalRedeclarationAllowed(t *testing.T) {
	out, report := run(t, `var a=1; var a=2; print a;`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"2"}, out)
}

func TestEval_ShadowedReadInInitializerIsResolverError(t *testing.T) {
	_, report := run(t, `{ var a="outer"; { var a=a; } }`)
	require.True(t, report.HadError())
	assert.Contains(t, report.Diagnostics()[0].Message, "Can't read local variables in its own declaration")
}

func TestEval_DuplicateLocalIsResolverError(t *testing.T) {
	_, report := run(t, `fun f(){var a=1; var a=2;}`)
	require.True(t, report.HadError())
	assert.Contains(t, report.Diagnostics()[0].Message, "Already a variable with this name in this scope")
}

func TestEval_FunctionIdentityPreservedAcrossAssignment(t *testing.T) {
	out, report := run(t, `
		fun f() {}
		var a = f;
		var b = f;
		print a == b;
	`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"true"}, out)
}

func TestEval_ShortCircuitOr(t *testing.T) {
	out, report := run(t, `
		fun sideEffect() { print "evaluated"; return true; }
		print true or sideEffect();
	`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"true"}, out)
}

func TestEval_ShortCircuitAnd(t *testing.T) {
	out, report := run(t, `
		fun sideEffect() { print "evaluated"; return true; }
		print false and sideEffect();
	`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"false"}, out)
}

func TestEval_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, report := run(t, `print undefined_name;`)
	assert.True(t, report.HadRuntimeError())
}

func TestEval_ArityMismatchIsRuntimeError(t *testing.T) {
	_, report := run(t, `
		fun f(a) { return a; }
		f(1, 2);
	`)
	assert.True(t, report.HadRuntimeError())
}

func TestEval_TypeMismatchOnArithmeticIsRuntimeError(t *testing.T) {
	_, report := run(t, `print "a" - 1;`)
	assert.True(t, report.HadRuntimeError())
}

func TestEval_StringConcatenation(t *testing.T) {
	out, report := run(t, `print "foo" + "bar";`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"foobar"}, out)
}

func TestEval_Truthiness(t *testing.T) {
	out, report := run(t, `
		if (0) print "zero is truthy"; else print "zero is falsy";
		if ("") print "empty string is truthy"; else print "empty string is falsy";
		if (nil) print "nil is truthy"; else print "nil is falsy";
	`)
	require.False(t, report.HadRuntimeError())
	assert.Equal(t, []string{"zero is truthy", "empty string is truthy", "nil is falsy"}, out)
}
