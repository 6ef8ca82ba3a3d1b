/*
File    : wick/eval/evaluator.go
*/

// Package eval walks the AST produced by the parser, maintaining a chain
// of nested scopes and a distinguished global scope. It reads the
// resolver's side-table to resolve each local variable reference by
// walking exactly its recorded number of parent links, rather than
// searching the scope chain by name, and routes `print` output
// through an injected printer.Printer.
package eval

import (
	"fmt"

	"github.com/wick-lang/wick/function"
	"github.com/wick-lang/wick/parser"
	"github.com/wick-lang/wick/printer"
	"github.com/wick-lang/wick/reporter"
	"github.com/wick-lang/wick/resolver"
	"github.com/wick-lang/wick/scope"
	"github.com/wick-lang/wick/value"
)

// runtimeError is panicked by expression/statement evaluation and
// recovered at Run's boundary, carrying enough to produce a Reporter
// diagnostic. Using panic/recover to unwind rather than threading a Go
// `error` through every eval method keeps the tree-walk itself reading
// like the rules (each case either returns a Value or doesn't), at the
// cost of needing one recover() per top-level Run call.
type runtimeError struct {
	line    int
	message string
}

func (e *runtimeError) Error() string { return e.message }

func throw(line int, format string, args ...interface{}) {
	panic(&runtimeError{line: line, message: fmt.Sprintf(format, args...)})
}

// returnSignal unwinds statement execution back to the enclosing
// Foreign-function call when a `return` statement runs, carrying the
// returned Value.
type returnSignal struct {
	value value.Value
}

// Evaluator holds everything required to execute a resolved Wick program:
// the current Environment (scope chain + fixed globals), the resolver's
// depth table, and the Printer that `print` statements write through.
type Evaluator struct {
	Env     *scope.Environment
	Locals  resolver.Locals
	Printer printer.Printer
	Report  *reporter.Reporter
}

// New creates an Evaluator with a fresh global scope, pre-binding the
// native functions (clock, to_string, type_of, len, panic).
func New(p printer.Printer, report *reporter.Reporter) *Evaluator {
	e := &Evaluator{
		Env:     scope.NewEnvironment(),
		Locals:  make(resolver.Locals),
		Printer: p,
		Report:  report,
	}
	e.bindNatives()
	return e
}

// Run executes statements under locals (the resolver's side-table for
// this source unit), returning a non-nil error if a runtime error
// occurred. Successive calls on the same Evaluator (as the REPL makes,
// one per input line) preserve globals across calls.
func (e *Evaluator) Run(statements []parser.Stmt, locals resolver.Locals) (err error) {
	e.Locals = locals
	defer func() {
		if r := recover(); r != nil {
			rt, ok := r.(*runtimeError)
			if !ok {
				panic(r)
			}
			e.Report.RuntimeError(rt.line, rt.message)
			err = rt
		}
	}()

	for _, stmt := range statements {
		// A return at top level has nowhere to unwind to; the resolver
		// is supposed to have already rejected such a program, so
		// evaluation simply stops rather than silently dropping it.
		if sig := e.execStmt(stmt); sig != nil {
			return nil
		}
	}
	return nil
}

// lookUpVariable resolves name at exprID using the resolver's recorded
// depth when present, falling back to globals otherwise; the two paths
// are mutually exclusive.
func (e *Evaluator) lookUpVariable(exprID int, name string) (value.Value, bool) {
	if depth, ok := e.Locals[exprID]; ok {
		return e.Env.Current.GetAt(depth, name)
	}
	return e.Env.Globals.Get(name)
}

// assignVariable mirrors lookUpVariable for writes: resolved assignments
// go to the recorded depth, unresolved ones go straight to globals.
func (e *Evaluator) assignVariable(exprID int, name string, val value.Value) bool {
	if depth, ok := e.Locals[exprID]; ok {
		e.Env.Current.AssignAt(depth, name, val)
		return true
	}
	return e.Env.Globals.Assign(name, val)
}

// call invokes callee with already-evaluated args, dispatching to either
// a value.Native's host body or a function.Foreign's call protocol. line
// is the call expression's closing-paren line, used for arity/type
// diagnostics.
func (e *Evaluator) call(callee value.Value, line int, args []value.Value) value.Value {
	callable, ok := callee.(value.Callable)
	if !ok {
		throw(line, "Can only call functions.")
	}
	if len(args) != callable.Arity() {
		throw(line, "Expected %d arguments, received %d.", callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case *value.Native:
		result, err := fn.Body(args)
		if err != nil {
			throw(line, "%s", err.Error())
		}
		return result
	case *function.Foreign:
		return e.callForeign(fn, args)
	default:
		throw(line, "Can only call functions.")
		return nil
	}
}

// callForeign implements the foreign-function call protocol: save and
// restore the evaluator's current scope, run the call inside a fresh
// frame chained off the captured closure (not the caller's scope; that
// is what makes lexical scoping and closures work), and translate an
// in-flight return signal into the call's result.
func (e *Evaluator) callForeign(fn *function.Foreign, args []value.Value) value.Value {
	saved := e.Env.Current
	defer func() { e.Env.Current = saved }()

	frame := scope.New(fn.Closure)
	for i, param := range fn.Decl.Params {
		frame.Define(param.Lexeme, args[i])
	}
	e.Env.Current = frame

	var result value.Value = value.Instance
	for _, stmt := range fn.Decl.Body {
		if sig := e.execStmt(stmt); sig != nil {
			result = sig.value
			break
		}
	}

	return result
}
