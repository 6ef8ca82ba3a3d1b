/*
File    : wick/resolver/resolver.go
*/

// Package resolver performs a single top-down static pass over the AST
// that annotates every variable reference with its lexical depth before
// the evaluator ever runs, catching scoping errors (duplicate locals,
// reading a local inside its own initializer, return outside a function)
// ahead of execution. It follows a classic scope-stack-of-maps design,
// split into its own small package with one method per concern.
package resolver

import (
	"github.com/wick-lang/wick/lexer"
	"github.com/wick-lang/wick/parser"
	"github.com/wick-lang/wick/reporter"
)

// functionContext tracks whether the resolver is currently inside a
// function body, so it can report "Can't return from top-level code" as
// a resolution error instead of letting a stray return reach evaluation.
type functionContext int

const (
	contextNone functionContext = iota
	contextFunction
)

// Locals is the resolver's side-table: Expr.ID -> scope depth. Depth 0
// means "defined in the innermost enclosing scope". An Expr.ID absent
// from Locals must be resolved against globals at runtime; the two
// cases are mutually exclusive.
type Locals map[int]int

// Resolver walks a statement list once, populating a Locals table and
// reporting scope violations through the shared Reporter. Resolver itself
// never mutates Locals' visibility outside Resolve; callers get a fresh
// map back.
type Resolver struct {
	report *reporter.Reporter
	scopes []map[string]bool
	fn     functionContext
	locals Locals
}

// New creates a Resolver that reports through report.
func New(report *reporter.Reporter) *Resolver {
	return &Resolver{report: report, locals: make(Locals)}
}

// Resolve walks statements and returns the populated side-table. Callers
// must check report.HadError() afterwards, the pipeline aborts before
// evaluation if the resolver reported any violation.
func (r *Resolver) Resolve(statements []parser.Stmt) Locals {
	r.resolveStmts(statements)
	return r.locals
}

func (r *Resolver) resolveStmts(statements []parser.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare inserts name -> false ("declared but not yet initialized")
// into the innermost scope. The global scope (empty scope stack) is
// exempt from the duplicate check: redeclaration at top level is
// allowed.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.report.ErrorToken(name.Line, name.Lexeme, false,
			"Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope, once its
// initializer (if any) has been resolved.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; on the
// first scope containing name, it records exprID -> (top - index) in
// Locals. If no scope contains name, no entry is recorded; the
// evaluator will look it up in globals at runtime.
func (r *Resolver) resolveLocal(exprID int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmt(s parser.Stmt) {
	switch st := s.(type) {
	case *parser.ExpressionStmt:
		r.resolveExpr(st.Expr)
	case *parser.PrintStmt:
		r.resolveExpr(st.Expr)
	case *parser.VarStmt:
		r.declare(st.Name)
		if st.Initializer != nil {
			r.resolveExpr(st.Initializer)
		}
		r.define(st.Name)
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(st.Statements)
		r.endScope()
	case *parser.IfStmt:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.Then)
		if st.Else != nil {
			r.resolveStmt(st.Else)
		}
	case *parser.WhileStmt:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.Body)
	case *parser.FunctionStmt:
		r.declare(st.Name)
		r.define(st.Name)
		r.resolveFunction(st)
	case *parser.ReturnStmt:
		if r.fn == contextNone {
			r.report.ErrorToken(st.Keyword.Line, st.Keyword.Lexeme, false,
				"Can't return from top-level code.")
		}
		if st.Value != nil {
			r.resolveExpr(st.Value)
		}
	}
}

// resolveFunction opens a new scope for the function's parameters and
// body. Duplicate parameter names go through the same declare() path as
// locals, so "Already a variable with this name in this scope" applies
// to them too, for tighter error reporting.
func (r *Resolver) resolveFunction(fn *parser.FunctionStmt) {
	enclosing := r.fn
	r.fn = contextFunction

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.fn = enclosing
}

func (r *Resolver) resolveExpr(e parser.Expr) {
	switch ex := e.(type) {
	case *parser.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][ex.Name.Lexeme]; ok && !defined {
				r.report.ErrorToken(ex.Name.Line, ex.Name.Lexeme, false,
					"Can't read local variables in its own declaration.")
			}
		}
		r.resolveLocal(ex.ExprID(), ex.Name.Lexeme)
	case *parser.AssignExpr:
		r.resolveExpr(ex.Value)
		r.resolveLocal(ex.ExprID(), ex.Name.Lexeme)
	case *parser.BinaryExpr:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)
	case *parser.LogicalExpr:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)
	case *parser.UnaryExpr:
		r.resolveExpr(ex.Operand)
	case *parser.GroupingExpr:
		r.resolveExpr(ex.Inner)
	case *parser.CallExpr:
		r.resolveExpr(ex.Callee)
		for _, a := range ex.Args {
			r.resolveExpr(a)
		}
	case *parser.LiteralExpr:
		// literals carry no nested expressions or names to resolve
	}
}
