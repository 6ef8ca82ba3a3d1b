/*
File    : wick/eval/eval_statements.go
*/

package eval

import (
	"github.com/wick-lang/wick/function"
	"github.com/wick-lang/wick/parser"
	"github.com/wick-lang/wick/scope"
	"github.com/wick-lang/wick/value"
)

// execStmt executes one statement for its side effect, returning a
// non-nil *returnSignal the instant a `return` fires so blocks and
// control statements can propagate it upward without running further
// sibling statements.
func (e *Evaluator) execStmt(s parser.Stmt) *returnSignal {
	switch st := s.(type) {
	case *parser.ExpressionStmt:
		e.evalExpr(st.Expr)
		return nil
	case *parser.PrintStmt:
		v := e.evalExpr(st.Expr)
		e.Printer.Print(v.String())
		return nil
	case *parser.VarStmt:
		var v value.Value = value.Instance
		if st.Initializer != nil {
			v = e.evalExpr(st.Initializer)
		}
		e.Env.Current.Define(st.Name.Lexeme, v)
		return nil
	case *parser.BlockStmt:
		return e.execBlock(st.Statements, scope.New(e.Env.Current))
	case *parser.IfStmt:
		if value.IsTruthy(e.evalExpr(st.Condition)) {
			return e.execStmt(st.Then)
		} else if st.Else != nil {
			return e.execStmt(st.Else)
		}
		return nil
	case *parser.WhileStmt:
		for value.IsTruthy(e.evalExpr(st.Condition)) {
			if sig := e.execStmt(st.Body); sig != nil {
				return sig
			}
		}
		return nil
	case *parser.FunctionStmt:
		fn := function.New(st, e.Env.Current)
		e.Env.Current.Define(st.Name.Lexeme, fn)
		return nil
	case *parser.ReturnStmt:
		var v value.Value = value.Instance
		if st.Value != nil {
			v = e.evalExpr(st.Value)
		}
		return &returnSignal{value: v}
	}
	return nil
}

// execBlock pushes newScope, executes each child statement in order, and
// pops the scope on every exit path (normal completion or a propagated
// return) by simply restoring e.Env.Current before returning. The
// restore is deferred so a panic (runtime error) during the block also
// restores it.
func (e *Evaluator) execBlock(statements []parser.Stmt, newScope *scope.Scope) *returnSignal {
	previous := e.Env.Current
	e.Env.Current = newScope
	defer func() { e.Env.Current = previous }()

	for _, stmt := range statements {
		if sig := e.execStmt(stmt); sig != nil {
			return sig
		}
	}
	return nil
}
