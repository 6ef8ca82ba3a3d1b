/*
File    : wick/eval/eval_expressions.go
*/

package eval

import (
	"github.com/wick-lang/wick/lexer"
	"github.com/wick-lang/wick/parser"
	"github.com/wick-lang/wick/value"
)

// evalExpr dispatches on the concrete Expr type, implementing every
// expression-evaluation rule.
func (e *Evaluator) evalExpr(expr parser.Expr) value.Value {
	switch ex := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(ex.Value)
	case *parser.GroupingExpr:
		return e.evalExpr(ex.Inner)
	case *parser.UnaryExpr:
		return e.evalUnary(ex)
	case *parser.BinaryExpr:
		return e.evalBinary(ex)
	case *parser.LogicalExpr:
		return e.evalLogical(ex)
	case *parser.VariableExpr:
		return e.evalVariable(ex)
	case *parser.AssignExpr:
		return e.evalAssign(ex)
	case *parser.CallExpr:
		return e.evalCall(ex)
	}
	throw(0, "Unknown expression.")
	return nil
}

// literalValue converts the interface{} a LiteralExpr carries (as parsed
// by the lexer/parser) into a runtime value.Value.
func literalValue(v interface{}) value.Value {
	switch vv := v.(type) {
	case nil:
		return value.Instance
	case bool:
		return value.Bool{Value: vv}
	case float64:
		return value.Number{Value: vv}
	case string:
		return value.String{Value: vv}
	default:
		return value.Instance
	}
}

func (e *Evaluator) evalUnary(ex *parser.UnaryExpr) value.Value {
	operand := e.evalExpr(ex.Operand)

	switch ex.Op.Kind {
	case lexer.Minus:
		n, ok := operand.(value.Number)
		if !ok {
			throw(ex.Op.Line, "Operand must be number.")
		}
		return value.Number{Value: -n.Value}
	case lexer.Bang:
		return value.Bool{Value: !value.IsTruthy(operand)}
	}
	throw(ex.Op.Line, "Unknown unary operator '%s'.", ex.Op.Lexeme)
	return nil
}

func (e *Evaluator) evalBinary(ex *parser.BinaryExpr) value.Value {
	left := e.evalExpr(ex.Left)
	right := e.evalExpr(ex.Right)

	switch ex.Op.Kind {
	case lexer.Minus, lexer.Star, lexer.Slash:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			throw(ex.Op.Line, "Operands must be number.")
		}
		switch ex.Op.Kind {
		case lexer.Minus:
			return value.Number{Value: ln.Value - rn.Value}
		case lexer.Star:
			return value.Number{Value: ln.Value * rn.Value}
		case lexer.Slash:
			return value.Number{Value: ln.Value / rn.Value}
		}
	case lexer.Plus:
		if ln, lok := left.(value.Number); lok {
			if rn, rok := right.(value.Number); rok {
				return value.Number{Value: ln.Value + rn.Value}
			}
		}
		if ls, lok := left.(value.String); lok {
			if rs, rok := right.(value.String); rok {
				return value.String{Value: ls.Value + rs.Value}
			}
		}
		throw(ex.Op.Line, "Both operands must be either number or string.")
	case lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			throw(ex.Op.Line, "Operands must be number.")
		}
		switch ex.Op.Kind {
		case lexer.Greater:
			return value.Bool{Value: ln.Value > rn.Value}
		case lexer.GreaterEqual:
			return value.Bool{Value: ln.Value >= rn.Value}
		case lexer.Less:
			return value.Bool{Value: ln.Value < rn.Value}
		case lexer.LessEqual:
			return value.Bool{Value: ln.Value <= rn.Value}
		}
	case lexer.EqualEqual:
		return value.Bool{Value: value.Equal(left, right)}
	case lexer.BangEqual:
		return value.Bool{Value: !value.Equal(left, right)}
	}
	throw(ex.Op.Line, "Unknown binary operator '%s'.", ex.Op.Lexeme)
	return nil
}

// evalLogical implements short-circuit `and`/`or`: when short-circuiting
// applies, the left operand's value is returned unchanged (not coerced to
// Bool) and the right operand is never evaluated.
func (e *Evaluator) evalLogical(ex *parser.LogicalExpr) value.Value {
	left := e.evalExpr(ex.Left)

	if ex.Op.Kind == lexer.Or {
		if value.IsTruthy(left) {
			return left
		}
	} else { // and
		if !value.IsTruthy(left) {
			return left
		}
	}
	return e.evalExpr(ex.Right)
}

func (e *Evaluator) evalVariable(ex *parser.VariableExpr) value.Value {
	v, ok := e.lookUpVariable(ex.ExprID(), ex.Name.Lexeme)
	if !ok {
		throw(ex.Name.Line, "Undefined variable '%s'.", ex.Name.Lexeme)
	}
	return v
}

func (e *Evaluator) evalAssign(ex *parser.AssignExpr) value.Value {
	val := e.evalExpr(ex.Value)
	if !e.assignVariable(ex.ExprID(), ex.Name.Lexeme, val) {
		throw(ex.Name.Line, "Undefined variable '%s'.", ex.Name.Lexeme)
	}
	return val
}

func (e *Evaluator) evalCall(ex *parser.CallExpr) value.Value {
	callee := e.evalExpr(ex.Callee)

	args := make([]value.Value, len(ex.Args))
	for i, a := range ex.Args {
		args[i] = e.evalExpr(a)
	}
	return e.call(callee, ex.Paren.Line, args)
}
