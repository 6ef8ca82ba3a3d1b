/*
File    : wick/parser/parser_expressions.go
*/

package parser

import "github.com/wick-lang/wick/lexer"

// expression is the entry point into the precedence chain:
// assignment -> or -> and -> equality -> comparison -> term -> factor ->
// unary -> call -> primary.
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment is right-associative: it first parses an `or`-expression,
// and if followed by `=`, converts a bare Variable LHS into an Assign.
// Any other LHS shape reports "Invalid assignment target" without
// raising a parse error; execution continues with the non-assigned LHS.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*VariableExpr); ok {
			return NewAssignExpr(v.Name, value)
		}
		p.report.ErrorToken(equals.Line, equals.Lexeme, false, "Invalid assignment target.")
		return expr
	}
	return expr
}

// or parses left-associative short-circuit `or`, represented as
// LogicalExpr (not BinaryExpr) so the evaluator can short-circuit.
func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.Or) {
		op := p.previous()
		right := p.and()
		expr = NewLogicalExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.And) {
		op := p.previous()
		right := p.equality()
		expr = NewLogicalExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.Minus, lexer.Plus) {
		op := p.previous()
		right := p.factor()
		expr = NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.Slash, lexer.Star) {
		op := p.previous()
		right := p.unary()
		expr = NewBinaryExpr(expr, op, right)
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		operand := p.unary()
		return NewUnaryExpr(op, operand)
	}
	return p.call()
}

// call parses `primary ("(" args? ")")*`, permitting chained calls like
// `f()()`.
func (p *Parser) call() Expr {
	expr := p.primary()

	for {
		if p.match(lexer.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	paren := p.consume(lexer.RightParen, "Expect ')' after arguments.")
	return NewCallExpr(callee, paren, args)
}

// primary parses `true | false | nil | number | string | identifier |
// "(" expr ")"`.
func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.False):
		return NewLiteralExpr(false)
	case p.match(lexer.True):
		return NewLiteralExpr(true)
	case p.match(lexer.Nil):
		return NewLiteralExpr(nil)
	case p.match(lexer.Number):
		return NewLiteralExpr(p.previous().Value)
	case p.match(lexer.String):
		return NewLiteralExpr(p.previous().Value)
	case p.match(lexer.Identifier):
		return NewVariableExpr(p.previous())
	case p.match(lexer.LeftParen):
		expr := p.expression()
		p.consume(lexer.RightParen, "Expect ')' after expression.")
		return NewGroupingExpr(expr)
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}
