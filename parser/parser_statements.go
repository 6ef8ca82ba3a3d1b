/*
File    : wick/parser/parser_statements.go
*/

package parser

import "github.com/wick-lang/wick/lexer"

// declaration parses `funDecl | varDecl | statement`, recovering to the
// next synchronization point on a parse error so a single malformed
// declaration doesn't abort the whole parse.
func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(lexer.Fun) {
		return p.function("function")
	}
	if p.match(lexer.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

// varDeclaration parses `var IDENT ("=" expr)? ";"`.
func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.Identifier, "Expect variable name.")

	var initializer Expr
	if p.match(lexer.Equal) {
		initializer = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

// function parses `fun IDENT "(" params? ")" block`. kind is used only in
// diagnostic messages ("function"), since Wick has no other callable
// declaration form yet.
func (p *Parser) function(kind string) Stmt {
	name := p.consume(lexer.Identifier, "Expect "+kind+" name.")
	p.consume(lexer.LeftParen, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.Identifier, "Expect parameter name."))
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "Expect ')' after parameters.")

	p.consume(lexer.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

// statement parses `for | if | print | return | while | block | exprStmt`.
func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.LeftBrace):
		return &BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block parses the statement list inside `{ ... }`, consuming the
// closing brace. The opening brace must already have been consumed.
func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(lexer.RightBrace, "Expect '}' after block.")
	return statements
}

// forStatement desugars `for (init; cond; inc) body` into
// `{ init; while (cond ?? true) { body; inc; } }` at parse time, so the
// evaluator never has to know `for` exists (design note: halves
// the statement kinds the evaluator interprets).
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LeftParen, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(lexer.Semicolon):
		initializer = nil
	case p.match(lexer.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.Semicolon) {
		condition = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RightParen) {
		increment = p.expression()
	}
	p.consume(lexer.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expr: increment}}}
	}
	if condition == nil {
		condition = NewLiteralExpr(true)
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after value.")
	return &PrintStmt{Expr: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.Semicolon) {
		value = p.expression()
	}
	p.consume(lexer.Semicolon, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.Semicolon, "Expect ';' after expression.")
	return &ExpressionStmt{Expr: expr}
}
