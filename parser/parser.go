/*
File    : wick/parser/parser.go
*/

package parser

import (
	"github.com/wick-lang/wick/lexer"
	"github.com/wick-lang/wick/reporter"
)

// maxArgs bounds both parameter lists and call argument lists, per the
// "at most 255 parameters"/"at most 255 arguments" limits.
const maxArgs = 255

// parseError is a sentinel the recursive-descent methods return (wrapped
// in panic/recover at the statement boundary) to unwind to the nearest
// synchronization point after a diagnostic has already been reported.
// This mirrors the error-collection idiom (errors are recorded,
// not fatal) while still letting a single malformed expression abort its
// own parse cleanly.
type parseError struct{ msg string }

func (e parseError) Error() string { return e.msg }

// Parser is a recursive-descent parser with one token of lookahead over a
// fully-scanned token slice: the Lexer hands back a complete list up
// front rather than being consumed one NextToken() call at a time.
type Parser struct {
	tokens  []lexer.Token
	current int
	report  *reporter.Reporter
}

// New creates a Parser over tokens, reporting diagnostics through report.
func New(tokens []lexer.Token, report *reporter.Reporter) *Parser {
	return &Parser{tokens: tokens, report: report}
}

// Parse parses the entire token stream into a statement list. Parse
// errors are recorded via the Reporter and the parser resynchronizes so
// later errors in the same source can still be reported; callers must
// check report.HadError() before trusting the returned statements.
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.Eof
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.isAtEnd() {
		return kind == lexer.Eof
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// match advances and returns true if the current token's kind is any of
// kinds, otherwise leaves the cursor untouched.
func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have the given kind, advancing
// past it; otherwise it reports message and raises a parseError to
// unwind to the nearest synchronization point.
func (p *Parser) consume(kind lexer.Kind, message string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt records a diagnostic anchored to tok and returns a parseError
// for the caller to panic with.
func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	p.report.ErrorToken(tok.Line, tok.Lexeme, tok.Kind == lexer.Eof, message)
	return parseError{msg: message}
}

// synchronize discards tokens after a parse error until it finds a
// statement boundary: a semicolon, or a token that begins a new
// declaration/statement. This is standard panic-mode recovery: it lets
// the parser keep going and report multiple independent errors from one
// source unit.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.Semicolon {
			return
		}
		switch p.peek().Kind {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.For,
			lexer.If, lexer.While, lexer.Print, lexer.Return:
			return
		}
		p.advance()
	}
}
