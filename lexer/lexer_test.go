/*
File    : wick/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wick-lang/wick/reporter"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLexer_Punctuation(t *testing.T) {
	report := reporter.New()
	tokens := New("(){},.-+;*/", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, []Kind{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot,
		Minus, Plus, Semicolon, Star, Slash, Eof,
	}, kinds(tokens))
}

func TestLexer_TwoCharOperators(t *testing.T) {
	report := reporter.New()
	tokens := New("! != = == > >= < <=", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, []Kind{
		Bang, BangEqual, Equal, EqualEqual, Greater, GreaterEqual, Less, LessEqual, Eof,
	}, kinds(tokens))
}

func TestLexer_Keywords(t *testing.T) {
	report := reporter.New()
	tokens := New("and class else false for fun if nil or print return super this true var while", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, []Kind{
		And, Class, Else, False, For, Fun, If, Nil, Or, Print, Return,
		Super, This, True, Var, While, Eof,
	}, kinds(tokens))
}

func TestLexer_Number(t *testing.T) {
	report := reporter.New()
	tokens := New("123.45", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, Number, tokens[0].Kind)
	assert.Equal(t, 123.45, tokens[0].Value)
}

func TestLexer_NumberWithTrailingDotOnlyConsumedIfFollowedByDigit(t *testing.T) {
	report := reporter.New()
	tokens := New("123.", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, []Kind{Number, Dot, Eof}, kinds(tokens))
	assert.Equal(t, 123.0, tokens[0].Value)
}

func TestLexer_String(t *testing.T) {
	report := reporter.New()
	tokens := New(`"hello world"`, report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, String, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Value)
}

func TestLexer_UnterminatedString(t *testing.T) {
	report := reporter.New()
	New(`"unterminated`, report).Scan()

	assert.True(t, report.HadError())
}

func TestLexer_LineComment(t *testing.T) {
	report := reporter.New()
	tokens := New("1 // a comment\n2", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, []Kind{Number, Number, Eof}, kinds(tokens))
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	report := reporter.New()
	New("@", report).Scan()

	assert.True(t, report.HadError())
}

func TestLexer_Identifier(t *testing.T) {
	report := reporter.New()
	tokens := New("foo_bar2", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, Identifier, tokens[0].Kind)
	assert.Equal(t, "foo_bar2", tokens[0].Lexeme)
}

func TestLexer_LineTracking(t *testing.T) {
	report := reporter.New()
	tokens := New("1\n2\n3", report).Scan()

	assert.False(t, report.HadError())
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
