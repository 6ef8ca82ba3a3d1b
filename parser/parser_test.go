/*
File    : wick/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wick-lang/wick/lexer"
	"github.com/wick-lang/wick/reporter"
)

func parse(t *testing.T, src string) ([]Stmt, *reporter.Reporter) {
	t.Helper()
	report := reporter.New()
	tokens := lexer.New(src, report).Scan()
	stmts := New(tokens, report).Parse()
	return stmts, report
}

func TestParser_BinaryPrecedence(t *testing.T) {
	stmts, report := parse(t, "1 + 2 * 3;")
	require.False(t, report.HadError())
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ExpressionStmt)
	bin := exprStmt.Expr.(*BinaryExpr)
	assert.Equal(t, lexer.Plus, bin.Op.Kind)

	right := bin.Right.(*BinaryExpr)
	assert.Equal(t, lexer.Star, right.Op.Kind)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	stmts, report := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, report.HadError())
	require.Len(t, stmts, 1)

	outer := stmts[0].(*BlockStmt)
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*VarStmt)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*WhileStmt)
	require.True(t, ok)

	body := whileStmt.Body.(*BlockStmt)
	require.Len(t, body.Statements, 2)
	_, isPrint := body.Statements[0].(*PrintStmt)
	assert.True(t, isPrint)
	_, isIncrement := body.Statements[1].(*ExpressionStmt)
	assert.True(t, isIncrement)
}

func TestParser_ForWithNoClauses(t *testing.T) {
	stmts, report := parse(t, "for (;;) print 1;")
	require.False(t, report.HadError())

	whileStmt := stmts[0].(*WhileStmt)
	lit := whileStmt.Condition.(*LiteralExpr)
	assert.Equal(t, true, lit.Value)
}

func TestParser_AssignmentTarget(t *testing.T) {
	stmts, report := parse(t, "a = 1;")
	require.False(t, report.HadError())

	exprStmt := stmts[0].(*ExpressionStmt)
	_, ok := exprStmt.Expr.(*AssignExpr)
	assert.True(t, ok)
}

func TestParser_InvalidAssignmentTargetReportsButDoesNotAbort(t *testing.T) {
	stmts, report := parse(t, "1 = 2;")
	assert.True(t, report.HadError())
	// Parsing continues past the error: the statement is still produced.
	assert.Len(t, stmts, 1)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	stmts, report := parse(t, "fun add(a, b) { return a + b; }")
	require.False(t, report.HadError())

	fn := stmts[0].(*FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
}

func TestParser_CallChaining(t *testing.T) {
	stmts, report := parse(t, "f(1)(2);")
	require.False(t, report.HadError())

	exprStmt := stmts[0].(*ExpressionStmt)
	outer := exprStmt.Expr.(*CallExpr)
	require.Len(t, outer.Args, 1)

	inner, ok := outer.Callee.(*CallExpr)
	require.True(t, ok)
	require.Len(t, inner.Args, 1)
}

func TestParser_MissingSemicolonIsAnError(t *testing.T) {
	_, report := parse(t, "print 1")
	assert.True(t, report.HadError())
}

func TestParser_UnexpectedTokenReportsExpectExpression(t *testing.T) {
	_, report := parse(t, "var a = ;")
	assert.True(t, report.HadError())
	require.NotEmpty(t, report.Diagnostics())
	assert.Contains(t, report.Diagnostics()[0].Message, "Expect expression.")
}
