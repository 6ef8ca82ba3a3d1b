/*
File    : wick/astprinter/astprinter.go
*/

// Package astprinter renders a parsed program as an indented tree, for the
// CLI's --ast debug flag. Structured after the root-level
// PrintingVisitor (same indent-tracking buffer walk), generalized to
// Wick's Expr/Stmt node set.
package astprinter

import (
	"bytes"
	"fmt"

	"github.com/wick-lang/wick/parser"
)

const indentSize = 2

// Printer walks a statement list and writes an indented tree to buf.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// New returns a Printer ready to render a program.
func New() *Printer {
	return &Printer{}
}

// Print renders statements and returns the resulting tree text.
func Print(statements []parser.Stmt) string {
	p := New()
	for _, s := range statements {
		p.stmt(s)
	}
	return p.buf.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString(" ")
	}
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) stmt(s parser.Stmt) {
	switch st := s.(type) {
	case *parser.ExpressionStmt:
		p.line("ExpressionStmt")
		p.nested(func() { p.expr(st.Expr) })
	case *parser.PrintStmt:
		p.line("PrintStmt")
		p.nested(func() { p.expr(st.Expr) })
	case *parser.VarStmt:
		p.line("VarStmt %s", st.Name.Lexeme)
		if st.Initializer != nil {
			p.nested(func() { p.expr(st.Initializer) })
		}
	case *parser.BlockStmt:
		p.line("BlockStmt")
		p.nested(func() {
			for _, child := range st.Statements {
				p.stmt(child)
			}
		})
	case *parser.IfStmt:
		p.line("IfStmt")
		p.nested(func() {
			p.line("condition")
			p.nested(func() { p.expr(st.Condition) })
			p.line("then")
			p.nested(func() { p.stmt(st.Then) })
			if st.Else != nil {
				p.line("else")
				p.nested(func() { p.stmt(st.Else) })
			}
		})
	case *parser.WhileStmt:
		p.line("WhileStmt")
		p.nested(func() {
			p.line("condition")
			p.nested(func() { p.expr(st.Condition) })
			p.line("body")
			p.nested(func() { p.stmt(st.Body) })
		})
	case *parser.FunctionStmt:
		names := make([]string, len(st.Params))
		for i, param := range st.Params {
			names[i] = param.Lexeme
		}
		p.line("FunctionStmt %s(%s)", st.Name.Lexeme, joinNames(names))
		p.nested(func() {
			for _, child := range st.Body {
				p.stmt(child)
			}
		})
	case *parser.ReturnStmt:
		p.line("ReturnStmt")
		if st.Value != nil {
			p.nested(func() { p.expr(st.Value) })
		}
	default:
		p.line("<unknown statement>")
	}
}

func (p *Printer) expr(e parser.Expr) {
	switch ex := e.(type) {
	case *parser.LiteralExpr:
		p.line("Literal %v", ex.Value)
	case *parser.GroupingExpr:
		p.line("Grouping")
		p.nested(func() { p.expr(ex.Inner) })
	case *parser.UnaryExpr:
		p.line("Unary %s", ex.Op.Lexeme)
		p.nested(func() { p.expr(ex.Operand) })
	case *parser.BinaryExpr:
		p.line("Binary %s", ex.Op.Lexeme)
		p.nested(func() {
			p.expr(ex.Left)
			p.expr(ex.Right)
		})
	case *parser.LogicalExpr:
		p.line("Logical %s", ex.Op.Lexeme)
		p.nested(func() {
			p.expr(ex.Left)
			p.expr(ex.Right)
		})
	case *parser.VariableExpr:
		p.line("Variable %s", ex.Name.Lexeme)
	case *parser.AssignExpr:
		p.line("Assign %s", ex.Name.Lexeme)
		p.nested(func() { p.expr(ex.Value) })
	case *parser.CallExpr:
		p.line("Call")
		p.nested(func() {
			p.expr(ex.Callee)
			for _, arg := range ex.Args {
				p.expr(arg)
			}
		})
	default:
		p.line("<unknown expression>")
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
