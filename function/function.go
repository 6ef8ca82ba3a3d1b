/*
File    : wick/function/function.go
*/

// Package function defines Foreign, the Callable implementation for
// functions declared in Wick source (as opposed to value.Native, which
// wraps host-provided functions). It lives in its own package, rather
// than alongside value.Native, because a Foreign callable has to refer
// to a parser.FunctionStmt and a scope.Scope, and both of those packages
// would otherwise have to import value, creating a cycle.
package function

import (
	"fmt"

	"github.com/wick-lang/wick/parser"
	"github.com/wick-lang/wick/scope"
	"github.com/wick-lang/wick/value"
)

// Foreign is a function declared with `fun` in Wick source. It captures
// the scope that was current when its declaration executed (Closure),
// giving it access to that scope's variables even after the declaring
// block has finished executing, and, because Closure is a live pointer
// rather than a snapshot, later mutations of the captured scope are
// visible to the function too (see scope package doc comment).
type Foreign struct {
	id      uint64
	Decl    *parser.FunctionStmt
	Closure *scope.Scope
}

// New wraps decl as a Foreign callable closing over closure, assigning it
// a fresh id from the same counter value.Native uses, so callable ids are
// unique across both kinds.
func New(decl *parser.FunctionStmt, closure *scope.Scope) *Foreign {
	return &Foreign{id: value.NextCallableID(), Decl: decl, Closure: closure}
}

func (f *Foreign) Type() value.Type { return value.FunctionType }
func (f *Foreign) ID() uint64       { return f.id }
func (f *Foreign) Name() string     { return f.Decl.Name.Lexeme }
func (f *Foreign) Arity() int       { return len(f.Decl.Params) }

func (f *Foreign) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}
