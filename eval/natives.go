/*
File    : wick/eval/natives.go
*/

package eval

import (
	"errors"
	"time"

	"github.com/wick-lang/wick/value"
)

// bindNatives pre-binds every native (host-provided) function into the
// global scope at evaluator construction time.
func (e *Evaluator) bindNatives() {
	bind := func(name string, arity int, body func(args []value.Value) (value.Value, error)) {
		e.Env.Globals.Define(name, value.NewNative(name, arity, body))
	}

	bind("clock", 0, nativeClock)
	bind("to_string", 1, nativeToString)

	// extra natives: type inspection, string length, fail-fast.
	bind("type_of", 1, nativeTypeOf)
	bind("len", 1, nativeLen)
	bind("panic", 1, nativePanic)
}

// nativeClock returns seconds since the Unix epoch as a Number.
func nativeClock(args []value.Value) (value.Value, error) {
	return value.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}

// nativeToString renders v the same way print formats it: numbers use
// the host's default float formatting, Nil prints "Nil", functions print
// "<fn NAME>" or "<native-fn NAME>".
func nativeToString(args []value.Value) (value.Value, error) {
	return value.String{Value: args[0].String()}, nil
}

// nativeTypeOf names the runtime type of v.
func nativeTypeOf(args []value.Value) (value.Value, error) {
	return value.String{Value: string(args[0].Type())}, nil
}

// nativeLen returns the rune length of a String argument.
func nativeLen(args []value.Value) (value.Value, error) {
	s, ok := args[0].(value.String)
	if !ok {
		return nil, errors.New("Argument must be string.")
	}
	return value.Number{Value: float64(len([]rune(s.Value)))}, nil
}

// nativePanic raises a runtime error carrying msg's string form, for
// scripts that want to fail fast rather than let a bug surface later as
// a confusing type error.
func nativePanic(args []value.Value) (value.Value, error) {
	return nil, errors.New(args[0].String())
}
