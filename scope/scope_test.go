/*
File    : wick/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wick-lang/wick/value"
)

func TestScope_DefineAndGet(t *testing.T) {
	s := New(nil)
	s.Define("a", value.Number{Value: 1})

	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)
}

func TestScope_GetWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Define("a", value.Number{Value: 1})
	child := New(parent)

	v, ok := child.Get("a")
	require.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)
}

func TestScope_DefineShadowsWithoutMutatingParent(t *testing.T) {
	parent := New(nil)
	parent.Define("a", value.Number{Value: 1})
	child := New(parent)
	child.Define("a", value.Number{Value: 2})

	childVal, _ := child.Get("a")
	parentVal, _ := parent.Get("a")
	assert.Equal(t, value.Number{Value: 2}, childVal)
	assert.Equal(t, value.Number{Value: 1}, parentVal)
}

func TestScope_AssignUpdatesExistingBindingInEnclosingScope(t *testing.T) {
	parent := New(nil)
	parent.Define("a", value.Number{Value: 1})
	child := New(parent)

	ok := child.Assign("a", value.Number{Value: 99})
	require.True(t, ok)

	v, _ := parent.Get("a")
	assert.Equal(t, value.Number{Value: 99}, v)
}

func TestScope_AssignToUndefinedNameFails(t *testing.T) {
	s := New(nil)
	assert.False(t, s.Assign("missing", value.Number{Value: 1}))
}

func TestScope_SharedCaptureIsVisibleThroughBothHolders(t *testing.T) {
	// Two "holders" of the same scope (simulating a call frame and a
	// closure that captured it) must observe each other's mutations,
	// since Wick scopes are shared by pointer, not copied on capture.
	captured := New(nil)
	captured.Define("count", value.Number{Value: 0})

	holderA := captured
	holderB := captured

	holderA.Assign("count", value.Number{Value: 1})
	v, _ := holderB.Get("count")
	assert.Equal(t, value.Number{Value: 1}, v)
}

func TestScope_GetAtAndAssignAtUseExactDepth(t *testing.T) {
	root := New(nil)
	root.Define("a", value.Number{Value: 1})
	middle := New(root)
	inner := New(middle)

	v, ok := inner.GetAt(2, "a")
	require.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)

	inner.AssignAt(2, "a", value.Number{Value: 5})
	v, _ = root.Get("a")
	assert.Equal(t, value.Number{Value: 5}, v)
}

func TestNewEnvironment_CurrentAndGlobalsShareRootScope(t *testing.T) {
	env := NewEnvironment()
	env.Current.Define("a", value.Number{Value: 1})

	v, ok := env.Globals.Get("a")
	require.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)
}
