package builtins

import (
	"testing"

	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp() token.Span { return token.Span{} }
func str(s string) *object.String { return object.NewString(sp(), s) }

func ctx() *object.CallContext { return &object.CallContext{Span: sp()} }

func TestLookupTermAndProcessNamespaces(t *testing.T) {
	term, ok := Lookup("term")
	require.True(t, ok)
	m, ok := term.(*object.Map)
	require.True(t, ok)
	_, ok = m.Get(str("print"))
	assert.True(t, ok)

	proc, ok := Lookup("process")
	require.True(t, ok)
	pm := proc.(*object.Map)
	_, ok = pm.Get(str("exit"))
	assert.True(t, ok)
}

func TestSplitEmptySeparatorStripsEnds(t *testing.T) {
	result, err := intrinsicSplit([]object.Object{str("abc")}, ctx())
	require.NoError(t, err)
	arr := result.(*object.Array)
	got := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		got[i] = e.(*object.String).Value
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSplitWithSeparator(t *testing.T) {
	result, err := intrinsicSplit([]object.Object{str("a,b,c"), str(",")}, ctx())
	require.NoError(t, err)
	arr := result.(*object.Array)
	assert.Len(t, arr.Elements, 3)
	assert.Equal(t, "b", arr.Elements[1].(*object.String).Value)
}

func TestJoinUsesPlainDisplayNoQuotes(t *testing.T) {
	arr := object.NewArray(sp(), []object.Object{str("a"), str("b"), str("c")})
	result, err := intrinsicJoin([]object.Object{arr, str(",")}, ctx())
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", result.(*object.String).Value)
}

func TestMapInvokesProvidedFunction(t *testing.T) {
	arr := object.NewArray(sp(), []object.Object{str("a"), str("b")})
	called := []object.Object{}
	c := &object.CallContext{
		Span: sp(),
		Invoke: func(fn object.Object, args []object.Object, scope object.Env, span token.Span) (object.Object, error) {
			called = append(called, args[0])
			return str(args[0].(*object.String).Value + "!"), nil
		},
	}
	result, err := intrinsicMap([]object.Object{arr, object.NewBuiltin(sp(), "id", false, nil)}, c)
	require.NoError(t, err)
	out := result.(*object.Array)
	assert.Len(t, called, 2)
	assert.Equal(t, "a!", out.Elements[0].(*object.String).Value)
}

func TestKeysValuesEntriesOrderedByKey(t *testing.T) {
	m := object.NewMap(sp())
	m.Set(str("b"), str("2"))
	m.Set(str("a"), str("1"))

	keys, err := intrinsicKeys([]object.Object{m}, ctx())
	require.NoError(t, err)
	ks := keys.(*object.Array).Elements
	assert.Equal(t, "a", ks[0].(*object.String).Value)
	assert.Equal(t, "b", ks[1].(*object.String).Value)

	entries, err := intrinsicEntries([]object.Object{m}, ctx())
	require.NoError(t, err)
	first := entries.(*object.Array).Elements[0].(*object.Array)
	assert.Equal(t, "a", first.Elements[0].(*object.String).Value)
	assert.Equal(t, "1", first.Elements[1].(*object.String).Value)
}

func TestIntrinsicTypeMismatchErrors(t *testing.T) {
	_, err := intrinsicArrayLen([]object.Object{str("not an array")}, ctx())
	assert.Error(t, err)
}
