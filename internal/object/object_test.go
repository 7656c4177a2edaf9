package object

import (
	"testing"

	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/token"
	"github.com/stretchr/testify/assert"
)

func sp() token.Span { return token.Span{} }

func TestMapOrdersByStructuralKey(t *testing.T) {
	m := NewMap(sp())
	m.Set(NewString(sp(), "b"), NewInteger(sp(), numeric.FitInt64(2)))
	m.Set(NewString(sp(), "a"), NewInteger(sp(), numeric.FitInt64(1)))
	m.Set(NewString(sp(), "c"), NewInteger(sp(), numeric.FitInt64(3)))

	entries := m.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Key.(*String).Value)
	assert.Equal(t, "b", entries[1].Key.(*String).Value)
	assert.Equal(t, "c", entries[2].Key.(*String).Value)
}

func TestMapSetOverwritesExistingKey(t *testing.T) {
	m := NewMap(sp())
	m.Set(NewString(sp(), "x"), NewInteger(sp(), numeric.FitInt64(1)))
	m.Set(NewString(sp(), "x"), NewInteger(sp(), numeric.FitInt64(2)))
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(NewString(sp(), "x"))
	assert.True(t, ok)
	assert.Equal(t, int64(2), v.(*Integer).Value.ToInt64())
}

func TestArrayInspectIsUnquoted(t *testing.T) {
	a := NewArray(sp(), []Object{NewString(sp(), "hi"), NewInteger(sp(), numeric.FitInt64(1))})
	assert.Equal(t, "[hi, 1]", a.Inspect())
}

func TestStringPrettyPrintIsQuoted(t *testing.T) {
	s := NewString(sp(), "hi")
	assert.Equal(t, `"hi"`, s.PrettyPrint(false))
	assert.Equal(t, "hi", s.Inspect())
}

func TestCompareCrossTypeUsesTypeRank(t *testing.T) {
	i := NewInteger(sp(), numeric.FitInt64(1))
	f := NewFloat(sp(), numeric.FitFloat(1.0))
	assert.True(t, Compare(i, f) < 0)
	assert.True(t, Compare(f, i) > 0)
}
