package scope

import (
	"testing"

	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp() token.Span { return token.Span{} }

func intObj(n int64) *object.Integer {
	return object.NewInteger(sp(), numeric.FitInt64(n))
}

func TestSetThenGet(t *testing.T) {
	s := New("root")
	require.NoError(t, s.Set(sp(), "x", intObj(1)))
	v, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*object.Integer).Value.ToInt64())
}

func TestSetRedeclarationErrors(t *testing.T) {
	s := New("root")
	require.NoError(t, s.Set(sp(), "x", intObj(1)))
	err := s.Set(sp(), "x", intObj(2))
	assert.Error(t, err)
}

func TestChildShadowingDoesNotAffectParent(t *testing.T) {
	parent := New("root")
	require.NoError(t, parent.Set(sp(), "x", intObj(1)))
	child := parent.NewChild("fn")
	require.NoError(t, child.Set(sp(), "x", intObj(2)))

	pv, _ := parent.Get("x")
	cv, _ := child.Get("x")
	assert.Equal(t, int64(1), pv.(*object.Integer).Value.ToInt64())
	assert.Equal(t, int64(2), cv.(*object.Integer).Value.ToInt64())
}

func TestAssignWalksParentChain(t *testing.T) {
	parent := New("root")
	require.NoError(t, parent.Set(sp(), "x", intObj(1)))
	child := parent.NewChild("fn")

	require.NoError(t, child.Assign(sp(), "x", intObj(9)))
	pv, _ := parent.Get("x")
	assert.Equal(t, int64(9), pv.(*object.Integer).Value.ToInt64())
}

func TestAssignUnboundErrors(t *testing.T) {
	s := New("root")
	err := s.Assign(sp(), "never", intObj(1))
	assert.Error(t, err)
}

func TestObjectScopeIsLeafForGet(t *testing.T) {
	parent := New("root")
	require.NoError(t, parent.Set(sp(), "outer", intObj(7)))

	container := object.NewArray(sp(), []object.Object{intObj(10), intObj(20)})
	obj := NewFromObject(parent, container, sp())

	_, ok := obj.Get("outer")
	assert.False(t, ok, "object scope must not fall through to parent on plain get")

	v, ok := obj.Get("0")
	require.True(t, ok)
	assert.Equal(t, int64(10), v.(*object.Integer).Value.ToInt64())
}

func TestGetSelfWalksToNearestBoundFrame(t *testing.T) {
	container := intObj(42)
	parent := New("root")
	obj := NewFromObject(parent, container, sp())
	child := obj.NewChild("inner")

	self, ok := child.GetSelf()
	require.True(t, ok)
	assert.Equal(t, int64(42), self.(*object.Integer).Value.ToInt64())
}

func TestRenameForCallAllowsParentFallthrough(t *testing.T) {
	parent := New("root")
	require.NoError(t, parent.Set(sp(), "y", intObj(5)))
	container := object.NewArray(sp(), []object.Object{intObj(1)})
	obj := NewFromObject(parent, container, sp())

	var found bool
	obj.RenameForCall(func() {
		_, found = obj.Get("y")
	})
	assert.True(t, found)

	_, ok := obj.Get("y")
	assert.False(t, ok, "leaf behavior must be restored after the call")
}
