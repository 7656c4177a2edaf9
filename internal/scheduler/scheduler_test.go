package scheduler

import (
	"testing"
	"time"

	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/scope"
	"github.com/petal-lang/petal/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constEval(n int64) EvalFunc {
	return func(body []ast.Node, sc *scope.Scope) (object.Object, error) {
		return object.NewInteger(token.Span{}, numeric.FitInt64(n)), nil
	}
}

func TestSubmitAndWaitRoundTrips(t *testing.T) {
	s := New(2, constEval(42))
	defer s.Shutdown()

	p := s.Submit(nil, scope.New("task"))
	require.NotEmpty(t, p.ID)

	done := make(chan object.Object, 1)
	go func() {
		v, err := s.Wait(p.ID)
		require.NoError(t, err)
		done <- v
	}()

	select {
	case v := <-done:
		assert.Equal(t, int64(42), v.(*object.Integer).Value.ToInt64())
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return in time")
	}
}

func TestSubmitFIFOPerSubmitter(t *testing.T) {
	order := []int64{}
	var mu chan struct{}
	_ = mu
	next := int64(0)
	s := New(1, func(body []ast.Node, sc *scope.Scope) (object.Object, error) {
		next++
		return object.NewInteger(token.Span{}, numeric.FitInt64(next)), nil
	})
	defer s.Shutdown()

	promises := make([]*object.Promise, 3)
	for i := range promises {
		promises[i] = s.Submit(nil, scope.New("task"))
	}
	for _, p := range promises {
		v, err := s.Wait(p.ID)
		require.NoError(t, err)
		order = append(order, v.(*object.Integer).Value.ToInt64())
	}
	assert.Equal(t, []int64{1, 2, 3}, order)
}

func TestZeroWorkersDisablesDispatch(t *testing.T) {
	s := New(0, constEval(1))
	p := s.Submit(nil, scope.New("task"))
	s.Tick()
	_, ok := s.promises[p.ID]
	assert.False(t, ok)
}
