package evaluator

import (
	"testing"

	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/scope"
	"github.com/petal-lang/petal/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp() token.Span { return token.Span{} }

func intLit(n int64) *ast.IntLit    { return &ast.IntLit{Base: ast.NewBase(sp()), Value: n} }
func floatLit(f float64) *ast.FloatLit { return &ast.FloatLit{Base: ast.NewBase(sp()), Value: f} }
func boolLit(b bool) *ast.BoolLit   { return &ast.BoolLit{Base: ast.NewBase(sp()), Value: b} }
func strLit(s string) *ast.StringLit { return &ast.StringLit{Base: ast.NewBase(sp()), Value: s} }
func ident(n string) *ast.Ident     { return &ast.Ident{Base: ast.NewBase(sp()), Name: n} }

func dyad(v ast.Dyadic, l, r ast.Node) *ast.DyadicOp {
	return &ast.DyadicOp{Base: ast.NewBase(sp()), Verb: v, LHS: l, RHS: r}
}

func decl(name string, expr ast.Node) *ast.Declaration {
	return &ast.Declaration{Base: ast.NewBase(sp()), Name: name, Expr: expr}
}

func assign(name string, expr ast.Node) *ast.Assignment {
	return &ast.Assignment{Base: ast.NewBase(sp()), Name: name, Expr: expr}
}

func newEval() *Evaluator { return New(nil) }

// scenario 1: let x = 2 + 3 * 4; -> 14
func TestScenarioArithmeticPrecedence(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	mul := dyad(ast.Multiply, intLit(3), intLit(4))
	add := dyad(ast.Add, intLit(2), mul)
	v, err := e.Evaluate([]ast.Node{decl("x", add)}, sc)
	require.NoError(t, err)
	assert.Equal(t, "14", v.Inspect())
}

// scenario 2: let s = "foo" + "bar"; s -> "foobar"
func TestScenarioStringConcat(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	v, err := e.Evaluate([]ast.Node{
		decl("s", dyad(ast.Add, strLit("foo"), strLit("bar"))),
		ident("s"),
	}, sc)
	require.NoError(t, err)
	assert.Equal(t, "foobar", v.Inspect())
}

// scenario 3: let a = [1,2,3]; a.len() -> 3
func TestScenarioArrayLen(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	arr := &ast.Array{Base: ast.NewBase(sp()), Elements: []ast.Node{intLit(1), intLit(2), intLit(3)}}
	idx := &ast.Index{
		Base:      ast.NewBase(sp()),
		Container: ident("a"),
		Path:      []ast.Node{&ast.FunctionCall{Base: ast.NewBase(sp()), Name: "len"}},
	}
	v, err := e.Evaluate([]ast.Node{decl("a", arr), idx}, sc)
	require.NoError(t, err)
	assert.Equal(t, "3", v.Inspect())
}

// scenario 4: let m = ["a","b","c"]; m.join(",") -> "a,b,c"
func TestScenarioArrayJoin(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	arr := &ast.Array{Base: ast.NewBase(sp()), Elements: []ast.Node{strLit("a"), strLit("b"), strLit("c")}}
	idx := &ast.Index{
		Base:      ast.NewBase(sp()),
		Container: ident("m"),
		Path: []ast.Node{&ast.FunctionCall{
			Base: ast.NewBase(sp()), Name: "join", Args: []ast.Node{strLit(",")},
		}},
	}
	v, err := e.Evaluate([]ast.Node{decl("m", arr), idx}, sc)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", v.Inspect())
}

// scenario 5: let n = 0; while (n < 3) { n = n + 1; } n -> 3
func TestScenarioWhileLoopCount(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	loop := &ast.LoopWhile{
		Base: ast.NewBase(sp()),
		Cond: dyad(ast.LessThan, ident("n"), intLit(3)),
		Body: []ast.Node{assign("n", dyad(ast.Add, ident("n"), intLit(1)))},
	}
	v, err := e.Evaluate([]ast.Node{decl("n", intLit(0)), loop, ident("n")}, sc)
	require.NoError(t, err)
	assert.Equal(t, "3", v.Inspect())
}

// scenario 6: if (1 == 2) { return 10; } else { return 20; } -> 20
func TestScenarioConditionalReturn(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	cond := &ast.Conditional{
		Base: ast.NewBase(sp()),
		Arms: []ast.ConditionalArm{
			{
				Cond: dyad(ast.Equality, intLit(1), intLit(2)),
				Body: []ast.Node{&ast.Return{Base: ast.NewBase(sp()), Expr: intLit(10)}},
			},
		},
		Else: []ast.Node{&ast.Return{Base: ast.NewBase(sp()), Expr: intLit(20)}},
	}
	v, err := e.Evaluate([]ast.Node{cond}, sc)
	require.NoError(t, err)
	assert.Equal(t, "20", v.Inspect())
}

// scenario 7: let f = (x) => { return x * x; }; f(5) -> 25
func TestScenarioLambdaCall(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	lambda := &ast.Lambda{
		Base:   ast.NewBase(sp()),
		Params: []string{"x"},
		Body:   []ast.Node{&ast.Return{Base: ast.NewBase(sp()), Expr: dyad(ast.Multiply, ident("x"), ident("x"))}},
	}
	call := &ast.FunctionCall{Base: ast.NewBase(sp()), Name: "f", Args: []ast.Node{intLit(5)}}
	v, err := e.Evaluate([]ast.Node{decl("f", lambda), call}, sc)
	require.NoError(t, err)
	assert.Equal(t, "25", v.Inspect())
}

// failure (a): a cross-type pair with no coercion path -> "coercing ..."
func TestFailureNoCoercionPath(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	// Integer coerces with String by stringifying the integer, so use a
	// pair with genuinely no coercion path: Bool and Array share neither
	// a common discriminant nor a String side.
	arr := &ast.Array{Base: ast.NewBase(sp())}
	_, err := e.Evaluate([]ast.Node{dyad(ast.Add, boolLit(true), arr)}, sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coercing")
}

// failure (b): let a = 1; let a = 2; -> "setting variable"
func TestFailureRedeclaration(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	_, err := e.Evaluate([]ast.Node{decl("a", intLit(1)), decl("a", intLit(2))}, sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting variable")
}

// failure (c): b = 1; (b never declared) -> "assigning variable"
func TestFailureAssignUnbound(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	_, err := e.Evaluate([]ast.Node{assign("b", intLit(1))}, sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigning variable")
}

// failure (d): [1,2].keys() -> "checking types" (keys is bound on every
// container's synthesized object scope; it's keys' own self
// type-assertion that rejects an array, not an unresolved name)
func TestFailureArrayKeysChecksTypes(t *testing.T) {
	e := newEval()
	sc := scope.New("top")
	arr := &ast.Array{Base: ast.NewBase(sp()), Elements: []ast.Node{intLit(1), intLit(2)}}
	idx := &ast.Index{
		Base:      ast.NewBase(sp()),
		Container: arr,
		Path:      []ast.Node{&ast.FunctionCall{Base: ast.NewBase(sp()), Name: "keys"}},
	}
	_, err := e.Evaluate([]ast.Node{idx}, sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking types")
}

// invariant 1: determinism -- evaluating the same program under two
// fresh scopes yields the same value.
func TestInvariantReEvaluationIsStable(t *testing.T) {
	e := newEval()
	build := func() ([]ast.Node, *scope.Scope) {
		return []ast.Node{decl("x", dyad(ast.Add, intLit(2), dyad(ast.Multiply, intLit(3), intLit(4))))}, scope.New("top")
	}
	tree1, sc1 := build()
	v1, err := e.Evaluate(tree1, sc1)
	require.NoError(t, err)
	tree2, sc2 := build()
	v2, err := e.Evaluate(tree2, sc2)
	require.NoError(t, err)
	assert.Equal(t, v1.Inspect(), v2.Inspect())
}

// invariant 4: scope shadowing -- Set in a child does not affect the
// parent; Assign from the child updates the nearest binding, here the
// child's own shadowing one.
func TestInvariantScopeShadowing(t *testing.T) {
	parent := scope.New("parent")
	require.NoError(t, parent.Set(sp(), "x", object.NewInteger(sp(), numeric.FitInt64(1))))

	child := parent.NewChild("child")
	require.NoError(t, child.Set(sp(), "x", object.NewInteger(sp(), numeric.FitInt64(2))))
	pv, _ := parent.Get("x")
	assert.Equal(t, "1", pv.Inspect())

	require.NoError(t, child.Assign(sp(), "x", object.NewInteger(sp(), numeric.FitInt64(3))))
	cv, _ := child.Get("x")
	assert.Equal(t, "3", cv.Inspect())
}
