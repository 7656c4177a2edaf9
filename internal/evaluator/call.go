package evaluator

import (
	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/scope"
	"github.com/petal-lang/petal/internal/token"
)

// evalFunctionCall resolves n.Name in sc and invokes it, evaluating
// arguments under the call-site scope before dispatch.
func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall, sc *scope.Scope) (object.Object, error) {
	fn, ok := sc.Get(n.Name)
	if !ok {
		return nil, diagnostics.New("evaluating function call", n.Span(), "Unknown function: %s", n.Name)
	}

	args := make([]object.Object, len(n.Args))
	for i, a := range n.Args {
		v, err := e.step(a, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return e.invoke(fn, args, sc, n.Span())
}

// Invoke satisfies object.Invoker, letting intrinsics such as array.map
// call back into user-defined Lambdas/Builtins. env is ordinarily the
// *scope.Scope the intrinsic itself was called under; a caller that
// can't supply one gets a fresh detached scope.
func (e *Evaluator) Invoke(fn object.Object, args []object.Object, env object.Env, span token.Span) (object.Object, error) {
	sc, ok := env.(*scope.Scope)
	if !ok {
		sc = scope.New("call")
	}
	return e.invoke(fn, args, sc, span)
}

func (e *Evaluator) invoke(fn object.Object, args []object.Object, sc *scope.Scope, span token.Span) (object.Object, error) {
	switch f := fn.(type) {
	case *object.Lambda:
		return e.invokeLambda(f, args, sc, span)
	case *object.Builtin:
		return e.invokeBuiltin(f, args, sc, span)
	default:
		return nil, diagnostics.New("evaluating function call", span, "%s is not a function", fn.Type())
	}
}

// invokeLambda builds a fresh child of the call-site scope, binds
// parameters, and runs the body there -- a Lambda captures no
// environment of its own, so its free identifiers resolve against
// whatever scope it happened to be called from.
func (e *Evaluator) invokeLambda(f *object.Lambda, args []object.Object, sc *scope.Scope, span token.Span) (object.Object, error) {
	if len(args) != len(f.Params) {
		return nil, diagnostics.New("evaluating function call", span,
			"expected %d argument(s), got %d", len(f.Params), len(args))
	}

	callScope := sc.NewChild("call")
	for i, p := range f.Params {
		if err := callScope.Set(span, p, args[i]); err != nil {
			return nil, err
		}
	}

	result, err := e.evalBody(f.Body, callScope)
	if err != nil {
		return nil, err
	}
	if r, ok := result.(*object.Return); ok {
		return r.Value, nil
	}
	return result, nil
}

// invokeBuiltin prepends the bound self (if the intrinsic needs one)
// and calls through with a freshly built CallContext. The ordinary
// (non-indexing) call path looks up self and builds the CallContext
// from the same scope.
func (e *Evaluator) invokeBuiltin(f *object.Builtin, args []object.Object, sc *scope.Scope, span token.Span) (object.Object, error) {
	return e.invokeBuiltinWithSelf(f, args, sc, sc, span)
}

// invokeBuiltinWithSelf is the general form used by index-step calls
// (index.go), where the intrinsic's self must come from the container's
// synthesized object scope while the CallContext's Scope -- used by
// intrinsics such as array.map that call back into user code -- stays
// the enclosing caller's scope (SPEC_FULL.md section 4.5).
func (e *Evaluator) invokeBuiltinWithSelf(f *object.Builtin, args []object.Object, ctxScope, selfScope *scope.Scope, span token.Span) (object.Object, error) {
	if f.NeedsSelf {
		self, ok := selfScope.GetSelf()
		if !ok {
			return nil, diagnostics.New("evaluating function call", span, "%s has no bound self", f.Name)
		}
		args = append([]object.Object{self}, args...)
	}

	ctx := &object.CallContext{
		Scope:  ctxScope,
		Span:   span,
		Invoke: e.Invoke,
	}
	if e.Scheduler != nil {
		ctx.Awaiter = e.Scheduler
	}

	return f.Fn(args, ctx)
}
