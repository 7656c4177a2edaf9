package evaluator

import (
	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/scope"
)

// evalIndex implements SPEC_FULL.md section 4.4: each step of n.Path
// resolves against a scope synthesized from the current container
// value, walking deeper with every step until the last one's result is
// the expression's value.
func (e *Evaluator) evalIndex(n *ast.Index, sc *scope.Scope) (object.Object, error) {
	container, err := e.step(n.Container, sc)
	if err != nil {
		return nil, err
	}

	var result object.Object = container
	for _, step := range n.Path {
		objScope := scope.NewFromObject(sc, result, n.Span())

		v, isCall, err := e.evalIndexStep(step, objScope, sc)
		if err != nil {
			return nil, err
		}
		if v == nil && !isCall {
			return object.NewNull(n.Span()), nil
		}
		if v == nil {
			return nil, diagnostics.New("evaluating index", step.Span(), "Unknown element")
		}

		result = v
	}

	return result, nil
}

// evalIndexStep resolves one path step against objScope (the container's
// synthesized scope). callerScope is the enclosing lexical scope; it
// becomes the CallContext scope of an intrinsic call, so intrinsics such
// as array.map call back into user code under the caller's bindings. A
// FunctionCall step's argument expressions are evaluated in objScope
// under RenameForCall, which lets them fall through to callerScope.
func (e *Evaluator) evalIndexStep(step ast.Node, objScope, callerScope *scope.Scope) (object.Object, bool, error) {
	switch s := step.(type) {
	case *ast.IntLit:
		v, ok := objScope.Get(object.StringIndexKey(s.Span(), int(s.Value)).Value)
		if !ok {
			return nil, false, nil
		}
		return v, false, nil

	case *ast.StringLit:
		v, ok := objScope.Get(s.Value)
		if !ok {
			return nil, false, nil
		}
		return v, false, nil

	case *ast.Ident:
		v, ok := objScope.Get(s.Name)
		if !ok {
			return nil, false, nil
		}
		return v, false, nil

	case *ast.FunctionCall:
		fn, ok := objScope.Get(s.Name)
		if !ok {
			return nil, true, nil
		}
		builtin, ok := fn.(*object.Builtin)
		if !ok {
			return nil, true, diagnostics.New("evaluating index", s.Span(), "%s is not callable as an intrinsic", s.Name)
		}

		args := make([]object.Object, len(s.Args))
		var evalErr error
		objScope.RenameForCall(func() {
			for i, a := range s.Args {
				v, err := e.step(a, objScope)
				if err != nil {
					evalErr = err
					return
				}
				args[i] = v
			}
		})
		if evalErr != nil {
			return nil, true, evalErr
		}

		v, err := e.invokeBuiltinWithSelf(builtin, args, callerScope, objScope, s.Span())
		if err != nil {
			return nil, true, err
		}
		return v, true, nil

	default:
		return nil, true, diagnostics.New("evaluating index", step.Span(), "unsupported index step type %T", step)
	}
}
