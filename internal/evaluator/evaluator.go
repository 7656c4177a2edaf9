// Package evaluator implements petal's tree-walking evaluator: Evaluate
// and step, dyadic operator semantics, the indexing/object-as-scope
// protocol, and function/lambda invocation.
//
// Grounded on original_source/src/eval/mod.rs for the authoritative
// step/step_dyad semantics and exact error text, with Go error
// propagation and dispatch idiom (type switch in evalCore,
// newError-shaped diagnostics) taken from
// funvibe-funxy/internal/evaluator/evaluator.go and expressions_access.go.
package evaluator

import (
	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/scope"
	"github.com/petal-lang/petal/internal/token"
)

// Scheduler is the subset of internal/scheduler.Scheduler the evaluator
// needs, defined here to avoid a direct import-cycle risk and to keep
// the evaluator's dependency on scheduling narrow.
type Scheduler interface {
	Submit(body []ast.Node, sc *scope.Scope) *object.Promise
	Wait(id string) (object.Object, error)
}

// Evaluator walks an AST under a Scope, producing Objects.
type Evaluator struct {
	Scheduler Scheduler
}

// New builds an Evaluator. sched may be nil, in which case awaiting a
// promise is an error.
func New(sched Scheduler) *Evaluator {
	return &Evaluator{Scheduler: sched}
}

// Evaluate runs a full program: each top-level node sequentially; a
// Return sentinel anywhere in that sequence stops evaluation early and
// its wrapped value becomes the program's result; otherwise the last
// node's value is returned.
func (e *Evaluator) Evaluate(tree []ast.Node, sc *scope.Scope) (object.Object, error) {
	result, err := e.evalBody(tree, sc)
	if err != nil {
		return nil, err
	}
	if r, ok := result.(*object.Return); ok {
		return r.Value, nil
	}
	return result, nil
}

// evalBody runs a sequence of nodes in order, short-circuiting and
// propagating a *object.Return object as soon as one appears -- it does
// NOT unwrap it; unwrapping only happens at Evaluate (program top level)
// and at lambda invocation (call.go), which is how a `return`
// unwinds through arbitrarily nested conditionals/loops but stops at
// exactly one enclosing call frame.
func (e *Evaluator) evalBody(body []ast.Node, sc *scope.Scope) (object.Object, error) {
	var result object.Object = object.NewNull(token.Span{})
	for _, node := range body {
		v, err := e.step(node, sc)
		if err != nil {
			return nil, err
		}
		result = v
		if _, ok := v.(*object.Return); ok {
			return v, nil
		}
	}
	return result, nil
}

func (e *Evaluator) step(node ast.Node, sc *scope.Scope) (object.Object, error) {
	switch n := node.(type) {
	case *ast.IntLit:
		return object.NewInteger(n.Span(), numeric.FitInt64(n.Value)), nil
	case *ast.FloatLit:
		return object.NewFloat(n.Span(), numeric.FitFloat(n.Value)), nil
	case *ast.BoolLit:
		return object.NewBoolean(n.Span(), n.Value), nil
	case *ast.StringLit:
		return object.NewString(n.Span(), n.Value), nil
	case *ast.NullLit:
		return object.NewNull(n.Span()), nil

	case *ast.Array:
		elems := make([]object.Object, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.step(el, sc)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return object.NewArray(n.Span(), elems), nil

	case *ast.Ident:
		v, ok := sc.Get(n.Name)
		if !ok {
			return nil, diagnostics.New("finding variable", n.Span(), "Unknown identifier: %s", n.Name)
		}
		return v, nil

	case *ast.Declaration:
		v, err := e.step(n.Expr, sc)
		if err != nil {
			return nil, err
		}
		if err := sc.Set(n.Span(), n.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Assignment:
		v, err := e.step(n.Expr, sc)
		if err != nil {
			return nil, err
		}
		if err := sc.Assign(n.Span(), n.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Return:
		v, err := e.step(n.Expr, sc)
		if err != nil {
			return nil, err
		}
		return object.NewReturn(n.Span(), v), nil

	case *ast.Conditional:
		return e.evalConditional(n, sc)

	case *ast.LoopWhile:
		return e.evalLoopWhile(n, sc)

	case *ast.FunctionCall:
		return e.evalFunctionCall(n, sc)

	case *ast.FunctionDeclaration:
		lambda := object.NewLambda(n.Span(), n.Params, n.ReturnType, n.Body)
		if err := sc.Set(n.Span(), n.Name, lambda); err != nil {
			return nil, err
		}
		return lambda, nil

	case *ast.Lambda:
		return object.NewLambda(n.Span(), n.Params, n.ReturnType, n.Body), nil

	case *ast.Index:
		return e.evalIndex(n, sc)

	case *ast.DyadicOp:
		return e.evalDyadic(n, sc)

	case *ast.MondaicOp:
		return e.evalMondaic(n, sc)

	case *ast.Struct:
		m := object.NewMap(n.Span())
		for _, f := range n.Fields {
			v, err := e.step(f.Expr, sc)
			if err != nil {
				return nil, err
			}
			m.Set(object.NewString(n.Span(), f.Name), v)
		}
		return m, nil

	case *ast.Terms:
		return e.evalBody(n.Nodes, sc)

	default:
		return nil, diagnostics.New("evaluating node", node.Span(), "unsupported node type %T", node)
	}
}

func (e *Evaluator) evalConditional(n *ast.Conditional, sc *scope.Scope) (object.Object, error) {
	body := n.Else
	for _, arm := range n.Arms {
		cv, err := e.step(arm.Cond, sc)
		if err != nil {
			return nil, err
		}
		b, ok := cv.(*object.Boolean)
		if !ok {
			return nil, diagnostics.New("checking types", arm.Cond.Span(), "condition must be a boolean")
		}
		if b.Value {
			body = arm.Body
			break
		}
	}
	result, err := e.evalBody(body, sc)
	if err != nil {
		return nil, err
	}
	if _, ok := result.(*object.Return); ok {
		return result, nil
	}
	return object.NewNull(n.Span()), nil
}

func (e *Evaluator) evalLoopWhile(n *ast.LoopWhile, sc *scope.Scope) (object.Object, error) {
	count := int64(0)
	for {
		cv, err := e.step(n.Cond, sc)
		if err != nil {
			return nil, err
		}
		b, ok := cv.(*object.Boolean)
		if !ok {
			return nil, diagnostics.New("checking types", n.Cond.Span(), "loop condition must be a boolean")
		}
		if !b.Value {
			break
		}
		result, err := e.evalBody(n.Body, sc)
		if err != nil {
			return nil, err
		}
		if _, ok := result.(*object.Return); ok {
			return result, nil
		}
		count++
	}
	return object.NewInteger(n.Span(), numeric.FitInt64(count)), nil
}

func (e *Evaluator) evalMondaic(n *ast.MondaicOp, sc *scope.Scope) (object.Object, error) {
	v, err := e.step(n.Expr, sc)
	if err != nil {
		return nil, err
	}
	switch n.Verb {
	case ast.Negate:
		b, ok := v.(*object.Boolean)
		if !ok {
			return nil, diagnostics.New("evaluating mondaic", n.Span(), "can't use verb %s on type %s", n.Verb.Symbol(), v.Type())
		}
		return object.NewBoolean(n.Span(), !b.Value), nil
	default:
		return nil, diagnostics.New("evaluating mondaic", n.Span(), "unknown unary operator")
	}
}
