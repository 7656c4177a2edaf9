package evaluator

import (
	"math/big"

	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/scope"
)

func (e *Evaluator) evalDyadic(n *ast.DyadicOp, sc *scope.Scope) (object.Object, error) {
	lv, err := e.step(n.LHS, sc)
	if err != nil {
		return nil, err
	}
	rv, err := e.step(n.RHS, sc)
	if err != nil {
		return nil, err
	}

	lc, rc, err := coerce(n.Span(), lv, rv)
	if err != nil {
		return nil, err
	}

	switch l := lc.(type) {
	case *object.Float:
		return dyadFloat(n, l, rc.(*object.Float))
	case *object.Integer:
		return dyadInteger(n, l, rc.(*object.Integer))
	case *object.Boolean:
		return dyadBool(n, l, rc.(*object.Boolean))
	case *object.String:
		return dyadString(n, l, rc.(*object.String))
	default:
		return nil, diagnostics.New("evaluating dyadic", n.Span(), "can't use verb %s on type %s", n.Verb.Symbol(), lc.Type())
	}
}

func dyadOpError(n *ast.DyadicOp, typ object.ObjectType, hint string) error {
	if hint != "" {
		return diagnostics.NewWithHint("evaluating dyadic", n.Span(), hint, "can't use verb %s on type %s", n.Verb.Symbol(), typ)
	}
	return diagnostics.New("evaluating dyadic", n.Span(), "can't use verb %s on type %s", n.Verb.Symbol(), typ)
}

func dyadFloat(n *ast.DyadicOp, l, r *object.Float) (object.Object, error) {
	a, b := l.Value.Value, r.Value.Value
	span := n.Span()
	switch n.Verb {
	case ast.Add:
		return object.NewFloat(span, numeric.FitFloat(a+b)), nil
	case ast.Subtract:
		return object.NewFloat(span, numeric.FitFloat(a-b)), nil
	case ast.Multiply:
		return object.NewFloat(span, numeric.FitFloat(a*b)), nil
	case ast.Divide:
		return object.NewFloat(span, numeric.FitFloat(a/b)), nil
	case ast.Pow:
		return object.NewFloat(span, numeric.FitFloat(floatPow(a, b))), nil
	case ast.Equality:
		return object.NewBoolean(span, a == b), nil
	case ast.GreaterThan:
		return object.NewBoolean(span, a > b), nil
	case ast.LessThan:
		return object.NewBoolean(span, a < b), nil
	case ast.GreaterThanOrEqual:
		return object.NewBoolean(span, a >= b), nil
	case ast.LessThanOrEqual:
		return object.NewBoolean(span, a <= b), nil
	default:
		return nil, dyadOpError(n, object.FLOAT, "")
	}
}

func dyadInteger(n *ast.DyadicOp, l, r *object.Integer) (object.Object, error) {
	span := n.Span()
	a, b := l.Value.ToBig(), r.Value.ToBig()
	switch n.Verb {
	case ast.Add:
		return object.NewInteger(span, numeric.FitInt(new(big.Int).Add(a, b))), nil
	case ast.Subtract:
		return object.NewInteger(span, numeric.FitInt(new(big.Int).Sub(a, b))), nil
	case ast.Multiply:
		return object.NewInteger(span, numeric.FitInt(new(big.Int).Mul(a, b))), nil
	case ast.Divide:
		if b.Sign() == 0 {
			return nil, diagnostics.New("evaluating dyadic", span, "division by zero")
		}
		return object.NewInteger(span, numeric.FitInt(new(big.Int).Quo(a, b))), nil
	case ast.Pow:
		exp := uint64(r.Value.ToInt64())
		return object.NewInteger(span, numeric.FitInt(new(big.Int).Exp(a, new(big.Int).SetUint64(exp), nil))), nil
	case ast.Equality:
		return object.NewBoolean(span, a.Cmp(b) == 0), nil
	case ast.GreaterThan:
		return object.NewBoolean(span, a.Cmp(b) > 0), nil
	case ast.LessThan:
		return object.NewBoolean(span, a.Cmp(b) < 0), nil
	case ast.GreaterThanOrEqual:
		return object.NewBoolean(span, a.Cmp(b) >= 0), nil
	case ast.LessThanOrEqual:
		return object.NewBoolean(span, a.Cmp(b) <= 0), nil
	default:
		return nil, dyadOpError(n, object.INTEGER, "")
	}
}

func dyadBool(n *ast.DyadicOp, l, r *object.Boolean) (object.Object, error) {
	span := n.Span()
	switch n.Verb {
	case ast.Equality:
		return object.NewBoolean(span, l.Value == r.Value), nil
	case ast.And:
		return object.NewBoolean(span, l.Value && r.Value), nil
	case ast.Or:
		return object.NewBoolean(span, l.Value || r.Value), nil
	default:
		return nil, dyadOpError(n, object.BOOLEAN, "")
	}
}

func dyadString(n *ast.DyadicOp, l, r *object.String) (object.Object, error) {
	span := n.Span()
	switch n.Verb {
	case ast.Add:
		return object.NewString(span, l.Value+r.Value), nil
	case ast.Equality:
		return object.NewBoolean(span, l.Value == r.Value), nil
	default:
		return nil, dyadOpError(n, object.STRING, "You can still use '+' to concat, and '==' to compare strings.")
	}
}

func floatPow(a, b float64) float64 {
	result := 1.0
	neg := b < 0
	if neg {
		b = -b
	}
	for i := 0; i < int(b); i++ {
		result *= a
	}
	if neg {
		return 1 / result
	}
	return result
}
