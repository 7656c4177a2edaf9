package evaluator

import (
	"math/big"

	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/token"
)

// coerce implements SPEC_FULL.md section 4.2's pairwise coercion: same
// type is a no-op; (Integer, Float) widens the integer to Float; a
// String on either side stringifies the other; any other cross-type
// pair is an error.
func coerce(span token.Span, a, b object.Object) (object.Object, object.Object, error) {
	if a.Type() == b.Type() {
		return a, b, nil
	}

	ai, aInt := a.(*object.Integer)
	bi, bInt := b.(*object.Integer)
	af, aFloat := a.(*object.Float)
	bf, bFloat := b.(*object.Float)

	if aInt && bFloat {
		fv, _ := new(big.Float).SetInt(ai.Value.ToBig()).Float64()
		return object.NewFloat(a.Span(), numeric.FitFloat(fv)), bf, nil
	}
	if aFloat && bInt {
		fv, _ := new(big.Float).SetInt(bi.Value.ToBig()).Float64()
		return af, object.NewFloat(b.Span(), numeric.FitFloat(fv)), nil
	}

	if a.Type() == object.STRING {
		return a, object.NewString(b.Span(), b.Inspect()), nil
	}
	if b.Type() == object.STRING {
		return object.NewString(a.Span(), a.Inspect()), b, nil
	}

	return nil, nil, diagnostics.New("coercing "+string(a.Type())+" -> "+string(b.Type()), span,
		"can't coerce %s and %s to a common type", a.Type(), b.Type())
}
