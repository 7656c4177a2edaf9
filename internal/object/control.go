package object

import "github.com/petal-lang/petal/internal/token"

// Return wraps a value as the control-flow sentinel produced by a
// `return` expression; the evaluator unwinds one call frame whenever a
// step produces one.
type Return struct {
	span  token.Span
	Value Object
}

func NewReturn(span token.Span, value Object) *Return { return &Return{span: span, Value: value} }

func (r *Return) Type() ObjectType { return RETURN }
func (r *Return) Span() token.Span { return r.span }
func (r *Return) Inspect() string  { return r.Value.Inspect() }
func (r *Return) PrettyPrint(c bool) string {
	return colorize("31", c, "return ") + PrettyPrint(r.Value, c)
}
