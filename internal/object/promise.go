package object

import "github.com/petal-lang/petal/internal/token"

// Promise is an opaque handle to an in-flight microtask result, keyed by
// a UUID assigned at submission time.
type Promise struct {
	span  token.Span
	Label string
	ID    string
}

func NewPromise(span token.Span, label, id string) *Promise {
	return &Promise{span: span, Label: label, ID: id}
}

func (p *Promise) Type() ObjectType { return PROMISE }
func (p *Promise) Span() token.Span { return p.span }
func (p *Promise) Inspect() string  { return "#pet.promise(" + p.Label + ")" }
func (p *Promise) PrettyPrint(c bool) string {
	return colorize("35", c, p.Inspect())
}
