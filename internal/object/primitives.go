package object

import (
	"strconv"

	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/token"
)

type Integer struct {
	span  token.Span
	Value numeric.Int
}

func NewInteger(span token.Span, value numeric.Int) *Integer { return &Integer{span: span, Value: value} }

func (i *Integer) Type() ObjectType      { return INTEGER }
func (i *Integer) Span() token.Span      { return i.span }
func (i *Integer) Inspect() string       { return i.Value.String() }
func (i *Integer) PrettyPrint(c bool) string { return colorize("33", c, i.Value.String()) }

type Float struct {
	span  token.Span
	Value numeric.Float
}

func NewFloat(span token.Span, value numeric.Float) *Float { return &Float{span: span, Value: value} }

func (f *Float) Type() ObjectType      { return FLOAT }
func (f *Float) Span() token.Span      { return f.span }
func (f *Float) Inspect() string       { return f.Value.String() }
func (f *Float) PrettyPrint(c bool) string { return colorize("33", c, f.Value.String()) }

type Boolean struct {
	span  token.Span
	Value bool
}

func NewBoolean(span token.Span, value bool) *Boolean { return &Boolean{span: span, Value: value} }

func (b *Boolean) Type() ObjectType { return BOOLEAN }
func (b *Boolean) Span() token.Span { return b.span }
func (b *Boolean) Inspect() string {
	return strconv.FormatBool(b.Value)
}
func (b *Boolean) PrettyPrint(c bool) string { return colorize("32", c, b.Inspect()) }

type String struct {
	span  token.Span
	Value string
}

func NewString(span token.Span, value string) *String { return &String{span: span, Value: value} }

func (s *String) Type() ObjectType { return STRING }
func (s *String) Span() token.Span { return s.span }
func (s *String) Inspect() string  { return s.Value }
func (s *String) PrettyPrint(c bool) string {
	return colorize("36", c, strconv.Quote(s.Value))
}

type Null struct {
	span token.Span
}

func NewNull(span token.Span) *Null { return &Null{span: span} }

func (n *Null) Type() ObjectType      { return NULL }
func (n *Null) Span() token.Span      { return n.span }
func (n *Null) Inspect() string       { return "null" }
func (n *Null) PrettyPrint(c bool) string { return colorize("35", c, "null") }
