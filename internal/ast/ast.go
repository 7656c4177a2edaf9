package ast

import "github.com/petal-lang/petal/internal/token"

// Node is any production of petal's grammar, paired implicitly with the
// span of source it was parsed from (via Span()). Dispatch over Node is
// a plain Go type switch in the evaluator, mirroring the teacher's own
// evalCore -- the Visitor/Accept shape the teacher's ast package defines
// is never actually used for dispatch there either.
type Node interface {
	Span() token.Span
}

type Base struct {
	span token.Span
}

func (b Base) Span() token.Span { return b.span }

// NewBase constructs the embeddable span carrier for a concrete node.
func NewBase(span token.Span) Base { return Base{span: span} }

type FloatLit struct {
	Base
	Value float64
}

type IntLit struct {
	Base
	Value int64
}

type BoolLit struct {
	Base
	Value bool
}

type StringLit struct {
	Base
	Value string
}

type NullLit struct {
	Base
}

type MondaicOp struct {
	Base
	Verb Mondaic
	Expr Node
}

type DyadicOp struct {
	Base
	Verb Dyadic
	LHS  Node
	RHS  Node
}

// Terms is a sequential block of statements/expressions: a function
// body, a conditional arm's body, a program's top level.
type Terms struct {
	Base
	Nodes []Node
}

type Ident struct {
	Base
	Name string
}

// Index is a container expression followed by one or more path steps
// (field access, array/map subscript, or intrinsic method call).
type Index struct {
	Base
	Container Node
	Path      []Node
}

type Return struct {
	Base
	Expr Node
}

type Declaration struct {
	Base
	Name string
	Type string // optional type annotation, not type-checked
	Expr Node
}

type Assignment struct {
	Base
	Name string
	Expr Node
}

// ConditionalArm is one `if`/`else if` branch.
type ConditionalArm struct {
	Cond Node
	Body []Node
}

type Conditional struct {
	Base
	Arms []ConditionalArm
	Else []Node // nil if no else body
}

type LoopWhile struct {
	Base
	Cond Node
	Body []Node
}

type FunctionDeclaration struct {
	Base
	Name       string
	Params     []string
	ReturnType string
	Body       []Node
}

type FunctionCall struct {
	Base
	Name string
	Args []Node
}

type Lambda struct {
	Base
	Params     []string
	ReturnType string
	Body       []Node
}

// StructField is one field initializer of a Struct literal.
type StructField struct {
	Name string
	Expr Node
}

type Struct struct {
	Base
	Name   string
	Type   string
	Fields []StructField
}

type Array struct {
	Base
	Elements []Node
}

// Program is the root of a parsed source file or REPL line.
type Program struct {
	Tree []Node
	Path string
	Src  string
}
