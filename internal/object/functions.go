package object

import (
	"strings"

	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/token"
)

// Env is the minimal scope surface a Builtin needs, satisfied
// structurally by internal/scope.Scope. Defined here (rather than
// importing the scope package) to avoid an import cycle: scope depends
// on object for the values it stores.
type Env interface {
	Get(name string) (Object, bool)
	GetSelf() (Object, bool)
}

// Invoker calls a Lambda or Builtin value with the given arguments under
// scope, used by intrinsics such as array.map that must call back into
// user code. Supplied by the evaluator package at construction time.
type Invoker func(fn Object, args []Object, scope Env, span token.Span) (Object, error)

// Awaiter blocks until a microtask promise resolves, used by the
// promise.await intrinsic. Satisfied by the scheduler package.
type Awaiter interface {
	Wait(id string) (Object, error)
}

// CallContext is threaded through every Builtin invocation.
type CallContext struct {
	Scope   Env
	Span    token.Span
	Invoke  Invoker
	Awaiter Awaiter
}

// BuiltinFunc is the shape of a built-in/intrinsic implementation.
type BuiltinFunc func(args []Object, ctx *CallContext) (Object, error)

// Builtin is a named, optionally self-prepending native function.
type Builtin struct {
	span      token.Span
	Name      string
	NeedsSelf bool
	Fn        BuiltinFunc
}

func NewBuiltin(span token.Span, name string, needsSelf bool, fn BuiltinFunc) *Builtin {
	return &Builtin{span: span, Name: name, NeedsSelf: needsSelf, Fn: fn}
}

func (b *Builtin) Type() ObjectType { return BUILTIN }
func (b *Builtin) Span() token.Span { return b.span }
func (b *Builtin) Inspect() string   { return "#pet.builtin(" + b.Name + ")" }
func (b *Builtin) PrettyPrint(c bool) string {
	return colorize("35", c, b.Inspect())
}

// Lambda is a user-defined anonymous function. It captures no
// environment by reference -- only its parameter names and body --
// identifier lookup inside the body walks the call site's lexical
// chain, not a closed-over environment.
type Lambda struct {
	span       token.Span
	Params     []string
	ReturnType string
	Body       []ast.Node
}

func NewLambda(span token.Span, params []string, returnType string, body []ast.Node) *Lambda {
	return &Lambda{span: span, Params: params, ReturnType: returnType, Body: body}
}

func (l *Lambda) Type() ObjectType { return LAMBDA }
func (l *Lambda) Span() token.Span { return l.span }
func (l *Lambda) Inspect() string {
	return "#pet.lambda(" + strings.Join(l.Params, ", ") + ")"
}
func (l *Lambda) PrettyPrint(c bool) string { return colorize("35", c, l.Inspect()) }
