// Package object implements petal's dynamic value representation: the
// tagged Object union, its contextual (value + source span) identity,
// and the structural ordering/coercion rules used throughout the
// evaluator.
//
// Grounded on funvibe-funxy/internal/evaluator/object.go for the
// ObjectType-tag + interface shape, and original_source/src/object.rs
// for the coercion matrix and the Display/pretty-print split. Unlike the
// teacher's Object interface, RuntimeType() is dropped: it exists only
// to serve the teacher's static-inference pass, and static typing is out
// of scope here.
//
// Rather than a separate generic Contextual[T] wrapper, every concrete
// Object embeds its source Span directly and exposes it via Span() --
// the same "value paired with provenance" contract with one less type to
// thread through the evaluator.
package object

import "github.com/petal-lang/petal/internal/token"

// ObjectType tags a runtime value's variant.
type ObjectType string

const (
	INTEGER ObjectType = "int"
	FLOAT   ObjectType = "float"
	BOOLEAN ObjectType = "bool"
	STRING  ObjectType = "string"
	ARRAY   ObjectType = "array"
	MAP     ObjectType = "map"
	RETURN  ObjectType = "return"
	BUILTIN ObjectType = "builtin"
	LAMBDA  ObjectType = "lambda"
	PROMISE ObjectType = "promise"
	NULL    ObjectType = "null"
)

// Object is any runtime value.
type Object interface {
	Type() ObjectType
	// Inspect is the plain, unquoted/uncolored display form used by
	// to_string, string concatenation, and join -- never the
	// pretty-printed form.
	Inspect() string
	Span() token.Span
}

// PrettyPrinter is implemented by Objects whose REPL/print rendering
// differs from their plain Inspect() form (quoted strings, colorized
// scalars, bracketed containers).
type PrettyPrinter interface {
	PrettyPrint(color bool) string
}

// PrettyPrint renders v the way the REPL and term.print do: via its own
// PrettyPrint method if it has one, falling back to Inspect otherwise.
func PrettyPrint(v Object, color bool) string {
	if p, ok := v.(PrettyPrinter); ok {
		return p.PrettyPrint(color)
	}
	return v.Inspect()
}

func colorize(code string, enabled bool, text string) string {
	if !enabled {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}
