// Package builtins implements petal's process-level built-in functions
// (term.print, term.clear, process.exit) and the per-type intrinsic
// method tables dispatched through object-as-scope indexing.
//
// Grounded line for line on original_source/src/eval/builtins.rs (the
// term/process namespace maps, themselves ordinary Map-valued Objects
// resolved through the builtins table fallback -- not a distinct
// namespace mechanism) and original_source/src/eval/intrinsics.rs (the
// exact per-type method tables and arity-check error text).
package builtins

import (
	"os"

	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/token"
)

var root = map[string]object.Object{}

func register(name string, value object.Object) {
	root[name] = value
}

// Lookup resolves a top-level built-in name, consulted when a scope
// chain lookup runs out of frames.
func Lookup(name string) (object.Object, bool) {
	v, ok := root[name]
	return v, ok
}

func init() {
	termSpan := token.Span{}
	term := object.NewMap(termSpan)
	term.Set(object.NewString(termSpan, "print"), object.NewBuiltin(termSpan, "print", false, termPrint))
	term.Set(object.NewString(termSpan, "clear"), object.NewBuiltin(termSpan, "clear", false, termClear))
	register("term", term)

	process := object.NewMap(termSpan)
	process.Set(object.NewString(termSpan, "exit"), object.NewBuiltin(termSpan, "exit", false, processExit))
	register("process", process)
}

func assertArgsRange(name string, args []object.Object, min, max int) error {
	if len(args) < min || (max >= 0 && len(args) > max) {
		return argCountError(name, min, max)
	}
	return nil
}

func termPrint(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = object.PrettyPrint(a, false)
	}
	for i, p := range parts {
		if i > 0 {
			os.Stdout.WriteString(", ")
		}
		os.Stdout.WriteString(p)
	}
	os.Stdout.WriteString("\n")
	return object.NewNull(ctx.Span), nil
}

func termClear(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("clear", args, 0, 0); err != nil {
		return nil, err
	}
	os.Stdout.WriteString("\x1B[2J\x1B[1;1H")
	return object.NewNull(ctx.Span), nil
}

func processExit(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("exit", args, 0, 1); err != nil {
		return nil, err
	}
	code := 0
	if len(args) == 1 {
		i, ok := args[0].(*object.Integer)
		if !ok {
			return nil, invalidArgumentError(ctx.Span, "Expected an integer")
		}
		code = int(i.Value.ToInt64())
	}
	os.Exit(code)
	return object.NewNull(ctx.Span), nil
}
