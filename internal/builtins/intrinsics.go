package builtins

import (
	"strings"

	"github.com/petal-lang/petal/internal/numeric"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/token"
)

// ListIntrinsics returns the full intrinsic method table, force-set into
// every synthesized object-as-scope during indexing regardless of the
// container's type. This matches original_source's get_intrinsic, which
// is an ungated flat table -- every intrinsic name is bound on every
// container, and each intrinsic's own self type-assertion below is what
// raises "checking types" on a mismatch (e.g. [1,2].keys()), not a
// pre-filter keyed on the container's type. Every intrinsic has
// NeedsSelf=true, matching get_intrinsic prepending self to every call
// unconditionally.
func ListIntrinsics() map[string]*object.Builtin {
	span := token.Span{}
	return map[string]*object.Builtin{
		"to_string": object.NewBuiltin(span, "to_string", true, intrinsicToString),
		"len":       object.NewBuiltin(span, "len", true, intrinsicLen),
		"split":     object.NewBuiltin(span, "split", true, intrinsicSplit),
		"join":      object.NewBuiltin(span, "join", true, intrinsicJoin),
		"map":       object.NewBuiltin(span, "map", true, intrinsicMap),
		"keys":      object.NewBuiltin(span, "keys", true, intrinsicKeys),
		"values":    object.NewBuiltin(span, "values", true, intrinsicValues),
		"entries":   object.NewBuiltin(span, "entries", true, intrinsicEntries),
		"await":     object.NewBuiltin(span, "await", true, intrinsicAwait),
	}
}

func intrinsicToString(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("to_string", args, 1, 1); err != nil {
		return nil, err
	}
	return object.NewString(ctx.Span, args[0].Inspect()), nil
}

// intrinsicLen mirrors original_source's len: a single intrinsic bound
// on every container, dispatching on self's own runtime type and raising
// "checking types" for any self it doesn't recognize.
func intrinsicLen(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("len", args, 1, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *object.Array:
		return object.NewInteger(ctx.Span, numeric.FitInt64(int64(len(v.Elements)))), nil
	case *object.String:
		return object.NewInteger(ctx.Span, numeric.FitInt64(int64(len([]rune(v.Value))))), nil
	default:
		return nil, typeError(ctx.Span, "Can't get length of type %s", v.Type())
	}
}

// intrinsicSplit splits self on the given separator (default ""). An
// empty separator yields every character as a one-character string:
// strings.Split with "" produces no leading or trailing empty elements,
// so nothing is stripped.
func intrinsicSplit(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("split", args, 1, 2); err != nil {
		return nil, err
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return nil, typeError(ctx.Span, "split expects a string self")
	}
	sep := ""
	if len(args) == 2 {
		sepObj, ok := args[1].(*object.String)
		if !ok {
			return nil, typeError(ctx.Span, "Can't split value of type %s", args[1].Type())
		}
		sep = sepObj.Value
	}

	parts := strings.Split(s.Value, sep)

	elems := make([]object.Object, len(parts))
	for i, p := range parts {
		elems[i] = object.NewString(ctx.Span, p)
	}
	return object.NewArray(ctx.Span, elems), nil
}

func intrinsicJoin(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("join", args, 2, 2); err != nil {
		return nil, err
	}
	a, ok := args[0].(*object.Array)
	if !ok {
		return nil, typeError(ctx.Span, "join expects an array self")
	}
	sep, ok := args[1].(*object.String)
	if !ok {
		return nil, typeError(ctx.Span, "Can't join with type %s", args[1].Type())
	}
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return object.NewString(ctx.Span, strings.Join(parts, sep.Value)), nil
}

// intrinsicMap calls the given Lambda/Builtin on each element, under the
// enclosing caller's scope (ctx.Scope, not the synthesized object
// scope), so a closure passed to map can still resolve the caller's own
// bindings.
func intrinsicMap(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("map", args, 2, 2); err != nil {
		return nil, err
	}
	a, ok := args[0].(*object.Array)
	if !ok {
		return nil, typeError(ctx.Span, "map expects an array self")
	}
	fn := args[1]
	switch fn.(type) {
	case *object.Lambda, *object.Builtin:
	default:
		return nil, typeError(ctx.Span, "Can't map with type %s", fn.Type())
	}

	out := make([]object.Object, len(a.Elements))
	for i, elem := range a.Elements {
		v, err := ctx.Invoke(fn, []object.Object{elem}, ctx.Scope, ctx.Span)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return object.NewArray(ctx.Span, out), nil
}

func intrinsicKeys(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("keys", args, 1, 1); err != nil {
		return nil, err
	}
	m, ok := args[0].(*object.Map)
	if !ok {
		return nil, typeError(ctx.Span, "keys expects a map self")
	}
	entries := m.Entries()
	out := make([]object.Object, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return object.NewArray(ctx.Span, out), nil
}

func intrinsicValues(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("values", args, 1, 1); err != nil {
		return nil, err
	}
	m, ok := args[0].(*object.Map)
	if !ok {
		return nil, typeError(ctx.Span, "values expects a map self")
	}
	entries := m.Entries()
	out := make([]object.Object, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return object.NewArray(ctx.Span, out), nil
}

func intrinsicEntries(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("entries", args, 1, 1); err != nil {
		return nil, err
	}
	m, ok := args[0].(*object.Map)
	if !ok {
		return nil, typeError(ctx.Span, "entries expects a map self")
	}
	entries := m.Entries()
	out := make([]object.Object, len(entries))
	for i, e := range entries {
		out[i] = object.NewArray(ctx.Span, []object.Object{e.Key, e.Value})
	}
	return object.NewArray(ctx.Span, out), nil
}

func intrinsicAwait(args []object.Object, ctx *object.CallContext) (object.Object, error) {
	if err := assertArgsRange("await", args, 1, 1); err != nil {
		return nil, err
	}
	p, ok := args[0].(*object.Promise)
	if !ok {
		return nil, typeError(ctx.Span, "await expects a promise self")
	}
	if ctx.Awaiter == nil {
		return nil, invalidArgumentError(ctx.Span, "await is not available in this context")
	}
	return ctx.Awaiter.Wait(p.ID)
}
