package scope

import (
	"github.com/petal-lang/petal/internal/builtins"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/token"
)

// lookupBuiltin consults the root built-ins table, used as the fallback
// once a Get has walked (or skipped, per the "object" leaf rule) to the
// top of the scope chain.
func lookupBuiltin(name string) (object.Object, bool) {
	return builtins.Lookup(name)
}

// NewFromObject synthesizes the temporary "object" scope used to index
// into a container value (SPEC_FULL.md section 4.4): bindings per the
// container's own elements/entries/characters, plus the full intrinsic
// table force-set in (not filtered by the container's type), with self
// bound to the container.
// The synthesized scope's parent is the caller's scope, but its Name is
// "object" so plain Get does not leak outer bindings into member access.
func NewFromObject(caller *Scope, container object.Object, span token.Span) *Scope {
	s := &Scope{Name: "object", store: make(map[string]object.Object), parent: caller}
	s.SetSelf(container)

	switch v := container.(type) {
	case *object.Array:
		for i, elem := range v.Elements {
			s.ForceSet(object.StringIndexKey(span, i).Value, elem)
		}
	case *object.Map:
		for _, e := range v.Entries() {
			s.ForceSet(e.Key.Inspect(), e.Value)
		}
	case *object.String:
		for i, r := range []rune(v.Value) {
			s.ForceSet(object.StringIndexKey(span, i).Value, object.NewString(span, string(r)))
		}
	}

	for name, fn := range builtins.ListIntrinsics() {
		s.ForceSet(name, fn)
	}

	return s
}

// RenameForCall temporarily renames the scope during argument evaluation
// of a FunctionCall index step, so nested indexing chains (e.g.
// a.join(b.to_string())) resolve their own arguments against this same
// synthesized scope without the "object" leaf rule blocking lookups the
// argument expression itself needs, while still reporting accurately
// under a neutral name for diagnostics.
func (s *Scope) RenameForCall(fn func()) {
	s.mu.Lock()
	prev := s.Name
	s.Name = "object_fncall"
	s.mu.Unlock()

	fn()

	s.mu.Lock()
	s.Name = prev
	s.mu.Unlock()
}
