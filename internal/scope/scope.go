// Package scope implements petal's lexical Scope: a parent-chained
// name->value binding table supporting strict declaration, walking
// assignment, an optional "self" slot, and the object-as-scope
// synthesis used for indexing (see object_scope.go).
//
// Grounded on funvibe-funxy/internal/evaluator/environment.go for the
// Environment{mu, store, outer} shape and the Get/Update recursion
// pattern; generalized with the name tag, self slot, ForceSet, and
// strict (duplicate-checked) Set that spec.md's Scope record calls for
// but the teacher's unconditionally-overwriting Set does not have.
// original_source/src/scope.rs predates those call sites and is stale,
// so the call sites in original_source/src/eval/mod.rs are the
// authority used here instead.
package scope

import (
	"sync"

	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/token"
)

// Scope is a single lexical frame.
type Scope struct {
	mu     sync.RWMutex
	Name   string
	store  map[string]object.Object
	order  []string
	parent *Scope
	self   object.Object
}

// New creates a top-level scope with no parent.
func New(name string) *Scope {
	return &Scope{Name: name, store: make(map[string]object.Object)}
}

// NewChild creates a scope whose parent is s, used for function/lambda
// calls and nothing else in the core evaluator (conditional and loop
// bodies deliberately do not open a child scope -- see SPEC_FULL.md
// section 9).
func (s *Scope) NewChild(name string) *Scope {
	return &Scope{Name: name, store: make(map[string]object.Object), parent: s}
}

// Get performs the scope-chain lookup described in SPEC_FULL.md section
// 4.3: a hit in the current frame wins; otherwise, unless this frame is
// named "object" (a data-access leaf), recurse into the parent; at the
// root (or at an "object" leaf), fall back to the built-ins table.
func (s *Scope) Get(name string) (object.Object, bool) {
	s.mu.RLock()
	v, ok := s.store[name]
	parent := s.parent
	isObject := s.Name == "object"
	s.mu.RUnlock()

	if ok {
		return v, true
	}
	if !isObject && parent != nil {
		return parent.Get(name)
	}
	return lookupBuiltin(name)
}

// Set binds name in the current frame. Re-declaring an already-bound
// name in the same frame is an error -- shadowing requires a child
// scope.
func (s *Scope) Set(span token.Span, name string, value object.Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.store[name]; exists {
		return diagnostics.New("setting variable", span, "%s is already declared in this scope", name)
	}
	s.store[name] = value
	s.order = append(s.order, name)
	return nil
}

// ForceSet binds name in the current frame unconditionally, bypassing
// the duplicate check. Used only by object-as-scope synthesis, where
// the same intrinsic name may legitimately be rebound across calls.
func (s *Scope) ForceSet(name string, value object.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.store[name]; !exists {
		s.order = append(s.order, name)
	}
	s.store[name] = value
}

// Assign walks the parent chain looking for an existing binding of name
// and updates it in place. An unbound name anywhere in the chain is an
// error.
func (s *Scope) Assign(span token.Span, name string, value object.Object) error {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		if _, exists := cur.store[name]; exists {
			cur.store[name] = value
			cur.mu.Unlock()
			return nil
		}
		cur.mu.Unlock()
	}
	return diagnostics.New("assigning variable", span, "%s is not declared in any enclosing scope", name)
}

// SetSelf installs the self slot of the current frame.
func (s *Scope) SetSelf(value object.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.self = value
}

// GetSelf walks the parent chain, returning the nearest frame's bound
// self value.
func (s *Scope) GetSelf() (object.Object, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		v := cur.self
		cur.mu.RUnlock()
		if v != nil {
			return v, true
		}
	}
	return nil, false
}

// ListVars returns the names bound in the current frame, in declaration
// order.
func (s *Scope) ListVars() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
