package object

import (
	"sort"
	"strconv"
	"strings"

	"github.com/petal-lang/petal/internal/token"
)

// Array is an ordered sequence of values; insertion order is preserved
// (it is not kept sorted, unlike Map).
type Array struct {
	span     token.Span
	Elements []Object
}

func NewArray(span token.Span, elements []Object) *Array {
	return &Array{span: span, Elements: elements}
}

func (a *Array) Type() ObjectType { return ARRAY }
func (a *Array) Span() token.Span { return a.span }

func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *Array) PrettyPrint(c bool) string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = PrettyPrint(e, c)
	}
	return colorize("34", c, "[") + strings.Join(parts, ", ") + colorize("34", c, "]")
}

// mapEntry is one key/value binding of a Map.
type mapEntry struct {
	Key   Object
	Value Object
}

// Map is an ordered mapping Value->Value. Entries are kept sorted by the
// structural key order defined in order.go, mirroring
// original_source's use of a BTreeMap<ContextualObject, ContextualObject>
// -- iteration order IS the key ordering, not insertion order.
type Map struct {
	span    token.Span
	entries []mapEntry
}

func NewMap(span token.Span) *Map {
	return &Map{span: span}
}

func (m *Map) Type() ObjectType { return MAP }
func (m *Map) Span() token.Span { return m.span }

// Set inserts or overwrites the binding for key, keeping entries sorted.
func (m *Map) Set(key, value Object) {
	idx := sort.Search(len(m.entries), func(i int) bool {
		return Compare(m.entries[i].Key, key) >= 0
	})
	if idx < len(m.entries) && Equal(m.entries[idx].Key, key) {
		m.entries[idx].Value = value
		return
	}
	m.entries = append(m.entries, mapEntry{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = mapEntry{Key: key, Value: value}
}

// Get looks up a key structurally.
func (m *Map) Get(key Object) (Object, bool) {
	idx := sort.Search(len(m.entries), func(i int) bool {
		return Compare(m.entries[i].Key, key) >= 0
	})
	if idx < len(m.entries) && Equal(m.entries[idx].Key, key) {
		return m.entries[idx].Value, true
	}
	return nil, false
}

// Entries returns the bindings in key order.
func (m *Map) Entries() []struct{ Key, Value Object } {
	out := make([]struct{ Key, Value Object }, len(m.entries))
	for i, e := range m.entries {
		out[i] = struct{ Key, Value Object }{e.Key, e.Value}
	}
	return out
}

func (m *Map) Len() int { return len(m.entries) }

func (m *Map) Inspect() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = e.Key.Inspect() + ": " + e.Value.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *Map) PrettyPrint(c bool) string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = PrettyPrint(e.Key, c) + colorize("34", c, ": ") + PrettyPrint(e.Value, c)
	}
	return colorize("34", c, "{") + strings.Join(parts, ", ") + colorize("34", c, "}")
}

// StringIndexKey builds the String object used to key array/string
// object-as-scope bindings (stringified integer index).
func StringIndexKey(span token.Span, i int) *String {
	return NewString(span, strconv.Itoa(i))
}
