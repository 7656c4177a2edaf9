package object

import "strings"

var typeRank = map[ObjectType]int{
	INTEGER: 0,
	FLOAT:   1,
	BOOLEAN: 2,
	STRING:  3,
	ARRAY:   4,
	MAP:     5,
	RETURN:  6,
	BUILTIN: 7,
	LAMBDA:  8,
	PROMISE: 9,
	NULL:    10,
}

// Compare provides the structural ordering used for Map key ordering
// (insertion into the sorted entry list) and general equality checks.
// It mirrors original_source's derived Ord on ContextualObject:
// structural value first, then the span's start offset as a tiebreaker.
func Compare(a, b Object) int {
	if a.Type() != b.Type() {
		return typeRank[a.Type()] - typeRank[b.Type()]
	}
	if c := compareValue(a, b); c != 0 {
		return c
	}
	return a.Span().Start - b.Span().Start
}

func compareValue(a, b Object) int {
	switch av := a.(type) {
	case *Integer:
		return av.Value.Compare(b.(*Integer).Value)
	case *Float:
		bf := b.(*Float).Value.Value
		switch {
		case av.Value.Value < bf:
			return -1
		case av.Value.Value > bf:
			return 1
		default:
			return 0
		}
	case *Boolean:
		bb := b.(*Boolean).Value
		if av.Value == bb {
			return 0
		}
		if !av.Value {
			return -1
		}
		return 1
	case *String:
		return strings.Compare(av.Value, b.(*String).Value)
	case *Array:
		return compareArrays(av, b.(*Array))
	case *Map:
		return compareMaps(av, b.(*Map))
	case *Return:
		return Compare(av.Value, b.(*Return).Value)
	case *Builtin:
		return strings.Compare(av.Name, b.(*Builtin).Name)
	case *Lambda:
		return strings.Compare(av.Inspect(), b.(*Lambda).Inspect())
	case *Promise:
		return strings.Compare(av.ID, b.(*Promise).ID)
	case *Null:
		return 0
	default:
		return strings.Compare(a.Inspect(), b.Inspect())
	}
}

func compareArrays(a, b *Array) int {
	for i := 0; i < len(a.Elements) && i < len(b.Elements); i++ {
		if c := Compare(a.Elements[i], b.Elements[i]); c != 0 {
			return c
		}
	}
	return len(a.Elements) - len(b.Elements)
}

func compareMaps(a, b *Map) int {
	for i := 0; i < len(a.entries) && i < len(b.entries); i++ {
		if c := Compare(a.entries[i].Key, b.entries[i].Key); c != 0 {
			return c
		}
		if c := Compare(a.entries[i].Value, b.entries[i].Value); c != 0 {
			return c
		}
	}
	return len(a.entries) - len(b.entries)
}

// Equal reports structural equality (Compare == 0, ignoring span).
func Equal(a, b Object) bool {
	if a.Type() != b.Type() {
		return false
	}
	return compareValue(a, b) == 0
}
