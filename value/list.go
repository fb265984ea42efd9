package value

import "strings"

// List is an ordered, immutable sequence of values. Operators that
// would mutate a list (append, insert, slice-assign) return a new List
// rather than modifying one in place; value vectors share elements
// freely across expressions.
type List []Value

func (l List) Kind() Kind { return KindList }

func (l List) String() string {
	if len(l) == 0 {
		return "[]"
	}
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (l List) AppendSignature(buf []byte) []byte {
	buf = append(buf, byte(KindList))
	n := len(l)
	buf = append(buf, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	for _, v := range l {
		buf = v.AppendSignature(buf)
	}
	return buf
}

// With returns a new List with a copy of the backing array, safe for a
// caller to mutate in place before handing it to NewList.
func (l List) With(elems []Value) List {
	out := make([]Value, len(elems))
	copy(out, elems)
	return List(out)
}
