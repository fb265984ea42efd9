package operator

import (
	"sort"
	"strings"

	"github.com/approxsynth/synth/value"
)

// Len implements `len(x)` for List and Str.
func Len(children []value.Value, assignment map[string]value.Value) value.Outcome {
	switch c := children[0].(type) {
	case value.List:
		return value.Ok(value.NewInt(int64(len(c))))
	case value.Str:
		return value.Ok(value.NewInt(int64(len([]rune(string(c))))))
	default:
		return value.Fail(value.ErrType)
	}
}

// Abs implements `abs(x)` for Int and Float.
func Abs(children []value.Value, assignment map[string]value.Value) value.Outcome {
	switch c := children[0].(type) {
	case value.Int:
		if c < 0 {
			return value.Ok(value.NewInt(int64(-c)))
		}
		return value.Ok(c)
	case value.Float:
		if c < 0 {
			return value.Ok(value.NewFloat(float64(-c)))
		}
		return value.Ok(c)
	default:
		return value.Fail(value.ErrType)
	}
}

// Sorted implements `sorted(x)` over a List, using compare() so
// strings and numbers order the same way the comparison operators do;
// elements compare() cannot order fail the candidate.
func Sorted(children []value.Value, assignment map[string]value.Value) value.Outcome {
	c, ok := children[0].(value.List)
	if !ok {
		return value.Fail(value.ErrType)
	}
	out := make([]value.Value, len(c))
	copy(out, c)
	var sortErr value.ErrorCode
	sort.SliceStable(out, func(i, j int) bool {
		cmp, errc := compare(out[i], out[j])
		if errc != value.ErrNone {
			sortErr = errc
		}
		return cmp < 0
	})
	if sortErr != value.ErrNone {
		return value.Fail(sortErr)
	}
	return value.Ok(value.NewList(out))
}

// ReversedList implements `list(reversed(x))`.
func ReversedList(children []value.Value, assignment map[string]value.Value) value.Outcome {
	c, ok := children[0].(value.List)
	if !ok {
		return value.Fail(value.ErrType)
	}
	out := make([]value.Value, len(c))
	for i, v := range c {
		out[len(c)-1-i] = v
	}
	return value.Ok(value.NewList(out))
}

// Index implements `.index(v)`: the position of the first occurrence
// of v in a List, or of a substring in a Str.
func Index(children []value.Value, assignment map[string]value.Value) value.Outcome {
	switch c := children[0].(type) {
	case value.List:
		for i, v := range c {
			if v.Equal(children[1]) {
				return value.Ok(value.NewInt(int64(i)))
			}
		}
		return value.Fail(value.ErrKey)
	case value.Str:
		sub, ok := children[1].(value.Str)
		if !ok {
			return value.Fail(value.ErrType)
		}
		i := strings.Index(string(c), string(sub))
		if i < 0 {
			return value.Fail(value.ErrKey)
		}
		return value.Ok(value.NewInt(int64(len([]rune(string(c)[:i])))))
	default:
		return value.Fail(value.ErrType)
	}
}

// Count implements `.count(v)` for List and Str.
func Count(children []value.Value, assignment map[string]value.Value) value.Outcome {
	switch c := children[0].(type) {
	case value.List:
		n := 0
		for _, v := range c {
			if v.Equal(children[1]) {
				n++
			}
		}
		return value.Ok(value.NewInt(int64(n)))
	case value.Str:
		sub, ok := children[1].(value.Str)
		if !ok {
			return value.Fail(value.ErrType)
		}
		if len(sub) == 0 {
			return value.Ok(value.NewInt(int64(len([]rune(string(c)))) + 1))
		}
		return value.Ok(value.NewInt(int64(strings.Count(string(c), string(sub)))))
	default:
		return value.Fail(value.ErrType)
	}
}

// Join implements `sep.join(items)`: children[0] is the separator
// string, children[1] the List of Str elements to join.
func Join(children []value.Value, assignment map[string]value.Value) value.Outcome {
	sep, ok := children[0].(value.Str)
	if !ok {
		return value.Fail(value.ErrType)
	}
	items, ok := children[1].(value.List)
	if !ok {
		return value.Fail(value.ErrType)
	}
	parts := make([]string, len(items))
	for i, v := range items {
		s, ok := v.(value.Str)
		if !ok {
			return value.Fail(value.ErrType)
		}
		parts[i] = string(s)
	}
	return value.Ok(value.NewStr(strings.Join(parts, string(sep))))
}

func strMethod(fn func(string) string) SemanticFunc {
	return func(children []value.Value, assignment map[string]value.Value) value.Outcome {
		s, ok := children[0].(value.Str)
		if !ok {
			return value.Fail(value.ErrType)
		}
		return value.Ok(value.NewStr(fn(string(s))))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

func title(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		letter := ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
		if letter && !prevLetter {
			b.WriteString(strings.ToUpper(string(r)))
		} else if letter {
			b.WriteString(strings.ToLower(string(r)))
		} else {
			b.WriteRune(r)
		}
		prevLetter = letter
	}
	return b.String()
}

var (
	Capitalize = strMethod(capitalize)
	Casefold   = strMethod(strings.ToLower)
	Lower      = strMethod(strings.ToLower)
	Title      = strMethod(title)
	Upper      = strMethod(strings.ToUpper)
)
