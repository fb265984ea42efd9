package metric

import (
	agnivade "github.com/agnivade/levenshtein"

	"github.com/approxsynth/synth/value"
)

// Levenshtein scores strings by edit distance divided by the longer
// length; ints and floats route through their printed form. Recursive
// selects the naive exponential solver instead of the DP one — useful
// only for cross-checking the DP answer on short inputs, which is
// exactly what the tests use it for.
type Levenshtein struct {
	Recursive bool
}

func (Levenshtein) Name() string { return "Levenshtein" }

func (l Levenshtein) Distance(actual, expected value.Value) float64 {
	return Dispatch(Pointwise{
		Int:   l.viaString,
		Float: l.viaString,
		Str:   l.strDistance,
		List:  func(a, e value.Value) float64 { return DefaultListDistance(a, e, l.Distance) },
	}, actual, expected)
}

func (l Levenshtein) viaString(actual, expected value.Value) float64 {
	return l.editRatio(actual.String(), expected.String())
}

func (l Levenshtein) strDistance(actual, expected value.Value) float64 {
	a, ok1 := actual.(value.Str)
	e, ok2 := expected.(value.Str)
	if !ok1 || !ok2 {
		return 1
	}
	return l.editRatio(string(a), string(e))
}

func (l Levenshtein) editRatio(a, e string) float64 {
	if a == "" && e == "" {
		return 0
	}
	var dist int
	if l.Recursive {
		dist = levenshteinRecursive([]rune(a), []rune(e))
	} else {
		dist = agnivade.ComputeDistance(a, e)
	}
	la, le := len([]rune(a)), len([]rune(e))
	longer := la
	if le > longer {
		longer = le
	}
	return float64(dist) / float64(longer)
}

func levenshteinRecursive(a, e []rune) int {
	if len(a) == 0 {
		return len(e)
	}
	if len(e) == 0 {
		return len(a)
	}
	if a[0] == e[0] {
		return levenshteinRecursive(a[1:], e[1:])
	}
	return 1 + min3(
		levenshteinRecursive(a[1:], e),
		levenshteinRecursive(a, e[1:]),
		levenshteinRecursive(a[1:], e[1:]),
	)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
