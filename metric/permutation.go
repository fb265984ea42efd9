package metric

import "github.com/approxsynth/synth/value"

// Permutation treats two lists as equal when they hold the same
// elements with the same multiplicities, regardless of order. Every
// other variant scores as Default.
type Permutation struct{}

func (Permutation) Name() string { return "Permutation" }

func (p Permutation) Distance(actual, expected value.Value) float64 {
	return Dispatch(Pointwise{
		Int:   eqDistance,
		Float: floatEqDistance,
		Str:   eqDistance,
		List:  permutationList,
	}, actual, expected)
}

func permutationList(actual, expected value.Value) float64 {
	a := actual.(value.List)
	e := expected.(value.List)
	if len(a) != len(e) {
		return 1
	}
	// Multiset comparison over the canonical byte encoding, so nested
	// lists and mixed element types count correctly without needing a
	// total order across variants.
	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[string(v.AppendSignature(nil))]++
	}
	for _, v := range e {
		key := string(v.AppendSignature(nil))
		counts[key]--
		if counts[key] < 0 {
			return 1
		}
	}
	return 0
}
