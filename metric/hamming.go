package metric

import "github.com/approxsynth/synth/value"

// Hamming is Vector("hamming") with a string override: a string is
// compared position by position as a list of its characters, with a
// length mismatch charged via the same length-adjusted formula the
// vector functions use.
type Hamming struct{}

func (Hamming) Name() string { return "Hamming" }

func (h Hamming) Distance(actual, expected value.Value) float64 {
	v := Vector{Func: "hamming"}
	return Dispatch(Pointwise{
		Int:   func(a, e value.Value) float64 { return v.Distance(a, e) },
		Float: func(a, e value.Value) float64 { return v.Distance(a, e) },
		Str:   hammingStr,
		List:  func(a, e value.Value) float64 { return v.Distance(a, e) },
	}, actual, expected)
}

func hammingStr(actual, expected value.Value) float64 {
	a := []rune(string(actual.(value.Str)))
	e := []rune(string(expected.(value.Str)))
	minLen, maxLen := len(a), len(e)
	if maxLen < minLen {
		minLen, maxLen = maxLen, minLen
	}
	if maxLen == 0 {
		return 0
	}
	mismatches := 0
	for i := 0; i < minLen; i++ {
		if a[i] != e[i] {
			mismatches++
		}
	}
	return float64(mismatches+(maxLen-minLen)) / float64(maxLen)
}
