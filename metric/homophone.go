package metric

import (
	"strings"

	"github.com/approxsynth/synth/value"
)

// homophonePenalty is the cost of substituting one phonetically
// similar letter for another.
const homophonePenalty = 0.25

// homophones maps each letter to the letters it is commonly misheard
// as: vowels for each other, and the classic voiced/unvoiced and
// similar-sound consonant pairs.
var homophones = map[rune]string{
	'a': "eiou",
	'b': "p",
	'c': "kq",
	'd': "t",
	'e': "aiou",
	'f': "v",
	'g': "j",
	'i': "aeou",
	'j': "g",
	'k': "cq",
	'm': "n",
	'n': "m",
	'o': "aeiu",
	'p': "b",
	'q': "ck",
	's': "z",
	't': "d",
	'u': "aeio",
	'v': "f",
	'y': "ij",
	'z': "s",
}

// Homophone scores strings by how plausibly one could be a misheard
// rendition of the other: substitutions within the homophone table
// cost a small penalty each, anything else is a full mismatch. The
// strings must have equal length.
type Homophone struct{}

func (Homophone) Name() string { return "Homophone" }

func (h Homophone) Distance(actual, expected value.Value) float64 {
	return Dispatch(Pointwise{
		Int:   eqDistance,
		Float: floatEqDistance,
		Str:   homophoneStr,
		List:  func(a, e value.Value) float64 { return DefaultListDistance(a, e, h.Distance) },
	}, actual, expected)
}

func homophoneStr(actual, expected value.Value) float64 {
	a := []rune(strings.ToLower(string(actual.(value.Str))))
	e := []rune(strings.ToLower(string(expected.(value.Str))))
	if len(a) != len(e) {
		return 1
	}
	score := 0.0
	for i := range a {
		if a[i] == e[i] {
			continue
		}
		similar, ok := homophones[e[i]]
		if !ok || !strings.ContainsRune(similar, a[i]) {
			return 1
		}
		score += homophonePenalty
		if score >= 1 {
			return 1
		}
	}
	return score
}
