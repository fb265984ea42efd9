package metric

import (
	"math"
	"strings"

	"github.com/approxsynth/synth/value"
)

// keyboardPenalty is the per-character weight applied to the physical
// key distance between a typed character and the expected one.
const keyboardPenalty = 0.25

// keyboardScale rescales raw key-grid distances so the farthest pair
// of keys on the board stays within the per-character budget.
const keyboardScale = 1.0 / 36.0

// Keyboard scores strings by where their characters sit on a physical
// QWERTY layout: substituting a neighboring key costs almost nothing,
// reaching across the board costs more, and a length mismatch is not a
// typo this model recognizes. The key coordinates come from a compact
// spiral encoding of the QWERTY grid (see
// https://codegolf.stackexchange.com/a/233633): each key's column and
// stagger-adjusted row are derived from its position in a walk over
// the home-region keys.
type Keyboard struct{}

func (Keyboard) Name() string { return "Keyboard" }

type keyPos struct {
	x, y float64
}

var keyboardMap = buildKeyboardMap()

func buildKeyboardMap() map[rune]keyPos {
	const keys = "1234567890-=qwertyuiop[]\\asdfghjkl;'zxcvbnm,./"
	const walk = ".lo,kimjunhybgtvfrcdexswzaq"
	m := make(map[rune]keyPos, len(keys))
	for _, ch := range keys {
		idx := strings.IndexRune(walk, ch)
		m[ch] = keyPos{
			x: float64(idx - pyFloorDiv(-idx, 3)),
			y: float64(pyMod(idx, 3) * 4),
		}
	}
	return m
}

// pyFloorDiv and pyMod replicate Python's floored division and modulo
// for negative operands; the walk index is -1 for keys outside the
// 27-character walk and the encoding depends on Python's conventions
// there.
func pyFloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func pyMod(a, b int) int {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

func keyDistance(a, e rune) (float64, bool) {
	pa, ok1 := keyboardMap[a]
	pe, ok2 := keyboardMap[e]
	if !ok1 || !ok2 {
		return 0, false
	}
	return math.Hypot(pa.x-pe.x, pa.y-pe.y) * keyboardScale, true
}

func (k Keyboard) Distance(actual, expected value.Value) float64 {
	return Dispatch(Pointwise{
		Int:   eqDistance,
		Float: floatEqDistance,
		Str:   keyboardStr,
		List:  func(a, e value.Value) float64 { return DefaultListDistance(a, e, k.Distance) },
	}, actual, expected)
}

func keyboardStr(actual, expected value.Value) float64 {
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
		d, ok := keyDistance(a[i], e[i])
		if !ok {
			return 1
		}
		score += keyboardPenalty * d
		if score >= 1 {
			return 1
		}
	}
	return score
}
