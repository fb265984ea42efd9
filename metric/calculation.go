package metric

import (
	"math"
	"strconv"
	"strings"

	"github.com/approxsynth/synth/value"
)

// penaltyUnits and penaltyOffByOne are the per-digit costs of
// Calculation's "mental arithmetic slip" model: getting the units
// digit off by one (7 typed as 8) is cheaper than getting it wrong
// entirely, and a slip in any other digit place is cheaper still
// relative to how far off the magnitude actually is.
const (
	penaltyUnits    = 0.5
	penaltyOffByOne = 0.25
)

// Calculation scores two numbers by comparing their decimal digit
// strings position by position: an adjacent (off-by-one) digit slip
// costs a small penalty, any non-adjacent digit difference maxes the
// distance out to 1.0, and a sign mismatch is never forgiven.
type Calculation struct{}

func (Calculation) Name() string { return "Calculation" }

func (c Calculation) Distance(actual, expected value.Value) float64 {
	return Dispatch(Pointwise{
		Int:   c.intDistance,
		Float: c.floatDistance,
		Str:   eqDistance,
		List:  func(a, e value.Value) float64 { return DefaultListDistance(a, e, c.Distance) },
	}, actual, expected)
}

func (c Calculation) intDistance(actual, expected value.Value) float64 {
	a, ok1 := actual.(value.Int)
	e, ok2 := expected.(value.Int)
	if !ok1 || !ok2 {
		return 1
	}
	if (a < 0) != (e < 0) {
		return 1
	}
	return digitsDistance(digitString(absInt64(int64(a))), digitString(absInt64(int64(e))))
}

func (c Calculation) floatDistance(actual, expected value.Value) float64 {
	a, ok1 := actual.(value.Float)
	e, ok2 := expected.(value.Float)
	if !ok1 || !ok2 {
		return 1
	}
	af, ef := float64(a), float64(e)
	if math.IsNaN(af) || math.IsNaN(ef) {
		return 1
	}
	if (af < 0) != (ef < 0) {
		return 1
	}
	aw, afrac := splitFloat(math.Abs(af))
	ew, efrac := splitFloat(math.Abs(ef))
	for len(afrac) < len(efrac) {
		afrac += "0"
	}
	for len(efrac) < len(afrac) {
		efrac += "0"
	}
	for len(aw) < len(ew) {
		aw = "0" + aw
	}
	for len(ew) < len(aw) {
		ew = "0" + ew
	}
	return digitsDistance(aw+afrac, ew+efrac)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func digitString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func splitFloat(v float64) (whole, frac string) {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	parts := strings.SplitN(s, ".", 2)
	whole = parts[0]
	if len(parts) == 2 {
		frac = parts[1]
	}
	return whole, frac
}

// digitsDistance applies the off-by-one digit model to two equal-width
// left-padded decimal digit strings, with the rightmost digit treated
// as the "units" place.
func digitsDistance(a, e string) float64 {
	for len(a) < len(e) {
		a = "0" + a
	}
	for len(e) < len(a) {
		e = "0" + e
	}
	n := len(a)
	total := 0.0
	for i := 0; i < n; i++ {
		diff := int(a[i]) - int(e[i])
		if diff < 0 {
			diff = -diff
		}
		if diff == 0 {
			continue
		}
		if diff > 1 {
			return 1
		}
		if i == n-1 {
			total += penaltyUnits
		} else {
			total += penaltyOffByOne
		}
	}
	if total > 1 {
		return 1
	}
	return total
}
