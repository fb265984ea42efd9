package metric

import (
	"math"

	"github.com/approxsynth/synth/value"
)

// Normal models the actual value as a draw from a Gaussian centered on
// the expected value with standard deviation Sigma: distance is one
// minus the density ratio pdf(x)/pdf(mu), which simplifies to
// 1 - exp(-(x-mu)^2 / (2*sigma^2)) since the normalizing constants
// cancel. Ints route through the same formula after widening to
// float64; overflow to NaN/Inf scores 1.0.
type Normal struct {
	Sigma float64
}

func (n Normal) Name() string { return "Normal" }

func (n Normal) Distance(actual, expected value.Value) float64 {
	return Dispatch(Pointwise{
		Int:   n.numeric,
		Float: n.numeric,
		Str:   func(a, e value.Value) float64 { return eqDistance(a, e) },
		List:  func(a, e value.Value) float64 { return DefaultListDistance(a, e, n.Distance) },
	}, actual, expected)
}

func (n Normal) numeric(actual, expected value.Value) float64 {
	x, _, ok1 := value.MustNumeric(actual)
	mu, _, ok2 := value.MustNumeric(expected)
	if !ok1 || !ok2 {
		return 1
	}
	sigma := n.Sigma
	if sigma <= 0 {
		sigma = 1
	}
	d := x - mu
	exponent := -(d * d) / (2 * sigma * sigma)
	result := 1 - math.Exp(exponent)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 1
	}
	return result
}
