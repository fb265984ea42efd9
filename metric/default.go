package metric

import "github.com/approxsynth/synth/value"

// EPS is the tolerance Default (and every metric that routes floats
// through an equality check) uses to treat near-equal floats as equal.
const EPS = 1e-3

// Default is 0 if the values are equal (floats within EPS), else 1.
type Default struct{}

func (Default) Name() string { return "Default" }

func (d Default) Distance(actual, expected value.Value) float64 {
	return Dispatch(Pointwise{
		Int:   eqDistance,
		Float: floatEqDistance,
		Str:   eqDistance,
		List:  func(a, e value.Value) float64 { return DefaultListDistance(a, e, d.Distance) },
	}, actual, expected)
}

func eqDistance(a, e value.Value) float64 {
	if a.Equal(e) {
		return 0
	}
	return 1
}

func floatEqDistance(a, e value.Value) float64 {
	af, aok := a.(value.Float)
	ef, eok := e.(value.Float)
	if !aok || !eok {
		return 1
	}
	d := float64(af) - float64(ef)
	if d < 0 {
		d = -d
	}
	if d <= EPS {
		return 0
	}
	return 1
}
