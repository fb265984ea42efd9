package metric

import (
	"fmt"

	"github.com/approxsynth/synth/value"
)

// regularMetrics are the sub-metrics Combined can route a variant to.
// Parameterized metrics get their defaults here; a caller who needs a
// specific sigma or solver composes Combined by hand instead.
var regularMetrics = map[string]Metric{
	"Default":     Default{},
	"Normal":      Normal{Sigma: 1},
	"Calculation": Calculation{},
	"Hamming":     Hamming{},
	"Levenshtein": Levenshtein{},
	"Permutation": Permutation{},
	"Keyboard":    Keyboard{},
	"Homophone":   Homophone{},
}

// Combined routes each variant to its own sub-metric, so a single run
// can score ints with Calculation, floats with Normal, strings with
// Levenshtein and lists with Permutation at the same time.
type Combined struct {
	IntMetric   Metric
	FloatMetric Metric
	StrMetric   Metric
	ListMetric  Metric
}

// NewCombined builds a Combined metric from four sub-metric names; an
// empty name falls back to Default.
func NewCombined(intName, floatName, strName, listName string) (Combined, error) {
	pick := func(name string) (Metric, error) {
		if name == "" {
			return Default{}, nil
		}
		m, ok := regularMetrics[name]
		if !ok {
			return nil, fmt.Errorf("unknown sub-metric %q", name)
		}
		return m, nil
	}
	var c Combined
	var err error
	if c.IntMetric, err = pick(intName); err != nil {
		return Combined{}, err
	}
	if c.FloatMetric, err = pick(floatName); err != nil {
		return Combined{}, err
	}
	if c.StrMetric, err = pick(strName); err != nil {
		return Combined{}, err
	}
	if c.ListMetric, err = pick(listName); err != nil {
		return Combined{}, err
	}
	return c, nil
}

func (Combined) Name() string { return "Combined" }

func (c Combined) Distance(actual, expected value.Value) float64 {
	if actual.Kind() != expected.Kind() {
		return 1
	}
	switch actual.Kind() {
	case value.KindInt:
		return c.IntMetric.Distance(actual, expected)
	case value.KindFloat:
		return c.FloatMetric.Distance(actual, expected)
	case value.KindStr:
		return c.StrMetric.Distance(actual, expected)
	case value.KindList:
		return c.ListMetric.Distance(actual, expected)
	default:
		if actual.Equal(expected) {
			return 0
		}
		return 1
	}
}
