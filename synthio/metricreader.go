package synthio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/approxsynth/synth/metric"
)

// ParseMetric resolves a metric name and its parameter string into a
// Metric. Names accept both the bare form ("Normal") and the suffixed
// one ("NormalMetric"). Parameter meaning is metric-specific: sigma
// for Normal, the vector-function name for Vector, the
// recursive-solver flag for Levenshtein, and the four comma-separated
// per-variant sub-metric names for Combined.
func ParseMetric(name, parameter string) (metric.Metric, error) {
	switch strings.TrimSuffix(name, "Metric") {
	case "", "Default":
		return metric.Default{}, nil
	case "Normal":
		sigma := 1.0
		if parameter != "" {
			v, err := strconv.ParseFloat(parameter, 64)
			if err != nil {
				return nil, fmt.Errorf("Normal metric parameter %q is not a number", parameter)
			}
			sigma = v
		}
		return metric.Normal{Sigma: sigma}, nil
	case "Calculation":
		return metric.Calculation{}, nil
	case "Vector":
		if parameter == "" {
			return nil, fmt.Errorf("Vector metric requires a distance-function parameter")
		}
		return metric.Vector{Func: parameter}, nil
	case "Hamming":
		return metric.Hamming{}, nil
	case "Levenshtein":
		return metric.Levenshtein{Recursive: parseFlag(parameter)}, nil
	case "Permutation":
		return metric.Permutation{}, nil
	case "Keyboard":
		return metric.Keyboard{}, nil
	case "Homophone":
		return metric.Homophone{}, nil
	case "Combined":
		names := [4]string{}
		for i, part := range strings.Split(parameter, ",") {
			if i >= len(names) {
				return nil, fmt.Errorf("Combined metric takes at most four sub-metric names")
			}
			names[i] = strings.TrimSuffix(strings.TrimSpace(part), "Metric")
		}
		return metric.NewCombined(names[0], names[1], names[2], names[3])
	default:
		return nil, fmt.Errorf("unknown metric %q", name)
	}
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
