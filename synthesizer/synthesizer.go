// Package synthesizer ties the pipeline together: load examples and
// grammar, resolve the metric and tactic, run the enumeration under
// the chosen strategy, and render the winners. It is the in-process
// entry point shared by cmd/synth and the benchmark runner.
package synthesizer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/approxsynth/synth/enumerator"
	"github.com/approxsynth/synth/expr"
	"github.com/approxsynth/synth/metric"
	"github.com/approxsynth/synth/strategy"
	"github.com/approxsynth/synth/synthio"
	"github.com/approxsynth/synth/value"
)

// NoValidProgram is printed when a run ends without a winner. It is a
// normal result, not an error.
const NoValidProgram = "no valid program"

// Config is one synthesis run's worth of settings, mirroring the CLI
// surface one to one.
type Config struct {
	InputOutput     string
	SearchSpace     string
	Metric          string
	MetricParameter string
	Tactic          string
	TacticParameter string
	MaxHeight       int
}

// Stats is the end-of-run telemetry behind --statistics.
type Stats struct {
	ProgramsSearched int
	HighestHeight    int
}

// Run executes one synthesis and returns the rendered winners, one
// per line of eventual output. Interruptible tactics honor ctx
// cancellation by returning the best program seen so far.
func Run(ctx context.Context, cfg Config) ([]string, Stats, error) {
	examples, err := synthio.ReadExamplesCSV(cfg.InputOutput)
	if err != nil {
		return nil, Stats{}, err
	}
	g, err := synthio.ReadGrammar(cfg.SearchSpace)
	if err != nil {
		return nil, Stats{}, err
	}
	m, err := synthio.ParseMetric(cfg.Metric, cfg.MetricParameter)
	if err != nil {
		return nil, Stats{}, err
	}

	en := enumerator.New(g, examples.Assignments, cfg.MaxHeight)
	winners, err := runTactic(ctx, en, examples.Expected, m, cfg)
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{
		ProgramsSearched: en.ProgramCounter,
		HighestHeight:    en.CurrentHeight,
	}
	if stats.HighestHeight > cfg.MaxHeight {
		stats.HighestHeight = cfg.MaxHeight
	}

	var lines []string
	for _, w := range winners {
		if w != nil {
			lines = append(lines, w.Source())
		}
	}
	if len(lines) == 0 {
		lines = []string{NoValidProgram}
	}
	return lines, stats, nil
}

func runTactic(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric, cfg Config) ([]*expr.Expression, error) {
	tactic := cfg.Tactic
	if tactic == "" {
		tactic = "height"
	}
	switch tactic {
	case "exact":
		return single(strategy.FindProgram(ctx, en, expected)), nil
	case "match":
		errorSum, err := numericParam(cfg.TacticParameter, 0)
		if err != nil {
			return nil, err
		}
		return single(strategy.Match(ctx, en, expected, m, errorSum)), nil
	case "accuracy":
		errorRate, err := numericParam(cfg.TacticParameter, 0)
		if err != nil {
			return nil, err
		}
		return single(strategy.Accuracy(ctx, en, expected, m, errorRate)), nil
	case "height":
		return single(strategy.ByHeight(ctx, en, expected, m)), nil
	case "top":
		kf, err := numericParam(unsetToEmpty(cfg.TacticParameter), 5)
		if err != nil {
			return nil, err
		}
		scored := strategy.Top(ctx, en, expected, m, int(kf))
		out := make([]*expr.Expression, len(scored))
		for i, s := range scored {
			out[i] = s.Program
		}
		return out, nil
	case "best_by_height":
		return strategy.BestByHeight(ctx, en, expected, m), nil
	case "penalized_height":
		penalty, err := numericParam(unsetToEmpty(cfg.TacticParameter), 0.75)
		if err != nil {
			return nil, err
		}
		if penalty <= 0 || penalty > 1 {
			return nil, fmt.Errorf("penalized_height penalty must be in (0,1], got %v", penalty)
		}
		return single(strategy.PenalizedHeight(ctx, en, expected, m, penalty)), nil
	case "interrupt":
		return single(strategy.Interrupt(ctx, en, expected, m)), nil
	default:
		return nil, fmt.Errorf("unknown tactic %q", cfg.Tactic)
	}
}

func single(p *expr.Expression) []*expr.Expression {
	if p == nil {
		return nil
	}
	return []*expr.Expression{p}
}

// unsetToEmpty treats the CLI's "0" placeholder as an absent parameter
// for the tactics where zero is not a meaningful value (top-k count,
// height penalty).
func unsetToEmpty(s string) string {
	if strings.TrimSpace(s) == "0" {
		return ""
	}
	return s
}

// numericParam parses a tactic parameter written as a numeric literal;
// an empty parameter falls back to def. Callers that treat "0" as unset
// map it to empty first (see unsetToEmpty).
func numericParam(s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := synthio.ParseLiteral(s)
	if err != nil {
		return 0, fmt.Errorf("tactic parameter %q is not a numeric literal", s)
	}
	switch n := v.(type) {
	case value.Int:
		return float64(n), nil
	case value.Float:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("tactic parameter %q is not numeric", s)
	}
}

// FormatStats renders the --statistics trailer.
func FormatStats(s Stats) string {
	return "Programs searched: " + strconv.Itoa(s.ProgramsSearched) + "\n" +
		"Highest height: " + strconv.Itoa(s.HighestHeight)
}
