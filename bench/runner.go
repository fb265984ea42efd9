package bench

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/approxsynth/synth/synthesizer"
)

// Run executes every example file of a benchmark in-process and
// compares each run's output against the expected stdout recorded in
// Settings.csv.
func Run(ctx context.Context, b Benchmark) []CaseResult {
	var results []CaseResult
	for _, examplePath := range b.ExampleFiles {
		stem := strings.TrimSuffix(filepath.Base(examplePath), filepath.Ext(examplePath))
		cfg := synthesizer.Config{
			InputOutput:     examplePath,
			SearchSpace:     b.GrammarPath,
			Metric:          b.Settings.Metric,
			MetricParameter: b.Settings.MetricParameter,
			Tactic:          b.Settings.Tactic,
			TacticParameter: b.Settings.TacticParameter,
			MaxHeight:       b.Settings.MaxHeight,
		}
		lines, _, err := synthesizer.Run(ctx, cfg)
		result := CaseResult{
			Benchmark: b.Name,
			Case:      stem,
			Expected:  b.Settings.Expected[stem],
			Err:       err,
		}
		if err == nil {
			result.Output = strings.Join(lines, "\n")
			result.Pass = result.Output == result.Expected
		}
		results = append(results, result)
	}
	return results
}
