package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/approxsynth/synth/synthesizer"
	"github.com/approxsynth/synth/trace"
)

func main() {
	var (
		inputOutput     string
		searchSpace     string
		metricName      string
		metricParameter string
		tactic          string
		tacticParameter string
		maxHeight       int
		statistics      bool
		traceEnabled    bool
		traceFilter     string
	)

	flag.StringVar(&inputOutput, "input-output", "", "Path to the input-output examples file")
	flag.StringVar(&inputOutput, "io", "", "Shorthand for --input-output")
	flag.StringVar(&searchSpace, "search-space", "", "Path to the grammar file (.csv or .txt)")
	flag.StringVar(&searchSpace, "s", "", "Shorthand for --search-space")
	flag.StringVar(&metricName, "metric", "Default", "Distance metric (Default, Normal, Calculation, Vector, Hamming, Levenshtein, Permutation, Keyboard, Homophone, Combined)")
	flag.StringVar(&metricName, "m", "Default", "Shorthand for --metric")
	flag.StringVar(&metricParameter, "metric-parameter", "", "Metric-specific parameter (sigma, vector function name, ...)")
	flag.StringVar(&metricParameter, "mp", "", "Shorthand for --metric-parameter")
	flag.StringVar(&tactic, "tactic", "height", "Selection tactic (match, accuracy, height, top, best_by_height, penalized_height, interrupt)")
	flag.StringVar(&tactic, "t", "height", "Shorthand for --tactic")
	flag.StringVar(&tacticParameter, "tactic-parameter", "0", "Tactic-specific numeric parameter")
	flag.StringVar(&tacticParameter, "tp", "0", "Shorthand for --tactic-parameter")
	flag.IntVar(&maxHeight, "max-height", 2, "Maximum program height to search")
	flag.IntVar(&maxHeight, "mh", 2, "Shorthand for --max-height")
	flag.BoolVar(&statistics, "statistics", false, "Print programs searched and highest height after the result")
	flag.BoolVar(&traceEnabled, "trace", false, "Enable candidate tracing")
	flag.StringVar(&traceFilter, "trace-filter", "", "Trace filter pattern (glob over operator names, comma-separated)")
	flag.Parse()

	if inputOutput == "" || searchSpace == "" {
		fmt.Fprintln(os.Stderr, "usage: synth --input-output <path> --search-space <path> [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if traceEnabled {
		var filters []string
		if traceFilter != "" {
			filters = strings.Split(traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
	}

	ctx := context.Background()
	if tactic == "interrupt" {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
	}

	lines, stats, err := synthesizer.Run(ctx, synthesizer.Config{
		InputOutput:     inputOutput,
		SearchSpace:     searchSpace,
		Metric:          metricName,
		MetricParameter: metricParameter,
		Tactic:          tactic,
		TacticParameter: tacticParameter,
		MaxHeight:       maxHeight,
	})
	if err != nil {
		log.Fatalf("synth: %v", err)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	if statistics {
		fmt.Println(synthesizer.FormatStats(stats))
	}
	trace.Summary(stats.ProgramsSearched, stats.HighestHeight)
}
