package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/approxsynth/synth/bench"
)

func main() {
	benchmarks := flag.String("benchmarks", "benchmarks", "Root directory of benchmark suites")
	flag.Parse()

	suite, err := bench.LoadSuite(*benchmarks)
	if err != nil {
		log.Fatalf("benchrunner: %v", err)
	}

	runCounter, successCounter := 0, 0
	fmt.Println("RUNNING ALL BENCHMARKS:")
	for _, b := range suite {
		fmt.Println("\n======================================================================")
		fmt.Printf("BENCHMARK: %s\n", b.Name)
		fmt.Printf("DESCRIPTION: %s\n\n", b.Settings.Description)
		fmt.Println("Running tests:")
		for _, result := range runTimed(b) {
			fmt.Println("----------------------------------------------------------------------")
			runCounter++
			switch {
			case result.Err != nil:
				fmt.Printf("[ERROR] Ran %s and got an error (in %s):\n", result.Case, result.elapsed)
				fmt.Println(result.Err)
			case result.Pass:
				fmt.Printf("Ran %s successfully (in %s):\n", result.Case, result.elapsed)
				fmt.Println(result.Output)
				successCounter++
			default:
				fmt.Printf("[NOT MATCH] Ran %s and got a different output (in %s):\n", result.Case, result.elapsed)
				fmt.Println(result.Output)
				fmt.Printf("[EXPECTED: %s ]\n", result.Expected)
			}
		}
	}
	fmt.Println("\n======================================================================")
	fmt.Printf("%d tests out of %d tests were successful.\n", successCounter, runCounter)
	if runCounter == successCounter {
		fmt.Println("ALL TESTS RAN SUCCESSFULLY.")
		return
	}
	fmt.Printf("FAILED IN %d TESTS.\n", runCounter-successCounter)
	os.Exit(1)
}

type timedResult struct {
	bench.CaseResult
	elapsed time.Duration
}

func runTimed(b bench.Benchmark) []timedResult {
	var out []timedResult
	for _, example := range splitCases(b) {
		start := time.Now()
		results := bench.Run(context.Background(), example)
		elapsed := time.Since(start)
		for _, r := range results {
			out = append(out, timedResult{CaseResult: r, elapsed: elapsed.Round(time.Millisecond)})
		}
	}
	return out
}

// splitCases runs each example file as its own timed unit.
func splitCases(b bench.Benchmark) []bench.Benchmark {
	out := make([]bench.Benchmark, 0, len(b.ExampleFiles))
	for _, f := range b.ExampleFiles {
		single := b
		single.ExampleFiles = []string{f}
		out = append(out, single)
	}
	return out
}
