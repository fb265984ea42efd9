package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSuite loads every benchmark under root. A suite.yaml manifest
// pins the set and order; otherwise directories whose name contains
// "benchmark" are discovered and ordered by their numeric suffix.
func LoadSuite(root string) ([]Benchmark, error) {
	names, err := benchmarkNames(root)
	if err != nil {
		return nil, err
	}
	var out []Benchmark
	for _, name := range names {
		b, err := loadBenchmark(root, name)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func benchmarkNames(root string) ([]string, error) {
	manifestPath := filepath.Join(root, "suite.yaml")
	if data, err := os.ReadFile(manifestPath); err == nil {
		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%s: %w", manifestPath, err)
		}
		return m.Benchmarks, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && strings.Contains(e.Name(), "benchmark") {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return numericSuffix(names[i]) < numericSuffix(names[j])
	})
	return names, nil
}

// numericSuffix extracts the N of benchmark_N for ordering; names
// without one sort first by 0.
func numericSuffix(name string) int {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return 0
	}
	return n
}

func loadBenchmark(root, name string) (Benchmark, error) {
	dir := filepath.Join(root, name)
	settings, err := ReadSettings(filepath.Join(dir, "Settings.csv"))
	if err != nil {
		return Benchmark{}, err
	}

	grammarPath := filepath.Join(dir, "Grammar.csv")
	if _, err := os.Stat(grammarPath); err != nil {
		alt := filepath.Join(dir, "Grammar.txt")
		if _, altErr := os.Stat(alt); altErr != nil {
			return Benchmark{}, fmt.Errorf("%s: no Grammar.csv or Grammar.txt", dir)
		}
		grammarPath = alt
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Benchmark{}, err
	}
	var examples []string
	for _, e := range entries {
		if !e.IsDir() && strings.Contains(e.Name(), "Examples") {
			examples = append(examples, filepath.Join(dir, e.Name()))
		}
	}
	sort.Slice(examples, func(i, j int) bool {
		return exampleNumber(examples[i]) < exampleNumber(examples[j])
	})

	return Benchmark{
		Name:         name,
		Dir:          dir,
		Settings:     settings,
		GrammarPath:  grammarPath,
		ExampleFiles: examples,
	}, nil
}

// exampleNumber extracts the N of <stem>ExamplesN.csv for ordering.
func exampleNumber(path string) int {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	i := strings.Index(stem, "Examples")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(stem[i+len("Examples"):])
	if err != nil {
		return 0
	}
	return n
}
