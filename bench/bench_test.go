package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeBenchmark(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"Settings.csv": "description,sum of three variables\n" +
			"metric,Default\n" +
			"tactic,match\n" +
			"tactic-parameter,0\n" +
			"max-height,3\n" +
			"SumExamples1,x + y + z\n" +
			"SumExamples2,no valid program\n",
		"Grammar.csv":      ",\nx,y,z\n,\n+\n",
		"SumExamples1.csv": "x,y,z,output\n1,2,3,6\n2,4,5,11\n11,22,3,36\n",
		"SumExamples2.csv": "x,y,z,output\n1,2,3,999\n",
	}
	for fname, content := range files {
		if err := os.WriteFile(filepath.Join(dir, fname), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadSuiteWalk(t *testing.T) {
	root := t.TempDir()
	writeBenchmark(t, root, "benchmark_2")
	writeBenchmark(t, root, "benchmark_10")
	benchmarks, err := LoadSuite(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(benchmarks) != 2 {
		t.Fatalf("got %d benchmarks", len(benchmarks))
	}
	if benchmarks[0].Name != "benchmark_2" || benchmarks[1].Name != "benchmark_10" {
		t.Errorf("numeric ordering broken: %s, %s", benchmarks[0].Name, benchmarks[1].Name)
	}
	if len(benchmarks[0].ExampleFiles) != 2 {
		t.Errorf("got %d example files", len(benchmarks[0].ExampleFiles))
	}
	if benchmarks[0].Settings.Description != "sum of three variables" {
		t.Errorf("description = %q", benchmarks[0].Settings.Description)
	}
}

func TestLoadSuiteManifest(t *testing.T) {
	root := t.TempDir()
	writeBenchmark(t, root, "benchmark_1")
	writeBenchmark(t, root, "extra")
	manifest := "suite: core\nbenchmarks:\n  - benchmark_1\n"
	if err := os.WriteFile(filepath.Join(root, "suite.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	benchmarks, err := LoadSuite(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(benchmarks) != 1 || benchmarks[0].Name != "benchmark_1" {
		t.Fatalf("manifest should pin the set, got %+v", benchmarks)
	}
}

func TestRunBenchmark(t *testing.T) {
	root := t.TempDir()
	writeBenchmark(t, root, "benchmark_1")
	benchmarks, err := LoadSuite(root)
	if err != nil {
		t.Fatal(err)
	}
	results := Run(context.Background(), benchmarks[0])
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Case, r.Err)
		}
		if !r.Pass {
			t.Errorf("%s: output %q, expected %q", r.Case, r.Output, r.Expected)
		}
	}
}
