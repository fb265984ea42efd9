package bench

// Manifest is the optional suite.yaml at a benchmark root, pinning
// which benchmark directories to run and in what order. Without one,
// the loader falls back to walking the root for benchmark_N
// directories.
type Manifest struct {
	Suite      string   `yaml:"suite"`
	Benchmarks []string `yaml:"benchmarks"`
}

// Benchmark is one loaded benchmark directory: its settings, its
// grammar file, and its example files in run order.
type Benchmark struct {
	Name         string
	Dir          string
	Settings     *Settings
	GrammarPath  string
	ExampleFiles []string
}

// CaseResult is the outcome of running one example file of a
// benchmark.
type CaseResult struct {
	Benchmark string
	Case      string
	Output    string
	Expected  string
	Pass      bool
	Err       error
}
