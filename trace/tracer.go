// Package trace provides optional search tracing: candidate
// construction events, height transitions, and an end-of-run summary,
// all behind the --trace flag. Disabled tracing costs one nil check
// per event.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer writes search events, optionally filtered by operator name.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if an operator name matches any of the filter patterns
func (t *Tracer) matchesFilter(opName string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, opName); matched {
			return true
		}
	}
	return false
}

// Candidate logs one constructed candidate: the operator applied, the
// height being searched, and the running program counter. skipped
// marks candidates whose value vector failed to compute.
func (t *Tracer) Candidate(opName string, height, counter int, skipped bool) {
	if !t.enabled || !t.matchesFilter(opName) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if skipped {
		fmt.Fprintf(t.writer, "[TRACE] CANDIDATE #%d h=%d op=%s (skipped)\n", counter, height, opName)
		return
	}
	fmt.Fprintf(t.writer, "[TRACE] CANDIDATE #%d h=%d op=%s\n", counter, height, opName)
}

// HeightAdvance logs the transition to a new search height.
func (t *Tracer) HeightAdvance(height int) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] HEIGHT %d\n", height)
}

// Summary logs the end-of-run statistics.
func (t *Tracer) Summary(programsSearched, highestHeight int) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] DONE programs=%d height=%d\n", programsSearched, highestHeight)
}

// Global convenience functions

// Candidate logs a candidate using the global tracer
func Candidate(opName string, height, counter int, skipped bool) {
	if globalTracer != nil {
		globalTracer.Candidate(opName, height, counter, skipped)
	}
}

// HeightAdvance logs a height transition using the global tracer
func HeightAdvance(height int) {
	if globalTracer != nil {
		globalTracer.HeightAdvance(height)
	}
}

// Summary logs end-of-run statistics using the global tracer
func Summary(programsSearched, highestHeight int) {
	if globalTracer != nil {
		globalTracer.Summary(programsSearched, highestHeight)
	}
}
