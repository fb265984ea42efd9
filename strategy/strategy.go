// Package strategy implements the selection policies that consume the
// enumerator's lazy stream: exact match, error-sum and error-rate
// thresholds, full-stream best, top-k, per-height best, height-penalized
// best, and the interruptible variant that returns the best program
// seen before cancellation.
//
// All strategies share the same scoring rule: a program's distance is
// the sum of the metric's pointwise distances between its value vector
// and the expected outputs. "No valid program" is a nil return, never
// an error.
package strategy

import (
	"context"
	"math"
	"sort"

	"github.com/approxsynth/synth/enumerator"
	"github.com/approxsynth/synth/expr"
	"github.com/approxsynth/synth/metric"
	"github.com/approxsynth/synth/value"
)

// Distance sums the metric's pointwise distance between a program's
// value vector and the expected outputs.
func Distance(m metric.Metric, e *expr.Expression, expected []value.Value) float64 {
	total := 0.0
	for i, v := range e.Values {
		total += m.Distance(v, expected[i])
	}
	return total
}

// stop cancels the stream and waits for the producer to exit, so the
// enumerator's telemetry counters are stable once a strategy returns.
func stop(cancel context.CancelFunc, en *enumerator.Enumerator) {
	cancel()
	en.Wait()
}

// FindProgram returns the first program whose value vector equals the
// expected outputs exactly, or nil after exhaustion.
func FindProgram(ctx context.Context, en *enumerator.Enumerator, expected []value.Value) *expr.Expression {
	ctx, cancel := context.WithCancel(ctx)
	defer stop(cancel, en)
	for e := range en.Enumerate(ctx) {
		if exactMatch(e, expected) {
			return e
		}
	}
	return nil
}

func exactMatch(e *expr.Expression, expected []value.Value) bool {
	for i, v := range e.Values {
		if !v.Equal(expected[i]) {
			return false
		}
	}
	return true
}

// Match returns the first program whose summed distance is at most
// errorSum, or nil after exhaustion.
func Match(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric, errorSum float64) *expr.Expression {
	ctx, cancel := context.WithCancel(ctx)
	defer stop(cancel, en)
	for e := range en.Enumerate(ctx) {
		if Distance(m, e, expected) <= errorSum {
			return e
		}
	}
	return nil
}

// Accuracy returns the first program whose summed distance is at most
// errorRate times the number of examples, or nil after exhaustion.
func Accuracy(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric, errorRate float64) *expr.Expression {
	return Match(ctx, en, expected, m, errorRate*float64(len(expected)))
}

// ByHeight runs the full enumeration and returns the single program
// with the smallest distance, ties broken by earliest discovery. The
// initial best score of len(expected)+1 exceeds any achievable sum, so
// the first scored program always wins it.
func ByHeight(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric) *expr.Expression {
	ctx, cancel := context.WithCancel(ctx)
	defer stop(cancel, en)
	var best *expr.Expression
	bestScore := float64(len(expected) + 1)
	for e := range en.Enumerate(ctx) {
		if score := Distance(m, e, expected); score < bestScore {
			best = e
			bestScore = score
		}
	}
	return best
}

// Interrupt behaves as ByHeight but is meant to be driven by a
// cancellable context (e.g. one wired to SIGINT): when ctx is
// cancelled the stream drains at the next candidate boundary and the
// best program seen so far is returned.
func Interrupt(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric) *expr.Expression {
	return ByHeight(ctx, en, expected, m)
}

// Scored pairs a program with its distance for the multi-result
// strategies.
type Scored struct {
	Program *expr.Expression
	Score   float64
}

// Top returns the k programs with the smallest distance, sorted
// ascending; ties keep discovery order (a stable sort over the
// candidates in the order they were appended).
func Top(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric, k int) []Scored {
	ctx, cancel := context.WithCancel(ctx)
	defer stop(cancel, en)
	if k <= 0 {
		return nil
	}
	var best []Scored
	worst := math.Inf(1)
	for e := range en.Enumerate(ctx) {
		score := Distance(m, e, expected)
		if len(best) < k || score < worst {
			best = append(best, Scored{Program: e, Score: score})
			sort.SliceStable(best, func(i, j int) bool { return best[i].Score < best[j].Score })
			if len(best) > k {
				best = best[:k]
			}
			worst = best[len(best)-1].Score
		}
	}
	return best
}

// BestByHeight returns one winner per height bucket 0..maxHeight; an
// entry is nil when no program at that height beat the initial score.
// The enumerator's monotone-height guarantee means each bucket is
// settled before the next one opens.
func BestByHeight(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric) []*expr.Expression {
	ctx, cancel := context.WithCancel(ctx)
	defer stop(cancel, en)
	winners := make([]*expr.Expression, en.MaxHeight+1)
	scores := make([]float64, en.MaxHeight+1)
	for i := range scores {
		scores[i] = float64(len(expected) + 1)
	}
	for e := range en.Enumerate(ctx) {
		h := e.Height
		if h >= len(winners) {
			continue
		}
		if score := Distance(m, e, expected); score < scores[h] {
			winners[h] = e
			scores[h] = score
		}
	}
	return winners
}

// PenalizedHeight minimizes distance times penalty^height, so a lower
// penalty favors shorter programs more aggressively. penalty must be
// in (0,1]; with penalty == 1 the result equals ByHeight's.
func PenalizedHeight(ctx context.Context, en *enumerator.Enumerator, expected []value.Value, m metric.Metric, penalty float64) *expr.Expression {
	ctx, cancel := context.WithCancel(ctx)
	defer stop(cancel, en)
	var best *expr.Expression
	bestScore := float64(len(expected)+1) * math.Pow(penalty, float64(en.MaxHeight))
	for e := range en.Enumerate(ctx) {
		score := Distance(m, e, expected) * math.Pow(penalty, float64(e.Height))
		if score < bestScore {
			best = e
			bestScore = score
		}
	}
	return best
}
