// Package enumerator implements the bottom-up, iterative-deepening
// search: starting from terminals, it builds programs height by height
// (non-decreasing height order), using the equivalence manager to skip anything
// observationally identical to an already-discovered program.
//
// The search is exposed as a lazy sequence — a channel of
// *expr.Expression fed by a single goroutine — with context.Context
// providing cooperative cancellation between candidates.
package enumerator

import (
	"context"

	"github.com/approxsynth/synth/equivalence"
	"github.com/approxsynth/synth/expr"
	"github.com/approxsynth/synth/grammar"
	"github.com/approxsynth/synth/operator"
	"github.com/approxsynth/synth/trace"
	"github.com/approxsynth/synth/value"
)

// Enumerator holds the fixed inputs to a search run and the telemetry
// counters exposed for statistics output: CurrentHeight and
// ProgramCounter.
type Enumerator struct {
	Grammar     *grammar.SearchSpace
	Assignments []map[string]value.Value
	MaxHeight   int

	CurrentHeight  int
	ProgramCounter int

	nextID int
	done   chan struct{}
}

// New builds an Enumerator over the given grammar and example
// assignments, searching up to (and including) maxHeight.
func New(g *grammar.SearchSpace, assignments []map[string]value.Value, maxHeight int) *Enumerator {
	return &Enumerator{Grammar: g, Assignments: assignments, MaxHeight: maxHeight}
}

// Enumerate returns a channel yielding pairwise non-equivalent
// Expressions in order of non-decreasing height, bounded by
// MaxHeight. The channel closes when the search is exhausted or when
// ctx is cancelled; in the cancelled case the strategy consuming the
// stream is expected to stop pulling and report its best-so-far.
func (en *Enumerator) Enumerate(ctx context.Context) <-chan *expr.Expression {
	out := make(chan *expr.Expression)
	en.done = make(chan struct{})
	go func() {
		defer close(out)
		defer close(en.done)
		en.run(ctx, out)
	}()
	return out
}

// Wait blocks until the producing goroutine has exited, after which
// CurrentHeight and ProgramCounter are stable and safe to read. A
// strategy that stops consuming early must cancel the context it
// passed to Enumerate before calling Wait.
func (en *Enumerator) Wait() {
	if en.done != nil {
		<-en.done
	}
}

func (en *Enumerator) emit(ctx context.Context, out chan<- *expr.Expression, e *expr.Expression) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- e:
		return true
	}
}

func (en *Enumerator) build(op *operator.Operator, children []*expr.Expression) (*expr.Expression, bool) {
	en.ProgramCounter++
	e, ok := expr.New(en.nextID, op, children, en.Assignments)
	if ok {
		en.nextID++
	}
	if trace.IsEnabled() {
		trace.Candidate(op.Name, en.CurrentHeight, en.ProgramCounter, !ok)
	}
	return e, ok
}

func (en *Enumerator) run(ctx context.Context, out chan<- *expr.Expression) {
	eq := equivalence.New()
	en.CurrentHeight = 0

	// Height 0: terminals, in registration order (variables first, per
	// grammar.SearchSpace.AddVariables).
	for _, op := range en.Grammar.Slot(0) {
		e, ok := en.build(op, nil)
		if !ok {
			continue
		}
		if eq.IsEquivalent(e) {
			continue
		}
		eq.Intern(e)
		if !en.emit(ctx, out, e) {
			return
		}
	}
	eq.AdvanceHeight()

	maxArity := en.Grammar.MaxArity()
	for h := 1; h <= en.MaxHeight; h++ {
		en.CurrentHeight = h
		trace.HeightAdvance(h)
		last := eq.LastHeightPrograms()
		prev := eq.PreviousHeightPrograms()
		for k := 1; k <= maxArity; k++ {
			ops := en.Grammar.Slot(k)
			for _, op := range ops {
				for i := 0; i < k; i++ {
					if !en.fillPosition(ctx, eq, out, op, k, i, last, prev) {
						return
					}
				}
			}
		}
		eq.AdvanceHeight()
	}
	en.CurrentHeight = en.MaxHeight + 1
}

// fillPosition implements one (operator, "at least one child from
// last at position i") generator: the outer loop ranges over last for
// position i; the remaining k-1 positions range over the Cartesian
// product of prev, enumerated in lexicographic order (leftmost
// position varies slowest) so reruns are bit-identical.
func (en *Enumerator) fillPosition(ctx context.Context, eq *equivalence.Manager, out chan<- *expr.Expression, op *operator.Operator, k, fixed int, last, prev []*expr.Expression) bool {
	others := make([]int, 0, k-1)
	for p := 0; p < k; p++ {
		if p != fixed {
			others = append(others, p)
		}
	}
	n := len(others)
	if n > 0 && len(prev) == 0 {
		return true
	}
	for _, lp := range last {
		idx := make([]int, n)
		for {
			children := make([]*expr.Expression, k)
			children[fixed] = lp
			for j, p := range others {
				children[p] = prev[idx[j]]
			}
			select {
			case <-ctx.Done():
				return false
			default:
			}
			e, ok := en.build(op, children)
			if ok && !eq.IsEquivalent(e) {
				eq.Intern(e)
				if !en.emit(ctx, out, e) {
					return false
				}
			}
			if n == 0 {
				break
			}
			pos := n - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(prev) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				break
			}
		}
	}
	return true
}
