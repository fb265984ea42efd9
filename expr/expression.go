// Package expr implements the synthesized AST node: an Expression owns
// its operator, its children, and the per-example value vector the
// enumerator's equivalence pruning depends on. Values are computed
// eagerly at construction; the source form is computed lazily on first
// request and memoized in a one-shot cell.
package expr

import (
	"github.com/approxsynth/synth/operator"
	"github.com/approxsynth/synth/value"
)

// Expression is a node of a candidate program. Children are held by
// pointer rather than by value so the same child can be shared by many
// parents without copying its value vector; the program graph is a
// DAG, with Go's garbage collector standing in for an explicit arena
// (ids are assigned for telemetry and tests, not for memory
// management).
type Expression struct {
	ID       int
	Op       *operator.Operator
	Children []*Expression
	Values   []value.Value
	Height   int

	sourceSet bool
	source    string
}

// New builds and evaluates an Expression: the operator is applied
// pointwise to the children's values at every example, using that
// example's variable assignment. A recoverable evaluation failure at
// any example fails the whole candidate (ok=false) — the enumerator's
// contract is to skip it, never to construct a partially-valid
// Expression. Partial construction is not observable from outside.
func New(id int, op *operator.Operator, children []*Expression, assignments []map[string]value.Value) (*Expression, bool) {
	values := make([]value.Value, len(assignments))
	childValues := make([]value.Value, len(children))
	height := 0
	for _, c := range children {
		if c.Height+1 > height {
			height = c.Height + 1
		}
	}
	for i, assignment := range assignments {
		for j, c := range children {
			childValues[j] = c.Values[i]
		}
		outcome := op.Eval(childValues, assignment)
		if !outcome.IsOk() {
			return nil, false
		}
		values[i] = outcome.Val
	}
	return &Expression{
		ID:       id,
		Op:       op,
		Children: append([]*Expression(nil), children...),
		Values:   values,
		Height:   height,
	}, true
}

// Source renders the expression's canonical source text, computing and
// memoizing it on first call. Only programs a strategy actually returns
// ever pay this cost.
func (e *Expression) Source() string {
	if e.sourceSet {
		return e.source
	}
	childSrcs := make([]string, len(e.Children))
	for i, c := range e.Children {
		childSrcs[i] = c.Source()
	}
	e.source = e.Op.Render(childSrcs)
	e.sourceSet = true
	return e.source
}

// Equals reports whether two expressions produce the same value at
// every example — observational equivalence, checked directly rather
// than through the equivalence manager's signature shortcut.
func (e *Expression) Equals(other *Expression) bool {
	if len(e.Values) != len(other.Values) {
		return false
	}
	for i := range e.Values {
		if !e.Values[i].Equal(other.Values[i]) {
			return false
		}
	}
	return true
}
