// Package grammar implements the SearchSpace: a vector indexed by
// arity of the operator constructors the enumerator draws from — the
// catalog of what a given run may build.
package grammar

import (
	"github.com/approxsynth/synth/operator"
	"github.com/approxsynth/synth/value"
)

// SearchSpace is a per-arity list of operator constructors. Slot 0
// holds terminals (variables and literals); slot k (k>=1) holds
// operators of arity k.
type SearchSpace struct {
	slots [][]*operator.Operator
}

// New returns an empty SearchSpace.
func New() *SearchSpace {
	return &SearchSpace{slots: make([][]*operator.Operator, 1)}
}

// ensure grows the slot vector so index k is addressable; slots only
// ever grow, never shrink.
func (s *SearchSpace) ensure(k int) {
	for len(s.slots) <= k {
		s.slots = append(s.slots, nil)
	}
}

// AddVariables registers 0-arity variable lookups. Variables are
// prepended to slot 0 ahead of any already-registered literals, so
// they are tried first and win the equivalence race for terminals of
// equal height.
func (s *SearchSpace) AddVariables(names []string) {
	s.ensure(0)
	vars := make([]*operator.Operator, len(names))
	for i, name := range names {
		vars[i] = operator.NewVariable(name)
	}
	s.slots[0] = append(vars, s.slots[0]...)
}

// AddLiterals registers 0-arity constants, appended after whatever is
// already in slot 0. Since AddVariables always prepends, literals rank
// behind every variable, whether it was added before or after them.
func (s *SearchSpace) AddLiterals(values []value.Value) {
	s.ensure(0)
	for _, v := range values {
		s.slots[0] = append(s.slots[0], operator.NewLiteral(v))
	}
}

// AddFunction registers a fixed-arity operator constructor at slot
// arity, growing the slot vector if necessary. Registration order is
// preserved and never reordered; it decides which representative wins
// an equivalence race among same-height candidates.
func (s *SearchSpace) AddFunction(op *operator.Operator, arity int) {
	s.ensure(arity)
	s.slots[arity] = append(s.slots[arity], op)
}

// Slot returns the operator constructors registered at the given
// arity, or nil if none are registered (including arities beyond the
// current slot vector length).
func (s *SearchSpace) Slot(arity int) []*operator.Operator {
	if arity < 0 || arity >= len(s.slots) {
		return nil
	}
	return s.slots[arity]
}

// MaxArity returns the highest arity with at least one registered
// operator, or 0 if only terminals (or nothing) is registered.
func (s *SearchSpace) MaxArity() int {
	max := 0
	for k := len(s.slots) - 1; k >= 1; k-- {
		if len(s.slots[k]) > 0 {
			max = k
			break
		}
	}
	return max
}
