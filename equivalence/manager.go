// Package equivalence implements the equivalence manager: it interns
// candidate Expressions by a hash of their value-vector signature and
// partitions accepted programs into per-height buckets, so the
// enumerator can tell "last height" from "every height so far" when
// assembling children for the next height.
//
// Signature hashing uses blake2b (golang.org/x/crypto/blake2b):
// salt-free and fixed, so reruns produce identical interning
// decisions.
package equivalence

import (
	"golang.org/x/crypto/blake2b"

	"github.com/approxsynth/synth/expr"
)

// Signature is the equivalence-class key: a fixed-size hash of the
// canonical byte encoding of an expression's value vector. Two
// expressions with the same Signature are observationally equivalent
// on the example set they were built against.
type Signature [blake2b.Size256]byte

// Of computes the signature of an expression's value vector by
// concatenating each example's self-delimiting canonical encoding
// (value.Value.AppendSignature already length-prefixes strings and
// lists, so simple concatenation is injective across examples too).
func Of(e *expr.Expression) Signature {
	var buf []byte
	for _, v := range e.Values {
		buf = v.AppendSignature(buf)
	}
	return blake2b.Sum256(buf)
}

// Manager is the equivalence manager: a signature->representative map
// plus a stack of per-height buckets of canonical expressions.
type Manager struct {
	seen    map[Signature]*expr.Expression
	buckets [][]*expr.Expression
}

// New returns a Manager with one empty bucket, ready to accept
// height-0 terminals.
func New() *Manager {
	return &Manager{
		seen:    make(map[Signature]*expr.Expression),
		buckets: [][]*expr.Expression{{}},
	}
}

// IsEquivalent reports whether e's value vector matches an
// already-interned representative.
func (m *Manager) IsEquivalent(e *expr.Expression) bool {
	_, ok := m.seen[Of(e)]
	return ok
}

// Intern records e as the canonical representative of its equivalence
// class, in the current (highest) height bucket. The caller must have
// already checked !IsEquivalent(e).
func (m *Manager) Intern(e *expr.Expression) {
	sig := Of(e)
	m.seen[sig] = e
	top := len(m.buckets) - 1
	m.buckets[top] = append(m.buckets[top], e)
}

// AdvanceHeight pushes a new empty bucket, making the current (just
// finished) bucket available via LastHeightPrograms.
func (m *Manager) AdvanceHeight() {
	m.buckets = append(m.buckets, []*expr.Expression{})
}

// LastHeightPrograms returns the bucket immediately below the current
// (topmost, still-being-filled) bucket — the programs of the height
// just finished. Empty if fewer than two buckets exist yet.
func (m *Manager) LastHeightPrograms() []*expr.Expression {
	n := len(m.buckets)
	if n < 2 {
		return nil
	}
	return m.buckets[n-2]
}

// PreviousHeightPrograms returns every canonical program strictly
// below the current (topmost) bucket, concatenated in height order.
func (m *Manager) PreviousHeightPrograms() []*expr.Expression {
	n := len(m.buckets)
	if n < 1 {
		return nil
	}
	var out []*expr.Expression
	for i := 0; i < n-1; i++ {
		out = append(out, m.buckets[i]...)
	}
	return out
}

// Count returns the total number of interned (canonical) expressions.
func (m *Manager) Count() int {
	return len(m.seen)
}
