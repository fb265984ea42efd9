package equivalence

import (
	"testing"

	"github.com/approxsynth/synth/expr"
	"github.com/approxsynth/synth/operator"
	"github.com/approxsynth/synth/value"
)

func lit(id int, v value.Value) *expr.Expression {
	op := operator.NewLiteral(v)
	e, ok := expr.New(id, op, nil, []map[string]value.Value{{}})
	if !ok {
		panic("literal construction must not fail")
	}
	return e
}

func TestInternAndIsEquivalent(t *testing.T) {
	m := New()
	a := lit(0, value.NewInt(1))
	b := lit(1, value.NewInt(1))
	c := lit(2, value.NewInt(2))

	if m.IsEquivalent(a) {
		t.Fatal("fresh manager should have no equivalences yet")
	}
	m.Intern(a)
	if !m.IsEquivalent(b) {
		t.Fatal("b has the same value vector as a, should be equivalent")
	}
	if m.IsEquivalent(c) {
		t.Fatal("c has a different value, should not be equivalent")
	}
}

func TestHeightBucketing(t *testing.T) {
	m := New()
	a := lit(0, value.NewInt(1))
	m.Intern(a)
	m.AdvanceHeight()
	b := lit(1, value.NewInt(2))
	m.Intern(b)

	last := m.LastHeightPrograms()
	if len(last) != 1 || last[0] != a {
		t.Fatalf("expected last-height bucket to contain only a, got %v", last)
	}
	prev := m.PreviousHeightPrograms()
	if len(prev) != 1 || prev[0] != a {
		t.Fatalf("expected previous programs to contain only a, got %v", prev)
	}

	m.AdvanceHeight()
	last = m.LastHeightPrograms()
	if len(last) != 1 || last[0] != b {
		t.Fatalf("expected last-height bucket to now contain only b, got %v", last)
	}
	prev = m.PreviousHeightPrograms()
	if len(prev) != 2 {
		t.Fatalf("expected previous programs to contain a and b, got %v", prev)
	}
}
