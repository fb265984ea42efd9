package grammar

import (
	"testing"

	"github.com/approxsynth/synth/operator"
	"github.com/approxsynth/synth/value"
)

func TestVariablesPrependedAheadOfLiterals(t *testing.T) {
	s := New()
	s.AddLiterals([]value.Value{value.NewInt(0), value.NewInt(1)})
	s.AddVariables([]string{"x", "y"})

	slot0 := s.Slot(0)
	if len(slot0) != 4 {
		t.Fatalf("expected 4 terminals, got %d", len(slot0))
	}
	if slot0[0].Name != "x" || slot0[1].Name != "y" {
		t.Fatalf("expected variables first, got %v", []string{slot0[0].Name, slot0[1].Name})
	}
}

func TestAddFunctionGrowsSlotsMonotonically(t *testing.T) {
	s := New()
	plus := operator.NewFunction("+", 2, operator.Add, func(c []string) string { return c[0] + "+" + c[1] })
	s.AddFunction(plus, 2)
	if s.MaxArity() != 2 {
		t.Fatalf("expected max arity 2, got %d", s.MaxArity())
	}
	if len(s.Slot(1)) != 0 {
		t.Fatalf("expected empty arity-1 slot, got %v", s.Slot(1))
	}
	if got := s.Slot(2); len(got) != 1 || got[0] != plus {
		t.Fatalf("expected registered operator at slot 2, got %v", got)
	}
}

func TestRegistrationOrderPreserved(t *testing.T) {
	s := New()
	a := operator.NewFunction("a", 1, operator.Negate, func(c []string) string { return c[0] })
	b := operator.NewFunction("b", 1, operator.Negate, func(c []string) string { return c[0] })
	s.AddFunction(a, 1)
	s.AddFunction(b, 1)
	slot := s.Slot(1)
	if slot[0] != a || slot[1] != b {
		t.Fatal("expected registration order preserved")
	}
}
