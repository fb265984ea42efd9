package metric

import (
	"testing"

	"github.com/approxsynth/synth/value"
)

func allMetrics() []Metric {
	combined, _ := NewCombined("Calculation", "Normal", "Levenshtein", "Permutation")
	return []Metric{
		Default{},
		Normal{Sigma: 1},
		Calculation{},
		Vector{Func: "hamming"},
		Vector{Func: "braycurtis"},
		Vector{Func: "cosine"},
		Hamming{},
		Levenshtein{},
		Permutation{},
		Keyboard{},
		Homophone{},
		combined,
	}
}

func sampleValues() []value.Value {
	return []value.Value{
		value.NewInt(0),
		value.NewInt(42),
		value.NewInt(-7),
		value.NewFloat(3.25),
		value.NewStr(""),
		value.NewStr("hello"),
		value.NewBool(true),
		value.NewList(nil),
		value.NewList([]value.Value{value.NewInt(1), value.NewStr("a")}),
	}
}

func TestMetricRange(t *testing.T) {
	vals := sampleValues()
	for _, m := range allMetrics() {
		for _, a := range vals {
			for _, e := range vals {
				d := m.Distance(a, e)
				if d < 0 || d > 1 {
					t.Errorf("%s.Distance(%s, %s) = %v, out of [0,1]", m.Name(), a, e, d)
				}
			}
		}
	}
}

func TestMetricReflexivity(t *testing.T) {
	for _, m := range allMetrics() {
		for _, v := range sampleValues() {
			if d := m.Distance(v, v); d != 0 {
				t.Errorf("%s.Distance(%s, %s) = %v, want 0", m.Name(), v, v, d)
			}
		}
	}
}

func TestVariantMismatchIsOne(t *testing.T) {
	for _, m := range allMetrics() {
		if d := m.Distance(value.NewInt(1), value.NewStr("1")); d != 1 {
			t.Errorf("%s on int vs str = %v, want 1", m.Name(), d)
		}
	}
}

func TestDefaultListDistanceLengthRule(t *testing.T) {
	short := value.NewList([]value.Value{value.NewInt(1)})
	long := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
	d := Default{}
	if got := d.Distance(short, long); got != 1 {
		t.Errorf("unequal list lengths = %v, want 1", got)
	}
}

func TestDefaultFloatEps(t *testing.T) {
	d := Default{}
	if got := d.Distance(value.NewFloat(1.0), value.NewFloat(1.0005)); got != 0 {
		t.Errorf("floats within EPS = %v, want 0", got)
	}
	if got := d.Distance(value.NewFloat(1.0), value.NewFloat(1.01)); got != 1 {
		t.Errorf("floats beyond EPS = %v, want 1", got)
	}
}

func TestNormalDecaysWithDistance(t *testing.T) {
	n := Normal{Sigma: 1}
	near := n.Distance(value.NewInt(5), value.NewInt(6))
	far := n.Distance(value.NewInt(5), value.NewInt(9))
	if near >= far {
		t.Errorf("Normal near=%v far=%v, want near < far", near, far)
	}
	if near <= 0 || far >= 1.0001 {
		t.Errorf("Normal distances out of expected band: near=%v far=%v", near, far)
	}
}

func TestPermutationMultiset(t *testing.T) {
	p := Permutation{}
	ab := value.NewList([]value.Value{value.NewStr("a"), value.NewStr("b")})
	ba := value.NewList([]value.Value{value.NewStr("b"), value.NewStr("a")})
	aa := value.NewList([]value.Value{value.NewStr("a"), value.NewStr("a")})
	if got := p.Distance(ab, ba); got != 0 {
		t.Errorf("reordered list = %v, want 0", got)
	}
	if got := p.Distance(ab, aa); got != 1 {
		t.Errorf("different multiset = %v, want 1", got)
	}
}

func TestHammingStrings(t *testing.T) {
	h := Hamming{}
	tests := []struct {
		a, e string
		want float64
	}{
		{"abc", "abc", 0},
		{"abc", "abd", 1.0 / 3.0},
		{"abc", "xyz", 1},
		{"ab", "abcd", 0.5},
		{"", "", 0},
	}
	for _, tt := range tests {
		if got := h.Distance(value.NewStr(tt.a), value.NewStr(tt.e)); got != tt.want {
			t.Errorf("Hamming(%q, %q) = %v, want %v", tt.a, tt.e, got, tt.want)
		}
	}
}

func TestCombinedRoutesPerVariant(t *testing.T) {
	c, err := NewCombined("Calculation", "Normal", "Levenshtein", "Permutation")
	if err != nil {
		t.Fatal(err)
	}
	ab := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
	ba := value.NewList([]value.Value{value.NewInt(2), value.NewInt(1)})
	if got := c.Distance(ab, ba); got != 0 {
		t.Errorf("Combined list via Permutation = %v, want 0", got)
	}
	want := Levenshtein{}.Distance(value.NewStr("kelm"), value.NewStr("hello"))
	if got := c.Distance(value.NewStr("kelm"), value.NewStr("hello")); got != want {
		t.Errorf("Combined str = %v, want Levenshtein's %v", got, want)
	}
	if _, err := NewCombined("NoSuch", "", "", ""); err == nil {
		t.Error("expected error for unknown sub-metric name")
	}
}
