package metric

import (
	"testing"

	"github.com/approxsynth/synth/value"
)

func TestLevenshteinKnownDistances(t *testing.T) {
	tests := []struct {
		a, e string
		want float64
	}{
		{"kelm", "hello", 3.0 / 5.0},
		{"hello", "hello", 0},
		{"hello", "hellow", 1.0 / 6.0},
		{"hello", "helo", 1.0 / 5.0},
		{"hello", "abcde", 1},
		{"", "hello", 1},
		{"hello", "", 1},
		{"", "", 0},
	}
	for _, tt := range tests {
		if got := (Levenshtein{}).Distance(value.NewStr(tt.a), value.NewStr(tt.e)); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %v, want %v", tt.a, tt.e, got, tt.want)
		}
	}
}

func TestLevenshteinSolversAgree(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"abc", "cba"},
		{"a", "abcdef"},
		{"same", "same"},
	}
	dp := Levenshtein{}
	rec := Levenshtein{Recursive: true}
	for _, p := range pairs {
		a, e := value.NewStr(p[0]), value.NewStr(p[1])
		if dp.Distance(a, e) != rec.Distance(a, e) {
			t.Errorf("solvers disagree on (%q, %q): dp=%v rec=%v",
				p[0], p[1], dp.Distance(a, e), rec.Distance(a, e))
		}
	}
}

func TestLevenshteinNumericViaString(t *testing.T) {
	// 123 vs 124 differ in one of three digits.
	got := Levenshtein{}.Distance(value.NewInt(123), value.NewInt(124))
	if got != 1.0/3.0 {
		t.Errorf("Levenshtein(123, 124) = %v, want 1/3", got)
	}
}
