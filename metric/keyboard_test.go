package metric

import (
	"testing"

	"github.com/approxsynth/synth/value"
)

func TestKeyboardAdjacentCheaperThanDistant(t *testing.T) {
	k := Keyboard{}
	adjacent := k.Distance(value.NewStr("cat"), value.NewStr("cay")) // t and y share an edge
	distant := k.Distance(value.NewStr("cat"), value.NewStr("cap"))  // t and p are far apart on the top row
	if adjacent <= 0 {
		t.Fatalf("adjacent-key substitution should cost something, got %v", adjacent)
	}
	if adjacent >= distant {
		t.Errorf("adjacent=%v distant=%v, want adjacent < distant", adjacent, distant)
	}
}

func TestKeyboardLengthMismatch(t *testing.T) {
	if got := (Keyboard{}).Distance(value.NewStr("ab"), value.NewStr("abc")); got != 1 {
		t.Errorf("length mismatch = %v, want 1", got)
	}
}

func TestKeyboardCaseInsensitive(t *testing.T) {
	k := Keyboard{}
	if got := k.Distance(value.NewStr("HELLO"), value.NewStr("hello")); got != 0 {
		t.Errorf("case-only difference = %v, want 0", got)
	}
}

func TestKeyboardUnknownCharacter(t *testing.T) {
	if got := (Keyboard{}).Distance(value.NewStr("a b"), value.NewStr("axb")); got != 1 {
		t.Errorf("unmapped character substitution = %v, want 1", got)
	}
}

func TestHomophoneSubstitutions(t *testing.T) {
	h := Homophone{}
	tests := []struct {
		a, e string
		want float64
	}{
		{"kat", "cat", homophonePenalty},
		{"dawg", "dawg", 0},
		{"pat", "bad", 2 * homophonePenalty},
		{"cat", "car", 1},
		{"cat", "cats", 1},
	}
	for _, tt := range tests {
		if got := h.Distance(value.NewStr(tt.a), value.NewStr(tt.e)); got != tt.want {
			t.Errorf("Homophone(%q, %q) = %v, want %v", tt.a, tt.e, got, tt.want)
		}
	}
}
