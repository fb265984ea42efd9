package strategy

import (
	"context"
	"testing"

	"github.com/approxsynth/synth/enumerator"
	"github.com/approxsynth/synth/grammar"
	"github.com/approxsynth/synth/metric"
	"github.com/approxsynth/synth/operator"
	"github.com/approxsynth/synth/value"
)

func sumGrammar(t *testing.T, ops ...string) *grammar.SearchSpace {
	t.Helper()
	g := grammar.New()
	g.AddVariables([]string{"x", "y", "z"})
	for _, name := range ops {
		op, ok := operator.Lookup(operator.Builtins(), name, 2)
		if !ok {
			t.Fatalf("operator %q/2 not in catalog", name)
		}
		g.AddFunction(op, 2)
	}
	return g
}

func ints(vs ...int64) []value.Value {
	out := make([]value.Value, len(vs))
	for i, v := range vs {
		out[i] = value.NewInt(v)
	}
	return out
}

func env(x, y, z int64) map[string]value.Value {
	return map[string]value.Value{
		"x": value.NewInt(x), "y": value.NewInt(y), "z": value.NewInt(z),
	}
}

func TestFindProgramSum(t *testing.T) {
	g := sumGrammar(t, "+")
	assignments := []map[string]value.Value{env(1, 2, 3), env(2, 4, 5), env(11, 22, 3)}
	expected := ints(6, 11, 36)
	en := enumerator.New(g, assignments, 3)
	p := FindProgram(context.Background(), en, expected)
	if p == nil {
		t.Fatal("expected a program")
	}
	if src := p.Source(); src != "x + y + z" {
		t.Errorf("got %q, want %q", src, "x + y + z")
	}
	for i, v := range p.Values {
		if !v.Equal(expected[i]) {
			t.Errorf("value[%d] = %s, want %s", i, v, expected[i])
		}
	}
}

func TestByHeightEqualsFindProgramOnExactData(t *testing.T) {
	g := sumGrammar(t, "+")
	assignments := []map[string]value.Value{env(1, 2, 3), env(2, 4, 5), env(11, 22, 3)}
	expected := ints(6, 11, 36)
	p := ByHeight(context.Background(), enumerator.New(g, assignments, 3), expected, metric.Default{})
	if p == nil || p.Source() != "x + y + z" {
		t.Fatalf("got %v, want x + y + z", p)
	}
}

func TestInterruptNoisySumOfProducts(t *testing.T) {
	g := sumGrammar(t, "+", "*")
	assignments := []map[string]value.Value{
		env(1, 2, 3), env(2, 4, 5), env(11, 22, 3), env(0, -1, 0), env(11, 22, 4),
	}
	// x*y + z everywhere, with the last output decremented by one.
	expected := ints(5, 13, 245, 0, 245)
	en := enumerator.New(g, assignments, 3)
	p := Interrupt(context.Background(), en, expected, metric.Normal{Sigma: 1})
	if p == nil {
		t.Fatal("expected a program")
	}
	if src := p.Source(); src != "x * y + z" {
		t.Errorf("got %q, want %q", src, "x * y + z")
	}
	d := Distance(metric.Normal{Sigma: 1}, p, expected)
	if d <= 0 || d >= 1 {
		t.Errorf("winner's distance = %v, want in (0,1): exact on four rows, near-miss on the fifth", d)
	}
}

func TestInterruptStringReverseConcat(t *testing.T) {
	// Grammar with the full 4-ary slice plus open-bound literals: the
	// arity-2 concatenation pass assembles y[::-1] + x[::-1] from two
	// height-1 reversals before the arity-4 pass can build the
	// equivalent (x + y)[::-1].
	g := grammar.New()
	g.AddVariables([]string{"x", "y"})
	g.AddFunction(operator.NewLiteralRendered(value.NewInt(operator.NoneLowerBound), ""), 0)
	g.AddFunction(operator.NewLiteralRendered(value.NewInt(operator.NoneUpperBound), ""), 0)
	g.AddFunction(operator.NewLiteral(value.NewInt(-1)), 0)
	plus, _ := operator.Lookup(operator.Builtins(), "+", 2)
	g.AddFunction(plus, 2)
	slice, _ := operator.Lookup(operator.Builtins(), "slice", 4)
	g.AddFunction(slice, 4)

	strs := func(vs ...string) []value.Value {
		out := make([]value.Value, len(vs))
		for i, v := range vs {
			out[i] = value.NewStr(v)
		}
		return out
	}
	assignments := []map[string]value.Value{
		{"x": value.NewStr("ab"), "y": value.NewStr("cd")},
		{"x": value.NewStr("x"), "y": value.NewStr("yz")},
		{"x": value.NewStr("hello"), "y": value.NewStr("ok")},
	}
	expected := strs("dcba", "zyx", "koolleh")
	en := enumerator.New(g, assignments, 2)
	p := Interrupt(context.Background(), en, expected, metric.Levenshtein{})
	if p == nil {
		t.Fatal("expected a program")
	}
	if src := p.Source(); src != "y[::-1] + x[::-1]" {
		t.Errorf("got %q, want %q", src, "y[::-1] + x[::-1]")
	}
}

func TestMatchThreshold(t *testing.T) {
	g := sumGrammar(t, "+")
	assignments := []map[string]value.Value{env(1, 2, 3), env(2, 4, 5)}
	expected := ints(6, 11)
	p := Match(context.Background(), enumerator.New(g, assignments, 3), expected, metric.Default{}, 0)
	if p == nil || p.Source() != "x + y + z" {
		t.Fatalf("match with error_sum 0 should find the exact program, got %v", p)
	}
	if p := Match(context.Background(), enumerator.New(g, assignments, 0), expected, metric.Default{}, 0); p != nil {
		t.Errorf("no terminal matches, want nil, got %q", p.Source())
	}
}

func TestAccuracyThreshold(t *testing.T) {
	g := sumGrammar(t, "+")
	assignments := []map[string]value.Value{env(1, 2, 3), env(2, 4, 5)}
	// x matches the first row's doctored output only.
	expected := []value.Value{value.NewInt(1), value.NewInt(11)}
	p := Accuracy(context.Background(), enumerator.New(g, assignments, 1), expected, metric.Default{}, 0.5)
	if p == nil {
		t.Fatal("error rate 0.5 over two examples tolerates one miss")
	}
	if src := p.Source(); src != "x" {
		t.Errorf("got %q, want %q (first program within tolerance)", src, "x")
	}
}

func TestTopKOrderingAndStability(t *testing.T) {
	g := grammar.New()
	g.AddVariables([]string{"x"})
	g.AddLiterals([]value.Value{value.NewInt(0), value.NewInt(1)})
	assignments := []map[string]value.Value{{"x": value.NewInt(5)}}
	expected := ints(5)
	top := Top(context.Background(), enumerator.New(g, assignments, 1), expected, metric.Default{}, 3)
	if len(top) != 3 {
		t.Fatalf("got %d results, want 3", len(top))
	}
	if top[0].Program.Source() != "x" || top[0].Score != 0 {
		t.Errorf("first = %q score %v, want x at 0", top[0].Program.Source(), top[0].Score)
	}
	// 0 and 1 tie at distance 1; discovery order breaks the tie.
	if top[1].Program.Source() != "0" || top[2].Program.Source() != "1" {
		t.Errorf("tied tail = %q, %q, want 0 then 1", top[1].Program.Source(), top[2].Program.Source())
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score < top[i-1].Score {
			t.Errorf("scores not ascending at %d: %v after %v", i, top[i].Score, top[i-1].Score)
		}
	}
}

func TestBestByHeightBuckets(t *testing.T) {
	g := sumGrammar(t, "+")
	assignments := []map[string]value.Value{env(1, 2, 3), env(2, 4, 5)}
	expected := ints(6, 11)
	winners := BestByHeight(context.Background(), enumerator.New(g, assignments, 2), expected, metric.Default{})
	if len(winners) != 3 {
		t.Fatalf("got %d buckets, want 3", len(winners))
	}
	for h, w := range winners {
		if w == nil {
			continue
		}
		if w.Height != h {
			t.Errorf("bucket %d holds a height-%d program", h, w.Height)
		}
	}
	if winners[2] == nil || winners[2].Source() != "x + y + z" {
		t.Errorf("height-2 bucket should hold the exact program, got %v", winners[2])
	}
}

func TestPenalizedHeightOneEqualsByHeight(t *testing.T) {
	g := sumGrammar(t, "+")
	assignments := []map[string]value.Value{env(1, 2, 3), env(2, 4, 5)}
	expected := ints(6, 11)
	a := PenalizedHeight(context.Background(), enumerator.New(g, assignments, 2), expected, metric.Default{}, 1)
	b := ByHeight(context.Background(), enumerator.New(g, assignments, 2), expected, metric.Default{})
	if (a == nil) != (b == nil) {
		t.Fatalf("penalty 1 mismatch: %v vs %v", a, b)
	}
	if a != nil && a.Source() != b.Source() {
		t.Errorf("penalty 1 picked %q, ByHeight picked %q", a.Source(), b.Source())
	}
}

func TestPenalizedHeightExactBeatsShorterNearMiss(t *testing.T) {
	g := sumGrammar(t, "+")
	// x alone matches one of two rows; x+y+z matches both but is taller.
	assignments := []map[string]value.Value{env(6, 0, 0), env(2, 4, 5)}
	expected := ints(6, 11)
	p := PenalizedHeight(context.Background(), enumerator.New(g, assignments, 2), expected, metric.Default{}, 0.1)
	if p == nil {
		t.Fatal("expected a program")
	}
	// Even with a harsh penalty the height-0 near-miss does not win:
	// x scores 1 * 0.1^0 = 1, while the exact height-2 program scores
	// 0 * 0.1^2 = 0.
	if p.Source() != "x + y + z" {
		t.Errorf("exact program scores 0 at any penalty, got %q", p.Source())
	}
}

func TestInterruptReturnsBestSoFarOnCancel(t *testing.T) {
	g := sumGrammar(t, "+", "*")
	assignments := []map[string]value.Value{env(1, 2, 3), env(2, 4, 5)}
	expected := ints(999, 999)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Pre-cancelled: the stream may yield nothing at all; the strategy
	// must still return cleanly with nil rather than hang or error.
	p := Interrupt(ctx, enumerator.New(g, assignments, 3), expected, metric.Default{})
	_ = p
}

func TestEmptyStreamReturnsNoProgram(t *testing.T) {
	g := grammar.New()
	assignments := []map[string]value.Value{{"x": value.NewInt(1)}}
	expected := ints(1)
	if p := ByHeight(context.Background(), enumerator.New(g, assignments, 2), expected, metric.Default{}); p != nil {
		t.Errorf("empty grammar should yield no program, got %q", p.Source())
	}
	if top := Top(context.Background(), enumerator.New(g, assignments, 2), expected, metric.Default{}, 5); len(top) != 0 {
		t.Errorf("empty grammar should yield no top-k results, got %d", len(top))
	}
}
