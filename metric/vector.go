package metric

import (
	"math"

	"github.com/approxsynth/synth/value"
)

// vectorFunc is one of the named similarity functions Vector accepts.
// normalize marks a function as computing a per-element average, so
// the outer list-distance formula still divides by max_len to rescale
// for a length mismatch; the other functions already return an
// aggregate ratio over the whole compared prefix and skip that final
// division.
type vectorFunc struct {
	normalize bool
	dist      func(a, b []float64) float64
}

var vectorFuncs = map[string]vectorFunc{
	"braycurtis":     {normalize: false, dist: braycurtis},
	"canberra":       {normalize: true, dist: canberraAvg},
	"correlation":    {normalize: false, dist: correlationDist},
	"cosine":         {normalize: false, dist: cosineDist},
	"jensenshannon":  {normalize: false, dist: jensenShannon},
	"hamming":        {normalize: true, dist: hammingAvg},
	"jaccard":        {normalize: false, dist: jaccardDist},
	"russellrao":     {normalize: false, dist: russellRao},
	"yule":           {normalize: false, dist: yule},
}

// Vector scores lists (and, via digit expansion, ints/floats) with one
// of the named vector-similarity functions. Func must be one of the
// keys of vectorFuncs; an unrecognized name behaves as Default.
type Vector struct {
	Func string
}

func (v Vector) Name() string { return "Vector(" + v.Func + ")" }

func (v Vector) Distance(actual, expected value.Value) float64 {
	fn, ok := vectorFuncs[v.Func]
	if !ok {
		return Default{}.Distance(actual, expected)
	}
	return Dispatch(Pointwise{
		Int:   func(a, e value.Value) float64 { return v.numeric(fn, a, e) },
		Float: func(a, e value.Value) float64 { return v.numeric(fn, a, e) },
		Str:   eqDistance,
		List:  func(a, e value.Value) float64 { return v.listDistance(fn, a, e) },
	}, actual, expected)
}

// numeric converts ints/floats to digit lists the way Calculation
// does and delegates to the list distance.
func (v Vector) numeric(fn vectorFunc, actual, expected value.Value) float64 {
	var aDigits, eDigits string
	switch a := actual.(type) {
	case value.Int:
		e, ok := expected.(value.Int)
		if !ok {
			return 1
		}
		if (a < 0) != (e < 0) {
			return 1
		}
		aDigits, eDigits = padDigits(digitString(absInt64(int64(a))), digitString(absInt64(int64(e))))
	case value.Float:
		e, ok := expected.(value.Float)
		if !ok {
			return 1
		}
		af, ef := float64(a), float64(e)
		if (af < 0) != (ef < 0) {
			return 1
		}
		aw, afrac := splitFloat(math.Abs(af))
		ew, efrac := splitFloat(math.Abs(ef))
		fw, few := padDigits(aw, ew)
		ff, fef := padDigits(afrac, efrac)
		aDigits, eDigits = fw+ff, few+fef
	default:
		return 1
	}
	af := digitFloats(aDigits)
	ef := digitFloats(eDigits)
	return v.apply(fn, af, ef)
}

func padDigits(a, e string) (string, string) {
	for len(a) < len(e) {
		a = "0" + a
	}
	for len(e) < len(a) {
		e = "0" + e
	}
	return a, e
}

func digitFloats(s string) []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = float64(c - '0')
	}
	return out
}

func (v Vector) listDistance(fn vectorFunc, actual, expected value.Value) float64 {
	a, ok1 := actual.(value.List)
	e, ok2 := expected.(value.List)
	if !ok1 || !ok2 {
		return 1
	}
	return v.apply(fn, toFloats(a), toFloats(e))
}

func (v Vector) apply(fn vectorFunc, a, e []float64) float64 {
	minLen, maxLen := len(a), len(e)
	if maxLen < minLen {
		minLen, maxLen = maxLen, minLen
	}
	if maxLen == 0 {
		return 0
	}
	shared := fn.dist(a[:minLen], e[:minLen])
	total := float64(minLen)*shared + float64(maxLen-minLen)
	if fn.normalize {
		total /= float64(maxLen)
	}
	return clamp01(total)
}

func toFloats(l value.List) []float64 {
	out := make([]float64, len(l))
	for i, v := range l {
		f, _, ok := value.MustNumeric(v)
		if !ok {
			f = 0
		}
		out[i] = f
	}
	return out
}

func braycurtis(a, b []float64) float64 {
	var num, den float64
	for i := range a {
		num += math.Abs(a[i] - b[i])
		den += math.Abs(a[i]) + math.Abs(b[i])
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func canberraAvg(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	sum := 0.0
	for i := range a {
		den := math.Abs(a[i]) + math.Abs(b[i])
		if den == 0 {
			continue
		}
		sum += math.Abs(a[i]-b[i]) / den
	}
	return sum / float64(len(a))
}

func correlationDist(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= float64(n)
	meanB /= float64(n)
	var num, da, db float64
	for i := range a {
		xa := a[i] - meanA
		xb := b[i] - meanB
		num += xa * xb
		da += xa * xa
		db += xb * xb
	}
	if da == 0 || db == 0 {
		return 0
	}
	corr := num / math.Sqrt(da*db)
	return (1 - corr) / 2
}

func cosineDist(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	den := math.Sqrt(na * nb)
	if den == 0 || math.IsInf(den, 0) {
		den = math.Sqrt(na) * math.Sqrt(nb)
	}
	return 1 - dot/den
}

func jensenShannon(a, b []float64) float64 {
	pa := toDistribution(a)
	pb := toDistribution(b)
	if pa == nil || pb == nil {
		return 0
	}
	m := make([]float64, len(pa))
	for i := range pa {
		m[i] = (pa[i] + pb[i]) / 2
	}
	js := (kl(pa, m) + kl(pb, m)) / 2
	return math.Sqrt(js)
}

func toDistribution(a []float64) []float64 {
	sum := 0.0
	for _, v := range a {
		sum += math.Abs(v)
	}
	if sum == 0 {
		return nil
	}
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Abs(v) / sum
	}
	return out
}

func kl(p, q []float64) float64 {
	sum := 0.0
	for i := range p {
		if p[i] == 0 {
			continue
		}
		if q[i] == 0 {
			continue
		}
		sum += p[i] * math.Log2(p[i]/q[i])
	}
	return sum
}

func jaccardDist(a, b []float64) float64 {
	seenA := map[float64]bool{}
	seenB := map[float64]bool{}
	for _, v := range a {
		seenA[v] = true
	}
	for _, v := range b {
		seenB[v] = true
	}
	union := map[float64]bool{}
	inter := 0
	for v := range seenA {
		union[v] = true
	}
	for v := range seenB {
		union[v] = true
		if seenA[v] {
			inter++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(len(union))
}

// binaryCounts treats each element as boolean (nonzero = true) and
// counts the four co-occurrence combinations shared by russellrao and
// yule, the standard scipy binary-vector dissimilarity building block.
func binaryCounts(a, b []float64) (ctt, ctf, cft, cff int) {
	for i := range a {
		av := a[i] != 0
		bv := b[i] != 0
		switch {
		case av && bv:
			ctt++
		case av && !bv:
			ctf++
		case !av && bv:
			cft++
		default:
			cff++
		}
	}
	return
}

func hammingAvg(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	mismatches := 0
	for i := range a {
		if a[i] != b[i] {
			mismatches++
		}
	}
	return float64(mismatches) / float64(len(a))
}

func russellRao(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}
	ctt, _, _, _ := binaryCounts(a, b)
	return float64(n-ctt) / float64(n)
}

func yule(a, b []float64) float64 {
	ctt, ctf, cft, cff := binaryCounts(a, b)
	den := float64(ctt*cff + ctf*cft)
	if den == 0 {
		return 0
	}
	return float64(2*ctf*cft) / den
}
