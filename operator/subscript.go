package operator

import "github.com/approxsynth/synth/value"

// MakeList builds the arity-k list constructor `[e1, ..., ek]`.
func MakeList(children []value.Value, assignment map[string]value.Value) value.Outcome {
	out := make([]value.Value, len(children))
	copy(out, children)
	return value.Ok(value.NewList(out))
}

func normalizeIndex(i, length int) int {
	if i < 0 {
		return i + length
	}
	return i
}

// Subscript implements `a[i]` with Python's negative-index convention
// for both List and Str containers.
func Subscript(children []value.Value, assignment map[string]value.Value) value.Outcome {
	idx, ok := children[1].(value.Int)
	if !ok {
		return value.Fail(value.ErrType)
	}
	switch c := children[0].(type) {
	case value.List:
		i := normalizeIndex(int(idx), len(c))
		if i < 0 || i >= len(c) {
			return value.Fail(value.ErrRange)
		}
		return value.Ok(c[i])
	case value.Str:
		runes := []rune(string(c))
		i := normalizeIndex(int(idx), len(runes))
		if i < 0 || i >= len(runes) {
			return value.Fail(value.ErrRange)
		}
		return value.Ok(value.NewStr(string(runes[i])))
	default:
		return value.Fail(value.ErrType)
	}
}

// sliceBounds replicates Python's slice(lo, hi, step) normalization for
// a container of the given length. A missing ("None") bound is
// represented by the sentinels NoneLowerBound/NoneUpperBound, the
// convention the synthio/grammar layer uses when a grammar template
// omits a bound (e.g. `x[::-1]` or `x[0::2]`). step may be negative.
func sliceBounds(lo, hi, step, length int) (start, stop, stride int) {
	if step == 0 {
		step = 1
	}
	stride = step
	if stride > 0 {
		if lo == int(NoneLowerBound) {
			start = 0
		} else {
			start = clamp(normalizeIndex(lo, length), 0, length)
		}
		if hi == int(NoneUpperBound) {
			stop = length
		} else {
			stop = clamp(normalizeIndex(hi, length), 0, length)
		}
	} else {
		if lo == int(NoneLowerBound) {
			start = length - 1
		} else {
			start = clamp(normalizeIndex(lo, length), -1, length-1)
		}
		if hi == int(NoneUpperBound) {
			stop = -1
		} else {
			stop = clamp(normalizeIndex(hi, length), -1, length-1)
		}
	}
	return start, stop, stride
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Slice implements `a[lo:hi:step]` on List and Str. lo/hi/step must be
// Int; a Python "None" bound is modeled upstream (synthio) as the
// NoneLowerBound/NoneUpperBound literals (-1<<30 and 1<<30), which
// sliceBounds recognizes and maps to the natural open bound.
func Slice(children []value.Value, assignment map[string]value.Value) value.Outcome {
	lo, ok := children[1].(value.Int)
	if !ok {
		return value.Fail(value.ErrType)
	}
	hi, ok := children[2].(value.Int)
	if !ok {
		return value.Fail(value.ErrType)
	}
	step, ok := children[3].(value.Int)
	if !ok {
		return value.Fail(value.ErrType)
	}
	switch c := children[0].(type) {
	case value.List:
		start, stop, stride := sliceBounds(int(lo), int(hi), int(step), len(c))
		var out []value.Value
		if stride > 0 {
			for i := start; i < stop; i += stride {
				out = append(out, c[i])
			}
		} else {
			for i := start; i > stop; i += stride {
				out = append(out, c[i])
			}
		}
		return value.Ok(value.NewList(out))
	case value.Str:
		runes := []rune(string(c))
		start, stop, stride := sliceBounds(int(lo), int(hi), int(step), len(runes))
		var out []rune
		if stride > 0 {
			for i := start; i < stop; i += stride {
				out = append(out, runes[i])
			}
		} else {
			for i := start; i > stop; i += stride {
				out = append(out, runes[i])
			}
		}
		return value.Ok(value.NewStr(string(out)))
	default:
		return value.Fail(value.ErrType)
	}
}

// NoneLowerBound and NoneUpperBound are the literal values substituted
// for a missing (`None`) slice bound by the grammar reader; sliceBounds
// recognizes them directly rather than relying on clamping alone.
const NoneLowerBound = int64(-1 << 30)
const NoneUpperBound = int64(1 << 30)
