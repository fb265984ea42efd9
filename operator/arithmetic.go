package operator

import (
	"math"
	"strings"

	"github.com/approxsynth/synth/value"
)

// numericPair promotes two values to a common numeric representation:
// if either operand is a Float, both widen to float64.
func numericPair(left, right value.Value) (lf, rf float64, isFloat, ok bool) {
	lf, lIsFloat, lOk := value.MustNumeric(left)
	rf, rIsFloat, rOk := value.MustNumeric(right)
	if !lOk || !rOk {
		return 0, 0, false, false
	}
	return lf, rf, lIsFloat || rIsFloat, true
}

func checkFloat(f float64) value.Outcome {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return value.Fail(value.ErrOverflow)
	}
	return value.Ok(value.NewFloat(f))
}

// addInt64/subInt64/mulInt64 report overflow the way a fixed-width
// integer domain must, since Go's int64 (unlike Python's bigint) wraps
// silently on overflow. Overflow is a recoverable error, not a panic,
// so it is surfaced through the Outcome's error code.
func addInt64(a, b int64) (int64, bool) {
	r := a + b
	if (r > a) == (b > 0) {
		return r, true
	}
	return 0, false
}

func subInt64(a, b int64) (int64, bool) {
	r := a - b
	if (r < a) == (b > 0) {
		return r, true
	}
	return 0, false
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func unaryNumeric(children []value.Value, fn func(f float64, isFloat bool) (value.Value, value.ErrorCode)) value.Outcome {
	f, isFloat, ok := value.MustNumeric(children[0])
	if !ok {
		return value.Fail(value.ErrType)
	}
	v, errc := fn(f, isFloat)
	if errc != value.ErrNone {
		return value.Fail(errc)
	}
	return value.Ok(v)
}

// Negate implements unary minus: -x.
func Negate(children []value.Value, assignment map[string]value.Value) value.Outcome {
	return unaryNumeric(children, func(f float64, isFloat bool) (value.Value, value.ErrorCode) {
		if isFloat {
			return value.NewFloat(-f), value.ErrNone
		}
		return value.NewInt(-int64(f)), value.ErrNone
	})
}

// Plus implements unary plus: +x (identity on numerics).
func Plus(children []value.Value, assignment map[string]value.Value) value.Outcome {
	return unaryNumeric(children, func(f float64, isFloat bool) (value.Value, value.ErrorCode) {
		if isFloat {
			return value.NewFloat(f), value.ErrNone
		}
		return value.NewInt(int64(f)), value.ErrNone
	})
}

// LogicalNot implements Python-style `not x`: truthy values become
// False and vice versa, always returned as a Bool rather than 0/1.
func LogicalNot(children []value.Value, assignment map[string]value.Value) value.Outcome {
	return value.Ok(value.NewBool(!truthy(children[0])))
}

// BitwiseNot implements ~x, integers only.
func BitwiseNot(children []value.Value, assignment map[string]value.Value) value.Outcome {
	i, ok := children[0].(value.Int)
	if !ok {
		return value.Fail(value.ErrType)
	}
	return value.Ok(value.NewInt(^int64(i)))
}

func truthy(v value.Value) bool {
	switch x := v.(type) {
	case value.Int:
		return x != 0
	case value.Float:
		return x != 0
	case value.Str:
		return len(x) > 0
	case value.Bool:
		return bool(x)
	case value.List:
		return len(x) > 0
	default:
		return false
	}
}

// Add implements `+`: numeric addition (with int/float promotion and
// overflow detection), string concatenation, and list concatenation,
// all on one operator identifier.
func Add(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, right := children[0], children[1]
	if ls, ok := left.(value.Str); ok {
		rs, ok := right.(value.Str)
		if !ok {
			return value.Fail(value.ErrType)
		}
		return value.Ok(value.NewStr(string(ls) + string(rs)))
	}
	if ll, ok := left.(value.List); ok {
		rl, ok := right.(value.List)
		if !ok {
			return value.Fail(value.ErrType)
		}
		out := make([]value.Value, 0, len(ll)+len(rl))
		out = append(out, ll...)
		out = append(out, rl...)
		return value.Ok(value.NewList(out))
	}
	lf, rf, isFloat, ok := numericPair(left, right)
	if !ok {
		return value.Fail(value.ErrType)
	}
	if isFloat {
		return checkFloat(lf + rf)
	}
	r, ok := addInt64(int64(left.(value.Int)), int64(right.(value.Int)))
	if !ok {
		return value.Fail(value.ErrOverflow)
	}
	return value.Ok(value.NewInt(r))
}

// Sub implements binary `-`.
func Sub(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, right := children[0], children[1]
	lf, rf, isFloat, ok := numericPair(left, right)
	if !ok {
		return value.Fail(value.ErrType)
	}
	if isFloat {
		return checkFloat(lf - rf)
	}
	r, ok := subInt64(int64(left.(value.Int)), int64(right.(value.Int)))
	if !ok {
		return value.Fail(value.ErrOverflow)
	}
	return value.Ok(value.NewInt(r))
}

// Mul implements `*`: numeric product, or string/list repetition when
// one operand is an Int (Python's `"ab" * 3` idiom).
func Mul(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, right := children[0], children[1]
	if s, ok := left.(value.Str); ok {
		if n, ok := right.(value.Int); ok {
			return repeatStr(s, int64(n))
		}
	}
	if s, ok := right.(value.Str); ok {
		if n, ok := left.(value.Int); ok {
			return repeatStr(s, int64(n))
		}
	}
	lf, rf, isFloat, ok := numericPair(left, right)
	if !ok {
		return value.Fail(value.ErrType)
	}
	if isFloat {
		return checkFloat(lf * rf)
	}
	r, ok := mulInt64(int64(left.(value.Int)), int64(right.(value.Int)))
	if !ok {
		return value.Fail(value.ErrOverflow)
	}
	return value.Ok(value.NewInt(r))
}

func repeatStr(s value.Str, n int64) value.Outcome {
	if n < 0 {
		n = 0
	}
	if int64(len(s))*n > (1 << 24) {
		return value.Fail(value.ErrOverflow)
	}
	return value.Ok(value.NewStr(strings.Repeat(string(s), int(n))))
}

// Div implements true division `/`, always producing a Float.
func Div(children []value.Value, assignment map[string]value.Value) value.Outcome {
	lf, rf, _, ok := numericPair(children[0], children[1])
	if !ok {
		return value.Fail(value.ErrType)
	}
	if rf == 0 {
		return value.Fail(value.ErrDiv)
	}
	return checkFloat(lf / rf)
}

// FloorDiv implements `//`, Python floor semantics (rounds toward
// negative infinity, not toward zero).
func FloorDiv(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, right := children[0], children[1]
	lf, rf, isFloat, ok := numericPair(left, right)
	if !ok {
		return value.Fail(value.ErrType)
	}
	if rf == 0 {
		return value.Fail(value.ErrDiv)
	}
	if isFloat {
		return checkFloat(math.Floor(lf / rf))
	}
	li, ri := int64(left.(value.Int)), int64(right.(value.Int))
	q := li / ri
	if (li%ri != 0) && ((li < 0) != (ri < 0)) {
		q--
	}
	return value.Ok(value.NewInt(q))
}

// Mod implements `%` with Python's floored-modulo sign convention:
// the result takes the divisor's sign.
func Mod(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, right := children[0], children[1]
	lf, rf, isFloat, ok := numericPair(left, right)
	if !ok {
		return value.Fail(value.ErrType)
	}
	if rf == 0 {
		return value.Fail(value.ErrDiv)
	}
	if isFloat {
		r := math.Mod(lf, rf)
		if r != 0 && (r < 0) != (rf < 0) {
			r += rf
		}
		return checkFloat(r)
	}
	li, ri := int64(left.(value.Int)), int64(right.(value.Int))
	r := li % ri
	if r != 0 && (r < 0) != (ri < 0) {
		r += ri
	}
	return value.Ok(value.NewInt(r))
}

// Pow implements `**`. Integer base and non-negative integer exponent
// stay integral (with overflow detection); any float operand, or a
// negative integer exponent, promotes to float.
func Pow(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, right := children[0], children[1]
	lf, rf, isFloat, ok := numericPair(left, right)
	if !ok {
		return value.Fail(value.ErrType)
	}
	if !isFloat {
		ri := int64(right.(value.Int))
		if ri >= 0 {
			r, overflowed := intPow(int64(left.(value.Int)), ri)
			if overflowed {
				return value.Fail(value.ErrOverflow)
			}
			return value.Ok(value.NewInt(r))
		}
	}
	return checkFloat(math.Pow(lf, rf))
}

func intPow(base, exp int64) (int64, bool) {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		var ok bool
		result, ok = mulInt64(result, base)
		if !ok {
			return 0, true
		}
	}
	return result, false
}

// MatMul implements `@`. Python's matrix multiplication has no
// standalone meaning for this synthesizer's flat List value (there is
// no matrix/ndarray variant), so it is realized as a dot product over
// two equal-length numeric lists, the one interpretation of `@` that
// is both well-defined and exercises the operator at all.
func MatMul(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, ok := children[0].(value.List)
	if !ok {
		return value.Fail(value.ErrType)
	}
	right, ok := children[1].(value.List)
	if !ok {
		return value.Fail(value.ErrType)
	}
	if len(left) != len(right) {
		return value.Fail(value.ErrValue)
	}
	var sumF float64
	var sumI int64
	isFloat := false
	for i := range left {
		lf, lIsFloat, ok := value.MustNumeric(left[i])
		if !ok {
			return value.Fail(value.ErrType)
		}
		rf, rIsFloat, ok := value.MustNumeric(right[i])
		if !ok {
			return value.Fail(value.ErrType)
		}
		if lIsFloat || rIsFloat {
			isFloat = true
		}
		sumF += lf * rf
	}
	if isFloat {
		return checkFloat(sumF)
	}
	sumI = int64(sumF)
	return value.Ok(value.NewInt(sumI))
}

// compare returns -1/0/1 for left versus right, or ErrType if the
// variants are not ordered against each other.
func compare(left, right value.Value) (int, value.ErrorCode) {
	if ls, ok := left.(value.Str); ok {
		rs, ok := right.(value.Str)
		if !ok {
			return 0, value.ErrType
		}
		switch {
		case ls < rs:
			return -1, value.ErrNone
		case ls > rs:
			return 1, value.ErrNone
		default:
			return 0, value.ErrNone
		}
	}
	lf, rf, _, ok := numericPair(left, right)
	if !ok {
		return 0, value.ErrType
	}
	switch {
	case lf < rf:
		return -1, value.ErrNone
	case lf > rf:
		return 1, value.ErrNone
	default:
		return 0, value.ErrNone
	}
}

func cmpOp(want func(c int) bool) SemanticFunc {
	return func(children []value.Value, assignment map[string]value.Value) value.Outcome {
		c, errc := compare(children[0], children[1])
		if errc != value.ErrNone {
			return value.Fail(errc)
		}
		return value.Ok(value.NewBool(want(c)))
	}
}

var (
	Equal        = func(children []value.Value, assignment map[string]value.Value) value.Outcome { return value.Ok(value.NewBool(children[0].Equal(children[1]))) }
	NotEqual     = func(children []value.Value, assignment map[string]value.Value) value.Outcome { return value.Ok(value.NewBool(!children[0].Equal(children[1]))) }
	LessThan     = cmpOp(func(c int) bool { return c < 0 })
	LessEqual    = cmpOp(func(c int) bool { return c <= 0 })
	GreaterThan  = cmpOp(func(c int) bool { return c > 0 })
	GreaterEqual = cmpOp(func(c int) bool { return c >= 0 })
)

func intBinOp(fn func(a, b int64) int64) SemanticFunc {
	return func(children []value.Value, assignment map[string]value.Value) value.Outcome {
		a, ok := children[0].(value.Int)
		if !ok {
			return value.Fail(value.ErrType)
		}
		b, ok := children[1].(value.Int)
		if !ok {
			return value.Fail(value.ErrType)
		}
		return value.Ok(value.NewInt(fn(int64(a), int64(b))))
	}
}

var (
	BitwiseAnd = intBinOp(func(a, b int64) int64 { return a & b })
	BitwiseOr  = intBinOp(func(a, b int64) int64 { return a | b })
	BitwiseXor = intBinOp(func(a, b int64) int64 { return a ^ b })
)

func shiftOp(fn func(a int64, n uint64) (int64, bool)) SemanticFunc {
	return func(children []value.Value, assignment map[string]value.Value) value.Outcome {
		a, ok := children[0].(value.Int)
		if !ok {
			return value.Fail(value.ErrType)
		}
		b, ok := children[1].(value.Int)
		if !ok {
			return value.Fail(value.ErrType)
		}
		if b < 0 {
			return value.Fail(value.ErrValue)
		}
		if b >= 64 {
			return value.Fail(value.ErrOverflow)
		}
		r, ok := fn(int64(a), uint64(b))
		if !ok {
			return value.Fail(value.ErrOverflow)
		}
		return value.Ok(value.NewInt(r))
	}
}

var (
	LeftShift = shiftOp(func(a int64, n uint64) (int64, bool) {
		r := a << n
		return r, r>>n == a
	})
	RightShift = shiftOp(func(a int64, n uint64) (int64, bool) { return a >> n, true })
)

// In implements Python's `in`: list membership or substring search.
func In(children []value.Value, assignment map[string]value.Value) value.Outcome {
	left, right := children[0], children[1]
	switch container := right.(type) {
	case value.List:
		for _, elem := range container {
			if elem.Equal(left) {
				return value.Ok(value.NewBool(true))
			}
		}
		return value.Ok(value.NewBool(false))
	case value.Str:
		ls, ok := left.(value.Str)
		if !ok {
			return value.Fail(value.ErrType)
		}
		return value.Ok(value.NewBool(strings.Contains(string(container), string(ls))))
	default:
		return value.Fail(value.ErrType)
	}
}
