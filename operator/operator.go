// Package operator implements the catalog of operator constructors the
// synthesizer draws from: arithmetic, comparison, boolean, subscript and
// slice, list construction, the built-in function calls (len, abs,
// sorted, ...), and the templated Generic operator. Every operator
// exposes the same pointwise semantic-function shape so the enumerator
// and the expr package can treat them uniformly regardless of what
// they compute.
package operator

import "github.com/approxsynth/synth/value"

// Kind distinguishes the four operator shapes the grammar can register.
type Kind byte

const (
	// KindLiteral is a 0-arity constant.
	KindLiteral Kind = iota
	// KindVariable is a 0-arity lookup into the example's assignment.
	KindVariable
	// KindFunction is a fixed, catalog-defined n-ary operator.
	KindFunction
	// KindGeneric is a grammar-supplied templated expression.
	KindGeneric
)

// SemanticFunc computes the result of applying an operator to its
// children's values at a single example, given that example's variable
// assignment. It returns a recoverable value.Outcome rather than a Go
// error: the enumerator's caller (expr.New) turns a non-ok Outcome into
// a skip, never a panic or an abort.
type SemanticFunc func(children []value.Value, assignment map[string]value.Value) value.Outcome

// RenderFunc renders an operator's source form given its children's
// already-rendered source strings. Literal and Variable operators
// ignore the argument.
type RenderFunc func(children []string) string

// Operator is a single catalog entry: identifier, arity, and the two
// functions that give it meaning (what it computes, how it prints).
type Operator struct {
	Name   string
	Arity  int
	Kind   Kind
	Eval   SemanticFunc
	Render RenderFunc

	// Literal holds the constant value for a KindLiteral operator.
	Literal value.Value
	// VarName holds the lookup key for a KindVariable operator.
	VarName string
}

// NewLiteral builds a 0-arity constant operator.
func NewLiteral(v value.Value) *Operator {
	return NewLiteralRendered(v, v.String())
}

// NewLiteralRendered builds a 0-arity constant operator whose printed
// form is src rather than v.String(). Used for the implicit bounds a
// slice template omits (`x[::2]`'s missing lower bound prints as
// nothing, not as the sentinel integer that represents it internally).
func NewLiteralRendered(v value.Value, src string) *Operator {
	return &Operator{
		Name:    src,
		Arity:   0,
		Kind:    KindLiteral,
		Literal: v,
		Eval: func(children []value.Value, assignment map[string]value.Value) value.Outcome {
			return value.Ok(v)
		},
		Render: func(children []string) string { return src },
	}
}

// NewVariable builds a 0-arity operator that reads name out of the
// example's assignment map.
func NewVariable(name string) *Operator {
	return &Operator{
		Name:    name,
		Arity:   0,
		Kind:    KindVariable,
		VarName: name,
		Eval: func(children []value.Value, assignment map[string]value.Value) value.Outcome {
			v, ok := assignment[name]
			if !ok {
				return value.Fail(value.ErrKey)
			}
			return value.Ok(v)
		},
		Render: func(children []string) string { return name },
	}
}

// NewFunction builds a fixed-arity catalog operator.
func NewFunction(name string, arity int, eval SemanticFunc, render RenderFunc) *Operator {
	return &Operator{Name: name, Arity: arity, Kind: KindFunction, Eval: eval, Render: render}
}
