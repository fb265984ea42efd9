package operator

import "github.com/approxsynth/synth/value"

// And implements Python-style short-circuit-free `and` over 2-5
// operands: the result is the first falsy operand, or the last operand
// if all are truthy. The search never needs true short-circuiting
// since every child's value is already computed before the operator
// runs.
func And(children []value.Value, assignment map[string]value.Value) value.Outcome {
	for _, c := range children[:len(children)-1] {
		if !truthy(c) {
			return value.Ok(c)
		}
	}
	return value.Ok(children[len(children)-1])
}

// Or implements `or` over 2-5 operands: the first truthy operand, or
// the last operand if all are falsy.
func Or(children []value.Value, assignment map[string]value.Value) value.Outcome {
	for _, c := range children[:len(children)-1] {
		if truthy(c) {
			return value.Ok(c)
		}
	}
	return value.Ok(children[len(children)-1])
}
