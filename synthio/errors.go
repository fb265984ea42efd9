// Package synthio reads the synthesizer's external inputs: the
// input-output example CSV, the two grammar formats (CSV and TXT), and
// the metric selector. All failures here are fatal InputParseError or
// UnknownOperator conditions per the error-handling design; nothing in
// this package is recovered from mid-search.
package synthio

import "fmt"

// ParseError reports a malformed examples or grammar file.
type ParseError struct {
	File   string
	Line   int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Detail)
}

// UnknownOperatorError reports a grammar row referencing an operator
// identifier that is not registered at that arity.
type UnknownOperatorError struct {
	File  string
	Name  string
	Arity int
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("%s: unknown operator %q at arity %d", e.File, e.Name, e.Arity)
}
