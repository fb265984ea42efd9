package operator

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types/ref"

	"github.com/approxsynth/synth/value"
)

// NewGeneric builds the grammar's extensibility hook: a templated
// expression with placeholders EXP1..EXPk for its k children, plus the
// example's own variable names, evaluated by a small embedded
// expression evaluator rather than a hand-rolled interpreter. The
// template is compiled once, lazily, on first Eval call (construction
// itself never touches cel-go, so a malformed template only surfaces
// as a recoverable evaluation failure on the candidate that uses it,
// never as an abort of the run).
func NewGeneric(name string, arity int, template string, varNames []string) *Operator {
	g := &genericOperator{template: template, arity: arity, varNames: varNames}
	return &Operator{
		Name:  name,
		Arity: arity,
		Kind:  KindGeneric,
		Eval:  g.eval,
		Render: func(children []string) string {
			return substitutePlaceholders(template, children)
		},
	}
}

type genericOperator struct {
	template string
	arity    int
	varNames []string

	compiled bool
	program  cel.Program
	compErr  error
}

func (g *genericOperator) compile() {
	if g.compiled {
		return
	}
	g.compiled = true
	decls := make([]cel.EnvOption, 0, g.arity+len(g.varNames))
	for i := 1; i <= g.arity; i++ {
		decls = append(decls, cel.Variable(fmt.Sprintf("EXP%d", i), cel.DynType))
	}
	for _, name := range g.varNames {
		decls = append(decls, cel.Variable(name, cel.DynType))
	}
	env, err := cel.NewEnv(decls...)
	if err != nil {
		g.compErr = err
		return
	}
	ast, issues := env.Compile(g.template)
	if issues != nil && issues.Err() != nil {
		g.compErr = issues.Err()
		return
	}
	prg, err := env.Program(ast)
	if err != nil {
		g.compErr = err
		return
	}
	g.program = prg
}

func (g *genericOperator) eval(children []value.Value, assignment map[string]value.Value) value.Outcome {
	g.compile()
	if g.compErr != nil {
		return value.Fail(value.ErrType)
	}
	activation := make(map[string]interface{}, len(assignment)+len(children))
	for name, v := range assignment {
		activation[name] = toCel(v)
	}
	for i, c := range children {
		activation[fmt.Sprintf("EXP%d", i+1)] = toCel(c)
	}
	out, _, err := g.program.Eval(activation)
	if err != nil {
		return value.Fail(value.ErrValue)
	}
	v, ok := fromCel(out)
	if !ok {
		return value.Fail(value.ErrType)
	}
	return value.Ok(v)
}

func toCel(v value.Value) interface{} {
	switch x := v.(type) {
	case value.Int:
		return int64(x)
	case value.Float:
		return float64(x)
	case value.Str:
		return string(x)
	case value.Bool:
		return bool(x)
	case value.List:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = toCel(e)
		}
		return out
	default:
		return nil
	}
}

func fromCel(v ref.Val) (value.Value, bool) {
	return fromRaw(v.Value())
}

func fromRaw(raw interface{}) (value.Value, bool) {
	switch x := raw.(type) {
	case int64:
		return value.NewInt(x), true
	case uint64:
		return value.NewInt(int64(x)), true
	case float64:
		return value.NewFloat(x), true
	case string:
		return value.NewStr(x), true
	case bool:
		return value.NewBool(x), true
	case []ref.Val:
		out := make([]value.Value, len(x))
		for i, e := range x {
			ev, ok := fromCel(e)
			if !ok {
				return nil, false
			}
			out[i] = ev
		}
		return value.NewList(out), true
	case []interface{}:
		out := make([]value.Value, len(x))
		for i, e := range x {
			ev, ok := fromRaw(e)
			if !ok {
				return nil, false
			}
			out[i] = ev
		}
		return value.NewList(out), true
	default:
		return nil, false
	}
}

// substitutePlaceholders renders a Generic operator's source form by
// textually replacing each EXPi with the corresponding child's already
// rendered source string, the same placeholder scheme the grammar's
// TXT templates use to declare the operator in the first place.
// Compound children (anything with a space) are parenthesized to keep
// the tree's grouping in the flat source text.
func substitutePlaceholders(template string, children []string) string {
	out := template
	for i := len(children); i >= 1; i-- {
		placeholder := fmt.Sprintf("EXP%d", i)
		child := children[i-1]
		if strings.ContainsRune(child, ' ') {
			child = "(" + child + ")"
		}
		out = strings.ReplaceAll(out, placeholder, child)
	}
	return out
}
