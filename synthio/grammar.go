package synthio

import (
	"bufio"
	"encoding/csv"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/approxsynth/synth/grammar"
	"github.com/approxsynth/synth/operator"
	"github.com/approxsynth/synth/value"
)

var placeholderPattern = regexp.MustCompile(`EXP([0-9]+)`)

// templateArity returns the highest placeholder number in a template,
// defaulting to 1 when a template mentions placeholders of unknown
// form.
func templateArity(template string) int {
	arity := 0
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		k, err := strconv.Atoi(m[1])
		if err == nil && k > arity {
			arity = k
		}
	}
	if arity == 0 {
		arity = 1
	}
	return arity
}

// renderTemplate substitutes each child's rendered source into the
// template's numbered placeholders. A child that is itself a compound
// expression (detected by containing a space) is parenthesized so the
// substituted source keeps the tree's grouping.
func renderTemplate(template string) operator.RenderFunc {
	return func(children []string) string {
		out := template
		for i := len(children); i >= 1; i-- {
			child := children[i-1]
			if strings.ContainsRune(child, ' ') {
				child = "(" + child + ")"
			}
			out = strings.ReplaceAll(out, "EXP"+strconv.Itoa(i), child)
		}
		return out
	}
}

// matchCatalog reports the catalog operator whose printed form equals
// the template (whitespace-insensitively), if any. This is what lets a
// grammar line like `EXP ::= EXP1 + EXP2` register the native addition
// operator rather than a Generic one.
func matchCatalog(catalog []*operator.Operator, template string, arity int) (*operator.Operator, bool) {
	placeholders := make([]string, arity)
	for i := range placeholders {
		placeholders[i] = "EXP" + strconv.Itoa(i+1)
	}
	want := stripSpace(template)
	for _, op := range catalog {
		if op.Arity != arity {
			continue
		}
		if stripSpace(op.Render(placeholders)) == want {
			return op, true
		}
	}
	return nil, false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

// slicePattern recognizes `EXP1[lo:hi]` and `EXP1[lo:hi:step]`
// templates whose bounds are integer literals or omitted. Omitted
// bounds are curried in as the slice sentinels, so `EXP1[::-1]`
// becomes a unary operator over the underlying 4-ary slice.
var slicePattern = regexp.MustCompile(`^EXP1\[(-?[0-9]*):(-?[0-9]*)(?::(-?[0-9]*))?\]$`)

func matchSliceTemplate(template string) (*operator.Operator, bool) {
	m := slicePattern.FindStringSubmatch(stripSpace(template))
	if m == nil {
		return nil, false
	}
	lo := sliceBound(m[1], operator.NoneLowerBound)
	hi := sliceBound(m[2], operator.NoneUpperBound)
	step := int64(1)
	if m[3] != "" {
		step = sliceBound(m[3], 1)
	}
	eval := func(children []value.Value, assignment map[string]value.Value) value.Outcome {
		return operator.Slice([]value.Value{
			children[0], value.NewInt(lo), value.NewInt(hi), value.NewInt(step),
		}, assignment)
	}
	return operator.NewFunction(template, 1, eval, renderTemplate(template)), true
}

func sliceBound(text string, missing int64) int64 {
	if text == "" {
		return missing
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return missing
	}
	return n
}

// resolveTemplate turns a grammar template into an operator: a catalog
// match when the printed forms line up, a curried slice when the
// template is a constant-bound slice, and a Generic operator otherwise.
func resolveTemplate(catalog []*operator.Operator, template string, varNames []string) (*operator.Operator, int) {
	arity := templateArity(template)
	if op, ok := matchCatalog(catalog, template, arity); ok {
		return op, arity
	}
	if op, ok := matchSliceTemplate(template); ok {
		return op, 1
	}
	return operator.NewGeneric(template, arity, template, varNames), arity
}

// addLiteral registers a parsed literal with its source-form rendering
// pinned to the literal syntax, so string literals print quoted.
func addLiteral(g *grammar.SearchSpace, v value.Value) {
	g.AddFunction(operator.NewLiteralRendered(v, Repr(v)), 0)
}

// ReadGrammarCSV loads the CSV grammar variant: row 1 literals, row 2
// variables, row r (r >= 3) operator identifiers of arity r-2. A bare
// identifier in the literal row follows the TXT reader's rule: if it
// parses as a literal it is one, otherwise it names a variable.
func ReadGrammarCSV(path string) (*grammar.SearchSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{File: path, Detail: err.Error()}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &ParseError{File: path, Detail: err.Error()}
	}
	if len(rows) < 2 {
		return nil, &ParseError{File: path, Detail: "need a literal row and a variable row"}
	}

	var literals []value.Value
	var variables []string
	for _, cell := range rows[0] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if v, err := ParseLiteral(cell); err == nil {
			literals = append(literals, v)
		} else {
			variables = append(variables, cell)
		}
	}
	for _, cell := range rows[1] {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			variables = append(variables, cell)
		}
	}

	g := grammar.New()
	for _, v := range literals {
		addLiteral(g, v)
	}
	g.AddVariables(variables)

	catalog := operator.Builtins()
	for rowIdx, row := range rows[2:] {
		arity := rowIdx + 1
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if strings.Contains(cell, "EXP") {
				op, templArity := resolveTemplate(catalog, cell, variables)
				if templArity != arity {
					return nil, &ParseError{File: path, Line: rowIdx + 3,
						Detail: "template " + cell + " has arity " + strconv.Itoa(templArity) +
							" but appears in the arity-" + strconv.Itoa(arity) + " row"}
				}
				g.AddFunction(op, arity)
				continue
			}
			op, ok := operator.Lookup(catalog, cell, arity)
			if !ok {
				return nil, &UnknownOperatorError{File: path, Name: cell, Arity: arity}
			}
			g.AddFunction(op, arity)
		}
	}
	return g, nil
}

// ReadGrammarTXT loads the TXT grammar variant: one production per
// line of the form `EXP ::= <expr>`, where <expr> is a literal, a
// variable identifier, or a template with EXP1..EXPk placeholders.
func ReadGrammarTXT(path string) (*grammar.SearchSpace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{File: path, Detail: err.Error()}
	}
	defer f.Close()

	type production struct {
		line int
		rhs  string
	}
	var literals []value.Value
	var variables []string
	var templates []production

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lhs, rhs, found := strings.Cut(line, "::=")
		if !found || strings.TrimSpace(lhs) != "EXP" {
			return nil, &ParseError{File: path, Line: lineNo, Detail: "expected `EXP ::= <expr>`"}
		}
		rhs = strings.TrimSpace(rhs)
		switch {
		case placeholderPattern.MatchString(rhs):
			templates = append(templates, production{line: lineNo, rhs: rhs})
		default:
			if v, err := ParseLiteral(rhs); err == nil {
				literals = append(literals, v)
			} else {
				variables = append(variables, rhs)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{File: path, Detail: err.Error()}
	}

	g := grammar.New()
	for _, v := range literals {
		addLiteral(g, v)
	}
	g.AddVariables(variables)

	catalog := operator.Builtins()
	for _, t := range templates {
		op, arity := resolveTemplate(catalog, t.rhs, variables)
		g.AddFunction(op, arity)
	}
	return g, nil
}

// ReadGrammar dispatches on the file extension: .txt productions or
// CSV rows otherwise.
func ReadGrammar(path string) (*grammar.SearchSpace, error) {
	if strings.EqualFold(strings.TrimPrefix(extOf(path), "."), "txt") {
		return ReadGrammarTXT(path)
	}
	return ReadGrammarCSV(path)
}

func extOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return path[i:]
}
