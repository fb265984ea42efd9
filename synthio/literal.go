package synthio

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/approxsynth/synth/value"
)

// ParseLiteral parses one literal of the example/grammar syntax:
// integers, floats, single- or double-quoted strings, True/False, and
// bracketed lists thereof (nesting permitted).
func ParseLiteral(s string) (value.Value, error) {
	p := &literalParser{input: s}
	v, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("trailing characters after literal: %q", p.input[p.pos:])
	}
	return v, nil
}

// Repr renders a value back into the literal syntax ParseLiteral
// accepts, quoting strings the way a Python repr would. Literal
// operators register their printed form through this so a synthesized
// program's source round-trips as valid input.
func Repr(v value.Value) string {
	switch x := v.(type) {
	case value.Str:
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(string(x)) + "'"
	case value.List:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Repr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return v.String()
	}
}

type literalParser struct {
	input string
	pos   int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *literalParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *literalParser) parse() (value.Value, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '[':
		return p.parseList()
	case c == '\'' || c == '"':
		return p.parseString(c)
	case c == '-' || c == '+' || c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case strings.HasPrefix(p.input[p.pos:], "True"):
		p.pos += len("True")
		return value.NewBool(true), nil
	case strings.HasPrefix(p.input[p.pos:], "False"):
		p.pos += len("False")
		return value.NewBool(false), nil
	default:
		return nil, fmt.Errorf("not a literal at %q", p.input[p.pos:])
	}
}

func (p *literalParser) parseList() (value.Value, error) {
	p.pos++ // consume '['
	var elems []value.Value
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return value.NewEmptyList(), nil
	}
	for {
		v, err := p.parse()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return value.NewList(elems), nil
		default:
			return nil, fmt.Errorf("expected ',' or ']' at %q", p.input[p.pos:])
		}
	}
}

func (p *literalParser) parseString(quote byte) (value.Value, error) {
	p.pos++ // consume the opening quote
	var sb strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case quote:
			p.pos++
			return value.NewStr(sb.String()), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.input) {
				return nil, fmt.Errorf("unterminated escape in string literal")
			}
			esc := p.input[p.pos]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\', '\'', '"':
				sb.WriteByte(esc)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return nil, fmt.Errorf("unterminated string literal")
}

func (p *literalParser) parseNumber() (value.Value, error) {
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	isFloat := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			p.pos++
			continue
		}
		if (c == '-' || c == '+') && isFloat &&
			(p.input[p.pos-1] == 'e' || p.input[p.pos-1] == 'E') {
			p.pos++
			continue
		}
		break
	}
	text := p.input[start:p.pos]
	if !isFloat {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad integer literal %q", text)
		}
		return value.NewInt(n), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("bad float literal %q", text)
	}
	return value.NewFloat(f), nil
}
