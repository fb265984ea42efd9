package operator

func infix(symbol string) RenderFunc {
	return func(children []string) string {
		return children[0] + " " + symbol + " " + children[1]
	}
}

func prefix(symbol string) RenderFunc {
	return func(children []string) string {
		return symbol + children[0]
	}
}

func call(name string) RenderFunc {
	return func(children []string) string {
		args := ""
		for i, c := range children {
			if i > 0 {
				args += ", "
			}
			args += c
		}
		return name + "(" + args + ")"
	}
}

func method(name string) RenderFunc {
	return func(children []string) string {
		args := ""
		for i, c := range children[1:] {
			if i > 0 {
				args += ", "
			}
			args += c
		}
		return children[0] + "." + name + "(" + args + ")"
	}
}

func renderList(children []string) string {
	out := "["
	for i, c := range children {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out + "]"
}

func renderSubscript(children []string) string {
	return children[0] + "[" + children[1] + "]"
}

func renderSlice(children []string) string {
	out := children[0] + "[" + children[1] + ":" + children[2]
	if children[3] != "1" {
		out += ":" + children[3]
	}
	return out + "]"
}

// Builtins returns every Function-kind operator the catalog defines.
// It is the single source of truth the grammar readers (synthio)
// consult when resolving an operator identifier from a CSV/TXT grammar
// file to a concrete Operator.
func Builtins() []*Operator {
	ops := []*Operator{
		NewFunction("-", 1, Negate, prefix("-")),
		NewFunction("+", 1, Plus, prefix("+")),
		NewFunction("not", 1, LogicalNot, func(c []string) string { return "not " + c[0] }),
		NewFunction("~", 1, BitwiseNot, prefix("~")),
		NewFunction("len", 1, Len, call("len")),
		NewFunction("abs", 1, Abs, call("abs")),
		NewFunction("sorted", 1, Sorted, call("sorted")),
		NewFunction("reversed", 1, ReversedList, func(c []string) string { return "list(reversed(" + c[0] + "))" }),
		NewFunction("capitalize", 1, Capitalize, method("capitalize")),
		NewFunction("casefold", 1, Casefold, method("casefold")),
		NewFunction("lower", 1, Lower, method("lower")),
		NewFunction("title", 1, Title, method("title")),
		NewFunction("upper", 1, Upper, method("upper")),

		NewFunction("+", 2, Add, infix("+")),
		NewFunction("-", 2, Sub, infix("-")),
		NewFunction("*", 2, Mul, infix("*")),
		NewFunction("/", 2, Div, infix("/")),
		NewFunction("//", 2, FloorDiv, infix("//")),
		NewFunction("%", 2, Mod, infix("%")),
		NewFunction("**", 2, Pow, infix("**")),
		NewFunction("<<", 2, LeftShift, infix("<<")),
		NewFunction(">>", 2, RightShift, infix(">>")),
		NewFunction("|", 2, BitwiseOr, infix("|")),
		NewFunction("^", 2, BitwiseXor, infix("^")),
		NewFunction("&", 2, BitwiseAnd, infix("&")),
		NewFunction("@", 2, MatMul, infix("@")),
		NewFunction("==", 2, Equal, infix("==")),
		NewFunction("!=", 2, NotEqual, infix("!=")),
		NewFunction("<", 2, LessThan, infix("<")),
		NewFunction("<=", 2, LessEqual, infix("<=")),
		NewFunction(">", 2, GreaterThan, infix(">")),
		NewFunction(">=", 2, GreaterEqual, infix(">=")),
		NewFunction("in", 2, In, infix("in")),
		NewFunction("[]", 2, Subscript, renderSubscript),
		NewFunction("index", 2, Index, method("index")),
		NewFunction("count", 2, Count, method("count")),
		NewFunction("join", 2, Join, method("join")),

		NewFunction("slice", 4, Slice, renderSlice),
	}

	for arity := 2; arity <= 5; arity++ {
		ops = append(ops, NewFunction("and", arity, And, naryRender("and")))
		ops = append(ops, NewFunction("or", arity, Or, naryRender("or")))
	}
	for arity := 1; arity <= 5; arity++ {
		ops = append(ops, NewFunction("list", arity, MakeList, renderList))
	}
	return ops
}

func naryRender(symbol string) RenderFunc {
	return func(children []string) string {
		out := ""
		for i, c := range children {
			if i > 0 {
				out += " " + symbol + " "
			}
			out += c
		}
		return out
	}
}

// Lookup finds a catalog Function operator by identifier and arity.
func Lookup(catalog []*Operator, name string, arity int) (*Operator, bool) {
	for _, op := range catalog {
		if op.Name == name && op.Arity == arity {
			return op, true
		}
	}
	return nil, false
}
