package svparse

import (
	"github.com/svparse/svparse/lexer"
)

// Number is an integral, real, time or unbased unsized literal.
type Number struct {
	Kind  lexer.NumberKind
	Value Symbol
}

func (n Number) Children() []Node { return nodes(n.Value) }
func (*Number) expression()       {}

// StringLiteral is a double quoted string.
type StringLiteral struct {
	Value Symbol
}

func (n StringLiteral) Children() []Node { return nodes(n.Value) }
func (*StringLiteral) expression()       {}

// Concatenation is eg. "{a, b}". The empty queue "{}" has no items.
type Concatenation struct {
	Braces Brace[*List[Expression]]
}

func (n Concatenation) Children() []Node { return nodes(n.Braces) }
func (*Concatenation) expression()       {}

// MultipleConcatenation is eg. "{4{a}}".
type MultipleConcatenation struct {
	Open  Symbol
	Count Expression
	Inner Concatenation
	Close Symbol
}

func (n MultipleConcatenation) Children() []Node {
	return nodes(n.Open, n.Count, n.Inner, n.Close)
}
func (*MultipleConcatenation) expression() {}

// AssignmentPattern is eg. "'{1, 2, 3}".
type AssignmentPattern struct {
	Open  Symbol
	Items List[Expression]
	Close Symbol
}

func (n AssignmentPattern) Children() []Node { return nodes(n.Open, n.Items, n.Close) }
func (*AssignmentPattern) expression()       {}

// ParenExpression is a parenthesised expression.
type ParenExpression struct {
	Parens Paren[Expression]
}

func (n ParenExpression) Children() []Node { return nodes(n.Parens) }
func (*ParenExpression) expression()       {}

// FunctionCallExpression is a subroutine call used as a value.
type FunctionCallExpression struct {
	Call SubroutineCall
}

func (n FunctionCallExpression) Children() []Node { return nodes(n.Call) }
func (*FunctionCallExpression) expression()       {}

// HierarchicalPrimary is a reference to a variable, eg. "this.data[3]" or "pkg::N".
type HierarchicalPrimary struct {
	Scope  ScopePrefix
	Name   HierarchicalIdentifier
	Select Select
}

func (n HierarchicalPrimary) Children() []Node { return nodes(n.Scope, n.Name, n.Select) }
func (*HierarchicalPrimary) expression()       {}

// KeywordPrimary is "this", "null" or "$".
type KeywordPrimary struct {
	Keyword Symbol
}

func (n KeywordPrimary) Children() []Node { return nodes(n.Keyword) }
func (*KeywordPrimary) expression()       {}

func primary(in Input) (Input, Expression, error) {
	return Choice("primary",
		number,
		stringLiteral,
		As[Expression](Map(concatenation, ptr[Concatenation])),
		multipleConcatenation,
		assignmentPattern,
		parenExpression,
		functionCallExpression,
		hierarchicalPrimary,
		keywordPrimary,
	)(in)
}

func number(in Input) (Input, Expression, error) {
	return Rule(in, "number", func(in Input) (Input, Expression, error) {
		kind, _ := lexer.ScanNumber(in.ctx.src.Text, in.off)
		s, value, err := in.Match("number", func(text string, offset int) int {
			_, n := lexer.ScanNumber(text, offset)
			return n
		})
		if err != nil {
			return in, nil, err
		}
		return s, &Number{Kind: kind, Value: value}, nil
	})
}

func stringLiteral(in Input) (Input, Expression, error) {
	return Rule(in, "string_literal", func(in Input) (Input, Expression, error) {
		s, value, err := in.Match("string", lexer.ScanString)
		if err != nil {
			return in, nil, err
		}
		return s, &StringLiteral{Value: value}, nil
	})
}

func concatenation(in Input) (Input, Concatenation, error) {
	return Rule(in, "concatenation", func(in Input) (Input, Concatenation, error) {
		s, braces, err := Braces(Opt(CommaList(expression)))(in)
		if err != nil {
			return in, Concatenation{}, err
		}
		return s, Concatenation{Braces: braces}, nil
	})
}

func multipleConcatenation(in Input) (Input, Expression, error) {
	return Rule(in, "multiple_concatenation", func(in Input) (Input, Expression, error) {
		var (
			out MultipleConcatenation
			err error
		)
		s := in
		if s, out.Open, err = s.Literal("{"); err != nil {
			return in, nil, err
		}
		if s, out.Count, err = expression(s); err != nil {
			return in, nil, err
		}
		if s, out.Inner, err = concatenation(s); err != nil {
			return in, nil, err
		}
		if s, out.Close, err = s.Literal("}"); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func assignmentPattern(in Input) (Input, Expression, error) {
	return Rule(in, "assignment_pattern", func(in Input) (Input, Expression, error) {
		var (
			out AssignmentPattern
			err error
		)
		s := in
		if s, out.Open, err = s.Literal("'{"); err != nil {
			return in, nil, err
		}
		if s, out.Items, err = CommaList(expression)(s); err != nil {
			return in, nil, err
		}
		if s, out.Close, err = s.Literal("}"); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func parenExpression(in Input) (Input, Expression, error) {
	return Rule(in, "paren_expression", func(in Input) (Input, Expression, error) {
		s, parens, err := Parens(expression)(in)
		if err != nil {
			return in, nil, err
		}
		return s, &ParenExpression{Parens: parens}, nil
	})
}

func functionCallExpression(in Input) (Input, Expression, error) {
	return Rule(in, "function_subroutine_call", func(in Input) (Input, Expression, error) {
		s, call, err := functionSubroutineCall(in)
		if err != nil {
			return in, nil, err
		}
		return s, &FunctionCallExpression{Call: call}, nil
	})
}

func hierarchicalPrimary(in Input) (Input, Expression, error) {
	return Rule(in, "hierarchical_primary", func(in Input) (Input, Expression, error) {
		var (
			out HierarchicalPrimary
			err error
		)
		s := in
		if s, out.Scope, err = Maybe(scopePrefix)(s); err != nil {
			return in, nil, err
		}
		if s, out.Name, err = hierarchicalIdentifier(s); err != nil {
			return in, nil, err
		}
		if s, out.Select, err = selection(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func keywordPrimary(in Input) (Input, Expression, error) {
	s, keyword, err := OneOfLiterals("this", "null", "$")(in)
	if err != nil {
		return in, nil, in.Fail("primary")
	}
	return s, &KeywordPrimary{Keyword: keyword}, nil
}

// ClassNew is "new" with optional constructor arguments.
type ClassNew struct {
	New  Symbol
	Args *Paren[*ListOfArguments]
}

func (n ClassNew) Children() []Node { return nodes(n.New, n.Args) }

func classNew(in Input) (Input, ClassNew, error) {
	return Rule(in, "class_new", func(in Input) (Input, ClassNew, error) {
		var (
			out ClassNew
			err error
		)
		s := in
		if s, out.New, err = s.Literal("new"); err != nil {
			return in, out, err
		}
		if s, out.Args, err = Opt(Parens(Opt(listOfArguments)))(s); err != nil {
			return in, ClassNew{}, err
		}
		return s, out, nil
	})
}

// DynamicArrayNew is eg. "new[n]" or "new[n](old)".
type DynamicArrayNew struct {
	New  Symbol
	Size Bracket[Expression]
	Init *Paren[Expression]
}

func (n DynamicArrayNew) Children() []Node { return nodes(n.New, n.Size, n.Init) }

func dynamicArrayNew(in Input) (Input, DynamicArrayNew, error) {
	return Rule(in, "dynamic_array_new", func(in Input) (Input, DynamicArrayNew, error) {
		var (
			out DynamicArrayNew
			err error
		)
		s := in
		if s, out.New, err = s.Literal("new"); err != nil {
			return in, out, err
		}
		if s, out.Size, err = Brackets(expression)(s); err != nil {
			return in, DynamicArrayNew{}, err
		}
		if s, out.Init, err = Opt(Parens(expression))(s); err != nil {
			return in, DynamicArrayNew{}, err
		}
		return s, out, nil
	})
}

// ListOfArguments is the argument list of a call. Items are either an Expression or a
// *NamedArgument.
type ListOfArguments struct {
	List List[Node]
}

func (n ListOfArguments) Children() []Node { return nodes(n.List) }

// NamedArgument is eg. ".width(8)".
type NamedArgument struct {
	Dot   Symbol
	Name  Identifier
	Value Paren[Expression]
}

func (n NamedArgument) Children() []Node { return nodes(n.Dot, n.Name, n.Value) }

func namedArgument(in Input) (Input, Node, error) {
	var (
		out NamedArgument
		err error
	)
	s := in
	if s, out.Dot, err = s.Literal("."); err != nil {
		return in, nil, err
	}
	if s, out.Name, err = identifier(s); err != nil {
		return in, nil, err
	}
	if s, out.Value, err = Parens(expression)(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func listOfArguments(in Input) (Input, ListOfArguments, error) {
	return Rule(in, "list_of_arguments", func(in Input) (Input, ListOfArguments, error) {
		s, list, err := CommaList(func(in Input) (Input, Node, error) {
			return Alt(in, namedArgument, As[Node](expression))
		})(in)
		if err != nil {
			return in, ListOfArguments{}, err
		}
		return s, ListOfArguments{List: list}, nil
	})
}
