package svparse

import (
	"github.com/svparse/svparse/lexer"
)

// Expression is any expression.
type Expression interface {
	Node
	expression()
}

// BinaryExpression is "left op right".
type BinaryExpression struct {
	Left  Expression
	Op    Symbol
	Right Expression
}

func (n BinaryExpression) Children() []Node { return nodes(n.Left, n.Op, n.Right) }
func (*BinaryExpression) expression()       {}

// UnaryExpression is eg. "!x" or "~&bus".
type UnaryExpression struct {
	Op      Symbol
	Operand Expression
}

func (n UnaryExpression) Children() []Node { return nodes(n.Op, n.Operand) }
func (*UnaryExpression) expression()       {}

// ConditionalExpression is "cond ? then : else".
type ConditionalExpression struct {
	Cond     Expression
	Question Symbol
	Then     Expression
	Colon    Symbol
	Else     Expression
}

func (n ConditionalExpression) Children() []Node {
	return nodes(n.Cond, n.Question, n.Then, n.Colon, n.Else)
}
func (*ConditionalExpression) expression() {}

// InsideExpression is "expr inside { ranges }".
type InsideExpression struct {
	Left   Expression
	Inside Symbol
	Ranges Brace[OpenRangeList]
}

func (n InsideExpression) Children() []Node { return nodes(n.Left, n.Inside, n.Ranges) }
func (*InsideExpression) expression()       {}

// IncOrDecExpression is "++x", "--x", "x++" or "x--".
//
// Exactly one of Prefix and Suffix is set.
type IncOrDecExpression struct {
	Prefix *Symbol
	Lvalue VariableLvalue
	Suffix *Symbol
}

func (n IncOrDecExpression) Children() []Node { return nodes(n.Prefix, n.Lvalue, n.Suffix) }
func (*IncOrDecExpression) expression()       {}

type opInfo struct {
	RightAssociative bool
	Priority         int
}

// Binary operators, loosest binding first.
var binaryOperators = map[string]opInfo{
	"->":  {RightAssociative: true, Priority: 1},
	"<->": {RightAssociative: true, Priority: 1},
	"?":   {RightAssociative: true, Priority: 2},
	"||":  {Priority: 3},
	"&&":  {Priority: 4},
	"|":   {Priority: 5},
	"^":   {Priority: 6},
	"^~":  {Priority: 6},
	"~^":  {Priority: 6},
	"&":   {Priority: 7},
	"==":  {Priority: 8},
	"!=":  {Priority: 8},
	"===": {Priority: 8},
	"!==": {Priority: 8},
	"==?": {Priority: 8},
	"!=?": {Priority: 8},
	"<":   {Priority: 9},
	"<=":  {Priority: 9},
	">":   {Priority: 9},
	">=":  {Priority: 9},
	// inside
	"inside": {Priority: 9},
	"<<":     {Priority: 10},
	">>":     {Priority: 10},
	"<<<":    {Priority: 10},
	">>>":    {Priority: 10},
	"+":      {Priority: 11},
	"-":      {Priority: 11},
	"*":      {Priority: 12},
	"/":      {Priority: 12},
	"%":      {Priority: 12},
	"**":     {Priority: 13},
}

var unaryOperators = []string{"~&", "~|", "~^", "^~", "+", "-", "!", "~", "&", "|", "^"}

func expression(in Input) (Input, Expression, error) {
	return in.ctx.memo(in, func(in Input) (Input, Expression, error) {
		return Rule(in, "expression", func(in Input) (Input, Expression, error) {
			return parseExpression(in, 0)
		})
	})
}

// Precedence climbing.
//
// An operator whose right operand fails to parse is left unconsumed, so eg. the "->" of a
// constraint implication is available to the enclosing rule.
func parseExpression(in Input, minPrec int) (Input, Expression, error) {
	s, lhs, err := operand(in)
	if err != nil {
		return in, nil, err
	}
	for {
		op, info, ok := peekOperator(s)
		if !ok || info.Priority < minPrec {
			break
		}
		var (
			next Input
			expr Expression
		)
		switch op {
		case "?":
			next, expr, err = conditional(s, lhs)
		case "inside":
			next, expr, err = inside(s, lhs)
		default:
			nextMinPrec := info.Priority
			if !info.RightAssociative {
				nextMinPrec++
			}
			next, expr, err = binary(s, lhs, op, nextMinPrec)
		}
		if err != nil {
			if Recoverable(err) {
				break
			}
			return in, nil, err
		}
		s, lhs = next, expr
	}
	return s, lhs, nil
}

func peekOperator(in Input) (string, opInfo, bool) {
	text := in.ctx.src.Text
	if n := lexer.ScanPunct(text, in.off); n > 0 {
		op := text[in.off : in.off+n]
		info, ok := binaryOperators[op]
		return op, info, ok
	}
	if n := lexer.ScanSimpleIdentifierText(text, in.off); n > 0 && text[in.off:in.off+n] == "inside" {
		return "inside", binaryOperators["inside"], true
	}
	return "", opInfo{}, false
}

func binary(in Input, lhs Expression, op string, minPrec int) (Input, Expression, error) {
	s, sym, err := in.Literal(op)
	if err != nil {
		return in, nil, err
	}
	s, rhs, err := parseExpression(s, minPrec)
	if err != nil {
		return in, nil, err
	}
	return s, &BinaryExpression{Left: lhs, Op: sym, Right: rhs}, nil
}

func conditional(in Input, cond Expression) (Input, Expression, error) {
	out := &ConditionalExpression{Cond: cond}
	s, sym, err := in.Literal("?")
	if err != nil {
		return in, nil, err
	}
	out.Question = sym
	if s, out.Then, err = expression(s); err != nil {
		return in, nil, err
	}
	if s, out.Colon, err = s.Literal(":"); err != nil {
		return in, nil, err
	}
	if s, out.Else, err = parseExpression(s, binaryOperators["?"].Priority); err != nil {
		return in, nil, err
	}
	return s, out, nil
}

func inside(in Input, lhs Expression) (Input, Expression, error) {
	out := &InsideExpression{Left: lhs}
	s, sym, err := in.Literal("inside")
	if err != nil {
		return in, nil, err
	}
	out.Inside = sym
	if s, out.Ranges, err = Braces(openRangeList)(s); err != nil {
		return in, nil, err
	}
	return s, out, nil
}

func operand(in Input) (Input, Expression, error) {
	return Alt(in,
		incOrDecPrefix,
		unaryExpression,
		incOrDecSuffix,
		primary,
	)
}

func unaryExpression(in Input) (Input, Expression, error) {
	return Rule(in, "unary_expression", func(in Input) (Input, Expression, error) {
		s, op, err := OneOfLiterals(unaryOperators...)(in)
		if err != nil {
			return in, nil, err
		}
		s, arg, err := operand(s)
		if err != nil {
			return in, nil, err
		}
		return s, &UnaryExpression{Op: op, Operand: arg}, nil
	})
}

func incOrDecPrefix(in Input) (Input, Expression, error) {
	return Rule(in, "inc_or_dec_expression", func(in Input) (Input, Expression, error) {
		s, op, err := OneOfLiterals("++", "--")(in)
		if err != nil {
			return in, nil, err
		}
		s, lvalue, err := variableLvalue(s)
		if err != nil {
			return in, nil, err
		}
		return s, &IncOrDecExpression{Prefix: &op, Lvalue: lvalue}, nil
	})
}

func incOrDecSuffix(in Input) (Input, Expression, error) {
	return Rule(in, "inc_or_dec_expression", func(in Input) (Input, Expression, error) {
		s, lvalue, err := variableLvalue(in)
		if err != nil {
			return in, nil, err
		}
		s, op, err := OneOfLiterals("++", "--")(s)
		if err != nil {
			return in, nil, err
		}
		return s, &IncOrDecExpression{Lvalue: lvalue, Suffix: &op}, nil
	})
}

func incOrDecExpression(in Input) (Input, IncOrDecExpression, error) {
	s, expr, err := Alt(in, incOrDecPrefix, incOrDecSuffix)
	if err != nil {
		return in, IncOrDecExpression{}, err
	}
	return s, *expr.(*IncOrDecExpression), nil
}

// OpenRangeList is a comma separated list of values and [low:high] ranges.
type OpenRangeList struct {
	List List[Node]
}

func (n OpenRangeList) Children() []Node { return nodes(n.List) }

// ValueRange is "[low:high]" in an open range list.
type ValueRange struct {
	Range Bracket[Range]
}

func (n ValueRange) Children() []Node { return nodes(n.Range) }

func valueRange(in Input) (Input, Node, error) {
	return Choice("value_range",
		As[Node](Map(Brackets(rangeExpression), func(r Bracket[Range]) *ValueRange { return &ValueRange{Range: r} })),
		As[Node](expression),
	)(in)
}

func openRangeList(in Input) (Input, OpenRangeList, error) {
	return Rule(in, "open_range_list", func(in Input) (Input, OpenRangeList, error) {
		s, list, err := CommaList(valueRange)(in)
		if err != nil {
			return in, OpenRangeList{}, err
		}
		return s, OpenRangeList{List: list}, nil
	})
}
