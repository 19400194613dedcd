package svparse

import (
	"reflect"

	"github.com/svparse/svparse/lexer"
)

// Node is a node in the concrete syntax tree.
//
// Children are returned in source order. Absent optional children are omitted, so walking the
// children of any node visits every byte it covers exactly once.
type Node interface {
	Children() []Node
}

// Leaf is a Node that covers source text directly.
type Leaf interface {
	Node
	// Extent of the leaf, including any trivia it owns.
	Extent() lexer.Span
}

// Symbol is a matched token: a keyword, punctuator, identifier or literal, together with the
// trivia that immediately follows it.
type Symbol struct {
	Span   lexer.Span
	Trivia []lexer.Trivia
}

func (s Symbol) Children() []Node { return nil }

// Extent covers the token and its trailing trivia.
func (s Symbol) Extent() lexer.Span {
	if len(s.Trivia) == 0 {
		return s.Span
	}
	return s.Span.Cover(s.Trivia[len(s.Trivia)-1].Span)
}

// Whitespace is trivia that precedes the first token of a file.
type Whitespace struct {
	Span   lexer.Span
	Trivia []lexer.Trivia
}

func (w Whitespace) Children() []Node { return nil }

func (w Whitespace) Extent() lexer.Span { return w.Span }

// Seq is an ordered repetition of nodes.
//
// A Seq contributes its elements directly to the children of the node containing it.
type Seq[T Node] []T

func (s Seq[T]) Children() []Node {
	out := make([]Node, 0, len(s))
	for _, n := range s {
		out = append(out, n)
	}
	return out
}

func (s Seq[T]) flatten() []Node { return s.Children() }

// List is a non-empty sequence of items separated by symbols, eg. comma separated identifiers.
//
// len(Seps) is always len(Items)-1.
type List[T Node] struct {
	Items []T
	Seps  []Symbol
}

func (l List[T]) Children() []Node {
	out := make([]Node, 0, len(l.Items)+len(l.Seps))
	for i, item := range l.Items {
		if i > 0 {
			out = append(out, l.Seps[i-1])
		}
		if !isNil(item) {
			out = append(out, item)
		}
	}
	return out
}

// Paren is an inner node wrapped in ( and ).
type Paren[T Node] struct {
	Open  Symbol
	Inner T
	Close Symbol
}

func (p Paren[T]) Children() []Node { return nodes(p.Open, p.Inner, p.Close) }

// Bracket is an inner node wrapped in [ and ].
type Bracket[T Node] struct {
	Open  Symbol
	Inner T
	Close Symbol
}

func (b Bracket[T]) Children() []Node { return nodes(b.Open, b.Inner, b.Close) }

// Brace is an inner node wrapped in { and }.
type Brace[T Node] struct {
	Open  Symbol
	Inner T
	Close Symbol
}

func (b Brace[T]) Children() []Node { return nodes(b.Open, b.Inner, b.Close) }

type flattener interface {
	flatten() []Node
}

// nodes collects children, dropping absent optional children and splicing sequences.
func nodes(in ...Node) []Node {
	out := make([]Node, 0, len(in))
	for _, n := range in {
		if isNil(n) {
			continue
		}
		if f, ok := n.(flattener); ok {
			out = append(out, f.flatten()...)
			continue
		}
		out = append(out, n)
	}
	return out
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// SpanOf returns the span from the first to the last leaf under n, trailing trivia included.
//
// The span of a node without leaves, such as an empty Seq, is the zero Span.
func SpanOf(n Node) lexer.Span {
	var (
		first, last lexer.Span
		found       bool
	)
	_ = Visit(n, func(n Node, next func() error) error {
		if leaf, ok := n.(Leaf); ok {
			if !found {
				first = leaf.Extent()
				found = true
			}
			last = leaf.Extent()
			return nil
		}
		return next()
	})
	if !found {
		return lexer.Span{}
	}
	return first.Cover(last)
}

// Leaves returns all leaves under n in source order.
func Leaves(n Node) []Leaf {
	var out []Leaf
	_ = Visit(n, func(n Node, next func() error) error {
		if leaf, ok := n.(Leaf); ok {
			out = append(out, leaf)
			return nil
		}
		return next()
	})
	return out
}
