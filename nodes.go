package svparse

import (
	"strconv"

	"github.com/svparse/svparse/lexer"
)

// A Combinator consumes a prefix of its Input and produces a value.
//
// On success it returns the Input following the consumed text. On failure it returns its original
// Input and an error: a *Failure if alternatives may still be attempted, or any other error to
// abort the parse.
type Combinator[T any] func(in Input) (Input, T, error)

// Literal matches a keyword or punctuator exactly.
//
// Words only match on identifier boundaries, and punctuators only match if no longer punctuator
// starts at the same position, so "<" does not match the start of "<=".
func Literal(text string) Combinator[Symbol] {
	return func(in Input) (Input, Symbol, error) { return in.Literal(text) }
}

// Literal matches text at the cursor. See Literal.
func (in Input) Literal(text string) (Input, Symbol, error) {
	src := in.ctx.src.Text
	if len(src)-in.off < len(text) || src[in.off:in.off+len(text)] != text {
		return in, Symbol{}, in.Fail(strconv.Quote(text))
	}
	if lexer.IsWordLike(text) {
		if end := in.off + len(text); end < len(src) && lexer.IsIdentChar(src[end]) {
			return in, Symbol{}, in.Fail(strconv.Quote(text))
		}
	} else if lexer.ScanPunct(src, in.off) != len(text) {
		return in, Symbol{}, in.Fail(strconv.Quote(text))
	}
	return in.token(len(text))
}

// OneOfLiterals matches the first of the given literals.
func OneOfLiterals(texts ...string) Combinator[Symbol] {
	return func(in Input) (Input, Symbol, error) {
		for _, text := range texts {
			if out, sym, err := in.Literal(text); err == nil {
				return out, sym, nil
			}
		}
		return in, Symbol{}, &Failure{Offset: in.off, Expected: strconv.Quote(texts[0])}
	}
}

// Map the value produced by p.
func Map[T, U any](p Combinator[T], f func(T) U) Combinator[U] {
	return func(in Input) (Input, U, error) {
		out, v, err := p(in)
		if err != nil {
			var zero U
			return in, zero, err
		}
		return out, f(v), nil
	}
}

// As converts the value produced by p to the interface type I.
//
// The dynamic type of p's value must implement I.
func As[I, T any](p Combinator[T]) Combinator[I] {
	return func(in Input) (Input, I, error) {
		out, v, err := p(in)
		if err != nil {
			var zero I
			return in, zero, err
		}
		return out, any(v).(I), nil
	}
}

// Opt makes p optional.
//
// A recoverable failure of p produces nil without consuming anything, regardless of how much p
// matched before failing. Any other error is propagated.
func Opt[T any](p Combinator[T]) Combinator[*T] {
	return func(in Input) (Input, *T, error) {
		out, v, err := p(in)
		if err != nil {
			if Recoverable(err) {
				return in, nil, nil
			}
			return in, nil, err
		}
		return out, &v, nil
	}
}

// Maybe is like Opt, but produces the zero value of T when p does not match.
//
// It is intended for optional variant children, where the zero value is a nil interface.
func Maybe[T any](p Combinator[T]) Combinator[T] {
	return func(in Input) (Input, T, error) {
		out, v, err := p(in)
		if err != nil {
			var zero T
			if Recoverable(err) {
				return in, zero, nil
			}
			return in, zero, err
		}
		return out, v, nil
	}
}

// Many0 matches p zero or more times.
//
// Repetition ends at the first recoverable failure of p, or as soon as p succeeds without consuming
// any input. In the latter case the empty match is not included.
func Many0[T Node](p Combinator[T]) Combinator[Seq[T]] {
	return func(in Input) (Input, Seq[T], error) {
		var out Seq[T]
		cursor := in
		for {
			next, v, err := p(cursor)
			if err != nil {
				if Recoverable(err) {
					return cursor, out, nil
				}
				return in, nil, err
			}
			if next.off == cursor.off {
				return cursor, out, nil
			}
			out = append(out, v)
			cursor = next
		}
	}
}

// Many1 matches p one or more times.
func Many1[T Node](p Combinator[T]) Combinator[Seq[T]] {
	many := Many0(p)
	return func(in Input) (Input, Seq[T], error) {
		out, first, err := p(in)
		if err != nil {
			return in, nil, err
		}
		out, rest, err := many(out)
		if err != nil {
			return in, nil, err
		}
		return out, append(Seq[T]{first}, rest...), nil
	}
}

// ListOf matches one or more p separated by sep.
//
// A separator is only consumed if an item follows it.
func ListOf[T Node](sep Combinator[Symbol], p Combinator[T]) Combinator[List[T]] {
	return func(in Input) (Input, List[T], error) {
		cursor, first, err := p(in)
		if err != nil {
			return in, List[T]{}, err
		}
		out := List[T]{Items: []T{first}}
		for {
			afterSep, s, err := sep(cursor)
			if err != nil {
				if Recoverable(err) {
					return cursor, out, nil
				}
				return in, List[T]{}, err
			}
			next, item, err := p(afterSep)
			if err != nil {
				if Recoverable(err) {
					return cursor, out, nil
				}
				return in, List[T]{}, err
			}
			out.Seps = append(out.Seps, s)
			out.Items = append(out.Items, item)
			cursor = next
		}
	}
}

// CommaList matches one or more p separated by commas.
func CommaList[T Node](p Combinator[T]) Combinator[List[T]] { return ListOf(Literal(","), p) }

// Parens matches p wrapped in ( and ).
func Parens[T Node](p Combinator[T]) Combinator[Paren[T]] {
	return func(in Input) (Input, Paren[T], error) {
		var (
			out Paren[T]
			err error
		)
		s := in
		if s, out.Open, err = s.Literal("("); err != nil {
			return in, out, err
		}
		if s, out.Inner, err = p(s); err != nil {
			return in, Paren[T]{}, err
		}
		if s, out.Close, err = s.Literal(")"); err != nil {
			return in, Paren[T]{}, err
		}
		return s, out, nil
	}
}

// Brackets matches p wrapped in [ and ].
func Brackets[T Node](p Combinator[T]) Combinator[Bracket[T]] {
	return func(in Input) (Input, Bracket[T], error) {
		var (
			out Bracket[T]
			err error
		)
		s := in
		if s, out.Open, err = s.Literal("["); err != nil {
			return in, out, err
		}
		if s, out.Inner, err = p(s); err != nil {
			return in, Bracket[T]{}, err
		}
		if s, out.Close, err = s.Literal("]"); err != nil {
			return in, Bracket[T]{}, err
		}
		return s, out, nil
	}
}

// Braces matches p wrapped in { and }.
func Braces[T Node](p Combinator[T]) Combinator[Brace[T]] {
	return func(in Input) (Input, Brace[T], error) {
		var (
			out Brace[T]
			err error
		)
		s := in
		if s, out.Open, err = s.Literal("{"); err != nil {
			return in, out, err
		}
		if s, out.Inner, err = p(s); err != nil {
			return in, Brace[T]{}, err
		}
		if s, out.Close, err = s.Literal("}"); err != nil {
			return in, Brace[T]{}, err
		}
		return s, out, nil
	}
}

// Cut commits to p: a recoverable failure of p becomes a *CommitError, which enclosing optional,
// repetition and alternation combinators propagate rather than absorb.
func Cut[T any](p Combinator[T]) Combinator[T] {
	return func(in Input) (Input, T, error) {
		out, v, err := p(in)
		if err != nil {
			if failure, ok := err.(*Failure); ok {
				return in, v, &CommitError{Failure: failure, Pos: in.ctx.src.Position(failure.Offset)}
			}
			return in, v, err
		}
		return out, v, nil
	}
}

// Alt tries each candidate in order and returns the result of the first that matches.
//
// Order matters: when two candidates can both match, the earlier one wins even if a later one
// would consume more input, so more specific candidates must come first.
func Alt[T any](in Input, candidates ...Combinator[T]) (Input, T, error) {
	var zero T
	for _, candidate := range candidates {
		out, v, err := candidate(in)
		if err == nil {
			return out, v, nil
		}
		if !Recoverable(err) {
			return in, zero, err
		}
	}
	return in, zero, &Failure{Offset: in.off, Expected: "alternative"}
}

// Choice is a named rule that matches the first of its candidates. See Alt.
func Choice[T any](name string, candidates ...Combinator[T]) Combinator[T] {
	return func(in Input) (Input, T, error) {
		return Rule(in, name, func(in Input) (Input, T, error) {
			out, v, err := Alt(in, candidates...)
			if failure, ok := err.(*Failure); ok {
				failure.Expected = name
			}
			return out, v, err
		})
	}
}
