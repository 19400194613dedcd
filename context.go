package svparse

import (
	"io"
	"slices"

	"github.com/svparse/svparse/lexer"
)

type frame struct {
	name  string
	start int
}

// State for a single parse.
type parseContext struct {
	src        *lexer.Source
	includes   bool
	incomplete bool
	maxDepth   int
	trace      io.Writer

	stack []frame

	// Expression results by offset. Nested selects and the candidates of ambiguous statements
	// reparse the same expressions many times over, and the result only depends on the offset.
	expressions map[int]memoized

	// Diagnostics for the furthest offset any rule failed at.
	furthest int
	expected []string
	failed   []string
}

func newParseContext(src *lexer.Source, p *Parser) *parseContext {
	ctx := &parseContext{src: src, furthest: -1, expressions: map[int]memoized{}}
	if p != nil {
		ctx.includes = p.ignoreInclude
		ctx.incomplete = p.allowIncomplete
		ctx.maxDepth = p.maxDepth
		ctx.trace = p.trace
	}
	return ctx
}

// Input is an immutable cursor into the source being parsed.
//
// Parsers receive an Input and return the Input following whatever they consumed. Backtracking is
// simply reusing an earlier Input.
type Input struct {
	ctx *parseContext
	off int
}

// NewInput returns an Input positioned at the start of src, using the configuration of p.
//
// p may be nil, in which case defaults are used.
func NewInput(src *lexer.Source, p *Parser) Input {
	return Input{ctx: newParseContext(src, p)}
}

// Offset of the cursor in bytes.
func (in Input) Offset() int { return in.off }

// Position of the cursor.
func (in Input) Position() lexer.Position { return in.ctx.src.Position(in.off) }

// Source being parsed.
func (in Input) Source() *lexer.Source { return in.ctx.src }

// Rest of the input text.
func (in Input) Rest() string { return in.ctx.src.Text[in.off:] }

// EOF returns true if all input has been consumed.
func (in Input) EOF() bool { return in.off >= len(in.ctx.src.Text) }

// Incomplete returns true if bare module items, class items and statements may appear at the top
// level.
func (in Input) Incomplete() bool { return in.ctx.incomplete }

// Trivia consumes trivia at the cursor.
func (in Input) Trivia() (Input, *Whitespace) {
	trivia, next := in.ctx.src.Trivia(in.off, in.ctx.includes)
	if len(trivia) == 0 {
		return in, nil
	}
	return Input{in.ctx, next}, &Whitespace{Span: in.ctx.src.Span(in.off, next-in.off), Trivia: trivia}
}

// Match a token of the length returned by scan, followed by any trivia.
//
// "expected" describes the token in diagnostics.
func (in Input) Match(expected string, scan func(text string, offset int) int) (Input, Symbol, error) {
	n := scan(in.ctx.src.Text, in.off)
	if n <= 0 {
		return in, Symbol{}, in.Fail(expected)
	}
	return in.token(n)
}

func (in Input) token(n int) (Input, Symbol, error) {
	span := in.ctx.src.Span(in.off, n)
	trivia, next := in.ctx.src.Trivia(in.off+n, in.ctx.includes)
	return Input{in.ctx, next}, Symbol{Span: span, Trivia: trivia}, nil
}

// Fail records a failure to match "expected" at the cursor and returns a recoverable *Failure.
//
// Only failures at the furthest offset reached are retained for error reporting. For each such
// failure the outermost rule that started at that offset is reported, as that is the most useful
// description of what was expected there.
func (in Input) Fail(expected string) error {
	ctx := in.ctx
	if in.off > ctx.furthest {
		ctx.furthest = in.off
		ctx.expected = ctx.expected[:0]
	}
	if in.off == ctx.furthest {
		name := expected
		// The root rule always starts at the beginning of a file, so is not informative.
		for i := 1; i < len(ctx.stack); i++ {
			if ctx.stack[i].start == in.off {
				name = ctx.stack[i].name
				break
			}
		}
		if !slices.Contains(ctx.expected, name) {
			ctx.expected = append(ctx.expected, name)
		}
		ctx.failed = ctx.failed[:0]
		for _, f := range ctx.stack {
			ctx.failed = append(ctx.failed, f.name)
		}
	}
	return &Failure{Offset: in.off, Expected: expected}
}

// Rule runs p as the named grammar rule.
//
// The rule name is used for diagnostics and tracing. On failure the input is left untouched.
func Rule[T any](in Input, name string, p Combinator[T]) (Input, T, error) {
	var zero T
	ctx := in.ctx
	if ctx.maxDepth > 0 && len(ctx.stack) >= ctx.maxDepth {
		return in, zero, &DepthError{Depth: ctx.maxDepth, Rule: name, Pos: in.Position()}
	}
	ctx.stack = append(ctx.stack, frame{name: name, start: in.off})
	if ctx.trace != nil {
		ctx.traceEnter(name, in)
	}
	out, value, err := p(in)
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	if ctx.trace != nil {
		ctx.traceLeave(name, in, out, err)
	}
	if err != nil {
		return in, zero, err
	}
	return out, value, nil
}

type memoized struct {
	out  Input
	expr Expression
	err  error
}

// memo returns the result of p at in, parsing and remembering it on first use.
//
// Only successes and recoverable failures are remembered. Anything else aborts the parse.
func (ctx *parseContext) memo(in Input, p Combinator[Expression]) (Input, Expression, error) {
	if m, ok := ctx.expressions[in.off]; ok {
		return m.out, m.expr, m.err
	}
	out, expr, err := p(in)
	if err == nil || Recoverable(err) {
		ctx.expressions[in.off] = memoized{out: out, expr: expr, err: err}
	}
	return out, expr, err
}
