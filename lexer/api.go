package lexer

import (
	"fmt"
)

// Position of a byte in a Source.
//
// Offset is always a byte offset into the Source text. Filename, Line and Column refer to the
// originating file, which differs from the Source filename when the text was produced by a
// preprocessor that recorded Origins.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// Span is a contiguous run of Len bytes starting at Pos.
type Span struct {
	Pos Position
	Len int
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int { return s.Pos.Offset + s.Len }

// Empty returns true if the span covers no bytes.
func (s Span) Empty() bool { return s.Len == 0 }

// Cover returns a span starting at s and extending to the end of o.
//
// o must not start before s.
func (s Span) Cover(o Span) Span {
	if o.End() <= s.End() {
		return s
	}
	return Span{Pos: s.Pos, Len: o.End() - s.Pos.Offset}
}

func (s Span) String() string {
	return fmt.Sprintf("%s+%d", s.Pos, s.Len)
}

func (s Span) GoString() string {
	return fmt.Sprintf("Span{Pos: %#v, Len: %d}", s.Pos, s.Len)
}
