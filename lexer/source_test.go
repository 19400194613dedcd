package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svparse/svparse/lexer"
)

func TestSourcePosition(t *testing.T) {
	src := lexer.NewSource("a.sv", "module m;\n  wire w;\nendmodule\n")
	tests := []struct {
		offset   int
		expected lexer.Position
	}{
		{0, lexer.Position{Filename: "a.sv", Offset: 0, Line: 1, Column: 1}},
		{9, lexer.Position{Filename: "a.sv", Offset: 9, Line: 1, Column: 10}},
		{10, lexer.Position{Filename: "a.sv", Offset: 10, Line: 2, Column: 1}},
		{14, lexer.Position{Filename: "a.sv", Offset: 14, Line: 2, Column: 5}},
		{-1, lexer.Position{Filename: "a.sv", Offset: 0, Line: 1, Column: 1}},
		{1000, lexer.Position{Filename: "a.sv", Offset: 30, Line: 4, Column: 1}},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, src.Position(test.offset), "offset %d", test.offset)
	}
}

func TestSourceOrigins(t *testing.T) {
	// Lines 2-3 of the expanded text came from line 10 of an included file.
	text := "`include \"defs.svh\"\nparameter P = 1;\nparameter Q = 2;\n"
	src := lexer.NewSource("top.sv", text,
		lexer.Origin{Offset: 20, Filename: "defs.svh", Line: 10, Column: 1},
	)
	require.Equal(t, lexer.Position{Filename: "top.sv", Offset: 0, Line: 1, Column: 1}, src.Position(0))
	require.Equal(t, lexer.Position{Filename: "defs.svh", Offset: 30, Line: 10, Column: 11}, src.Position(30))
	require.Equal(t, lexer.Position{Filename: "defs.svh", Offset: 37, Line: 11, Column: 1}, src.Position(37))
	require.Len(t, src.Origins(), 1)
}

func TestSourceOriginsSorted(t *testing.T) {
	src := lexer.NewSource("x.sv", "a\nb\nc\n",
		lexer.Origin{Offset: 4, Filename: "c.sv", Line: 7, Column: 1},
		lexer.Origin{Offset: 2, Filename: "b.sv", Line: 3, Column: 1},
	)
	require.Equal(t, "b.sv", src.Origins()[0].Filename)
	require.Equal(t, "b.sv:3:1", src.Position(2).String())
	require.Equal(t, "c.sv:7:1", src.Position(4).String())
}

func TestOriginValidate(t *testing.T) {
	require.NoError(t, lexer.Origin{Offset: 0, Filename: "a.sv", Line: 1, Column: 1}.Validate())

	err := lexer.Origin{Offset: -1, Filename: "a.sv", Line: 3, Column: 2}.Validate()
	var lerr *lexer.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, lexer.Position{Filename: "a.sv", Line: 3, Column: 2}, lerr.Pos)
	require.EqualError(t, err, "a.sv:3:2: origin offset must be >= 0 but is -1")

	err = lexer.Origin{Offset: 5, Filename: "b.svh"}.Validate()
	require.EqualError(t, err, "b.svh: origin at offset 5 must have a line and column >= 1")
}

func TestSourceSliceAndLine(t *testing.T) {
	src := lexer.NewSource("", "first\r\nsecond\nthird")
	require.Equal(t, "first", src.Line(2))
	require.Equal(t, "second", src.Line(7))
	require.Equal(t, "third", src.Line(src.Len()))
	require.Equal(t, "second", src.Slice(src.Span(7, 6)))
	require.Equal(t, "third", src.Slice(src.Span(14, 100)))
	require.Equal(t, "", src.Slice(src.Span(3, 0)))
}

func TestSpanCover(t *testing.T) {
	src := lexer.NewSource("", "abc def")
	a := src.Span(0, 3)
	b := src.Span(4, 3)
	require.Equal(t, "abc def", src.Slice(a.Cover(b)))
	require.Equal(t, a, a.Cover(src.Span(1, 1)))
	require.True(t, src.Span(2, 0).Empty())
}

func TestFormatError(t *testing.T) {
	require.Equal(t, "a.sv:1:2: oops", lexer.FormatError(lexer.Position{Filename: "a.sv", Line: 1, Column: 2}, "oops"))
	require.Equal(t, "3:4: oops", lexer.FormatError(lexer.Position{Line: 3, Column: 4}, "oops"))
	require.Equal(t, "oops", lexer.FormatError(lexer.Position{}, "oops"))
}
