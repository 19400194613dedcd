package svparse

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		literal string
		text    string
		rest    string
		fail    bool
	}{
		{literal: "begin", text: "begin end", rest: "end"},
		{literal: "begin", text: "beginning", fail: true},
		{literal: "begin", text: "begin$x", fail: true},
		{literal: "<", text: "< b", rest: "b"},
		{literal: "<", text: "<= b", fail: true},
		{literal: "<=", text: "<=b", rest: "b"},
		{literal: "-", text: "->", fail: true},
		{literal: ";", text: ";// trailing\n", rest: ""},
		{literal: "end", text: "", fail: true},
	}
	for _, test := range tests {
		t.Run(test.literal+" "+test.text, func(t *testing.T) {
			in := newInput(test.text)
			out, sym, err := Literal(test.literal)(in)
			if test.fail {
				require.Error(t, err)
				require.True(t, Recoverable(err))
				require.Equal(t, 0, out.Offset())
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.literal, in.Source().Slice(sym.Span))
			require.Equal(t, test.rest, out.Rest())
		})
	}
}

func TestOneOfLiteralsFirstMatchWins(t *testing.T) {
	in := newInput("always_ff @(posedge clk)")
	out, sym, err := OneOfLiterals("always", "always_ff")(in)
	require.NoError(t, err)
	require.Equal(t, "always_ff", in.Source().Slice(sym.Span))
	require.Equal(t, "@(posedge clk)", out.Rest())

	_, _, err = OneOfLiterals("posedge", "negedge")(in)
	var failure *Failure
	require.True(t, errors.As(err, &failure))
	require.Equal(t, `"posedge"`, failure.Expected)
}

func TestOptDoesNotConsumeOnFailure(t *testing.T) {
	for _, text := range []string{"", "y", "x1", "= x"} {
		in := newInput(text)
		out, v, err := Opt(Literal("x"))(in)
		require.NoError(t, err, text)
		require.Nil(t, v, text)
		require.Equal(t, in.Offset(), out.Offset(), text)
	}
}

// absent runs p through both Opt and Maybe, requires that neither produced a value, and returns
// where each left the input.
func absent[T any](p Combinator[T]) func(t *testing.T, in Input) []Input {
	return func(t *testing.T, in Input) []Input {
		t.Helper()
		optOut, ptr, err := Opt(p)(in)
		require.NoError(t, err, in.Rest())
		require.Nil(t, ptr, in.Rest())
		maybeOut, v, err := Maybe(p)(in)
		require.NoError(t, err, in.Rest())
		require.Zero(t, v, in.Rest())
		return []Input{optOut, maybeOut}
	}
}

func TestOptionalNeverConsumesOnMismatch(t *testing.T) {
	var (
		closers  = []string{")", "]", "}", ";", ",", "=", "*", "/", "%", "==", "?", ":", "<=", "=>", "*)"}
		openers  = []string{"(", "[", "{", "-", "!", "~", "++", "'{", "#", "@", "."}
		digits   = []string{"0", "1", "42", "8'hff", "1.5", "10ns"}
		keywords = []string{"begin", "end", "endmodule", "module", "if", "else", "endclass", "constraint", "foreach", "int", "this", "null"}
		tails    = []string{"", "x", "x;", "1", "a = b;", "( y )", "end"}
	)
	tests := []struct {
		name     string
		prefixes [][]string
		check    func(t *testing.T, in Input) []Input
	}{
		{"literal", [][]string{closers, openers, digits, keywords}, absent(Literal("x"))},
		{"keyword", [][]string{closers, openers, digits, keywords[1:]}, absent(Literal("begin"))},
		{"one of", [][]string{closers, openers, digits, keywords}, absent(OneOfLiterals("x", "y", "always"))},
		{"identifier", [][]string{closers, openers, digits, keywords}, absent(identifier)},
		{"number", [][]string{closers, openers[:2], keywords}, absent(number)},
		{"expression", [][]string{closers, keywords[:9]}, absent(expression)},
		{"range", [][]string{closers, keywords[:9]}, absent(rangeExpression)},
		{"identifiers", [][]string{closers, openers, digits, keywords}, absent(Many1(identifier))},
	}
	rng := rand.New(rand.NewSource(1))
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			texts := []string{""}
			for i := 0; i < 100; i++ {
				class := test.prefixes[rng.Intn(len(test.prefixes))]
				text := class[rng.Intn(len(class))]
				if tail := tails[rng.Intn(len(tails))]; tail != "" {
					text += " " + tail
				}
				texts = append(texts, text)
			}
			for _, text := range texts {
				in := newInput(text)
				for _, out := range test.check(t, in) {
					require.Equal(t, in.Offset(), out.Offset(), "%q", text)
				}
			}
		})
	}
}

func TestOptRestoresAfterPartialMatch(t *testing.T) {
	// The range matches "a" before failing to find ":", and Opt rewinds to the start.
	in := newInput("a b")
	out, v, err := Opt(rangeExpression)(in)
	require.NoError(t, err)
	require.Nil(t, v)
	require.Equal(t, "a b", out.Rest())
}

func TestCutIsNotAbsorbed(t *testing.T) {
	committed := Cut(Literal("x"))
	in := newInput("y")

	_, _, err := committed(in)
	var commit *CommitError
	require.True(t, errors.As(err, &commit), "%T", err)
	require.Equal(t, `"x"`, commit.Failure.Expected)
	require.Equal(t, "test.sv:1:1: expected \"x\"", err.Error())

	_, _, err = Opt(committed)(in)
	require.True(t, errors.As(err, &commit))

	_, _, err = Many0(committed)(in)
	require.True(t, errors.As(err, &commit))

	_, _, err = Alt(in, committed, Literal("y"))
	require.True(t, errors.As(err, &commit))
	require.False(t, Recoverable(err))
}

func TestMany0(t *testing.T) {
	v, tree := parseAll(t, Many0(identifier), "a b c")
	require.Len(t, v, 3)
	require.Equal(t, "c", tokens(tree, v[2]))

	in := newInput("1 2")
	out, v, err := Many0(identifier)(in)
	require.NoError(t, err)
	require.Empty(t, v)
	require.Equal(t, 0, out.Offset())
}

func TestMany0StopsOnEmptyMatch(t *testing.T) {
	// Opt always succeeds, so only the no-progress rule ends the repetition.
	in := newInput("a b ;")
	out, v, err := Many0(Opt(identifier))(in)
	require.NoError(t, err)
	require.Len(t, v, 2)
	require.Equal(t, ";", out.Rest())

	out, v, err = Many0(Opt(identifier))(newInput(";"))
	require.NoError(t, err)
	require.Empty(t, v)
	require.Equal(t, 0, out.Offset())
}

func TestMany1(t *testing.T) {
	_, _, err := Many1(identifier)(newInput(";"))
	require.True(t, Recoverable(err))

	v, _ := parseAll(t, Many1(identifier), "a")
	require.Len(t, v, 1)
}

func TestAltOrderDecides(t *testing.T) {
	identFirst := func(in Input) (Input, Node, error) {
		return Alt(in, As[Node](identifier), As[Node](hierarchicalIdentifier))
	}
	hierFirst := func(in Input) (Input, Node, error) {
		return Alt(in, As[Node](hierarchicalIdentifier), As[Node](identifier))
	}

	out, n, err := identFirst(newInput("a.b"))
	require.NoError(t, err)
	require.IsType(t, Identifier{}, n)
	require.Equal(t, ".b", out.Rest())

	out, n, err = hierFirst(newInput("a.b"))
	require.NoError(t, err)
	require.IsType(t, HierarchicalIdentifier{}, n)
	require.True(t, out.EOF())
}

func TestChoiceNamesFailure(t *testing.T) {
	in := newInput("c")
	_, _, err := Choice("letter", Literal("a"), Literal("b"))(in)
	var failure *Failure
	require.True(t, errors.As(err, &failure))
	require.Equal(t, "letter", failure.Expected)
}

func TestListOf(t *testing.T) {
	in := newInput("a, b, ;")
	out, list, err := CommaList(identifier)(in)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.Len(t, list.Seps, 1)
	require.Equal(t, ", ;", out.Rest())
	require.Len(t, list.Children(), 3)

	_, _, err = CommaList(identifier)(newInput(", a"))
	require.True(t, Recoverable(err))

	v, tree := parseAll(t, ListOf(Literal("or"), identifier), "a or b or c")
	require.Len(t, v.Items, 3)
	require.Equal(t, "a or b or c", tree.Text(v))
}

func TestDelimited(t *testing.T) {
	v, tree := parseAll(t, Parens(identifier), "( a )")
	require.Equal(t, "a ", tree.Text(v.Inner))
	require.Len(t, v.Children(), 3)

	for _, text := range []string{"(a", "a)", "()", "[a)"} {
		out, _, err := Parens(identifier)(newInput(text))
		require.True(t, Recoverable(err), text)
		require.Equal(t, 0, out.Offset(), text)
	}

	b, _ := parseAll(t, Brackets(identifier), "[a]")
	require.Len(t, b.Children(), 3)
	c, _ := parseAll(t, Braces(Opt(identifier)), "{}")
	require.Nil(t, c.Inner)
	require.Len(t, c.Children(), 2)
}

func TestMapAndAs(t *testing.T) {
	p := Map(identifier, func(id Identifier) *Identifier { return &id })
	v, tree := parseAll(t, As[Node](p), "name")
	require.IsType(t, &Identifier{}, v)
	require.Equal(t, "name", tree.Text(v))
}

func TestFailureTracksFurthestOffset(t *testing.T) {
	in := newInput("a b c")
	_, _, err := Rule(in, "outer", func(in Input) (Input, Node, error) {
		s, _, err := Many0(identifier)(in)
		if err != nil {
			return in, nil, err
		}
		return s, nil, s.Fail("semicolon")
	})
	require.True(t, Recoverable(err))
	require.Equal(t, 5, in.ctx.furthest)
	require.Equal(t, []string{"identifier", "semicolon"}, in.ctx.expected)
}
