package svparse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/svparse/svparse/lexer"
)

func newInput(text string, options ...Option) Input {
	return NewInput(lexer.NewSource("test.sv", text), MustNew(options...))
}

// parseAll runs p over text and requires that it consumes everything.
func parseAll[T any](t *testing.T, p Combinator[T], text string) (T, *SyntaxTree) {
	t.Helper()
	in := newInput(text)
	out, v, err := p(in)
	require.NoError(t, err)
	require.True(t, out.EOF(), "unconsumed input %q", out.Rest())
	return v, &SyntaxTree{Source: in.Source()}
}

func mustParse(t *testing.T, text string, options ...Option) *SyntaxTree {
	t.Helper()
	p := MustNew(append([]Option{AllowIncomplete()}, options...)...)
	tree, err := p.ParseString("test.sv", text)
	require.NoError(t, err)
	return tree
}

// tokens returns the text of n without surrounding trivia.
func tokens(tree *SyntaxTree, n Node) string {
	return strings.TrimSpace(tree.Text(n))
}

func TestInitialBlockingAssignment(t *testing.T) {
	tree := mustParse(t, "initial x = 1;")
	require.Len(t, tree.Root.Descriptions, 1)
	item := tree.Root.Descriptions[0].(*ModuleItemDescription).Item
	initial := item.(*InitialConstruct)
	require.Equal(t, "initial", tokens(tree, initial.Initial))
	stmt := initial.Body.(*Statement).Item.(*BlockingAssignmentStatement)
	assign := stmt.Assignment.(*BlockingAssignmentVariable)
	require.Equal(t, "x", tokens(tree, assign.Lvalue))
	require.Equal(t, "=", tokens(tree, assign.Eq))
	require.Nil(t, assign.Control)
	require.Equal(t, "1", tokens(tree, assign.Expr.(*Number)))
	require.Equal(t, lexer.Integral, assign.Expr.(*Number).Kind)
	require.Equal(t, ";", tokens(tree, stmt.Semi))
}

func TestOperatorAssignment(t *testing.T) {
	tree := mustParse(t, "a += b;")
	stmt := tree.Root.Descriptions[0].(*StatementDescription).Statement
	assign := stmt.Item.(*BlockingAssignmentStatement).Assignment.(*OperatorAssignment)
	require.Equal(t, "a", tokens(tree, assign.Lvalue))
	require.Equal(t, "+=", tokens(tree, assign.Op))
	require.Equal(t, "b", tokens(tree, assign.Expr))
}

func TestConstraintDeclarationFragment(t *testing.T) {
	tree := mustParse(t, "constraint c { x < 10; }")
	decl := tree.Root.Descriptions[0].(*ClassItemDescription).Item.(*ConstraintDeclaration)
	require.Equal(t, "c", tokens(tree, decl.Name))
	items := decl.Block.Braces.Inner
	require.Len(t, items, 1)
	constraint := items[0].(*ExpressionConstraint)
	require.Nil(t, constraint.Soft)
	require.Nil(t, constraint.Expr.Dist)
	binary := constraint.Expr.Expr.(*BinaryExpression)
	require.Equal(t, "x < 10", tokens(tree, binary))
	require.Equal(t, "<", tokens(tree, binary.Op))
}

func TestForceAndReleaseSelectedByKeyword(t *testing.T) {
	tree := mustParse(t, "force x = y;\nrelease x;\n")
	require.Len(t, tree.Root.Descriptions, 2)
	force := tree.Root.Descriptions[0].(*StatementDescription).Statement.Item.(*ProceduralContinuousAssignmentStatement)
	require.IsType(t, &ForceVariable{}, force.Assignment)
	require.Equal(t, "x = y", tokens(tree, force.Assignment.(*ForceVariable).Assignment))
	release := tree.Root.Descriptions[1].(*StatementDescription).Statement.Item.(*ProceduralContinuousAssignmentStatement)
	require.IsType(t, &ReleaseVariable{}, release.Assignment)
	require.Equal(t, "x", tokens(tree, release.Assignment.(*ReleaseVariable).Lvalue))
}

func TestMissingExpressionReportsFurthestPosition(t *testing.T) {
	_, err := MustNew(AllowIncomplete()).ParseString("test.sv", "initial x = ;")
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "%T: %v", err, err)
	require.Equal(t, lexer.Position{Filename: "test.sv", Offset: 12, Line: 1, Column: 13}, perr.Pos)
	require.Equal(t, ";", perr.Found)
	require.Contains(t, perr.Expected, "expression")
	require.Contains(t, perr.Stack, "initial_construct")
	require.Contains(t, err.Error(), `test.sv:1:13: unexpected ";" (expected `)
}

func TestTopLevelItemsRequireIncomplete(t *testing.T) {
	tree, err := MustNew().ParseString("test.sv", "initial x = 1;")
	var terr *TrailingInputError
	require.True(t, errors.As(err, &terr), "%T: %v", err, err)
	require.Equal(t, 0, terr.Pos.Offset)
	require.Equal(t, "initial", terr.Found)
	require.NotNil(t, tree)
	require.Same(t, tree, terr.Tree)
	require.Empty(t, tree.Root.Descriptions)
}

func TestTrailingInputAfterModule(t *testing.T) {
	text := "module m; endmodule\n)"
	tree, err := MustNew().ParseString("test.sv", text)
	var terr *TrailingInputError
	require.True(t, errors.As(err, &terr), "%T: %v", err, err)
	require.Equal(t, lexer.Position{Filename: "test.sv", Offset: 20, Line: 2, Column: 1}, terr.Pos)
	require.Equal(t, "module m; endmodule\n", tree.String())
	require.Equal(t, terr.Pos, tree.End)
}

func TestParseSV(t *testing.T) {
	tree, err := ParseSV("top.sv", "module top; endmodule", Defines{"X": nil}, []string{"inc"}, false, false)
	require.NoError(t, err)
	require.IsType(t, &ModuleDeclaration{}, tree.Root.Descriptions[0])
	require.Equal(t, lexer.Position{Filename: "top.sv", Offset: 21, Line: 1, Column: 22}, tree.End)

	_, err = ParseSV("frag.sv", "x = 1;", nil, nil, false, false)
	require.Error(t, err)
	_, err = ParseSV("frag.sv", "x = 1;", nil, nil, false, true)
	require.NoError(t, err)
}

func TestParseReader(t *testing.T) {
	tree, err := MustNew().Parse("r.sv", strings.NewReader("package p; endpackage : p"))
	require.NoError(t, err)
	pkg := tree.Root.Descriptions[0].(*PackageDeclaration)
	require.Equal(t, "p", tokens(tree, pkg.Name))
	require.Equal(t, ": p", tokens(tree, pkg.EndLabel))

	tree, err = MustNew().ParseBytes("b.sv", []byte("class c; endclass"))
	require.NoError(t, err)
	require.IsType(t, &ClassDeclaration{}, tree.Root.Descriptions[0])
}

func TestEmptyInput(t *testing.T) {
	tree := mustParse(t, "")
	require.Nil(t, tree.Root.Leading)
	require.Empty(t, tree.Root.Descriptions)

	tree = mustParse(t, "  // only a comment\n")
	require.NotNil(t, tree.Root.Leading)
	require.Equal(t, "  // only a comment\n", tree.String())
}

var roundTripInputs = []string{
	"initial x = 1;",
	"a += b;",
	"constraint c { x < 10; }",
	"force x = y;\nrelease x;",
	"// header\nmodule top #(parameter int W = 8) (input logic [W-1:0] d, output logic q);\n" +
		"  wire [3:0] w = 4'b1010;\n" +
		"  assign q = d[0] & w[1];\n" +
		"  always_ff @(posedge clk iff en) q <= #1 d;\n" +
		"  initial begin : init\n" +
		"    int i;\n" +
		"    for_loop: repeat (4) i++; /* inline */\n" +
		"    if (i > 2) $display(\"i=%0d\", i); else void'(f(i));\n" +
		"  end : init\n" +
		"endmodule : top\n",
	"class packet extends base #(8);\n" +
		"  rand bit [7:0] len;\n" +
		"  randc int unsigned mode;\n" +
		"  constraint c_len { soft len inside {[1:4], 8}; solve mode before len; }\n" +
		"  constraint c_dist { mode dist { 0 := 1, [1:3] :/ 4 }; }\n" +
		"  constraint c_impl { mode == 0 -> { len < 4; } if (len > 2) mode != 1; else { mode == 1; } }\n" +
		"  constraint c_each { foreach (data[i, j]) data[i][j] < 10; unique { a, b }; disable soft len; }\n" +
		"  extern constraint c_ext;\n" +
		"  extern function int size();\n" +
		"  virtual function void post_randomize(); super.post_randomize(); endfunction\n" +
		"  task automatic run(); pkt = new(1); arr = new[4]; endtask\n" +
		"endclass\n" +
		"constraint packet::c_ext { len > 0; }\n",
	"`timescale 1ns/1ps\npackage p;\n  localparam W = 4;\n  typedef_t x;\nendpackage\n",
	"obj.randomize() with { x < y; };\nstd::randomize(a, b);\n",
}

func TestRoundTrip(t *testing.T) {
	for _, text := range roundTripInputs {
		tree := mustParse(t, text)
		require.Equal(t, text, tree.String())
		// Every node covers exactly the text of its children.
		err := Visit(tree.Root, func(n Node, next func() error) error {
			require.Equal(t, tree.Source.Slice(SpanOf(n)), tree.Text(n), "%s", NodeName(n))
			return next()
		})
		require.NoError(t, err)
	}
}

func TestRoundTripFiles(t *testing.T) {
	files, err := filepath.Glob("testdata/*.sv")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			data, err := os.ReadFile(file)
			require.NoError(t, err)
			tree, err := MustNew().ParseBytes(file, data)
			require.NoError(t, err)
			require.Equal(t, string(data), tree.String())
			require.Equal(t, len(data), SpanOf(tree.Root).End())
		})
	}
}

func TestDeterministic(t *testing.T) {
	for _, text := range roundTripInputs {
		a := mustParse(t, text)
		b := mustParse(t, text)
		require.Equal(t, repr.String(a.Root, repr.Indent("  ")), repr.String(b.Root, repr.Indent("  ")))
	}
}

func TestMaxDepth(t *testing.T) {
	text := "initial x = " + strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200) + ";"
	_, err := MustNew(AllowIncomplete(), MaxDepth(50)).ParseString("deep.sv", text)
	var derr *DepthError
	require.True(t, errors.As(err, &derr), "%T: %v", err, err)
	require.Equal(t, 50, derr.Depth)
	require.Contains(t, err.Error(), "maximum nesting depth 50 exceeded")

	tree, err := MustNew(AllowIncomplete(), MaxDepth(0)).ParseString("deep.sv", text)
	require.NoError(t, err)
	require.Equal(t, text, tree.String())

	_, err = New(MaxDepth(-1))
	require.Error(t, err)
}

func TestDeeplyNestedSelects(t *testing.T) {
	tests := []string{
		"m[a[b[c[d[e[f[g[i]]]]]]]] = 1;",
		"x = " + strings.Repeat("a[", 12) + "1" + strings.Repeat("]", 12) + ";",
		"x = " + strings.Repeat("a[", 12) + "1:0" + strings.Repeat("]", 12) + ";",
		"x = " + strings.Repeat("a[b+", 10) + "1" + strings.Repeat("]", 10) + " ? y : z;",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			start := time.Now()
			tree := mustParse(t, text)
			require.Less(t, time.Since(start), time.Second)
			require.Equal(t, text, tree.String())
			assign, ok := First[*BlockingAssignmentVariable](tree.Root)
			require.True(t, ok)
			require.Equal(t, strings.TrimSuffix(text, ";"), tokens(tree, assign))
		})
	}
}

func TestByteOrderMark(t *testing.T) {
	text := "\ufeffmodule m; endmodule"
	tree, err := MustNew().ParseString("bom.sv", text)
	require.NoError(t, err)
	require.Equal(t, text, tree.String())
	require.Equal(t, "\ufeff", tree.Text(tree.Root.Leading))
	module := tree.Root.Descriptions[0].(*ModuleDeclaration)
	require.Equal(t, 3, SpanOf(module).Pos.Offset)
}

func TestOriginsMapErrorPositions(t *testing.T) {
	text := "module m;\n  initial x = ;\nendmodule\n"
	p := MustNew(Origins(lexer.Origin{Offset: 10, Filename: "body.svh", Line: 40, Column: 1}))
	_, err := p.ParseString("m.sv", text)
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "%T: %v", err, err)
	require.Equal(t, lexer.Position{Filename: "body.svh", Offset: 24, Line: 40, Column: 15}, perr.Pos)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseReadFailure(t *testing.T) {
	_, err := MustNew().Parse("broken.sv", failingReader{})
	var perr Error
	require.True(t, errors.As(err, &perr), "%T: %v", err, err)
	require.Equal(t, "broken.sv", perr.Position().Filename)
	require.EqualError(t, err, "broken.sv: disk on fire")

	tree, err := MustNew().Parse("m.sv", strings.NewReader("module m; endmodule"))
	require.NoError(t, err)
	require.Len(t, tree.Root.Descriptions, 1)
}

func TestInvalidOrigins(t *testing.T) {
	_, err := New(Origins(lexer.Origin{Offset: 4, Filename: "body.svh", Line: 0, Column: 1}))
	var lerr *lexer.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, "body.svh", lerr.Pos.Filename)
}

func TestConcurrentParses(t *testing.T) {
	p := MustNew(AllowIncomplete())
	done := make(chan error)
	for _, text := range roundTripInputs {
		text := text
		go func() {
			tree, err := p.ParseString("test.sv", text)
			if err == nil && tree.String() != text {
				err = errors.New("round trip mismatch")
			}
			done <- err
		}()
	}
	for range roundTripInputs {
		require.NoError(t, <-done)
	}
}
