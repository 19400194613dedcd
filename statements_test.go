package svparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// parseStatement parses text as the body of an initial construct.
func parseStatement(t *testing.T, text string) (*SyntaxTree, *Statement) {
	t.Helper()
	tree := mustParse(t, "initial "+text)
	initial, ok := First[*InitialConstruct](tree.Root)
	require.True(t, ok)
	stmt, ok := initial.Body.(*Statement)
	require.True(t, ok, "%T", initial.Body)
	require.Equal(t, text, tree.Text(stmt))
	return tree, stmt
}

func TestStatementVariants(t *testing.T) {
	tests := []struct {
		text    string
		item    string
		variant string
	}{
		{text: "x = 1;", item: "BlockingAssignmentStatement", variant: "BlockingAssignmentVariable"},
		{text: "x = #5 y;", item: "BlockingAssignmentStatement", variant: "BlockingAssignmentVariable"},
		{text: "{a, b} = c;", item: "BlockingAssignmentStatement", variant: "BlockingAssignmentVariable"},
		{text: "arr = new[4];", item: "BlockingAssignmentStatement", variant: "BlockingAssignmentNonrangeVariable"},
		{text: "arr = new[4](arr);", item: "BlockingAssignmentStatement", variant: "BlockingAssignmentNonrangeVariable"},
		{text: "pkt = new;", item: "BlockingAssignmentStatement", variant: "BlockingAssignmentHierarchicalVariable"},
		{text: "this.pkt = new(1, .mode(2));", item: "BlockingAssignmentStatement", variant: "BlockingAssignmentHierarchicalVariable"},
		{text: "x += 2;", item: "BlockingAssignmentStatement", variant: "OperatorAssignment"},
		{text: "x <<<= 1;", item: "BlockingAssignmentStatement", variant: "OperatorAssignment"},
		{text: "q <= d;", item: "NonblockingAssignmentStatement"},
		{text: "q <= repeat (2) @(posedge clk) d;", item: "NonblockingAssignmentStatement"},
		{text: "assign x = 1;", item: "ProceduralContinuousAssignmentStatement", variant: "AssignAssignment"},
		{text: "deassign x;", item: "ProceduralContinuousAssignmentStatement", variant: "DeassignAssignment"},
		{text: "force x[0] = 1;", item: "ProceduralContinuousAssignmentStatement", variant: "ForceVariable"},
		{text: "release x;", item: "ProceduralContinuousAssignmentStatement", variant: "ReleaseVariable"},
		{text: "++i;", item: "IncOrDecStatement"},
		{text: "i--;", item: "IncOrDecStatement"},
		{text: "if (a) b = 1;", item: "ConditionalStatement"},
		{text: "unique if (a) b = 1; else ;", item: "ConditionalStatement"},
		{text: "forever #5 clk = ~clk;", item: "ForeverStatement"},
		{text: "repeat (3) @(posedge clk);", item: "RepeatStatement"},
		{text: "while (i < 4) i++;", item: "WhileStatement"},
		{text: "foreach (arr[i]) arr[i] = 0;", item: "ForeachStatement"},
		{text: "return x + 1;", item: "JumpStatement"},
		{text: "break;", item: "JumpStatement"},
		{text: "begin end", item: "SeqBlock"},
		{text: "#1ns x = 0;", item: "TimingControlStatement"},
		{text: "@* x = a;", item: "TimingControlStatement"},
		{text: "@(*) x = a;", item: "TimingControlStatement"},
		{text: "@ev x = a;", item: "TimingControlStatement"},
		{text: "$display(\"%d\", x);", item: "CallStatement"},
		{text: "void'(f(x));", item: "VoidCastStatement"},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			_, stmt := parseStatement(t, test.text)
			require.Equal(t, test.item, NodeName(stmt.Item))
			if test.variant == "" {
				return
			}
			var variant Node
			switch item := stmt.Item.(type) {
			case *BlockingAssignmentStatement:
				variant = item.Assignment
			case *ProceduralContinuousAssignmentStatement:
				variant = item.Assignment
			}
			require.Equal(t, test.variant, NodeName(variant))
		})
	}
}

func TestStatementLabel(t *testing.T) {
	tree, stmt := parseStatement(t, "lbl: x = 1;")
	require.NotNil(t, stmt.Label)
	require.Equal(t, "lbl", tokens(tree, stmt.Label.Name))
}

func TestDelayControlOnAssignment(t *testing.T) {
	tree, stmt := parseStatement(t, "x = #5 y;")
	assign := stmt.Item.(*BlockingAssignmentStatement).Assignment.(*BlockingAssignmentVariable)
	delay := assign.Control.(*DelayControl)
	require.Equal(t, "#5", tokens(tree, delay))
	require.Equal(t, "y", tokens(tree, assign.Expr))

	tree, stmt = parseStatement(t, "q <= repeat (2) @(posedge clk) d;")
	nb := stmt.Item.(*NonblockingAssignmentStatement).Assignment
	repeat := nb.Control.(*RepeatEventControl)
	require.Equal(t, "(2)", tokens(tree, repeat.Count))
	require.IsType(t, &EventControlExpression{}, repeat.Event)
}

func TestEventExpression(t *testing.T) {
	tree, stmt := parseStatement(t, "@(posedge clk iff en or negedge rst_n, a) x = 1;")
	control := stmt.Item.(*TimingControlStatement).Control.(*EventControlExpression)
	events := control.Events.Inner.List
	require.Len(t, events.Items, 3)
	require.Equal(t, "posedge", tokens(tree, events.Items[0].Edge))
	require.NotNil(t, events.Items[0].Iff)
	require.Equal(t, "en", tokens(tree, events.Items[0].Iff.Cond))
	require.Equal(t, "or", tokens(tree, events.Seps[0]))
	require.Equal(t, ",", tokens(tree, events.Seps[1]))
	require.Nil(t, events.Items[2].Edge)
}

func TestConditionalChain(t *testing.T) {
	tree, stmt := parseStatement(t, "if (a) b = 1; else if (c) b = 2; else b = 3;")
	outer := stmt.Item.(*ConditionalStatement)
	require.Nil(t, outer.Qualifier)
	require.Equal(t, "(a)", tokens(tree, outer.Cond))
	inner := outer.Else.Body.(*Statement).Item.(*ConditionalStatement)
	require.Equal(t, "b = 3;", tokens(tree, inner.Else.Body))
}

func TestSeqBlock(t *testing.T) {
	tree, stmt := parseStatement(t, "begin : blk\n  int i;\n  i = 0;\n  ;\nend : blk")
	block := stmt.Item.(*SeqBlock)
	require.Equal(t, ": blk", tokens(tree, block.Label))
	require.Len(t, block.Decls, 1)
	require.Len(t, block.Statements, 2)
	require.IsType(t, &NullStatement{}, block.Statements[1])
	require.Equal(t, ": blk", tokens(tree, block.EndLabel))
}

func TestJumpStatements(t *testing.T) {
	tree, stmt := parseStatement(t, "return;")
	jump := stmt.Item.(*JumpStatement)
	require.Nil(t, jump.Value)
	require.Equal(t, ";", tokens(tree, jump.Semi))

	_, stmt = parseStatement(t, "continue;")
	require.Nil(t, stmt.Item.(*JumpStatement).Value)
}

func TestSubroutineCalls(t *testing.T) {
	tree, stmt := parseStatement(t, "$display(\"%d\", x);")
	call := stmt.Item.(*CallStatement).Call.(*SystemTfCall)
	require.Equal(t, "$display", tokens(tree, call.Name))
	require.Len(t, call.Args.Inner.List.Items, 2)

	_, stmt = parseStatement(t, "$finish;")
	require.Nil(t, stmt.Item.(*CallStatement).Call.(*SystemTfCall).Args)

	tree, stmt = parseStatement(t, "f(1, .b(2));")
	tf := stmt.Item.(*CallStatement).Call.(*TfCall)
	args := tf.Args.Inner.List.Items
	require.Len(t, args, 2)
	require.IsType(t, &Number{}, args[0])
	named := args[1].(*NamedArgument)
	require.Equal(t, "b", tokens(tree, named.Name))

	tree, stmt = parseStatement(t, "pkg::f();")
	tf = stmt.Item.(*CallStatement).Call.(*TfCall)
	require.Equal(t, "pkg::", tokens(tree, tf.Scope))
	require.Nil(t, tf.Args.Inner)

	_, stmt = parseStatement(t, "obj.cfg.m;")
	tf = stmt.Item.(*CallStatement).Call.(*TfCall)
	require.Len(t, tf.Name.Path, 2)
	require.Nil(t, tf.Args)

	tree, stmt = parseStatement(t, "super.new(8);")
	tf = stmt.Item.(*CallStatement).Call.(*TfCall)
	require.IsType(t, &ImplicitClassScope{}, tf.Scope)
	require.Equal(t, "new", tokens(tree, tf.Name))

	tree, stmt = parseStatement(t, "void'(f(x));")
	cast := stmt.Item.(*VoidCastStatement)
	require.Equal(t, "f(x)", tokens(tree, cast.Call.Inner))
}

func TestRandomizeCalls(t *testing.T) {
	tree, stmt := parseStatement(t, "obj.randomize() with { x < 10; };")
	call := stmt.Item.(*CallStatement).Call.(*RandomizeCall)
	require.Nil(t, call.Scope)
	require.Len(t, call.Path, 1)
	require.Nil(t, call.Args.Inner)
	require.NotNil(t, call.With)
	require.Nil(t, call.With.Idents)
	require.Len(t, call.With.Block.Braces.Inner, 1)

	tree, stmt = parseStatement(t, "std::randomize(a, b) with (a) { a < b; };")
	call = stmt.Item.(*CallStatement).Call.(*RandomizeCall)
	require.Equal(t, "std::", tokens(tree, call.Scope))
	require.IsType(t, &IdentifierList{}, call.Args.Inner)
	require.Equal(t, "(a)", tokens(tree, call.With.Idents))

	tree, stmt = parseStatement(t, "randomize(null);")
	call = stmt.Item.(*CallStatement).Call.(*RandomizeCall)
	require.Equal(t, "null", tokens(tree, call.Args.Inner))
	require.Nil(t, call.With)
}

func TestFunctionCallsInExpressions(t *testing.T) {
	tree, stmt := parseStatement(t, "x = f(1) + $clog2(8);")
	assign := stmt.Item.(*BlockingAssignmentStatement).Assignment.(*BlockingAssignmentVariable)
	sum := assign.Expr.(*BinaryExpression)
	require.IsType(t, &TfCall{}, sum.Left.(*FunctionCallExpression).Call)
	require.IsType(t, &SystemTfCall{}, sum.Right.(*FunctionCallExpression).Call)
	require.Equal(t, "+", tokens(tree, sum.Op))

	// Without an argument list a user defined name is a variable reference.
	_, stmt = parseStatement(t, "x = f;")
	assign = stmt.Item.(*BlockingAssignmentStatement).Assignment.(*BlockingAssignmentVariable)
	require.IsType(t, &HierarchicalPrimary{}, assign.Expr)
}

func TestExpressionPrecedence(t *testing.T) {
	tree, stmt := parseStatement(t, "x = a + b * c == d ? e : f;")
	assign := stmt.Item.(*BlockingAssignmentStatement).Assignment.(*BlockingAssignmentVariable)
	cond := assign.Expr.(*ConditionalExpression)
	eq := cond.Cond.(*BinaryExpression)
	require.Equal(t, "==", tokens(tree, eq.Op))
	sum := eq.Left.(*BinaryExpression)
	require.Equal(t, "+", tokens(tree, sum.Op))
	require.Equal(t, "b * c", tokens(tree, sum.Right))

	tree, stmt = parseStatement(t, "x = a - b - c;")
	assign = stmt.Item.(*BlockingAssignmentStatement).Assignment.(*BlockingAssignmentVariable)
	diff := assign.Expr.(*BinaryExpression)
	require.Equal(t, "a - b", tokens(tree, diff.Left))

	tree, stmt = parseStatement(t, "x = {2{a, b}} | '{1, 2} & ~y[3:0];")
	assign = stmt.Item.(*BlockingAssignmentStatement).Assignment.(*BlockingAssignmentVariable)
	or := assign.Expr.(*BinaryExpression)
	require.IsType(t, &MultipleConcatenation{}, or.Left)
	and := or.Right.(*BinaryExpression)
	require.IsType(t, &AssignmentPattern{}, and.Left)
	require.IsType(t, &UnaryExpression{}, and.Right)
	require.Equal(t, "~y[3:0]", tokens(tree, and.Right))
}
