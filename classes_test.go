package svparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const packetClass = `virtual class packet #(int W = 4) extends base(1, 2);
  local static int count = 0;
  rand bit [W-1:0] data;
  localparam int N = 2;
  ;
  extern virtual function void post(int a);
  pure virtual task run();
  function new(int n);
    super.new(n);
  endfunction
  static function int total();
    return count;
  endfunction : total
endclass : packet
`

func TestClassDeclaration(t *testing.T) {
	tree, err := MustNew().ParseString("packet.sv", packetClass)
	require.NoError(t, err)
	class := tree.Root.Descriptions[0].(*ClassDeclaration)
	require.NotNil(t, class.Virtual)
	require.Equal(t, "packet", tokens(tree, class.Name))
	require.Equal(t, "#(int W = 4)", tokens(tree, class.Params))
	require.Equal(t, "base", tokens(tree, class.Extends.Type))
	require.Len(t, class.Extends.Args.Inner.List.Items, 2)
	require.Equal(t, ": packet", tokens(tree, class.EndLabel))

	var kinds []string
	for _, item := range class.Items {
		kinds = append(kinds, NodeName(item))
	}
	require.Equal(t, []string{
		"ClassProperty",
		"ClassProperty",
		"ClassParameter",
		"EmptyClassItem",
		"MethodPrototype",
		"MethodPrototype",
		"ClassMethod",
		"ClassMethod",
	}, kinds)
}

func TestClassProperties(t *testing.T) {
	tree, err := MustNew().ParseString("packet.sv", packetClass)
	require.NoError(t, err)
	class := tree.Root.Descriptions[0].(*ClassDeclaration)

	count := class.Items[0].(*ClassProperty)
	require.Len(t, count.Qualifiers, 2)
	require.Equal(t, "local", tokens(tree, count.Qualifiers[0]))
	require.Equal(t, "static", tokens(tree, count.Qualifiers[1]))
	require.Nil(t, count.Decl.Lifetime)
	require.Equal(t, "= 0", tokens(tree, count.Decl.Vars.Items[0].Init))

	data := class.Items[1].(*ClassProperty)
	vector := data.Decl.Type.(*IntegerVectorType)
	require.Equal(t, "[W-1:0]", tokens(tree, vector.Dims))
}

func TestMethodPrototypes(t *testing.T) {
	tree, err := MustNew().ParseString("packet.sv", packetClass)
	require.NoError(t, err)
	protos := FindAll[*MethodPrototype](tree.Root)
	require.Len(t, protos, 2)

	post := protos[0]
	require.Len(t, post.Qualifiers, 2)
	require.Equal(t, "function", tokens(tree, post.Keyword))
	require.IsType(t, &VoidType{}, post.ReturnType)
	require.Len(t, post.Ports.Inner.Items, 1)

	run := protos[1]
	require.Equal(t, "task", tokens(tree, run.Keyword))
	require.Nil(t, run.ReturnType)
	require.Nil(t, run.Ports.Inner)
}

func TestClassMethods(t *testing.T) {
	tree, err := MustNew().ParseString("packet.sv", packetClass)
	require.NoError(t, err)
	methods := FindAll[*ClassMethod](tree.Root)
	require.Len(t, methods, 2)

	ctor := methods[0].Method.(*FunctionDeclaration)
	require.Nil(t, ctor.ReturnType)
	require.Equal(t, "new", tokens(tree, ctor.Name))
	require.Len(t, ctor.Statements, 1)

	total := methods[1]
	require.Equal(t, "static", tokens(tree, total.Qualifiers[0]))
	fn := total.Method.(*FunctionDeclaration)
	require.Equal(t, "int", tokens(tree, fn.ReturnType))
	require.Equal(t, ": total", tokens(tree, fn.EndLabel))
}

func TestOutOfClassMethod(t *testing.T) {
	tree := mustParse(t, "function void packet::post(int a);\n  $display(a);\nendfunction\n")
	fn, ok := First[*FunctionDeclaration](tree.Root)
	require.True(t, ok)
	require.Equal(t, "packet::", tokens(tree, fn.Scope))
	require.Equal(t, "post", tokens(tree, fn.Name))
}

func TestModuleHeader(t *testing.T) {
	source := "module top #(parameter W = 8, int D = 2) (input logic [W-1:0] d, output q, ref int r[4]);\nendmodule\n"
	tree, err := MustNew().ParseString("top.sv", source)
	require.NoError(t, err)
	module := tree.Root.Descriptions[0].(*ModuleDeclaration)

	params := module.Params.Params.Inner.Items
	require.Len(t, params, 2)
	require.Equal(t, "parameter", tokens(tree, params[0].Keyword))
	require.Nil(t, params[0].Type)
	require.Nil(t, params[1].Keyword)
	require.Equal(t, "int", tokens(tree, params[1].Type))
	require.Equal(t, "2", tokens(tree, params[1].Assignment.Value))

	ports := module.Ports.Inner.Items
	require.Len(t, ports, 3)
	require.Equal(t, "input", tokens(tree, ports[0].Direction))
	require.Equal(t, "logic [W-1:0]", tokens(tree, ports[0].Type))
	require.Nil(t, ports[1].Type)
	require.Equal(t, "q", tokens(tree, ports[1].Name))
	require.Equal(t, "ref", tokens(tree, ports[2].Direction))
	require.Len(t, ports[2].Unpacked, 1)
}

func TestModuleDeclarations(t *testing.T) {
	source := `module m;
  wire [7:0] a, b = c;
  wire logic w;
  parameter P = 1;
  localparam int unsigned Q = 2, R = 3;
  const int unsigned k = 1, arr[4];
  logic [7:0] mem [0:15];
  int q[$];
  int dyn[];
  my_pkg::word_t x;
endmodule
`
	tree, err := MustNew().ParseString("m.sv", source)
	require.NoError(t, err)
	module := tree.Root.Descriptions[0].(*ModuleDeclaration)
	require.Len(t, module.Items, 9)

	implicitNet := module.Items[0].(*NetDeclaration)
	require.Nil(t, implicitNet.Type)
	require.Len(t, implicitNet.Packed, 1)
	require.Len(t, implicitNet.Nets.Items, 2)
	require.NotNil(t, implicitNet.Nets.Items[1].Init)

	typedNet := module.Items[1].(*NetDeclaration)
	require.Equal(t, "logic", tokens(tree, typedNet.Type))

	implicitParam := module.Items[2].(*ParameterDeclaration)
	require.Nil(t, implicitParam.Type)
	typedParam := module.Items[3].(*ParameterDeclaration)
	require.Equal(t, "int unsigned", tokens(tree, typedParam.Type))
	require.Len(t, typedParam.Assignments.Items, 2)

	constant := module.Items[4].(*DataDeclaration)
	require.NotNil(t, constant.Const)
	require.Equal(t, "unsigned", tokens(tree, constant.Type.(*IntegerAtomType).Signing))
	require.Len(t, constant.Vars.Items[1].Dims, 1)

	mem := module.Items[5].(*DataDeclaration)
	dim := mem.Vars.Items[0].Dims[0]
	require.Equal(t, "0", tokens(tree, dim.Left))
	require.Equal(t, "15", tokens(tree, dim.Tail.Right))

	queue := module.Items[6].(*DataDeclaration)
	require.IsType(t, &KeywordPrimary{}, queue.Vars.Items[0].Dims[0].Left)

	dynamic := module.Items[7].(*DataDeclaration)
	require.Nil(t, dynamic.Vars.Items[0].Dims[0].Left)

	named := module.Items[8].(*DataDeclaration).Type.(*NamedType)
	require.Equal(t, "my_pkg::", tokens(tree, named.Scope))
	require.Equal(t, "word_t", tokens(tree, named.Type))
}

func TestSubroutineDeclarations(t *testing.T) {
	source := `package util;
  function automatic int add(input int a, int b = 1);
    return a + b;
  endfunction : add
  function f;
  endfunction
  task automatic run(ref int x);
    int i;
    x++;
  endtask
endpackage : util
`
	tree, err := MustNew().ParseString("util.sv", source)
	require.NoError(t, err)
	pkg := tree.Root.Descriptions[0].(*PackageDeclaration)
	require.Len(t, pkg.Items, 3)

	add := pkg.Items[0].(*FunctionDeclaration)
	require.Equal(t, "automatic", tokens(tree, add.Lifetime))
	require.Equal(t, "int", tokens(tree, add.ReturnType))
	require.Nil(t, add.Scope)
	require.Len(t, add.Ports.Inner.Items, 2)
	require.Equal(t, "= 1", tokens(tree, add.Ports.Inner.Items[1].Default))

	f := pkg.Items[1].(*FunctionDeclaration)
	require.Nil(t, f.ReturnType)
	require.Nil(t, f.Ports)
	require.Empty(t, f.Statements)

	run := pkg.Items[2].(*TaskDeclaration)
	require.Len(t, run.Decls, 1)
	require.Len(t, run.Statements, 1)
	require.Equal(t, ": util", tokens(tree, pkg.EndLabel))
}

func TestMissingEndclass(t *testing.T) {
	_, err := MustNew().ParseString("c.sv", "class c;\n  int x;\n")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 3, perr.Pos.Line)
	require.Contains(t, perr.Expected, `"endclass"`)
}
