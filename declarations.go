package svparse

// DataType is a data type.
type DataType interface {
	Node
	dataType()
}

// IntegerVectorType is eg. "logic signed [7:0]".
type IntegerVectorType struct {
	Keyword Symbol
	Signing *Symbol
	Dims    Seq[PackedDimension]
}

func (n IntegerVectorType) Children() []Node { return nodes(n.Keyword, n.Signing, n.Dims) }
func (*IntegerVectorType) dataType()         {}

// IntegerAtomType is eg. "int unsigned".
type IntegerAtomType struct {
	Keyword Symbol
	Signing *Symbol
}

func (n IntegerAtomType) Children() []Node { return nodes(n.Keyword, n.Signing) }
func (*IntegerAtomType) dataType()         {}

// SimpleType is a data type named by a single keyword, eg. "real" or "string".
type SimpleType struct {
	Keyword Symbol
}

func (n SimpleType) Children() []Node { return nodes(n.Keyword) }
func (*SimpleType) dataType()         {}

// VoidType is "void", only valid as a function return type.
type VoidType struct {
	Void Symbol
}

func (n VoidType) Children() []Node { return nodes(n.Void) }
func (*VoidType) dataType()         {}

// NamedType is a class or user defined type, eg. "pkg::packet_t" or "fifo#(8)".
type NamedType struct {
	Scope *PackageScope
	Type  ClassType
	Dims  Seq[PackedDimension]
}

func (n NamedType) Children() []Node { return nodes(n.Scope, n.Type, n.Dims) }
func (*NamedType) dataType()         {}

// PackedDimension is eg. "[7:0]".
type PackedDimension struct {
	Range Bracket[Range]
}

func (n PackedDimension) Children() []Node { return nodes(n.Range) }

// UnpackedDimension is eg. "[0:3]", "[4]", "[]" or "[$]".
type UnpackedDimension struct {
	Open  Symbol
	Left  Expression
	Tail  *RangeTail
	Close Symbol
}

func (n UnpackedDimension) Children() []Node { return nodes(n.Open, n.Left, n.Tail, n.Close) }

// RangeTail is ": right" completing a range.
type RangeTail struct {
	Colon Symbol
	Right Expression
}

func (n RangeTail) Children() []Node { return nodes(n.Colon, n.Right) }

var (
	integerVectorKeywords = []string{"bit", "logic", "reg"}
	integerAtomKeywords   = []string{"byte", "shortint", "int", "longint", "integer", "time"}
	simpleTypeKeywords    = []string{"real", "shortreal", "realtime", "string", "event", "chandle"}
	netTypeKeywords       = []string{"wire", "tri", "uwire", "wand", "wor", "triand", "trior", "tri0", "tri1", "supply0", "supply1"}
	portDirectionKeywords = []string{"input", "output", "inout", "ref"}
)

func dataType(in Input) (Input, DataType, error) {
	return Choice("data_type",
		integerVectorType,
		integerAtomType,
		simpleType,
		namedType,
	)(in)
}

func dataTypeOrVoid(in Input) (Input, DataType, error) {
	if s, void, err := in.Literal("void"); err == nil {
		return s, &VoidType{Void: void}, nil
	}
	return dataType(in)
}

func integerVectorType(in Input) (Input, DataType, error) {
	var (
		out IntegerVectorType
		err error
	)
	s := in
	if s, out.Keyword, err = OneOfLiterals(integerVectorKeywords...)(s); err != nil {
		return in, nil, err
	}
	if s, out.Signing, err = Opt(OneOfLiterals("signed", "unsigned"))(s); err != nil {
		return in, nil, err
	}
	if s, out.Dims, err = Many0(packedDimension)(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func integerAtomType(in Input) (Input, DataType, error) {
	var (
		out IntegerAtomType
		err error
	)
	s := in
	if s, out.Keyword, err = OneOfLiterals(integerAtomKeywords...)(s); err != nil {
		return in, nil, err
	}
	if s, out.Signing, err = Opt(OneOfLiterals("signed", "unsigned"))(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func simpleType(in Input) (Input, DataType, error) {
	s, keyword, err := OneOfLiterals(simpleTypeKeywords...)(in)
	if err != nil {
		return in, nil, err
	}
	return s, &SimpleType{Keyword: keyword}, nil
}

func namedType(in Input) (Input, DataType, error) {
	var (
		out NamedType
		err error
	)
	s := in
	if s, out.Scope, err = Opt(packageScope)(s); err != nil {
		return in, nil, err
	}
	if s, out.Type, err = classType(s); err != nil {
		return in, nil, err
	}
	if s, out.Dims, err = Many0(packedDimension)(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func packedDimension(in Input) (Input, PackedDimension, error) {
	return Rule(in, "packed_dimension", func(in Input) (Input, PackedDimension, error) {
		s, r, err := Brackets(rangeExpression)(in)
		if err != nil {
			return in, PackedDimension{}, err
		}
		return s, PackedDimension{Range: r}, nil
	})
}

func unpackedDimension(in Input) (Input, UnpackedDimension, error) {
	return Rule(in, "unpacked_dimension", func(in Input) (Input, UnpackedDimension, error) {
		var (
			out UnpackedDimension
			err error
		)
		s := in
		if s, out.Open, err = s.Literal("["); err != nil {
			return in, out, err
		}
		if s, out.Left, err = Maybe(expression)(s); err != nil {
			return in, UnpackedDimension{}, err
		}
		if out.Left != nil {
			if s, out.Tail, err = Opt(rangeTail)(s); err != nil {
				return in, UnpackedDimension{}, err
			}
		}
		if s, out.Close, err = s.Literal("]"); err != nil {
			return in, UnpackedDimension{}, err
		}
		return s, out, nil
	})
}

func rangeTail(in Input) (Input, RangeTail, error) {
	return keywordThen(in, ":", expression, func(colon Symbol, right Expression) RangeTail {
		return RangeTail{Colon: colon, Right: right}
	})
}

// typedOrImplicit tries p with a leading data type, then without one.
func typedOrImplicit[T any](in Input, p func(in Input, typed bool) (Input, T, error)) (Input, T, error) {
	out, v, err := p(in, true)
	if err == nil || !Recoverable(err) {
		return out, v, err
	}
	return p(in, false)
}

// DataDeclaration is eg. "const int unsigned a = 1, b[4];".
type DataDeclaration struct {
	Const    *Symbol
	Var      *Symbol
	Lifetime *Symbol
	Type     DataType
	Vars     List[VariableDeclAssignment]
	Semi     Symbol
}

func (n DataDeclaration) Children() []Node {
	return nodes(n.Const, n.Var, n.Lifetime, n.Type, n.Vars, n.Semi)
}
func (*DataDeclaration) moduleItem()  {}
func (*DataDeclaration) packageItem() {}

// VariableDeclAssignment is eg. "mem[16] = '{default: 0}" or "q = new".
type VariableDeclAssignment struct {
	Name Identifier
	Dims Seq[UnpackedDimension]
	Init *VariableInit
}

func (n VariableDeclAssignment) Children() []Node { return nodes(n.Name, n.Dims, n.Init) }

// VariableInit is "= value". Value is an Expression, ClassNew or DynamicArrayNew.
type VariableInit struct {
	Eq    Symbol
	Value Node
}

func (n VariableInit) Children() []Node { return nodes(n.Eq, n.Value) }

func dataDeclaration(in Input) (Input, DataDeclaration, error) {
	return Rule(in, "data_declaration", func(in Input) (Input, DataDeclaration, error) {
		var (
			out DataDeclaration
			err error
		)
		s := in
		if s, out.Const, err = Opt(Literal("const"))(s); err != nil {
			return in, out, err
		}
		if s, out.Var, err = Opt(Literal("var"))(s); err != nil {
			return in, DataDeclaration{}, err
		}
		if s, out.Lifetime, err = Opt(lifetime)(s); err != nil {
			return in, DataDeclaration{}, err
		}
		if s, out.Type, err = dataType(s); err != nil {
			return in, DataDeclaration{}, err
		}
		if s, out.Vars, err = CommaList(variableDeclAssignment)(s); err != nil {
			return in, DataDeclaration{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, DataDeclaration{}, err
		}
		return s, out, nil
	})
}

func lifetime(in Input) (Input, Symbol, error) {
	return OneOfLiterals("static", "automatic")(in)
}

func variableDeclAssignment(in Input) (Input, VariableDeclAssignment, error) {
	return Rule(in, "variable_decl_assignment", func(in Input) (Input, VariableDeclAssignment, error) {
		var (
			out VariableDeclAssignment
			err error
		)
		s := in
		if s, out.Name, err = identifier(s); err != nil {
			return in, out, err
		}
		if s, out.Dims, err = Many0(unpackedDimension)(s); err != nil {
			return in, VariableDeclAssignment{}, err
		}
		if s, out.Init, err = Opt(variableInit)(s); err != nil {
			return in, VariableDeclAssignment{}, err
		}
		return s, out, nil
	})
}

func variableInit(in Input) (Input, VariableInit, error) {
	return keywordThen(in, "=", initializer, func(eq Symbol, value Node) VariableInit {
		return VariableInit{Eq: eq, Value: value}
	})
}

func initializer(in Input) (Input, Node, error) {
	return Alt(in,
		As[Node](dynamicArrayNew),
		As[Node](classNew),
		As[Node](expression),
	)
}

// NetDeclaration is eg. "wire [7:0] a, b = c;".
type NetDeclaration struct {
	NetType Symbol
	Type    DataType
	Packed  Seq[PackedDimension]
	Nets    List[VariableDeclAssignment]
	Semi    Symbol
}

func (n NetDeclaration) Children() []Node {
	return nodes(n.NetType, n.Type, n.Packed, n.Nets, n.Semi)
}
func (*NetDeclaration) moduleItem() {}

func netDeclaration(in Input) (Input, NetDeclaration, error) {
	return Rule(in, "net_declaration", func(in Input) (Input, NetDeclaration, error) {
		return typedOrImplicit(in, func(in Input, typed bool) (Input, NetDeclaration, error) {
			var (
				out NetDeclaration
				err error
			)
			s := in
			if s, out.NetType, err = OneOfLiterals(netTypeKeywords...)(s); err != nil {
				return in, out, err
			}
			if typed {
				if s, out.Type, err = dataType(s); err != nil {
					return in, NetDeclaration{}, err
				}
			} else if s, out.Packed, err = Many0(packedDimension)(s); err != nil {
				return in, NetDeclaration{}, err
			}
			if s, out.Nets, err = CommaList(variableDeclAssignment)(s); err != nil {
				return in, NetDeclaration{}, err
			}
			if s, out.Semi, err = s.Literal(";"); err != nil {
				return in, NetDeclaration{}, err
			}
			return s, out, nil
		})
	})
}

// ParameterDeclaration is eg. "localparam int W = 8, D = 2;".
type ParameterDeclaration struct {
	Keyword     Symbol
	Type        DataType
	Packed      Seq[PackedDimension]
	Assignments List[ParamAssignment]
	Semi        Symbol
}

func (n ParameterDeclaration) Children() []Node {
	return nodes(n.Keyword, n.Type, n.Packed, n.Assignments, n.Semi)
}
func (*ParameterDeclaration) moduleItem()  {}
func (*ParameterDeclaration) packageItem() {}

// ParamAssignment is eg. "W = 8".
type ParamAssignment struct {
	Name  Identifier
	Dims  Seq[UnpackedDimension]
	Eq    Symbol
	Value Expression
}

func (n ParamAssignment) Children() []Node { return nodes(n.Name, n.Dims, n.Eq, n.Value) }

func parameterDeclaration(in Input) (Input, ParameterDeclaration, error) {
	return Rule(in, "parameter_declaration", func(in Input) (Input, ParameterDeclaration, error) {
		return typedOrImplicit(in, func(in Input, typed bool) (Input, ParameterDeclaration, error) {
			var (
				out ParameterDeclaration
				err error
			)
			s := in
			if s, out.Keyword, err = OneOfLiterals("parameter", "localparam")(s); err != nil {
				return in, out, err
			}
			if typed {
				if s, out.Type, err = dataType(s); err != nil {
					return in, ParameterDeclaration{}, err
				}
			} else if s, out.Packed, err = Many0(packedDimension)(s); err != nil {
				return in, ParameterDeclaration{}, err
			}
			if s, out.Assignments, err = CommaList(paramAssignment)(s); err != nil {
				return in, ParameterDeclaration{}, err
			}
			if s, out.Semi, err = s.Literal(";"); err != nil {
				return in, ParameterDeclaration{}, err
			}
			return s, out, nil
		})
	})
}

func paramAssignment(in Input) (Input, ParamAssignment, error) {
	return Rule(in, "param_assignment", func(in Input) (Input, ParamAssignment, error) {
		var (
			out ParamAssignment
			err error
		)
		s := in
		if s, out.Name, err = identifier(s); err != nil {
			return in, out, err
		}
		if s, out.Dims, err = Many0(unpackedDimension)(s); err != nil {
			return in, ParamAssignment{}, err
		}
		if s, out.Eq, err = s.Literal("="); err != nil {
			return in, ParamAssignment{}, err
		}
		if s, out.Value, err = expression(s); err != nil {
			return in, ParamAssignment{}, err
		}
		return s, out, nil
	})
}

// ParameterPortList is eg. "#(parameter int W = 8, D = 4)".
type ParameterPortList struct {
	Hash   Symbol
	Params Paren[*List[ParameterPort]]
}

func (n ParameterPortList) Children() []Node { return nodes(n.Hash, n.Params) }

// ParameterPort is one entry of a parameter port list.
type ParameterPort struct {
	Keyword    *Symbol
	Type       DataType
	Assignment ParamAssignment
}

func (n ParameterPort) Children() []Node { return nodes(n.Keyword, n.Type, n.Assignment) }

func parameterPortList(in Input) (Input, ParameterPortList, error) {
	return Rule(in, "parameter_port_list", func(in Input) (Input, ParameterPortList, error) {
		var (
			out ParameterPortList
			err error
		)
		s := in
		if s, out.Hash, err = s.Literal("#"); err != nil {
			return in, out, err
		}
		if s, out.Params, err = Parens(Opt(CommaList(parameterPort)))(s); err != nil {
			return in, ParameterPortList{}, err
		}
		return s, out, nil
	})
}

func parameterPort(in Input) (Input, ParameterPort, error) {
	return typedOrImplicit(in, func(in Input, typed bool) (Input, ParameterPort, error) {
		var (
			out ParameterPort
			err error
		)
		s := in
		if s, out.Keyword, err = Opt(OneOfLiterals("parameter", "localparam"))(s); err != nil {
			return in, out, err
		}
		if typed {
			if s, out.Type, err = dataType(s); err != nil {
				return in, ParameterPort{}, err
			}
		}
		if s, out.Assignment, err = paramAssignment(s); err != nil {
			return in, ParameterPort{}, err
		}
		return s, out, nil
	})
}

// PortItem is a port of a module, task or function, eg. "input logic [7:0] data" or "int n = 4".
//
// Type is nil for implicitly typed ports.
type PortItem struct {
	Direction *Symbol
	NetType   *Symbol
	Var       *Symbol
	Type      DataType
	Packed    Seq[PackedDimension]
	Name      Identifier
	Unpacked  Seq[UnpackedDimension]
	Default   *VariableInit
}

func (n PortItem) Children() []Node {
	return nodes(n.Direction, n.NetType, n.Var, n.Type, n.Packed, n.Name, n.Unpacked, n.Default)
}

func portItem(in Input) (Input, PortItem, error) {
	return Rule(in, "port_item", func(in Input) (Input, PortItem, error) {
		return typedOrImplicit(in, func(in Input, typed bool) (Input, PortItem, error) {
			var (
				out PortItem
				err error
			)
			s := in
			if s, out.Direction, err = Opt(OneOfLiterals(portDirectionKeywords...))(s); err != nil {
				return in, out, err
			}
			if s, out.NetType, err = Opt(OneOfLiterals(netTypeKeywords...))(s); err != nil {
				return in, PortItem{}, err
			}
			if s, out.Var, err = Opt(Literal("var"))(s); err != nil {
				return in, PortItem{}, err
			}
			if typed {
				if s, out.Type, err = dataType(s); err != nil {
					return in, PortItem{}, err
				}
			} else if s, out.Packed, err = Many0(packedDimension)(s); err != nil {
				return in, PortItem{}, err
			}
			if s, out.Name, err = identifier(s); err != nil {
				return in, PortItem{}, err
			}
			if s, out.Unpacked, err = Many0(unpackedDimension)(s); err != nil {
				return in, PortItem{}, err
			}
			if s, out.Default, err = Opt(variableInit)(s); err != nil {
				return in, PortItem{}, err
			}
			return s, out, nil
		})
	})
}

func portList(in Input) (Input, Paren[*List[PortItem]], error) {
	return Parens(Opt(CommaList(portItem)))(in)
}

// FunctionDeclaration is a function with its body.
//
// ReturnType is nil for an implicitly typed function.
type FunctionDeclaration struct {
	Function   Symbol
	Lifetime   *Symbol
	ReturnType DataType
	Scope      *ClassScope
	Name       Identifier
	Ports      *Paren[*List[PortItem]]
	Semi       Symbol
	Decls      Seq[*DataDeclaration]
	Statements Seq[StatementOrNull]
	End        Symbol
	EndLabel   *BlockLabel
}

func (n FunctionDeclaration) Children() []Node {
	return nodes(n.Function, n.Lifetime, n.ReturnType, n.Scope, n.Name, n.Ports, n.Semi,
		n.Decls, n.Statements, n.End, n.EndLabel)
}
func (*FunctionDeclaration) moduleItem()  {}
func (*FunctionDeclaration) packageItem() {}

func functionDeclaration(in Input) (Input, FunctionDeclaration, error) {
	return Rule(in, "function_declaration", func(in Input) (Input, FunctionDeclaration, error) {
		var (
			out FunctionDeclaration
			err error
		)
		s := in
		if s, out.Function, err = s.Literal("function"); err != nil {
			return in, out, err
		}
		if s, out.Lifetime, err = Opt(lifetime)(s); err != nil {
			return in, FunctionDeclaration{}, err
		}
		s, err = typedOrImplicitHeader(s, &out)
		if err != nil {
			return in, FunctionDeclaration{}, err
		}
		if s, out.Ports, err = Opt(portList)(s); err != nil {
			return in, FunctionDeclaration{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, FunctionDeclaration{}, err
		}
		if s, out.Decls, err = Many0(Map(dataDeclaration, ptr[DataDeclaration]))(s); err != nil {
			return in, FunctionDeclaration{}, err
		}
		if s, out.Statements, err = Many0(statementOrNull)(s); err != nil {
			return in, FunctionDeclaration{}, err
		}
		if s, out.End, err = s.Literal("endfunction"); err != nil {
			return in, FunctionDeclaration{}, err
		}
		if s, out.EndLabel, err = Opt(blockLabel)(s); err != nil {
			return in, FunctionDeclaration{}, err
		}
		return s, out, nil
	})
}

// Return type, class scope and name of a function.
func typedOrImplicitHeader(in Input, out *FunctionDeclaration) (Input, error) {
	type header struct {
		typ   DataType
		scope *ClassScope
		name  Identifier
	}
	s, h, err := typedOrImplicit(in, func(in Input, typed bool) (Input, header, error) {
		var (
			h   header
			err error
		)
		s := in
		if typed {
			if s, h.typ, err = dataTypeOrVoid(s); err != nil {
				return in, header{}, err
			}
		}
		if s, h.scope, err = Opt(classScope)(s); err != nil {
			return in, header{}, err
		}
		if s, h.name, err = identifierOrNew(s); err != nil {
			return in, header{}, err
		}
		return s, h, nil
	})
	if err != nil {
		return in, err
	}
	out.ReturnType, out.Scope, out.Name = h.typ, h.scope, h.name
	return s, nil
}

// TaskDeclaration is a task with its body.
type TaskDeclaration struct {
	Task       Symbol
	Lifetime   *Symbol
	Scope      *ClassScope
	Name       Identifier
	Ports      *Paren[*List[PortItem]]
	Semi       Symbol
	Decls      Seq[*DataDeclaration]
	Statements Seq[StatementOrNull]
	End        Symbol
	EndLabel   *BlockLabel
}

func (n TaskDeclaration) Children() []Node {
	return nodes(n.Task, n.Lifetime, n.Scope, n.Name, n.Ports, n.Semi,
		n.Decls, n.Statements, n.End, n.EndLabel)
}
func (*TaskDeclaration) moduleItem()  {}
func (*TaskDeclaration) packageItem() {}

func taskDeclaration(in Input) (Input, TaskDeclaration, error) {
	return Rule(in, "task_declaration", func(in Input) (Input, TaskDeclaration, error) {
		var (
			out TaskDeclaration
			err error
		)
		s := in
		if s, out.Task, err = s.Literal("task"); err != nil {
			return in, out, err
		}
		if s, out.Lifetime, err = Opt(lifetime)(s); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.Scope, err = Opt(classScope)(s); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.Name, err = identifier(s); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.Ports, err = Opt(portList)(s); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.Decls, err = Many0(Map(dataDeclaration, ptr[DataDeclaration]))(s); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.Statements, err = Many0(statementOrNull)(s); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.End, err = s.Literal("endtask"); err != nil {
			return in, TaskDeclaration{}, err
		}
		if s, out.EndLabel, err = Opt(blockLabel)(s); err != nil {
			return in, TaskDeclaration{}, err
		}
		return s, out, nil
	})
}
