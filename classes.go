package svparse

// ClassDeclaration is "[virtual] class name [#(...)] [extends base] ; items endclass [: name]".
type ClassDeclaration struct {
	Virtual  *Symbol
	Class    Symbol
	Lifetime *Symbol
	Name     Identifier
	Params   *ParameterPortList
	Extends  *ClassExtends
	Semi     Symbol
	Items    Seq[ClassItem]
	End      Symbol
	EndLabel *BlockLabel
}

func (n ClassDeclaration) Children() []Node {
	return nodes(n.Virtual, n.Class, n.Lifetime, n.Name, n.Params, n.Extends, n.Semi,
		n.Items, n.End, n.EndLabel)
}
func (*ClassDeclaration) description() {}
func (*ClassDeclaration) moduleItem()  {}
func (*ClassDeclaration) packageItem() {}

// ClassExtends is eg. "extends base#(8)(len)".
type ClassExtends struct {
	Extends Symbol
	Type    ClassType
	Args    *Paren[*ListOfArguments]
}

func (n ClassExtends) Children() []Node { return nodes(n.Extends, n.Type, n.Args) }

// ClassItem is a member of a class body.
type ClassItem interface {
	Node
	classItem()
}

func (*ConstraintDeclaration) classItem() {}
func (*ConstraintPrototype) classItem()   {}

// ClassProperty is a data declaration with qualifiers, eg. "rand protected bit [7:0] len;".
type ClassProperty struct {
	Qualifiers Seq[Symbol]
	Decl       DataDeclaration
}

func (n ClassProperty) Children() []Node { return nodes(n.Qualifiers, n.Decl) }
func (*ClassProperty) classItem()        {}

// ClassMethod is a task or function defined in a class, eg. "virtual function void f(); ... endfunction".
//
// Method is a *FunctionDeclaration or a *TaskDeclaration.
type ClassMethod struct {
	Qualifiers Seq[Symbol]
	Method     Node
}

func (n ClassMethod) Children() []Node { return nodes(n.Qualifiers, n.Method) }
func (*ClassMethod) classItem()        {}

// MethodPrototype declares a method defined elsewhere, eg. "extern function int size();" or
// "pure virtual task run();".
type MethodPrototype struct {
	Qualifiers Seq[Symbol]
	Keyword    Symbol
	ReturnType DataType
	Name       Identifier
	Ports      *Paren[*List[PortItem]]
	Semi       Symbol
}

func (n MethodPrototype) Children() []Node {
	return nodes(n.Qualifiers, n.Keyword, n.ReturnType, n.Name, n.Ports, n.Semi)
}
func (*MethodPrototype) classItem() {}

// ClassParameter is a parameter or localparam declared in a class body.
type ClassParameter struct {
	Decl ParameterDeclaration
}

func (n ClassParameter) Children() []Node { return nodes(n.Decl) }
func (*ClassParameter) classItem()        {}

// EmptyClassItem is a lone ";".
type EmptyClassItem struct {
	Semi Symbol
}

func (n EmptyClassItem) Children() []Node { return nodes(n.Semi) }
func (*EmptyClassItem) classItem()        {}

var (
	propertyQualifiers = []string{"static", "protected", "local", "randc", "rand", "const"}
	methodQualifiers   = []string{"pure", "virtual", "extern", "static", "protected", "local"}
)

func classDeclaration(in Input) (Input, ClassDeclaration, error) {
	return Rule(in, "class_declaration", func(in Input) (Input, ClassDeclaration, error) {
		var (
			out ClassDeclaration
			err error
		)
		s := in
		if s, out.Virtual, err = Opt(Literal("virtual"))(s); err != nil {
			return in, out, err
		}
		if s, out.Class, err = s.Literal("class"); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.Lifetime, err = Opt(lifetime)(s); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.Name, err = identifier(s); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.Params, err = Opt(parameterPortList)(s); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.Extends, err = Opt(classExtends)(s); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.Items, err = Many0(classItem)(s); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.End, err = s.Literal("endclass"); err != nil {
			return in, ClassDeclaration{}, err
		}
		if s, out.EndLabel, err = Opt(blockLabel)(s); err != nil {
			return in, ClassDeclaration{}, err
		}
		return s, out, nil
	})
}

func classExtends(in Input) (Input, ClassExtends, error) {
	var (
		out ClassExtends
		err error
	)
	s := in
	if s, out.Extends, err = s.Literal("extends"); err != nil {
		return in, out, err
	}
	if s, out.Type, err = classType(s); err != nil {
		return in, ClassExtends{}, err
	}
	if s, out.Args, err = Opt(Parens(Opt(listOfArguments)))(s); err != nil {
		return in, ClassExtends{}, err
	}
	return s, out, nil
}

func classItem(in Input) (Input, ClassItem, error) {
	return Choice("class_item",
		As[ClassItem](Map(constraintDeclaration, ptr[ConstraintDeclaration])),
		As[ClassItem](Map(constraintPrototype, ptr[ConstraintPrototype])),
		classProperty,
		classMethod,
		methodPrototype,
		func(in Input) (Input, ClassItem, error) {
			s, decl, err := parameterDeclaration(in)
			if err != nil {
				return in, nil, err
			}
			return s, &ClassParameter{Decl: decl}, nil
		},
		func(in Input) (Input, ClassItem, error) {
			s, semi, err := in.Literal(";")
			if err != nil {
				return in, nil, err
			}
			return s, &EmptyClassItem{Semi: semi}, nil
		},
	)(in)
}

func classProperty(in Input) (Input, ClassItem, error) {
	return Rule(in, "class_property", func(in Input) (Input, ClassItem, error) {
		var (
			out ClassProperty
			err error
		)
		s := in
		if s, out.Qualifiers, err = Many0(OneOfLiterals(propertyQualifiers...))(s); err != nil {
			return in, nil, err
		}
		if s, out.Decl, err = dataDeclaration(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func classMethod(in Input) (Input, ClassItem, error) {
	return Rule(in, "class_method", func(in Input) (Input, ClassItem, error) {
		var (
			out ClassMethod
			err error
		)
		s := in
		if s, out.Qualifiers, err = Many0(OneOfLiterals(methodQualifiers...))(s); err != nil {
			return in, nil, err
		}
		if s, out.Method, err = Alt(s,
			As[Node](Map(functionDeclaration, ptr[FunctionDeclaration])),
			As[Node](Map(taskDeclaration, ptr[TaskDeclaration])),
		); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func methodPrototype(in Input) (Input, ClassItem, error) {
	return Rule(in, "method_prototype", func(in Input) (Input, ClassItem, error) {
		var (
			out MethodPrototype
			err error
		)
		s := in
		if s, out.Qualifiers, err = Many0(OneOfLiterals(methodQualifiers...))(s); err != nil {
			return in, nil, err
		}
		if s, out.Keyword, err = OneOfLiterals("function", "task")(s); err != nil {
			return in, nil, err
		}
		function := s.ctx.src.Slice(out.Keyword.Span) == "function"
		type header struct {
			typ  DataType
			name Identifier
		}
		s, h, err := typedOrImplicit(s, func(in Input, typed bool) (Input, header, error) {
			var (
				h   header
				err error
			)
			t := in
			if typed && function {
				if t, h.typ, err = dataTypeOrVoid(t); err != nil {
					return in, header{}, err
				}
			}
			if t, h.name, err = identifierOrNew(t); err != nil {
				return in, header{}, err
			}
			return t, h, nil
		})
		if err != nil {
			return in, nil, err
		}
		out.ReturnType, out.Name = h.typ, h.name
		if s, out.Ports, err = Opt(portList)(s); err != nil {
			return in, nil, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}
