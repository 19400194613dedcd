package svparse

import (
	"github.com/svparse/svparse/lexer"
)

// Identifier is a simple or escaped identifier.
type Identifier struct {
	Name Symbol
}

func (n Identifier) Children() []Node { return nodes(n.Name) }

func identifier(in Input) (Input, Identifier, error) {
	return Rule(in, "identifier", func(in Input) (Input, Identifier, error) {
		s, name, err := in.Match("identifier", lexer.ScanSimpleIdentifier)
		if err != nil {
			s, name, err = in.Match("identifier", lexer.ScanEscapedIdentifier)
		}
		if err != nil {
			return in, Identifier{}, err
		}
		return s, Identifier{Name: name}, nil
	})
}

// identifierOrNew also accepts the class constructor name "new".
func identifierOrNew(in Input) (Input, Identifier, error) {
	if s, name, err := in.Literal("new"); err == nil {
		return s, Identifier{Name: name}, nil
	}
	return identifier(in)
}

// IdentifierList is a comma separated list of identifiers.
type IdentifierList struct {
	List List[Identifier]
}

func (n IdentifierList) Children() []Node { return nodes(n.List) }

func identifierList(in Input) (Input, IdentifierList, error) {
	return Rule(in, "identifier_list", func(in Input) (Input, IdentifierList, error) {
		s, list, err := CommaList(identifier)(in)
		if err != nil {
			return in, IdentifierList{}, err
		}
		return s, IdentifierList{List: list}, nil
	})
}

// SystemTfIdentifier is the name of a system task or function, eg. $display.
type SystemTfIdentifier struct {
	Name Symbol
}

func (n SystemTfIdentifier) Children() []Node { return nodes(n.Name) }

func systemTfIdentifier(in Input) (Input, SystemTfIdentifier, error) {
	return Rule(in, "system_tf_identifier", func(in Input) (Input, SystemTfIdentifier, error) {
		s, name, err := in.Match("system task or function name", lexer.ScanSystemIdentifier)
		if err != nil {
			return in, SystemTfIdentifier{}, err
		}
		return s, SystemTfIdentifier{Name: name}, nil
	})
}

// ImplicitClassHandle is "this", "super" or "this.super".
type ImplicitClassHandle struct {
	This  *Symbol
	Dot   *Symbol
	Super *Symbol
}

func (n ImplicitClassHandle) Children() []Node { return nodes(n.This, n.Dot, n.Super) }

func implicitClassHandle(in Input) (Input, ImplicitClassHandle, error) {
	return Rule(in, "implicit_class_handle", func(in Input) (Input, ImplicitClassHandle, error) {
		var out ImplicitClassHandle
		s, this, err := in.Literal("this")
		if err != nil {
			s, super, err := in.Literal("super")
			if err != nil {
				return in, out, err
			}
			out.Super = &super
			return s, out, nil
		}
		out.This = &this
		if t, dot, err := s.Literal("."); err == nil {
			if t, super, err := t.Literal("super"); err == nil {
				out.Dot, out.Super = &dot, &super
				return t, out, nil
			}
		}
		return s, out, nil
	})
}

// ScopePrefix qualifies a name with a class handle, class or package.
type ScopePrefix interface {
	Node
	scopePrefix()
}

// ImplicitClassScope is eg. "this." in "this.x".
type ImplicitClassScope struct {
	Handle ImplicitClassHandle
	Dot    Symbol
}

func (n ImplicitClassScope) Children() []Node { return nodes(n.Handle, n.Dot) }
func (*ImplicitClassScope) scopePrefix()      {}

// ClassScope is eg. "C::" or "C#(8)::".
type ClassScope struct {
	Type ClassType
	Sep  Symbol
}

func (n ClassScope) Children() []Node { return nodes(n.Type, n.Sep) }
func (*ClassScope) scopePrefix()      {}

// PackageScope is eg. "pkg::" or "$unit::".
type PackageScope struct {
	Name Symbol
	Sep  Symbol
}

func (n PackageScope) Children() []Node { return nodes(n.Name, n.Sep) }
func (*PackageScope) scopePrefix()      {}

func implicitClassScope(in Input) (Input, ScopePrefix, error) {
	return Rule(in, "implicit_class_handle_scope", func(in Input) (Input, ScopePrefix, error) {
		s, handle, err := implicitClassHandle(in)
		if err != nil {
			return in, nil, err
		}
		s, dot, err := s.Literal(".")
		if err != nil {
			return in, nil, err
		}
		return s, &ImplicitClassScope{Handle: handle, Dot: dot}, nil
	})
}

func classScope(in Input) (Input, ClassScope, error) {
	return Rule(in, "class_scope", func(in Input) (Input, ClassScope, error) {
		s, typ, err := classType(in)
		if err != nil {
			return in, ClassScope{}, err
		}
		s, sep, err := s.Literal("::")
		if err != nil {
			return in, ClassScope{}, err
		}
		return s, ClassScope{Type: typ, Sep: sep}, nil
	})
}

func packageScope(in Input) (Input, PackageScope, error) {
	return Rule(in, "package_scope", func(in Input) (Input, PackageScope, error) {
		s, name, err := in.Literal("$unit")
		if err != nil {
			var id Identifier
			if s, id, err = identifier(in); err != nil {
				return in, PackageScope{}, err
			}
			name = id.Name
		}
		s, sep, err := s.Literal("::")
		if err != nil {
			return in, PackageScope{}, err
		}
		return s, PackageScope{Name: name, Sep: sep}, nil
	})
}

// "this." or "C::"
func classQualifier(in Input) (Input, ScopePrefix, error) {
	return Choice("implicit_class_handle_or_class_scope",
		implicitClassScope,
		As[ScopePrefix](Map(classScope, ptr[ClassScope])),
	)(in)
}

// "this." or "pkg::"
func handleOrPackageScope(in Input) (Input, ScopePrefix, error) {
	return Choice("implicit_class_handle_or_package_scope",
		implicitClassScope,
		As[ScopePrefix](Map(packageScope, ptr[PackageScope])),
	)(in)
}

// "this.", "C::" or "pkg::"
func scopePrefix(in Input) (Input, ScopePrefix, error) {
	return Choice("implicit_class_handle_or_class_scope_or_package_scope",
		implicitClassScope,
		As[ScopePrefix](Map(classScope, ptr[ClassScope])),
		As[ScopePrefix](Map(packageScope, ptr[PackageScope])),
	)(in)
}

// ClassType names a class, with optional parameter values.
type ClassType struct {
	Name   Identifier
	Params *ParameterValueAssignment
}

func (n ClassType) Children() []Node { return nodes(n.Name, n.Params) }

func classType(in Input) (Input, ClassType, error) {
	return Rule(in, "class_type", func(in Input) (Input, ClassType, error) {
		s, name, err := identifier(in)
		if err != nil {
			return in, ClassType{}, err
		}
		s, params, err := Opt(parameterValueAssignment)(s)
		if err != nil {
			return in, ClassType{}, err
		}
		return s, ClassType{Name: name, Params: params}, nil
	})
}

// ParameterValueAssignment is eg. "#(8, .W(4))".
type ParameterValueAssignment struct {
	Hash Symbol
	Args Paren[*ListOfArguments]
}

func (n ParameterValueAssignment) Children() []Node { return nodes(n.Hash, n.Args) }

func parameterValueAssignment(in Input) (Input, ParameterValueAssignment, error) {
	return Rule(in, "parameter_value_assignment", func(in Input) (Input, ParameterValueAssignment, error) {
		s, hash, err := in.Literal("#")
		if err != nil {
			return in, ParameterValueAssignment{}, err
		}
		s, args, err := Parens(Opt(listOfArguments))(s)
		if err != nil {
			return in, ParameterValueAssignment{}, err
		}
		return s, ParameterValueAssignment{Hash: hash, Args: args}, nil
	})
}

// RootScope is "$root." at the start of a hierarchical identifier.
type RootScope struct {
	Root Symbol
	Dot  Symbol
}

func (n RootScope) Children() []Node { return nodes(n.Root, n.Dot) }

// HierarchicalSegment is one "name[select]." step of a hierarchical path.
type HierarchicalSegment struct {
	Name   Identifier
	Select Seq[Bracket[Expression]]
	Dot    Symbol
}

func (n HierarchicalSegment) Children() []Node { return nodes(n.Name, n.Select, n.Dot) }

func hierarchicalSegment(in Input) (Input, HierarchicalSegment, error) {
	var (
		out HierarchicalSegment
		err error
	)
	s := in
	if s, out.Name, err = identifier(s); err != nil {
		return in, out, err
	}
	if s, out.Select, err = bitSelect(s); err != nil {
		return in, out, err
	}
	if s, out.Dot, err = s.Literal("."); err != nil {
		return in, HierarchicalSegment{}, err
	}
	return s, out, nil
}

// HierarchicalIdentifier is eg. "top.u_core[0].count".
type HierarchicalIdentifier struct {
	Root *RootScope
	Path Seq[HierarchicalSegment]
	Name Identifier
}

func (n HierarchicalIdentifier) Children() []Node { return nodes(n.Root, n.Path, n.Name) }

func hierarchicalIdentifier(in Input) (Input, HierarchicalIdentifier, error) {
	return Rule(in, "hierarchical_identifier", func(in Input) (Input, HierarchicalIdentifier, error) {
		return hierarchicalIdentifierEnding(in, identifier)
	})
}

func hierarchicalIdentifierEnding(in Input, name Combinator[Identifier]) (Input, HierarchicalIdentifier, error) {
	var (
		out HierarchicalIdentifier
		err error
	)
	s := in
	if t, root, err := s.Literal("$root"); err == nil {
		if t, dot, err := t.Literal("."); err == nil {
			out.Root = &RootScope{Root: root, Dot: dot}
			s = t
		}
	}
	if s, out.Path, err = Many0(hierarchicalSegment)(s); err != nil {
		return in, out, err
	}
	if s, out.Name, err = name(s); err != nil {
		return in, HierarchicalIdentifier{}, err
	}
	return s, out, nil
}

func bitSelect(in Input) (Input, Seq[Bracket[Expression]], error) {
	return Many0(Brackets(expression))(in)
}

// Select is zero or more bit selects optionally followed by a part select, eg. "[i][7:0]".
type Select struct {
	Bits Seq[Bracket[Expression]]
	Part *Bracket[PartSelectRange]
}

func (n Select) Children() []Node { return nodes(n.Bits, n.Part) }

func selection(in Input) (Input, Select, error) {
	return Rule(in, "select", func(in Input) (Input, Select, error) {
		var (
			out Select
			err error
		)
		s := in
		if s, out.Bits, err = bitSelect(s); err != nil {
			return in, out, err
		}
		if s, out.Part, err = Opt(Brackets(partSelectRange))(s); err != nil {
			return in, Select{}, err
		}
		return s, out, nil
	})
}

// PartSelectRange is the inside of a part select.
type PartSelectRange interface {
	Node
	partSelectRange()
}

// Range is "left:right".
type Range struct {
	Left  Expression
	Colon Symbol
	Right Expression
}

func (n Range) Children() []Node { return nodes(n.Left, n.Colon, n.Right) }
func (*Range) partSelectRange()  {}

// IndexedRange is "base+:width" or "base-:width".
type IndexedRange struct {
	Base  Expression
	Op    Symbol
	Width Expression
}

func (n IndexedRange) Children() []Node { return nodes(n.Base, n.Op, n.Width) }
func (*IndexedRange) partSelectRange()  {}

func rangeExpression(in Input) (Input, Range, error) {
	return Rule(in, "constant_range", func(in Input) (Input, Range, error) {
		var (
			out Range
			err error
		)
		s := in
		if s, out.Left, err = expression(s); err != nil {
			return in, out, err
		}
		if s, out.Colon, err = s.Literal(":"); err != nil {
			return in, Range{}, err
		}
		if s, out.Right, err = expression(s); err != nil {
			return in, Range{}, err
		}
		return s, out, nil
	})
}

func indexedRange(in Input) (Input, PartSelectRange, error) {
	return Rule(in, "indexed_range", func(in Input) (Input, PartSelectRange, error) {
		var (
			out IndexedRange
			err error
		)
		s := in
		if s, out.Base, err = expression(s); err != nil {
			return in, nil, err
		}
		if s, out.Op, err = OneOfLiterals("+:", "-:")(s); err != nil {
			return in, nil, err
		}
		if s, out.Width, err = expression(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func partSelectRange(in Input) (Input, PartSelectRange, error) {
	return Choice("part_select_range",
		As[PartSelectRange](Map(rangeExpression, ptr[Range])),
		indexedRange,
	)(in)
}

func ptr[T any](v T) *T { return &v }
