package svparse

// SubroutineCall is a task, function, system task or randomize call.
type SubroutineCall interface {
	Node
	subroutineCall()
}

// TfCall is a call to a user defined task or function, eg. "pkg::f(1)" or "obj.m".
type TfCall struct {
	Scope ScopePrefix
	Name  HierarchicalIdentifier
	Args  *Paren[*ListOfArguments]
}

func (n TfCall) Children() []Node { return nodes(n.Scope, n.Name, n.Args) }
func (*TfCall) subroutineCall()   {}

// SystemTfCall is eg. "$display("%d", x)".
type SystemTfCall struct {
	Name SystemTfIdentifier
	Args *Paren[*ListOfArguments]
}

func (n SystemTfCall) Children() []Node { return nodes(n.Name, n.Args) }
func (*SystemTfCall) subroutineCall()   {}

// RandomizeCall is eg. "std::randomize(x) with { x < 10; }" or "obj.randomize()".
type RandomizeCall struct {
	Scope     *PackageScope
	Path      Seq[HierarchicalSegment]
	Randomize Symbol
	// Variables to randomize, or "null".
	Args *Paren[Node]
	With *RandomizeWith
}

func (n RandomizeCall) Children() []Node {
	return nodes(n.Scope, n.Path, n.Randomize, n.Args, n.With)
}
func (*RandomizeCall) subroutineCall() {}

// RandomizeWith is the inline constraint of a randomize call.
type RandomizeWith struct {
	With   Symbol
	Idents *Paren[*IdentifierList]
	Block  ConstraintBlock
}

func (n RandomizeWith) Children() []Node { return nodes(n.With, n.Idents, n.Block) }

// SubroutineCallStatement is a subroutine call used as a statement.
type SubroutineCallStatement interface {
	StatementItem
	subroutineCallStatement()
}

// CallStatement is eg. "$display(x);".
type CallStatement struct {
	Call SubroutineCall
	Semi Symbol
}

func (n CallStatement) Children() []Node        { return nodes(n.Call, n.Semi) }
func (*CallStatement) statementItem()           {}
func (*CallStatement) subroutineCallStatement() {}

// VoidCastStatement discards the result of a function, eg. "void'(f(x));".
type VoidCastStatement struct {
	Void       Symbol
	Apostrophe Symbol
	Call       Paren[SubroutineCall]
	Semi       Symbol
}

func (n VoidCastStatement) Children() []Node {
	return nodes(n.Void, n.Apostrophe, n.Call, n.Semi)
}
func (*VoidCastStatement) statementItem()           {}
func (*VoidCastStatement) subroutineCallStatement() {}

func subroutineCallStatement(in Input) (Input, SubroutineCallStatement, error) {
	return Choice("subroutine_call_statement",
		callStatement,
		voidCastStatement,
	)(in)
}

func callStatement(in Input) (Input, SubroutineCallStatement, error) {
	var (
		out CallStatement
		err error
	)
	s := in
	if s, out.Call, err = subroutineCall(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func voidCastStatement(in Input) (Input, SubroutineCallStatement, error) {
	var (
		out VoidCastStatement
		err error
	)
	s := in
	if s, out.Void, err = s.Literal("void"); err != nil {
		return in, nil, err
	}
	if s, out.Apostrophe, err = s.Literal("'"); err != nil {
		return in, nil, err
	}
	if s, out.Call, err = Parens(functionSubroutineCall)(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func subroutineCall(in Input) (Input, SubroutineCall, error) {
	return Choice("subroutine_call",
		randomizeCall,
		systemTfCall,
		tfCall(false),
	)(in)
}

// functionSubroutineCall is a call in expression position, where user defined calls need an
// argument list to be distinguished from a plain variable reference.
func functionSubroutineCall(in Input) (Input, SubroutineCall, error) {
	return Choice("function_subroutine_call",
		randomizeCall,
		systemTfCall,
		tfCall(true),
	)(in)
}

func tfCall(requireArgs bool) Combinator[SubroutineCall] {
	return func(in Input) (Input, SubroutineCall, error) {
		return Rule(in, "tf_call", func(in Input) (Input, SubroutineCall, error) {
			var (
				out TfCall
				err error
			)
			s := in
			if s, out.Scope, err = Maybe(scopePrefix)(s); err != nil {
				return in, nil, err
			}
			// "new" is only a method name behind a class handle, eg. "super.new(8)".
			name := identifier
			if out.Scope != nil {
				name = identifierOrNew
			}
			if s, out.Name, err = hierarchicalIdentifierEnding(s, name); err != nil {
				return in, nil, err
			}
			args := Opt(Parens(Opt(listOfArguments)))
			if requireArgs {
				args = Map(Parens(Opt(listOfArguments)), ptr[Paren[*ListOfArguments]])
			}
			if s, out.Args, err = args(s); err != nil {
				return in, nil, err
			}
			return s, &out, nil
		})
	}
}

func systemTfCall(in Input) (Input, SubroutineCall, error) {
	return Rule(in, "system_tf_call", func(in Input) (Input, SubroutineCall, error) {
		var (
			out SystemTfCall
			err error
		)
		s := in
		if s, out.Name, err = systemTfIdentifier(s); err != nil {
			return in, nil, err
		}
		if s, out.Args, err = Opt(Parens(Opt(listOfArguments)))(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func randomizeCall(in Input) (Input, SubroutineCall, error) {
	return Rule(in, "randomize_call", func(in Input) (Input, SubroutineCall, error) {
		var (
			out RandomizeCall
			err error
		)
		s := in
		if s, out.Scope, err = Opt(packageScope)(s); err != nil {
			return in, nil, err
		}
		if out.Scope == nil {
			if s, out.Path, err = Many0(hierarchicalSegment)(s); err != nil {
				return in, nil, err
			}
		}
		if s, out.Randomize, err = s.Literal("randomize"); err != nil {
			return in, nil, err
		}
		if s, out.Args, err = Opt(Parens(randomizeArguments))(s); err != nil {
			return in, nil, err
		}
		if s, out.With, err = Opt(randomizeWith)(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

// Variable list, "null" or nothing.
func randomizeArguments(in Input) (Input, Node, error) {
	if s, null, err := in.Literal("null"); err == nil {
		return s, null, nil
	}
	s, list, err := Opt(identifierList)(in)
	if err != nil {
		return in, nil, err
	}
	if list == nil {
		return s, nil, nil
	}
	return s, list, nil
}

func randomizeWith(in Input) (Input, RandomizeWith, error) {
	var (
		out RandomizeWith
		err error
	)
	s := in
	if s, out.With, err = s.Literal("with"); err != nil {
		return in, out, err
	}
	if s, out.Idents, err = Opt(Parens(Opt(identifierList)))(s); err != nil {
		return in, RandomizeWith{}, err
	}
	if s, out.Block, err = constraintBlock(s); err != nil {
		return in, RandomizeWith{}, err
	}
	return s, out, nil
}
