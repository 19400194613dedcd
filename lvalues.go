package svparse

// VariableLvalue is the target of a variable assignment.
type VariableLvalue interface {
	Node
	variableLvalue()
}

// VariableLvalueIdentifier is eg. "this.mem[i][7:0]".
type VariableLvalueIdentifier struct {
	Scope  ScopePrefix
	Name   HierarchicalIdentifier
	Select Select
}

func (n VariableLvalueIdentifier) Children() []Node { return nodes(n.Scope, n.Name, n.Select) }
func (*VariableLvalueIdentifier) variableLvalue()   {}

// VariableLvalueConcat is eg. "{carry, sum}".
type VariableLvalueConcat struct {
	Braces Brace[List[VariableLvalue]]
}

func (n VariableLvalueConcat) Children() []Node { return nodes(n.Braces) }
func (*VariableLvalueConcat) variableLvalue()   {}

// VariableLvaluePattern is eg. "'{a, b}".
type VariableLvaluePattern struct {
	Open  Symbol
	Items List[VariableLvalue]
	Close Symbol
}

func (n VariableLvaluePattern) Children() []Node { return nodes(n.Open, n.Items, n.Close) }
func (*VariableLvaluePattern) variableLvalue()   {}

func variableLvalue(in Input) (Input, VariableLvalue, error) {
	return Choice("variable_lvalue",
		variableLvalueIdentifier,
		variableLvalueConcat,
		variableLvaluePattern,
	)(in)
}

func variableLvalueIdentifier(in Input) (Input, VariableLvalue, error) {
	var (
		out VariableLvalueIdentifier
		err error
	)
	s := in
	if s, out.Scope, err = Maybe(handleOrPackageScope)(s); err != nil {
		return in, nil, err
	}
	if s, out.Name, err = hierarchicalIdentifier(s); err != nil {
		return in, nil, err
	}
	if s, out.Select, err = selection(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func variableLvalueConcat(in Input) (Input, VariableLvalue, error) {
	s, braces, err := Braces(CommaList(variableLvalue))(in)
	if err != nil {
		return in, nil, err
	}
	return s, &VariableLvalueConcat{Braces: braces}, nil
}

func variableLvaluePattern(in Input) (Input, VariableLvalue, error) {
	var (
		out VariableLvaluePattern
		err error
	)
	s := in
	if s, out.Open, err = s.Literal("'{"); err != nil {
		return in, nil, err
	}
	if s, out.Items, err = CommaList(variableLvalue)(s); err != nil {
		return in, nil, err
	}
	if s, out.Close, err = s.Literal("}"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

// NonrangeVariableLvalue is a variable with bit selects but no part select.
type NonrangeVariableLvalue struct {
	Scope  ScopePrefix
	Name   HierarchicalIdentifier
	Select Seq[Bracket[Expression]]
}

func (n NonrangeVariableLvalue) Children() []Node { return nodes(n.Scope, n.Name, n.Select) }

func nonrangeVariableLvalue(in Input) (Input, NonrangeVariableLvalue, error) {
	return Rule(in, "nonrange_variable_lvalue", func(in Input) (Input, NonrangeVariableLvalue, error) {
		var (
			out NonrangeVariableLvalue
			err error
		)
		s := in
		if s, out.Scope, err = Maybe(handleOrPackageScope)(s); err != nil {
			return in, out, err
		}
		if s, out.Name, err = hierarchicalIdentifier(s); err != nil {
			return in, NonrangeVariableLvalue{}, err
		}
		if s, out.Select, err = bitSelect(s); err != nil {
			return in, NonrangeVariableLvalue{}, err
		}
		return s, out, nil
	})
}

// NetLvalue is the target of a net assignment.
type NetLvalue interface {
	Node
	netLvalue()
}

// NetLvalueIdentifier is eg. "bus[3:0]".
type NetLvalueIdentifier struct {
	Scope  ScopePrefix
	Name   HierarchicalIdentifier
	Select Select
}

func (n NetLvalueIdentifier) Children() []Node { return nodes(n.Scope, n.Name, n.Select) }
func (*NetLvalueIdentifier) netLvalue()        {}

// NetLvalueConcat is eg. "{hi, lo}".
type NetLvalueConcat struct {
	Braces Brace[List[NetLvalue]]
}

func (n NetLvalueConcat) Children() []Node { return nodes(n.Braces) }
func (*NetLvalueConcat) netLvalue()        {}

func netLvalue(in Input) (Input, NetLvalue, error) {
	return Choice("net_lvalue",
		netLvalueIdentifier,
		netLvalueConcat,
	)(in)
}

func netLvalueIdentifier(in Input) (Input, NetLvalue, error) {
	var (
		out NetLvalueIdentifier
		err error
	)
	s := in
	if s, out.Scope, err = Maybe(As[ScopePrefix](Map(packageScope, ptr[PackageScope])))(s); err != nil {
		return in, nil, err
	}
	if s, out.Name, err = hierarchicalIdentifier(s); err != nil {
		return in, nil, err
	}
	if s, out.Select, err = selection(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func netLvalueConcat(in Input) (Input, NetLvalue, error) {
	s, braces, err := Braces(CommaList(netLvalue))(in)
	if err != nil {
		return in, nil, err
	}
	return s, &NetLvalueConcat{Braces: braces}, nil
}
