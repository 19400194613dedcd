package svparse

// InitialConstruct is "initial statement".
type InitialConstruct struct {
	Initial Symbol
	Body    StatementOrNull
}

func (n InitialConstruct) Children() []Node { return nodes(n.Initial, n.Body) }

// AlwaysKind distinguishes the always keywords.
type AlwaysKind int

const (
	Always AlwaysKind = iota
	AlwaysComb
	AlwaysLatch
	AlwaysFF
)

func (k AlwaysKind) String() string {
	switch k {
	case AlwaysComb:
		return "always_comb"
	case AlwaysLatch:
		return "always_latch"
	case AlwaysFF:
		return "always_ff"
	}
	return "always"
}

// AlwaysKeyword is one of always, always_comb, always_latch or always_ff.
type AlwaysKeyword struct {
	Kind    AlwaysKind
	Keyword Symbol
}

func (n AlwaysKeyword) Children() []Node { return nodes(n.Keyword) }

// AlwaysConstruct is eg. "always_ff @(posedge clk) q <= d;".
type AlwaysConstruct struct {
	Keyword AlwaysKeyword
	Body    Statement
}

func (n AlwaysConstruct) Children() []Node { return nodes(n.Keyword, n.Body) }

// FinalConstruct is "final statement".
type FinalConstruct struct {
	Final Symbol
	Body  Statement
}

func (n FinalConstruct) Children() []Node { return nodes(n.Final, n.Body) }

func initialConstruct(in Input) (Input, InitialConstruct, error) {
	return Rule(in, "initial_construct", func(in Input) (Input, InitialConstruct, error) {
		var (
			out InitialConstruct
			err error
		)
		s := in
		if s, out.Initial, err = s.Literal("initial"); err != nil {
			return in, out, err
		}
		if s, out.Body, err = statementOrNull(s); err != nil {
			return in, InitialConstruct{}, err
		}
		return s, out, nil
	})
}

func alwaysConstruct(in Input) (Input, AlwaysConstruct, error) {
	return Rule(in, "always_construct", func(in Input) (Input, AlwaysConstruct, error) {
		var (
			out AlwaysConstruct
			err error
		)
		s := in
		if s, out.Keyword, err = alwaysKeyword(s); err != nil {
			return in, out, err
		}
		if s, out.Body, err = statement(s); err != nil {
			return in, AlwaysConstruct{}, err
		}
		return s, out, nil
	})
}

func alwaysKeyword(in Input) (Input, AlwaysKeyword, error) {
	keyword := func(text string, kind AlwaysKind) Combinator[AlwaysKeyword] {
		return Map(Literal(text), func(s Symbol) AlwaysKeyword { return AlwaysKeyword{Kind: kind, Keyword: s} })
	}
	return Choice("always_keyword",
		keyword("always_comb", AlwaysComb),
		keyword("always_latch", AlwaysLatch),
		keyword("always_ff", AlwaysFF),
		keyword("always", Always),
	)(in)
}

func finalConstruct(in Input) (Input, FinalConstruct, error) {
	return Rule(in, "final_construct", func(in Input) (Input, FinalConstruct, error) {
		var (
			out FinalConstruct
			err error
		)
		s := in
		if s, out.Final, err = s.Literal("final"); err != nil {
			return in, out, err
		}
		if s, out.Body, err = statement(s); err != nil {
			return in, FinalConstruct{}, err
		}
		return s, out, nil
	})
}

// BlockingAssignment is the blocking assignment variants.
type BlockingAssignment interface {
	Node
	blockingAssignment()
}

// BlockingAssignmentVariable is eg. "x = #1 y".
type BlockingAssignmentVariable struct {
	Lvalue  VariableLvalue
	Eq      Symbol
	Control DelayOrEventControl
	Expr    Expression
}

func (n BlockingAssignmentVariable) Children() []Node {
	return nodes(n.Lvalue, n.Eq, n.Control, n.Expr)
}
func (*BlockingAssignmentVariable) blockingAssignment() {}

// BlockingAssignmentNonrangeVariable is eg. "arr = new[8]".
type BlockingAssignmentNonrangeVariable struct {
	Lvalue NonrangeVariableLvalue
	Eq     Symbol
	New    DynamicArrayNew
}

func (n BlockingAssignmentNonrangeVariable) Children() []Node {
	return nodes(n.Lvalue, n.Eq, n.New)
}
func (*BlockingAssignmentNonrangeVariable) blockingAssignment() {}

// BlockingAssignmentHierarchicalVariable is eg. "this.pkt = new(1)".
type BlockingAssignmentHierarchicalVariable struct {
	Scope  ScopePrefix
	Name   HierarchicalIdentifier
	Select Select
	Eq     Symbol
	New    ClassNew
}

func (n BlockingAssignmentHierarchicalVariable) Children() []Node {
	return nodes(n.Scope, n.Name, n.Select, n.Eq, n.New)
}
func (*BlockingAssignmentHierarchicalVariable) blockingAssignment() {}

// OperatorAssignment is eg. "count += 1".
type OperatorAssignment struct {
	Lvalue VariableLvalue
	Op     AssignmentOperator
	Expr   Expression
}

func (n OperatorAssignment) Children() []Node   { return nodes(n.Lvalue, n.Op, n.Expr) }
func (*OperatorAssignment) blockingAssignment() {}

// AssignmentOperator is one of = += -= *= /= %= &= |= ^= <<= >>= <<<= >>>=.
type AssignmentOperator struct {
	Op Symbol
}

func (n AssignmentOperator) Children() []Node { return nodes(n.Op) }

var assignmentOperators = []string{"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<<=", ">>>=", "<<=", ">>="}

// NonblockingAssignment is eg. "q <= #1 d".
type NonblockingAssignment struct {
	Lvalue  VariableLvalue
	Op      Symbol
	Control DelayOrEventControl
	Expr    Expression
}

func (n NonblockingAssignment) Children() []Node {
	return nodes(n.Lvalue, n.Op, n.Control, n.Expr)
}

func blockingAssignment(in Input) (Input, BlockingAssignment, error) {
	return Choice("blocking_assignment",
		blockingAssignmentVariable,
		blockingAssignmentNonrangeVariable,
		blockingAssignmentHierarchicalVariable,
		As[BlockingAssignment](Map(operatorAssignment, ptr[OperatorAssignment])),
	)(in)
}

func blockingAssignmentVariable(in Input) (Input, BlockingAssignment, error) {
	return Rule(in, "blocking_assignment_variable", func(in Input) (Input, BlockingAssignment, error) {
		var (
			out BlockingAssignmentVariable
			err error
		)
		s := in
		if s, out.Lvalue, err = variableLvalue(s); err != nil {
			return in, nil, err
		}
		if s, out.Eq, err = s.Literal("="); err != nil {
			return in, nil, err
		}
		if s, out.Control, err = Maybe(delayOrEventControl)(s); err != nil {
			return in, nil, err
		}
		if s, out.Expr, err = expression(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func blockingAssignmentNonrangeVariable(in Input) (Input, BlockingAssignment, error) {
	return Rule(in, "blocking_assignment_nonrange_variable", func(in Input) (Input, BlockingAssignment, error) {
		var (
			out BlockingAssignmentNonrangeVariable
			err error
		)
		s := in
		if s, out.Lvalue, err = nonrangeVariableLvalue(s); err != nil {
			return in, nil, err
		}
		if s, out.Eq, err = s.Literal("="); err != nil {
			return in, nil, err
		}
		if s, out.New, err = dynamicArrayNew(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func blockingAssignmentHierarchicalVariable(in Input) (Input, BlockingAssignment, error) {
	return Rule(in, "blocking_assignment_hierarchical_variable", func(in Input) (Input, BlockingAssignment, error) {
		var (
			out BlockingAssignmentHierarchicalVariable
			err error
		)
		s := in
		if s, out.Scope, err = Maybe(scopePrefix)(s); err != nil {
			return in, nil, err
		}
		if s, out.Name, err = hierarchicalIdentifier(s); err != nil {
			return in, nil, err
		}
		if s, out.Select, err = selection(s); err != nil {
			return in, nil, err
		}
		if s, out.Eq, err = s.Literal("="); err != nil {
			return in, nil, err
		}
		if s, out.New, err = classNew(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func operatorAssignment(in Input) (Input, OperatorAssignment, error) {
	return Rule(in, "operator_assignment", func(in Input) (Input, OperatorAssignment, error) {
		var (
			out OperatorAssignment
			err error
		)
		s := in
		if s, out.Lvalue, err = variableLvalue(s); err != nil {
			return in, out, err
		}
		if s, out.Op, err = assignmentOperator(s); err != nil {
			return in, OperatorAssignment{}, err
		}
		if s, out.Expr, err = expression(s); err != nil {
			return in, OperatorAssignment{}, err
		}
		return s, out, nil
	})
}

func assignmentOperator(in Input) (Input, AssignmentOperator, error) {
	return Rule(in, "assignment_operator", func(in Input) (Input, AssignmentOperator, error) {
		s, op, err := OneOfLiterals(assignmentOperators...)(in)
		if err != nil {
			return in, AssignmentOperator{}, err
		}
		return s, AssignmentOperator{Op: op}, nil
	})
}

func nonblockingAssignment(in Input) (Input, NonblockingAssignment, error) {
	return Rule(in, "nonblocking_assignment", func(in Input) (Input, NonblockingAssignment, error) {
		var (
			out NonblockingAssignment
			err error
		)
		s := in
		if s, out.Lvalue, err = variableLvalue(s); err != nil {
			return in, out, err
		}
		if s, out.Op, err = s.Literal("<="); err != nil {
			return in, NonblockingAssignment{}, err
		}
		if s, out.Control, err = Maybe(delayOrEventControl)(s); err != nil {
			return in, NonblockingAssignment{}, err
		}
		if s, out.Expr, err = expression(s); err != nil {
			return in, NonblockingAssignment{}, err
		}
		return s, out, nil
	})
}

// ProceduralContinuousAssignment is the assign, deassign, force and release variants.
type ProceduralContinuousAssignment interface {
	Node
	proceduralContinuousAssignment()
}

// AssignAssignment is "assign lvalue = expr".
type AssignAssignment struct {
	Assign     Symbol
	Assignment VariableAssignment
}

func (n AssignAssignment) Children() []Node               { return nodes(n.Assign, n.Assignment) }
func (*AssignAssignment) proceduralContinuousAssignment() {}

// DeassignAssignment is "deassign lvalue".
type DeassignAssignment struct {
	Deassign Symbol
	Lvalue   VariableLvalue
}

func (n DeassignAssignment) Children() []Node               { return nodes(n.Deassign, n.Lvalue) }
func (*DeassignAssignment) proceduralContinuousAssignment() {}

// ForceVariable is "force lvalue = expr" on a variable.
type ForceVariable struct {
	Force      Symbol
	Assignment VariableAssignment
}

func (n ForceVariable) Children() []Node               { return nodes(n.Force, n.Assignment) }
func (*ForceVariable) proceduralContinuousAssignment() {}

// ForceNet is "force lvalue = expr" on a net.
type ForceNet struct {
	Force      Symbol
	Assignment NetAssignment
}

func (n ForceNet) Children() []Node               { return nodes(n.Force, n.Assignment) }
func (*ForceNet) proceduralContinuousAssignment() {}

// ReleaseVariable is "release lvalue" on a variable.
type ReleaseVariable struct {
	Release Symbol
	Lvalue  VariableLvalue
}

func (n ReleaseVariable) Children() []Node               { return nodes(n.Release, n.Lvalue) }
func (*ReleaseVariable) proceduralContinuousAssignment() {}

// ReleaseNet is "release lvalue" on a net.
type ReleaseNet struct {
	Release Symbol
	Lvalue  NetLvalue
}

func (n ReleaseNet) Children() []Node               { return nodes(n.Release, n.Lvalue) }
func (*ReleaseNet) proceduralContinuousAssignment() {}

// VariableAssignment is "lvalue = expr".
type VariableAssignment struct {
	Lvalue VariableLvalue
	Eq     Symbol
	Expr   Expression
}

func (n VariableAssignment) Children() []Node { return nodes(n.Lvalue, n.Eq, n.Expr) }

// NetAssignment is "net_lvalue = expr".
type NetAssignment struct {
	Lvalue NetLvalue
	Eq     Symbol
	Expr   Expression
}

func (n NetAssignment) Children() []Node { return nodes(n.Lvalue, n.Eq, n.Expr) }

func proceduralContinuousAssignment(in Input) (Input, ProceduralContinuousAssignment, error) {
	return Choice("procedural_continuous_assignment",
		func(in Input) (Input, ProceduralContinuousAssignment, error) {
			return keywordThen(in, "assign", variableAssignment, func(k Symbol, a VariableAssignment) ProceduralContinuousAssignment {
				return &AssignAssignment{Assign: k, Assignment: a}
			})
		},
		func(in Input) (Input, ProceduralContinuousAssignment, error) {
			return keywordThen(in, "deassign", variableLvalue, func(k Symbol, l VariableLvalue) ProceduralContinuousAssignment {
				return &DeassignAssignment{Deassign: k, Lvalue: l}
			})
		},
		func(in Input) (Input, ProceduralContinuousAssignment, error) {
			return keywordThen(in, "force", variableAssignment, func(k Symbol, a VariableAssignment) ProceduralContinuousAssignment {
				return &ForceVariable{Force: k, Assignment: a}
			})
		},
		func(in Input) (Input, ProceduralContinuousAssignment, error) {
			return keywordThen(in, "force", netAssignment, func(k Symbol, a NetAssignment) ProceduralContinuousAssignment {
				return &ForceNet{Force: k, Assignment: a}
			})
		},
		func(in Input) (Input, ProceduralContinuousAssignment, error) {
			return keywordThen(in, "release", variableLvalue, func(k Symbol, l VariableLvalue) ProceduralContinuousAssignment {
				return &ReleaseVariable{Release: k, Lvalue: l}
			})
		},
		func(in Input) (Input, ProceduralContinuousAssignment, error) {
			return keywordThen(in, "release", netLvalue, func(k Symbol, l NetLvalue) ProceduralContinuousAssignment {
				return &ReleaseNet{Release: k, Lvalue: l}
			})
		},
	)(in)
}

// keywordThen matches a keyword followed by p, and combines the two with f.
func keywordThen[T, U any](in Input, keyword string, p Combinator[T], f func(Symbol, T) U) (Input, U, error) {
	var zero U
	s, k, err := in.Literal(keyword)
	if err != nil {
		return in, zero, err
	}
	s, v, err := p(s)
	if err != nil {
		return in, zero, err
	}
	return s, f(k, v), nil
}

func variableAssignment(in Input) (Input, VariableAssignment, error) {
	return Rule(in, "variable_assignment", func(in Input) (Input, VariableAssignment, error) {
		var (
			out VariableAssignment
			err error
		)
		s := in
		if s, out.Lvalue, err = variableLvalue(s); err != nil {
			return in, out, err
		}
		if s, out.Eq, err = s.Literal("="); err != nil {
			return in, VariableAssignment{}, err
		}
		if s, out.Expr, err = expression(s); err != nil {
			return in, VariableAssignment{}, err
		}
		return s, out, nil
	})
}

func netAssignment(in Input) (Input, NetAssignment, error) {
	return Rule(in, "net_assignment", func(in Input) (Input, NetAssignment, error) {
		var (
			out NetAssignment
			err error
		)
		s := in
		if s, out.Lvalue, err = netLvalue(s); err != nil {
			return in, out, err
		}
		if s, out.Eq, err = s.Literal("="); err != nil {
			return in, NetAssignment{}, err
		}
		if s, out.Expr, err = expression(s); err != nil {
			return in, NetAssignment{}, err
		}
		return s, out, nil
	})
}

// ContinuousAssign is eg. "assign #1 y = a & b, z = c;".
type ContinuousAssign struct {
	Assign      Symbol
	Delay       *DelayControl
	Assignments List[NetAssignment]
	Semi        Symbol
}

func (n ContinuousAssign) Children() []Node {
	return nodes(n.Assign, n.Delay, n.Assignments, n.Semi)
}

func continuousAssign(in Input) (Input, ContinuousAssign, error) {
	return Rule(in, "continuous_assign", func(in Input) (Input, ContinuousAssign, error) {
		var (
			out ContinuousAssign
			err error
		)
		s := in
		if s, out.Assign, err = s.Literal("assign"); err != nil {
			return in, out, err
		}
		if s, out.Delay, err = Opt(delayControl)(s); err != nil {
			return in, ContinuousAssign{}, err
		}
		if s, out.Assignments, err = CommaList(netAssignment)(s); err != nil {
			return in, ContinuousAssign{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, ContinuousAssign{}, err
		}
		return s, out, nil
	})
}
