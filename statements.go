package svparse

// StatementOrNull is a Statement or a lone ";".
type StatementOrNull interface {
	Node
	statementOrNull()
}

// Statement is an optionally labelled statement item.
type Statement struct {
	Label *StatementLabel
	Item  StatementItem
}

func (n Statement) Children() []Node { return nodes(n.Label, n.Item) }
func (*Statement) statementOrNull()  {}

// StatementLabel is "name :" before a statement.
type StatementLabel struct {
	Name  Identifier
	Colon Symbol
}

func (n StatementLabel) Children() []Node { return nodes(n.Name, n.Colon) }

// NullStatement is ";".
type NullStatement struct {
	Semi Symbol
}

func (n NullStatement) Children() []Node { return nodes(n.Semi) }
func (*NullStatement) statementOrNull()  {}

// StatementItem is the statement variants.
type StatementItem interface {
	Node
	statementItem()
}

// BlockingAssignmentStatement is a blocking assignment followed by ";".
type BlockingAssignmentStatement struct {
	Assignment BlockingAssignment
	Semi       Symbol
}

func (n BlockingAssignmentStatement) Children() []Node { return nodes(n.Assignment, n.Semi) }
func (*BlockingAssignmentStatement) statementItem()    {}

// NonblockingAssignmentStatement is a nonblocking assignment followed by ";".
type NonblockingAssignmentStatement struct {
	Assignment NonblockingAssignment
	Semi       Symbol
}

func (n NonblockingAssignmentStatement) Children() []Node { return nodes(n.Assignment, n.Semi) }
func (*NonblockingAssignmentStatement) statementItem()    {}

// ProceduralContinuousAssignmentStatement is eg. "force x = 1;".
type ProceduralContinuousAssignmentStatement struct {
	Assignment ProceduralContinuousAssignment
	Semi       Symbol
}

func (n ProceduralContinuousAssignmentStatement) Children() []Node {
	return nodes(n.Assignment, n.Semi)
}
func (*ProceduralContinuousAssignmentStatement) statementItem() {}

// IncOrDecStatement is eg. "i++;".
type IncOrDecStatement struct {
	Expr IncOrDecExpression
	Semi Symbol
}

func (n IncOrDecStatement) Children() []Node { return nodes(n.Expr, n.Semi) }
func (*IncOrDecStatement) statementItem()    {}

// ConditionalStatement is "[unique|unique0|priority] if (cond) stmt [else stmt]".
type ConditionalStatement struct {
	Qualifier *Symbol
	If        Symbol
	Cond      Paren[Expression]
	Then      StatementOrNull
	Else      *ElseClause
}

func (n ConditionalStatement) Children() []Node {
	return nodes(n.Qualifier, n.If, n.Cond, n.Then, n.Else)
}
func (*ConditionalStatement) statementItem() {}

// ElseClause is "else stmt".
type ElseClause struct {
	Else Symbol
	Body StatementOrNull
}

func (n ElseClause) Children() []Node { return nodes(n.Else, n.Body) }

// ForeverStatement is "forever stmt".
type ForeverStatement struct {
	Forever Symbol
	Body    StatementOrNull
}

func (n ForeverStatement) Children() []Node { return nodes(n.Forever, n.Body) }
func (*ForeverStatement) statementItem()    {}

// RepeatStatement is "repeat (n) stmt".
type RepeatStatement struct {
	Repeat Symbol
	Count  Paren[Expression]
	Body   StatementOrNull
}

func (n RepeatStatement) Children() []Node { return nodes(n.Repeat, n.Count, n.Body) }
func (*RepeatStatement) statementItem()    {}

// WhileStatement is "while (cond) stmt".
type WhileStatement struct {
	While Symbol
	Cond  Paren[Expression]
	Body  StatementOrNull
}

func (n WhileStatement) Children() []Node { return nodes(n.While, n.Cond, n.Body) }
func (*WhileStatement) statementItem()    {}

// ForeachStatement is "foreach (arr[i, j]) stmt".
type ForeachStatement struct {
	Foreach Symbol
	Target  Paren[ForeachTarget]
	Body    Statement
}

func (n ForeachStatement) Children() []Node { return nodes(n.Foreach, n.Target, n.Body) }
func (*ForeachStatement) statementItem()    {}

// JumpStatement is "return [expr];", "break;" or "continue;".
type JumpStatement struct {
	Keyword Symbol
	Value   Expression
	Semi    Symbol
}

func (n JumpStatement) Children() []Node { return nodes(n.Keyword, n.Value, n.Semi) }
func (*JumpStatement) statementItem()    {}

// SeqBlock is "begin [: name] declarations statements end [: name]".
type SeqBlock struct {
	Begin      Symbol
	Label      *BlockLabel
	Decls      Seq[*DataDeclaration]
	Statements Seq[StatementOrNull]
	End        Symbol
	EndLabel   *BlockLabel
}

func (n SeqBlock) Children() []Node {
	return nodes(n.Begin, n.Label, n.Decls, n.Statements, n.End, n.EndLabel)
}
func (*SeqBlock) statementItem() {}

// BlockLabel is ": name" after begin, end or an end keyword.
type BlockLabel struct {
	Colon Symbol
	Name  Identifier
}

func (n BlockLabel) Children() []Node { return nodes(n.Colon, n.Name) }

// TimingControlStatement is a statement preceded by a delay or event control.
type TimingControlStatement struct {
	Control DelayOrEventControl
	Body    StatementOrNull
}

func (n TimingControlStatement) Children() []Node { return nodes(n.Control, n.Body) }
func (*TimingControlStatement) statementItem()    {}

func statementOrNull(in Input) (Input, StatementOrNull, error) {
	return Choice("statement_or_null",
		As[StatementOrNull](Map(statement, ptr[Statement])),
		nullStatement,
	)(in)
}

func nullStatement(in Input) (Input, StatementOrNull, error) {
	s, semi, err := in.Literal(";")
	if err != nil {
		return in, nil, err
	}
	return s, &NullStatement{Semi: semi}, nil
}

func statement(in Input) (Input, Statement, error) {
	return Rule(in, "statement", func(in Input) (Input, Statement, error) {
		var (
			out Statement
			err error
		)
		s := in
		if s, out.Label, err = Opt(statementLabel)(s); err != nil {
			return in, out, err
		}
		if s, out.Item, err = statementItem(s); err != nil {
			return in, Statement{}, err
		}
		return s, out, nil
	})
}

func statementLabel(in Input) (Input, StatementLabel, error) {
	var (
		out StatementLabel
		err error
	)
	s := in
	if s, out.Name, err = identifier(s); err != nil {
		return in, out, err
	}
	if s, out.Colon, err = s.Literal(":"); err != nil {
		return in, StatementLabel{}, err
	}
	return s, out, nil
}

func statementItem(in Input) (Input, StatementItem, error) {
	return Choice("statement_item",
		blockingAssignmentStatement,
		nonblockingAssignmentStatement,
		proceduralContinuousAssignmentStatement,
		conditionalStatement,
		incOrDecStatement,
		As[StatementItem](subroutineCallStatement),
		loopStatement,
		jumpStatement,
		seqBlock,
		timingControlStatement,
	)(in)
}

func blockingAssignmentStatement(in Input) (Input, StatementItem, error) {
	var (
		out BlockingAssignmentStatement
		err error
	)
	s := in
	if s, out.Assignment, err = blockingAssignment(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func nonblockingAssignmentStatement(in Input) (Input, StatementItem, error) {
	var (
		out NonblockingAssignmentStatement
		err error
	)
	s := in
	if s, out.Assignment, err = nonblockingAssignment(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func proceduralContinuousAssignmentStatement(in Input) (Input, StatementItem, error) {
	var (
		out ProceduralContinuousAssignmentStatement
		err error
	)
	s := in
	if s, out.Assignment, err = proceduralContinuousAssignment(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func incOrDecStatement(in Input) (Input, StatementItem, error) {
	var (
		out IncOrDecStatement
		err error
	)
	s := in
	if s, out.Expr, err = incOrDecExpression(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func conditionalStatement(in Input) (Input, StatementItem, error) {
	return Rule(in, "conditional_statement", func(in Input) (Input, StatementItem, error) {
		var (
			out ConditionalStatement
			err error
		)
		s := in
		if s, out.Qualifier, err = Opt(OneOfLiterals("unique0", "unique", "priority"))(s); err != nil {
			return in, nil, err
		}
		if s, out.If, err = s.Literal("if"); err != nil {
			return in, nil, err
		}
		if s, out.Cond, err = Parens(expression)(s); err != nil {
			return in, nil, err
		}
		if s, out.Then, err = statementOrNull(s); err != nil {
			return in, nil, err
		}
		if s, out.Else, err = Opt(elseClause)(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func elseClause(in Input) (Input, ElseClause, error) {
	return keywordThen(in, "else", statementOrNull, func(k Symbol, body StatementOrNull) ElseClause {
		return ElseClause{Else: k, Body: body}
	})
}

func loopStatement(in Input) (Input, StatementItem, error) {
	return Choice("loop_statement",
		func(in Input) (Input, StatementItem, error) {
			return keywordThen(in, "forever", statementOrNull, func(k Symbol, body StatementOrNull) StatementItem {
				return &ForeverStatement{Forever: k, Body: body}
			})
		},
		repeatStatement,
		whileStatement,
		foreachStatement,
	)(in)
}

func repeatStatement(in Input) (Input, StatementItem, error) {
	var (
		out RepeatStatement
		err error
	)
	s := in
	if s, out.Repeat, err = s.Literal("repeat"); err != nil {
		return in, nil, err
	}
	if s, out.Count, err = Parens(expression)(s); err != nil {
		return in, nil, err
	}
	if s, out.Body, err = statementOrNull(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func whileStatement(in Input) (Input, StatementItem, error) {
	var (
		out WhileStatement
		err error
	)
	s := in
	if s, out.While, err = s.Literal("while"); err != nil {
		return in, nil, err
	}
	if s, out.Cond, err = Parens(expression)(s); err != nil {
		return in, nil, err
	}
	if s, out.Body, err = statementOrNull(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func foreachStatement(in Input) (Input, StatementItem, error) {
	var (
		out ForeachStatement
		err error
	)
	s := in
	if s, out.Foreach, err = s.Literal("foreach"); err != nil {
		return in, nil, err
	}
	if s, out.Target, err = Parens(foreachTarget)(s); err != nil {
		return in, nil, err
	}
	if s, out.Body, err = statement(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func jumpStatement(in Input) (Input, StatementItem, error) {
	return Rule(in, "jump_statement", func(in Input) (Input, StatementItem, error) {
		var (
			out JumpStatement
			err error
		)
		s := in
		if s, out.Keyword, err = OneOfLiterals("return", "break", "continue")(s); err != nil {
			return in, nil, err
		}
		if s.ctx.src.Slice(out.Keyword.Span) == "return" {
			if s, out.Value, err = Maybe(expression)(s); err != nil {
				return in, nil, err
			}
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func seqBlock(in Input) (Input, StatementItem, error) {
	return Rule(in, "seq_block", func(in Input) (Input, StatementItem, error) {
		var (
			out SeqBlock
			err error
		)
		s := in
		if s, out.Begin, err = s.Literal("begin"); err != nil {
			return in, nil, err
		}
		if s, out.Label, err = Opt(blockLabel)(s); err != nil {
			return in, nil, err
		}
		if s, out.Decls, err = Many0(Map(dataDeclaration, ptr[DataDeclaration]))(s); err != nil {
			return in, nil, err
		}
		if s, out.Statements, err = Many0(statementOrNull)(s); err != nil {
			return in, nil, err
		}
		if s, out.End, err = s.Literal("end"); err != nil {
			return in, nil, err
		}
		if s, out.EndLabel, err = Opt(blockLabel)(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func blockLabel(in Input) (Input, BlockLabel, error) {
	var (
		out BlockLabel
		err error
	)
	s := in
	if s, out.Colon, err = s.Literal(":"); err != nil {
		return in, out, err
	}
	if s, out.Name, err = identifierOrNew(s); err != nil {
		return in, BlockLabel{}, err
	}
	return s, out, nil
}

func timingControlStatement(in Input) (Input, StatementItem, error) {
	return Rule(in, "procedural_timing_control_statement", func(in Input) (Input, StatementItem, error) {
		var (
			out TimingControlStatement
			err error
		)
		s := in
		if s, out.Control, err = timingControl(s); err != nil {
			return in, nil, err
		}
		if s, out.Body, err = statementOrNull(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}
