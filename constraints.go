package svparse

// ConstraintDeclaration is eg. "constraint c_len { len < 64; }".
type ConstraintDeclaration struct {
	Static     *Symbol
	Constraint Symbol
	Name       Identifier
	Block      ConstraintBlock
}

func (n ConstraintDeclaration) Children() []Node {
	return nodes(n.Static, n.Constraint, n.Name, n.Block)
}

// ConstraintBlock is "{ constraint_block_item* }".
type ConstraintBlock struct {
	Braces Brace[Seq[ConstraintBlockItem]]
}

func (n ConstraintBlock) Children() []Node { return nodes(n.Braces) }

// ConstraintBlockItem is a solve-before ordering or a constraint expression.
type ConstraintBlockItem interface {
	Node
	constraintBlockItem()
}

// SolveBefore is eg. "solve mode before len;".
type SolveBefore struct {
	Solve  Symbol
	Left   SolveBeforeList
	Before Symbol
	Right  SolveBeforeList
	Semi   Symbol
}

func (n SolveBefore) Children() []Node {
	return nodes(n.Solve, n.Left, n.Before, n.Right, n.Semi)
}
func (*SolveBefore) constraintBlockItem() {}

// SolveBeforeList is a comma separated list of constraint primaries.
type SolveBeforeList struct {
	List List[ConstraintPrimary]
}

func (n SolveBeforeList) Children() []Node { return nodes(n.List) }

// ConstraintPrimary is a possibly scoped variable reference, eg. "this.cfg.len[0]".
type ConstraintPrimary struct {
	Scope  ScopePrefix
	Name   HierarchicalIdentifier
	Select Select
}

func (n ConstraintPrimary) Children() []Node { return nodes(n.Scope, n.Name, n.Select) }

// ConstraintSet is a single constraint expression or a braced group of them.
type ConstraintSet interface {
	Node
	constraintSet()
}

// ConstraintSetBrace is "{ constraint_expression* }".
type ConstraintSetBrace struct {
	Braces Brace[Seq[ConstraintExpression]]
}

func (n ConstraintSetBrace) Children() []Node { return nodes(n.Braces) }
func (*ConstraintSetBrace) constraintSet()    {}

// ConstraintExpression is the constraint expression variants.
type ConstraintExpression interface {
	ConstraintSet
	ConstraintBlockItem
	constraintExpression()
}

// ExpressionConstraint is eg. "soft len dist { [1:4] := 1 };".
type ExpressionConstraint struct {
	Soft *Symbol
	Expr ExpressionOrDist
	Semi Symbol
}

func (n ExpressionConstraint) Children() []Node     { return nodes(n.Soft, n.Expr, n.Semi) }
func (*ExpressionConstraint) constraintSet()        {}
func (*ExpressionConstraint) constraintBlockItem()  {}
func (*ExpressionConstraint) constraintExpression() {}

// UniquenessConstraintItem is eg. "unique { a, b, arr };".
type UniquenessConstraintItem struct {
	Constraint UniquenessConstraint
	Semi       Symbol
}

func (n UniquenessConstraintItem) Children() []Node     { return nodes(n.Constraint, n.Semi) }
func (*UniquenessConstraintItem) constraintSet()        {}
func (*UniquenessConstraintItem) constraintBlockItem()  {}
func (*UniquenessConstraintItem) constraintExpression() {}

// UniquenessConstraint is "unique { open_range_list }".
type UniquenessConstraint struct {
	Unique Symbol
	Ranges Brace[OpenRangeList]
}

func (n UniquenessConstraint) Children() []Node { return nodes(n.Unique, n.Ranges) }

// ArrowConstraint is an implication with a constraint set, eg. "mode == 0 -> { len < 4; }".
type ArrowConstraint struct {
	Cond  Expression
	Arrow Symbol
	Set   ConstraintSet
}

func (n ArrowConstraint) Children() []Node     { return nodes(n.Cond, n.Arrow, n.Set) }
func (*ArrowConstraint) constraintSet()        {}
func (*ArrowConstraint) constraintBlockItem()  {}
func (*ArrowConstraint) constraintExpression() {}

// IfConstraint is "if (cond) constraint_set [else constraint_set]".
type IfConstraint struct {
	If   Symbol
	Cond Paren[Expression]
	Then ConstraintSet
	Else *ElseConstraint
}

func (n IfConstraint) Children() []Node     { return nodes(n.If, n.Cond, n.Then, n.Else) }
func (*IfConstraint) constraintSet()        {}
func (*IfConstraint) constraintBlockItem()  {}
func (*IfConstraint) constraintExpression() {}

// ElseConstraint is "else constraint_set".
type ElseConstraint struct {
	Else Symbol
	Set  ConstraintSet
}

func (n ElseConstraint) Children() []Node { return nodes(n.Else, n.Set) }

// ForeachConstraint is eg. "foreach (arr[i]) arr[i] < 10;".
type ForeachConstraint struct {
	Foreach Symbol
	Target  Paren[ForeachTarget]
	Body    ConstraintSet
}

func (n ForeachConstraint) Children() []Node     { return nodes(n.Foreach, n.Target, n.Body) }
func (*ForeachConstraint) constraintSet()        {}
func (*ForeachConstraint) constraintBlockItem()  {}
func (*ForeachConstraint) constraintExpression() {}

// DisableSoftConstraint is "disable soft primary;".
type DisableSoftConstraint struct {
	Disable Symbol
	Soft    Symbol
	Primary ConstraintPrimary
	Semi    Symbol
}

func (n DisableSoftConstraint) Children() []Node {
	return nodes(n.Disable, n.Soft, n.Primary, n.Semi)
}
func (*DisableSoftConstraint) constraintSet()        {}
func (*DisableSoftConstraint) constraintBlockItem()  {}
func (*DisableSoftConstraint) constraintExpression() {}

// ExpressionOrDist is an expression optionally followed by a dist clause.
type ExpressionOrDist struct {
	Expr Expression
	Dist *DistClause
}

func (n ExpressionOrDist) Children() []Node { return nodes(n.Expr, n.Dist) }

// DistClause is eg. "dist { 0 := 1, [1:3] :/ 4 }".
type DistClause struct {
	Dist  Symbol
	Items Brace[DistList]
}

func (n DistClause) Children() []Node { return nodes(n.Dist, n.Items) }

// DistList is a comma separated list of weighted values.
type DistList struct {
	List List[DistItem]
}

func (n DistList) Children() []Node { return nodes(n.List) }

// DistItem is a value or range with an optional weight.
//
// Range is an Expression or a *ValueRange.
type DistItem struct {
	Range  Node
	Weight *DistWeight
}

func (n DistItem) Children() []Node { return nodes(n.Range, n.Weight) }

// DistWeight is ":= weight" (per value) or ":/ weight" (shared by the range).
type DistWeight struct {
	Op     Symbol
	Weight Expression
}

func (n DistWeight) Children() []Node { return nodes(n.Op, n.Weight) }

// ConstraintPrototype is eg. "extern constraint c;".
type ConstraintPrototype struct {
	Qualifier  *Symbol
	Static     *Symbol
	Constraint Symbol
	Name       Identifier
	Semi       Symbol
}

func (n ConstraintPrototype) Children() []Node {
	return nodes(n.Qualifier, n.Static, n.Constraint, n.Name, n.Semi)
}

// ExternConstraintDeclaration is the out of class body of a constraint prototype, eg.
// "constraint packet::c { len > 0; }".
type ExternConstraintDeclaration struct {
	Static     *Symbol
	Constraint Symbol
	Scope      ClassScope
	Name       Identifier
	Block      ConstraintBlock
}

func (n ExternConstraintDeclaration) Children() []Node {
	return nodes(n.Static, n.Constraint, n.Scope, n.Name, n.Block)
}
func (*ExternConstraintDeclaration) description() {}

// ForeachTarget is the array and loop variables of a foreach, eg. "arr[i, j]".
type ForeachTarget struct {
	Scope ScopePrefix
	Array HierarchicalIdentifier
	Vars  Bracket[LoopVariables]
}

func (n ForeachTarget) Children() []Node { return nodes(n.Scope, n.Array, n.Vars) }

// LoopVariables is a comma separated list of index variables, any of which may be omitted.
type LoopVariables struct {
	List List[*Identifier]
}

func (n LoopVariables) Children() []Node { return nodes(n.List) }

func constraintDeclaration(in Input) (Input, ConstraintDeclaration, error) {
	return Rule(in, "constraint_declaration", func(in Input) (Input, ConstraintDeclaration, error) {
		var (
			out ConstraintDeclaration
			err error
		)
		s := in
		if s, out.Static, err = Opt(Literal("static"))(s); err != nil {
			return in, out, err
		}
		if s, out.Constraint, err = s.Literal("constraint"); err != nil {
			return in, ConstraintDeclaration{}, err
		}
		if s, out.Name, err = identifier(s); err != nil {
			return in, ConstraintDeclaration{}, err
		}
		if s, out.Block, err = constraintBlock(s); err != nil {
			return in, ConstraintDeclaration{}, err
		}
		return s, out, nil
	})
}

func constraintBlock(in Input) (Input, ConstraintBlock, error) {
	return Rule(in, "constraint_block", func(in Input) (Input, ConstraintBlock, error) {
		s, braces, err := Braces(Many0(constraintBlockItem))(in)
		if err != nil {
			return in, ConstraintBlock{}, err
		}
		return s, ConstraintBlock{Braces: braces}, nil
	})
}

func constraintBlockItem(in Input) (Input, ConstraintBlockItem, error) {
	return Choice("constraint_block_item",
		solveBefore,
		As[ConstraintBlockItem](constraintExpression),
	)(in)
}

func solveBefore(in Input) (Input, ConstraintBlockItem, error) {
	var (
		out SolveBefore
		err error
	)
	s := in
	if s, out.Solve, err = s.Literal("solve"); err != nil {
		return in, nil, err
	}
	if s, out.Left, err = solveBeforeList(s); err != nil {
		return in, nil, err
	}
	if s, out.Before, err = s.Literal("before"); err != nil {
		return in, nil, err
	}
	if s, out.Right, err = solveBeforeList(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func solveBeforeList(in Input) (Input, SolveBeforeList, error) {
	return Rule(in, "solve_before_list", func(in Input) (Input, SolveBeforeList, error) {
		s, list, err := CommaList(constraintPrimary)(in)
		if err != nil {
			return in, SolveBeforeList{}, err
		}
		return s, SolveBeforeList{List: list}, nil
	})
}

func constraintPrimary(in Input) (Input, ConstraintPrimary, error) {
	return Rule(in, "constraint_primary", func(in Input) (Input, ConstraintPrimary, error) {
		var (
			out ConstraintPrimary
			err error
		)
		s := in
		if s, out.Scope, err = Maybe(classQualifier)(s); err != nil {
			return in, out, err
		}
		if s, out.Name, err = hierarchicalIdentifier(s); err != nil {
			return in, ConstraintPrimary{}, err
		}
		if s, out.Select, err = selection(s); err != nil {
			return in, ConstraintPrimary{}, err
		}
		return s, out, nil
	})
}

// The expression form comes first, so "a -> b;" is a single implication expression and only
// "a -> { ... }" produces an ArrowConstraint.
func constraintExpression(in Input) (Input, ConstraintExpression, error) {
	return Choice("constraint_expression",
		expressionConstraint,
		uniquenessConstraintItem,
		arrowConstraint,
		ifConstraint,
		foreachConstraint,
		disableSoftConstraint,
	)(in)
}

func expressionConstraint(in Input) (Input, ConstraintExpression, error) {
	var (
		out ExpressionConstraint
		err error
	)
	s := in
	if s, out.Soft, err = Opt(Literal("soft"))(s); err != nil {
		return in, nil, err
	}
	if s, out.Expr, err = expressionOrDist(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func uniquenessConstraintItem(in Input) (Input, ConstraintExpression, error) {
	var (
		out UniquenessConstraintItem
		err error
	)
	s := in
	if s, out.Constraint, err = uniquenessConstraint(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func uniquenessConstraint(in Input) (Input, UniquenessConstraint, error) {
	return Rule(in, "uniqueness_constraint", func(in Input) (Input, UniquenessConstraint, error) {
		return keywordThen(in, "unique", Braces(openRangeList), func(k Symbol, r Brace[OpenRangeList]) UniquenessConstraint {
			return UniquenessConstraint{Unique: k, Ranges: r}
		})
	})
}

func arrowConstraint(in Input) (Input, ConstraintExpression, error) {
	var (
		out ArrowConstraint
		err error
	)
	s := in
	if s, out.Cond, err = expression(s); err != nil {
		return in, nil, err
	}
	if s, out.Arrow, err = s.Literal("->"); err != nil {
		return in, nil, err
	}
	if s, out.Set, err = constraintSet(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func ifConstraint(in Input) (Input, ConstraintExpression, error) {
	var (
		out IfConstraint
		err error
	)
	s := in
	if s, out.If, err = s.Literal("if"); err != nil {
		return in, nil, err
	}
	if s, out.Cond, err = Parens(expression)(s); err != nil {
		return in, nil, err
	}
	if s, out.Then, err = constraintSet(s); err != nil {
		return in, nil, err
	}
	if s, out.Else, err = Opt(elseConstraint)(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func elseConstraint(in Input) (Input, ElseConstraint, error) {
	return keywordThen(in, "else", constraintSet, func(k Symbol, set ConstraintSet) ElseConstraint {
		return ElseConstraint{Else: k, Set: set}
	})
}

func foreachConstraint(in Input) (Input, ConstraintExpression, error) {
	var (
		out ForeachConstraint
		err error
	)
	s := in
	if s, out.Foreach, err = s.Literal("foreach"); err != nil {
		return in, nil, err
	}
	if s, out.Target, err = Parens(foreachTarget)(s); err != nil {
		return in, nil, err
	}
	if s, out.Body, err = constraintSet(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func disableSoftConstraint(in Input) (Input, ConstraintExpression, error) {
	var (
		out DisableSoftConstraint
		err error
	)
	s := in
	if s, out.Disable, err = s.Literal("disable"); err != nil {
		return in, nil, err
	}
	if s, out.Soft, err = s.Literal("soft"); err != nil {
		return in, nil, err
	}
	if s, out.Primary, err = constraintPrimary(s); err != nil {
		return in, nil, err
	}
	if s, out.Semi, err = s.Literal(";"); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func constraintSet(in Input) (Input, ConstraintSet, error) {
	return Choice("constraint_set",
		As[ConstraintSet](constraintExpression),
		constraintSetBrace,
	)(in)
}

func constraintSetBrace(in Input) (Input, ConstraintSet, error) {
	s, braces, err := Braces(Many0(constraintExpression))(in)
	if err != nil {
		return in, nil, err
	}
	return s, &ConstraintSetBrace{Braces: braces}, nil
}

func expressionOrDist(in Input) (Input, ExpressionOrDist, error) {
	return Rule(in, "expression_or_dist", func(in Input) (Input, ExpressionOrDist, error) {
		var (
			out ExpressionOrDist
			err error
		)
		s := in
		if s, out.Expr, err = expression(s); err != nil {
			return in, out, err
		}
		if s, out.Dist, err = Opt(distClause)(s); err != nil {
			return in, ExpressionOrDist{}, err
		}
		return s, out, nil
	})
}

func distClause(in Input) (Input, DistClause, error) {
	return keywordThen(in, "dist", Braces(distList), func(k Symbol, items Brace[DistList]) DistClause {
		return DistClause{Dist: k, Items: items}
	})
}

func distList(in Input) (Input, DistList, error) {
	return Rule(in, "dist_list", func(in Input) (Input, DistList, error) {
		s, list, err := CommaList(distItem)(in)
		if err != nil {
			return in, DistList{}, err
		}
		return s, DistList{List: list}, nil
	})
}

func distItem(in Input) (Input, DistItem, error) {
	return Rule(in, "dist_item", func(in Input) (Input, DistItem, error) {
		var (
			out DistItem
			err error
		)
		s := in
		if s, out.Range, err = valueRange(s); err != nil {
			return in, out, err
		}
		if s, out.Weight, err = Opt(distWeight)(s); err != nil {
			return in, DistItem{}, err
		}
		return s, out, nil
	})
}

func distWeight(in Input) (Input, DistWeight, error) {
	return Rule(in, "dist_weight", func(in Input) (Input, DistWeight, error) {
		var (
			out DistWeight
			err error
		)
		s := in
		if s, out.Op, err = OneOfLiterals(":=", ":/")(s); err != nil {
			return in, out, err
		}
		if s, out.Weight, err = expression(s); err != nil {
			return in, DistWeight{}, err
		}
		return s, out, nil
	})
}

func constraintPrototype(in Input) (Input, ConstraintPrototype, error) {
	return Rule(in, "constraint_prototype", func(in Input) (Input, ConstraintPrototype, error) {
		var (
			out ConstraintPrototype
			err error
		)
		s := in
		if s, out.Qualifier, err = Opt(OneOfLiterals("extern", "pure"))(s); err != nil {
			return in, out, err
		}
		if s, out.Static, err = Opt(Literal("static"))(s); err != nil {
			return in, ConstraintPrototype{}, err
		}
		if s, out.Constraint, err = s.Literal("constraint"); err != nil {
			return in, ConstraintPrototype{}, err
		}
		if s, out.Name, err = identifier(s); err != nil {
			return in, ConstraintPrototype{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, ConstraintPrototype{}, err
		}
		return s, out, nil
	})
}

func externConstraintDeclaration(in Input) (Input, ExternConstraintDeclaration, error) {
	return Rule(in, "extern_constraint_declaration", func(in Input) (Input, ExternConstraintDeclaration, error) {
		var (
			out ExternConstraintDeclaration
			err error
		)
		s := in
		if s, out.Static, err = Opt(Literal("static"))(s); err != nil {
			return in, out, err
		}
		if s, out.Constraint, err = s.Literal("constraint"); err != nil {
			return in, ExternConstraintDeclaration{}, err
		}
		if s, out.Scope, err = classScope(s); err != nil {
			return in, ExternConstraintDeclaration{}, err
		}
		if s, out.Name, err = identifier(s); err != nil {
			return in, ExternConstraintDeclaration{}, err
		}
		if s, out.Block, err = constraintBlock(s); err != nil {
			return in, ExternConstraintDeclaration{}, err
		}
		return s, out, nil
	})
}

func foreachTarget(in Input) (Input, ForeachTarget, error) {
	var (
		out ForeachTarget
		err error
	)
	s := in
	if s, out.Scope, err = Maybe(scopePrefix)(s); err != nil {
		return in, out, err
	}
	if s, out.Array, err = hierarchicalIdentifier(s); err != nil {
		return in, ForeachTarget{}, err
	}
	if s, out.Vars, err = Brackets(loopVariables)(s); err != nil {
		return in, ForeachTarget{}, err
	}
	return s, out, nil
}

func loopVariables(in Input) (Input, LoopVariables, error) {
	return Rule(in, "loop_variables", func(in Input) (Input, LoopVariables, error) {
		s, list, err := CommaList(Opt(identifier))(in)
		if err != nil {
			return in, LoopVariables{}, err
		}
		return s, LoopVariables{List: list}, nil
	})
}
