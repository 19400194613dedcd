package svparse

// SourceText is the root of a syntax tree: a compilation unit.
type SourceText struct {
	// Trivia before the first token.
	Leading      *Whitespace
	Descriptions Seq[Description]
}

func (n SourceText) Children() []Node { return nodes(n.Leading, n.Descriptions) }

// Description is a top level declaration.
type Description interface {
	Node
	description()
}

// ModuleItemDescription is a module item at the top level, only accepted with AllowIncomplete.
type ModuleItemDescription struct {
	Item ModuleItem
}

func (n ModuleItemDescription) Children() []Node { return nodes(n.Item) }
func (*ModuleItemDescription) description()      {}

// ClassItemDescription is a class item at the top level, only accepted with AllowIncomplete.
type ClassItemDescription struct {
	Item ClassItem
}

func (n ClassItemDescription) Children() []Node { return nodes(n.Item) }
func (*ClassItemDescription) description()      {}

// StatementDescription is a statement at the top level, only accepted with AllowIncomplete.
type StatementDescription struct {
	Statement Statement
}

func (n StatementDescription) Children() []Node { return nodes(n.Statement) }
func (*StatementDescription) description()      {}

func sourceText(in Input) (Input, SourceText, error) {
	return Rule(in, "source_text", func(in Input) (Input, SourceText, error) {
		var (
			out SourceText
			err error
		)
		s, leading := in.Trivia()
		out.Leading = leading
		if s, out.Descriptions, err = Many0(description)(s); err != nil {
			return in, SourceText{}, err
		}
		return s, out, nil
	})
}

func description(in Input) (Input, Description, error) {
	candidates := []Combinator[Description]{
		As[Description](Map(moduleDeclaration, ptr[ModuleDeclaration])),
		As[Description](Map(classDeclaration, ptr[ClassDeclaration])),
		As[Description](Map(externConstraintDeclaration, ptr[ExternConstraintDeclaration])),
		As[Description](Map(packageDeclaration, ptr[PackageDeclaration])),
	}
	if in.Incomplete() {
		candidates = append(candidates,
			Map(moduleItem, func(item ModuleItem) Description { return &ModuleItemDescription{Item: item} }),
			Map(classItem, func(item ClassItem) Description { return &ClassItemDescription{Item: item} }),
			Map(statement, func(stmt Statement) Description { return &StatementDescription{Statement: stmt} }),
		)
	}
	return Choice("description", candidates...)(in)
}

// ModuleDeclaration is a module with ANSI style ports.
type ModuleDeclaration struct {
	Keyword  Symbol
	Lifetime *Symbol
	Name     Identifier
	Params   *ParameterPortList
	Ports    *Paren[*List[PortItem]]
	Semi     Symbol
	Items    Seq[ModuleItem]
	End      Symbol
	EndLabel *BlockLabel
}

func (n ModuleDeclaration) Children() []Node {
	return nodes(n.Keyword, n.Lifetime, n.Name, n.Params, n.Ports, n.Semi, n.Items, n.End, n.EndLabel)
}
func (*ModuleDeclaration) description() {}

// ModuleItem is a member of a module body.
type ModuleItem interface {
	Node
	moduleItem()
}

func (*InitialConstruct) moduleItem() {}
func (*AlwaysConstruct) moduleItem()  {}
func (*FinalConstruct) moduleItem()   {}
func (*ContinuousAssign) moduleItem() {}

func moduleDeclaration(in Input) (Input, ModuleDeclaration, error) {
	return Rule(in, "module_declaration", func(in Input) (Input, ModuleDeclaration, error) {
		var (
			out ModuleDeclaration
			err error
		)
		s := in
		if s, out.Keyword, err = OneOfLiterals("module", "macromodule")(s); err != nil {
			return in, out, err
		}
		if s, out.Lifetime, err = Opt(lifetime)(s); err != nil {
			return in, ModuleDeclaration{}, err
		}
		if s, out.Name, err = identifier(s); err != nil {
			return in, ModuleDeclaration{}, err
		}
		if s, out.Params, err = Opt(parameterPortList)(s); err != nil {
			return in, ModuleDeclaration{}, err
		}
		if s, out.Ports, err = Opt(portList)(s); err != nil {
			return in, ModuleDeclaration{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, ModuleDeclaration{}, err
		}
		if s, out.Items, err = Many0(moduleItem)(s); err != nil {
			return in, ModuleDeclaration{}, err
		}
		if s, out.End, err = s.Literal("endmodule"); err != nil {
			return in, ModuleDeclaration{}, err
		}
		if s, out.EndLabel, err = Opt(blockLabel)(s); err != nil {
			return in, ModuleDeclaration{}, err
		}
		return s, out, nil
	})
}

func moduleItem(in Input) (Input, ModuleItem, error) {
	return Choice("module_item",
		As[ModuleItem](Map(initialConstruct, ptr[InitialConstruct])),
		As[ModuleItem](Map(alwaysConstruct, ptr[AlwaysConstruct])),
		As[ModuleItem](Map(finalConstruct, ptr[FinalConstruct])),
		As[ModuleItem](Map(continuousAssign, ptr[ContinuousAssign])),
		As[ModuleItem](Map(netDeclaration, ptr[NetDeclaration])),
		As[ModuleItem](Map(parameterDeclaration, ptr[ParameterDeclaration])),
		As[ModuleItem](Map(dataDeclaration, ptr[DataDeclaration])),
		As[ModuleItem](Map(taskDeclaration, ptr[TaskDeclaration])),
		As[ModuleItem](Map(functionDeclaration, ptr[FunctionDeclaration])),
		As[ModuleItem](Map(classDeclaration, ptr[ClassDeclaration])),
	)(in)
}

// PackageDeclaration is "package name; items endpackage [: name]".
type PackageDeclaration struct {
	Package  Symbol
	Lifetime *Symbol
	Name     Identifier
	Semi     Symbol
	Items    Seq[PackageItem]
	End      Symbol
	EndLabel *BlockLabel
}

func (n PackageDeclaration) Children() []Node {
	return nodes(n.Package, n.Lifetime, n.Name, n.Semi, n.Items, n.End, n.EndLabel)
}
func (*PackageDeclaration) description() {}

// PackageItem is a member of a package body.
type PackageItem interface {
	Node
	packageItem()
}

func packageDeclaration(in Input) (Input, PackageDeclaration, error) {
	return Rule(in, "package_declaration", func(in Input) (Input, PackageDeclaration, error) {
		var (
			out PackageDeclaration
			err error
		)
		s := in
		if s, out.Package, err = s.Literal("package"); err != nil {
			return in, out, err
		}
		if s, out.Lifetime, err = Opt(lifetime)(s); err != nil {
			return in, PackageDeclaration{}, err
		}
		if s, out.Name, err = identifier(s); err != nil {
			return in, PackageDeclaration{}, err
		}
		if s, out.Semi, err = s.Literal(";"); err != nil {
			return in, PackageDeclaration{}, err
		}
		if s, out.Items, err = Many0(packageItem)(s); err != nil {
			return in, PackageDeclaration{}, err
		}
		if s, out.End, err = s.Literal("endpackage"); err != nil {
			return in, PackageDeclaration{}, err
		}
		if s, out.EndLabel, err = Opt(blockLabel)(s); err != nil {
			return in, PackageDeclaration{}, err
		}
		return s, out, nil
	})
}

func packageItem(in Input) (Input, PackageItem, error) {
	return Choice("package_item",
		As[PackageItem](Map(parameterDeclaration, ptr[ParameterDeclaration])),
		As[PackageItem](Map(dataDeclaration, ptr[DataDeclaration])),
		As[PackageItem](Map(taskDeclaration, ptr[TaskDeclaration])),
		As[PackageItem](Map(functionDeclaration, ptr[FunctionDeclaration])),
		As[PackageItem](Map(classDeclaration, ptr[ClassDeclaration])),
	)(in)
}
