package svparse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// The grammar recognised by the parser, in EBNF.
//
// Productions are upper case. Lexical productions are lower case. Alternatives are listed in the
// order they are attempted.
const grammarText = `
SourceText = { Description } .

// ModuleItem, ClassItem and Statement are only accepted with AllowIncomplete.
Description = ModuleDeclaration | ClassDeclaration | ExternConstraintDeclaration | PackageDeclaration
            | ModuleItem | ClassItem | Statement .

ModuleDeclaration = ( "module" | "macromodule" ) [ Lifetime ] identifier [ ParameterPortList ] [ PortList ] ";"
                    { ModuleItem } "endmodule" [ BlockLabel ] .
ModuleItem = InitialConstruct | AlwaysConstruct | FinalConstruct | ContinuousAssign | NetDeclaration
           | ParameterDeclaration | DataDeclaration | TaskDeclaration | FunctionDeclaration | ClassDeclaration .

PackageDeclaration = "package" [ Lifetime ] identifier ";" { PackageItem } "endpackage" [ BlockLabel ] .
PackageItem = ParameterDeclaration | DataDeclaration | TaskDeclaration | FunctionDeclaration | ClassDeclaration .

ClassDeclaration = [ "virtual" ] "class" [ Lifetime ] identifier [ ParameterPortList ] [ ClassExtends ] ";"
                   { ClassItem } "endclass" [ BlockLabel ] .
ClassExtends = "extends" ClassType [ "(" [ ListOfArguments ] ")" ] .
ClassItem = ConstraintDeclaration | ConstraintPrototype | ClassProperty | ClassMethod | MethodPrototype
          | ParameterDeclaration | ";" .
ClassProperty = { PropertyQualifier } DataDeclaration .
PropertyQualifier = "static" | "protected" | "local" | "randc" | "rand" | "const" .
ClassMethod = { MethodQualifier } ( FunctionDeclaration | TaskDeclaration ) .
MethodPrototype = { MethodQualifier } ( "function" [ DataTypeOrVoid ] | "task" ) IdentifierOrNew [ PortList ] ";" .
MethodQualifier = "pure" | "virtual" | "extern" | "static" | "protected" | "local" .

InitialConstruct = "initial" StatementOrNull .
AlwaysConstruct = AlwaysKeyword Statement .
AlwaysKeyword = "always_comb" | "always_latch" | "always_ff" | "always" .
FinalConstruct = "final" Statement .
ContinuousAssign = "assign" [ DelayControl ] NetAssignment { "," NetAssignment } ";" .

BlockingAssignment = VariableLvalue "=" [ DelayOrEventControl ] Expression
                   | NonrangeVariableLvalue "=" DynamicArrayNew
                   | [ ScopePrefix ] HierarchicalIdentifier Select "=" ClassNew
                   | OperatorAssignment .
OperatorAssignment = VariableLvalue AssignmentOperator Expression .
AssignmentOperator = "=" | "+=" | "-=" | "*=" | "/=" | "%=" | "&=" | "|=" | "^=" | "<<<=" | ">>>=" | "<<=" | ">>=" .
NonblockingAssignment = VariableLvalue "<=" [ DelayOrEventControl ] Expression .
ProceduralContinuousAssignment = "assign" VariableAssignment | "deassign" VariableLvalue
                               | "force" VariableAssignment | "force" NetAssignment
                               | "release" VariableLvalue | "release" NetLvalue .
VariableAssignment = VariableLvalue "=" Expression .
NetAssignment = NetLvalue "=" Expression .

VariableLvalue = [ HandleOrPackageScope ] HierarchicalIdentifier Select
               | "{" VariableLvalue { "," VariableLvalue } "}"
               | "'{" VariableLvalue { "," VariableLvalue } "}" .
NonrangeVariableLvalue = [ HandleOrPackageScope ] HierarchicalIdentifier { "[" Expression "]" } .
NetLvalue = [ PackageScope ] HierarchicalIdentifier Select | "{" NetLvalue { "," NetLvalue } "}" .

StatementOrNull = Statement | ";" .
Statement = [ identifier ":" ] StatementItem .
StatementItem = BlockingAssignment ";" | NonblockingAssignment ";" | ProceduralContinuousAssignment ";"
              | ConditionalStatement | IncOrDecExpression ";" | SubroutineCallStatement | LoopStatement
              | JumpStatement | SeqBlock | ProceduralTimingControl StatementOrNull .
ConditionalStatement = [ "unique0" | "unique" | "priority" ] "if" "(" Expression ")" StatementOrNull
                       [ "else" StatementOrNull ] .
LoopStatement = "forever" StatementOrNull | "repeat" "(" Expression ")" StatementOrNull
              | "while" "(" Expression ")" StatementOrNull | "foreach" "(" ForeachTarget ")" Statement .
JumpStatement = "return" [ Expression ] ";" | "break" ";" | "continue" ";" .
SeqBlock = "begin" [ BlockLabel ] { DataDeclaration } { StatementOrNull } "end" [ BlockLabel ] .
BlockLabel = ":" IdentifierOrNew .

SubroutineCallStatement = SubroutineCall ";" | "void" "'" "(" FunctionSubroutineCall ")" ";" .
SubroutineCall = RandomizeCall | SystemTfCall | TfCall .
FunctionSubroutineCall = RandomizeCall | SystemTfCall
                       | [ ScopePrefix ] HierarchicalPath IdentifierOrNew "(" [ ListOfArguments ] ")" .
TfCall = [ ScopePrefix ] HierarchicalPath IdentifierOrNew [ "(" [ ListOfArguments ] ")" ] .
SystemTfCall = systemTfIdentifier [ "(" [ ListOfArguments ] ")" ] .
RandomizeCall = ( PackageScope | { HierarchicalSegment } ) "randomize" [ "(" [ "null" | IdentifierList ] ")" ]
                [ "with" [ "(" [ IdentifierList ] ")" ] ConstraintBlock ] .
ListOfArguments = Argument { "," Argument } .
Argument = "." identifier "(" Expression ")" | Expression .

ConstraintDeclaration = [ "static" ] "constraint" identifier ConstraintBlock .
ConstraintBlock = "{" { ConstraintBlockItem } "}" .
ConstraintBlockItem = "solve" SolveBeforeList "before" SolveBeforeList ";" | ConstraintExpression .
SolveBeforeList = ConstraintPrimary { "," ConstraintPrimary } .
ConstraintPrimary = [ ClassQualifier ] HierarchicalIdentifier Select .
ConstraintExpression = [ "soft" ] ExpressionOrDist ";"
                     | UniquenessConstraint ";"
                     | Expression "->" ConstraintSet
                     | "if" "(" Expression ")" ConstraintSet [ "else" ConstraintSet ]
                     | "foreach" "(" ForeachTarget ")" ConstraintSet
                     | "disable" "soft" ConstraintPrimary ";" .
UniquenessConstraint = "unique" "{" OpenRangeList "}" .
ConstraintSet = ConstraintExpression | "{" { ConstraintExpression } "}" .
ExpressionOrDist = Expression [ "dist" "{" DistItem { "," DistItem } "}" ] .
DistItem = ValueRange [ ( ":=" | ":/" ) Expression ] .
ConstraintPrototype = [ "extern" | "pure" ] [ "static" ] "constraint" identifier ";" .
ExternConstraintDeclaration = [ "static" ] "constraint" ClassScope identifier ConstraintBlock .
ForeachTarget = [ ScopePrefix ] HierarchicalIdentifier "[" LoopVariables "]" .
LoopVariables = [ identifier ] { "," [ identifier ] } .
IdentifierList = identifier { "," identifier } .

DelayOrEventControl = DelayControl | EventControl | "repeat" "(" Expression ")" EventControl .
ProceduralTimingControl = DelayControl | EventControl .
DelayControl = "#" ( number | "(" Expression ")" | HierarchicalPrimary ) .
EventControl = "@" "*" | "@" "(" "*" ")" | "@" "(" EventExpression ")" | "@" HierarchicalIdentifier .
EventExpression = EventPrimary { ( "or" | "," ) EventPrimary } .
EventPrimary = [ "posedge" | "negedge" | "edge" ] Expression [ "iff" Expression ] .

DataDeclaration = [ "const" ] [ "var" ] [ Lifetime ] DataType VariableDeclAssignment { "," VariableDeclAssignment } ";" .
Lifetime = "static" | "automatic" .
VariableDeclAssignment = identifier { UnpackedDimension } [ VariableInit ] .
VariableInit = "=" ( DynamicArrayNew | ClassNew | Expression ) .
NetDeclaration = NetType ( DataType | { PackedDimension } ) VariableDeclAssignment { "," VariableDeclAssignment } ";" .
NetType = "wire" | "tri" | "uwire" | "wand" | "wor" | "triand" | "trior" | "tri0" | "tri1" | "supply0" | "supply1" .
ParameterDeclaration = ( "parameter" | "localparam" ) ( DataType | { PackedDimension } )
                       ParamAssignment { "," ParamAssignment } ";" .
ParamAssignment = identifier { UnpackedDimension } "=" Expression .
ParameterPortList = "#" "(" [ ParameterPort { "," ParameterPort } ] ")" .
ParameterPort = [ "parameter" | "localparam" ] [ DataType ] ParamAssignment .
PortList = "(" [ PortItem { "," PortItem } ] ")" .
PortItem = [ "input" | "output" | "inout" | "ref" ] [ NetType ] [ "var" ] ( DataType | { PackedDimension } )
           identifier { UnpackedDimension } [ VariableInit ] .
FunctionDeclaration = "function" [ Lifetime ] [ DataTypeOrVoid ] [ ClassScope ] IdentifierOrNew [ PortList ] ";"
                      { DataDeclaration } { StatementOrNull } "endfunction" [ BlockLabel ] .
TaskDeclaration = "task" [ Lifetime ] [ ClassScope ] identifier [ PortList ] ";"
                  { DataDeclaration } { StatementOrNull } "endtask" [ BlockLabel ] .

DataTypeOrVoid = "void" | DataType .
DataType = ( "bit" | "logic" | "reg" ) [ Signing ] { PackedDimension }
         | ( "byte" | "shortint" | "int" | "longint" | "integer" | "time" ) [ Signing ]
         | "real" | "shortreal" | "realtime" | "string" | "event" | "chandle"
         | [ PackageScope ] ClassType { PackedDimension } .
Signing = "signed" | "unsigned" .
PackedDimension = "[" ConstantRange "]" .
UnpackedDimension = "[" [ Expression [ ":" Expression ] ] "]" .

Expression = Operand { BinaryOperator Operand | "?" Expression ":" Expression | "inside" "{" OpenRangeList "}" } .
BinaryOperator = "->" | "<->" | "||" | "&&" | "|" | "^" | "^~" | "~^" | "&"
               | "==" | "!=" | "===" | "!==" | "==?" | "!=?" | "<" | "<=" | ">" | ">="
               | "<<" | ">>" | "<<<" | ">>>" | "+" | "-" | "*" | "/" | "%" | "**" .
Operand = IncOrDecExpression | UnaryOperator Operand | Primary .
UnaryOperator = "~&" | "~|" | "~^" | "^~" | "+" | "-" | "!" | "~" | "&" | "|" | "^" .
IncOrDecExpression = ( "++" | "--" ) VariableLvalue | VariableLvalue ( "++" | "--" ) .
Primary = number | stringLiteral | Concatenation | "{" Expression Concatenation "}"
        | "'{" Expression { "," Expression } "}" | "(" Expression ")" | FunctionSubroutineCall
        | HierarchicalPrimary | "this" | "null" | "$" .
Concatenation = "{" [ Expression { "," Expression } ] "}" .
HierarchicalPrimary = [ ScopePrefix ] HierarchicalIdentifier Select .
OpenRangeList = ValueRange { "," ValueRange } .
ValueRange = "[" ConstantRange "]" | Expression .
ClassNew = "new" [ "(" [ ListOfArguments ] ")" ] .
DynamicArrayNew = "new" "[" Expression "]" [ "(" Expression ")" ] .

ScopePrefix = ImplicitClassHandle "." | ClassScope | PackageScope .
ClassQualifier = ImplicitClassHandle "." | ClassScope .
HandleOrPackageScope = ImplicitClassHandle "." | PackageScope .
ImplicitClassHandle = "this" [ "." "super" ] | "super" .
ClassScope = ClassType "::" .
PackageScope = ( "$unit" | identifier ) "::" .
ClassType = identifier [ "#" "(" [ ListOfArguments ] ")" ] .
HierarchicalIdentifier = HierarchicalPath identifier .
HierarchicalPath = [ "$root" "." ] { HierarchicalSegment } .
HierarchicalSegment = identifier { "[" Expression "]" } "." .
Select = { "[" Expression "]" } [ "[" PartSelectRange "]" ] .
PartSelectRange = ConstantRange | Expression ( "+:" | "-:" ) Expression .
ConstantRange = Expression ":" Expression .
IdentifierOrNew = identifier | "new" .

identifier = simpleIdentifier | escapedIdentifier .
simpleIdentifier = ( letter | "_" ) { letter | digit | "_" | "$" } .
escapedIdentifier = "\\" visible { visible } .
systemTfIdentifier = "$" ( letter | digit | "_" | "$" ) { letter | digit | "_" | "$" } .
number = digits [ "." digits ] [ exponent ] [ timeUnit ]
       | [ digits ] "'" [ "s" | "S" ] base baseDigit { baseDigit | "_" }
       | "'" ( "0" | "1" | "x" | "X" | "z" | "Z" ) .
digits = digit { digit | "_" } .
exponent = ( "e" | "E" ) [ "+" | "-" ] digits .
timeUnit = "s" | "ms" | "us" | "ns" | "ps" | "fs" | "step" .
base = "b" | "B" | "o" | "O" | "d" | "D" | "h" | "H" .
baseDigit = digit | "a" … "f" | "A" … "F" | "x" | "X" | "z" | "Z" | "?" .
stringLiteral = "\"" { stringChar } "\"" .
stringChar = " " … "!" | "#" … "[" | "]" … "~" | "\\" visible .
visible = "!" … "~" .
letter = "a" … "z" | "A" … "Z" .
digit = "0" … "9" .
`

// GrammarStart is the start production of the grammar.
const GrammarStart = "SourceText"

// Grammar returns the grammar recognised by the parser.
//
// The grammar is verified: every production is defined and reachable from GrammarStart.
func Grammar() (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse("svparse.ebnf", strings.NewReader(grammarText))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(grammar, GrammarStart); err != nil {
		return nil, err
	}
	return grammar, nil
}

// GrammarString formats the grammar one production per line, starting with GrammarStart and
// followed by the remaining productions in alphabetical order.
func GrammarString() (string, error) {
	grammar, err := Grammar()
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(grammar))
	for name := range grammar {
		if name != GrammarStart {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append([]string{GrammarStart}, names...)
	out := make([]string, 0, len(names))
	for _, name := range names {
		w := &strings.Builder{}
		formatExpression(w, true, grammar[name].Expr)
		out = append(out, fmt.Sprintf("%s = %s .", name, w.String()))
	}
	return strings.Join(out, "\n"), nil
}

func formatExpression(w *strings.Builder, root bool, expr ebnf.Expression) {
	switch expr := expr.(type) {
	case nil:

	case ebnf.Alternative:
		if !root {
			w.WriteString("(")
		}
		for i, next := range expr {
			if i > 0 {
				w.WriteString(" | ")
			}
			formatExpression(w, false, next)
		}
		if !root {
			w.WriteString(")")
		}

	case ebnf.Sequence:
		for i, next := range expr {
			if i > 0 {
				w.WriteString(" ")
			}
			formatExpression(w, false, next)
		}

	case *ebnf.Name:
		w.WriteString(expr.String)

	case *ebnf.Token:
		w.WriteString(strconv.Quote(expr.String))

	case *ebnf.Range:
		formatExpression(w, false, expr.Begin)
		w.WriteString(" … ")
		formatExpression(w, false, expr.End)

	case *ebnf.Group:
		w.WriteString("(")
		formatExpression(w, true, expr.Body)
		w.WriteString(")")

	case *ebnf.Option:
		w.WriteString("[ ")
		formatExpression(w, true, expr.Body)
		w.WriteString(" ]")

	case *ebnf.Repetition:
		w.WriteString("{ ")
		formatExpression(w, true, expr.Body)
		w.WriteString(" }")

	default:
		panic(fmt.Sprintf("unsupported EBNF expression %T", expr))
	}
}
