// Package svparse parses preprocessed SystemVerilog into a lossless concrete syntax tree.
//
// Every token of the input, along with the whitespace and comments following it, is retained in
// the tree, so the exact source text of any node can be recovered:
//
//     parser := svparse.MustNew(svparse.AllowIncomplete())
//     tree, err := parser.ParseString("t.sv", "initial x = 1;")
//     if err != nil {
//         return err
//     }
//     fmt.Println(tree.Text(tree.Root)) // initial x = 1;
//
// The grammar is written directly in Go as functions of type Combinator, built from a small set of
// combinators:
//
//     - Literal matches a keyword or punctuator.
//     - Opt and Maybe make a parser optional.
//     - Many0 and Many1 repeat a parser.
//     - ListOf and CommaList match separated lists.
//     - Parens, Brackets and Braces match delimited groups.
//     - Choice and Alt match the first of several alternatives, in order.
//     - Cut commits to a parser, so that its failure is not backtracked over.
//
// Alternatives are ordered, so where several could match, the most specific is listed first. The
// grammar accepted by the parser can be retrieved as EBNF with Grammar.
//
// The parser does not preprocess. Macro definitions and include paths may be supplied so that
// macro usages and `include directives left in the text are reported as *MacroError and
// *IncludeError respectively.
package svparse
