package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/svparse/svparse"
)

type grammarCmd struct {
	Format string `enum:"ebnf,railroad" default:"ebnf" help:"Output format, one of ${enum}."`
}

func (c *grammarCmd) Help() string {
	return `
The railroad format is an HTML page that draws the grammar with
https://github.com/tabatkins/railroad-diagrams. Copy railroad-diagrams.{css,js} next to it.
`
}

func (c *grammarCmd) Run(env *environment) error {
	if c.Format == "ebnf" {
		text, err := svparse.GrammarString()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(env.stdout, text)
		return err
	}
	grammar, err := svparse.Grammar()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(env.stdout, railroad(grammar, svparse.GrammarStart))
	return err
}

// railroad renders grammar as an HTML page of railroad diagrams, one per production, starting
// with start.
func railroad(grammar ebnf.Grammar, start string) string {
	names := make([]string, 0, len(grammar))
	for name := range grammar {
		if name != start && !lexical(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append([]string{start}, names...)

	w := &strings.Builder{}
	w.WriteString(`<!DOCTYPE html>
<style>
body {
	background-color: hsl(30,20%, 95%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`)
	for _, name := range names {
		fmt.Fprintf(w, "<h1 id=%q>%s</h1>\n<script>\nDiagram(", name, name)
		diagram(w, grammar[name].Expr)
		w.WriteString(").addTo();\n</script>\n")
	}
	w.WriteString("</body>\n")
	return w.String()
}

// Lexical productions start with a lower case letter.
func lexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r)
}

// diagram writes expr as railroad-diagrams constructors. Lexical productions are drawn as
// unlinked nonterminals.
func diagram(w *strings.Builder, expr ebnf.Expression) {
	switch expr := expr.(type) {
	case nil:
		w.WriteString("Skip()")

	case ebnf.Alternative:
		w.WriteString("Choice(0, ")
		for i, next := range expr {
			if i > 0 {
				w.WriteString(", ")
			}
			diagram(w, next)
		}
		w.WriteString(")")

	case ebnf.Sequence:
		w.WriteString("Sequence(")
		for i, next := range expr {
			if i > 0 {
				w.WriteString(", ")
			}
			diagram(w, next)
		}
		w.WriteString(")")

	case *ebnf.Name:
		if lexical(expr.String) {
			fmt.Fprintf(w, "NonTerminal(%q)", expr.String)
		} else {
			fmt.Fprintf(w, "NonTerminal(%q, {href:\"#%s\"})", expr.String, expr.String)
		}

	case *ebnf.Token:
		fmt.Fprintf(w, "Terminal(%q)", expr.String)

	case *ebnf.Range:
		fmt.Fprintf(w, "Terminal(%q)", expr.Begin.String+"…"+expr.End.String)

	case *ebnf.Group:
		diagram(w, expr.Body)

	case *ebnf.Option:
		w.WriteString("Optional(")
		diagram(w, expr.Body)
		w.WriteString(")")

	case *ebnf.Repetition:
		w.WriteString("ZeroOrMore(")
		diagram(w, expr.Body)
		w.WriteString(")")

	default:
		panic(fmt.Sprintf("unsupported EBNF expression %T", expr))
	}
}
