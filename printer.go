package svparse

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// NodeName returns the name of the node type, eg. "ConstraintDeclaration" or "Paren".
func NodeName(n Node) string {
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	// Instantiated generic types are named eg. "Paren[github.com/.../svparse.Expression]".
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// Outline writes an indented outline of n to w, one node per line.
//
// Leaves are written with their token text, trailing trivia excluded.
func (t *SyntaxTree) Outline(w io.Writer, n Node) error {
	return outline(w, t, n, 0)
}

func outline(w io.Writer, t *SyntaxTree, n Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case Symbol:
		_, err := fmt.Fprintf(w, "%s%q\n", indent, t.Source.Slice(n.Span))
		return err
	case Whitespace:
		_, err := fmt.Fprintf(w, "%sWhitespace\n", indent)
		return err
	case *Whitespace:
		_, err := fmt.Fprintf(w, "%sWhitespace\n", indent)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, NodeName(n)); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := outline(w, t, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// OutlineString returns the outline of the whole tree.
func (t *SyntaxTree) OutlineString() string {
	w := &strings.Builder{}
	_ = t.Outline(w, t.Root)
	return w.String()
}
