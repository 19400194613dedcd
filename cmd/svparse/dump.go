package main

import (
	"github.com/svparse/svparse"
)

// dumpNode is the YAML form of a syntax tree node.
type dumpNode struct {
	Node     string      `yaml:"node"`
	Line     int         `yaml:"line,omitempty"`
	Text     string      `yaml:"text,omitempty"`
	Children []*dumpNode `yaml:"children,omitempty"`
}

func newDumpNode(tree *svparse.SyntaxTree, n svparse.Node) *dumpNode {
	out := &dumpNode{Node: svparse.NodeName(n)}
	if leaf, ok := n.(svparse.Leaf); ok {
		switch leaf := leaf.(type) {
		case svparse.Symbol:
			out.Node = "Symbol"
			out.Text = tree.Source.Slice(leaf.Span)
			out.Line = leaf.Span.Pos.Line
		default:
			out.Text = tree.Source.Slice(leaf.Extent())
		}
		return out
	}
	for _, child := range n.Children() {
		out.Children = append(out.Children, newDumpNode(tree, child))
	}
	return out
}
