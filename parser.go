package svparse

import (
	"io"
	"strings"

	"github.com/svparse/svparse/lexer"
)

// DefaultMaxDepth is the rule nesting limit used unless overridden with MaxDepth.
const DefaultMaxDepth = 4096

// A Parser for preprocessed SystemVerilog source text.
//
// A Parser holds only configuration and may be used concurrently.
type Parser struct {
	defines         Defines
	includePaths    []string
	ignoreInclude   bool
	allowIncomplete bool
	maxDepth        int
	trace           io.Writer
	origins         []lexer.Origin
}

// New creates a Parser.
func New(options ...Option) (*Parser, error) {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(options ...Option) *Parser {
	p, err := New(options...)
	if err != nil {
		panic(err)
	}
	return p
}

// SyntaxTree is the result of a successful parse.
type SyntaxTree struct {
	Source *lexer.Source
	Root   *SourceText
	// End is the position following the last byte consumed.
	End lexer.Position
}

// Text returns the source text covered by n, trivia included.
func (t *SyntaxTree) Text(n Node) string {
	w := &strings.Builder{}
	for _, leaf := range Leaves(n) {
		w.WriteString(t.Source.Slice(leaf.Extent()))
	}
	return w.String()
}

// Span of n in the source.
func (t *SyntaxTree) Span(n Node) lexer.Span { return SpanOf(n) }

// String returns the full text of the tree, which is identical to the parsed input.
func (t *SyntaxTree) String() string { return t.Text(t.Root) }

// Parse from r.
func (p *Parser) Parse(filename string, r io.Reader) (*SyntaxTree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, AnnotateError(lexer.Position{Filename: filename}, err)
	}
	return p.ParseString(filename, string(data))
}

// ParseBytes parses a byte slice.
func (p *Parser) ParseBytes(filename string, data []byte) (*SyntaxTree, error) {
	return p.ParseString(filename, string(data))
}

// ParseString parses a string.
func (p *Parser) ParseString(filename, text string) (*SyntaxTree, error) {
	return p.ParseSource(lexer.NewSource(filename, text, p.origins...))
}

// ParseSource parses preprocessed source text.
//
// If the grammar matched but did not consume all input, the returned error is a
// *TrailingInputError and the tree holding everything parsed is returned alongside it.
func (p *Parser) ParseSource(src *lexer.Source) (*SyntaxTree, error) {
	in := NewInput(src, p)
	ctx := in.ctx
	out, root, err := sourceText(in)
	if err != nil {
		return nil, ctx.errorAt(err, p.defines, p.includePaths)
	}
	tree := &SyntaxTree{Source: src, Root: &root, End: src.Position(out.off)}
	if out.EOF() {
		return tree, nil
	}
	// If some rule got further than where the tree ended, the remaining input is a malformed
	// construct rather than unrecognised trailing text.
	if ctx.furthest > out.off {
		return nil, ctx.errorAt(&Failure{Offset: ctx.furthest}, p.defines, p.includePaths)
	}
	return tree, ctx.directiveError(out.off, &TrailingInputError{
		Pos:   src.Position(out.off),
		Found: tokenAt(src.Text, out.off),
		Tree:  tree,
	}, p.defines, p.includePaths)
}

// ParseSV parses preprocessed SystemVerilog text.
//
// defines and includePaths describe how the text was preprocessed and are used to report errors.
// If ignoreInclude is true, `include directives are skipped as trivia. If allowIncomplete is true,
// module items, class items and statements are accepted at the top level.
func ParseSV(filename, text string, defines Defines, includePaths []string, ignoreInclude, allowIncomplete bool) (*SyntaxTree, error) {
	options := []Option{WithDefines(defines), IncludePaths(includePaths...)}
	if ignoreInclude {
		options = append(options, IgnoreInclude())
	}
	if allowIncomplete {
		options = append(options, AllowIncomplete())
	}
	p, err := New(options...)
	if err != nil {
		return nil, err
	}
	return p.ParseString(filename, text)
}
