package svparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/svparse/svparse/lexer"
)

// Error represents an error while parsing.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// Failure is a recoverable failure to match.
//
// Alternations, optional children and repetitions absorb a Failure and try something else.
type Failure struct {
	Offset   int
	Expected string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("offset %d: expected %s", f.Offset, f.Expected)
}

// Recoverable returns true if err is a Failure that alternatives may recover from.
func Recoverable(err error) bool {
	_, ok := err.(*Failure)
	return ok
}

// CommitError is a failure after a Cut. It aborts the parse.
type CommitError struct {
	Failure *Failure
	Pos     lexer.Position
}

func (c *CommitError) Error() string            { return lexer.FormatError(c.Pos, c.Message()) }
func (c *CommitError) Message() string          { return "expected " + c.Failure.Expected }
func (c *CommitError) Position() lexer.Position { return c.Pos }

// DepthError is returned when rules nest deeper than the configured MaxDepth.
type DepthError struct {
	Depth int
	Rule  string
	Pos   lexer.Position
}

func (d *DepthError) Error() string { return lexer.FormatError(d.Pos, d.Message()) }
func (d *DepthError) Message() string {
	return fmt.Sprintf("maximum nesting depth %d exceeded in %s", d.Depth, d.Rule)
}
func (d *DepthError) Position() lexer.Position { return d.Pos }

// ParseError is returned when the input does not match the grammar.
//
// It is reported at the furthest position any rule reached before failing.
type ParseError struct {
	Pos lexer.Position
	// Text of the token at Pos, or "" at the end of input.
	Found string
	// Rules or literals that were expected at Pos, in the order they were attempted.
	Expected []string
	// Rules active when the last failure at Pos was recorded, outermost first.
	Stack []string
}

func (p *ParseError) Error() string { return lexer.FormatError(p.Pos, p.Message()) }

func (p *ParseError) Message() string {
	found := "end of input"
	if p.Found != "" {
		found = fmt.Sprintf("%q", p.Found)
	}
	if len(p.Expected) == 0 {
		return "unexpected " + found
	}
	return fmt.Sprintf("unexpected %s (expected %s)", found, strings.Join(p.Expected, ", "))
}

func (p *ParseError) Position() lexer.Position { return p.Pos }

// TrailingInputError is returned when a complete tree was built but input remains after it.
//
// Tree holds everything that was parsed.
type TrailingInputError struct {
	Pos   lexer.Position
	Found string
	Tree  *SyntaxTree
}

func (t *TrailingInputError) Error() string { return lexer.FormatError(t.Pos, t.Message()) }
func (t *TrailingInputError) Message() string {
	return fmt.Sprintf("unexpected trailing input %q", t.Found)
}
func (t *TrailingInputError) Position() lexer.Position { return t.Pos }

// MacroError is returned when parsing fails on a macro usage, which indicates that the text was not
// fully preprocessed.
type MacroError struct {
	Name string
	// Defined is true if Name was supplied in the defines passed to the parser.
	Defined bool
	Pos     lexer.Position
	Err     error
}

func (m *MacroError) Error() string { return lexer.FormatError(m.Pos, m.Message()) }
func (m *MacroError) Message() string {
	if m.Defined {
		return fmt.Sprintf("unexpanded macro `%s", m.Name)
	}
	return fmt.Sprintf("undefined macro `%s", m.Name)
}
func (m *MacroError) Position() lexer.Position { return m.Pos }
func (m *MacroError) Unwrap() error            { return m.Err }

// IncludeError is returned when parsing fails on an `include directive and includes are not being
// ignored.
type IncludeError struct {
	Pos lexer.Position
	// Line containing the directive.
	Directive string
	// Paths that were configured for resolving includes.
	Paths []string
	Err   error
}

func (i *IncludeError) Error() string { return lexer.FormatError(i.Pos, i.Message()) }
func (i *IncludeError) Message() string {
	if len(i.Paths) == 0 {
		return fmt.Sprintf("unresolved %s (no include paths)", i.Directive)
	}
	return fmt.Sprintf("unresolved %s (include paths: %s)", i.Directive, strings.Join(i.Paths, ", "))
}
func (i *IncludeError) Position() lexer.Position { return i.Pos }
func (i *IncludeError) Unwrap() error            { return i.Err }

type parseErrorf struct {
	Msg string
	Pos lexer.Position
}

func (p *parseErrorf) Error() string            { return lexer.FormatError(p.Pos, p.Msg) }
func (p *parseErrorf) Message() string          { return p.Msg }
func (p *parseErrorf) Position() lexer.Position { return p.Pos }

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an Error it will be returned unmodified.
func AnnotateError(pos lexer.Position, err error) error {
	var perr Error
	if errors.As(err, &perr) {
		return err
	}
	return &parseErrorf{Msg: err.Error(), Pos: pos}
}

// errorAt converts the outcome of a failed parse into an Error.
func (p *parseContext) errorAt(err error, defines Defines, includePaths []string) error {
	if !Recoverable(err) {
		return err
	}
	pos := p.furthest
	if pos < 0 {
		pos = err.(*Failure).Offset
	}
	perr := &ParseError{
		Pos:      p.src.Position(pos),
		Found:    tokenAt(p.src.Text, pos),
		Expected: append([]string(nil), p.expected...),
		Stack:    append([]string(nil), p.failed...),
	}
	return p.directiveError(pos, perr, defines, includePaths)
}

// directiveError checks whether parsing stopped on a compiler directive the grammar does not
// handle, and if so wraps err in a more useful error.
func (p *parseContext) directiveError(offset int, err error, defines Defines, includePaths []string) error {
	name := lexer.DirectiveName(p.src.Text, offset)
	switch {
	case name == "":
		return err
	case name == "include":
		line := p.src.Text[offset:]
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		return &IncludeError{
			Pos:       p.src.Position(offset),
			Directive: strings.TrimSpace(line),
			Paths:     includePaths,
			Err:       err,
		}
	default:
		_, defined := defines[name]
		return &MacroError{Name: name, Defined: defined, Pos: p.src.Position(offset), Err: err}
	}
}

// tokenAt returns the text of the token starting at offset, for diagnostics.
func tokenAt(text string, offset int) string {
	if offset >= len(text) {
		return ""
	}
	for _, scan := range []func(string, int) int{
		lexer.ScanSimpleIdentifierText,
		lexer.ScanSystemIdentifier,
		lexer.ScanEscapedIdentifier,
		lexer.ScanString,
		func(text string, offset int) int { _, n := lexer.ScanNumber(text, offset); return n },
		lexer.ScanPunct,
	} {
		if n := scan(text, offset); n > 0 {
			return text[offset : offset+n]
		}
	}
	if text[offset] == '`' {
		return "`" + lexer.DirectiveName(text, offset)
	}
	return text[offset : offset+1]
}
