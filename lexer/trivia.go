package lexer

import (
	"strings"
)

// TriviaKind classifies text that is kept for round-tripping but ignored by the grammar.
type TriviaKind int

const (
	Space TriviaKind = iota
	LineComment
	BlockComment
	// Directive is a compiler directive line surviving preprocessing, eg. `timescale.
	Directive
)

func (k TriviaKind) String() string {
	switch k {
	case Space:
		return "Space"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	case Directive:
		return "Directive"
	}
	return "Unknown"
}

// Trivia is whitespace, a comment or a directive attached to the preceding symbol.
type Trivia struct {
	Kind TriviaKind
	Span Span
}

// Directives that the preprocessor passes through untouched and which carry no grammar.
var passThroughDirectives = map[string]bool{
	"begin_keywords":      true,
	"celldefine":          true,
	"default_nettype":     true,
	"end_keywords":        true,
	"endcelldefine":       true,
	"line":                true,
	"nounconnected_drive": true,
	"pragma":              true,
	"resetall":            true,
	"timescale":           true,
	"unconnected_drive":   true,
}

// DirectiveName returns the name of the compiler directive or macro usage at offset, without the
// leading backtick, or "" if there is none.
func DirectiveName(text string, offset int) string {
	if offset >= len(text) || text[offset] != '`' {
		return ""
	}
	n := ScanSimpleIdentifierText(text, offset+1)
	return text[offset+1 : offset+1+n]
}

// Trivia scans all trivia starting at offset and returns it along with the offset following it.
//
// When includes is true, `include directive lines are treated as trivia too.
func (s *Source) Trivia(offset int, includes bool) ([]Trivia, int) {
	var out []Trivia
	for {
		kind, n := scanTrivia(s.Text, offset, includes)
		if n == 0 {
			return out, offset
		}
		out = append(out, Trivia{Kind: kind, Span: s.Span(offset, n)})
		offset += n
	}
}

// A UTF-8 byte order mark is only trivia at the start of a file.
const byteOrderMark = "\ufeff"

func scanTrivia(text string, offset int, includes bool) (TriviaKind, int) {
	if offset >= len(text) {
		return Space, 0
	}
	rest := text[offset:]
	switch {
	case offset == 0 && strings.HasPrefix(rest, byteOrderMark):
		return Space, len(byteOrderMark)

	case isSpace(rest[0]):
		n := 1
		for n < len(rest) && isSpace(rest[n]) {
			n++
		}
		return Space, n

	case strings.HasPrefix(rest, "//"):
		n := strings.IndexByte(rest, '\n')
		if n < 0 {
			n = len(rest)
		}
		return LineComment, n

	case strings.HasPrefix(rest, "/*"):
		n := strings.Index(rest[2:], "*/")
		if n < 0 {
			return BlockComment, 0
		}
		return BlockComment, n + 4

	case rest[0] == '`':
		name := DirectiveName(text, offset)
		if !passThroughDirectives[name] && !(includes && name == "include") {
			return Directive, 0
		}
		n := strings.IndexByte(rest, '\n')
		if n < 0 {
			n = len(rest)
		}
		return Directive, n
	}
	return Space, 0
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
