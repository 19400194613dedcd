package lexer

import (
	"sort"
)

// Origin maps the expanded text starting at Offset back to the file it came from.
//
// A preprocessor that splices included files and macro bodies into one buffer records an Origin
// at every point where the originating file or line numbering changes.
type Origin struct {
	// Offset in the expanded text where this origin starts.
	Offset   int
	Filename string
	// Line and Column of the byte at Offset in Filename.
	Line   int
	Column int
}

// Validate checks that o can be used to map positions.
func (o Origin) Validate() error {
	pos := Position{Filename: o.Filename, Line: o.Line, Column: o.Column}
	switch {
	case o.Offset < 0:
		return Errorf(pos, "origin offset must be >= 0 but is %d", o.Offset)
	case o.Line < 1 || o.Column < 1:
		return Errorf(pos, "origin at offset %d must have a line and column >= 1", o.Offset)
	}
	return nil
}

// Source is an immutable buffer of already preprocessed text.
//
// Spans and positions produced while parsing refer back into Text; the buffer must be retained
// for as long as any tree built from it.
type Source struct {
	Filename string
	Text     string
	lines    []int
	origins  []Origin
}

// NewSource creates a Source, optionally annotated with preprocessor origins.
func NewSource(filename, text string, origins ...Origin) *Source {
	s := &Source{
		Filename: filename,
		Text:     text,
		lines:    []int{0},
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lines = append(s.lines, i+1)
		}
	}
	if len(origins) > 0 {
		s.origins = append([]Origin(nil), origins...)
		sort.SliceStable(s.origins, func(i, j int) bool { return s.origins[i].Offset < s.origins[j].Offset })
	}
	return s
}

// Len of the text in bytes.
func (s *Source) Len() int { return len(s.Text) }

// Origins recorded for this source, sorted by offset.
func (s *Source) Origins() []Origin { return s.origins }

func (s *Source) lineIndex(offset int) int {
	return sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
}

// Position resolves a byte offset to a Position.
//
// Offsets outside the text are clamped. Line and column are 1-based; columns count bytes.
func (s *Source) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	} else if offset > len(s.Text) {
		offset = len(s.Text)
	}
	line := s.lineIndex(offset)
	pos := Position{
		Filename: s.Filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - s.lines[line] + 1,
	}
	i := sort.Search(len(s.origins), func(i int) bool { return s.origins[i].Offset > offset }) - 1
	if i < 0 {
		return pos
	}
	origin := s.origins[i]
	startLine := s.lineIndex(origin.Offset)
	pos.Filename = origin.Filename
	pos.Line = origin.Line + (line - startLine)
	if line == startLine {
		pos.Column = origin.Column + (offset - origin.Offset)
	}
	return pos
}

// Span of n bytes starting at offset.
func (s *Source) Span(offset, n int) Span {
	return Span{Pos: s.Position(offset), Len: n}
}

// Slice returns the text covered by span.
func (s *Source) Slice(span Span) string {
	start, end := span.Pos.Offset, span.End()
	if start < 0 {
		start = 0
	}
	if end > len(s.Text) {
		end = len(s.Text)
	}
	if start >= end {
		return ""
	}
	return s.Text[start:end]
}

// Line returns the text of the line containing offset, without its terminating newline.
func (s *Source) Line(offset int) string {
	if offset > len(s.Text) {
		offset = len(s.Text)
	}
	line := s.lineIndex(offset)
	start := s.lines[line]
	end := len(s.Text)
	if line+1 < len(s.lines) {
		end = s.lines[line+1] - 1
	}
	if end > start && s.Text[end-1] == '\r' {
		end--
	}
	return s.Text[start:end]
}
