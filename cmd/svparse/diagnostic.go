package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/svparse/svparse"
	"github.com/svparse/svparse/lexer"
)

var (
	errorColour  = color.New(color.FgRed, color.Bold)
	sourceColour = color.New(color.Faint)
	caretColour  = color.New(color.FgGreen, color.Bold)
)

// printDiagnostic writes err followed by the line of text it occurred on and a caret under the
// offending column.
func printDiagnostic(w io.Writer, text string, err error) error {
	var perr svparse.Error
	if !errors.As(err, &perr) {
		_, werr := fmt.Fprintf(w, "%s %s\n", errorColour.Sprint("error:"), err)
		return werr
	}
	pos := perr.Position()
	if _, werr := fmt.Fprintf(w, "%s: %s %s\n", pos, errorColour.Sprint("error:"), perr.Message()); werr != nil {
		return werr
	}
	line, column := sourceLine(text, pos.Offset)
	if _, werr := fmt.Fprintf(w, "  %s\n", sourceColour.Sprint(line)); werr != nil {
		return werr
	}
	_, werr := fmt.Fprintf(w, "  %s%s\n", caretPadding(line, column), caretColour.Sprint("^"))
	return werr
}

// sourceLine returns the line of text containing offset and the byte column of offset within it.
//
// Positions may be mapped back through preprocessor origins, so the column is recomputed here
// against the text that was actually parsed.
func sourceLine(text string, offset int) (string, int) {
	src := lexer.NewSource("", text)
	pos := src.Position(offset)
	return src.Line(pos.Offset), pos.Column - 1
}

// caretPadding preserves tabs so the caret lines up with the source line.
func caretPadding(line string, column int) string {
	if column > len(line) {
		column = len(line)
	}
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		return ' '
	}, line[:column])
}
