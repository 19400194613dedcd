package svparse

import (
	"fmt"
	"io"
	"strings"
)

// Trace the parse to "w".
//
// One line is written when each rule is attempted and one when it completes.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

func (p *parseContext) traceEnter(name string, in Input) {
	fmt.Fprintf(p.trace, "%s%s %q\n", strings.Repeat(" ", 2*(len(p.stack)-1)), name, peek(in.Rest(), 16))
}

func (p *parseContext) traceLeave(name string, in, out Input, err error) {
	indent := strings.Repeat(" ", 2*len(p.stack))
	if err != nil {
		fmt.Fprintf(p.trace, "%s%s failed\n", indent, name)
		return
	}
	fmt.Fprintf(p.trace, "%s%s matched %q\n", indent, name, peek(in.Rest(), out.off-in.off))
}

func peek(text string, n int) string {
	if n < len(text) {
		text = text[:n]
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return text
}
