package svparse

import (
	"fmt"

	"github.com/svparse/svparse/lexer"
)

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Define is a preprocessor macro definition.
//
// The parser does not expand macros, definitions are only consulted when reporting errors.
type Define struct {
	Name      string
	Arguments []string
	Text      string
}

// Defines maps macro names, without the leading backtick, to their definitions.
//
// A nil *Define marks a name as defined without a value.
type Defines map[string]*Define

// WithDefines configures the macro definitions the text was preprocessed with.
func WithDefines(defines Defines) Option {
	return func(p *Parser) error {
		if p.defines == nil {
			p.defines = Defines{}
		}
		for name, define := range defines {
			p.defines[name] = define
		}
		return nil
	}
}

// IncludePaths configures the directories used to resolve `include directives.
func IncludePaths(paths ...string) Option {
	return func(p *Parser) error {
		p.includePaths = append(p.includePaths, paths...)
		return nil
	}
}

// IgnoreInclude treats `include directive lines as trivia rather than failing on them.
func IgnoreInclude() Option {
	return func(p *Parser) error {
		p.ignoreInclude = true
		return nil
	}
}

// AllowIncomplete permits module items, class items and statements at the top level, for parsing
// fragments of a design.
func AllowIncomplete() Option {
	return func(p *Parser) error {
		p.allowIncomplete = true
		return nil
	}
}

// MaxDepth limits how deeply grammar rules may nest. Zero means unlimited.
func MaxDepth(depth int) Option {
	return func(p *Parser) error {
		if depth < 0 {
			return fmt.Errorf("max depth must be >= 0 but is %d", depth)
		}
		p.maxDepth = depth
		return nil
	}
}

// Origins maps positions in preprocessed text back to the files and lines they came from.
func Origins(origins ...lexer.Origin) Option {
	return func(p *Parser) error {
		for _, origin := range origins {
			if err := origin.Validate(); err != nil {
				return err
			}
		}
		p.origins = append(p.origins, origins...)
		return nil
	}
}
