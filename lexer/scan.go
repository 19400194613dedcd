package lexer

import (
	"regexp"
)

// NumberKind classifies a numeric literal.
type NumberKind int

const (
	NotNumber NumberKind = iota
	Integral
	Real
	Time
	UnbasedUnsized
)

func (k NumberKind) String() string {
	switch k {
	case Integral:
		return "Integral"
	case Real:
		return "Real"
	case Time:
		return "Time"
	case UnbasedUnsized:
		return "UnbasedUnsized"
	}
	return "NotNumber"
}

var (
	escapedIdentifierRe = regexp.MustCompile(`^\\[!-~]+`)
	systemIdentifierRe  = regexp.MustCompile(`^\$[a-zA-Z0-9_$]+`)
	timeLiteralRe       = regexp.MustCompile(`^[0-9][0-9_]*(?:\.[0-9][0-9_]*)?(?:fs|ps|ns|us|ms|step|s)\b`)
	basedNumberRe       = regexp.MustCompile(`^(?:[1-9][0-9_]*[ \t]*)?'[sS]?(?:` +
		`[bB][ \t]*[01xXzZ?][01xXzZ?_]*|` +
		`[oO][ \t]*[0-7xXzZ?][0-7xXzZ?_]*|` +
		`[dD][ \t]*(?:[0-9][0-9_]*|[xXzZ?]_*)|` +
		`[hH][ \t]*[0-9a-fA-FxXzZ?][0-9a-fA-FxXzZ?_]*)`)
	realNumberRe     = regexp.MustCompile(`^[0-9][0-9_]*(?:\.[0-9][0-9_]*(?:[eE][+-]?[0-9][0-9_]*)?|[eE][+-]?[0-9][0-9_]*)`)
	unbasedUnsizedRe = regexp.MustCompile(`^'[01xXzZ]\b`)
	decimalNumberRe  = regexp.MustCompile(`^[0-9][0-9_]*`)
)

func match(re *regexp.Regexp, text string, offset int) int {
	if offset >= len(text) {
		return 0
	}
	loc := re.FindStringIndex(text[offset:])
	if loc == nil {
		return 0
	}
	return loc[1]
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsIdentChar returns true if b may continue a simple identifier.
func IsIdentChar(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9') || b == '$'
}

// ScanSimpleIdentifierText matches [a-zA-Z_][a-zA-Z0-9_$]* without checking keywords.
func ScanSimpleIdentifierText(text string, offset int) int {
	if offset >= len(text) || !isIdentStart(text[offset]) {
		return 0
	}
	n := 1
	for offset+n < len(text) && IsIdentChar(text[offset+n]) {
		n++
	}
	return n
}

// ScanSimpleIdentifier matches a simple identifier that is not a reserved keyword.
func ScanSimpleIdentifier(text string, offset int) int {
	n := ScanSimpleIdentifierText(text, offset)
	if n == 0 || IsKeyword(text[offset:offset+n]) {
		return 0
	}
	return n
}

// ScanEscapedIdentifier matches a backslash followed by printable non-space characters.
func ScanEscapedIdentifier(text string, offset int) int {
	return match(escapedIdentifierRe, text, offset)
}

// ScanSystemIdentifier matches a system task or function name such as $display.
func ScanSystemIdentifier(text string, offset int) int {
	return match(systemIdentifierRe, text, offset)
}

// ScanNumber matches a numeric literal, trying the most specific forms first.
func ScanNumber(text string, offset int) (NumberKind, int) {
	if n := match(timeLiteralRe, text, offset); n > 0 {
		return Time, n
	}
	if n := match(basedNumberRe, text, offset); n > 0 {
		return Integral, n
	}
	if n := match(realNumberRe, text, offset); n > 0 {
		return Real, n
	}
	if n := match(unbasedUnsizedRe, text, offset); n > 0 {
		return UnbasedUnsized, n
	}
	if n := match(decimalNumberRe, text, offset); n > 0 {
		return Integral, n
	}
	return NotNumber, 0
}

// ScanString matches a double quoted string literal with backslash escapes.
//
// Unescaped newlines terminate the match unsuccessfully.
func ScanString(text string, offset int) int {
	if offset >= len(text) || text[offset] != '"' {
		return 0
	}
	for i := offset + 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '\n':
			return 0
		case '"':
			return i + 1 - offset
		}
	}
	return 0
}
