package lexer

import (
	"sort"
	"strings"
)

// Operators and punctuators, matched longest first.
var punctuators = func() []string {
	out := strings.Fields(`
		<<<= >>>=
		=== !== ==? !=? <<< >>> <<= >>= <-> ->> |-> |=>
		== != <= >= && || ** += -= *= /= %= &= |= ^= << >> -> ++ -- ~& ~| ~^ ^~ :: := :/ +: -: '{ ## =>
		+ - * / % = < > ! ~ & | ^ ? : ; , . ( ) [ ] { } # @ ' $`)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}()

// ScanPunct returns the length of the longest operator or punctuator at offset.
func ScanPunct(text string, offset int) int {
	if offset >= len(text) {
		return 0
	}
	rest := text[offset:]
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p) {
			return len(p)
		}
	}
	return 0
}

// IsWordLike returns true if literal is matched with identifier boundaries (keywords, names)
// rather than by longest punctuator.
func IsWordLike(literal string) bool {
	return literal != "" && (isIdentStart(literal[0]) || literal[0] == '$')
}
