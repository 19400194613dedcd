package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svparse/svparse/lexer"
)

func TestScanNumber(t *testing.T) {
	tests := []struct {
		text     string
		kind     lexer.NumberKind
		expected string
	}{
		{"42;", lexer.Integral, "42"},
		{"1_000 ", lexer.Integral, "1_000"},
		{"8'hFF;", lexer.Integral, "8'hFF"},
		{"4'b10x?", lexer.Integral, "4'b10x?"},
		{"'sd12", lexer.Integral, "'sd12"},
		{"16 'h ffff", lexer.Integral, "16 'h ffff"},
		{"3.14)", lexer.Real, "3.14"},
		{"1e-9", lexer.Real, "1e-9"},
		{"10ns;", lexer.Time, "10ns"},
		{"1.5us", lexer.Time, "1.5us"},
		{"'1;", lexer.UnbasedUnsized, "'1"},
		{"'z", lexer.UnbasedUnsized, "'z"},
		{"x", lexer.NotNumber, ""},
		{"'{", lexer.NotNumber, ""},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			kind, n := lexer.ScanNumber(test.text, 0)
			require.Equal(t, test.kind, kind)
			require.Equal(t, test.expected, test.text[:n])
		})
	}
}

func TestScanIdentifiers(t *testing.T) {
	require.Equal(t, 5, lexer.ScanSimpleIdentifier("count = 1", 0))
	require.Equal(t, 4, lexer.ScanSimpleIdentifier("a$_9+", 0))
	require.Equal(t, 0, lexer.ScanSimpleIdentifier("begin", 0), "keywords are not identifiers")
	require.Equal(t, 5, lexer.ScanSimpleIdentifierText("begin", 0))
	require.Equal(t, 0, lexer.ScanSimpleIdentifier("9lives", 0))
	require.Equal(t, 6, lexer.ScanEscapedIdentifier(`\a+b-c d`, 0))
	require.Equal(t, 0, lexer.ScanEscapedIdentifier(`\ x`, 0))
	require.Equal(t, 8, lexer.ScanSystemIdentifier("$display(", 0))
	require.Equal(t, 0, lexer.ScanSystemIdentifier("$ ", 0))
	require.True(t, lexer.IsKeyword("endmodule"))
	require.False(t, lexer.IsKeyword("counter"))
}

func TestScanString(t *testing.T) {
	require.Equal(t, 6, lexer.ScanString(`"a\"b" c`, 0))
	require.Equal(t, 0, lexer.ScanString("\"abc\ndef\"", 0))
	require.Equal(t, 0, lexer.ScanString(`"unterminated`, 0))
}

func TestScanPunct(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"<<<= 1", "<<<="},
		{"<= b", "<="},
		{"< b", "<"},
		{"->x", "->"},
		{"-> x", "->"},
		{"'{a}", "'{"},
		{":/ 2", ":/"},
		{"+: 4", "+:"},
		{"a", ""},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, test.text[:lexer.ScanPunct(test.text, 0)], test.text)
	}
	require.True(t, lexer.IsWordLike("module"))
	require.True(t, lexer.IsWordLike("$root"))
	require.False(t, lexer.IsWordLike("::"))
}
