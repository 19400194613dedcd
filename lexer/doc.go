// Package lexer provides the character-level layer used by svparse: source buffers with line and
// origin tables, positions and spans, trivia scanning, and the leaf recognisers (identifiers,
// numbers, strings, punctuation) that the grammar engine composes into symbols.
//
// Nothing in this package allocates copies of the source text. Every recogniser takes the text
// and a byte offset and returns the length of its match, or 0 when nothing matched.
package lexer
