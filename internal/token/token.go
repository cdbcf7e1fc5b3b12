// Package token describes the source positions carried by syntax tree nodes.
package token

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	IDENT   TokenType = "IDENT"
	NUMBER  TokenType = "NUMBER"
	STRING  TokenType = "STRING"
	KEYWORD TokenType = "KEYWORD"
	PUNCT   TokenType = "PUNCT"

	// SYNTHETIC marks tokens of nodes created by a transformation.
	SYNTHETIC TokenType = "SYNTHETIC"
)

// Token is the primary token of a node. Line and Column are 1-based;
// a zero Line means the node has no source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// Synthetic returns a position-less token for a generated node.
func Synthetic(lexeme string) Token {
	return Token{Type: SYNTHETIC, Lexeme: lexeme}
}

// HasPosition reports whether the token points into a source file.
func (t Token) HasPosition() bool {
	return t.Line > 0
}
