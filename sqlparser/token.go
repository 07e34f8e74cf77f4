package sqlparser

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenKeyword TokenKind = iota
	TokenIdent
	TokenString
	TokenNumber
	TokenOperator
	TokenPunct
)

// Token is one lexical unit of a SQL statement. Pos is the byte offset of
// the token's first character in the input.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// keywords are matched case-insensitively; keyword tokens carry the
// uppercase spelling in Text.
var keywords = map[string]bool{
	"SELECT": true,
	"FROM":   true,
	"WHERE":  true,
	"AND":    true,
	"OR":     true,
	"ORDER":  true,
	"BY":     true,
	"ASC":    true,
	"DESC":   true,
	"LIMIT":  true,
	"OFFSET": true,
	"IN":     true,
	"NOT":    true,
	"LIKE":   true,
	"NULL":   true,
	"TRUE":   true,
	"FALSE":  true,
}
