package sqlparser

import (
	"errors"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []Token
	}{
		{
			"keywords are case-insensitive",
			"select FROM WhErE",
			[]Token{
				{TokenKeyword, "SELECT", 0},
				{TokenKeyword, "FROM", 7},
				{TokenKeyword, "WHERE", 12},
			},
		},
		{
			"identifiers keep their spelling",
			"user_Name _id x2",
			[]Token{
				{TokenIdent, "user_Name", 0},
				{TokenIdent, "_id", 10},
				{TokenIdent, "x2", 14},
			},
		},
		{
			"string literal with escaped quote",
			"'O''Brien'",
			[]Token{{TokenString, "O'Brien", 0}},
		},
		{
			"numbers",
			"42 3.14 -7 -0.5",
			[]Token{
				{TokenNumber, "42", 0},
				{TokenNumber, "3.14", 3},
				{TokenNumber, "-7", 8},
				{TokenNumber, "-0.5", 11},
			},
		},
		{
			"operators",
			"= != <> > >= < <=",
			[]Token{
				{TokenOperator, "=", 0},
				{TokenOperator, "!=", 2},
				{TokenOperator, "<>", 5},
				{TokenOperator, ">", 8},
				{TokenOperator, ">=", 10},
				{TokenOperator, "<", 13},
				{TokenOperator, "<=", 15},
			},
		},
		{
			"punctuation",
			"(, );*",
			[]Token{
				{TokenPunct, "(", 0},
				{TokenPunct, ",", 1},
				{TokenPunct, ")", 3},
				{TokenPunct, ";", 4},
				{TokenPunct, "*", 5},
			},
		},
		{
			"whitespace produces no tokens",
			"  \t\r\n  ",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(tokens, tt.tokens) {
				t.Errorf("Tokenize(%q):\n%#v\nwant:\n%#v", tt.input, tokens, tt.tokens)
			}
		})
	}
}

func TestTokenize_errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"unrecognized character", "a @ b", 2},
		{"lone exclamation mark", "a ! b", 2},
		{"unterminated string", "name = 'Alice", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			var lexErr LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize(%q) error = %v, want LexError", tt.input, err)
			}
			if lexErr.Pos != tt.pos {
				t.Errorf("Tokenize(%q) error position = %d, want %d", tt.input, lexErr.Pos, tt.pos)
			}
		})
	}
}
