package sqlparser

import (
	"fmt"
	"strings"
)

// Tokenize splits a SQL statement into tokens. Whitespace separates tokens
// and is otherwise discarded.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isIdentStart(c):
			start := i
			for i < len(input) && isIdentPart(input[i]) {
				i++
			}
			text := input[start:i]
			if upper := strings.ToUpper(text); keywords[upper] {
				tokens = append(tokens, Token{Kind: TokenKeyword, Text: upper, Pos: start})
			} else {
				tokens = append(tokens, Token{Kind: TokenIdent, Text: text, Pos: start})
			}

		case isDigit(c) || (c == '-' && i+1 < len(input) && isDigit(input[i+1])):
			start := i
			if c == '-' {
				i++
			}
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			if i < len(input) && input[i] == '.' {
				i++
				for i < len(input) && isDigit(input[i]) {
					i++
				}
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: input[start:i], Pos: start})

		case c == '\'':
			start := i
			i++
			var b strings.Builder
			for {
				if i >= len(input) {
					return nil, LexError{Pos: start, Char: '\'', Msg: "unterminated string literal"}
				}
				if input[i] == '\'' {
					if i+1 < len(input) && input[i+1] == '\'' {
						// '' is an escaped quote
						b.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				b.WriteByte(input[i])
				i++
			}
			tokens = append(tokens, Token{Kind: TokenString, Text: b.String(), Pos: start})

		case c == '<' || c == '>' || c == '!' || c == '=':
			start := i
			text := string(c)
			if i+1 < len(input) {
				two := input[i : i+2]
				if two == ">=" || two == "<=" || two == "<>" || two == "!=" {
					text = two
				}
			}
			if text == "!" {
				return nil, LexError{Pos: start, Char: c, Msg: fmt.Sprintf("unexpected character %q", c)}
			}
			i += len(text)
			tokens = append(tokens, Token{Kind: TokenOperator, Text: text, Pos: start})

		case c == ',' || c == '(' || c == ')' || c == ';' || c == '*':
			tokens = append(tokens, Token{Kind: TokenPunct, Text: string(c), Pos: i})
			i++

		default:
			return nil, LexError{Pos: i, Char: c, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return tokens, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
