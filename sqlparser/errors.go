package sqlparser

import "fmt"

// LexError reports an unrecognized character or an unterminated string
// literal at a byte offset in the input.
type LexError struct {
	Pos  int
	Char byte
	Msg  string
}

func (e LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}

// ParseError reports an unexpected token. Found is the offending token
// text, or "end of input".
type ParseError struct {
	Expected string
	Found    string
	Pos      int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}
