package sqlparser

import (
	"strconv"
	"strings"

	"github.com/querybridge/sqltomongo/query"
)

var comparisonOps = map[string]query.Operator{
	"=":  query.EQ,
	"!=": query.NE,
	"<>": query.NE,
	">":  query.GT,
	">=": query.GTE,
	"<":  query.LT,
	"<=": query.LTE,
}

// Parse lexes and parses a single-table SELECT statement.
//
// Grammar, precedence low to high:
//
//	select  := SELECT ('*' | col (',' col)*) FROM table
//	           (WHERE orExpr)? (ORDER BY sortItem (',' sortItem)*)?
//	           (LIMIT int)? (OFFSET int)? ';'?
//	orExpr  := andExpr (OR andExpr)*
//	andExpr := primary (AND primary)*
//	primary := '(' orExpr ')' | comparison
//
// AND binds tighter than OR, so "a = 1 OR b = 2 AND c = 3" groups as
// "a = 1 OR (b = 2 AND c = 3)".
func Parse(sql string) (*query.Query, error) {
	tokens, err := Tokenize(sql)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, end: len(sql)}
	q, err := p.parseSelect()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, ParseError{Expected: "end of statement", Found: tok.Text, Pos: tok.Pos}
	}
	return q, nil
}

type parser struct {
	tokens []Token
	pos    int
	end    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) matchKeyword(kw string) bool {
	if tok, ok := p.peek(); ok && tok.Kind == TokenKeyword && tok.Text == kw {
		p.pos++
		return true
	}
	return false
}

func (p *parser) matchPunct(text string) bool {
	if tok, ok := p.peek(); ok && tok.Kind == TokenPunct && tok.Text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errHere(expected string) ParseError {
	if tok, ok := p.peek(); ok {
		return ParseError{Expected: expected, Found: tok.Text, Pos: tok.Pos}
	}
	return ParseError{Expected: expected, Found: "end of input", Pos: p.end}
}

func (p *parser) expectKeyword(kw string) error {
	if !p.matchKeyword(kw) {
		return p.errHere(kw)
	}
	return nil
}

func (p *parser) expectPunct(text string) error {
	if !p.matchPunct(text) {
		return p.errHere("'" + text + "'")
	}
	return nil
}

func (p *parser) expectIdent(expected string) (string, error) {
	if tok, ok := p.peek(); ok && tok.Kind == TokenIdent {
		p.pos++
		return tok.Text, nil
	}
	return "", p.errHere(expected)
}

func (p *parser) parseSelect() (*query.Query, error) {
	if err := p.expectKeyword("SELECT"); err != nil {
		return nil, err
	}

	q := &query.Query{}
	if !p.matchPunct("*") {
		for {
			col, err := p.expectIdent("column name")
			if err != nil {
				return nil, err
			}
			q.Projection = append(q.Projection, col)
			if !p.matchPunct(",") {
				break
			}
		}
	}

	if err := p.expectKeyword("FROM"); err != nil {
		return nil, err
	}
	table, err := p.expectIdent("table name")
	if err != nil {
		return nil, err
	}
	q.Collection = table

	if p.matchKeyword("WHERE") {
		filter, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		q.Filter = filter
	}

	if p.matchKeyword("ORDER") {
		if err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		for {
			field, err := p.expectIdent("sort column")
			if err != nil {
				return nil, err
			}
			key := query.SortKey{Field: field}
			if p.matchKeyword("DESC") {
				key.Desc = true
			} else {
				p.matchKeyword("ASC") // ASC is the default
			}
			q.Sort = append(q.Sort, key)
			if !p.matchPunct(",") {
				break
			}
		}
	}

	if p.matchKeyword("LIMIT") {
		n, err := p.parseNonNegativeInt("limit count")
		if err != nil {
			return nil, err
		}
		q.Limit = &n
	}

	if p.matchKeyword("OFFSET") {
		n, err := p.parseNonNegativeInt("offset count")
		if err != nil {
			return nil, err
		}
		q.Skip = &n
	}

	p.matchPunct(";")
	return q, nil
}

func (p *parser) parseNonNegativeInt(expected string) (int64, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenNumber || strings.Contains(tok.Text, ".") {
		return 0, p.errHere(expected)
	}
	n, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil || n < 0 {
		return 0, p.errHere(expected)
	}
	p.pos++
	return n, nil
}

func (p *parser) parseOr() (query.Expr, error) {
	parts := []query.Expr{}
	for {
		part, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if !p.matchKeyword("OR") {
			break
		}
	}
	return query.NewOr(parts...), nil
}

func (p *parser) parseAnd() (query.Expr, error) {
	parts := []query.Expr{}
	for {
		part, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if !p.matchKeyword("AND") {
			break
		}
	}
	return query.NewAnd(parts...), nil
}

func (p *parser) parsePrimary() (query.Expr, error) {
	if p.matchPunct("(") {
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return e, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (query.Expr, error) {
	field, err := p.expectIdent("column name")
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok {
		return nil, p.errHere("comparison operator")
	}

	switch {
	case tok.Kind == TokenOperator:
		op, known := comparisonOps[tok.Text]
		if !known {
			return nil, p.errHere("comparison operator")
		}
		p.pos++
		v, err := p.parseScalarValue()
		if err != nil {
			return nil, err
		}
		return query.Comparison{Field: field, Op: op, Value: v}, nil

	case tok.Kind == TokenKeyword && tok.Text == "IN":
		p.pos++
		list, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		return query.Comparison{Field: field, Op: query.IN, Value: list}, nil

	case tok.Kind == TokenKeyword && tok.Text == "NOT":
		p.pos++
		if err := p.expectKeyword("IN"); err != nil {
			return nil, err
		}
		list, err := p.parseValueList()
		if err != nil {
			return nil, err
		}
		return query.Comparison{Field: field, Op: query.NIN, Value: list}, nil

	case tok.Kind == TokenKeyword && tok.Text == "LIKE":
		p.pos++
		v, err := p.parseScalarValue()
		if err != nil {
			return nil, err
		}
		if v.Kind != query.KindString {
			return nil, ParseError{Expected: "string literal", Found: v.SQL(), Pos: tok.Pos}
		}
		return query.Comparison{Field: field, Op: query.Regex, Value: v}, nil
	}

	return nil, p.errHere("comparison operator")
}

func (p *parser) parseScalarValue() (query.Value, error) {
	tok, ok := p.peek()
	if !ok {
		return query.Value{}, p.errHere("literal value")
	}
	switch {
	case tok.Kind == TokenString:
		p.pos++
		return query.String(tok.Text), nil
	case tok.Kind == TokenNumber:
		p.pos++
		if strings.Contains(tok.Text, ".") {
			f, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return query.Value{}, ParseError{Expected: "number", Found: tok.Text, Pos: tok.Pos}
			}
			return query.Float(f), nil
		}
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			// Integer literals beyond int64 range degrade to float,
			// matching what a JSON decoder would have produced.
			f, ferr := strconv.ParseFloat(tok.Text, 64)
			if ferr != nil {
				return query.Value{}, ParseError{Expected: "number", Found: tok.Text, Pos: tok.Pos}
			}
			return query.Float(f), nil
		}
		return query.Int(n), nil
	case tok.Kind == TokenKeyword && tok.Text == "NULL":
		p.pos++
		return query.Null(), nil
	case tok.Kind == TokenKeyword && tok.Text == "TRUE":
		p.pos++
		return query.Bool(true), nil
	case tok.Kind == TokenKeyword && tok.Text == "FALSE":
		p.pos++
		return query.Bool(false), nil
	}
	return query.Value{}, p.errHere("literal value")
}

func (p *parser) parseValueList() (query.Value, error) {
	if err := p.expectPunct("("); err != nil {
		return query.Value{}, err
	}
	var elems []query.Value
	for {
		v, err := p.parseScalarValue()
		if err != nil {
			return query.Value{}, err
		}
		elems = append(elems, v)
		if !p.matchPunct(",") {
			break
		}
	}
	if err := p.expectPunct(")"); err != nil {
		return query.Value{}, err
	}
	return query.List(elems...), nil
}
