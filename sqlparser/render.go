package sqlparser

import (
	"strconv"
	"strings"

	"github.com/querybridge/sqltomongo/query"
)

// Render serializes a query back into a canonical SQL SELECT statement.
// Every child of a logical node is parenthesized so that the grouping
// survives a re-parse under the parser's precedence rules.
func Render(q *query.Query) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(q.Projection) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(q.Projection, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(q.Collection)

	if q.Filter != nil {
		b.WriteString(" WHERE ")
		renderExpr(&b, q.Filter)
	}

	if len(q.Sort) > 0 {
		b.WriteString(" ORDER BY ")
		for i, key := range q.Sort {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(key.Field)
			if key.Desc {
				b.WriteString(" DESC")
			} else {
				b.WriteString(" ASC")
			}
		}
	}

	if q.Limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.FormatInt(*q.Limit, 10))
	}
	if q.Skip != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.FormatInt(*q.Skip, 10))
	}

	b.WriteString(";")
	return b.String()
}

func renderExpr(b *strings.Builder, e query.Expr) {
	switch v := e.(type) {
	case query.Comparison:
		b.WriteString(v.Field)
		b.WriteString(" ")
		b.WriteString(v.Op.SQL())
		b.WriteString(" ")
		b.WriteString(v.Value.SQL())
	case query.And:
		renderLogical(b, v.Children, " AND ")
	case query.Or:
		renderLogical(b, v.Children, " OR ")
	}
}

func renderLogical(b *strings.Builder, children []query.Expr, sep string) {
	// A single-child logical node is equivalent to its child.
	if len(children) == 1 {
		renderExpr(b, children[0])
		return
	}
	for i, child := range children {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString("(")
		renderExpr(b, child)
		b.WriteString(")")
	}
}
