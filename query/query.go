// Package query holds the intermediate representation shared by the SQL
// parser/renderer and the filter-document compiler/decompiler: typed
// literal values, the operator table, the boolean expression tree, and
// the parsed SELECT query itself.
package query

// SortKey is one ORDER BY entry.
type SortKey struct {
	Field string
	Desc  bool
}

// ValidIdentifier reports whether s is a plain SQL identifier: an ASCII
// letter or underscore followed by letters, digits or underscores.
// Collection and field names coming from untrusted query objects end up
// verbatim in rendered statements, so anything else is rejected.
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// Query is a parsed single-table SELECT. It is built fresh per conversion
// call and never mutated afterwards.
type Query struct {
	Collection string
	Projection []string // nil means all columns
	Filter     Expr     // nil means no WHERE clause
	Sort       []SortKey
	Limit      *int64
	Skip       *int64
}
