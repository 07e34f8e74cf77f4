package filter

import "github.com/querybridge/sqltomongo/query"

// Compile walks an expression tree and emits the equivalent filter
// document. A nil expression (no WHERE clause) compiles to an empty
// document.
//
// An And whose children are comparisons on distinct fields merges into one
// flat document, the implicit-AND shorthand; an EQ comparison emits a bare
// scalar, the implicit-equality shorthand. Comparisons on the same field
// share one operator sub-document so that no key overwrites another.
func Compile(e query.Expr) map[string]any {
	if e == nil {
		return map[string]any{}
	}
	switch v := e.(type) {
	case query.Comparison:
		return compileComparison(v)
	case query.And:
		if doc, ok := mergeLeaves(v.Children); ok {
			return doc
		}
		return map[string]any{"$and": compileChildren(v.Children)}
	case query.Or:
		// There is no implicit-OR shorthand.
		return map[string]any{"$or": compileChildren(v.Children)}
	}
	return map[string]any{}
}

func compileComparison(c query.Comparison) map[string]any {
	if c.Op == query.EQ {
		return map[string]any{c.Field: c.Value.Native()}
	}
	return map[string]any{c.Field: map[string]any{c.Op.Key(): c.Value.Native()}}
}

func compileChildren(children []query.Expr) []any {
	docs := make([]any, len(children))
	for i, child := range children {
		docs[i] = Compile(child)
	}
	return docs
}

// mergeLeaves flattens an all-comparison conjunction into a single
// document. It reports false when the children are not all comparisons or
// when two comparisons on one field share an operator, in which case the
// caller falls back to an explicit $and array.
func mergeLeaves(children []query.Expr) (map[string]any, bool) {
	grouped := map[string][]query.Comparison{}
	for _, child := range children {
		cmp, ok := child.(query.Comparison)
		if !ok {
			return nil, false
		}
		grouped[cmp.Field] = append(grouped[cmp.Field], cmp)
	}

	doc := make(map[string]any, len(grouped))
	for field, cmps := range grouped {
		if len(cmps) == 1 && cmps[0].Op == query.EQ {
			doc[field] = cmps[0].Value.Native()
			continue
		}
		ops := make(map[string]any, len(cmps))
		for _, cmp := range cmps {
			key := cmp.Op.Key()
			if _, dup := ops[key]; dup {
				return nil, false
			}
			ops[key] = cmp.Value.Native()
		}
		doc[field] = ops
	}
	return doc, true
}
