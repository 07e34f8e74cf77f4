package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/querybridge/sqltomongo/query"
)

// Decompile reconstructs an expression tree from a filter document. An
// empty document yields a nil expression (no WHERE clause).
//
// Map iteration order carries no meaning, so keys are walked in sorted
// order; the output is the same canonical flattening Compile produces,
// which makes Compile(Decompile(doc)) idempotent on canonical documents.
func Decompile(doc map[string]any) (query.Expr, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	return decompileDoc(doc)
}

func decompileDoc(doc map[string]any) (query.Expr, error) {
	if len(doc) == 0 {
		return nil, Error{Key: "", Reason: "empty document"}
	}

	var parts []query.Expr
	for _, key := range sortedKeys(doc) {
		value := doc[key]
		switch {
		case key == "$and":
			children, err := decompileBranch(key, value)
			if err != nil {
				return nil, err
			}
			parts = append(parts, query.NewAnd(children...))

		case key == "$or":
			children, err := decompileBranch(key, value)
			if err != nil {
				return nil, err
			}
			parts = append(parts, query.NewOr(children...))

		case strings.HasPrefix(key, "$"):
			return nil, Error{Key: key, Reason: "unknown operator"}

		default:
			if !query.ValidIdentifier(key) {
				return nil, Error{Key: key, Reason: "invalid field name"}
			}
			cmps, err := decompileField(key, value)
			if err != nil {
				return nil, err
			}
			for _, cmp := range cmps {
				parts = append(parts, cmp)
			}
		}
	}
	return query.NewAnd(parts...), nil
}

// decompileBranch handles a $and/$or value: an array of nested documents.
func decompileBranch(key string, value any) ([]query.Expr, error) {
	docs, ok := anyToSliceMapAny(value)
	if !ok {
		return nil, Error{Key: key, Reason: "requires an array of documents"}
	}
	if len(docs) == 0 {
		return nil, Error{Key: key, Reason: "requires at least one document"}
	}
	children := make([]query.Expr, len(docs))
	for i, doc := range docs {
		child, err := decompileDoc(doc)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return children, nil
}

// decompileField handles one field key. An operator sub-document becomes
// one comparison per entry, a bare scalar is implicit equality, and a bare
// array is implicit IN.
func decompileField(field string, value any) ([]query.Comparison, error) {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 {
			return nil, Error{Key: field, Reason: "empty operator document"}
		}
		cmps := make([]query.Comparison, 0, len(v))
		for _, opKey := range sortedKeys(v) {
			cmp, err := decompileOperator(field, opKey, v[opKey])
			if err != nil {
				return nil, err
			}
			cmps = append(cmps, cmp)
		}
		return cmps, nil

	case []any:
		if len(v) == 0 {
			return nil, Error{Key: field, Reason: "requires at least one element"}
		}
		val, ok := query.FromNative(v)
		if !ok {
			return nil, Error{Key: field, Reason: "array elements must be scalars"}
		}
		return []query.Comparison{{Field: field, Op: query.IN, Value: val}}, nil

	default:
		if !isScalar(value) {
			return nil, Error{Key: field, Reason: fmt.Sprintf("unsupported value of type %T", value)}
		}
		val, _ := query.FromNative(value)
		return []query.Comparison{{Field: field, Op: query.EQ, Value: val}}, nil
	}
}

func decompileOperator(field, opKey string, operand any) (query.Comparison, error) {
	op, known := query.OperatorForKey(opKey)
	if !known {
		return query.Comparison{}, Error{Key: opKey, Reason: "unknown operator"}
	}

	switch op {
	case query.IN, query.NIN:
		list, ok := operand.([]any)
		if !ok {
			return query.Comparison{}, Error{Key: field, Reason: opKey + " requires an array of scalars"}
		}
		if len(list) == 0 {
			return query.Comparison{}, Error{Key: field, Reason: opKey + " requires at least one element"}
		}
		val, ok := query.FromNative(list)
		if !ok {
			return query.Comparison{}, Error{Key: field, Reason: opKey + " requires an array of scalars"}
		}
		return query.Comparison{Field: field, Op: op, Value: val}, nil

	case query.Regex:
		s, ok := operand.(string)
		if !ok {
			return query.Comparison{}, Error{Key: field, Reason: "$regex requires a string"}
		}
		return query.Comparison{Field: field, Op: op, Value: query.String(s)}, nil

	default:
		if !isScalar(operand) {
			return query.Comparison{}, Error{Key: field, Reason: opKey + " requires a scalar"}
		}
		val, _ := query.FromNative(operand)
		return query.Comparison{Field: field, Op: op, Value: val}, nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
