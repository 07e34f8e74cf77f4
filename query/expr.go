package query

// Expr is a boolean filter expression: a comparison leaf or a logical
// combination of sub-expressions. Trees own their children exclusively;
// there is no sharing between nodes.
type Expr interface {
	isExpr()
}

// Comparison is a single field-operator-value condition.
// IN and NOT IN require a list value, LIKE requires a string value.
type Comparison struct {
	Field string
	Op    Operator
	Value Value
}

// And is the conjunction of its children, in order.
type And struct {
	Children []Expr
}

// Or is the disjunction of its children, in order.
type Or struct {
	Children []Expr
}

func (Comparison) isExpr() {}
func (And) isExpr()        {}
func (Or) isExpr()         {}

// NewAnd combines the given expressions into a canonical conjunction:
// a single child is returned as-is and nested And children are spliced
// into the parent, so runs of AND terms stay flat.
func NewAnd(children ...Expr) Expr {
	flat := make([]Expr, 0, len(children))
	for _, child := range children {
		if and, ok := child.(And); ok {
			flat = append(flat, and.Children...)
		} else {
			flat = append(flat, child)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return And{Children: flat}
}

// NewOr is the Or counterpart of NewAnd.
func NewOr(children ...Expr) Expr {
	flat := make([]Expr, 0, len(children))
	for _, child := range children {
		if or, ok := child.(Or); ok {
			flat = append(flat, or.Children...)
		} else {
			flat = append(flat, child)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Or{Children: flat}
}

// Fields returns the field names referenced by the expression, in
// first-appearance order, without duplicates.
func Fields(e Expr) []string {
	var fields []string
	seen := map[string]bool{}
	var walk func(Expr)
	walk = func(e Expr) {
		switch v := e.(type) {
		case Comparison:
			if !seen[v.Field] {
				seen[v.Field] = true
				fields = append(fields, v.Field)
			}
		case And:
			for _, child := range v.Children {
				walk(child)
			}
		case Or:
			for _, child := range v.Children {
				walk(child)
			}
		}
	}
	if e != nil {
		walk(e)
	}
	return fields
}
