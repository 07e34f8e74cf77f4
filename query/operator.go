package query

// Operator identifies a comparison between a field and a value.
type Operator int

const (
	EQ Operator = iota
	NE
	GT
	GTE
	LT
	LTE
	IN
	NIN
	Regex
)

// Each operator has exactly one filter-document key and one SQL spelling.
// The compiler, decompiler, parser and renderer all read this table, so the
// two translation directions cannot drift apart.
var operatorTable = map[Operator]struct {
	key string
	sql string
}{
	EQ:    {"$eq", "="},
	NE:    {"$ne", "<>"},
	GT:    {"$gt", ">"},
	GTE:   {"$gte", ">="},
	LT:    {"$lt", "<"},
	LTE:   {"$lte", "<="},
	IN:    {"$in", "IN"},
	NIN:   {"$nin", "NOT IN"},
	Regex: {"$regex", "LIKE"},
}

var operatorsByKey = func() map[string]Operator {
	m := make(map[string]Operator, len(operatorTable))
	for op, info := range operatorTable {
		m[info.key] = op
	}
	return m
}()

// Key returns the filter-document key for op, e.g. "$gte".
func (op Operator) Key() string {
	return operatorTable[op].key
}

// SQL returns the SQL spelling for op, e.g. ">=".
func (op Operator) SQL() string {
	return operatorTable[op].sql
}

func (op Operator) String() string {
	return operatorTable[op].key
}

// OperatorForKey looks up the operator for a filter-document key.
func OperatorForKey(key string) (Operator, bool) {
	op, ok := operatorsByKey[key]
	return op, ok
}
