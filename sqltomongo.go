// Package sqltomongo translates between single-table SQL SELECT statements
// and MongoDB-style query objects, in both directions.
package sqltomongo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/querybridge/sqltomongo/filter"
	"github.com/querybridge/sqltomongo/query"
	"github.com/querybridge/sqltomongo/sqlparser"
)

// ErrNoCollection is returned by MongoToSQL when the query object names no
// collection and no default collection is configured.
var ErrNoCollection = errors.New("query object has no collection; set one or use WithDefaultCollection")

// InvalidSortDirectionError is returned when a sort direction is not 1 or -1.
type InvalidSortDirectionError struct {
	Field string
	Value int
}

func (e InvalidSortDirectionError) Error() string {
	return fmt.Sprintf("invalid sort direction for field %s: %d (must be 1 or -1)", e.Field, e.Value)
}

// MongoQuery is the external query-object representation: a collection
// name, a filter document, an inclusion projection, and sort/limit/skip.
type MongoQuery struct {
	Collection string         `json:"collection"`
	Find       map[string]any `json:"find"`
	Projection map[string]int `json:"projection,omitempty"`
	Sort       []SortPair     `json:"sort,omitempty"`
	Limit      *int64         `json:"limit,omitempty"`
	Skip       *int64         `json:"skip,omitempty"`
}

// Translator converts in both directions. The zero value is usable; use
// NewTranslator to set options.
type Translator struct {
	defaultCollection string
	omitSemicolon     bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultCollection sets the collection name MongoToSQL falls back to
// when the query object has none.
func WithDefaultCollection(name string) Option {
	return func(t *Translator) {
		t.defaultCollection = name
	}
}

// WithoutSemicolon omits the trailing ";" from generated SQL, for embedding
// the statement in a larger one.
func WithoutSemicolon() Option {
	return func(t *Translator) {
		t.omitSemicolon = true
	}
}

// NewTranslator creates a new Translator with the given options.
func NewTranslator(options ...Option) *Translator {
	translator := &Translator{}
	for _, option := range options {
		if option != nil {
			option(translator)
		}
	}
	return translator
}

// SQLToMongo parses a SQL SELECT statement and compiles its WHERE clause
// into a filter document. The projection map contains each selected column
// with value 1 and is nil for "SELECT *".
func (t *Translator) SQLToMongo(sql string) (*MongoQuery, error) {
	q, err := sqlparser.Parse(sql)
	if err != nil {
		return nil, err
	}

	m := &MongoQuery{
		Collection: q.Collection,
		Find:       filter.Compile(q.Filter),
		Limit:      q.Limit,
		Skip:       q.Skip,
	}

	if q.Projection != nil {
		m.Projection = make(map[string]int, len(q.Projection))
		for _, col := range q.Projection {
			m.Projection[col] = 1
		}
	}

	for _, key := range q.Sort {
		direction := 1
		if key.Desc {
			direction = -1
		}
		m.Sort = append(m.Sort, SortPair{Field: key.Field, Direction: direction})
	}

	return m, nil
}

// MongoToSQL decompiles a query object back into a canonical SQL SELECT
// statement. When the projection is absent the column list is derived from
// the fields the filter references; with no filter either, "*" is emitted.
func (t *Translator) MongoToSQL(m *MongoQuery) (string, error) {
	collection := m.Collection
	if collection == "" {
		collection = t.defaultCollection
	}
	if collection == "" {
		return "", ErrNoCollection
	}
	if !query.ValidIdentifier(collection) {
		return "", fmt.Errorf("invalid collection name: %q", collection)
	}

	expr, err := filter.Decompile(m.Find)
	if err != nil {
		return "", err
	}

	q := &query.Query{
		Collection: collection,
		Filter:     expr,
	}

	switch {
	case len(m.Projection) > 0:
		for _, field := range sortedProjection(m.Projection) {
			if !query.ValidIdentifier(field) {
				return "", fmt.Errorf("invalid projection field: %q", field)
			}
			if m.Projection[field] == 1 {
				q.Projection = append(q.Projection, field)
			}
		}
	case expr != nil:
		q.Projection = query.Fields(expr)
	}

	for _, pair := range m.Sort {
		if !query.ValidIdentifier(pair.Field) {
			return "", fmt.Errorf("invalid sort field: %q", pair.Field)
		}
		if pair.Direction != 1 && pair.Direction != -1 {
			return "", InvalidSortDirectionError{Field: pair.Field, Value: pair.Direction}
		}
		q.Sort = append(q.Sort, query.SortKey{Field: pair.Field, Desc: pair.Direction == -1})
	}

	if m.Limit != nil {
		if *m.Limit < 0 {
			return "", fmt.Errorf("negative limit: %d", *m.Limit)
		}
		q.Limit = m.Limit
	}
	if m.Skip != nil {
		if *m.Skip < 0 {
			return "", fmt.Errorf("negative skip: %d", *m.Skip)
		}
		q.Skip = m.Skip
	}

	sql := sqlparser.Render(q)
	if t.omitSemicolon {
		sql = strings.TrimSuffix(sql, ";")
	}
	return sql, nil
}

var defaultTranslator = NewTranslator()

// SQLToMongo converts with a default Translator.
func SQLToMongo(sql string) (*MongoQuery, error) {
	return defaultTranslator.SQLToMongo(sql)
}

// MongoToSQL converts with a default Translator.
func MongoToSQL(m *MongoQuery) (string, error) {
	return defaultTranslator.MongoToSQL(m)
}
