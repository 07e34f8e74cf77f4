package sqltomongo_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/querybridge/sqltomongo"
	"github.com/querybridge/sqltomongo/filter"
	"github.com/querybridge/sqltomongo/sqlparser"
)

func int64p(n int64) *int64 { return &n }

func TestSQLToMongo(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want *sqltomongo.MongoQuery
	}{
		{
			"projection and where",
			"SELECT name, age FROM users WHERE age > 30 AND name = 'Alice';",
			&sqltomongo.MongoQuery{
				Collection: "users",
				Find: map[string]any{
					"age":  map[string]any{"$gt": int64(30)},
					"name": "Alice",
				},
				Projection: map[string]int{"name": 1, "age": 1},
			},
		},
		{
			"select star has no projection",
			"SELECT * FROM users",
			&sqltomongo.MongoQuery{
				Collection: "users",
				Find:       map[string]any{},
			},
		},
		{
			"and binds tighter than or",
			"SELECT * FROM t WHERE a = 1 OR b = 2 AND c = 3",
			&sqltomongo.MongoQuery{
				Collection: "t",
				Find: map[string]any{
					"$or": []any{
						map[string]any{"a": int64(1)},
						map[string]any{"b": int64(2), "c": int64(3)},
					},
				},
			},
		},
		{
			"same-field range stays in one sub-document",
			"SELECT * FROM t WHERE age > 10 AND age < 20",
			&sqltomongo.MongoQuery{
				Collection: "t",
				Find: map[string]any{
					"age": map[string]any{"$gt": int64(10), "$lt": int64(20)},
				},
			},
		},
		{
			"in, sort, limit and offset",
			"SELECT * FROM t WHERE tags IN ('dev', 'qa') ORDER BY age, name DESC LIMIT 10 OFFSET 5",
			&sqltomongo.MongoQuery{
				Collection: "t",
				Find: map[string]any{
					"tags": map[string]any{"$in": []any{"dev", "qa"}},
				},
				Sort:  []sqltomongo.SortPair{{Field: "age", Direction: 1}, {Field: "name", Direction: -1}},
				Limit: int64p(10),
				Skip:  int64p(5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sqltomongo.SQLToMongo(tt.sql)
			if err != nil {
				t.Fatalf("SQLToMongo(%q) error = %v", tt.sql, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SQLToMongo(%q):\n%#v\nwant:\n%#v", tt.sql, got, tt.want)
			}
		})
	}
}

func TestMongoToSQL(t *testing.T) {
	tests := []struct {
		name  string
		query *sqltomongo.MongoQuery
		sql   string
	}{
		{
			"explicit projection",
			&sqltomongo.MongoQuery{
				Collection: "users",
				Find:       map[string]any{"age": map[string]any{"$gte": 25}, "status": "ACTIVE"},
				Projection: map[string]int{"age": 1, "status": 1},
			},
			"SELECT age, status FROM users WHERE (age >= 25) AND (status = 'ACTIVE');",
		},
		{
			"derived projection with nested or",
			&sqltomongo.MongoQuery{
				Collection: "users",
				Find: map[string]any{
					"$or": []any{
						map[string]any{"age": map[string]any{"$gte": 25}},
						map[string]any{"status": "ACTIVE"},
					},
					"tags": map[string]any{"$in": []any{"dev", "qa"}},
				},
				Sort:  []sqltomongo.SortPair{{Field: "age", Direction: 1}, {Field: "name", Direction: -1}},
				Limit: int64p(10),
				Skip:  int64p(5),
			},
			"SELECT age, status, tags FROM users WHERE ((age >= 25) OR (status = 'ACTIVE')) AND (tags IN ('dev', 'qa')) ORDER BY age ASC, name DESC LIMIT 10 OFFSET 5;",
		},
		{
			"no filter selects star",
			&sqltomongo.MongoQuery{Collection: "users"},
			"SELECT * FROM users;",
		},
		{
			"zero-valued projection entries are excluded",
			&sqltomongo.MongoQuery{
				Collection: "users",
				Projection: map[string]int{"name": 1, "secret": 0},
			},
			"SELECT name FROM users;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sqltomongo.MongoToSQL(tt.query)
			if err != nil {
				t.Fatalf("MongoToSQL() error = %v", err)
			}
			if got != tt.sql {
				t.Errorf("MongoToSQL():\n%s\nwant:\n%s", got, tt.sql)
			}
		})
	}
}

// Re-parsing generated SQL must reproduce the filter document exactly.
func TestParenthesizationSymmetry(t *testing.T) {
	find := map[string]any{
		"$and": []any{
			map[string]any{"$or": []any{
				map[string]any{"a": int64(1)},
				map[string]any{"b": int64(2)},
			}},
			map[string]any{"c": int64(3)},
		},
	}
	sql, err := sqltomongo.MongoToSQL(&sqltomongo.MongoQuery{Collection: "t", Find: find})
	if err != nil {
		t.Fatal(err)
	}
	back, err := sqltomongo.SQLToMongo(sql)
	if err != nil {
		t.Fatalf("SQLToMongo(%q) error = %v", sql, err)
	}
	if !reflect.DeepEqual(back.Find, find) {
		t.Errorf("SQLToMongo(%q).Find:\n%#v\nwant:\n%#v", sql, back.Find, find)
	}
}

func TestTranslator_errors(t *testing.T) {
	t.Run("missing FROM", func(t *testing.T) {
		_, err := sqltomongo.SQLToMongo("SELECT name users")
		var parseErr sqlparser.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error = %v, want ParseError", err)
		}
		if parseErr.Expected != "FROM" {
			t.Errorf("ParseError.Expected = %q, want %q", parseErr.Expected, "FROM")
		}
	})

	t.Run("in with a non-list operand", func(t *testing.T) {
		_, err := sqltomongo.MongoToSQL(&sqltomongo.MongoQuery{
			Collection: "t",
			Find:       map[string]any{"status": map[string]any{"$in": "text"}},
		})
		var filterErr filter.Error
		if !errors.As(err, &filterErr) {
			t.Fatalf("error = %v, want filter.Error", err)
		}
		if filterErr.Key != "status" {
			t.Errorf("filter.Error.Key = %q, want %q", filterErr.Key, "status")
		}
	})

	t.Run("empty IN list", func(t *testing.T) {
		_, err := sqltomongo.MongoToSQL(&sqltomongo.MongoQuery{
			Collection: "t",
			Find:       map[string]any{"status": map[string]any{"$in": []any{}}},
		})
		var filterErr filter.Error
		if !errors.As(err, &filterErr) {
			t.Fatalf("error = %v, want filter.Error", err)
		}
		if filterErr.Key != "status" {
			t.Errorf("filter.Error.Key = %q, want %q", filterErr.Key, "status")
		}
	})

	t.Run("invalid sort direction", func(t *testing.T) {
		_, err := sqltomongo.MongoToSQL(&sqltomongo.MongoQuery{
			Collection: "t",
			Sort:       []sqltomongo.SortPair{{Field: "age", Direction: 2}},
		})
		var dirErr sqltomongo.InvalidSortDirectionError
		if !errors.As(err, &dirErr) {
			t.Fatalf("error = %v, want InvalidSortDirectionError", err)
		}
	})

	t.Run("missing collection", func(t *testing.T) {
		_, err := sqltomongo.MongoToSQL(&sqltomongo.MongoQuery{})
		if !errors.Is(err, sqltomongo.ErrNoCollection) {
			t.Fatalf("error = %v, want ErrNoCollection", err)
		}
	})

	t.Run("collection name that is not an identifier", func(t *testing.T) {
		_, err := sqltomongo.MongoToSQL(&sqltomongo.MongoQuery{Collection: "users; --"})
		if err == nil {
			t.Fatal("error = nil, want invalid collection error")
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := sqltomongo.MongoToSQL(&sqltomongo.MongoQuery{Collection: "t", Limit: int64p(-1)})
		if err == nil {
			t.Fatal("error = nil, want negative limit error")
		}
	})
}

func TestTranslator_options(t *testing.T) {
	t.Run("default collection", func(t *testing.T) {
		translator := sqltomongo.NewTranslator(sqltomongo.WithDefaultCollection("unknown_table"))
		sql, err := translator.MongoToSQL(&sqltomongo.MongoQuery{Find: map[string]any{"a": int64(1)}})
		if err != nil {
			t.Fatal(err)
		}
		if want := "SELECT a FROM unknown_table WHERE a = 1;"; sql != want {
			t.Errorf("MongoToSQL() = %q, want %q", sql, want)
		}
	})

	t.Run("without semicolon", func(t *testing.T) {
		translator := sqltomongo.NewTranslator(sqltomongo.WithoutSemicolon())
		sql, err := translator.MongoToSQL(&sqltomongo.MongoQuery{Collection: "t"})
		if err != nil {
			t.Fatal(err)
		}
		if want := "SELECT * FROM t"; sql != want {
			t.Errorf("MongoToSQL() = %q, want %q", sql, want)
		}
	})

	t.Run("nil options are ignored", func(t *testing.T) {
		translator := sqltomongo.NewTranslator(nil)
		if _, err := translator.SQLToMongo("SELECT * FROM t"); err != nil {
			t.Fatal(err)
		}
	})
}

func TestSortPairJSON(t *testing.T) {
	pairs := []sqltomongo.SortPair{{Field: "age", Direction: 1}, {Field: "name", Direction: -1}}
	data, err := json.Marshal(pairs)
	if err != nil {
		t.Fatal(err)
	}
	if want := `[["age",1],["name",-1]]`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back []sqltomongo.SortPair
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, pairs) {
		t.Errorf("json.Unmarshal() = %#v, want %#v", back, pairs)
	}

	var bad sqltomongo.SortPair
	if err := json.Unmarshal([]byte(`["age"]`), &bad); err == nil {
		t.Error("json.Unmarshal([\"age\"]) error = nil, want error")
	}
}
