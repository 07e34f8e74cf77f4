package query

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindNull
	KindList
)

// Value is a closed union over the literal types that can appear on the
// right-hand side of a comparison, both as a SQL literal and as a
// filter-document scalar or array. A list only ever appears as the operand
// of IN or NOT IN.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	List  []Value
}

func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Int(i int64) Value      { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value  { return Value{Kind: KindFloat, Float: f} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func Null() Value            { return Value{Kind: KindNull} }
func List(vs ...Value) Value { return Value{Kind: KindList, List: vs} }

// SQL renders the value as a SQL literal. Strings are single-quoted with
// embedded quotes doubled, lists become parenthesized comma-separated
// literals for IN and NOT IN.
func (v Value) SQL() string {
	switch v.Kind {
	case KindString:
		return "'" + strings.ReplaceAll(v.Str, "'", "''") + "'"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		if v.Float == 0 {
			// Avoids emitting "-0" for negative zero.
			return "0"
		}
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindNull:
		return "NULL"
	case KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.SQL()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return ""
}

// Native returns the JSON-native representation of the value, as produced
// by encoding/json: string, int64, float64, bool, nil or []any.
func (v Value) Native() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindList:
		list := make([]any, len(v.List))
		for i, e := range v.List {
			list[i] = e.Native()
		}
		return list
	}
	return nil
}

// FromNative converts a JSON-native value into a Value. It reports false
// for unsupported shapes: maps, nested lists, and any non-JSON type.
// List elements must be scalars.
func FromNative(v any) (Value, bool) {
	switch v := v.(type) {
	case nil:
		return Null(), true
	case bool:
		return Bool(v), true
	case string:
		return String(v), true
	case float64:
		return Float(v), true
	case int:
		return Int(int64(v)), true
	case int64:
		return Int(v), true
	case []any:
		list := make([]Value, len(v))
		for i, e := range v {
			elem, ok := FromNative(e)
			if !ok || elem.Kind == KindList {
				return Value{}, false
			}
			list[i] = elem
		}
		return List(list...), true
	default:
		return Value{}, false
	}
}
