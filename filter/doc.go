// Package filter translates between MongoDB-style filter documents and the
// shared boolean expression tree. Compile and Decompile are two halves of
// one specification: both read the operator table in the query package and
// both apply the same canonical flattening rules.
//
// See: https://www.mongodb.com/docs/compass/current/query/filter
package filter
