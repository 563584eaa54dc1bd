// Package stmtql assembles SQL statement text from incremental builder calls.
//
// Each statement kind owns the clause lists it supports (WHERE and HAVING
// predicate lists with nested blocks, ORDER BY with null weighting, JOIN,
// LIMIT/OFFSET and set combination) and renders them through a dialect.
// Literal values are always quoted by the dialect; raw fragments such as
// column and table references pass an identifier check before they are
// accepted.
//
// # Basic Usage
//
//	stmt := stmtql.NewSelect().
//		From("users").
//		Where("age", ">", 18).
//		OrderBy("name").
//		Limit(10)
//
//	sql, err := stmt.Statement()
//	// SELECT * FROM users WHERE age > 18 ORDER BY name LIMIT 10
//
// # Blocks
//
//	stmtql.NewDelete().
//		Table("sessions").
//		WhereBlock("(").
//		Where("expired", "=", true).
//		Where("revoked", "=", true, "OR").
//		WhereBlock(")")
//	// DELETE FROM sessions WHERE (expired = 1 OR revoked = 1)
//
// # Dialects
//
// Statements render for SQLite unless another dialect is passed:
//
//	import "github.com/zoobzio/stmtql/postgres"
//
//	stmtql.NewSelect(stmtql.WithDialect(postgres.New()))
//
// Dialects without NULLS FIRST/LAST get a CASE sort key in front of every
// ORDER BY entry that asks for a null weight.
//
// # Errors
//
// Builder methods keep the first error and ignore later calls. Err reports
// it right away; Statement returns it instead of text.
package stmtql

import (
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Operator represents predicate comparison operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Basic comparison operators.
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE

	// Extended operators.
	LIKE    = types.LIKE
	NotLike = types.NotLike
	GLOB    = types.GLOB
	IN      = types.IN
	NotIn   = types.NotIn
	IS      = types.IS
	IsNot   = types.IsNot
)

// Connector joins consecutive predicates.
type Connector = types.Connector

// Re-export connector constants for public API.
const (
	AND = types.AND
	OR  = types.OR
)

// Brace opens or closes a predicate block.
type Brace = types.Brace

// Re-export brace constants for public API.
const (
	OpenBrace  = types.OpenBrace
	CloseBrace = types.CloseBrace
)

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// NullsOrdering represents NULL ordering in ORDER BY.
type NullsOrdering = types.NullsOrdering

// Re-export nulls ordering constants for public API.
const (
	NullsFirst = types.NullsFirst
	NullsLast  = types.NullsLast
)

// JoinType is the keyword sequence in front of JOIN.
type JoinType = types.JoinType

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	CrossJoin = types.CrossJoin
)

// SetOperation represents set operations between SELECT statements.
type SetOperation = types.SetOperation

// Re-export set operation constants for public API.
const (
	SetUnion     = types.SetUnion
	SetUnionAll  = types.SetUnionAll
	SetIntersect = types.SetIntersect
	SetExcept    = types.SetExcept
)

// Value is a type-tagged literal.
type Value = types.Value

// ValueOf converts a Go value into a literal.
func ValueOf(x any) (Value, error) {
	return types.ValueOf(x)
}

// Dialect renders the dialect-dependent parts of a statement.
type Dialect = render.Dialect

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities

// PaginationStyle selects how LIMIT/OFFSET is spelled.
type PaginationStyle = render.PaginationStyle

// Pagination styles.
const (
	PaginationLimitOffset = render.PaginationLimitOffset
	PaginationOffsetFetch = render.PaginationOffsetFetch
)

// UpsertStyle selects the INSERT conflict clause.
type UpsertStyle = render.UpsertStyle

// Upsert styles.
const (
	UpsertNone         = render.UpsertNone
	UpsertOnConflict   = render.UpsertOnConflict
	UpsertDuplicateKey = render.UpsertDuplicateKey
)

// Validator checks raw table and column fragments.
type Validator = render.Validator

// ValidatorFunc adapts a plain identifier predicate to Validator.
type ValidatorFunc = render.ValidatorFunc

// IsValidIdentifier reports whether text may be used as a column reference.
func IsValidIdentifier(text string) bool {
	return render.IsValidIdentifier(text)
}
