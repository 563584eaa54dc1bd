// Package mssql provides the SQL Server dialect renderer for stmtql.
package mssql

import (
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Renderer implements the SQL Server dialect.
type Renderer struct {
	literals render.Literals
}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{
		literals: render.Literals{
			True:  "1",
			False: "0",
			Bytes: func(hex string) string { return "0x" + hex },
			Decorate: func(kind types.ValueKind, literal string) string {
				if kind == types.KindString {
					return "N" + literal
				}
				return literal
			},
		},
	}
}

// Name implements render.Dialect.
func (r *Renderer) Name() string {
	return "mssql"
}

// Capabilities implements render.Dialect.
//
// SQL Server has no NULLS FIRST/LAST and paginates with OFFSET/FETCH,
// which requires ORDER BY.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		NullsOrdering: false,
		Pagination:    render.PaginationOffsetFetch,
		Upsert:        render.UpsertNone,
	}
}

// QuoteValue implements render.Dialect. Strings are emitted as N'...'
// literals.
func (r *Renderer) QuoteValue(v types.Value) (string, error) {
	return r.literals.Quote(v)
}
