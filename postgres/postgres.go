// Package postgres provides the PostgreSQL dialect renderer for stmtql.
package postgres

import (
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Renderer implements the PostgreSQL dialect.
type Renderer struct {
	literals render.Literals
}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{
		literals: render.Literals{
			True:  "TRUE",
			False: "FALSE",
			Bytes: func(hex string) string { return `'\x` + hex + `'::bytea` },
			Decorate: func(kind types.ValueKind, literal string) string {
				if kind == types.KindTime {
					return literal + "::timestamp"
				}
				return literal
			},
		},
	}
}

// Name implements render.Dialect.
func (r *Renderer) Name() string {
	return "postgres"
}

// Capabilities implements render.Dialect.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		NullsOrdering: true,
		Pagination:    render.PaginationLimitOffset,
		Upsert:        render.UpsertOnConflict,
	}
}

// QuoteValue implements render.Dialect.
func (r *Renderer) QuoteValue(v types.Value) (string, error) {
	return r.literals.Quote(v)
}
