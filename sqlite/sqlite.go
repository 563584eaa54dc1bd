// Package sqlite provides the SQLite dialect renderer for stmtql.
package sqlite

import (
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Renderer implements the SQLite dialect.
type Renderer struct {
	literals render.Literals
}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{
		literals: render.Literals{
			True:  "1",
			False: "0",
			Bytes: func(hex string) string { return "X'" + hex + "'" },
		},
	}
}

// Name implements render.Dialect.
func (r *Renderer) Name() string {
	return "sqlite"
}

// Capabilities implements render.Dialect.
//
// ORDER BY and LIMIT on DELETE/UPDATE need SQLITE_ENABLE_UPDATE_DELETE_LIMIT;
// they are rendered and left to the engine to accept.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		NullsOrdering:   false,
		Pagination:      render.PaginationLimitOffset,
		UnboundedLimit:  "-1",
		MutationOrderBy: true,
		MutationLimit:   true,
		MutationOffset:  true,
		Upsert:          render.UpsertOnConflict,
	}
}

// QuoteValue implements render.Dialect.
func (r *Renderer) QuoteValue(v types.Value) (string, error) {
	return r.literals.Quote(v)
}
