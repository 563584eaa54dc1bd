// Package mariadb provides the MariaDB/MySQL dialect renderer for stmtql.
package mariadb

import (
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// maxRows is the documented way to ask for OFFSET without a LIMIT.
const maxRows = "18446744073709551615"

// Renderer implements the MariaDB dialect.
type Renderer struct {
	literals render.Literals
}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{
		literals: render.Literals{
			True:            "TRUE",
			False:           "FALSE",
			EscapeBackslash: true,
			Bytes:           func(hex string) string { return "X'" + hex + "'" },
		},
	}
}

// Name implements render.Dialect.
func (r *Renderer) Name() string {
	return "mariadb"
}

// Capabilities implements render.Dialect.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		NullsOrdering:   false,
		Pagination:      render.PaginationLimitOffset,
		UnboundedLimit:  maxRows,
		MutationOrderBy: true,
		MutationLimit:   true,
		MutationOffset:  false,
		Upsert:          render.UpsertDuplicateKey,
	}
}

// QuoteValue implements render.Dialect.
func (r *Renderer) QuoteValue(v types.Value) (string, error) {
	return r.literals.Quote(v)
}
