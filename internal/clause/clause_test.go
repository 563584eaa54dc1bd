package clause

import (
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// testDialect renders like SQLite unless caps says otherwise.
type testDialect struct {
	caps render.Capabilities
}

var literals = render.Literals{True: "1", False: "0"}

func (d testDialect) Name() string { return "test" }
func (d testDialect) Capabilities() render.Capabilities { return d.caps }
func (d testDialect) QuoteValue(v types.Value) (string, error) { return literals.Quote(v) }

var (
	emulated = testDialect{caps: render.Capabilities{UnboundedLimit: "-1"}}
	native   = testDialect{caps: render.Capabilities{NullsOrdering: true}}
	fetch    = testDialect{caps: render.Capabilities{Pagination: render.PaginationOffsetFetch}}
)
