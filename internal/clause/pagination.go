package clause

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Pagination holds LIMIT and OFFSET. Both start unset and are left out of
// the output until set.
type Pagination struct {
	limit  *int
	offset *int
}

// SetLimit overwrites the limit.
func (p *Pagination) SetLimit(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", types.ErrInvalidLimit, n)
	}
	p.limit = &n
	return nil
}

// SetOffset overwrites the offset.
func (p *Pagination) SetOffset(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", types.ErrInvalidOffset, n)
	}
	p.offset = &n
	return nil
}

// HasLimit reports whether a limit was set.
func (p *Pagination) HasLimit() bool { return p.limit != nil }

// HasOffset reports whether an offset was set.
func (p *Pagination) HasOffset() bool { return p.offset != nil }

// Render returns the pagination clause with a leading space, or "" when
// neither value is set. ordered tells OFFSET/FETCH dialects whether an
// ORDER BY precedes the clause.
func (p *Pagination) Render(d render.Dialect, ordered bool) (string, error) {
	if p.limit == nil && p.offset == nil {
		return "", nil
	}
	caps := d.Capabilities()
	var sql strings.Builder

	switch caps.Pagination {
	case render.PaginationOffsetFetch:
		if !ordered {
			return "", render.NewUnsupportedFeatureError(d.Name(), "LIMIT/OFFSET without ORDER BY",
				"add ORDER BY clause when using LIMIT or OFFSET")
		}
		sql.WriteString(" OFFSET ")
		if p.offset != nil {
			sql.WriteString(strconv.Itoa(*p.offset))
		} else {
			sql.WriteString("0")
		}
		sql.WriteString(" ROWS")
		if p.limit != nil {
			sql.WriteString(" FETCH NEXT ")
			sql.WriteString(strconv.Itoa(*p.limit))
			sql.WriteString(" ROWS ONLY")
		}
	default:
		switch {
		case p.limit != nil:
			sql.WriteString(" LIMIT ")
			sql.WriteString(strconv.Itoa(*p.limit))
		case caps.UnboundedLimit != "":
			sql.WriteString(" LIMIT ")
			sql.WriteString(caps.UnboundedLimit)
		}
		if p.offset != nil {
			sql.WriteString(" OFFSET ")
			sql.WriteString(strconv.Itoa(*p.offset))
		}
	}

	return sql.String(), nil
}
