package stmtql

import (
	"strings"

	"github.com/zoobzio/stmtql/internal/types"
)

// DeleteStatement builds a DELETE.
type DeleteStatement struct {
	state
	filter
	table string
}

// NewDelete creates a DELETE statement. Table must be set before rendering.
func NewDelete(opts ...Option) *DeleteStatement {
	cfg := newConfig(opts)
	return &DeleteStatement{
		state:  state{config: cfg},
		filter: newFilter(cfg.validator),
	}
}

// Err returns the first error recorded by a builder call.
func (s *DeleteStatement) Err() error {
	return s.err
}

// Table sets the target table, replacing any earlier one.
func (s *DeleteStatement) Table(table string) *DeleteStatement {
	s.apply(func() error {
		if err := s.validator.ValidateTable(table); err != nil {
			return err
		}
		s.table = table
		return nil
	})
	return s
}

// WhereBlock opens or closes a WHERE block.
func (s *DeleteStatement) WhereBlock(brace Brace, connector ...Connector) *DeleteStatement {
	s.apply(func() error { return s.where.Block(brace, connector...) })
	return s
}

// Where adds a WHERE condition comparing a column with a literal.
func (s *DeleteStatement) Where(column string, op Operator, value any, connector ...Connector) *DeleteStatement {
	s.apply(func() error { return s.where.AddValue(column, op, value, connector...) })
	return s
}

// WhereColumn adds a WHERE condition comparing two columns.
func (s *DeleteStatement) WhereColumn(column1 string, op Operator, column2 string, connector ...Connector) *DeleteStatement {
	s.apply(func() error { return s.where.AddColumn(column1, op, column2, connector...) })
	return s
}

// OrderBy adds an ORDER BY key.
func (s *DeleteStatement) OrderBy(column string, direction ...Direction) *DeleteStatement {
	s.apply(func() error { return s.orderBy(column, direction) })
	return s
}

// OrderByNulls adds an ORDER BY key with a null weight.
func (s *DeleteStatement) OrderByNulls(column string, direction Direction, nulls NullsOrdering) *DeleteStatement {
	s.apply(func() error { return s.order.Add(column, direction, nulls) })
	return s
}

// Limit sets LIMIT.
func (s *DeleteStatement) Limit(limit int) *DeleteStatement {
	s.apply(func() error { return s.page.SetLimit(limit) })
	return s
}

// Offset sets OFFSET.
func (s *DeleteStatement) Offset(offset int) *DeleteStatement {
	s.apply(func() error { return s.page.SetOffset(offset) })
	return s
}

// Statement renders the DELETE. Without WHERE conditions every row of the
// table is targeted.
func (s *DeleteStatement) Statement() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.table == "" {
		return "", ErrMissingTable
	}

	var sql strings.Builder
	sql.WriteString("DELETE FROM ")
	sql.WriteString(s.table)
	if err := s.renderWhere(&sql, s.dialect); err != nil {
		return "", err
	}
	if err := s.renderMutationTail(&sql, s.dialect, types.KindDelete); err != nil {
		return "", err
	}
	return sql.String(), nil
}
