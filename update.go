package stmtql

import (
	"strings"

	"github.com/zoobzio/stmtql/internal/clause"
	"github.com/zoobzio/stmtql/internal/types"
)

// UpdateStatement builds an UPDATE.
type UpdateStatement struct {
	state
	filter
	table string
	set   *clause.AssignmentList
}

// NewUpdate creates an UPDATE statement.
func NewUpdate(opts ...Option) *UpdateStatement {
	cfg := newConfig(opts)
	return &UpdateStatement{
		state:  state{config: cfg},
		filter: newFilter(cfg.validator),
		set:    clause.NewAssignmentList(cfg.validator),
	}
}

// Err returns the first error recorded by a builder call.
func (s *UpdateStatement) Err() error {
	return s.err
}

// Table sets the target table.
func (s *UpdateStatement) Table(table string) *UpdateStatement {
	s.apply(func() error {
		if err := s.validator.ValidateTable(table); err != nil {
			return err
		}
		s.table = table
		return nil
	})
	return s
}

// Set assigns a literal to column.
func (s *UpdateStatement) Set(column string, value any) *UpdateStatement {
	s.apply(func() error { return s.set.AddValue(column, value) })
	return s
}

// SetColumn assigns the value of another column.
func (s *UpdateStatement) SetColumn(column, source string) *UpdateStatement {
	s.apply(func() error { return s.set.AddRef(column, source) })
	return s
}

// WhereBlock opens or closes a WHERE block.
func (s *UpdateStatement) WhereBlock(brace Brace, connector ...Connector) *UpdateStatement {
	s.apply(func() error { return s.where.Block(brace, connector...) })
	return s
}

// Where adds a WHERE condition comparing a column with a literal.
func (s *UpdateStatement) Where(column string, op Operator, value any, connector ...Connector) *UpdateStatement {
	s.apply(func() error { return s.where.AddValue(column, op, value, connector...) })
	return s
}

// WhereColumn adds a WHERE condition comparing two columns.
func (s *UpdateStatement) WhereColumn(column1 string, op Operator, column2 string, connector ...Connector) *UpdateStatement {
	s.apply(func() error { return s.where.AddColumn(column1, op, column2, connector...) })
	return s
}

// OrderBy adds an ORDER BY key.
func (s *UpdateStatement) OrderBy(column string, direction ...Direction) *UpdateStatement {
	s.apply(func() error { return s.orderBy(column, direction) })
	return s
}

// OrderByNulls adds an ORDER BY key with a null weight.
func (s *UpdateStatement) OrderByNulls(column string, direction Direction, nulls NullsOrdering) *UpdateStatement {
	s.apply(func() error { return s.order.Add(column, direction, nulls) })
	return s
}

// Limit sets LIMIT.
func (s *UpdateStatement) Limit(limit int) *UpdateStatement {
	s.apply(func() error { return s.page.SetLimit(limit) })
	return s
}

// Offset sets OFFSET.
func (s *UpdateStatement) Offset(offset int) *UpdateStatement {
	s.apply(func() error { return s.page.SetOffset(offset) })
	return s
}

// Statement renders the UPDATE.
func (s *UpdateStatement) Statement() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.table == "" {
		return "", ErrMissingTable
	}
	if s.set.Len() == 0 {
		return "", ErrMissingColumns
	}

	set, err := s.set.RenderSet(s.dialect)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(s.table)
	sql.WriteString(" SET ")
	sql.WriteString(set)
	if err := s.renderWhere(&sql, s.dialect); err != nil {
		return "", err
	}
	if err := s.renderMutationTail(&sql, s.dialect, types.KindUpdate); err != nil {
		return "", err
	}
	return sql.String(), nil
}
