package stmtql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/stmtql/internal/clause"
	"github.com/zoobzio/stmtql/internal/render"
)

// SelectStatement builds a SELECT.
type SelectStatement struct {
	state
	filter
	distinct bool
	columns  clause.RefList
	tables   clause.RefList
	joins    *clause.JoinList
	groupBy  clause.RefList
	having   *clause.PredicateList
	combine  clause.CombineList
}

// NewSelect creates an empty SELECT statement.
func NewSelect(opts ...Option) *SelectStatement {
	cfg := newConfig(opts)
	return &SelectStatement{
		state:  state{config: cfg},
		filter: newFilter(cfg.validator),
		joins:  clause.NewJoinList(cfg.validator),
		having: clause.NewPredicateList(cfg.validator),
	}
}

// Err returns the first error recorded by a builder call.
func (s *SelectStatement) Err() error {
	return s.err
}

// Distinct toggles the DISTINCT keyword.
func (s *SelectStatement) Distinct(distinct bool) *SelectStatement {
	s.apply(func() error {
		s.distinct = distinct
		return nil
	})
	return s
}

// Column adds a result column. With no columns the statement selects *.
func (s *SelectStatement) Column(column string, alias ...string) *SelectStatement {
	s.apply(func() error {
		as, err := singleAlias(alias)
		if err != nil {
			return err
		}
		if err := s.validator.ValidateColumn(column); err != nil {
			return err
		}
		s.columns.Add(column, as)
		return nil
	})
	return s
}

// From adds a table to the FROM clause.
func (s *SelectStatement) From(table string, alias ...string) *SelectStatement {
	s.apply(func() error {
		as, err := singleAlias(alias)
		if err != nil {
			return err
		}
		if err := s.validator.ValidateTable(table); err != nil {
			return err
		}
		s.tables.Add(table, as)
		return nil
	})
	return s
}

// Join adds an INNER JOIN.
func (s *SelectStatement) Join(table string, alias ...string) *SelectStatement {
	return s.JoinWith(InnerJoin, table, alias...)
}

// LeftJoin adds a LEFT JOIN.
func (s *SelectStatement) LeftJoin(table string, alias ...string) *SelectStatement {
	return s.JoinWith(LeftJoin, table, alias...)
}

// CrossJoin adds a CROSS JOIN.
func (s *SelectStatement) CrossJoin(table string, alias ...string) *SelectStatement {
	return s.JoinWith(CrossJoin, table, alias...)
}

// JoinWith adds a join of any type. Later JoinOn and JoinUsing calls
// attach to it.
func (s *SelectStatement) JoinWith(joinType JoinType, table string, alias ...string) *SelectStatement {
	s.apply(func() error {
		as, err := singleAlias(alias)
		if err != nil {
			return err
		}
		return s.joins.Add(table, as, joinType)
	})
	return s
}

// JoinOn adds a column-to-column ON condition to the latest join.
func (s *SelectStatement) JoinOn(column1 string, op Operator, column2 string, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.joins.On(column1, op, column2, connector...) })
	return s
}

// JoinOnValue adds a column-to-literal ON condition to the latest join.
func (s *SelectStatement) JoinOnValue(column string, op Operator, value any, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.joins.OnValue(column, op, value, connector...) })
	return s
}

// JoinOnBlock opens or closes a block in the latest join's ON conditions.
func (s *SelectStatement) JoinOnBlock(brace Brace, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.joins.OnBlock(brace, connector...) })
	return s
}

// JoinUsing adds a USING column to the latest join.
func (s *SelectStatement) JoinUsing(column string) *SelectStatement {
	s.apply(func() error { return s.joins.Using(column) })
	return s
}

// WhereBlock opens or closes a WHERE block.
func (s *SelectStatement) WhereBlock(brace Brace, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.where.Block(brace, connector...) })
	return s
}

// Where adds a WHERE condition comparing a column with a literal.
func (s *SelectStatement) Where(column string, op Operator, value any, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.where.AddValue(column, op, value, connector...) })
	return s
}

// WhereColumn adds a WHERE condition comparing two columns.
func (s *SelectStatement) WhereColumn(column1 string, op Operator, column2 string, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.where.AddColumn(column1, op, column2, connector...) })
	return s
}

// GroupBy adds a GROUP BY column.
func (s *SelectStatement) GroupBy(column string) *SelectStatement {
	s.apply(func() error {
		if err := s.validator.ValidateColumn(column); err != nil {
			return err
		}
		s.groupBy.Add(column, "")
		return nil
	})
	return s
}

// HavingBlock opens or closes a HAVING block.
func (s *SelectStatement) HavingBlock(brace Brace, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.having.Block(brace, connector...) })
	return s
}

// Having adds a HAVING condition comparing a column or aggregate with a literal.
func (s *SelectStatement) Having(column string, op Operator, value any, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.having.AddValue(column, op, value, connector...) })
	return s
}

// HavingColumn adds a HAVING condition comparing two columns.
func (s *SelectStatement) HavingColumn(column1 string, op Operator, column2 string, connector ...Connector) *SelectStatement {
	s.apply(func() error { return s.having.AddColumn(column1, op, column2, connector...) })
	return s
}

// OrderBy adds an ORDER BY key. Without a direction none is written.
func (s *SelectStatement) OrderBy(column string, direction ...Direction) *SelectStatement {
	s.apply(func() error { return s.orderBy(column, direction) })
	return s
}

// OrderByNulls adds an ORDER BY key with a null weight.
func (s *SelectStatement) OrderByNulls(column string, direction Direction, nulls NullsOrdering) *SelectStatement {
	s.apply(func() error { return s.order.Add(column, direction, nulls) })
	return s
}

// Limit sets LIMIT, replacing any earlier value.
func (s *SelectStatement) Limit(limit int) *SelectStatement {
	s.apply(func() error { return s.page.SetLimit(limit) })
	return s
}

// Offset sets OFFSET, replacing any earlier value.
func (s *SelectStatement) Offset(offset int) *SelectStatement {
	s.apply(func() error { return s.page.SetOffset(offset) })
	return s
}

// Combine appends a rendered SELECT joined by a set operator. The text is
// copied; later changes to its source do not reach this statement.
//
// Combined text follows this statement's ORDER BY, LIMIT and OFFSET. None of
// the supported engines accept those ahead of a set operator, so a statement
// that combines should leave them unset, as should the combined text.
func (s *SelectStatement) Combine(statement string, op SetOperation) *SelectStatement {
	s.apply(func() error { return s.combine.Add(statement, op) })
	return s
}

// CombineWith renders other now and combines it like Combine.
func (s *SelectStatement) CombineWith(other *SelectStatement, op SetOperation) *SelectStatement {
	s.apply(func() error {
		if other == nil {
			return fmt.Errorf("%w: nil statement", ErrInvalidValue)
		}
		text, err := other.Statement()
		if err != nil {
			return fmt.Errorf("combined statement: %w", err)
		}
		return s.combine.Add(text, op)
	})
	return s
}

// Statement renders the SELECT.
func (s *SelectStatement) Statement() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	d := s.dialect

	var sql strings.Builder
	sql.WriteString("SELECT ")
	if s.distinct {
		sql.WriteString("DISTINCT ")
	}
	if s.columns.Len() == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(s.columns.Render())
	}

	if s.tables.Len() > 0 {
		sql.WriteString(" FROM ")
		sql.WriteString(s.tables.Render())
	}

	if s.joins.Len() > 0 {
		joins, err := s.joins.Render(d)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ")
		sql.WriteString(joins)
	}

	if err := s.renderWhere(&sql, d); err != nil {
		return "", err
	}

	if s.groupBy.Len() > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(s.groupBy.Render())
	}

	if s.having.Len() > 0 {
		having, err := s.having.Render(d)
		if err != nil {
			return "", err
		}
		sql.WriteString(" HAVING ")
		sql.WriteString(having)
	}

	s.renderOrder(&sql, d)
	if err := s.renderPage(&sql, d); err != nil {
		return "", err
	}

	if s.combine.Len() > 0 {
		sql.WriteString(" ")
		sql.WriteString(s.combine.Render())
	}

	return sql.String(), nil
}

// singleAlias returns the optional alias argument, checked.
func singleAlias(alias []string) (string, error) {
	switch len(alias) {
	case 0:
		return "", nil
	case 1:
		if alias[0] == "" {
			return "", nil
		}
		if err := render.ValidateAlias(alias[0]); err != nil {
			return "", err
		}
		return alias[0], nil
	default:
		return "", fmt.Errorf("%w: only one alias allowed", ErrInvalidIdentifier)
	}
}
