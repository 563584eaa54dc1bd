package stmtql

import (
	"github.com/zoobzio/stmtql/internal/clause"
)

// InsertStatement builds a single-row INSERT.
type InsertStatement struct {
	state
	table  string
	values *clause.AssignmentList
}

// NewInsert creates an INSERT statement.
func NewInsert(opts ...Option) *InsertStatement {
	cfg := newConfig(opts)
	return &InsertStatement{
		state:  state{config: cfg},
		values: clause.NewAssignmentList(cfg.validator),
	}
}

// Err returns the first error recorded by a builder call.
func (s *InsertStatement) Err() error {
	return s.err
}

// Into sets the target table.
func (s *InsertStatement) Into(table string) *InsertStatement {
	s.apply(func() error {
		if err := s.validator.ValidateTable(table); err != nil {
			return err
		}
		s.table = table
		return nil
	})
	return s
}

// Column adds a column and its literal value.
func (s *InsertStatement) Column(column string, value any) *InsertStatement {
	s.apply(func() error { return s.values.AddValue(column, value) })
	return s
}

// Statement renders the INSERT.
func (s *InsertStatement) Statement() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.table == "" {
		return "", ErrMissingTable
	}
	if s.values.Len() == 0 {
		return "", ErrMissingColumns
	}
	values, err := s.values.RenderValues(s.dialect)
	if err != nil {
		return "", err
	}
	return "INSERT INTO " + s.table + " " + values, nil
}
