package stmtql

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zoobzio/stmtql/internal/clause"
	"github.com/zoobzio/stmtql/internal/render"
)

// UpsertStatement builds an INSERT that updates the existing row when a
// unique key collides. Columns outside the conflict key are overwritten with
// the proposed values.
type UpsertStatement struct {
	state
	table    string
	values   *clause.AssignmentList
	conflict []string
}

// NewUpsert creates an upsert statement.
func NewUpsert(opts ...Option) *UpsertStatement {
	cfg := newConfig(opts)
	return &UpsertStatement{
		state:  state{config: cfg},
		values: clause.NewAssignmentList(cfg.validator),
	}
}

// Err returns the first error recorded by a builder call.
func (s *UpsertStatement) Err() error {
	return s.err
}

// Into sets the target table.
func (s *UpsertStatement) Into(table string) *UpsertStatement {
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
func (s *UpsertStatement) Column(column string, value any) *UpsertStatement {
	s.apply(func() error { return s.values.AddValue(column, value) })
	return s
}

// Conflict names the unique key columns. Dialects that infer the key from
// the table still use them to decide which columns are left untouched.
func (s *UpsertStatement) Conflict(columns ...string) *UpsertStatement {
	s.apply(func() error {
		for _, col := range columns {
			if !render.IsValidAlias(col) {
				return fmt.Errorf("%w: conflict column %q", ErrInvalidIdentifier, col)
			}
			if err := s.validator.ValidateColumn(col); err != nil {
				return err
			}
		}
		s.conflict = append(s.conflict, columns...)
		return nil
	})
	return s
}

// Statement renders the upsert for the configured dialect.
func (s *UpsertStatement) Statement() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.table == "" {
		return "", ErrMissingTable
	}
	if s.values.Len() == 0 {
		return "", ErrMissingColumns
	}

	d := s.dialect
	values, err := s.values.RenderValues(d)
	if err != nil {
		return "", err
	}

	var updates []string
	for _, col := range s.values.Columns() {
		if !slices.Contains(s.conflict, col) {
			updates = append(updates, col)
		}
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(s.table)
	sql.WriteString(" ")
	sql.WriteString(values)

	switch d.Capabilities().Upsert {
	case render.UpsertOnConflict:
		if len(s.conflict) == 0 {
			return "", fmt.Errorf("%w: ON CONFLICT needs conflict columns", ErrMissingColumns)
		}
		sql.WriteString(" ON CONFLICT (")
		sql.WriteString(strings.Join(s.conflict, ", "))
		sql.WriteString(")")
		if len(updates) == 0 {
			sql.WriteString(" DO NOTHING")
			break
		}
		sql.WriteString(" DO UPDATE SET ")
		for i, col := range updates {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(col + " = excluded." + col)
		}
	case render.UpsertDuplicateKey:
		sql.WriteString(" ON DUPLICATE KEY UPDATE ")
		if len(updates) == 0 {
			first := s.values.Columns()[0]
			sql.WriteString(first + " = " + first)
			break
		}
		for i, col := range updates {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(col + " = VALUES(" + col + ")")
		}
	default:
		return "", render.NewUnsupportedFeatureError(d.Name(), "upsert",
			"use MERGE or an UPDATE followed by an INSERT")
	}

	return sql.String(), nil
}
