package clause

import (
	"fmt"
	"strings"

	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Assignment pairs a target column with a literal or another column.
type Assignment struct {
	Column string
	Value  *types.Value
	// Ref is the raw source column when Value is nil.
	Ref string
}

// AssignmentList keeps column assignments for INSERT and UPDATE in call order.
type AssignmentList struct {
	validator render.Validator
	entries   []Assignment
}

// NewAssignmentList creates an empty list that checks columns with v.
func NewAssignmentList(v render.Validator) *AssignmentList {
	if v == nil {
		v = render.SyntaxValidator{}
	}
	return &AssignmentList{validator: v}
}

// Len returns the number of assignments.
func (l *AssignmentList) Len() int {
	return len(l.entries)
}

// Columns returns the target columns in call order.
func (l *AssignmentList) Columns() []string {
	cols := make([]string, len(l.entries))
	for i, a := range l.entries {
		cols[i] = a.Column
	}
	return cols
}

func (l *AssignmentList) checkTarget(column string) error {
	if !render.IsValidAlias(column) {
		return fmt.Errorf("%w: target column %q", types.ErrInvalidIdentifier, column)
	}
	return l.validator.ValidateColumn(column)
}

// AddValue assigns a literal to column.
func (l *AssignmentList) AddValue(column string, value any) error {
	if err := l.checkTarget(column); err != nil {
		return err
	}
	v, err := types.ValueOf(value)
	if err != nil {
		return fmt.Errorf("column %q: %w", column, err)
	}
	if v.Kind == types.KindList {
		return fmt.Errorf("%w: column %q cannot take a value list", types.ErrInvalidValue, column)
	}
	l.entries = append(l.entries, Assignment{Column: column, Value: &v})
	return nil
}

// AddRef assigns another column's value to column.
func (l *AssignmentList) AddRef(column, ref string) error {
	if err := l.checkTarget(column); err != nil {
		return err
	}
	if err := l.validator.ValidateColumn(ref); err != nil {
		return err
	}
	l.entries = append(l.entries, Assignment{Column: column, Ref: ref})
	return nil
}

func (l *AssignmentList) source(a Assignment, d render.Dialect) (string, error) {
	if a.Value == nil {
		return a.Ref, nil
	}
	s, err := d.QuoteValue(*a.Value)
	if err != nil {
		return "", fmt.Errorf("column %q: %w", a.Column, err)
	}
	return s, nil
}

// RenderSet returns "a = 1, b = c".
func (l *AssignmentList) RenderSet(d render.Dialect) (string, error) {
	parts := make([]string, 0, len(l.entries))
	for _, a := range l.entries {
		src, err := l.source(a, d)
		if err != nil {
			return "", err
		}
		parts = append(parts, a.Column+" = "+src)
	}
	return strings.Join(parts, ", "), nil
}

// RenderValues returns "(a, b) VALUES (1, 'x')".
func (l *AssignmentList) RenderValues(d render.Dialect) (string, error) {
	values := make([]string, 0, len(l.entries))
	for _, a := range l.entries {
		src, err := l.source(a, d)
		if err != nil {
			return "", err
		}
		values = append(values, src)
	}
	return "(" + strings.Join(l.Columns(), ", ") + ") VALUES (" + strings.Join(values, ", ") + ")", nil
}
