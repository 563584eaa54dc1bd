package clause

import (
	"strings"

	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// OrderEntry is one ORDER BY key.
type OrderEntry struct {
	Column    string
	Direction types.Direction
	Nulls     types.NullsOrdering
}

// OrderByList keeps ORDER BY keys in call order.
type OrderByList struct {
	validator render.Validator
	entries   []OrderEntry
}

// NewOrderByList creates an empty list that checks columns with v.
func NewOrderByList(v render.Validator) *OrderByList {
	if v == nil {
		v = render.SyntaxValidator{}
	}
	return &OrderByList{validator: v}
}

// Len returns the number of keys.
func (l *OrderByList) Len() int {
	return len(l.entries)
}

// Add appends a key.
func (l *OrderByList) Add(column string, direction types.Direction, nulls types.NullsOrdering) error {
	if err := l.validator.ValidateColumn(column); err != nil {
		return err
	}
	dir, err := types.ParseDirection(direction)
	if err != nil {
		return err
	}
	weight, err := types.ParseNullsOrdering(nulls)
	if err != nil {
		return err
	}
	l.entries = append(l.entries, OrderEntry{Column: column, Direction: dir, Nulls: weight})
	return nil
}

// Render returns the comma-separated keys without the ORDER BY keyword.
// Dialects lacking NULLS FIRST/LAST get a CASE key in front of each entry
// that asks for a null weight; other entries are left alone.
func (l *OrderByList) Render(d render.Dialect) string {
	native := d.Capabilities().NullsOrdering
	parts := make([]string, 0, len(l.entries))

	for _, e := range l.entries {
		key := e.Column
		if e.Direction != "" {
			key += " " + string(e.Direction)
		}

		switch {
		case e.Nulls == "":
			parts = append(parts, key)
		case native:
			parts = append(parts, key+" "+string(e.Nulls))
		default:
			parts = append(parts, nullWeightKey(e.Column, e.Nulls), key)
		}
	}

	return strings.Join(parts, ", ")
}

// nullWeightKey sorts NULL rows ahead (0) or behind (1) the rest.
func nullWeightKey(column string, nulls types.NullsOrdering) string {
	if nulls == types.NullsFirst {
		return "CASE WHEN " + column + " IS NULL THEN 0 ELSE 1 END"
	}
	return "CASE WHEN " + column + " IS NULL THEN 1 ELSE 0 END"
}
