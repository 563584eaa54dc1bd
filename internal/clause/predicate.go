// Package clause holds the append-only clause lists shared by every
// statement kind and renders them through a dialect.
package clause

import (
	"fmt"
	"strings"

	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// PredicateList is the ordered entry list behind WHERE, HAVING and JOIN ON.
type PredicateList struct {
	validator render.Validator
	entries   []types.Predicate
}

// NewPredicateList creates an empty list that checks column references with v.
func NewPredicateList(v render.Validator) *PredicateList {
	if v == nil {
		v = render.SyntaxValidator{}
	}
	return &PredicateList{validator: v}
}

// Len returns the number of entries, markers included.
func (l *PredicateList) Len() int {
	return len(l.entries)
}

// Block appends an opening or closing marker. The connector only matters
// for opening markers that follow another entry.
func (l *PredicateList) Block(brace types.Brace, connector ...types.Connector) error {
	marker, err := types.ParseBrace(brace)
	if err != nil {
		return err
	}
	conn, err := types.ParseConnector(connector...)
	if err != nil {
		return err
	}
	l.entries = append(l.entries, types.Predicate{Marker: marker, Connector: conn})
	return nil
}

// AddColumn appends a predicate comparing two column references.
func (l *PredicateList) AddColumn(left string, op types.Operator, right string, connector ...types.Connector) error {
	op, conn, err := l.prepare(left, op, connector)
	if err != nil {
		return err
	}
	if op.AcceptsList() {
		return fmt.Errorf("%w: %s needs a value list, not a column", types.ErrInvalidOperator, op)
	}
	if err := l.validator.ValidateColumn(right); err != nil {
		return err
	}
	l.entries = append(l.entries, types.Predicate{
		Connector: conn,
		Left:      left,
		Operator:  op,
		Right:     right,
	})
	return nil
}

// AddValue appends a predicate comparing a column reference with a literal.
// A NULL literal turns = and != into IS and IS NOT.
func (l *PredicateList) AddValue(left string, op types.Operator, value any, connector ...types.Connector) error {
	op, conn, err := l.prepare(left, op, connector)
	if err != nil {
		return err
	}
	v, err := types.ValueOf(value)
	if err != nil {
		return fmt.Errorf("predicate on %q: %w", left, err)
	}

	switch {
	case v.IsNull() && op == types.EQ:
		op = types.IS
	case v.IsNull() && op == types.NE:
		op = types.IsNot
	}

	if op.AcceptsList() {
		if v.Kind != types.KindList {
			v = types.Value{Kind: types.KindList, List: []types.Value{v}}
		}
		if len(v.List) == 0 {
			return fmt.Errorf("%w: %s needs at least one value", types.ErrInvalidValue, op)
		}
	} else if v.Kind == types.KindList {
		return fmt.Errorf("%w: value list used with %s", types.ErrInvalidValue, op)
	}

	l.entries = append(l.entries, types.Predicate{
		Connector: conn,
		Left:      left,
		Operator:  op,
		Value:     &v,
	})
	return nil
}

func (l *PredicateList) prepare(left string, op types.Operator, connector []types.Connector) (types.Operator, types.Connector, error) {
	if err := l.validator.ValidateColumn(left); err != nil {
		return "", "", err
	}
	op, err := types.ParseOperator(op)
	if err != nil {
		return "", "", err
	}
	conn, err := types.ParseConnector(connector...)
	if err != nil {
		return "", "", err
	}
	return op, conn, nil
}

// Render writes the entries in call order. Blocks must be balanced and
// non-empty.
func (l *PredicateList) Render(d render.Dialect) (string, error) {
	var sql strings.Builder
	depth := 0
	// The start of the list behaves like the inside of a fresh block.
	afterOpen := true

	for _, e := range l.entries {
		switch e.Marker {
		case types.MarkerClose:
			if depth == 0 {
				return "", fmt.Errorf("%w: closing brace without matching open", types.ErrUnbalancedBlock)
			}
			if afterOpen {
				return "", fmt.Errorf("%w: empty block", types.ErrInvalidBlockState)
			}
			depth--
			sql.WriteString(")")
			afterOpen = false
		case types.MarkerOpen:
			if !afterOpen {
				writeConnector(&sql, e.Connector)
			}
			sql.WriteString("(")
			depth++
			afterOpen = true
		default:
			if !e.IsComparison() {
				return "", fmt.Errorf("%w: unknown marker %d", types.ErrInvalidBlockState, e.Marker)
			}
			if !afterOpen {
				writeConnector(&sql, e.Connector)
			}
			text, err := renderPredicate(e, d)
			if err != nil {
				return "", err
			}
			sql.WriteString(text)
			afterOpen = false
		}
	}

	if depth != 0 {
		return "", fmt.Errorf("%w: %d block(s) left open", types.ErrUnbalancedBlock, depth)
	}
	return sql.String(), nil
}

func writeConnector(sql *strings.Builder, c types.Connector) {
	sql.WriteString(" ")
	sql.WriteString(string(c))
	sql.WriteString(" ")
}

func renderPredicate(p types.Predicate, d render.Dialect) (string, error) {
	right := p.Right
	if p.Value != nil {
		quoted, err := d.QuoteValue(*p.Value)
		if err != nil {
			return "", fmt.Errorf("predicate on %q: %w", p.Left, err)
		}
		right = quoted
	}
	return p.Left + " " + string(p.Operator) + " " + right, nil
}
