package clause

import (
	"fmt"
	"strings"

	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Join is one JOIN entry with its own ON list and USING columns.
type Join struct {
	Type  types.JoinType
	Table string
	Alias string
	On    *PredicateList
	Using []string
	// usingFirst records whether USING was given before any ON entry.
	usingFirst bool
}

// JoinList keeps JOIN entries in call order. Condition calls attach to the
// most recently added entry.
type JoinList struct {
	validator render.Validator
	joins     []*Join
}

// NewJoinList creates an empty list that checks references with v.
func NewJoinList(v render.Validator) *JoinList {
	if v == nil {
		v = render.SyntaxValidator{}
	}
	return &JoinList{validator: v}
}

// Len returns the number of joins.
func (l *JoinList) Len() int {
	return len(l.joins)
}

// Add appends a join against table. An empty alias means none.
func (l *JoinList) Add(table, alias string, joinType ...types.JoinType) error {
	jt, err := types.ParseJoinType(joinType...)
	if err != nil {
		return err
	}
	if err := l.validator.ValidateTable(table); err != nil {
		return err
	}
	if alias != "" {
		if err := render.ValidateAlias(alias); err != nil {
			return err
		}
	}
	l.joins = append(l.joins, &Join{
		Type:  jt,
		Table: table,
		Alias: alias,
		On:    NewPredicateList(l.validator),
	})
	return nil
}

func (l *JoinList) active() (*Join, error) {
	if len(l.joins) == 0 {
		return nil, types.ErrNoActiveJoin
	}
	return l.joins[len(l.joins)-1], nil
}

// On appends a column-to-column ON predicate to the latest join.
func (l *JoinList) On(left string, op types.Operator, right string, connector ...types.Connector) error {
	j, err := l.active()
	if err != nil {
		return err
	}
	return j.On.AddColumn(left, op, right, connector...)
}

// OnValue appends a column-to-literal ON predicate to the latest join.
func (l *JoinList) OnValue(left string, op types.Operator, value any, connector ...types.Connector) error {
	j, err := l.active()
	if err != nil {
		return err
	}
	return j.On.AddValue(left, op, value, connector...)
}

// OnBlock opens or closes a block in the latest join's ON list.
func (l *JoinList) OnBlock(brace types.Brace, connector ...types.Connector) error {
	j, err := l.active()
	if err != nil {
		return err
	}
	return j.On.Block(brace, connector...)
}

// Using adds a USING column to the latest join.
func (l *JoinList) Using(column string) error {
	j, err := l.active()
	if err != nil {
		return err
	}
	if err := render.ValidateAlias(column); err != nil {
		return fmt.Errorf("USING column: %w", err)
	}
	if err := l.validator.ValidateColumn(column); err != nil {
		return err
	}
	if len(j.Using) == 0 && j.On.Len() == 0 {
		j.usingFirst = true
	}
	j.Using = append(j.Using, column)
	return nil
}

// Render returns the space-separated JOIN clauses.
func (l *JoinList) Render(d render.Dialect) (string, error) {
	parts := make([]string, 0, len(l.joins))
	for _, j := range l.joins {
		var sql strings.Builder
		sql.WriteString(string(j.Type))
		sql.WriteString(" JOIN ")
		sql.WriteString(j.Table)
		if j.Alias != "" {
			sql.WriteString(" AS ")
			sql.WriteString(j.Alias)
		}

		var on string
		if j.On.Len() > 0 {
			rendered, err := j.On.Render(d)
			if err != nil {
				return "", fmt.Errorf("JOIN %s ON: %w", j.Table, err)
			}
			on = " ON " + rendered
		}
		var using string
		if len(j.Using) > 0 {
			using = " USING (" + strings.Join(j.Using, ", ") + ")"
		}

		if j.usingFirst {
			sql.WriteString(using)
			sql.WriteString(on)
		} else {
			sql.WriteString(on)
			sql.WriteString(using)
		}
		parts = append(parts, sql.String())
	}
	return strings.Join(parts, " "), nil
}
