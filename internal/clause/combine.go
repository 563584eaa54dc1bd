package clause

import (
	"fmt"
	"strings"

	"github.com/zoobzio/stmtql/internal/types"
)

// Combine pairs a rendered SELECT with the set operator that attaches it.
type Combine struct {
	Operation types.SetOperation
	Statement string
}

// CombineList keeps set-operation operands in call order.
type CombineList struct {
	entries []Combine
}

// Len returns the number of operands.
func (l *CombineList) Len() int {
	return len(l.entries)
}

// Add validates op and stores a copy of statement.
func (l *CombineList) Add(statement string, op types.SetOperation) error {
	setOp, err := types.ParseSetOperation(op)
	if err != nil {
		return err
	}
	text := strings.TrimRight(strings.TrimSpace(statement), "; \t\r\n")
	if text == "" {
		return fmt.Errorf("%w: %s needs a statement", types.ErrInvalidValue, setOp)
	}
	l.entries = append(l.entries, Combine{Operation: setOp, Statement: text})
	return nil
}

// Render returns each operand as "<operator> <statement>", space-separated.
func (l *CombineList) Render() string {
	parts := make([]string, 0, len(l.entries))
	for _, c := range l.entries {
		parts = append(parts, string(c.Operation)+" "+c.Statement)
	}
	return strings.Join(parts, " ")
}
