package types

import (
	"fmt"
	"strings"
)

// Operator represents predicate comparison operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	LIKE    Operator = "LIKE"
	NotLike Operator = "NOT LIKE"
	GLOB    Operator = "GLOB"
	IN      Operator = "IN"
	NotIn   Operator = "NOT IN"
	IS      Operator = "IS"
	IsNot   Operator = "IS NOT"
)

var operators = map[Operator]bool{
	EQ: true, NE: true, GT: true, GE: true, LT: true, LE: true,
	LIKE: true, NotLike: true, GLOB: true,
	IN: true, NotIn: true, IS: true, IsNot: true,
}

// ParseOperator normalizes op and checks it against the supported set.
// Keywords are case-insensitive, inner whitespace is collapsed and "<>" is
// accepted as an alias for "!=".
func ParseOperator(op Operator) (Operator, error) {
	norm := Operator(strings.ToUpper(strings.Join(strings.Fields(string(op)), " ")))
	if norm == "<>" {
		norm = NE
	}
	if !operators[norm] {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, string(op))
	}
	return norm, nil
}

// AcceptsList reports whether the operator takes a parenthesized value list.
func (op Operator) AcceptsList() bool {
	return op == IN || op == NotIn
}

// Connector joins consecutive predicates.
type Connector string

const (
	AND Connector = "AND"
	OR  Connector = "OR"
)

// ParseConnector returns the connector selected by an optional variadic
// argument. No argument (or an empty one) means AND.
func ParseConnector(connector ...Connector) (Connector, error) {
	if len(connector) == 0 {
		return AND, nil
	}
	if len(connector) > 1 {
		return "", fmt.Errorf("%w: only one connector allowed", ErrInvalidConnector)
	}
	switch c := Connector(strings.ToUpper(strings.TrimSpace(string(connector[0])))); c {
	case "":
		return AND, nil
	case AND, OR:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidConnector, string(connector[0]))
	}
}

// Brace opens or closes a predicate block.
type Brace string

const (
	OpenBrace  Brace = "("
	CloseBrace Brace = ")"
)

// Marker identifies what a predicate list entry is.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerOpen
	MarkerClose
)

// ParseBrace maps a brace to its block marker.
func ParseBrace(b Brace) (Marker, error) {
	switch Brace(strings.TrimSpace(string(b))) {
	case OpenBrace:
		return MarkerOpen, nil
	case CloseBrace:
		return MarkerClose, nil
	default:
		return MarkerNone, fmt.Errorf("%w: unknown brace %q", ErrInvalidBlockState, string(b))
	}
}
