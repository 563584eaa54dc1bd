package types

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind represents the kind of statement being built.
type Kind string

const (
	KindSelect Kind = "SELECT"
	KindInsert Kind = "INSERT"
	KindUpsert Kind = "UPSERT"
	KindUpdate Kind = "UPDATE"
	KindDelete Kind = "DELETE"
)

// Direction represents sort direction. The zero value leaves the direction
// out of the rendered text.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection normalizes a direction.
func ParseDirection(d Direction) (Direction, error) {
	switch norm := Direction(strings.ToUpper(strings.TrimSpace(string(d)))); norm {
	case "", ASC, DESC:
		return norm, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, string(d))
	}
}

// NullsOrdering controls where NULL values sort relative to non-null ones.
type NullsOrdering string

const (
	NullsFirst NullsOrdering = "NULLS FIRST"
	NullsLast  NullsOrdering = "NULLS LAST"
)

// ParseNullsOrdering normalizes a null weight. "FIRST" and "LAST" are
// accepted as short forms.
func ParseNullsOrdering(n NullsOrdering) (NullsOrdering, error) {
	switch norm := strings.ToUpper(strings.Join(strings.Fields(string(n)), " ")); norm {
	case "":
		return "", nil
	case "FIRST", string(NullsFirst):
		return NullsFirst, nil
	case "LAST", string(NullsLast):
		return NullsLast, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNulls, string(n))
	}
}

// JoinType is the keyword sequence in front of JOIN. Dialects vary, so any
// run of words is accepted.
type JoinType string

const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	CrossJoin JoinType = "CROSS"
)

var joinTypeRe = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)

// ParseJoinType normalizes a join type, defaulting to INNER.
func ParseJoinType(t ...JoinType) (JoinType, error) {
	if len(t) == 0 {
		return InnerJoin, nil
	}
	if len(t) > 1 {
		return "", fmt.Errorf("%w: only one join type allowed", ErrInvalidIdentifier)
	}
	norm := strings.Join(strings.Fields(string(t[0])), " ")
	if norm == "" {
		return InnerJoin, nil
	}
	if !joinTypeRe.MatchString(norm) {
		return "", fmt.Errorf("%w: join type %q", ErrInvalidIdentifier, string(t[0]))
	}
	norm = strings.ToUpper(norm)
	norm = strings.TrimSuffix(norm, " JOIN")
	if norm == "JOIN" {
		return InnerJoin, nil
	}
	return JoinType(norm), nil
}

// SetOperation combines the result sets of two SELECT statements.
type SetOperation string

const (
	SetUnion     SetOperation = "UNION"
	SetUnionAll  SetOperation = "UNION ALL"
	SetIntersect SetOperation = "INTERSECT"
	SetExcept    SetOperation = "EXCEPT"
)

// ParseSetOperation checks op against the four supported set operators.
func ParseSetOperation(op SetOperation) (SetOperation, error) {
	switch norm := SetOperation(strings.ToUpper(strings.Join(strings.Fields(string(op)), " "))); norm {
	case SetUnion, SetUnionAll, SetIntersect, SetExcept:
		return norm, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSetOperator, string(op))
	}
}
