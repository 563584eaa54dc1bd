package types

import "errors"

// Errors reported while composing or rendering a statement.
var (
	ErrUnbalancedBlock    = errors.New("unbalanced block")
	ErrInvalidBlockState  = errors.New("invalid block state")
	ErrInvalidOperator    = errors.New("invalid operator")
	ErrInvalidConnector   = errors.New("invalid connector")
	ErrInvalidSetOperator = errors.New("invalid set operator")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidNulls       = errors.New("invalid null ordering")
	ErrNoActiveJoin       = errors.New("no active join")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrInvalidOffset      = errors.New("invalid offset")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrInvalidValue       = errors.New("invalid value")
	ErrMissingTable       = errors.New("missing table")
	ErrMissingColumns     = errors.New("missing columns")
)
