package stmtql

import (
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
)

// Errors returned by builder methods and Statement. Match with errors.Is.
var (
	ErrUnbalancedBlock    = types.ErrUnbalancedBlock
	ErrInvalidBlockState  = types.ErrInvalidBlockState
	ErrInvalidOperator    = types.ErrInvalidOperator
	ErrInvalidConnector   = types.ErrInvalidConnector
	ErrInvalidSetOperator = types.ErrInvalidSetOperator
	ErrInvalidDirection   = types.ErrInvalidDirection
	ErrInvalidNulls       = types.ErrInvalidNulls
	ErrNoActiveJoin       = types.ErrNoActiveJoin
	ErrInvalidLimit       = types.ErrInvalidLimit
	ErrInvalidOffset      = types.ErrInvalidOffset
	ErrInvalidIdentifier  = types.ErrInvalidIdentifier
	ErrInvalidValue       = types.ErrInvalidValue
	ErrMissingTable       = types.ErrMissingTable
	ErrMissingColumns     = types.ErrMissingColumns

	// ErrUnsupportedFeature matches any UnsupportedFeatureError.
	ErrUnsupportedFeature = render.ErrUnsupportedFeature
)

// UnsupportedFeatureError indicates a clause the target dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError
