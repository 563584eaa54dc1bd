package render

import "github.com/zoobzio/stmtql/internal/types"

// Dialect renders the dialect-dependent parts of a statement.
type Dialect interface {
	// Name identifies the dialect in errors and logs.
	Name() string

	// Capabilities reports which clause spellings the dialect supports.
	Capabilities() Capabilities

	// QuoteValue renders a literal as safe SQL text.
	QuoteValue(v types.Value) (string, error)
}
