package render

// PaginationStyle selects how LIMIT/OFFSET is spelled.
type PaginationStyle int

const (
	PaginationLimitOffset PaginationStyle = iota // LIMIT n OFFSET m
	PaginationOffsetFetch                        // OFFSET m ROWS FETCH NEXT n ROWS ONLY
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	NullsOrdering   bool            // native NULLS FIRST / NULLS LAST
	Pagination      PaginationStyle // LIMIT/OFFSET spelling
	UnboundedLimit  string          // LIMIT emitted when only OFFSET is set, "" if OFFSET may stand alone
	MutationOrderBy bool            // ORDER BY on DELETE/UPDATE
	MutationLimit   bool            // LIMIT on DELETE/UPDATE
	MutationOffset  bool            // OFFSET on DELETE/UPDATE
	Upsert          UpsertStyle     // INSERT conflict handling
}

// UpsertStyle selects the INSERT conflict clause.
type UpsertStyle int

const (
	UpsertNone          UpsertStyle = iota
	UpsertOnConflict                // ON CONFLICT (k) DO UPDATE SET c = excluded.c
	UpsertDuplicateKey              // ON DUPLICATE KEY UPDATE c = VALUES(c)
)
