package stmtql

import (
	"strings"

	"github.com/zoobzio/stmtql/internal/clause"
	"github.com/zoobzio/stmtql/internal/render"
	"github.com/zoobzio/stmtql/internal/types"
	"github.com/zoobzio/stmtql/sqlite"
)

// Statement is anything that renders to SQL text.
type Statement interface {
	// Statement renders the statement. Calling it again without further
	// mutation returns identical text.
	Statement() (string, error)
}

// DataManipulationCommand is the clause contract shared by the statement
// kinds that filter, order and page rows. S is the concrete statement type
// so chained calls keep their type:
//
//	func active[S stmtql.DataManipulationCommand[S]](s S) S {
//		return s.Where("deleted_at", "=", nil)
//	}
type DataManipulationCommand[S any] interface {
	Statement
	Err() error
	WhereBlock(brace Brace, connector ...Connector) S
	Where(column string, op Operator, value any, connector ...Connector) S
	WhereColumn(column1 string, op Operator, column2 string, connector ...Connector) S
	OrderBy(column string, direction ...Direction) S
	OrderByNulls(column string, direction Direction, nulls NullsOrdering) S
	Limit(limit int) S
	Offset(offset int) S
}

var (
	_ DataManipulationCommand[*SelectStatement] = (*SelectStatement)(nil)
	_ DataManipulationCommand[*DeleteStatement] = (*DeleteStatement)(nil)
	_ DataManipulationCommand[*UpdateStatement] = (*UpdateStatement)(nil)
	_ Statement                                 = (*InsertStatement)(nil)
	_ Statement                                 = (*UpsertStatement)(nil)
)

// Option configures a statement at construction.
type Option func(*config)

type config struct {
	dialect   render.Dialect
	validator render.Validator
}

// WithDialect selects the dialect used to render the statement.
func WithDialect(d Dialect) Option {
	return func(c *config) {
		if d != nil {
			c.dialect = d
		}
	}
}

// WithValidator replaces the syntactic identifier check.
func WithValidator(v Validator) Option {
	return func(c *config) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithIdentifierCheck uses fn for both table names and column references.
func WithIdentifierCheck(fn func(text string) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.validator = render.ValidatorFunc(fn)
		}
	}
}

// WithSchema checks every table and column against s.
func WithSchema(s *Schema) Option {
	return func(c *config) {
		if s != nil {
			c.validator = s
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		dialect:   sqlite.New(),
		validator: render.SyntaxValidator{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// state carries the settings and the sticky error shared by every statement.
type state struct {
	config
	err error
}

// apply runs fn unless an earlier call already failed.
func (s *state) apply(fn func() error) {
	if s.err != nil {
		return
	}
	s.err = fn()
}

// filter is the WHERE / ORDER BY / LIMIT group that statements embed.
type filter struct {
	where *clause.PredicateList
	order *clause.OrderByList
	page  clause.Pagination
}

func newFilter(v render.Validator) filter {
	return filter{
		where: clause.NewPredicateList(v),
		order: clause.NewOrderByList(v),
	}
}

func (f *filter) orderBy(column string, direction []Direction) error {
	var dir Direction
	if len(direction) > 0 {
		dir = direction[0]
	}
	return f.order.Add(column, dir, "")
}

func (f *filter) renderWhere(sql *strings.Builder, d render.Dialect) error {
	if f.where.Len() == 0 {
		return nil
	}
	where, err := f.where.Render(d)
	if err != nil {
		return err
	}
	sql.WriteString(" WHERE ")
	sql.WriteString(where)
	return nil
}

func (f *filter) renderOrder(sql *strings.Builder, d render.Dialect) {
	if f.order.Len() == 0 {
		return
	}
	sql.WriteString(" ORDER BY ")
	sql.WriteString(f.order.Render(d))
}

func (f *filter) renderPage(sql *strings.Builder, d render.Dialect) error {
	page, err := f.page.Render(d, f.order.Len() > 0)
	if err != nil {
		return err
	}
	sql.WriteString(page)
	return nil
}

// renderMutationTail writes ORDER BY and pagination for DELETE and UPDATE,
// which few dialects allow.
func (f *filter) renderMutationTail(sql *strings.Builder, d render.Dialect, kind types.Kind) error {
	caps := d.Capabilities()
	if f.order.Len() > 0 && !caps.MutationOrderBy {
		return render.NewUnsupportedFeatureError(d.Name(), "ORDER BY on "+string(kind))
	}
	if f.page.HasLimit() && !caps.MutationLimit {
		return render.NewUnsupportedFeatureError(d.Name(), "LIMIT on "+string(kind),
			"restrict the rows with a WHERE condition instead")
	}
	if f.page.HasOffset() && !caps.MutationOffset {
		return render.NewUnsupportedFeatureError(d.Name(), "OFFSET on "+string(kind))
	}
	f.renderOrder(sql, d)
	return f.renderPage(sql, d)
}
