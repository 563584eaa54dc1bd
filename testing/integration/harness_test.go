package integration

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/stmtql"
)

// database is the slice of a driver the scenarios need.
type database interface {
	Exec(ctx context.Context, t *testing.T, sql string)
	// Column runs a query and returns its first column as text.
	Column(ctx context.Context, t *testing.T, sql string) []string
}

// target binds a database to the dialect that renders for it.
type target struct {
	dialect stmtql.Dialect
	db      database
	ddl     []string
}

type user struct {
	id       int
	username string
	email    string
	age      any
	active   bool
}

type order struct {
	id     int
	userID int
	total  float64
	status string
}

var users = []user{
	{1, "alice", "alice@example.com", 30, true},
	{2, "bob", "bob@example.com", nil, true},
	{3, "charlie", "charlie@example.com", 35, false},
	{4, "diana", "diana@example.com", 28, true},
}

var orders = []order{
	{1, 1, 99.99, "completed"},
	{2, 1, 149.99, "completed"},
	{3, 2, 49.99, "pending"},
	{4, 4, 199.99, "completed"},
}

// createTestSchema mirrors the tables created by every target.
func createTestSchema(t *testing.T) *stmtql.Schema {
	t.Helper()

	project := dbml.NewProject("test")

	u := dbml.NewTable("users")
	u.AddColumn(dbml.NewColumn("id", "bigint"))
	u.AddColumn(dbml.NewColumn("username", "varchar"))
	u.AddColumn(dbml.NewColumn("email", "varchar"))
	u.AddColumn(dbml.NewColumn("age", "int"))
	u.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(u)

	o := dbml.NewTable("orders")
	o.AddColumn(dbml.NewColumn("id", "bigint"))
	o.AddColumn(dbml.NewColumn("user_id", "bigint"))
	o.AddColumn(dbml.NewColumn("total", "numeric"))
	o.AddColumn(dbml.NewColumn("status", "varchar"))
	project.AddTable(o)

	schema, err := stmtql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return schema
}

func (tg target) render(t *testing.T, stmt stmtql.Statement) string {
	t.Helper()
	sql, err := stmt.Statement()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return sql
}

// reset recreates the tables and seeds them through rendered INSERTs.
func (tg target) reset(ctx context.Context, t *testing.T) {
	t.Helper()
	for _, ddl := range tg.ddl {
		tg.db.Exec(ctx, t, ddl)
	}

	opt := stmtql.WithDialect(tg.dialect)
	for _, u := range users {
		tg.db.Exec(ctx, t, tg.render(t, stmtql.NewInsert(opt).
			Into("users").
			Column("id", u.id).
			Column("username", u.username).
			Column("email", u.email).
			Column("age", u.age).
			Column("active", u.active)))
	}
	for _, o := range orders {
		tg.db.Exec(ctx, t, tg.render(t, stmtql.NewInsert(opt).
			Into("orders").
			Column("id", o.id).
			Column("user_id", o.userID).
			Column("total", o.total).
			Column("status", o.status)))
	}
}

type readCase struct {
	name  string
	build func(opts ...stmtql.Option) stmtql.Statement
	// unordered results are sorted before comparison.
	unordered bool
	want      []string
}

var readCases = []readCase{
	{
		name: "null normalization",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").Where("age", "=", nil)
		},
		want: []string{"bob"},
	},
	{
		name: "not null",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").
				Where("age", "!=", nil).
				OrderBy("age", "ASC")
		},
		want: []string{"diana", "alice", "charlie"},
	},
	{
		name: "nulls first",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").
				OrderByNulls("age", "ASC", "NULLS FIRST")
		},
		want: []string{"bob", "diana", "alice", "charlie"},
	},
	{
		name: "nulls last descending",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").
				OrderByNulls("age", "DESC", "NULLS LAST")
		},
		want: []string{"charlie", "alice", "diana", "bob"},
	},
	{
		name: "blocks",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").
				Where("active", "=", true).
				WhereBlock("(").
				Where("age", ">", 29).
				Where("age", "=", nil, "OR").
				WhereBlock(")").
				OrderBy("username")
		},
		want: []string{"alice", "bob"},
	},
	{
		name: "in list",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").
				Where("username", "IN", []string{"diana", "alice"}).
				OrderBy("username")
		},
		want: []string{"alice", "diana"},
	},
	{
		name: "join with value predicate",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Distinct(true).
				Column("u.username").
				From("users", "u").
				Join("orders", "o").
				JoinOn("o.user_id", "=", "u.id").
				JoinOnValue("o.status", "=", "completed").
				OrderBy("u.username")
		},
		want: []string{"alice", "diana"},
	},
	{
		name: "left join anti",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).
				Column("u.username").
				From("users", "u").
				LeftJoin("orders", "o").
				JoinOn("o.user_id", "=", "u.id").
				Where("o.id", "=", nil)
		},
		want: []string{"charlie"},
	},
	{
		name: "group by having",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).
				Column("u.username").
				From("users", "u").
				Join("orders", "o").
				JoinOn("o.user_id", "=", "u.id").
				GroupBy("u.username").
				Having("COUNT(o.id)", ">", 1)
		},
		want: []string{"alice"},
	},
	{
		name: "limit and offset",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").
				OrderBy("username").
				Limit(2).
				Offset(1)
		},
		want: []string{"bob", "charlie"},
	},
	{
		name: "offset only",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			return stmtql.NewSelect(opts...).Column("username").From("users").
				OrderBy("username").
				Offset(3)
		},
		want: []string{"diana"},
	},
	{
		name: "union",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			nulls := stmtql.NewSelect(opts...).Column("username").From("users").Where("age", "=", nil)
			return stmtql.NewSelect(opts...).Column("username").From("users").
				Where("age", "<", 29).
				CombineWith(nulls, "UNION")
		},
		unordered: true,
		want:      []string{"bob", "diana"},
	},
	{
		name: "except",
		build: func(opts ...stmtql.Option) stmtql.Statement {
			// A failed render yields "", which Combine rejects.
			active, _ := stmtql.NewSelect(opts...).Column("username").From("users").
				Where("active", "=", true).
				Statement()
			return stmtql.NewSelect(opts...).Column("username").From("users").
				Combine(active, "EXCEPT")
		},
		unordered: true,
		want:      []string{"charlie"},
	},
}

// runReadCases checks every read scenario against tg.
func runReadCases(ctx context.Context, t *testing.T, tg target) {
	tg.reset(ctx, t)
	schema := createTestSchema(t)

	for _, tc := range readCases {
		t.Run(tc.name, func(t *testing.T) {
			sql := tg.render(t, tc.build(stmtql.WithDialect(tg.dialect), stmtql.WithSchema(schema)))
			got := tg.db.Column(ctx, t, sql)
			if tc.unordered {
				slices.Sort(got)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("rows = %v, want %v\nSQL: %s", got, tc.want, sql)
			}
		})
	}
}

// runMutationCases checks INSERT, UPDATE, DELETE and upsert against tg.
func runMutationCases(ctx context.Context, t *testing.T, tg target) {
	opt := stmtql.WithDialect(tg.dialect)
	count := func(t *testing.T, table string) string {
		t.Helper()
		rows := tg.db.Column(ctx, t, tg.render(t, stmtql.NewSelect(opt).Column("COUNT(*)").From(table)))
		return rows[0]
	}
	lookup := func(t *testing.T, column string, id int) []string {
		t.Helper()
		return tg.db.Column(ctx, t, tg.render(t, stmtql.NewSelect(opt).Column(column).From("users").Where("id", "=", id)))
	}

	t.Run("update", func(t *testing.T) {
		tg.reset(ctx, t)
		tg.db.Exec(ctx, t, tg.render(t, stmtql.NewUpdate(opt).
			Table("users").
			Set("email", "bob@new.example").
			Set("age", 41).
			Where("username", "=", "bob")))

		if got := lookup(t, "email", 2); !slices.Equal(got, []string{"bob@new.example"}) {
			t.Errorf("email = %v", got)
		}
	})

	t.Run("update from column", func(t *testing.T) {
		tg.reset(ctx, t)
		tg.db.Exec(ctx, t, tg.render(t, stmtql.NewUpdate(opt).
			Table("users").
			SetColumn("email", "username").
			Where("age", "=", nil)))

		if got := lookup(t, "email", 2); !slices.Equal(got, []string{"bob"}) {
			t.Errorf("email = %v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		tg.reset(ctx, t)
		tg.db.Exec(ctx, t, tg.render(t, stmtql.NewDelete(opt).
			Table("orders").
			Where("status", "=", "pending").
			Where("total", ">", 1000, "OR")))

		if got := count(t, "orders"); got != "3" {
			t.Errorf("orders = %s, want 3", got)
		}
	})

	t.Run("literal isolation", func(t *testing.T) {
		tg.reset(ctx, t)
		hostile := `O'Reilly \ '; DROP TABLE users; --`
		tg.db.Exec(ctx, t, tg.render(t, stmtql.NewInsert(opt).
			Into("users").
			Column("id", 9).
			Column("username", hostile).
			Column("email", `\'`).
			Column("active", false)))

		if got := lookup(t, "username", 9); !slices.Equal(got, []string{hostile}) {
			t.Errorf("username = %q, want %q", got, hostile)
		}
		if got := lookup(t, "email", 9); !slices.Equal(got, []string{`\'`}) {
			t.Errorf("email = %q", got)
		}
		if got := count(t, "users"); got != "5" {
			t.Errorf("users = %s, want 5", got)
		}
	})

	t.Run("upsert", func(t *testing.T) {
		tg.reset(ctx, t)
		stmt := stmtql.NewUpsert(opt).
			Into("users").
			Column("id", 1).
			Column("username", "alice").
			Column("email", "alice@new.example").
			Column("active", true).
			Conflict("id")

		sql, err := stmt.Statement()
		if tg.dialect.Capabilities().Upsert == stmtql.UpsertNone {
			if !errors.Is(err, stmtql.ErrUnsupportedFeature) {
				t.Fatalf("err = %v, want unsupported feature", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		tg.db.Exec(ctx, t, sql)

		if got := lookup(t, "email", 1); !slices.Equal(got, []string{"alice@new.example"}) {
			t.Errorf("email = %v", got)
		}
		if got := count(t, "users"); got != "4" {
			t.Errorf("users = %s, want 4", got)
		}
	})
}

// text normalizes a scanned value.
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
