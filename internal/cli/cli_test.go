package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/stmtql"
)

func TestDialect(t *testing.T) {
	tests := map[string]string{
		"sqlite":     "sqlite",
		"Postgres":   "postgres",
		"postgresql": "postgres",
		" mysql ":    "mariadb",
		"sqlserver":  "mssql",
		"MSSQL":      "mssql",
	}
	for in, want := range tests {
		d, err := Dialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d.Name(), in)
	}

	_, err := Dialect("oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mariadb, mssql, postgres, sqlite")
}

func TestDialectNames(t *testing.T) {
	assert.Equal(t, []string{"mariadb", "mssql", "postgres", "sqlite"}, DialectNames())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitConfig, ExitCode(ConfigError("loading", errors.New("boom"))))
	assert.Equal(t, ExitDocument, ExitCode(DocumentError("parsing", nil)))
	assert.Equal(t, ExitGeneral, ExitCode(errors.New("plain")))

	wrapped := RenderError("rendering", stmtql.ErrUnbalancedBlock)
	assert.ErrorIs(t, wrapped, stmtql.ErrUnbalancedBlock)
	assert.Equal(t, "rendering: unbalanced block", wrapped.Error())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1), "debug must be disabled at warn level")

	logger, err = NewLogger(LogConfig{Level: "info", Format: "console"}, false)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = NewLogger(LogConfig{Level: "bogus"}, true)
	require.NoError(t, err, "verbose ignores the configured level")
	assert.True(t, logger.Core().Enabled(-1))

	_, err = NewLogger(LogConfig{Level: "bogus"}, false)
	require.Error(t, err)

	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"}, false)
	require.Error(t, err)
}

func TestParseSchema(t *testing.T) {
	schema, err := ParseSchema([]byte(`
name: shop
tables:
  - name: users
    columns:
      - {name: id, type: bigint}
      - {name: email}
  - name: orders
    columns:
      - {name: user_id, type: bigint}
`))
	require.NoError(t, err)
	assert.True(t, schema.HasTable("users"))
	assert.True(t, schema.HasColumn("email"))
	assert.False(t, schema.HasTable("payments"))

	_, err = stmtql.NewSelect(stmtql.WithSchema(schema)).
		From("users").
		Where("email", "=", "a@b.c").
		Statement()
	require.NoError(t, err)

	_, err = stmtql.NewSelect(stmtql.WithSchema(schema)).
		From("users").
		Where("password", "=", "x").
		Statement()
	assert.ErrorIs(t, err, stmtql.ErrInvalidIdentifier)
}

func TestParseSchema_PlainScalarNames(t *testing.T) {
	schema, err := ParseSchema([]byte("tables:\n  - name: on\n    columns: [{name: y}, {name: no}]\n"))
	require.NoError(t, err)
	assert.True(t, schema.HasTable("on"))
	assert.True(t, schema.HasColumn("y"))
	assert.True(t, schema.HasColumn("no"))
}

func TestParseSchema_Errors(t *testing.T) {
	_, err := ParseSchema([]byte("name: empty\ntables: []"))
	require.Error(t, err)

	_, err = ParseSchema([]byte("tables:\n  - columns: [{name: id}]"))
	require.Error(t, err)

	_, err = ParseSchema([]byte("tabels: []"))
	require.Error(t, err)

	_, err = ParseSchema(nil)
	require.Error(t, err)
}

func TestLoadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`{"tables": [{"name": "t", "columns": [{"name": "c"}]}]}`), 0o644))

	schema, err := LoadSchema(path)
	require.NoError(t, err)
	assert.True(t, schema.HasColumn("c"))

	_, err = LoadSchema(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
