package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zoobzio/stmtql"
	"github.com/zoobzio/stmtql/internal/cli"
)

// run executes the CLI from an isolated directory and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runApp(t, newApp(), stdin, args...)
}

func runApp(t *testing.T, a *app, stdin string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	oldCwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })

	var out bytes.Buffer
	cmd := a.rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = a.execute(cmd)
	return out.String(), err
}

// syncRecorder is a zap sink that counts Sync calls.
type syncRecorder struct {
	bytes.Buffer
	syncs int
}

func (s *syncRecorder) Sync() error {
	s.syncs++
	return nil
}

func recordingApp(sink *syncRecorder) *app {
	a := newApp()
	a.newLogger = func(cli.LogConfig, bool) (*zap.Logger, error) {
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zapcore.DebugLevel)
		return zap.New(core), nil
	}
	return a
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const selectDoc = `
kind: select
columns: [{name: id}]
from: [{name: users}]
order_by:
  - {column: age, direction: asc, nulls: last}
limit: 5
`

func TestRender_DefaultDialect(t *testing.T) {
	out, err := run(t, "", "render", writeFile(t, "q.yaml", selectDoc))
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users ORDER BY CASE WHEN age IS NULL THEN 1 ELSE 0 END, age ASC LIMIT 5\n", out)
}

func TestRender_DialectFlag(t *testing.T) {
	out, err := run(t, "", "render", "--dialect", "mssql", writeFile(t, "q.yaml", selectDoc))
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id FROM users ORDER BY CASE WHEN age IS NULL THEN 1 ELSE 0 END, age ASC OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY\n",
		out)
}

func TestRender_Stdin(t *testing.T) {
	out, err := run(t, `{"kind": "delete", "table": "t", "where": [{"column": "a", "value": null}]}`, "render", "-", "-d", "postgres")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM t WHERE a IS NULL\n", out)
}

func TestRender_Schema(t *testing.T) {
	schema := writeFile(t, "schema.yaml", "tables:\n  - name: users\n    columns: [{name: id}]\n")

	_, err := run(t, "", "render", "--schema", schema, writeFile(t, "q.yaml", selectDoc))
	require.Error(t, err)
	assert.ErrorIs(t, err, stmtql.ErrInvalidIdentifier)
	assert.Equal(t, cli.ExitRender, cli.ExitCode(err))
}

func TestRender_Errors(t *testing.T) {
	_, err := run(t, "", "render", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitDocument, cli.ExitCode(err))

	_, err = run(t, "", "render", "-d", "oracle", writeFile(t, "q.yaml", selectDoc))
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfig, cli.ExitCode(err))

	_, err = run(t, "", "render", "-d", "mssql", writeFile(t, "q.yaml", "kind: delete\ntable: t\nlimit: 1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, stmtql.ErrUnsupportedFeature)

	_, err = run(t, "", "render", "--config", "/nonexistent/stmtql.yaml", writeFile(t, "q.yaml", selectDoc))
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfig, cli.ExitCode(err))
}

func TestRender_SyncsLoggerOnFailure(t *testing.T) {
	sink := &syncRecorder{}
	_, err := runApp(t, recordingApp(sink), "", "render", "-d", "mssql", writeFile(t, "q.yaml", "kind: delete\ntable: t\nlimit: 1"))
	require.Error(t, err)

	assert.Equal(t, 1, sink.syncs)
	assert.Contains(t, sink.String(), "statement failed")
	assert.Contains(t, sink.String(), `"dialect":"mssql"`)
}

func TestRender_SyncsLoggerOnSuccess(t *testing.T) {
	sink := &syncRecorder{}
	out, err := runApp(t, recordingApp(sink), "", "render", writeFile(t, "q.yaml", selectDoc))
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	assert.Equal(t, 1, sink.syncs)
	assert.Contains(t, sink.String(), "statement rendered")
}

func TestDialects(t *testing.T) {
	out, err := run(t, "", "dialects")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "DIALECT"))
	assert.Contains(t, lines[1], "mariadb")
	assert.Contains(t, lines[1], "ON DUPLICATE KEY")
	assert.Contains(t, lines[2], "OFFSET/FETCH")
	assert.Contains(t, lines[3], "native")
	assert.Contains(t, lines[4], "sqlite")
}

func TestConfigShow(t *testing.T) {
	cfgPath := writeFile(t, "stmtql.yaml", "dialect: postgres\n")

	out, err := run(t, "", "--config", cfgPath, "config", "show", "--source")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: "+cfgPath)
	assert.Contains(t, out, "dialect: postgres")
	assert.Contains(t, out, "level: info")
}
