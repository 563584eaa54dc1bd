package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/stmtql"
	"github.com/zoobzio/stmtql/internal/cli"
	"github.com/zoobzio/stmtql/internal/document"
)

func newRenderCmd(a *app) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a statement document to SQL",
		Long: `Render a YAML or JSON statement document to SQL.

Use "-" as FILE to read the document from stdin.`,
		Example: `  # Render for the configured dialect
  stmtql render query.yaml

  # Render for SQL Server
  stmtql render --dialect mssql query.yaml

  # Check identifiers against a schema file
  stmtql render --schema schema.yaml query.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return cli.DocumentError("reading document", err)
			}

			dialect, err := cli.Dialect(a.cfg.ResolvedDialect(a.dialect))
			if err != nil {
				return cli.ConfigError("selecting dialect", err)
			}
			opts := []stmtql.Option{stmtql.WithDialect(dialect)}

			if path := resolveString(schemaPath, a.cfg.Schema); path != "" {
				schema, err := cli.LoadSchema(path)
				if err != nil {
					return cli.ConfigError("loading schema", err)
				}
				opts = append(opts, stmtql.WithSchema(schema))
			}

			doc, err := document.Parse(data)
			if err != nil {
				return cli.DocumentError("parsing document", err)
			}

			log := a.logger.With(zap.String("dialect", dialect.Name()), zap.String("kind", doc.Kind))
			stmt, err := document.Build(doc, opts...)
			if err != nil {
				log.Error("building statement failed", zap.Error(err))
				return cli.RenderError("building statement", err)
			}
			sql, err := stmt.Statement()
			if err != nil {
				log.Error("rendering statement failed", zap.Error(err))
				return cli.RenderError("rendering statement", err)
			}

			log.Debug("statement rendered", zap.Int("bytes", len(sql)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sql)
			return err
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "schema file for identifier checks (overrides config)")
	return cmd
}

func readDocument(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
