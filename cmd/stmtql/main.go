// Package main provides a CLI that renders declarative statement documents
// to SQL for a chosen dialect.
//
// Usage:
//
//	stmtql [flags] <command>
//
// Commands:
//   - render: Render a YAML or JSON statement document
//   - dialects: List dialects and their capabilities
//   - config show: Print the effective configuration
package main

import "github.com/zoobzio/stmtql/internal/cli"

func main() {
	a := newApp()
	if err := a.execute(a.rootCmd()); err != nil {
		cli.ExitWithError(err)
	}
}
