package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/stmtql"
	"github.com/zoobzio/stmtql/mariadb"
	"github.com/zoobzio/stmtql/mssql"
	"github.com/zoobzio/stmtql/postgres"
	"github.com/zoobzio/stmtql/sqlite"
)

var dialects = map[string]func() stmtql.Dialect{
	"sqlite":   func() stmtql.Dialect { return sqlite.New() },
	"postgres": func() stmtql.Dialect { return postgres.New() },
	"mariadb":  func() stmtql.Dialect { return mariadb.New() },
	"mssql":    func() stmtql.Dialect { return mssql.New() },
}

var dialectAliases = map[string]string{
	"postgresql": "postgres",
	"pg":         "postgres",
	"mysql":      "mariadb",
	"sqlserver":  "mssql",
}

// Dialect returns the dialect registered under name. Matching ignores case.
func Dialect(name string) (stmtql.Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := dialectAliases[key]; ok {
		key = alias
	}
	ctor, ok := dialects[key]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %s)", name, strings.Join(DialectNames(), ", "))
	}
	return ctor(), nil
}

// DialectNames returns the registered dialect names in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
