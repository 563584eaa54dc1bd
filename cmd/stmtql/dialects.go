package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zoobzio/stmtql"
	"github.com/zoobzio/stmtql/internal/cli"
)

func newDialectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List dialects and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DIALECT\tNULLS ORDERING\tPAGINATION\tMUTATION ORDER BY\tMUTATION LIMIT\tMUTATION OFFSET\tUPSERT")
			for _, name := range cli.DialectNames() {
				d, err := cli.Dialect(name)
				if err != nil {
					return err
				}
				caps := d.Capabilities()
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					name,
					nativeOrEmulated(caps.NullsOrdering),
					pagination(caps),
					yesNo(caps.MutationOrderBy),
					yesNo(caps.MutationLimit),
					yesNo(caps.MutationOffset),
					upsert(caps))
			}
			return w.Flush()
		},
	}
}

func nativeOrEmulated(native bool) string {
	if native {
		return "native"
	}
	return "emulated"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pagination(caps stmtql.Capabilities) string {
	if caps.Pagination == stmtql.PaginationOffsetFetch {
		return "OFFSET/FETCH"
	}
	return "LIMIT/OFFSET"
}

func upsert(caps stmtql.Capabilities) string {
	switch caps.Upsert {
	case stmtql.UpsertOnConflict:
		return "ON CONFLICT"
	case stmtql.UpsertDuplicateKey:
		return "ON DUPLICATE KEY"
	default:
		return "none"
	}
}
