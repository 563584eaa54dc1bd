package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/stmtql/internal/cli"
)

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	cfg        *cli.Config
	configPath string
	logger     *zap.Logger
	newLogger  func(cli.LogConfig, bool) (*zap.Logger, error)

	// Persistent flags
	cfgFile string
	dialect string
	verbose bool
}

func newApp() *app {
	return &app{logger: zap.NewNop(), newLogger: cli.NewLogger}
}

// execute runs root and flushes the logger whether or not the command failed.
func (a *app) execute(root *cobra.Command) error {
	defer func() { _ = a.logger.Sync() }()
	return root.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stmtql",
		Short: "Render SQL statements from declarative documents",
		Long: `stmtql - SQL statement rendering

stmtql reads statement documents and renders them through the stmtql builder
for SQLite, PostgreSQL, MariaDB, or SQL Server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			var err error
			a.cfg, a.configPath, err = cli.LoadConfig(a.cfgFile)
			if err != nil {
				return cli.ConfigError("loading configuration", err)
			}

			a.logger, err = a.newLogger(a.cfg.Log, a.verbose)
			if err != nil {
				return cli.ConfigError("building logger", err)
			}
			a.logger.Debug("configuration loaded",
				zap.String("path", a.configPath),
				zap.String("dialect", a.cfg.Dialect))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover stmtql.yaml)")
	root.PersistentFlags().StringVarP(&a.dialect, "dialect", "d", "", "dialect to render for (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "development logging at debug level")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newDialectsCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}
