package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"team_task/pkg/config"
	"team_task/pkg/logger"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// app holds what every subcommand needs after configuration is loaded.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "team-task",
		Short:         "Team and task management service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.logCloser.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	var migrateFirst bool
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if migrateFirst {
				if err := a.migrate(cmd.Context()); err != nil {
					return err
				}
			}
			return a.serve(cmd.Context())
		},
	}
	serve.Flags().BoolVar(&migrateFirst, "migrate", false, "apply the database schema before serving")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.migrate(cmd.Context())
		},
	}

	root.AddCommand(serve, migrate)

	if err := root.Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error("command failed", slog.String("error", err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	output, closer := logger.Output(cfg.Log.FileOutput())
	a.cfg = cfg
	a.logCloser = closer
	a.logger = logger.New(cfg.Log.Level, cfg.Log.Format, output)
	slog.SetDefault(a.logger)
	return nil
}
