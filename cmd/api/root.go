// AngelaMos | 2026
// root.go

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/isiolocityfc/backend/internal/config"
	"github.com/isiolocityfc/backend/internal/core"
)

var configFile string

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icfc-api",
		Short: "Isiolo City FC GraphQL API",
		Long: `Serves the Isiolo City FC GraphQL API: news, squad, fixtures,
foundation programs, the club shop and sponsors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadDotEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}

// loadDotEnv reads .env into the process environment. Variables already
// set win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// bootstrap loads config, installs the logger and opens the database. Every
// subcommand starts here.
func bootstrap(ctx context.Context) (*config.Config, *slog.Logger, *core.Database, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	return cfg, logger, db, nil
}
