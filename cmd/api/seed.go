// AngelaMos | 2026
// seed.go

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/isiolocityfc/backend/internal/match"
	"github.com/isiolocityfc/backend/internal/seed"
	"github.com/isiolocityfc/backend/internal/user"
)

const defaultSeedTimeout = 30 * time.Second

func NewSeedCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin account and reference teams and venue",
		Long: `Creates the administrator from ADMIN_EMAIL, ADMIN_PASSWORD and
ADMIN_NAME, plus the home club, two opponents and the home stadium. Safe to
run repeatedly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return runSeed(ctx)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultSeedTimeout, "timeout for database operations")

	return cmd
}

func runSeed(ctx context.Context) error {
	cfg, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
	}

	seeder := seed.New(
		user.NewService(user.NewRepository(db.DB)),
		match.NewService(match.NewRepository(db.DB)),
		logger,
	)

	_, err = seeder.Run(ctx, cfg.Seed)
	return err
}
