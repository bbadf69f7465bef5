package main

import (
	"context"
	"fmt"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded catalog schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), root, func(ctx context.Context, db database.DB, lg *zap.Logger) error {
				return migration.Runner{Logger: lg}.Run(ctx, db.SQLDB())
			})
		},
	}
}

func newSeedCmd(root *rootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored catalog with the built-in one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), root, func(ctx context.Context, db database.DB, lg *zap.Logger) error {
				if migrate {
					if err := (migration.Runner{Logger: lg}).Run(ctx, db.SQLDB()); err != nil {
						return err
					}
				}
				return seeder.Runner{Seeders: seeder.Defaults(), Logger: lg}.Run(ctx, db)
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before seeding")
	return cmd
}

func withDatabase(ctx context.Context, root *rootOptions, fn func(context.Context, database.DB, *zap.Logger) error) error {
	lg, err := root.logger()
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	db, err := dbpostgres.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	return fn(ctx, db, lg)
}
