package main

import (
	"context"
	"database/sql"
	root "library"
	"library/internal/config"
	"library/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations using goose. Passing --version migrates up or down to that version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			version, _ := cmd.Flags().GetInt64("version")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}

			db := strg.DB.(*sql.DB) //nolint: forcetypeassert
			var err error
			if version > 0 {
				err = goose.UpToContext(ctx, db, "migrations", version)
				if err == nil {
					err = goose.DownToContext(ctx, db, "migrations", version)
				}
			} else {
				err = goose.UpContext(ctx, db, "migrations")
			}
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			current, err := goose.GetDBVersionContext(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not read migration version", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Int64("version", current))
		},
	}

	cmd.Flags().Int64("version", 0, "Target migration version (0 = latest)")

	return cmd
}
