package main

import (
	"context"
	"library/internal/config"
	"library/internal/seed"
	"library/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Wipes the database and inserts demo data",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			password, _ := cmd.Flags().GetString("password")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if _, err := seed.Run(ctx, strg, seed.Options{
				Password:  password,
				DailyRate: cfg.Fines.DailyRate,
			}); err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}
		},
	}

	cmd.Flags().String("password", seed.DefaultPassword, "Password of every demo member")

	return cmd
}
