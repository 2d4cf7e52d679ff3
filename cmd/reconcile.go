package main

import (
	"context"
	"library/internal/config"
	"library/internal/fines"
	"library/pkg/domain"
	"library/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reconcileCommand runs one overdue reconciliation pass for a member, the
// same pass the loan and fine listings run before answering.
func reconcileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Marks a member's overdue loans and refreshes their pending fines",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			raw, _ := cmd.Flags().GetString("user")

			userID, err := uuid.Parse(raw)
			if err != nil {
				logger.Fatal(ctx, "user must be a user ID", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reconciler, err := fines.New(strg, fines.NewOptions(cfg, nil))
			if err != nil {
				logger.Fatal(ctx, "could not create reconciler", zap.Error(err))
			}

			ctx = logger.WithFields(ctx, zap.String("userID", raw))
			if err := reconciler.Reconcile(ctx, domain.UserID(userID)); err != nil {
				logger.Fatal(ctx, "reconciliation failed", zap.Error(err))
			}
			logger.Info(ctx, "reconciliation finished")
		},
	}

	cmd.Flags().String("user", "", "User ID to reconcile")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
