package main

import (
	"context"
	"fmt"
	"library/internal/config"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/token"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that prints a session token for
// a member, usable as a bearer token or as the session cookie value.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(ctx, "subject must be a user ID", zap.Error(err))
			}

			issuer, err := token.NewIssuer(cfg.JWT.PrivateKey)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			signed, err := issuer.Issue(domain.UserID(userID), TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
