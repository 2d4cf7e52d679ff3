package v1handler

import (
	"context"
	"library/internal/api/specs/v1specs"
	"library/internal/config"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/serrors"
	"library/pkg/token"

	"go.uber.org/zap"
)

type ctxKey string

// UserIDKey is the context key holding the authenticated domain.UserID.
const UserIDKey ctxKey = "userID"

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type SecHandler struct {
	verifier *token.Verifier
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	verifier, err := token.NewVerifier(opts.PublicKey)
	if err != nil {
		return nil, err
	}

	return &SecHandler{verifier: verifier}, nil
}

func (s *SecHandler) HandleCookieAuth(
	ctx context.Context,
	operationName string,
	t v1specs.CookieAuth) (context.Context, error) {
	return s.authenticate(ctx, operationName, t.APIKey)
}

func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName string,
	t v1specs.BearerAuth) (context.Context, error) {
	return s.authenticate(ctx, operationName, t.Token)
}

func (s *SecHandler) authenticate(ctx context.Context, operationName, raw string) (context.Context, error) {
	userID, err := s.verifier.Verify(raw)
	if err != nil {
		return ctx, err
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = logger.WithFields(ctx,
		zap.String("userID", userID.String()),
		zap.String("operation", operationName))

	return ctx, nil
}

// GetUserIDFromContext returns the user the request was authenticated as.
func GetUserIDFromContext(ctx context.Context) (domain.UserID, error) {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)
	if !ok {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "Not authenticated")
	}

	return userID, nil
}
