package v1handler_test

import (
	"context"
	"errors"
	"library/internal/api/handler/v1handler"
	"library/internal/api/specs/v1specs"
	"library/pkg/logger"
	"library/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
	require.False(t, res.SetCookie.IsSet())
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "Book is not available for reservation")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "Book is not available for reservation", res.Response.Message)
}

func TestNewError_SemanticWrap_UnauthorizedClearsCookie(t *testing.T) {
	h := v1handler.New(v1handler.Deps{Cookie: v1handler.CookieOptions{Name: "session"}})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "Token expired")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "Token expired", res.Response.Message)
	require.True(t, res.SetCookie.IsSet())
	require.Contains(t, res.SetCookie.Value, "session=;")
	require.Contains(t, res.SetCookie.Value, "Max-Age=0")
}

func TestNewError_InternalKind_HidesMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.Wrap(serrors.ErrInternal, errors.New("db down"), "could not load"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_TransportErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, &v1specs.DecodeRequestError{OperationName: "login", Err: errors.New("eof")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "invalid request body", res.Response.Message)

	res = h.NewError(ctx, &v1specs.DecodeParamsError{OperationName: "getBook", Name: "bookId", Err: errors.New("bad uuid")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "invalid bookId", res.Response.Message)

	res = h.NewError(ctx, v1specs.ErrRouteNotFound)
	require.Equal(t, 404, res.StatusCode)

	res = h.NewError(ctx, &v1specs.SecurityError{OperationName: "me", Security: "cookieAuth", Err: errors.New("odd")})
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, "Not authenticated", res.Response.Message)

	res = h.NewError(ctx, &v1specs.SecurityError{
		OperationName: "me",
		Security:      "cookieAuth",
		Err:           serrors.With(serrors.ErrUnauthorized, "Invalid token"),
	})
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, "Invalid token", res.Response.Message)
}
