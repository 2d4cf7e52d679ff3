package v1handler

import (
	"context"
	"errors"
	"library/internal/api/specs/v1specs"
	"library/internal/config"
	"library/internal/library"
	"library/pkg/logger"
	"library/pkg/serrors"
	"library/pkg/token"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// CookieOptions describes the session cookie handed out on login.
type CookieOptions struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// NewCookieOptions reads the cookie settings and token lifetime from cfg.
func NewCookieOptions(cfg *config.Config) CookieOptions {
	return CookieOptions{
		Name:   cfg.Cookie.Name,
		Secure: cfg.Cookie.Secure,
		TTL:    cfg.JWT.TTL,
	}
}

type Deps struct {
	Library library.Library
	Issuer  *token.Issuer
	Cookie  CookieOptions
}

type Handler struct {
	library library.Library
	issuer  *token.Issuer
	cookie  CookieOptions
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	cookie := deps.Cookie
	if cookie.Name == "" {
		cookie.Name = "token"
	}
	if cookie.TTL == 0 {
		cookie.TTL = 24 * time.Hour
	}

	return &Handler{
		library: deps.Library,
		issuer:  deps.Issuer,
		cookie:  cookie,
	}
}

var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "Not authenticated",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrInternal:     "internal error",
}

func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	var (
		decodeReq    *v1specs.DecodeRequestError
		decodeParams *v1specs.DecodeParamsError
		security     *v1specs.SecurityError
	)
	switch {
	case errors.As(err, &decodeReq):
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	case errors.As(err, &decodeParams):
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", decodeParams.Name)
	case errors.Is(err, v1specs.ErrRouteNotFound):
		err = serrors.Wrap(serrors.ErrNotFound, err, "resource not found")
	case errors.As(err, &security) && serrors.KindOf(err) == serrors.ErrInternal:
		err = serrors.Wrap(serrors.ErrUnauthorized, err, "Not authenticated")
	}

	kind := serrors.KindOf(err)
	message := defaultMessages[kind]
	var semantic *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &semantic) && semantic.Message() != "" {
		message = semantic.Message()
	}
	if message == "" {
		message = defaultMessages[serrors.ErrInternal]
	}

	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.String("kind", kind.Error()), zap.Error(err))
	}

	res := &v1specs.ErrorStatusCode{
		StatusCode: serrors.HTTPStatus(kind),
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
	if kind == serrors.ErrUnauthorized {
		res.SetCookie = v1specs.NewOptString(h.clearCookie())
	}

	return res
}

func (h *Handler) sessionCookie(value string) string {
	c := http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL / time.Second),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return c.String()
}

func (h *Handler) clearCookie() string {
	c := http.Cookie{
		Name:     h.cookie.Name,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return c.String()
}
