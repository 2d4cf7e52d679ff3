package v1specs

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const maxBodyBytes = 1 << 20

// Handler handles operations described by the v1 OpenAPI document.
type Handler interface {
	// Register implements register operation.
	//
	// POST /auth/register
	Register(ctx context.Context, req *RegisterRequest) (*RegisterCreated, error)
	// Login implements login operation.
	//
	// POST /auth/login
	Login(ctx context.Context, req *LoginRequest) (*LoginOK, error)
	// Logout implements logout operation.
	//
	// GET /auth/logout, POST /auth/logout
	Logout(ctx context.Context) (*LogoutOK, error)
	// Me implements me operation.
	//
	// GET /auth/me
	Me(ctx context.Context) (*UserOK, error)
	// ListBooks implements listBooks operation.
	//
	// GET /books
	ListBooks(ctx context.Context, params ListBooksParams) (*BookListOK, error)
	// GetBook implements getBook operation.
	//
	// GET /books/{bookId}
	GetBook(ctx context.Context, params GetBookParams) (*BookOK, error)
	// ReserveBook implements reserveBook operation.
	//
	// POST /books/reserve
	ReserveBook(ctx context.Context, req *ReserveRequest) (*ReserveOK, error)
	// MyLoans implements myLoans operation.
	//
	// GET /loans/my-loans
	MyLoans(ctx context.Context) (*LoanListOK, error)
	// RenewLoan implements renewLoan operation.
	//
	// POST /loans/renew
	RenewLoan(ctx context.Context, req *RenewRequest) (*RenewOK, error)
	// MyFines implements myFines operation.
	//
	// GET /fines/my-fines
	MyFines(ctx context.Context) (*FineListOK, error)
	// GetWishlist implements getWishlist operation.
	//
	// GET /user/wishlist
	GetWishlist(ctx context.Context) (*WishlistOK, error)
	// ToggleWishlist implements toggleWishlist operation.
	//
	// POST /user/wishlist
	ToggleWishlist(ctx context.Context, req *WishlistToggleRequest) (*WishlistToggleOK, error)
	// GetDashboard implements getDashboard operation.
	//
	// GET /dashboard
	GetDashboard(ctx context.Context) (*DashboardOK, error)
	// GetLibraryStatus implements getLibraryStatus operation.
	//
	// GET /library/status
	GetLibraryStatus(ctx context.Context) (*LibraryStatusOK, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// SecurityHandler is handler for security parameters.
type SecurityHandler interface {
	// HandleCookieAuth handles cookieAuth security.
	HandleCookieAuth(ctx context.Context, operationName string, t CookieAuth) (context.Context, error)
	// HandleBearerAuth handles bearerAuth security.
	HandleBearerAuth(ctx context.Context, operationName string, t BearerAuth) (context.Context, error)
}

type serverConfig struct {
	prefix        string
	cookieName    string
	meterProvider metric.MeterProvider
}

// ServerOption configures Server.
type ServerOption func(*serverConfig)

// WithPathPrefix mounts every route under prefix.
func WithPathPrefix(prefix string) ServerOption {
	return func(c *serverConfig) { c.prefix = strings.TrimRight(prefix, "/") }
}

// WithMeterProvider sets the meter provider used for request metrics.
func WithMeterProvider(mp metric.MeterProvider) ServerOption {
	return func(c *serverConfig) {
		if mp != nil {
			c.meterProvider = mp
		}
	}
}

// WithCookieName sets the name of the session cookie read by cookieAuth.
func WithCookieName(name string) ServerOption {
	return func(c *serverConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// Server implements http.Handler for the v1 API.
type Server struct {
	h   Handler
	sec SecurityHandler
	cfg serverConfig
	mux *http.ServeMux

	requests metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	cfg := serverConfig{
		cookieName:    "token",
		meterProvider: noop.NewMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{h: h, sec: sec, cfg: cfg, mux: http.NewServeMux()}

	meter := cfg.meterProvider.Meter("library/internal/api/specs/v1specs")
	var err error
	if s.requests, err = meter.Int64Counter("library.http.server.request_count",
		metric.WithDescription("Number of handled requests")); err != nil {
		return nil, errors.Wrap(err, "create request counter")
	}
	if s.failures, err = meter.Int64Counter("library.http.server.errors_count",
		metric.WithDescription("Number of requests answered with an error")); err != nil {
		return nil, errors.Wrap(err, "create error counter")
	}
	if s.duration, err = meter.Float64Histogram("library.http.server.duration",
		metric.WithDescription("Request handling duration"),
		metric.WithUnit("s")); err != nil {
		return nil, errors.Wrap(err, "create duration histogram")
	}

	s.routes()

	return s, nil
}

func (s *Server) routes() {
	p := s.cfg.prefix

	s.route("POST "+p+"/auth/register", "register", false, func(ctx context.Context, r *http.Request) (Response, error) {
		var req RegisterRequest
		if err := decodeBody(r, "register", &req); err != nil {
			return nil, err
		}

		return s.h.Register(ctx, &req)
	})
	s.route("POST "+p+"/auth/login", "login", false, func(ctx context.Context, r *http.Request) (Response, error) {
		var req LoginRequest
		if err := decodeBody(r, "login", &req); err != nil {
			return nil, err
		}

		return s.h.Login(ctx, &req)
	})
	logout := func(ctx context.Context, _ *http.Request) (Response, error) {
		return s.h.Logout(ctx)
	}
	s.route("POST "+p+"/auth/logout", "logout", false, logout)
	s.route("GET "+p+"/auth/logout", "logout", false, logout)
	s.route("GET "+p+"/auth/me", "me", true, func(ctx context.Context, _ *http.Request) (Response, error) {
		return s.h.Me(ctx)
	})
	s.route("GET "+p+"/books", "listBooks", false, func(ctx context.Context, r *http.Request) (Response, error) {
		return s.h.ListBooks(ctx, decodeListBooksParams(r))
	})
	s.route("GET "+p+"/books/{bookId}", "getBook", false, func(ctx context.Context, r *http.Request) (Response, error) {
		id, err := uuid.Parse(r.PathValue("bookId"))
		if err != nil {
			return nil, &DecodeParamsError{OperationName: "getBook", Name: "bookId", Err: err}
		}

		return s.h.GetBook(ctx, GetBookParams{BookId: id})
	})
	s.route("POST "+p+"/books/reserve", "reserveBook", true, func(ctx context.Context, r *http.Request) (Response, error) {
		var req ReserveRequest
		if err := decodeBody(r, "reserveBook", &req); err != nil {
			return nil, err
		}

		return s.h.ReserveBook(ctx, &req)
	})
	s.route("GET "+p+"/loans/my-loans", "myLoans", true, func(ctx context.Context, _ *http.Request) (Response, error) {
		return s.h.MyLoans(ctx)
	})
	s.route("POST "+p+"/loans/renew", "renewLoan", true, func(ctx context.Context, r *http.Request) (Response, error) {
		var req RenewRequest
		if err := decodeBody(r, "renewLoan", &req); err != nil {
			return nil, err
		}

		return s.h.RenewLoan(ctx, &req)
	})
	s.route("GET "+p+"/fines/my-fines", "myFines", true, func(ctx context.Context, _ *http.Request) (Response, error) {
		return s.h.MyFines(ctx)
	})
	s.route("GET "+p+"/user/wishlist", "getWishlist", true, func(ctx context.Context, _ *http.Request) (Response, error) {
		return s.h.GetWishlist(ctx)
	})
	s.route("POST "+p+"/user/wishlist", "toggleWishlist", true, func(ctx context.Context, r *http.Request) (Response, error) {
		var req WishlistToggleRequest
		if err := decodeBody(r, "toggleWishlist", &req); err != nil {
			return nil, err
		}

		return s.h.ToggleWishlist(ctx, &req)
	})
	s.route("GET "+p+"/dashboard", "getDashboard", true, func(ctx context.Context, _ *http.Request) (Response, error) {
		return s.h.GetDashboard(ctx)
	})
	s.route("GET "+p+"/library/status", "getLibraryStatus", false, func(ctx context.Context, _ *http.Request) (Response, error) {
		return s.h.GetLibraryStatus(ctx)
	})

	s.mux.HandleFunc(p+"/", func(w http.ResponseWriter, r *http.Request) {
		s.writeError(r.Context(), w, ErrRouteNotFound)
	})
}

type operationFunc func(ctx context.Context, r *http.Request) (Response, error)

func (s *Server) route(pattern, name string, secured bool, fn operationFunc) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ctx := r.Context()

		var (
			resp Response
			err  error
		)
		if secured {
			ctx, err = s.authenticate(ctx, name, r)
		}
		if err == nil {
			resp, err = fn(ctx, r)
		}

		var code int
		if err != nil {
			code = s.writeError(ctx, w, err)
			s.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", name)))
		} else {
			code = writeResponse(w, resp)
		}

		attrs := metric.WithAttributes(
			attribute.String("operation", name),
			attribute.Int("status_code", code),
		)
		s.requests.Add(ctx, 1, attrs)
		s.duration.Record(ctx, time.Since(started).Seconds(), attrs)
	})
}

// ServeHTTP serves http request as defined by OpenAPI v3 specification.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// authenticate prefers the session cookie and falls back to a bearer token.
// Requests carrying neither are handed to cookieAuth with an empty token.
func (s *Server) authenticate(ctx context.Context, name string, r *http.Request) (context.Context, error) {
	if c, err := r.Cookie(s.cfg.cookieName); err == nil && c.Value != "" {
		next, err := s.sec.HandleCookieAuth(ctx, name, CookieAuth{APIKey: c.Value})
		if err != nil {
			return ctx, &SecurityError{OperationName: name, Security: "cookieAuth", Err: err}
		}

		return next, nil
	}

	if raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && strings.TrimSpace(raw) != "" {
		next, err := s.sec.HandleBearerAuth(ctx, name, BearerAuth{Token: strings.TrimSpace(raw)})
		if err != nil {
			return ctx, &SecurityError{OperationName: name, Security: "bearerAuth", Err: err}
		}

		return next, nil
	}

	next, err := s.sec.HandleCookieAuth(ctx, name, CookieAuth{})
	if err != nil {
		return ctx, &SecurityError{OperationName: name, Security: "cookieAuth", Err: err}
	}

	return next, nil
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) int {
	var code *ErrorStatusCode
	if !errors.As(err, &code) {
		code = s.h.NewError(ctx, err)
	}

	if code.SetCookie.IsSet() {
		w.Header().Add("Set-Cookie", code.SetCookie.Value)
	}
	writeJSON(w, code.StatusCode, &code.Response)

	return code.StatusCode
}

func writeResponse(w http.ResponseWriter, resp Response) int {
	status := http.StatusOK
	if sc, ok := resp.(statusCoder); ok {
		status = sc.statusCode()
	}
	if cs, ok := resp.(cookieSetter); ok {
		if v, set := cs.setCookie(); set {
			w.Header().Add("Set-Cookie", v)
		}
	}
	writeJSON(w, status, resp)

	return status
}

func writeJSON(w http.ResponseWriter, status int, v encoder) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	v.Encode(e)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func decodeBody(r *http.Request, name string, v decoder) error {
	buf, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return &DecodeRequestError{OperationName: name, Err: errors.Wrap(err, "read body")}
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return &DecodeRequestError{OperationName: name, Err: errors.New("request body is empty")}
	}

	if err := v.Decode(jx.DecodeBytes(buf)); err != nil {
		return &DecodeRequestError{OperationName: name, Err: err}
	}

	return nil
}

func decodeListBooksParams(r *http.Request) ListBooksParams {
	q := r.URL.Query()
	var params ListBooksParams

	for name, dst := range map[string]*OptString{
		"search": &params.Search,
		"genre":  &params.Genre,
		"status": &params.Status,
	} {
		if v := q.Get(name); v != "" {
			dst.SetTo(v)
		}
	}
	for name, dst := range map[string]*OptInt{
		"page":  &params.Page,
		"limit": &params.Limit,
	} {
		if v, err := strconv.Atoi(q.Get(name)); err == nil {
			dst.SetTo(v)
		}
	}

	return params
}
