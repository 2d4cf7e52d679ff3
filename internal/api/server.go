// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the library service.
package api

import (
	_ "embed"
	"fmt"
	"library/internal/api/handler/v1handler"
	"library/internal/api/specs/v1specs"
	"library/internal/config"
	"library/pkg/controller"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const requestTimeoutBody = `{"code":"INTERNAL","message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the origins allowed to call the API from a browser.
	AllowedOrigins []string
	// CookieName is the session cookie read by cookie authentication.
	CookieName string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		CookieName:        cfg.Cookie.Name,
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider records request metrics. It should export to the
	// registry served at MetricsPath.
	MeterProvider metric.MeterProvider
}

// NewHandler builds the root handler:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - pprof endpoints for profiling
// wrapped with CORS and logging middlewares and a request timeout.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Library Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Srv, err := v1specs.NewServer(v1handler.New(deps.Deps),
		secHandler,
		v1specs.WithMeterProvider(deps.MeterProvider),
		v1specs.WithCookieName(opts.CookieName),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	mux.Handle("/v1/", v1Srv)

	// pprof
	mux.Handle(controller.PprofPath, controller.PprofMux())

	handler := controller.WithCORS(opts.AllowedOrigins, mux)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, requestTimeoutBody)
	}

	return controller.WithLogger(handler), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
