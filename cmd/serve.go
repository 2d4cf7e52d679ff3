package main

import (
	"context"
	"errors"
	"library/internal/api"
	"library/internal/api/handler/v1handler"
	"library/internal/config"
	"library/internal/fines"
	"library/internal/library"
	"library/pkg/logger"
	"library/pkg/metrics"
	"library/pkg/storage"
	"library/pkg/token"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	strg storage.Storage,
	mp metric.MeterProvider) func(ctx context.Context) {
	reconciler, err := fines.New(strg, fines.NewOptions(cfg, metrics.Meter(mp, "library/internal/fines")))
	if err != nil {
		logger.Fatal(ctx, "could not create fine reconciler", zap.Error(err))
	}

	issuer, err := token.NewIssuer(cfg.JWT.PrivateKey)
	if err != nil {
		logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Library: library.New(strg, reconciler, library.NewOptions(cfg)),
			Issuer:  issuer,
			Cookie:  v1handler.NewCookieOptions(cfg),
		},
		MeterProvider: mp,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewMeterProvider(nil)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, strg, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
