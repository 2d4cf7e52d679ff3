// Package logger wraps zap with context-scoped loggers. Request handlers
// attach fields (request ID, user ID) to the context once and every log
// line emitted further down the call chain carries them.
package logger

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects a human-readable, debug level logger.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects a JSON, info level logger.
	ProductionEnvironment = "production"
)

// defaultLogger is used when the context carries no logger.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup replaces the default logger according to environment and routes the
// standard library's log/slog output through it, so third-party packages
// logging via slog end up in the same sink.
func Setup(environment string) {
	var l *zap.Logger
	if environment == ProductionEnvironment {
		l, _ = zap.NewProduction()
	} else {
		l, _ = zap.NewDevelopment()
	}
	if l == nil {
		l = zap.NewNop()
	}

	defaultLogger = l
	slog.SetDefault(slog.New(zapslog.NewHandler(l.Core())))
}

type key struct{}

// Get returns the logger stored in ctx, falling back to the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger stores logger in a derived context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields derives a context whose logger carries fields on every entry.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug reports whether the context logger emits debug entries.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Sync flushes buffered entries of the context logger.
func Sync(ctx context.Context) {
	_ = Get(ctx).Sync()
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
