// Package log wraps zap behind the context-first call style used across the
// service. Handlers, services and repositories log through this package so the
// request id injected by the HTTP middleware ends up on every line.
package log

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

type ctxKey struct{}

var logger = zap.NewNop()

// Init configures the process-wide logger. env drives the encoder: local gets
// the development console encoder, everything else structured JSON.
func Init(name, env, level string) {
	cfg := zap.NewProductionConfig()
	if env == "local" || env == "" {
		cfg = zap.NewDevelopmentConfig()
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}

	logger = l.Named(name)
}

// InitForTest swaps in a no-op logger so test output stays clean.
func InitForTest() {
	logger = zap.NewNop()
}

func Sync() {
	_ = logger.Sync()
}

// Logger returns the underlying zap logger, used to hand the logger to
// libraries that integrate with zap directly (e.g. nrzap).
func Logger() *zap.Logger {
	return logger
}

// WithFields returns a context carrying fields that will be attached to every
// log line written with that context.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]Field)
	return context.WithValue(ctx, ctxKey{}, append(existing[:len(existing):len(existing)], fields...))
}

func fromCtx(ctx context.Context, fields []Field) []Field {
	ctxFields, _ := ctx.Value(ctxKey{}).([]Field)
	if len(ctxFields) == 0 {
		return fields
	}
	return append(ctxFields[:len(ctxFields):len(ctxFields)], fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Debug(msg, fromCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Info(msg, fromCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Warn(msg, fromCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Error(msg, fromCtx(ctx, fields)...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	logger.Error(fmt.Sprintf(format, args...), fromCtx(ctx, nil)...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logger.Fatal(fmt.Sprintf(format, args...), fromCtx(ctx, nil)...)
}

// field helpers, so callers don't import zap everywhere

func String(key, value string) Field { return zap.String(key, value) }

func Int(key string, value int) Field { return zap.Int(key, value) }

func Duration(key string, value time.Duration) Field { return zap.Duration(key, value) }

func Err(err error) Field { return zap.Error(err) }
