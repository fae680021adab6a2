// Package logger is a thin ctx-based facade over go-belt's logger used
// across revealframes.
package logger

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
)

// Logger is just a type-alias for logger.Logger for convenience.
type Logger = logger.Logger

// New returns the default (logrus-backed) logger with the given level.
func New(level Level) Logger {
	return logrus.Default().WithLevel(level)
}

// CtxWithNew is New + CtxWithLogger + SetDefault, the usual bootstrap of
// both the CLI and the tests.
func CtxWithNew(ctx context.Context, level Level) context.Context {
	l := New(level)
	SetDefault(func() Logger {
		return l
	})
	return CtxWithLogger(ctx, l)
}

func SetDefault(defaultLogger func() Logger) {
	logger.Default = defaultLogger
}

func FromCtx(ctx context.Context) Logger {
	return logger.FromCtx(ctx)
}

func CtxWithLogger(ctx context.Context, l Logger) context.Context {
	return logger.CtxWithLogger(ctx, l)
}

// Debugf is just a shorthand for Logf(ctx, logger.LevelDebug, ...)
func Debugf(ctx context.Context, format string, args ...any) {
	logger.Debugf(ctx, format, args...)
}

// Infof is just a shorthand for Logf(ctx, logger.LevelInfo, ...)
func Infof(ctx context.Context, format string, args ...any) {
	logger.Infof(ctx, format, args...)
}

// Warnf is just a shorthand for Logf(ctx, logger.LevelWarn, ...)
func Warnf(ctx context.Context, format string, args ...any) {
	logger.Warnf(ctx, format, args...)
}

// Errorf is just a shorthand for Logf(ctx, logger.LevelError, ...)
func Errorf(ctx context.Context, format string, args ...any) {
	logger.Errorf(ctx, format, args...)
}

// Fatalf is just a shorthand for Logf(ctx, logger.LevelFatal, ...)
//
// Be aware: Fatal level also triggers an `os.Exit`.
func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Fatalf(ctx, format, args...)
}
