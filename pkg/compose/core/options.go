package core

import (
	"context"
	"log/slog"

	"github.com/ib-77/compose/internal/logging"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
)

type LoggerOptions struct {
	Logger *slog.Logger
}

var nopLogger = logging.NewNop()

// WithLogger makes composers invoked under ctx trace their steps to logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// LoggerFrom returns the logger set by WithLogger or a no-op logger.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nopLogger
	}
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return nopLogger
}
