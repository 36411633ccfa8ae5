package core

import (
	"context"
	"log/slog"
)

type OptionKey string

const LoggerOptionKey OptionKey = "logger_options"

// WithLogger carries a structured logger to workers through the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

// LoggerFrom returns the context-carried logger, or slog.Default().
func LoggerFrom(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}
