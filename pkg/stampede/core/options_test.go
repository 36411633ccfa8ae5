package core

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFrom_Default(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Default(), LoggerFrom(context.Background()))
}

func TestLoggerFrom_Carried(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), logger)

	assert.Equal(t, logger, LoggerFrom(ctx))
}
