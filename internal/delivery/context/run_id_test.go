package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRunID(ctx))

	ctx = WithRunID(ctx, "run-1")
	assert.Equal(t, "run-1", GetRunID(ctx))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewJSONHandler(io.Discard, nil))

	ctx := context.Background()
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestWithRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first := WithRun(context.Background(), logger)
	second := WithRun(context.Background(), logger)

	require.NotEmpty(t, GetRunID(first))
	assert.NotEqual(t, GetRunID(first), GetRunID(second))
	assert.NotNil(t, GetLogger(first))
	assert.NotSame(t, logger, GetLogger(first))
}
