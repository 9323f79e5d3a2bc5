// Package context carries run-scoped values, such as the run id and the
// run-scoped logger, through context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRunID is the key for storing the run ID in context.
	KeyRunID ContextKey = "run_id"

	// KeyLogger is the key for storing the run-scoped logger in context.
	KeyLogger ContextKey = "logger"
)

// NewRunID generates a fresh run ID.
func NewRunID() string {
	return uuid.New().String()
}

// GetRunID extracts the run ID from context.Context.
// If not found, returns empty string.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRunID).(string); ok {
		return id
	}

	return ""
}

// WithRunID returns a new context with the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, KeyRunID, runID)
}

// GetLogger extracts the run-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the run-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithRun starts a run: it stores a new run ID and a logger tagged with it.
func WithRun(ctx context.Context, logger *slog.Logger) context.Context {
	runID := NewRunID()
	ctx = WithRunID(ctx, runID)

	return WithLogger(ctx, logger.With(slog.String(string(KeyRunID), runID)))
}
