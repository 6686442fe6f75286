package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"rent-ledger-backend/internal/domain"
)

var defaultLogger *slog.Logger

// Initialize sets up the global logger writing to stdout
func Initialize(level, format string) {
	InitializeWithWriter(os.Stdout, level, format)
}

// InitializeWithWriter sets up the global logger writing to w
func InitializeWithWriter(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// ParseLevel maps a config string to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the default logger
func Get() *slog.Logger {
	if defaultLogger == nil {
		Initialize("info", "text")
	}
	return defaultLogger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	Get().InfoContext(ctx, msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	Get().ErrorContext(ctx, msg, args...)
}

// WithOwner returns a logger tagged with the owner the request acts for
func WithOwner(ownerID string) *slog.Logger {
	return Get().With("owner_id", ownerID)
}

// WithJob returns a logger tagged with a scheduled job name
func WithJob(jobName string) *slog.Logger {
	return Get().With("job", jobName)
}

// EnterMethod logs method entry (process tracking)
func EnterMethod(methodName string, args ...any) {
	allArgs := append([]any{"method", methodName, "event", "enter"}, args...)
	Get().Debug("→ Method entered", allArgs...)
}

// ExitMethod logs method exit (process tracking)
func ExitMethod(methodName string, args ...any) {
	allArgs := append([]any{"method", methodName, "event", "exit"}, args...)
	Get().Debug("← Method exited", allArgs...)
}

// ExitMethodWithError logs method exit with error. Validation and not-found
// outcomes are caller mistakes and go to warn; everything else is an error.
func ExitMethodWithError(methodName string, err error, args ...any) {
	allArgs := append([]any{"method", methodName, "event", "exit", "error", err}, args...)
	if domain.IsValidation(err) || errors.Is(err, domain.ErrNotFoundOrForbidden) {
		Get().Warn("← Method exited with error", allArgs...)
		return
	}
	Get().Error("← Method exited with error", allArgs...)
}

// DatabaseCall logs a store operation before it is issued
func DatabaseCall(operation, query string, args ...any) {
	allArgs := append([]any{"operation", operation, "query", query}, args...)
	Get().Debug("→ Database call", allArgs...)
}

// DatabaseResult logs a store operation outcome
func DatabaseResult(operation string, rowsAffected int64, err error, args ...any) {
	allArgs := append([]any{"operation", operation, "rows_affected", rowsAffected}, args...)
	if err != nil {
		allArgs = append(allArgs, "error", err)
		Get().Error("← Database call failed", allArgs...)
	} else {
		Get().Debug("← Database call succeeded", allArgs...)
	}
}
