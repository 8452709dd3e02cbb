package vecdist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with vecdist-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(os.Stderr, "json", level)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(os.Stderr, "text", level)
}

// NewFormatLogger creates a Logger writing to w in the named format
// ("text" or "json").
func NewFormatLogger(w io.Writer, format string, level slog.Level) (*Logger, error) {
	switch strings.ToLower(format) {
	case "text", "json":
		return newLogger(w, strings.ToLower(format), level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func newLogger(w io.Writer, format string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// ParseLevel parses "debug", "info", "warn" or "error" (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// WithISA adds the kernel family to the logger.
func (l *Logger) WithISA(isa string) *Logger {
	return &Logger{
		Logger: l.Logger.With("isa", isa),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogKernel logs the kernel a Calculator was built with.
func (l *Logger) LogKernel(ctx context.Context, isa string, batchWidth int, pinned bool) {
	l.DebugContext(ctx, "kernel selected",
		"isa", isa,
		"batch_width", batchWidth,
		"pinned", pinned,
	)
}

// LogInvalidArgument logs a rejected call. op names the operation.
func (l *Logger) LogInvalidArgument(ctx context.Context, op string, err error) {
	l.WarnContext(ctx, "invalid argument",
		"op", op,
		"error", err,
	)
}

// LogBatch logs a completed or rejected batch scoring run. Shape fields come
// from WithDimension and WithCount.
func (l *Logger) LogBatch(ctx context.Context, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed", "error", err)
		return
	}
	l.DebugContext(ctx, "batch completed")
}
