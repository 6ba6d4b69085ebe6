package unisplit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with unisplit-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOp adds an operation field to the logger.
func (l *Logger) WithOp(op Operation) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", string(op)),
	}
}

// LogSplit logs the outcome of a split call.
func (l *Logger) LogSplit(ctx context.Context, op Operation, elements, pieces int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "split failed",
			"op", string(op),
			"elements", elements,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "split completed",
			"op", string(op),
			"elements", elements,
			"pieces", pieces,
		)
	}
}

// LogRecycling warns that vector lengths differ and shorter vectors are
// repeated.
func (l *Logger) LogRecycling(ctx context.Context, op Operation, lengths []int) {
	l.WarnContext(ctx, "vector lengths differ, recycling shorter vectors",
		"op", string(op),
		"lengths", lengths,
	)
}

// LogSegmenterBuild logs a segmenter (re)build.
func (l *Logger) LogSegmenterBuild(ctx context.Context, kind, locale string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "segmenter construction failed",
			"boundary", kind,
			"locale", locale,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "segmenter built",
			"boundary", kind,
			"locale", locale,
		)
	}
}
