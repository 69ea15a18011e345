package qtree

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with consistent field names for tree operations.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// debugEnabled reports whether the per-operation helpers below would
// write anything. Callers check it first so disabled logging costs no
// allocations.
func (l *Logger) debugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogInsert logs an insert. Rejections are expected in normal use and are
// logged at debug level like successes.
func (l *Logger) LogInsert(x, y any, count int, err error) {
	if err != nil {
		l.Debug("insert rejected",
			"x", x,
			"y", y,
			"error", err,
		)
		return
	}
	l.Debug("insert completed",
		"x", x,
		"y", y,
		"count", count,
	)
}

// LogSearch logs a circle query.
func (l *Logger) LogSearch(x, y, radius any, results int) {
	l.Debug("search completed",
		"x", x,
		"y", y,
		"radius", radius,
		"results", results,
	)
}

// LogNearest logs a nearest-neighbor query.
func (l *Logger) LogNearest(x, y, radius any, found bool) {
	l.Debug("nearest completed",
		"x", x,
		"y", y,
		"radius", radius,
		"found", found,
	)
}
