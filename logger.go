package slotarena

import (
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

// Logger wraps slog.Logger with arena-specific context.
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

// WithName adds an arena name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("arena", name),
	}
}

// LogGrow logs a reallocation of the slot table.
func (l *Logger) LogGrow(oldCap, newCap int, reservedBytes int64) {
	l.Debug("slot table grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"reserved", humanize.IBytes(uint64(max(reservedBytes, 0))),
	)
}

// LogGrowFailed logs a refused reallocation.
func (l *Logger) LogGrowFailed(slots int, err error) {
	l.Warn("slot table growth refused",
		"slots", slots,
		"error", err,
	)
}

// LogCapacityExhausted logs an insert rejected by the key's index range.
func (l *Logger) LogCapacityExhausted(slots int) {
	l.Warn("key index range exhausted",
		"slots", slots,
	)
}

// LogTombstone logs a slot retired because its version cannot advance.
func (l *Logger) LogTombstone(index int, tombstones uint64) {
	l.Warn("slot version exhausted, slot retired",
		"index", index,
		"tombstones", tombstones,
	)
}

// LogClear logs a reset of the slot table.
func (l *Logger) LogClear(slots, live int) {
	l.Debug("arena cleared",
		"slots", slots,
		"live", live,
	)
}

// LogFree logs the release of the backing storage.
func (l *Logger) LogFree(releasedBytes int64) {
	l.Debug("arena storage released",
		"released", humanize.IBytes(uint64(max(releasedBytes, 0))),
	)
}
