package bitfield

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitfield-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithField adds the position and width of a field to the logger.
func (l *Logger) WithField(pos, width uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("pos", pos, "width", width),
	}
}

// WithNumBits adds the set capacity to the logger.
func (l *Logger) WithNumBits(numBits uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("num_bits", numBits),
	}
}

// LogAdd logs a metadata-only field registration.
func (l *Logger) LogAdd(pos, width uint32) {
	l.Debug("field registered",
		"pos", pos,
		"width", width,
	)
}

// LogInsert logs a field write.
func (l *Logger) LogInsert(pos, width, value, raw uint32) {
	l.Debug("field written",
		"pos", pos,
		"width", width,
		"value", value,
		"raw", raw,
	)
}
