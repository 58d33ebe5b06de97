package gen

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with generator-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a text logger writing to w. If w is nil, stderr is used.
func NewLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithFile adds the source file being processed.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("file", path),
	}
}
