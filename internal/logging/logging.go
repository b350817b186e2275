// Package logging wraps slog with the handlers the command-line tools use.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fxrsqrt field helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w, or stderr if w is nil. json selects
// the JSON handler over the text handler.
func New(w io.Writer, level slog.Level, json bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithDispatch tags records with a dispatch level name.
func (l *Logger) WithDispatch(name string) *Logger {
	return &Logger{Logger: l.Logger.With("dispatch", name)}
}

// WithSeed tags records with a vector generator seed.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{Logger: l.Logger.With("seed", seed)}
}
