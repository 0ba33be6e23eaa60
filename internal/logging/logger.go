// Package logging wraps log/slog with the field names the loaders and the
// CLI share.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with vek-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewText creates a Logger that writes human-readable text to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSON creates a Logger that writes JSON records to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop creates a Logger that discards everything.
func Noop() *Logger {
	return New(slog.DiscardHandler)
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}

// Build returns a Logger for the given format ("text" or "json") and level
// name, writing to w.
func Build(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return NewText(w, lvl), nil
	case "json":
		return NewJSON(w, lvl), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

// WithPath adds a path field.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// WithVector tags records with a vector's identity.
func (l *Logger) WithVector(origin string, id uint64) *Logger {
	return &Logger{Logger: l.Logger.With("origin", origin, "id", id)}
}

// LogAccessor logs reading one glTF accessor.
func (l *Logger) LogAccessor(ctx context.Context, index, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "accessor read failed",
			"accessor", index,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "accessor read",
		"accessor", index,
		"count", count,
	)
}

// LogLoad logs a completed model load.
func (l *Logger) LogLoad(ctx context.Context, meshes, vertices int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "model load failed", "error", err)
		return
	}
	l.InfoContext(ctx, "model loaded",
		"meshes", meshes,
		"vertices", vertices,
	)
}
