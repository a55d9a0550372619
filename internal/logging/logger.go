// Package logging defines a minimal structured-logging interface used across
// the project. Implementations wrap slog or zap.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "file renamed", "old", oldName, "new", newName)
type Logger interface {
	// Debug logs verbose diagnostics such as request ids.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Options select the backend and verbosity of a Logger built by New.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text, json, zap, zap-console
	Output io.Writer
}

// New builds a Logger from opts. Unknown formats fall back to slog text output.
func New(opts Options) (Logger, error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	switch strings.ToLower(opts.Format) {
	case "zap", "zap-console":
		return NewZapLogger(opts)
	case "json":
		h := slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{Level: parseSlogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h)), nil
	default:
		h := slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: parseSlogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h)), nil
	}
}

func parseSlogLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
