// Package logging builds the process logger.
//
// Console output is a text handler on stderr. When a log file is
// configured, a JSON handler writes to a size-rotated file as well, so
// scheduled runs keep a durable trail without unbounded growth.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/yxchen/macro-data/internal/config"
)

// New builds a logger from config. The returned closer stops the file
// sink; it is a no-op when no file is configured.
func New(cfg config.LoggingConfig) (*slog.Logger, io.Closer) {
	level := parseLevel(cfg.Level)

	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	if cfg.File == "" {
		return slog.New(console), nopCloser{}
	}

	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
	file := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level})

	return slog.New(teeHandler{console, file}), sink
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// teeHandler fans records out to both sinks.
type teeHandler struct {
	a, b slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.a.Enabled(ctx, level) || t.b.Enabled(ctx, level)
}

func (t teeHandler) Handle(ctx context.Context, rec slog.Record) error {
	var firstErr error
	if t.a.Enabled(ctx, rec.Level) {
		firstErr = t.a.Handle(ctx, rec.Clone())
	}
	if t.b.Enabled(ctx, rec.Level) {
		if err := t.b.Handle(ctx, rec.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{t.a.WithAttrs(attrs), t.b.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{t.a.WithGroup(name), t.b.WithGroup(name)}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
