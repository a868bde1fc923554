package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger writing to errW, so records never
// interleave with the console screens on stdout. levelStr is one of the
// names accepted by Config validation; anything else falls back to warn.
func newLogger(levelStr, formatStr string, errW io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(errW, opts))
	}
	return slog.New(slog.NewTextHandler(errW, opts))
}
