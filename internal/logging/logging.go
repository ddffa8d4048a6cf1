// Package logging builds the slog loggers used by the command-line tools.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// New returns a logger writing to w.
// level: "debug", "info", "warn", "error"
// format: "json" or "text"
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	if strings.TrimSpace(level) == "" || strings.TrimSpace(format) == "" {
		return nil, errors.New("log level and format must not be empty")
	}

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, errors.New("invalid log level: " + level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, errors.New("invalid log format: " + format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
