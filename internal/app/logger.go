package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/readlog-backend/internal/config"
)

// NewLogger builds the process logger and installs it as the slog default.
// Format "text" adds source locations; anything else writes JSON. Unknown
// levels fall back to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("app", appName))
	slog.SetDefault(logger)

	return logger
}

// parseLevel accepts the slog level syntax, offsets included ("debug", "WARN",
// "info+2").
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
