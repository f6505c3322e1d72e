package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/memoboard/internal/config"
)

// NewLogger builds the board's logger writing to w. Format "json" emits one
// JSON object per record; anything else emits text lines with the call site.
// Unrecognised levels fall back to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	opts.AddSource = true
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
