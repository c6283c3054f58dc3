package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup creates and sets the package-level default slog logger. Logs always
// go to stderr so that commands emitting CSV or NDJSON on stdout stay clean;
// jsonLogs switches the handler from human-readable text to JSON.
func Setup(level slog.Level, jsonLogs bool) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts "debug", "info", "warn", or "error" to a slog.Level.
// Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
