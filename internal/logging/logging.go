package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup builds a text slog.Logger at the requested level, installs it as the
// process default, and returns it. Unrecognized levels fall back to info.
// Logs go to stderr so command output on stdout stays scriptable.
func Setup(level string) *slog.Logger {
	return SetupWriter(level, os.Stderr)
}

// SetupWriter is Setup with an explicit destination, for tests.
func SetupWriter(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
