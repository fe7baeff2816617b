package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"bowling/internal/configuration"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel converts a configured level name to slog.Level.
// Accepts "debug", "info", "warn", "warning", "error" in any case.
// If the level is not recognized, Info is used.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a JSON logger writing to out.
func NewLogger(out io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// Setup installs the global logger described by config.
// Logs go to stderr, keeping stdout for score sheets, or to a rotating
// lumberjack file when config.File is set.
// The returned closer must be called on shutdown to flush the log file.
func Setup(config configuration.LoggerConfig) io.Closer {
	var out io.WriteCloser = nopCloser{os.Stderr}
	if config.File != "" {
		out = &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			Compress:   true,
		}
	}

	slog.SetDefault(NewLogger(out, config.Level))
	return out
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
