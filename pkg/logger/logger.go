package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"bazarbd/pkg/config"
)

var std = slog.New(slog.NewTextHandler(os.Stdout, nil))

// New builds the process logger from configuration and installs it as the
// slog default so that Info/Warn/Error/Debug below share its handler.
func New(cfg *config.Config) *slog.Logger {
	l := newLogger(os.Stdout, cfg.LogFormat, ParseLevel(cfg.LogLevel, cfg.IsDevelopment()))
	std = l
	slog.SetDefault(l)
	return l
}

// Discard returns a logger that drops every record. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to slog.Level. Unknown names fall back to
// info, or debug in development.
func ParseLevel(level string, development bool) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		if development {
			return slog.LevelDebug
		}
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		if development {
			return slog.LevelDebug
		}
		return slog.LevelInfo
	}
}

func Info(msg string, args ...any) {
	std.Info(msg, args...)
}

func Error(msg string, args ...any) {
	std.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	std.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	std.Warn(msg, args...)
}
