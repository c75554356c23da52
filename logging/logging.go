package logging

import (
	"io"
	"log/slog"
	"strings"
)

// FormatJSON and FormatText are the accepted values of LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewLogger creates a new slog.Logger writing to w.
// The level defaults to INFO and the format to JSON when empty or unrecognized.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(strings.TrimSpace(config.Format), FormatText) {
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}

	return slog.New(slog.NewJSONHandler(w, handlerOpts))
}

// ParseLevel converts a level name to a slog.Level, case-insensitively.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
