// Package logger configures the process-wide slog logger and provides
// Fiber and GORM adapters that log through it.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var levelVar slog.LevelVar

// InitFromEnv installs the default slog logger. LOG_LEVEL selects the
// level (debug|info|warn|error, default info), LOG_FORMAT the handler
// (json|text, default json).
func InitFromEnv() {
	SetLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{Level: &levelVar}
	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "text") {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

// SetLevel adjusts the log level at runtime.
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "warn", "warning":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		levelVar.Set(slog.LevelInfo)
	}
}
