// Package logger holds the process-wide structured logger. Everything
// logs through Log as JSON lines so request ids and errors stay
// machine-searchable.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init builds the logger, honoring LOG_LEVEL (debug, info, warn,
// error; default info).
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
