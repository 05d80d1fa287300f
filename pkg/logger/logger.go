package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log defaults to slog's standard logger until Init swaps in the JSON
// handler, so packages can log safely before or without Init.
var Log = slog.Default()

func Init() {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		level = slog.LevelDebug
	}

	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
