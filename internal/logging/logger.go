// Package logging builds the server's structured logger. Logs always go
// to stderr: stdout carries the MCP stdio transport and must stay clean.
package logging

import (
	"log/slog"
	"os"
)

// NewLogger creates a JSON slog.Logger at the given level. Unknown level
// strings fall back to info.
func NewLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
