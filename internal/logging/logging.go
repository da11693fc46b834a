// Package logging provides structured logging setup for comment-dash.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the default slog logger. Verbose mode uses
// human-readable text at debug level; otherwise JSON at info.
func Setup(verbose bool) {
	var handler slog.Handler
	if verbose {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(handler))
}
