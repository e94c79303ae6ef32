// Package logging provides structured logging configuration using slog.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds a slog logger writing to w (os.Stderr if nil).
// Debug lowers the level from Info to Debug; jsonOutput selects the JSON
// handler over the text handler.
func New(w io.Writer, debug, jsonOutput bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs a text logger as the slog default.
func Setup(debug bool, w io.Writer) {
	slog.SetDefault(New(w, debug, false))
}

// SetupJSON installs a JSON logger as the slog default.
func SetupJSON(debug bool, w io.Writer) {
	slog.SetDefault(New(w, debug, true))
}
