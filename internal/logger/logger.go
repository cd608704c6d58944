// Package logger holds the command-line tool's process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger. It discards everything until Init is called.
var L = discard()

// Options configures Init.
type Options struct {
	Verbose bool      // log decoder diagnostics at debug level
	Quiet   bool      // only errors
	JSON    bool      // JSON records instead of text
	Output  io.Writer // default: os.Stderr
}

// Init replaces L according to opts.
func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	switch {
	case opts.Quiet:
		level = slog.LevelError
	case opts.Verbose:
		level = slog.LevelDebug
	}

	hopts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(out, hopts))
		return
	}
	L = slog.New(slog.NewTextHandler(out, hopts))
}

// Reset restores the discarding logger.
func Reset() { L = discard() }

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }
