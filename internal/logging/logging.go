// Package logging holds the process-wide slog logger. Diagnostics go to
// stderr so stdout stays reserved for the confirmation line.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

type Options struct {
	Level string
	JSON  bool

	// Writer overrides the destination, stderr when nil. Tests capture
	// records through it.
	Writer io.Writer
}

var current atomic.Value

func init() {
	current.Store(slog.New(newHandler(Options{})))
}

// Configure swaps the process logger. Safe to call at any point; loggers
// already obtained via L keep their old handler.
func Configure(opts Options) {
	current.Store(slog.New(newHandler(opts)))
}

func L() *slog.Logger {
	l, _ := current.Load().(*slog.Logger)
	return l
}

// InitFromEnv configures from FIXERRORS_LOG_LEVEL and FIXERRORS_LOG_JSON.
// Meant for the first line of main, before any config is loaded.
func InitFromEnv() {
	opts := Options{Level: os.Getenv("FIXERRORS_LOG_LEVEL")}
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("FIXERRORS_LOG_JSON"))); err == nil {
		opts.JSON = b
	}
	Configure(opts)
}

func newHandler(opts Options) slog.Handler {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	cfg := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	if opts.JSON {
		return slog.NewJSONHandler(w, cfg)
	}
	return slog.NewTextHandler(w, cfg)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
