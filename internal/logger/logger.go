// Package logger provides a configured zerolog instance.
package logger

import (
	"github.com/iotiq/account-deletion/internal/config"
	"github.com/rs/zerolog"
	"io"
	"os"
	"time"
)

// NewLogger creates a new configured instance of zerolog.Logger.
// It reads the level and output format from the config and adds default fields like service name and caller.
func NewLogger(cfg *config.Config) (*zerolog.Logger, error) {
	logger := New(os.Stderr, cfg.Logger.Level, cfg.Logger.Format)
	return &logger, nil
}

// New builds a logger writing to out. Format "json" produces raw JSON lines,
// anything else a human-readable console output.
func New(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).With().
		Timestamp().
		Str("service", "account-deletion").
		Caller().
		Logger().
		Level(lvl)
}
