// Package logging provides structured logging for the sync daemon using
// zerolog, with human-readable console output for interactive use and JSON
// output for running under a supervisor.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output (trace, debug, info, warn, error)
	Level string

	// Format is the output format (console or json)
	Format string

	// NoColor disables color output in console mode
	NoColor bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Format:  "console",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// NewLogger creates a new logger from configuration, writing to stderr.
func NewLogger(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return NewLoggerWithWriter(cfg, os.Stderr)
}

// NewLoggerWithWriter creates a new logger from configuration with an
// explicit output writer. Tests use this to capture log output.
func NewLoggerWithWriter(cfg *Config, out io.Writer) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)

	var writer io.Writer = out
	if cfg.Format != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Caller information is only worth the noise when debugging.
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// parseLevel parses a level string, falling back to info for invalid input.
func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
