// Package logging provides structured logging with slog for panelkit.
//
// Features:
//   - text and JSON output formats
//   - log levels (debug, info, warn, error)
//   - stdout, stderr or file output
//   - per-component child loggers
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format int

const (
	// FormatText outputs human-readable text logs.
	FormatText Format = iota
	// FormatJSON outputs JSON-structured logs.
	FormatJSON
)

// Config holds the logging configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level slog.Level

	// Format is the output format (text or JSON).
	Format Format

	// Output specifies where logs are written: "stdout", "stderr", or a
	// file path.
	Output string

	// Component is attached to every record as a "component" attribute.
	Component string

	// MaxSizeMB rotates a file output once it grows past this size.
	// Zero disables rotation. Ignored for stdout/stderr.
	MaxSizeMB int

	// MaxBackups limits how many rotated files are kept.
	MaxBackups int
}

// DefaultConfig returns a default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:     slog.LevelInfo,
		Format:    FormatText,
		Output:    "stderr",
		Component: "panelkit",
	}
}

// ParseLevel converts a level name to a slog.Level; unknown names fall
// back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a format name to a Format; unknown names fall back
// to text.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// New creates a logger with the given configuration.
func New(cfg *Config) (*slog.Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var w io.Writer
	switch cfg.Output {
	case "stdout":
		w = os.Stdout
	case "stderr", "":
		w = os.Stderr
	default:
		if cfg.MaxSizeMB > 0 {
			r, err := NewRotator(cfg.Output, cfg.MaxSizeMB, cfg.MaxBackups)
			if err != nil {
				return nil, err
			}
			w = r
		} else {
			f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("open log file: %w", err)
			}
			w = f
		}
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	return logger, nil
}

// Component derives a child logger tagged for a subsystem.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("component", name)
}
