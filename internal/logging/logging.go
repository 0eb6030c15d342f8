// Package logging configures the charmbracelet/log loggers used across vfsh.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix is the prefix printed on every log line.
const Prefix = "vfsh"

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"). An empty level means info.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}), nil
}

// Open returns a logger for the given destination. An empty path logs to
// stderr unless quiet is set, in which case output is discarded; otherwise
// the file is opened for appending and returned so the caller can close it.
func Open(path, level string, quiet bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		if quiet {
			logger, err := New(io.Discard, level)
			return logger, nopCloser{}, err
		}
		logger, err := New(os.Stderr, level)
		return logger, nopCloser{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Component returns a child logger tagged with the component name.
func Component(logger *log.Logger, name string) *log.Logger {
	return logger.With("component", name)
}
