// Package logger builds charmbracelet/log loggers for the demo.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w. The level string is parsed with
// log.ParseLevel.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
	}), nil
}

// Open creates a logger appending to path. An empty path discards output; the
// terminal belongs to the UI. The returned close function is never nil.
func Open(path, prefix, level string) (*log.Logger, func() error, error) {
	if path == "" {
		l, err := New(io.Discard, prefix, level)
		return l, func() error { return nil }, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}
	l, err := New(f, prefix, level)
	if err != nil {
		f.Close()
		return nil, func() error { return nil }, err
	}
	return l, f.Close, nil
}
