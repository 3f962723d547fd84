// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process logger. The terminal belongs to the UI
// while a screen is running, so output goes to a log file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than writing to L directly.
var L = clog.New(io.Discard)

// Setup points L at path (appending) and returns a function closing the file.
// An empty path discards all output.
func Setup(path string, verbose bool) (func() error, error) {
	level := clog.InfoLevel
	if verbose {
		level = clog.DebugLevel
	}

	if path == "" {
		L = clog.New(io.Discard)
		L.SetLevel(level)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	L = clog.NewWithOptions(f, clog.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tally",
	})
	return f.Close, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
