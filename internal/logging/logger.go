// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// NewLogger returns a pterm logger writing to w at the named level
// (trace, debug, info, warn, error). Unknown names fall back to info.
func NewLogger(w io.Writer, level string) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}
	return pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(ParseLevel(level)).
		WithTime(false)
}

// Discard returns a logger that never prints.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)
}

// ParseLevel maps a level name to a pterm log level.
func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	}
	return pterm.LogLevelInfo
}
