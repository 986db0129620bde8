// Package logging wraps charmbracelet/log with a process-wide default
// logger, level parsing, and context carry for the build runner.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// levelNames maps configuration strings to log levels. Unknown names fall
// back to info.
//
//nolint:gochecknoglobals // Read-only lookup table.
var levelNames = map[string]log.Level{
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"error":   log.ErrorLevel,
}

//nolint:gochecknoglobals // Package-level default logger is intentional.
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// ParseLevel converts a level name to a log level, defaulting to info.
func ParseLevel(name string) log.Level {
	if level, ok := levelNames[strings.ToLower(name)]; ok {
		return level
	}
	return log.InfoLevel
}

// New creates a stderr logger at the named level. Timestamps and caller
// reporting are off; CLI output stays grep-friendly.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New("info")
		}
	})
	return defaultLogger
}

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
