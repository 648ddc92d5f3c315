// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogNormal  LogLevel = 1
	LogVerbose LogLevel = 2
	LogDebug   LogLevel = 3
)

// Logger writes levelled diagnostic messages to stderr.  Protocol
// narration never goes to stdout; the run's result is its exit code.
type Logger struct {
	mu         sync.Mutex
	level      LogLevel
	output     io.Writer
	timestamps bool
}

// NewLogger returns a Logger that prints messages at or below the given
// verbosity (0 = quiet, 1 = normal, 2 = verbose, 3 = debug).  Debug
// verbosity turns on timestamps.
func NewLogger(verbosity int) *Logger {
	return &Logger{
		level:      LogLevel(verbosity),
		output:     os.Stderr,
		timestamps: verbosity >= int(LogDebug),
	}
}

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(LogQuiet, "ERR", format, args...)
}

// Warn prints when verbosity >= 1.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(LogNormal, "WRN", format, args...)
}

// Info prints when verbosity >= 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(LogNormal, "INF", format, args...)
}

// Verbose prints when verbosity >= 2.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	l.emit(LogVerbose, "VRB", format, args...)
}

// Debug prints when verbosity >= 3.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(LogDebug, "DBG", format, args...)
}

func (l *Logger) emit(min LogLevel, tag, format string, args ...interface{}) {
	if l.level < min {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.timestamps {
		fmt.Fprintf(l.output, "%s [%s] %s\n", time.Now().Format("15:04:05.000"), tag, msg)
	} else {
		fmt.Fprintf(l.output, "[%s] %s\n", tag, msg)
	}
}
