// Package logging builds the charmbracelet/log logger shared by the CLI and
// the topic demos. Logs go to stderr so stdout carries only demo output.
package logging

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every log line.
const Prefix = "concepts"

// Logger adds section markers to a charmbracelet/log logger.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at the named level (debug, info, warn,
// error, fatal).
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return &Logger{log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  lvl,
	})}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})}
}

// Section logs a section header at debug level.
func (l *Logger) Section(name string) {
	l.Debugf("=== %s ===", name)
}

// Enabled reports whether debug output is on.
func (l *Logger) Enabled() bool {
	return l.GetLevel() <= log.DebugLevel
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return log.WithContext(ctx, l.Logger)
}

// FromContext returns the logger stored in ctx, or the package default
// charmbracelet logger when there is none.
func FromContext(ctx context.Context) *Logger {
	return &Logger{log.FromContext(ctx)}
}
