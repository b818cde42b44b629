// Package logging provides the structured logger used across loaddotenv.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger defines the structured logging interface.
type Logger interface {
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
	Debug(msg string, fields map[string]any)
}

// JSONLogger writes structured JSON log entries to an io.Writer.
type JSONLogger struct {
	zl zerolog.Logger
}

// New creates a JSONLogger writing to w. Debug entries are only emitted when
// verbose is true.
func New(w io.Writer, verbose bool) *JSONLogger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	zl := zerolog.New(w).Level(level).With().Timestamp().Str("component", "loaddotenv").Logger()
	return &JSONLogger{zl: zl}
}

func (l *JSONLogger) Info(msg string, fields map[string]any)  { l.log(l.zl.Info(), msg, fields) }
func (l *JSONLogger) Warn(msg string, fields map[string]any)  { l.log(l.zl.Warn(), msg, fields) }
func (l *JSONLogger) Error(msg string, fields map[string]any) { l.log(l.zl.Error(), msg, fields) }
func (l *JSONLogger) Debug(msg string, fields map[string]any) { l.log(l.zl.Debug(), msg, fields) }

func (l *JSONLogger) log(ev *zerolog.Event, msg string, fields map[string]any) {
	// Disabled levels return a nil event.
	if ev == nil {
		return
	}
	ev.Fields(fields).Msg(msg)
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Debug(string, map[string]any) {}
