// Package logger provides the small logging interface used by the browser
// readers, so library consumers can plug their own backend or silence
// diagnostics entirely.
package logger

import "log"

// Logger receives diagnostic messages from the cookie readers.
type Logger interface {
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// StandardLogger writes messages through a stdlib *log.Logger with a
// level prefix.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger wraps l. Passing log.Default() gives plain stderr output.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// NopLogger discards all messages. It is the default for library calls.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (NopLogger) Info(format string, args ...interface{})    {}
func (NopLogger) Warning(format string, args ...interface{}) {}
func (NopLogger) Error(format string, args ...interface{})   {}
