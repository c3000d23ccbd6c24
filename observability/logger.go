// Package observability provides structured logging for the platform
// retargeting tools.
package observability

import (
	"io"
	"os"

	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"
)

// Logger is the logging interface used across the toolkit.
// Wraps mtlog for structured message-template logging.
type Logger interface {
	// Debug logs debugging information
	Debug(messageTemplate string, args ...any)

	// Info logs informational messages
	Info(messageTemplate string, args ...any)

	// Warn logs warning messages
	Warn(messageTemplate string, args ...any)

	// Error logs error messages
	Error(messageTemplate string, args ...any)

	// ForContext creates a child logger with an additional property
	ForContext(key string, value any) Logger
}

// LogLevel represents log verbosity level
type LogLevel int

const (
	// DebugLevel is for debug messages.
	DebugLevel LogLevel = iota
	// InfoLevel is for informational messages.
	InfoLevel
	// WarnLevel is for warning messages.
	WarnLevel
	// ErrorLevel is for error messages.
	ErrorLevel
)

type mtlogAdapter struct {
	logger core.Logger
}

// NewLogger creates a logger writing to output at the given level.
func NewLogger(output io.Writer, level LogLevel) Logger {
	opts := []mtlog.Option{
		mtlog.WithSink(sinks.NewConsoleSinkWithWriter(output)),
		mtlog.WithTimestamp(),
	}

	switch level {
	case DebugLevel:
		opts = append(opts, mtlog.Debug())
	case InfoLevel:
		opts = append(opts, mtlog.Information())
	case WarnLevel:
		opts = append(opts, mtlog.Warning())
	case ErrorLevel:
		opts = append(opts, mtlog.Error())
	}

	return &mtlogAdapter{logger: mtlog.New(opts...)}
}

// NewDefaultLogger creates a logger with stderr output and Info level.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, InfoLevel)
}

func (a *mtlogAdapter) Debug(messageTemplate string, args ...any) {
	a.logger.Debug(messageTemplate, args...)
}

func (a *mtlogAdapter) Info(messageTemplate string, args ...any) {
	a.logger.Info(messageTemplate, args...)
}

func (a *mtlogAdapter) Warn(messageTemplate string, args ...any) {
	a.logger.Warn(messageTemplate, args...)
}

func (a *mtlogAdapter) Error(messageTemplate string, args ...any) {
	a.logger.Error(messageTemplate, args...)
}

func (a *mtlogAdapter) ForContext(key string, value any) Logger {
	return &mtlogAdapter{logger: a.logger.ForContext(key, value)}
}

// NewNullLogger creates a logger that discards all output.
func NewNullLogger() Logger {
	return &nullLogger{}
}

type nullLogger struct{}

func (n *nullLogger) Debug(messageTemplate string, args ...any) {}
func (n *nullLogger) Info(messageTemplate string, args ...any)  {}
func (n *nullLogger) Warn(messageTemplate string, args ...any)  {}
func (n *nullLogger) Error(messageTemplate string, args ...any) {}
func (n *nullLogger) ForContext(key string, value any) Logger   { return n }
