// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"go.trai.ch/pin/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error; other
// errors fall back to their full Error() string.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{logger: slog.New(handler)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain as attributes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if m, ok := err.(messager); ok {
		msg = m.Message()
	}

	var causes []string
	for current := errors.Unwrap(err); current != nil; current = errors.Unwrap(current) {
		if m, ok := current.(messager); ok {
			causes = append(causes, m.Message())
			continue
		}
		causes = append(causes, current.Error())
		break
	}

	if len(causes) == 0 {
		l.logger.Error(msg)
		return
	}
	l.logger.Error(msg, "caused_by", causes)
}
