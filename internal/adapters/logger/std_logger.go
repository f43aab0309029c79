package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_text_heuristic/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
	closer io.Closer
}

// NewStdLogger creates a new standard logger adapter with default configuration.
func NewStdLogger() (ports.Logger, error) {
	return NewCustomStdLogger(DefaultConfig(os.Stdout, false))
}

// DefaultConfig returns the logger configuration used by the library and servers.
func DefaultConfig(output io.Writer, jsonFormat bool) l.Config {
	return l.Config{
		Output:      output,
		JsonFormat:  jsonFormat,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	}
}

// NewCustomStdLogger creates a new standard logger with custom configuration.
func NewCustomStdLogger(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger}, nil
}

// NewFileStdLogger writes to path, or to stdout when path is empty.
// The file is closed together with the logger.
func NewFileStdLogger(path string, jsonFormat bool) (ports.Logger, error) {
	if path == "" {
		return NewCustomStdLogger(DefaultConfig(os.Stdout, jsonFormat))
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger, err := l.NewStandardFactory().CreateLogger(DefaultConfig(file, jsonFormat))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &StdLogger{logger: logger, closer: file}, nil
}

// Debug logs a debug message.
func (l *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (l *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (l *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (l *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the logger.
func (l *StdLogger) Close() error {
	err := l.logger.Close()
	if l.closer != nil {
		if cerr := l.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

// NopLogger discards everything.
type NopLogger struct{}

// NewNopLogger returns a logger that discards all messages.
func NewNopLogger() ports.Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Close() error                 { return nil }
