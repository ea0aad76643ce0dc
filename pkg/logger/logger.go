// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     logger
// Description: Structured logging with an append-only diagnostic file sink
// License:     MIT
// ============================================================================

package logger

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// LogLevel is the configured severity threshold.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Logger is the logging interface handed to the pipeline and front ends.
// It is constructed explicitly and passed down; there is no package-level
// default the pipeline depends on.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Config holds logger construction options.
type Config struct {
	// Level is the minimum severity that gets emitted.
	Level LogLevel

	// Output is the console writer. Defaults to stderr so progress output
	// on stdout stays machine-readable.
	Output io.Writer

	// File, when set, is an append-only log file that receives every
	// emitted record in addition to Output. The file is created if
	// missing and never truncated.
	File string

	// TimeFormat for console records.
	TimeFormat string
}

// DefaultConfig returns console-only logging at info level.
func DefaultConfig() Config {
	return Config{
		Level:      InfoLevel,
		Output:     os.Stderr,
		TimeFormat: "15:04:05",
	}
}

type loggerImpl struct {
	charm *charmlog.Logger
	file  *os.File
}

// New creates a Logger from cfg. When cfg.File is set the file is opened
// in append mode and receives the same records as the console writer.
func New(cfg Config) (Logger, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = "15:04:05"
	}

	output := cfg.Output
	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		file = f
		output = io.MultiWriter(cfg.Output, f)
	}

	charm := charmlog.NewWithOptions(output, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           cfg.Level.toCharmLevel(),
	})

	return &loggerImpl{charm: charm, file: file}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger {
	return &loggerImpl{charm: charmlog.New(io.Discard)}
}

func (l LogLevel) toCharmLevel() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case InfoLevel:
		return charmlog.InfoLevel
	case WarnLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) { l.charm.Debug(msg, keyvals...) }
func (l *loggerImpl) Info(msg string, keyvals ...any)  { l.charm.Info(msg, keyvals...) }
func (l *loggerImpl) Warn(msg string, keyvals ...any)  { l.charm.Warn(msg, keyvals...) }
func (l *loggerImpl) Error(msg string, keyvals ...any) { l.charm.Error(msg, keyvals...) }

// Close releases the file sink, if any.
func (l *loggerImpl) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Close closes the file sink of a Logger created by New. Loggers without a
// file sink return nil.
func Close(l Logger) error {
	if impl, ok := l.(*loggerImpl); ok {
		return impl.Close()
	}
	return nil
}
