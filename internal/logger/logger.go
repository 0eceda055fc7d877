// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package logger provides a standardized logging interface for the application
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contextKey is a private type for context keys
type contextKey int

// loggerKey is the key for the logger in the context
const loggerKey contextKey = iota

// LogLevel represents log levels
type LogLevel string

// Log levels
const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Log formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logger configuration
type Config struct {
	// Level is the log level: debug, info, warn, error
	Level LogLevel
	// Format can be "json" or "console"
	Format string
	// ConsoleTimeFormat is the time format for console output
	ConsoleTimeFormat string
	// CallerInfo determines whether to include caller information
	CallerInfo bool
	// Output receives log lines; defaults to stderr so stdout stays free for reports
	Output io.Writer
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:             LogInfo,
		Format:            FormatConsole,
		ConsoleTimeFormat: time.Kitchen,
		CallerInfo:        false,
	}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(level LogLevel) zerolog.Level {
	switch level {
	case LogDebug:
		return zerolog.DebugLevel
	case LogInfo:
		return zerolog.InfoLevel
	case LogWarn:
		return zerolog.WarnLevel
	case LogError:
		return zerolog.ErrorLevel
	}

	parsed, err := zerolog.ParseLevel(string(level))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// Setup configures the global logger
func Setup(config Config) {
	zerolog.SetGlobalLevel(ParseLevel(config.Level))

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	// Configure output format
	if config.Format == FormatJSON {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: config.ConsoleTimeFormat,
		}).With().Timestamp().Logger()
	}

	// Configure caller info
	if config.CallerInfo {
		log.Logger = log.With().Caller().Logger()
	}
}

// FromContext returns the logger from the context or the default logger if not found
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return log.Logger
	}

	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}

	return log.Logger
}

// WithContext adds a logger to the context
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFile adds the target file to the logger in the context
func WithFile(ctx context.Context, path string) (context.Context, zerolog.Logger) {
	logger := FromContext(ctx).With().Str("file", path).Logger()
	return WithContext(ctx, logger), logger
}

// WithFields adds multiple fields to the logger in the context
func WithFields(ctx context.Context, fields map[string]interface{}) (context.Context, zerolog.Logger) {
	loggerCtx := FromContext(ctx).With()
	for k, v := range fields {
		loggerCtx = loggerCtx.Interface(k, v)
	}
	logger := loggerCtx.Logger()
	return WithContext(ctx, logger), logger
}
