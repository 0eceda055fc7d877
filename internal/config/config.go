// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package config resolves the target file and ambient settings from defaults,
// an optional .env file and environment variables
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "github.com/routeconv/routeconv/internal/errors"
	"github.com/routeconv/routeconv/internal/logger"
)

// Defaults
const (
	// DefaultTargetFile is the route file of the application being migrated
	DefaultTargetFile = "/data/ASM/server.js"
	// DefaultEnvFile is loaded when present; a missing file is not an error
	DefaultEnvFile = ".env"
	// DefaultDebounce is how long watch mode waits for writes to settle
	DefaultDebounce = 500 * time.Millisecond
)

// Environment variables
const (
	EnvTargetFile = "ROUTECONV_FILE"
	EnvDebounce   = "ROUTECONV_DEBOUNCE"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFormat  = "LOG_FORMAT"
)

// Config holds the runtime configuration
type Config struct {
	// TargetFile is the route source file to report on or rewrite
	TargetFile string
	// Debounce delays re-reporting in watch mode
	Debounce time.Duration
	// Log configures the global logger
	Log logger.Config
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		TargetFile: DefaultTargetFile,
		Debounce:   DefaultDebounce,
		Log:        logger.DefaultConfig(),
	}
}

// EnvConfig overlays environment variables on the defaults
func EnvConfig() (Config, error) {
	config := DefaultConfig()

	if path := strings.TrimSpace(os.Getenv(EnvTargetFile)); path != "" {
		config.TargetFile = path
	}

	if raw := os.Getenv(EnvDebounce); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, apperrors.Wrap(err, apperrors.CodeInvalidInput,
				"invalid "+EnvDebounce).WithContext("value", raw)
		}
		config.Debounce = d
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		config.Log.Level = logger.LogLevel(strings.ToLower(level))
	}

	if format := os.Getenv(EnvLogFormat); format != "" {
		config.Log.Format = strings.ToLower(format)
	}

	return config, config.Validate()
}

// LoadEnvFile loads variables from a .env file without overriding the environment.
// A missing default file is ignored; a missing explicit file is an error.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.Wrap(err, apperrors.CodeInvalidInput, "failed to load env file").
			WithContext("path", path)
	}
	return nil
}

// Load reads the env file and then the environment
func Load(envFile string) (Config, error) {
	if err := LoadEnvFile(envFile); err != nil {
		return Config{}, err
	}
	return EnvConfig()
}

// Validate checks the configuration for values the commands cannot work with
func (c Config) Validate() error {
	if strings.TrimSpace(c.TargetFile) == "" {
		return apperrors.InvalidInput("target file path is empty")
	}
	if c.Debounce < 0 {
		return apperrors.InvalidInput("debounce must not be negative")
	}
	switch c.Log.Format {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return apperrors.InvalidInput("log format must be console or json")
	}
	return nil
}
