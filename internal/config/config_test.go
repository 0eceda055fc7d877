// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/routeconv/routeconv/internal/errors"
	"github.com/routeconv/routeconv/internal/logger"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTargetFile, EnvDebounce, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "/data/ASM/server.js", config.TargetFile)
	assert.Equal(t, DefaultDebounce, config.Debounce)
	assert.Equal(t, logger.LogInfo, config.Log.Level)
	assert.NoError(t, config.Validate())
}

func TestEnvConfig(t *testing.T) {
	testCases := []struct {
		name        string
		env         map[string]string
		expectError bool
		check       func(t *testing.T, c Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, DefaultTargetFile, c.TargetFile)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				EnvTargetFile: "/srv/app/server.js",
				EnvDebounce:   "2s",
				EnvLogLevel:   "DEBUG",
				EnvLogFormat:  "json",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "/srv/app/server.js", c.TargetFile)
				assert.Equal(t, 2*time.Second, c.Debounce)
				assert.Equal(t, logger.LogDebug, c.Log.Level)
				assert.Equal(t, logger.FormatJSON, c.Log.Format)
			},
		},
		{
			name:        "bad debounce",
			env:         map[string]string{EnvDebounce: "soon"},
			expectError: true,
		},
		{
			name:        "bad format",
			env:         map[string]string{EnvLogFormat: "xml"},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			config, err := EnvConfig()
			if tc.expectError {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			tc.check(t, config)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, including empty ones.
	require.NoError(t, os.Unsetenv(EnvTargetFile))
	t.Cleanup(func() { _ = os.Unsetenv(EnvTargetFile) })

	dir := t.TempDir()
	envFile := filepath.Join(dir, "routeconv.env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvTargetFile+"=/from/dotenv/server.js\n"), 0o600))

	config, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv/server.js", config.TargetFile)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidInput))
}

func TestLoadEnvFile_DefaultMissing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.NoError(t, LoadEnvFile(""))
}

func TestValidate(t *testing.T) {
	config := DefaultConfig()
	config.TargetFile = "  "
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Debounce = -time.Second
	assert.Error(t, config.Validate())
}
