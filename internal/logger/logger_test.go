// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level    LogLevel
		expected zerolog.Level
	}{
		{LogDebug, zerolog.DebugLevel},
		{LogInfo, zerolog.InfoLevel},
		{LogWarn, zerolog.WarnLevel},
		{LogError, zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseLevel(tc.level), string(tc.level))
	}
}

func TestSetup_JSON(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Setup(Config{Level: LogWarn, Format: FormatJSON, Output: &buf})

	log.Info().Msg("hidden")
	log.Warn().Str("rule", "bound_mutation").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "bound_mutation", entry["rule"])
	assert.Equal(t, "warn", entry["level"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithContext(context.Background(), base)
	ctx, _ = WithFile(ctx, "server.js")
	_, l := WithFields(ctx, map[string]interface{}{"routes": 4})

	l.Info().Msg("counted")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "server.js", entry["file"])
	assert.Equal(t, float64(4), entry["routes"])
}

func TestFromContext_Default(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Equal(t, log.Logger, FromContext(nil))
	assert.Equal(t, log.Logger, FromContext(context.Background()))
}
