// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	testCases := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "message only",
			err:      New(CodeInvalidInput, "bad path"),
			expected: "bad path",
		},
		{
			name:     "wrapped cause",
			err:      Wrap(os.ErrPermission, CodeReadError, "failed to read server.js"),
			expected: "failed to read server.js: permission denied",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("/data/ASM/server.js")

	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "/data/ASM/server.js", err.Context["path"])

	wrapped := fmt.Errorf("report: %w", err)
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, Is(wrapped, CodeNotFound))
	assert.False(t, Is(wrapped, CodeReadError))
}

func TestWithContext(t *testing.T) {
	err := OperationFailed("rewrite", os.ErrClosed).WithContext("rule", "single_row_query")

	assert.Equal(t, CodeOperationFailed, err.Code)
	assert.Equal(t, "rewrite", err.Context["operation"])
	assert.Equal(t, "single_row_query", err.Context["rule"])
	assert.True(t, errors.Is(err, os.ErrClosed))
}

func TestIs_PlainError(t *testing.T) {
	assert.False(t, Is(errors.New("plain"), CodeNotFound))
	assert.False(t, IsNotFound(errors.New("plain")))
}
