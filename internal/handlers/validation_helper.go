// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
)

// ValidationHelper provides common validation functionality
type ValidationHelper struct{}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{}
}

// ValidateOptionalPath extracts an optional file path. Relative paths are rejected
// because the server's working directory is not meaningful to the client.
func (v *ValidationHelper) ValidateOptionalPath(request mcp.CallToolRequest, paramName string) (string, *mcp.CallToolResult) {
	return validatePath(paramName, request.GetString(paramName, ""))
}

// validatePath cleans a non-empty absolute path and rejects relative ones
func validatePath(paramName, path string) (string, *mcp.CallToolResult) {
	if path == "" {
		return "", nil
	}
	if !filepath.IsAbs(path) {
		return "", Global.InvalidParameterError(paramName, path, "must be an absolute path")
	}
	return filepath.Clean(path), nil
}
