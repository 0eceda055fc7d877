// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package handlers provides unified error handling utilities
package handlers

import (
	stderrors "errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routeconv/routeconv/internal/errors"
)

// UnifiedErrorHelper provides centralized error handling for MCP responses
type UnifiedErrorHelper struct{}

// NewUnifiedErrorHelper creates a new unified error helper
func NewUnifiedErrorHelper() *UnifiedErrorHelper {
	return &UnifiedErrorHelper{}
}

// FileNotFoundError creates a standardized missing route file response
func (h *UnifiedErrorHelper) FileNotFoundError(path string) *mcp.CallToolResult {
	msg := fmt.Sprintf("route file '%s' not found", path)
	return mcp.NewToolResultError(msg)
}

// InvalidParameterError creates a standardized invalid parameter error response
func (h *UnifiedErrorHelper) InvalidParameterError(paramName string, value interface{}, reason string) *mcp.CallToolResult {
	msg := fmt.Sprintf("invalid parameter '%s' = %v: %s", paramName, value, reason)
	return mcp.NewToolResultError(msg)
}

// WrapAppError converts an AppError to MCP format
func (h *UnifiedErrorHelper) WrapAppError(appErr *errors.AppError) *mcp.CallToolResult {
	if appErr.Code == errors.CodeNotFound {
		if path, ok := appErr.Context["path"].(string); ok {
			return h.FileNotFoundError(path)
		}
	}
	if path, ok := appErr.Context["path"].(string); ok {
		return mcp.NewToolResultError(fmt.Sprintf("%s (%s)", appErr.Message, path))
	}
	return mcp.NewToolResultError(appErr.Message)
}

// FromError creates an appropriate error response based on error type
func (h *UnifiedErrorHelper) FromError(err error) *mcp.CallToolResult {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return h.WrapAppError(appErr)
	}
	return mcp.NewToolResultError(err.Error())
}

// Global error helper instance for convenience
var Global = NewUnifiedErrorHelper()
