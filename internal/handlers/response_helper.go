// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResponseHelper provides common response formatting functionality
type ResponseHelper struct{}

// NewResponseHelper creates a new response helper
func NewResponseHelper() *ResponseHelper {
	return &ResponseHelper{}
}

// MarshalSuccessResponse marshals a response to JSON and returns a successful MCP result
func (h *ResponseHelper) MarshalSuccessResponse(response interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// CreateRulesResponse wraps the rule table with its count and a timestamp
func (h *ResponseHelper) CreateRulesResponse(rules interface{}, count int) map[string]interface{} {
	return map[string]interface{}{
		"status":    "success",
		"count":     count,
		"rules":     rules,
		"timestamp": getCurrentTimestamp(),
	}
}

// getCurrentTimestamp returns the current timestamp in RFC3339 format
func getCurrentTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
