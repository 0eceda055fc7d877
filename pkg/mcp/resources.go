// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ResourceHandlerFunc is an alias for server.ResourceHandlerFunc
type ResourceHandlerFunc = server.ResourceHandlerFunc

// JSONResourceContents marshals v as the JSON body of the resource at uri
func JSONResourceContents(uri string, v interface{}) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
