// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package handlers provides unified handler registration utilities
package handlers

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/routeconv/routeconv/internal/core"
)

// HandlerRegistry provides unified handler registration functionality
type HandlerRegistry struct {
	converter core.Converter
}

// NewHandlerRegistry creates a new handler registry
func NewHandlerRegistry(converter core.Converter) *HandlerRegistry {
	return &HandlerRegistry{converter: converter}
}

// RegisterAllTools registers all handler groups
func (r *HandlerRegistry) RegisterAllTools(srv *server.MCPServer) {
	RegisterConversionTools(srv, r.converter)
}
