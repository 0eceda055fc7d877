// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package core provides the core interfaces for routeconv
package core

import "context"

// Converter defines the conversion operations shared by the CLI and the MCP server
type Converter interface {
	// Report counts total and converted routes in a file; an empty path means the configured file
	Report(ctx context.Context, path string) (*ReportResult, error)

	// Rewrite runs the rewrite rules over a file or inline source
	Rewrite(ctx context.Context, opts RewriteOptions) (*RewriteResult, error)

	// DefaultFile returns the configured target file
	DefaultFile() string
}
