// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package resources exposes the conversion state of the route file as MCP resources
package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/routeconv/routeconv/internal/core"
	"github.com/routeconv/routeconv/internal/driver"
	"github.com/routeconv/routeconv/internal/rewrite"
	pkgmcp "github.com/routeconv/routeconv/pkg/mcp"
)

// Resource URIs
const (
	ProgressURI = "routeconv://progress"
	RulesURI    = "routeconv://rules"
	ReviewURI   = "routeconv://review"
)

// reviewReport lists the lines of the route file that the rules cannot convert
type reviewReport struct {
	File     string            `json:"file"`
	Findings []rewrite.Finding `json:"findings"`
}

// RegisterMCPResources registers all resources with the MCP server
func RegisterMCPResources(srv *server.MCPServer, converter core.Converter) {
	srv.AddResource(mcp.NewResource(
		ProgressURI,
		"Conversion Progress",
		mcp.WithResourceDescription("Total and async route counts of the configured route file"),
		mcp.WithMIMEType("application/json"),
	), progressHandler(converter))

	srv.AddResource(mcp.NewResource(
		RulesURI,
		"Rewrite Rules",
		mcp.WithResourceDescription("The rewrite rules in application order"),
		mcp.WithMIMEType("application/json"),
	), rulesHandler())

	srv.AddResource(mcp.NewResource(
		ReviewURI,
		"Manual Review",
		mcp.WithResourceDescription("Lines of the configured route file that need manual conversion"),
		mcp.WithMIMEType("application/json"),
	), reviewHandler(converter))

	log.Info().Msg("All resources registered with MCP server")
}

func progressHandler(converter core.Converter) pkgmcp.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		result, err := converter.Report(ctx, "")
		if err != nil {
			return nil, err
		}
		return pkgmcp.JSONResourceContents(request.Params.URI, result)
	}
}

func rulesHandler() pkgmcp.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return pkgmcp.JSONResourceContents(request.Params.URI, core.ListRules())
	}
}

// reviewHandler scans the file as it is on disk, before any rewrite
func reviewHandler(converter core.Converter) pkgmcp.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		file := converter.DefaultFile()
		source, err := driver.ReadSource(file)
		if err != nil {
			return nil, err
		}

		findings := rewrite.ManualReview(source)
		if findings == nil {
			findings = []rewrite.Finding{}
		}
		return pkgmcp.JSONResourceContents(request.Params.URI, reviewReport{File: file, Findings: findings})
	}
}
