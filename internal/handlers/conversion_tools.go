// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/routeconv/routeconv/internal/core"
	pkgmcp "github.com/routeconv/routeconv/pkg/mcp"
)

// rewriteArgs are the arguments of the rewrite_routes tool
type rewriteArgs struct {
	Path   string `json:"path"`
	Source string `json:"source"`
	Write  bool   `json:"write"`
	Diff   bool   `json:"diff"`
}

// RegisterConversionTools registers the progress and rewrite tools with the MCP server
func RegisterConversionTools(srv *server.MCPServer, converter core.Converter) {
	progressTool := mcp.NewTool("conversion_progress",
		mcp.WithDescription("Count Express routes in the route file and report how many already use async handlers"),
		mcp.WithString("path", mcp.Description("Absolute path of the route file (defaults to the configured file)")),
	)

	srv.AddTool(progressTool, handleConversionProgress(converter))

	rewriteTool := mcp.NewTool("rewrite_routes",
		mcp.WithDescription("Rewrite SQLite route handlers into async PostgreSQL calls. "+
			"Returns the rewritten text unless diff or write is set."),
		mcp.WithString("path", mcp.Description("Absolute path of the route file (defaults to the configured file)")),
		mcp.WithString("source", mcp.Description("Inline source to rewrite instead of a file")),
		mcp.WithBoolean("write", mcp.Description("Replace the file with the rewritten text")),
		mcp.WithBoolean("diff", mcp.Description("Return a unified diff instead of the full text")),
	)

	pkgmcp.RegisterTypedTool(srv, rewriteTool, handleRewriteRoutes(converter))

	rulesTool := mcp.NewTool("list_rewrite_rules",
		mcp.WithDescription("List the rewrite rules in the order they are applied"),
	)

	srv.AddTool(rulesTool, handleListRewriteRules())

	log.Info().Msg("Conversion tools registered")
}

// handleConversionProgress handles the conversion_progress tool
func handleConversionProgress(converter core.Converter) server.ToolHandlerFunc {
	validator := NewValidationHelper()
	responder := NewResponseHelper()

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, errResult := validator.ValidateOptionalPath(request, "path")
		if errResult != nil {
			return errResult, nil
		}

		result, err := converter.Report(ctx, path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Progress report failed")
			return Global.FromError(err), nil
		}

		return responder.MarshalSuccessResponse(result)
	}
}

// handleRewriteRoutes handles the rewrite_routes tool
func handleRewriteRoutes(converter core.Converter) mcp.TypedToolHandlerFunc[rewriteArgs] {
	responder := NewResponseHelper()

	return func(ctx context.Context, _ mcp.CallToolRequest, args rewriteArgs) (*mcp.CallToolResult, error) {
		path, errResult := validatePath("path", args.Path)
		if errResult != nil {
			return errResult, nil
		}
		if args.Source != "" && args.Write {
			return Global.InvalidParameterError("write", true, "cannot write inline source"), nil
		}

		result, err := converter.Rewrite(ctx, core.RewriteOptions{
			Path:   path,
			Source: args.Source,
			Write:  args.Write,
			Diff:   args.Diff,
		})
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("Rewrite failed")
			return Global.FromError(err), nil
		}

		return responder.MarshalSuccessResponse(result)
	}
}

// handleListRewriteRules handles the list_rewrite_rules tool
func handleListRewriteRules() server.ToolHandlerFunc {
	responder := NewResponseHelper()

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rules := core.ListRules()
		return responder.MarshalSuccessResponse(responder.CreateRulesResponse(rules, len(rules)))
	}
}
