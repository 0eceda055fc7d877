// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package server wires the conversion tools and resources into an MCP server
package server

import (
	"context"
	"errors"
	"io"
	stdlog "log"
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/routeconv/routeconv/internal/buildinfo"
	"github.com/routeconv/routeconv/internal/core"
	apperrors "github.com/routeconv/routeconv/internal/errors"
	"github.com/routeconv/routeconv/internal/handlers"
	"github.com/routeconv/routeconv/internal/resources"
)

// Name is the MCP server name announced to clients
const Name = "routeconv"

// Server manages the MCP server instance
type Server struct {
	mcpServer *server.MCPServer
	converter core.Converter
	doneCh    chan struct{}
	stopOnce  sync.Once
	err       error
}

// NewServer creates a new MCP server over converter
func NewServer(converter core.Converter) (*Server, error) {
	if converter == nil {
		return nil, apperrors.InvalidInput("converter is required")
	}

	mcpServer := server.NewMCPServer(
		Name,
		buildinfo.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	srv := &Server{
		mcpServer: mcpServer,
		converter: converter,
		doneCh:    make(chan struct{}),
	}

	srv.registerComponents()

	return srv, nil
}

// registerComponents registers all MCP resources and tools
func (s *Server) registerComponents() {
	handlers.NewHandlerRegistry(s.converter).RegisterAllTools(s.mcpServer)
	resources.RegisterMCPResources(s.mcpServer, s.converter)

	log.Info().Str("file", s.converter.DefaultFile()).Msg("All MCP components registered")
}

// MCPServer returns the underlying MCP server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Start serves MCP over the given stdio streams until ctx is cancelled or stdin closes
func (s *Server) Start(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(stdlog.New(log.Logger, "", 0))

	go func() {
		err := stdio.Listen(ctx, stdin, stdout)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
			log.Error().Err(err).Msg("MCP transport failed")
			s.err = err
		}
		s.Stop()
	}()

	log.Info().Str("version", buildinfo.Version).Msg("routeconv MCP server started")
	return nil
}

// Stop marks the server as shut down; safe to call more than once
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		log.Info().Msg("Stopping routeconv MCP server...")
		close(s.doneCh)
	})
}

// Done returns a channel that's closed when the server has completely shut down
func (s *Server) Done() <-chan struct{} {
	return s.doneCh
}

// Err returns the transport error that ended the server, if any.
// Only meaningful after Done is closed.
func (s *Server) Err() error {
	return s.err
}
