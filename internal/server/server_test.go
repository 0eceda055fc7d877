// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeconv/routeconv/internal/driver"
	apperrors "github.com/routeconv/routeconv/internal/errors"
	"github.com/routeconv/routeconv/internal/testsupport"
)

const initializeMessage = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","clientInfo":{"name":"test","version":"1.0"},"capabilities":{}}}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	fixture := testsupport.NewRouteFixture(t, testsupport.SQLiteRoutes)
	srv, err := NewServer(driver.NewService(fixture.Path))
	require.NoError(t, err)
	return srv
}

// handle sends one JSON-RPC message and returns the encoded response
func handle(t *testing.T, srv *Server, message string) string {
	t.Helper()
	response := srv.MCPServer().HandleMessage(context.Background(), json.RawMessage(message))
	require.NotNil(t, response)
	data, err := json.Marshal(response)
	require.NoError(t, err)
	return string(data)
}

func TestNewServer_RequiresConverter(t *testing.T) {
	_, err := NewServer(nil)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidInput))
}

func TestServer_ListsToolsAndResources(t *testing.T) {
	srv := newTestServer(t)
	handle(t, srv, initializeMessage)

	tools := handle(t, srv, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	for _, name := range []string{"conversion_progress", "rewrite_routes", "list_rewrite_rules"} {
		assert.Contains(t, tools, `"name":"`+name+`"`)
	}

	resources := handle(t, srv, `{"jsonrpc":"2.0","id":3,"method":"resources/list"}`)
	for _, uri := range []string{"routeconv://progress", "routeconv://rules", "routeconv://review"} {
		assert.Contains(t, resources, uri)
	}
}

func TestServer_CallTool(t *testing.T) {
	srv := newTestServer(t)
	handle(t, srv, initializeMessage)

	response := handle(t, srv, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"conversion_progress","arguments":{}}}`)
	assert.Contains(t, response, `\"total\":4`)
	assert.Contains(t, response, `\"converted\":1`)
}

func TestServer_StdioLifecycle(t *testing.T) {
	srv := newTestServer(t)

	stdinReader, stdinWriter := io.Pipe()
	stdoutReader, stdoutWriter := io.Pipe()
	defer stdoutReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, srv.Start(ctx, stdinReader, stdoutWriter))

	lines := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(stdoutReader)
		if scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	_, err := io.WriteString(stdinWriter, initializeMessage+"\n")
	require.NoError(t, err)

	select {
	case line := <-lines:
		assert.Contains(t, line, `"serverInfo"`)
		assert.Contains(t, line, `"name":"routeconv"`)
	case <-time.After(5 * time.Second):
		t.Fatal("no initialize response")
	}

	cancel()
	select {
	case <-srv.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.NoError(t, srv.Err())
}
