// Package tools provides shared utilities and types for MCP tool implementations.
package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/server"
)

// ToolHandler is the signature for MCP tool handler functions that take ServerContext.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error)

// TextResult marshals the payload as pretty-printed JSON and wraps it in a
// text tool result. Every tool answers through this helper so clients always
// receive the same two-space indented shape.
func TextResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorResult("Failed to encode response: " + err.Error())
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ErrorResult wraps an error message in the uniform {"error": msg} payload.
// Failures are reported as regular text results rather than protocol errors
// so clients can always parse the body.
func ErrorResult(msg string) (*mcp.CallToolResult, error) {
	return TextResult(map[string]string{"error": msg})
}

// UnknownToolResult is the payload answered when a tool name is not registered.
func UnknownToolResult(name string) (*mcp.CallToolResult, error) {
	return ErrorResult("Unknown tool: " + name)
}

// DegradedResult is the payload answered by every tool while the server runs
// without a working Proxmox connection.
func DegradedResult(initErr error) (*mcp.CallToolResult, error) {
	msg := "unknown error"
	if initErr != nil {
		msg = initErr.Error()
	}
	return TextResult(map[string]string{
		"error":   "Server initialization failed: " + msg,
		"details": "Please check environment variables and server configuration",
	})
}
