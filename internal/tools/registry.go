package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-proxmox/internal/server"
)

// Registry collects tool registrations and installs them on the MCP server.
// Every handler goes through the same wrapping: the degraded-mode guard
// first, then audit logging and metrics.
//
// Keeping the name set here also gives Dispatch a way to answer the
// "Unknown tool" payload for names that were never registered.
type Registry struct {
	sc       *server.ServerContext
	mcp      *mcpserver.MCPServer
	handlers map[string]ToolHandler
	names    []string
}

// NewRegistry creates a registry bound to the given MCP server and context.
func NewRegistry(s *mcpserver.MCPServer, sc *server.ServerContext) *Registry {
	return &Registry{
		sc:       sc,
		mcp:      s,
		handlers: make(map[string]ToolHandler),
	}
}

// AddTool registers a tool and its handler. The handler is wrapped so that
// degraded mode short-circuits before any Proxmox access, and every call is
// audit logged.
func (r *Registry) AddTool(tool mcp.Tool, handler ToolHandler) {
	name := tool.Name
	r.handlers[name] = handler
	r.names = append(r.names, name)

	guarded := r.guard(handler)
	if r.mcp != nil {
		r.mcp.AddTool(tool, WrapWithAuditLogging(name, guarded, r.sc))
	}
}

// guard wraps a handler with the degraded-mode check.
func (r *Registry) guard(handler ToolHandler) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		if sc.Degraded() {
			return DegradedResult(sc.InitError())
		}
		return handler(ctx, request, sc)
	}
}

// ToolNames returns the registered tool names in registration order.
func (r *Registry) ToolNames() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Dispatch routes a call to the named tool, applying the same guards as the
// installed handlers. Unregistered names answer with the "Unknown tool"
// payload instead of a protocol error.
func (r *Registry) Dispatch(ctx context.Context, name string, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return UnknownToolResult(name)
	}
	return r.guard(handler)(ctx, request, r.sc)
}
