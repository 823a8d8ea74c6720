package access

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/server"
	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

func handleGetUsers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result, err := sc.Manager().Users(ctx)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetGroups(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result, err := sc.Manager().Groups(ctx)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetRoles(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result, err := sc.Manager().Roles(ctx)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}
