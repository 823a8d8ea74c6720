package monitoring

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/server"
	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

func handleGetTaskStatus(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	node, err := tools.RequiredString(args, "node")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	upid, err := tools.RequiredString(args, "upid")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().TaskStatus(ctx, node, upid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetRecentTasks(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	node := tools.OptionalString(args, "node", "")
	limit := tools.OptionalInt(args, "limit", 20)

	result, err := sc.Manager().RecentTasks(ctx, node, limit)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}
