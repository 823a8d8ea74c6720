package cluster

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/server"
	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

func handleGetClusterStatus(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result, err := sc.Manager().ClusterStatus(ctx)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetClusterLog(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	maxLines := tools.OptionalInt(args, "max_lines", 50)

	result, err := sc.Manager().ClusterLog(ctx, maxLines)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}
