// Package cluster implements MCP tools for Proxmox cluster status and logs.
package cluster

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// RegisterClusterTools registers all cluster tools with the registry.
func RegisterClusterTools(reg *tools.Registry) error {
	getClusterStatusTool := mcp.NewTool("get_cluster_status",
		mcp.WithDescription("Get cluster status and health information"),
	)
	reg.AddTool(getClusterStatusTool, handleGetClusterStatus)

	getClusterLogTool := mcp.NewTool("get_cluster_log",
		mcp.WithDescription("Get recent cluster log entries"),
		mcp.WithNumber("max_lines",
			mcp.Description("Maximum number of log entries to return (default: 50)"),
		),
	)
	reg.AddTool(getClusterLogTool, handleGetClusterLog)

	return nil
}
