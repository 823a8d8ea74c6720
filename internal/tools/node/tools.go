// Package node implements MCP tools for Proxmox node inventory and status.
package node

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// RegisterNodeTools registers all node management tools with the registry.
func RegisterNodeTools(reg *tools.Registry) error {
	getNodesTool := mcp.NewTool("get_nodes",
		mcp.WithDescription("List all nodes in the Proxmox cluster"),
	)
	reg.AddTool(getNodesTool, handleGetNodes)

	getNodeStatusTool := mcp.NewTool("get_node_status",
		mcp.WithDescription("Get detailed status for a specific node"),
		mcp.WithString("node",
			mcp.Required(),
			mcp.Description("Name of the node"),
		),
	)
	reg.AddTool(getNodeStatusTool, handleGetNodeStatus)

	return nil
}
