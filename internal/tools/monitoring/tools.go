// Package monitoring implements MCP tools for Proxmox task tracking.
package monitoring

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// RegisterMonitoringTools registers all task monitoring tools with the registry.
func RegisterMonitoringTools(reg *tools.Registry) error {
	getTaskStatusTool := mcp.NewTool("get_task_status",
		mcp.WithDescription("Get status of a Proxmox task"),
		mcp.WithString("node",
			mcp.Required(),
			mcp.Description("Node where the task is running"),
		),
		mcp.WithString("upid",
			mcp.Required(),
			mcp.Description("Unique Process ID of the task"),
		),
	)
	reg.AddTool(getTaskStatusTool, handleGetTaskStatus)

	getRecentTasksTool := mcp.NewTool("get_recent_tasks",
		mcp.WithDescription("List recent tasks across the cluster"),
		mcp.WithString("node",
			mcp.Description("Optional: filter tasks by specific node"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default: 20)"),
		),
	)
	reg.AddTool(getRecentTasksTool, handleGetRecentTasks)

	return nil
}
