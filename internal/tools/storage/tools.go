// Package storage implements MCP tools for Proxmox storage pools and backups.
package storage

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// RegisterStorageTools registers all storage tools with the registry.
func RegisterStorageTools(reg *tools.Registry) error {
	getStorageTool := mcp.NewTool("get_storage",
		mcp.WithDescription("List storage pools in the cluster"),
	)
	reg.AddTool(getStorageTool, handleGetStorage)

	getStorageDetailsTool := mcp.NewTool("get_storage_details",
		mcp.WithDescription("Get detailed information about a specific storage pool"),
		mcp.WithString("storage",
			mcp.Required(),
			mcp.Description("Storage pool name"),
		),
	)
	reg.AddTool(getStorageDetailsTool, handleGetStorageDetails)

	getBackupsTool := mcp.NewTool("get_backups",
		mcp.WithDescription("List backup files in storage"),
		mcp.WithString("storage",
			mcp.Description("Optional: specific storage pool"),
		),
		mcp.WithString("node",
			mcp.Description("Optional: specific node"),
		),
	)
	reg.AddTool(getBackupsTool, handleGetBackups)

	return nil
}
