// Package access implements MCP tools for Proxmox users, groups, and roles.
package access

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// RegisterAccessTools registers all access control tools with the registry.
func RegisterAccessTools(reg *tools.Registry) error {
	getUsersTool := mcp.NewTool("get_users",
		mcp.WithDescription("List all users in the Proxmox cluster"),
	)
	reg.AddTool(getUsersTool, handleGetUsers)

	getGroupsTool := mcp.NewTool("get_groups",
		mcp.WithDescription("List all groups in the Proxmox cluster"),
	)
	reg.AddTool(getGroupsTool, handleGetGroups)

	getRolesTool := mcp.NewTool("get_roles",
		mcp.WithDescription("List all roles available in the Proxmox cluster"),
	)
	reg.AddTool(getRolesTool, handleGetRoles)

	return nil
}
