// Package network implements MCP tools for Proxmox guest network
// configuration and firewall status.
package network

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// RegisterNetworkTools registers all network tools with the registry.
func RegisterNetworkTools(reg *tools.Registry) error {
	getVMNetworkTool := mcp.NewTool("get_vm_network",
		mcp.WithDescription("Get network configuration for a VM or container"),
		mcp.WithString("node",
			mcp.Required(),
			mcp.Description("Node name where VM/container is located"),
		),
		mcp.WithNumber("vmid",
			mcp.Required(),
			mcp.Description("VM or container ID"),
		),
		mcp.WithString("vm_type",
			mcp.Description("Type: 'qemu' for VM, 'lxc' for container (default: qemu)"),
		),
	)
	reg.AddTool(getVMNetworkTool, handleGetVMNetwork)

	getFirewallStatusTool := mcp.NewTool("get_firewall_status",
		mcp.WithDescription("Get firewall status and rules for a node or VM"),
		mcp.WithString("node",
			mcp.Required(),
			mcp.Description("Node name"),
		),
		mcp.WithNumber("vmid",
			mcp.Description("Optional: VM ID (if checking VM firewall)"),
		),
	)
	reg.AddTool(getFirewallStatusTool, handleGetFirewallStatus)

	return nil
}
