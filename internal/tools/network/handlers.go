package network

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/server"
	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

func handleGetVMNetwork(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	node, err := tools.RequiredString(args, "node")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	vmid, err := tools.RequiredInt(args, "vmid")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	vmType := tools.OptionalString(args, "vm_type", "qemu")

	result, err := sc.Manager().VMNetwork(ctx, node, vmid, vmType)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetFirewallStatus(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	node, err := tools.RequiredString(args, "node")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	// vmid is optional: absent or zero targets the node firewall.
	vmid := tools.OptionalInt(args, "vmid", 0)

	result, err := sc.Manager().FirewallStatus(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}
