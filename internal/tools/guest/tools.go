// Package guest implements MCP tools for Proxmox virtual machines and
// LXC containers: inventory, lifecycle, command execution, snapshots,
// and templates.
package guest

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// vmTarget returns the node/vmid parameter pair shared by all VM tools.
func vmTarget() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("node",
			mcp.Required(),
			mcp.Description("Node name where VM is located"),
		),
		mcp.WithNumber("vmid",
			mcp.Required(),
			mcp.Description("VM ID number"),
		),
	}
}

// containerTarget returns the node/vmid parameter pair shared by all
// container tools.
func containerTarget() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("node",
			mcp.Required(),
			mcp.Description("Node name where container is located"),
		),
		mcp.WithNumber("vmid",
			mcp.Required(),
			mcp.Description("Container ID number"),
		),
	}
}

func newTool(name, description string, opts ...[]mcp.ToolOption) mcp.Tool {
	all := []mcp.ToolOption{mcp.WithDescription(description)}
	for _, group := range opts {
		all = append(all, group...)
	}
	return mcp.NewTool(name, all...)
}

// RegisterGuestTools registers all VM and container tools with the registry.
func RegisterGuestTools(reg *tools.Registry) error {
	reg.AddTool(newTool("get_vms",
		"List all VMs across the cluster"), handleGetVMs)

	reg.AddTool(newTool("get_containers",
		"List all LXC containers across the cluster"), handleGetContainers)

	reg.AddTool(newTool("get_vm_status",
		"Get status and configuration for a specific VM",
		vmTarget()), handleGetVMStatus)

	reg.AddTool(newTool("get_container_status",
		"Get status and configuration for a specific container",
		containerTarget()), handleGetContainerStatus)

	reg.AddTool(newTool("start_vm",
		"Start a virtual machine",
		vmTarget()), handleStartVM)

	reg.AddTool(newTool("stop_vm",
		"Stop a virtual machine gracefully",
		vmTarget()), handleStopVM)

	reg.AddTool(newTool("reboot_vm",
		"Reboot a virtual machine",
		vmTarget()), handleRebootVM)

	reg.AddTool(newTool("start_container",
		"Start an LXC container",
		containerTarget()), handleStartContainer)

	reg.AddTool(newTool("stop_container",
		"Stop an LXC container gracefully",
		containerTarget()), handleStopContainer)

	reg.AddTool(newTool("reboot_container",
		"Reboot an LXC container",
		containerTarget()), handleRebootContainer)

	reg.AddTool(newTool("execute_vm_command",
		"Execute a command in a VM via QEMU guest agent",
		vmTarget(),
		[]mcp.ToolOption{
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command to execute in the VM"),
			),
		}), handleExecuteVMCommand)

	reg.AddTool(newTool("execute_container_command",
		"Execute a command in a container",
		containerTarget(),
		[]mcp.ToolOption{
			mcp.WithString("command",
				mcp.Required(),
				mcp.Description("Command to execute in the container"),
			),
		}), handleExecuteContainerCommand)

	reg.AddTool(newTool("create_vm_snapshot",
		"Create a snapshot of a VM",
		vmTarget(),
		snapshotParams()), handleCreateVMSnapshot)

	reg.AddTool(newTool("create_container_snapshot",
		"Create a snapshot of a container",
		containerTarget(),
		snapshotParams()), handleCreateContainerSnapshot)

	reg.AddTool(newTool("list_vm_snapshots",
		"List all snapshots for a VM",
		vmTarget()), handleListVMSnapshots)

	reg.AddTool(newTool("list_container_snapshots",
		"List all snapshots for a container",
		containerTarget()), handleListContainerSnapshots)

	reg.AddTool(newTool("list_templates",
		"List all VM and container templates available in the cluster"),
		handleListTemplates)

	return nil
}

func snapshotParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Snapshot name"),
		),
		mcp.WithString("description",
			mcp.Description("Optional snapshot description"),
		),
	}
}
