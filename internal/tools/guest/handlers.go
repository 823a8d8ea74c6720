package guest

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/server"
	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

// guestTarget extracts the node/vmid pair every guest tool requires.
func guestTarget(args map[string]interface{}) (string, int, error) {
	node, err := tools.RequiredString(args, "node")
	if err != nil {
		return "", 0, err
	}
	vmid, err := tools.RequiredInt(args, "vmid")
	if err != nil {
		return "", 0, err
	}
	return node, vmid, nil
}

func handleGetVMs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result, err := sc.Manager().VMs(ctx)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetContainers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result, err := sc.Manager().Containers(ctx)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetVMStatus(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().VMStatus(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleGetContainerStatus(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().ContainerStatus(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleStartVM(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "start"); blocked != nil {
		return blocked, nil
	}

	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().StartVM(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleStopVM(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "stop"); blocked != nil {
		return blocked, nil
	}

	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().StopVM(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleRebootVM(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "reboot"); blocked != nil {
		return blocked, nil
	}

	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().RebootVM(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleStartContainer(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "start"); blocked != nil {
		return blocked, nil
	}

	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().StartContainer(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleStopContainer(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "stop"); blocked != nil {
		return blocked, nil
	}

	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().StopContainer(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleRebootContainer(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "reboot"); blocked != nil {
		return blocked, nil
	}

	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().RebootContainer(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleExecuteVMCommand(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "exec"); blocked != nil {
		return blocked, nil
	}

	args := request.GetArguments()
	node, vmid, err := guestTarget(args)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	command, err := tools.RequiredString(args, "command")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().ExecuteVMCommand(ctx, node, vmid, command)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleExecuteContainerCommand(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "exec"); blocked != nil {
		return blocked, nil
	}

	args := request.GetArguments()
	node, vmid, err := guestTarget(args)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	command, err := tools.RequiredString(args, "command")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().ExecuteContainerCommand(ctx, node, vmid, command)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleCreateVMSnapshot(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "snapshot"); blocked != nil {
		return blocked, nil
	}

	args := request.GetArguments()
	node, vmid, err := guestTarget(args)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	name, err := tools.RequiredString(args, "name")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	description := tools.OptionalString(args, "description", "")

	result, err := sc.Manager().CreateVMSnapshot(ctx, node, vmid, name, description)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleCreateContainerSnapshot(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckMutatingOperation(sc, "snapshot"); blocked != nil {
		return blocked, nil
	}

	args := request.GetArguments()
	node, vmid, err := guestTarget(args)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	name, err := tools.RequiredString(args, "name")
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	description := tools.OptionalString(args, "description", "")

	result, err := sc.Manager().CreateContainerSnapshot(ctx, node, vmid, name, description)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleListVMSnapshots(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().VMSnapshots(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleListContainerSnapshots(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	node, vmid, err := guestTarget(request.GetArguments())
	if err != nil {
		return tools.ErrorResult(err.Error())
	}

	result, err := sc.Manager().ContainerSnapshots(ctx, node, vmid)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}

func handleListTemplates(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	result, err := sc.Manager().Templates(ctx)
	if err != nil {
		return tools.ErrorResult(err.Error())
	}
	return tools.TextResult(result)
}
