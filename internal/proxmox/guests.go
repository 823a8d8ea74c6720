package proxmox

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// Guest type identifiers as used by the Proxmox API.
const (
	GuestTypeQemu = "qemu"
	GuestTypeLXC  = "lxc"
)

// VMs lists all QEMU virtual machines across the cluster. Nodes that fail
// to answer are skipped.
func (m *Manager) VMs(ctx context.Context) (map[string]any, error) {
	vms, checked, err := m.listGuests(ctx, GuestTypeQemu)
	if err != nil {
		return nil, err
	}
	return map[string]any{"vms": vms, "total": len(vms), "nodes_checked": checked}, nil
}

// Containers lists all LXC containers across the cluster. Nodes that fail
// to answer are skipped.
func (m *Manager) Containers(ctx context.Context) (map[string]any, error) {
	cts, checked, err := m.listGuests(ctx, GuestTypeLXC)
	if err != nil {
		return nil, err
	}
	return map[string]any{"containers": cts, "total": len(cts), "nodes_checked": checked}, nil
}

// listGuests enumerates guests of one type on every node, tagging each with
// its node name. Returns the guests and the number of nodes enumerated.
func (m *Manager) listGuests(ctx context.Context, guestType string) ([]map[string]any, int, error) {
	names, err := m.nodeNames(ctx)
	if err != nil {
		return nil, 0, err
	}

	all := make([]map[string]any, 0)
	for _, node := range names {
		data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/%s", node, guestType), nil)
		if err != nil {
			m.warnSkip("could not list guests on node", node, err)
			continue
		}
		for _, guest := range toList(data) {
			guest["node"] = node
			all = append(all, guest)
		}
	}
	return all, len(names), nil
}

// VMStatus returns the current status of a QEMU VM.
func (m *Manager) VMStatus(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestStatus(ctx, GuestTypeQemu, node, vmid)
}

// ContainerStatus returns the current status of an LXC container.
func (m *Manager) ContainerStatus(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestStatus(ctx, GuestTypeLXC, node, vmid)
}

func (m *Manager) guestStatus(ctx context.Context, guestType, node string, vmid int) (map[string]any, error) {
	data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/%s/%d/status/current", node, guestType, vmid), nil)
	if err != nil {
		return nil, err
	}
	status := toMap(data)
	if len(status) == 0 {
		return nil, errors.New("No status data returned")
	}
	return status, nil
}

// StartVM starts a QEMU VM. The returned task_id is the Proxmox UPID.
func (m *Manager) StartVM(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestAction(ctx, GuestTypeQemu, node, vmid, "start", "start")
}

// StopVM shuts a QEMU VM down gracefully.
func (m *Manager) StopVM(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestAction(ctx, GuestTypeQemu, node, vmid, "shutdown", "stop")
}

// RebootVM reboots a QEMU VM.
func (m *Manager) RebootVM(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestAction(ctx, GuestTypeQemu, node, vmid, "reboot", "reboot")
}

// StartContainer starts an LXC container.
func (m *Manager) StartContainer(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestAction(ctx, GuestTypeLXC, node, vmid, "start", "start")
}

// StopContainer shuts an LXC container down gracefully.
func (m *Manager) StopContainer(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestAction(ctx, GuestTypeLXC, node, vmid, "shutdown", "stop")
}

// RebootContainer reboots an LXC container.
func (m *Manager) RebootContainer(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.guestAction(ctx, GuestTypeLXC, node, vmid, "reboot", "reboot")
}

// guestAction posts a lifecycle action. The endpoint name and the verb used
// in the confirmation message differ for stop (graceful shutdown endpoint,
// "stop" wording).
func (m *Manager) guestAction(ctx context.Context, guestType, node string, vmid int, endpoint, verb string) (map[string]any, error) {
	data, err := m.api.Post(ctx, fmt.Sprintf("/nodes/%s/%s/%d/status/%s", node, guestType, vmid, endpoint), nil)
	if err != nil {
		return nil, err
	}

	label := "VM"
	if guestType == GuestTypeLXC {
		label = "Container"
	}
	return map[string]any{
		"success": true,
		"task_id": data,
		"message": fmt.Sprintf("%s %d %s initiated on node %s", label, vmid, verb, node),
	}, nil
}

// ExecuteVMCommand runs a command inside a VM via the QEMU guest agent.
func (m *Manager) ExecuteVMCommand(ctx context.Context, node string, vmid int, command string) (map[string]any, error) {
	form := url.Values{"command": {command}}
	data, err := m.api.Post(ctx, fmt.Sprintf("/nodes/%s/%s/%d/agent/exec", node, GuestTypeQemu, vmid), form)
	if err != nil {
		return nil, err
	}
	result := toMap(data)
	if result == nil {
		return nil, errors.New("No response from VM agent")
	}
	return execResult(result), nil
}

// ExecuteContainerCommand runs a command inside an LXC container.
func (m *Manager) ExecuteContainerCommand(ctx context.Context, node string, vmid int, command string) (map[string]any, error) {
	form := url.Values{"command": {command}}
	data, err := m.api.Post(ctx, fmt.Sprintf("/nodes/%s/%s/%d/exec", node, GuestTypeLXC, vmid), form)
	if err != nil {
		return nil, err
	}
	result := toMap(data)
	if result == nil {
		return nil, errors.New("No response from container")
	}
	return execResult(result), nil
}

func execResult(result map[string]any) map[string]any {
	return map[string]any{
		"success":   true,
		"output":    fieldOr(result, "out-data", ""),
		"exit_code": fieldOr(result, "exitcode", 0),
	}
}

// CreateVMSnapshot creates a snapshot of a QEMU VM.
func (m *Manager) CreateVMSnapshot(ctx context.Context, node string, vmid int, name, description string) (map[string]any, error) {
	return m.createSnapshot(ctx, GuestTypeQemu, node, vmid, name, description)
}

// CreateContainerSnapshot creates a snapshot of an LXC container.
func (m *Manager) CreateContainerSnapshot(ctx context.Context, node string, vmid int, name, description string) (map[string]any, error) {
	return m.createSnapshot(ctx, GuestTypeLXC, node, vmid, name, description)
}

func (m *Manager) createSnapshot(ctx context.Context, guestType, node string, vmid int, name, description string) (map[string]any, error) {
	form := url.Values{"snapname": {name}}
	if description != "" {
		form.Set("description", description)
	}
	data, err := m.api.Post(ctx, fmt.Sprintf("/nodes/%s/%s/%d/snapshot", node, guestType, vmid), form)
	if err != nil {
		return nil, err
	}

	label := "VM"
	if guestType == GuestTypeLXC {
		label = "container"
	}
	return map[string]any{
		"success": true,
		"task_id": data,
		"message": fmt.Sprintf("Snapshot '%s' creation initiated for %s %d", name, label, vmid),
	}, nil
}

// VMSnapshots lists snapshots of a QEMU VM.
func (m *Manager) VMSnapshots(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.listSnapshots(ctx, GuestTypeQemu, node, vmid)
}

// ContainerSnapshots lists snapshots of an LXC container.
func (m *Manager) ContainerSnapshots(ctx context.Context, node string, vmid int) (map[string]any, error) {
	return m.listSnapshots(ctx, GuestTypeLXC, node, vmid)
}

func (m *Manager) listSnapshots(ctx context.Context, guestType, node string, vmid int) (map[string]any, error) {
	data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/%s/%d/snapshot", node, guestType, vmid), nil)
	if err != nil {
		return nil, err
	}
	return map[string]any{"snapshots": toList(data)}, nil
}

// Templates lists every guest marked as a template, across all nodes and
// both guest types.
func (m *Manager) Templates(ctx context.Context) (map[string]any, error) {
	names, err := m.nodeNames(ctx)
	if err != nil {
		return nil, err
	}

	templates := make([]map[string]any, 0)
	for _, node := range names {
		for _, guestType := range []string{GuestTypeQemu, GuestTypeLXC} {
			data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/%s", node, guestType), nil)
			if err != nil {
				return nil, err
			}
			for _, guest := range toList(data) {
				if numField(guest, "template", 0) != 1 {
					continue
				}
				templates = append(templates, map[string]any{
					"vmid":      guest["vmid"],
					"name":      fieldOr(guest, "name", "unnamed"),
					"node":      node,
					"type":      guestType,
					"disk_size": fieldOr(guest, "maxdisk", 0),
					"memory":    fieldOr(guest, "maxmem", 0),
					"cpus":      fieldOr(guest, "cpus", 1),
				})
			}
		}
	}
	return map[string]any{"templates": templates, "count": len(templates)}, nil
}
