package proxmox

import (
	"context"
	"net/url"
	"strconv"
)

// ClusterStatus returns a cluster-wide health and resource summary: node
// totals, aggregated CPU/memory/storage capacity, and guest counts by
// status.
func (m *Manager) ClusterStatus(ctx context.Context) (map[string]any, error) {
	statusData, err := m.api.Get(ctx, "/cluster/status", nil)
	if err != nil {
		return nil, err
	}
	clusterStatus := toList(statusData)

	nodeData, err := m.api.Get(ctx, "/cluster/resources", url.Values{"type": {"node"}})
	if err != nil {
		return nil, err
	}

	var (
		totalCPU        float64
		totalMemory     float64
		totalMemoryUsed float64
		totalDisk       float64
		totalDiskUsed   float64
		onlineNodes     int
	)
	nodesInfo := make([]map[string]any, 0)
	for _, node := range toList(nodeData) {
		if strField(node, "type", "") != "node" {
			continue
		}
		totalCPU += numField(node, "maxcpu", 0)
		totalMemory += numField(node, "maxmem", 0)
		totalMemoryUsed += numField(node, "mem", 0)
		totalDisk += numField(node, "maxdisk", 0)
		totalDiskUsed += numField(node, "disk", 0)
		if strField(node, "status", "") == "online" {
			onlineNodes++
		}
		nodesInfo = append(nodesInfo, map[string]any{
			"name":       node["node"],
			"status":     fieldOr(node, "status", "unknown"),
			"cpu_usage":  fieldOr(node, "cpu", 0),
			"memory":     fieldOr(node, "mem", 0),
			"max_memory": fieldOr(node, "maxmem", 0),
			"disk":       fieldOr(node, "disk", 0),
			"max_disk":   fieldOr(node, "maxdisk", 0),
			"uptime":     fieldOr(node, "uptime", 0),
		})
	}

	guestData, err := m.api.Get(ctx, "/cluster/resources", url.Values{"type": {"vm"}})
	if err != nil {
		return nil, err
	}
	var vmCount, ctCount, runningVMs, runningCTs int
	for _, guest := range toList(guestData) {
		running := strField(guest, "status", "") == "running"
		switch strField(guest, "type", "") {
		case GuestTypeQemu:
			vmCount++
			if running {
				runningVMs++
			}
		case GuestTypeLXC:
			ctCount++
			if running {
				runningCTs++
			}
		}
	}

	name := any("Proxmox Cluster")
	version := any("unknown")
	quorate := any(true)
	if len(clusterStatus) > 0 {
		name = fieldOr(clusterStatus[0], "name", "Proxmox Cluster")
		version = clusterStatus[0]["version"]
		quorate = fieldOr(clusterStatus[0], "quorate", true)
	}

	return map[string]any{
		"name":    name,
		"version": version,
		"nodes": map[string]any{
			"total":   len(nodesInfo),
			"online":  onlineNodes,
			"details": nodesInfo,
		},
		"resources": map[string]any{
			"cpu": map[string]any{
				"total_cores": totalCPU,
			},
			"memory": map[string]any{
				"total": totalMemory,
				"used":  totalMemoryUsed,
				"free":  totalMemory - totalMemoryUsed,
			},
			"storage": map[string]any{
				"total": totalDisk,
				"used":  totalDiskUsed,
				"free":  totalDisk - totalDiskUsed,
			},
		},
		"virtual_machines": map[string]any{
			"total":   vmCount,
			"running": runningVMs,
			"stopped": vmCount - runningVMs,
		},
		"containers": map[string]any{
			"total":   ctCount,
			"running": runningCTs,
			"stopped": ctCount - runningCTs,
		},
		"quorate": quorate,
	}, nil
}

// ClusterLog returns the most recent cluster log entries, normalized to a
// stable shape.
func (m *Manager) ClusterLog(ctx context.Context, maxLines int) (map[string]any, error) {
	if maxLines <= 0 {
		maxLines = 50
	}
	data, err := m.api.Get(ctx, "/cluster/log", url.Values{"max": {strconv.Itoa(maxLines)}})
	if err != nil {
		return nil, err
	}

	logs := make([]map[string]any, 0)
	for _, entry := range toList(data) {
		logs = append(logs, map[string]any{
			"time":     fieldOr(entry, "time", 0),
			"node":     fieldOr(entry, "node", "cluster"),
			"user":     fieldOr(entry, "user", "system"),
			"message":  fieldOr(entry, "msg", ""),
			"priority": fieldOr(entry, "pri", 6),
			"tag":      fieldOr(entry, "tag", "system"),
		})
	}
	return map[string]any{"logs": logs, "count": len(logs)}, nil
}
