package proxmox

import (
	"context"
	"fmt"
	"strings"
)

// Storage lists the storage pools configured in the cluster.
func (m *Manager) Storage(ctx context.Context) (map[string]any, error) {
	data, err := m.api.Get(ctx, "/storage", nil)
	if err != nil {
		return nil, err
	}
	return map[string]any{"storage": toList(data)}, nil
}

// StorageDetails returns the configuration of one storage pool, enriched
// with type-specific fields and, when a node answers, live usage numbers.
func (m *Manager) StorageDetails(ctx context.Context, storage string) (map[string]any, error) {
	data, err := m.api.Get(ctx, "/storage/"+storage, nil)
	if err != nil {
		return nil, err
	}
	config := storageConfig(data)
	if config == nil {
		return nil, fmt.Errorf("Storage %s not found", storage)
	}

	details := map[string]any{
		"storage": storage,
		"type":    fieldOr(config, "type", "unknown"),
		"enabled": fieldOr(config, "enabled", 0),
		"shared":  fieldOr(config, "shared", 0),
		"content": splitList(strField(config, "content", "")),
		"nodes":   fieldOr(config, "nodes", "all"),
	}

	switch strings.ToLower(strField(config, "type", "")) {
	case "nfs":
		details["nfs"] = map[string]any{
			"server":  fieldOr(config, "server", "N/A"),
			"export":  fieldOr(config, "export", "N/A"),
			"path":    fieldOr(config, "path", "N/A"),
			"options": fieldOr(config, "options", "N/A"),
		}
	case "dir", "lvm", "lvmthin", "zfs", "zfspool":
		details["path"] = fieldOr(config, "path", "N/A")
	}

	// Live usage is best effort: ask the first node that the cluster
	// reports and fold the numbers in when it answers.
	if names, err := m.nodeNames(ctx); err == nil && len(names) > 0 {
		statusData, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/storage/%s/status", names[0], storage), nil)
		if err == nil {
			if status := toMap(statusData); len(status) > 0 {
				details["status"] = map[string]any{
					"total":     fieldOr(status, "total", 0),
					"used":      fieldOr(status, "used", 0),
					"available": fieldOr(status, "avail", 0),
					"active":    fieldOr(status, "active", 0),
				}
			}
		}
	}

	return details, nil
}

// storageConfig normalizes the GET /storage/{id} response, which some
// Proxmox versions return as a single-element list.
func storageConfig(data any) map[string]any {
	if list := toList(data); len(list) > 0 {
		return list[0]
	}
	if m := toMap(data); len(m) > 0 {
		return m
	}
	return nil
}

// Backups enumerates backup volumes. With both storage and node set, only
// that pair is queried; otherwise every node is crossed with every
// backup-capable storage, and pairs that fail to answer are skipped.
func (m *Manager) Backups(ctx context.Context, storage, node string) (map[string]any, error) {
	backups := make([]map[string]any, 0)

	if storage != "" && node != "" {
		content, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/storage/%s/content", node, storage), nil)
		if err != nil {
			return nil, err
		}
		backups = appendBackups(backups, toList(content), node, storage)
		return map[string]any{"backups": backups, "count": len(backups)}, nil
	}

	names, err := m.nodeNames(ctx)
	if err != nil {
		return nil, err
	}
	storageData, err := m.api.Get(ctx, "/storage", nil)
	if err != nil {
		return nil, err
	}

	for _, nodeName := range names {
		for _, stor := range toList(storageData) {
			if !strings.Contains(strField(stor, "content", ""), "backup") {
				continue
			}
			storName := strField(stor, "storage", "")
			content, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/storage/%s/content", nodeName, storName), nil)
			if err != nil {
				m.warnSkip("could not list backups on storage "+storName, nodeName, err)
				continue
			}
			backups = appendBackups(backups, toList(content), nodeName, storName)
		}
	}
	return map[string]any{"backups": backups, "count": len(backups)}, nil
}

func appendBackups(backups []map[string]any, content []map[string]any, node, storage string) []map[string]any {
	for _, item := range content {
		if strField(item, "content", "") != "backup" {
			continue
		}
		backups = append(backups, map[string]any{
			"volid":   item["volid"],
			"vmid":    item["vmid"],
			"node":    node,
			"storage": storage,
			"size":    fieldOr(item, "size", 0),
			"format":  item["format"],
			"ctime":   fieldOr(item, "ctime", 0),
			"notes":   fieldOr(item, "notes", ""),
		})
	}
	return backups
}
