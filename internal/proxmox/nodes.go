package proxmox

import (
	"context"
	"errors"
	"fmt"

	"github.com/giantswarm/mcp-proxmox/internal/logging"
)

// Nodes lists all nodes in the cluster.
func (m *Manager) Nodes(ctx context.Context) (map[string]any, error) {
	data, err := m.api.Get(ctx, "/nodes", nil)
	if err != nil {
		return nil, err
	}
	nodes := toList(data)
	return map[string]any{"nodes": nodes, "count": len(nodes)}, nil
}

// NodeStatus returns detailed status for a single node.
func (m *Manager) NodeStatus(ctx context.Context, node string) (map[string]any, error) {
	data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/status", node), nil)
	if err != nil {
		return nil, err
	}
	status := toMap(data)
	if len(status) == 0 {
		return nil, errors.New("No status data returned")
	}
	return status, nil
}

// nodeNames lists the cluster's node names, for aggregation fan-out.
func (m *Manager) nodeNames(ctx context.Context) ([]string, error) {
	data, err := m.api.Get(ctx, "/nodes", nil)
	if err != nil {
		return nil, err
	}
	nodes := toList(data)
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if name := strField(n, "node", ""); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// warnSkip logs a skipped aggregation source.
func (m *Manager) warnSkip(msg, node string, err error) {
	m.logger.Warn(msg, "node", node, logging.SanitizedErr(err))
}
