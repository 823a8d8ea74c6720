package proxmox

import (
	"context"
	"net/url"
	"testing"

	"github.com/giantswarm/mcp-proxmox/internal/proxmox/proxmoxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterStatus(t *testing.T) {
	mock := proxmoxtest.NewMockAPI()
	mock.GetFunc = func(_ context.Context, path string, query url.Values) (any, error) {
		switch {
		case path == "/cluster/status":
			return []any{
				map[string]any{"name": "homelab", "version": float64(9), "quorate": float64(1)},
			}, nil
		case path == "/cluster/resources" && query.Get("type") == "node":
			return []any{
				map[string]any{
					"type": "node", "node": "pve1", "status": "online",
					"maxcpu": float64(8), "maxmem": float64(32), "mem": float64(16),
					"maxdisk": float64(500), "disk": float64(200), "cpu": float64(0.25),
					"uptime": float64(3600),
				},
				map[string]any{
					"type": "node", "node": "pve2", "status": "offline",
					"maxcpu": float64(4), "maxmem": float64(16), "mem": float64(0),
					"maxdisk": float64(250), "disk": float64(0),
				},
			}, nil
		case path == "/cluster/resources" && query.Get("type") == "vm":
			return []any{
				map[string]any{"type": "qemu", "status": "running"},
				map[string]any{"type": "qemu", "status": "stopped"},
				map[string]any{"type": "lxc", "status": "running"},
			}, nil
		}
		t.Fatalf("unexpected GET %s?%s", path, query.Encode())
		return nil, nil
	}
	m := newTestManager(t, mock)

	result, err := m.ClusterStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "homelab", result["name"])
	assert.Equal(t, float64(9), result["version"])
	assert.Equal(t, float64(1), result["quorate"])

	nodes := result["nodes"].(map[string]any)
	assert.Equal(t, 2, nodes["total"])
	assert.Equal(t, 1, nodes["online"])

	resources := result["resources"].(map[string]any)
	assert.Equal(t, float64(12), resources["cpu"].(map[string]any)["total_cores"])
	memory := resources["memory"].(map[string]any)
	assert.Equal(t, float64(48), memory["total"])
	assert.Equal(t, float64(16), memory["used"])
	assert.Equal(t, float64(32), memory["free"])
	storage := resources["storage"].(map[string]any)
	assert.Equal(t, float64(750), storage["total"])
	assert.Equal(t, float64(550), storage["free"])

	vms := result["virtual_machines"].(map[string]any)
	assert.Equal(t, 2, vms["total"])
	assert.Equal(t, 1, vms["running"])
	assert.Equal(t, 1, vms["stopped"])

	cts := result["containers"].(map[string]any)
	assert.Equal(t, 1, cts["total"])
	assert.Equal(t, 1, cts["running"])
	assert.Equal(t, 0, cts["stopped"])
}

func TestClusterStatusMissingVersion(t *testing.T) {
	mock := proxmoxtest.NewMockAPI()
	mock.GetFunc = func(_ context.Context, path string, _ url.Values) (any, error) {
		if path == "/cluster/status" {
			return []any{map[string]any{"name": "homelab"}}, nil
		}
		return []any{}, nil
	}
	m := newTestManager(t, mock)

	result, err := m.ClusterStatus(context.Background())
	require.NoError(t, err)

	// Missing version serializes as null rather than a placeholder string.
	assert.Nil(t, result["version"])
	assert.Equal(t, true, result["quorate"])
}

func TestClusterLog(t *testing.T) {
	mock := proxmoxtest.NewMockAPI()
	mock.GetFunc = func(_ context.Context, path string, query url.Values) (any, error) {
		assert.Equal(t, "/cluster/log", path)
		assert.Equal(t, "50", query.Get("max"))
		return []any{
			map[string]any{"time": float64(1700000000), "node": "pve1", "user": "root@pam", "msg": "starting task", "pri": float64(5), "tag": "qmstart"},
			map[string]any{"msg": "quorum reached"},
		}, nil
	}
	m := newTestManager(t, mock)

	result, err := m.ClusterLog(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, result["count"])

	logs := result["logs"].([]map[string]any)
	assert.Equal(t, "starting task", logs[0]["message"])
	assert.Equal(t, float64(5), logs[0]["priority"])

	// Sparse entries pick up defaults.
	assert.Equal(t, 0, logs[1]["time"])
	assert.Equal(t, "cluster", logs[1]["node"])
	assert.Equal(t, "system", logs[1]["user"])
	assert.Equal(t, 6, logs[1]["priority"])
	assert.Equal(t, "system", logs[1]["tag"])
}
