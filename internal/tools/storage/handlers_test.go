package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-proxmox/internal/proxmox"
	"github.com/giantswarm/mcp-proxmox/internal/proxmox/proxmoxtest"
	"github.com/giantswarm/mcp-proxmox/internal/server"
	"github.com/giantswarm/mcp-proxmox/internal/tools"
)

func newTestContext(t *testing.T, api *proxmoxtest.MockAPI) *server.ServerContext {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc, err := server.NewServerContext(context.Background(),
		server.WithManager(proxmox.NewManager(api, logger)))
	require.NoError(t, err)
	return sc
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent in result, got %T", result.Content[0])
	return textContent.Text
}

func storageRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func TestRegisterStorageTools(t *testing.T) {
	reg := tools.NewRegistry(nil, newTestContext(t, proxmoxtest.NewMockAPI()))

	require.NoError(t, RegisterStorageTools(reg))
	assert.Equal(t, []string{"get_storage", "get_storage_details", "get_backups"}, reg.ToolNames())
}

func TestHandleGetStorage(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		assert.Equal(t, "/storage", path)
		return []any{
			map[string]any{"storage": "local", "type": "dir"},
			map[string]any{"storage": "local-zfs", "type": "zfspool"},
		}, nil
	}
	sc := newTestContext(t, api)

	result, err := handleGetStorage(context.Background(), mcp.CallToolRequest{}, sc)
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "\"local\"")
	assert.Contains(t, text, "\"local-zfs\"")
}

func TestHandleGetStorageDetails(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		switch path {
		case "/storage/local":
			return []any{map[string]any{
				"type":    "dir",
				"content": "iso,backup,vztmpl",
				"path":    "/var/lib/vz",
			}}, nil
		case "/nodes":
			return []any{map[string]any{"node": "pve1"}}, nil
		case "/nodes/pve1/storage/local/status":
			return map[string]any{
				"total":  float64(500000),
				"used":   float64(100000),
				"avail":  float64(400000),
				"active": float64(1),
			}, nil
		}
		t.Fatalf("unexpected path %s", path)
		return nil, nil
	}
	sc := newTestContext(t, api)

	result, err := handleGetStorageDetails(context.Background(), storageRequest(map[string]interface{}{
		"storage": "local",
	}), sc)
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "\"type\": \"dir\"")
	assert.Contains(t, text, "\"/var/lib/vz\"")
	assert.Contains(t, text, "\"iso\"")
	assert.Contains(t, text, "\"total\": 500000")
}

func TestHandleGetStorageDetails_MissingStorage(t *testing.T) {
	sc := newTestContext(t, proxmoxtest.NewMockAPI())

	result, err := handleGetStorageDetails(context.Background(), mcp.CallToolRequest{}, sc)
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "\"error\": \"storage parameter is required\"")
}

func TestHandleGetBackups_SpecificStorageAndNode(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		assert.Equal(t, "/nodes/pve1/storage/local/content", path)
		return []any{
			map[string]any{
				"volid":   "local:backup/vzdump-qemu-100.vma.zst",
				"vmid":    float64(100),
				"content": "backup",
				"size":    float64(1024),
				"format":  "vma.zst",
			},
			map[string]any{"volid": "local:iso/debian.iso", "content": "iso"},
		}, nil
	}
	sc := newTestContext(t, api)

	result, err := handleGetBackups(context.Background(), storageRequest(map[string]interface{}{
		"storage": "local",
		"node":    "pve1",
	}), sc)
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "\"count\": 1")
	assert.Contains(t, text, "vzdump-qemu-100")
	assert.NotContains(t, text, "debian.iso")
}

func TestHandleGetBackups_AllStorages(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		switch path {
		case "/nodes":
			return []any{map[string]any{"node": "pve1"}}, nil
		case "/storage":
			return []any{
				map[string]any{"storage": "local", "content": "iso,backup"},
				map[string]any{"storage": "local-zfs", "content": "images,rootdir"},
			}, nil
		case "/nodes/pve1/storage/local/content":
			return []any{
				map[string]any{
					"volid":   "local:backup/vzdump-lxc-200.tar.zst",
					"vmid":    float64(200),
					"content": "backup",
				},
			}, nil
		}
		t.Fatalf("unexpected path %s", path)
		return nil, nil
	}
	sc := newTestContext(t, api)

	result, err := handleGetBackups(context.Background(), mcp.CallToolRequest{}, sc)
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "\"count\": 1")
	assert.Contains(t, text, "vzdump-lxc-200")
}
