package access

import (
	"context"
	"errors"
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

func TestRegisterAccessTools(t *testing.T) {
	reg := tools.NewRegistry(nil, newTestContext(t, proxmoxtest.NewMockAPI()))

	require.NoError(t, RegisterAccessTools(reg))
	assert.Equal(t, []string{"get_users", "get_groups", "get_roles"}, reg.ToolNames())
}

func TestHandleGetUsers(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		assert.Equal(t, "/access/users", path)
		return []any{
			map[string]any{
				"userid": "root@pam",
				"groups": "admin,ops",
			},
			map[string]any{
				"userid": "monitor@pve",
				"enable": float64(0),
			},
		}, nil
	}
	sc := newTestContext(t, api)

	result, err := handleGetUsers(context.Background(), mcp.CallToolRequest{}, sc)
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "\"count\": 2")
	assert.Contains(t, text, "\"root@pam\"")
	// Comma-joined groups come back as a proper list.
	assert.Contains(t, text, "\"admin\"")
	assert.Contains(t, text, "\"ops\"")
}

func TestHandleGetGroups(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		assert.Equal(t, "/access/groups", path)
		return []any{
			map[string]any{"groupid": "admin", "users": "root@pam,alice@pve"},
		}, nil
	}
	sc := newTestContext(t, api)

	result, err := handleGetGroups(context.Background(), mcp.CallToolRequest{}, sc)
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "\"count\": 1")
	assert.Contains(t, text, "\"alice@pve\"")
}

func TestHandleGetRoles(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		assert.Equal(t, "/access/roles", path)
		return []any{
			map[string]any{"roleid": "PVEAdmin", "privs": "VM.Allocate,VM.Audit"},
		}, nil
	}
	sc := newTestContext(t, api)

	result, err := handleGetRoles(context.Background(), mcp.CallToolRequest{}, sc)
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "\"PVEAdmin\"")
	assert.Contains(t, text, "\"VM.Allocate\"")
	assert.Contains(t, text, "\"VM.Audit\"")
}

func TestHandleGetUsers_UpstreamError(t *testing.T) {
	api := proxmoxtest.NewMockAPI()
	api.GetFunc = func(ctx context.Context, path string, query url.Values) (any, error) {
		return nil, errors.New("401 authentication failure")
	}
	sc := newTestContext(t, api)

	result, err := handleGetUsers(context.Background(), mcp.CallToolRequest{}, sc)
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "\"error\": \"401 authentication failure\"")
}
