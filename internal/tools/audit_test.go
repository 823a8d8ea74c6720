package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-proxmox/internal/instrumentation"
	"github.com/giantswarm/mcp-proxmox/internal/proxmox"
	"github.com/giantswarm/mcp-proxmox/internal/proxmox/proxmoxtest"
	"github.com/giantswarm/mcp-proxmox/internal/server"
)

func newInstrumentedContext(t *testing.T) *server.ServerContext {
	t.Helper()

	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName:       "mcp-proxmox-test",
		ServiceVersion:    "test",
		Enabled:           true,
		MetricsExporter:   "prometheus",
		TracingExporter:   "none",
		TraceSamplingRate: 0.1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	sc, err := server.NewServerContext(context.Background(),
		server.WithManager(proxmox.NewManager(proxmoxtest.NewMockAPI(), nil)),
		server.WithInstrumentationProvider(provider),
	)
	require.NoError(t, err)
	return sc
}

func TestWrapWithAuditLogging_NoProviderPassesThrough(t *testing.T) {
	sc := newRegistryContext(t)

	called := false
	wrapped := WrapWithAuditLogging("get_nodes", func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		called = true
		return TextResult(map[string]string{"ok": "yes"})
	}, sc)

	result, err := wrapped(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, resultText(t, result), "\"ok\": \"yes\"")
}

func TestWrapWithAuditLogging_Success(t *testing.T) {
	sc := newInstrumentedContext(t)

	wrapped := WrapWithAuditLogging("get_vm_status", func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		return TextResult(map[string]any{"status": "running"})
	}, sc)

	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]interface{}{
		"node": "pve1",
		"vmid": float64(100),
	}

	result, err := wrapped(context.Background(), request)
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "running")
}

func TestWrapWithAuditLogging_HandlerError(t *testing.T) {
	sc := newInstrumentedContext(t)

	wantErr := errors.New("handler blew up")
	wrapped := WrapWithAuditLogging("get_nodes", func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
		return nil, wantErr
	}, sc)

	result, err := wrapped(context.Background(), mcp.CallToolRequest{})
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, result)
}

func TestExtractAuditInfoFromArgs(t *testing.T) {
	invocation := instrumentation.NewToolInvocation("get_vm_network")

	extractAuditInfoFromArgs(invocation, map[string]interface{}{
		"node":    "pve2",
		"vmid":    float64(205),
		"vm_type": "lxc",
		"storage": "local-zfs",
	})

	assert.Equal(t, "pve2", invocation.Node)
	assert.Equal(t, 205, invocation.VMID)
	assert.Equal(t, "lxc", invocation.GuestType)
	assert.Equal(t, "local-zfs", invocation.Storage)
}

func TestExtractAuditInfoFromArgs_Empty(t *testing.T) {
	invocation := instrumentation.NewToolInvocation("get_nodes")

	extractAuditInfoFromArgs(invocation, map[string]interface{}{})

	assert.Empty(t, invocation.Node)
	assert.Zero(t, invocation.VMID)
	assert.Empty(t, invocation.GuestType)
	assert.Empty(t, invocation.Storage)
}
