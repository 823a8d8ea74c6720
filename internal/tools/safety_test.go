package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/mcp-proxmox/internal/proxmox"
	"github.com/giantswarm/mcp-proxmox/internal/proxmox/proxmoxtest"
	"github.com/giantswarm/mcp-proxmox/internal/server"
)

func newSafetyContext(t *testing.T, readOnly bool) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(),
		server.WithManager(proxmox.NewManager(proxmoxtest.NewMockAPI(), nil)),
		server.WithReadOnlyMode(readOnly),
	)
	require.NoError(t, err)
	return sc
}

func TestCheckMutatingOperation_AllowedByDefault(t *testing.T) {
	sc := newSafetyContext(t, false)

	for _, op := range []string{"start", "stop", "reboot", "exec", "snapshot"} {
		assert.Nil(t, CheckMutatingOperation(sc, op), "operation %s should be allowed", op)
	}
}

func TestCheckMutatingOperation_BlockedInReadOnlyMode(t *testing.T) {
	sc := newSafetyContext(t, true)

	tests := []struct {
		operation string
		wantError string
	}{
		{"start", "Start operations are not allowed in read-only mode"},
		{"stop", "Stop operations are not allowed in read-only mode"},
		{"reboot", "Reboot operations are not allowed in read-only mode"},
		{"exec", "Exec operations are not allowed in read-only mode"},
		{"snapshot", "Snapshot operations are not allowed in read-only mode"},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			result := CheckMutatingOperation(sc, tt.operation)
			require.NotNil(t, result)
			assert.Contains(t, resultText(t, result), tt.wantError)
		})
	}
}
