package proxmox

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/giantswarm/mcp-proxmox/internal/proxmox/proxmoxtest"
)

// stubGet wires a mock API whose GET responses come from a path-keyed map.
// A value of type error makes that path fail; unmapped paths fail too.
func stubGet(responses map[string]any) *proxmoxtest.MockAPI {
	mock := proxmoxtest.NewMockAPI()
	mock.GetFunc = func(_ context.Context, path string, _ url.Values) (any, error) {
		resp, ok := responses[path]
		if !ok {
			return nil, fmt.Errorf("no route for %s", path)
		}
		if err, isErr := resp.(error); isErr {
			return nil, err
		}
		return resp, nil
	}
	return mock
}

func newTestManager(t *testing.T, api API) *Manager {
	t.Helper()
	return NewManager(api, nil)
}

// twoNodes is the /nodes response shared by the aggregation tests.
func twoNodes() []any {
	return []any{
		map[string]any{"node": "pve1", "status": "online"},
		map[string]any{"node": "pve2", "status": "online"},
	}
}
