package proxmox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	m := newTestManager(t, stubGet(map[string]any{
		"/access/users": []any{
			map[string]any{
				"userid": "root@pam", "enable": float64(1),
				"email": "admin@example.com", "groups": "admins,ops",
			},
			map[string]any{"userid": "monitor@pve"},
		},
	}))

	result, err := m.Users(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result["count"])

	users := result["users"].([]map[string]any)
	assert.Equal(t, []string{"admins", "ops"}, users[0]["groups"])
	assert.Equal(t, "admin@example.com", users[0]["email"])

	// Sparse entries pick up defaults.
	assert.Equal(t, 1, users[1]["enable"])
	assert.Equal(t, "", users[1]["firstname"])
	assert.Equal(t, []string{}, users[1]["groups"])
	assert.Equal(t, []any{}, users[1]["tokens"])
}

func TestGroups(t *testing.T) {
	m := newTestManager(t, stubGet(map[string]any{
		"/access/groups": []any{
			map[string]any{"groupid": "admins", "comment": "Administrators", "users": "root@pam,ops@pve"},
			map[string]any{"groupid": "empty"},
		},
	}))

	result, err := m.Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result["count"])

	groups := result["groups"].([]map[string]any)
	assert.Equal(t, []string{"root@pam", "ops@pve"}, groups[0]["users"])
	assert.Equal(t, []string{}, groups[1]["users"])
}

func TestRoles(t *testing.T) {
	m := newTestManager(t, stubGet(map[string]any{
		"/access/roles": []any{
			map[string]any{"roleid": "PVEVMAdmin", "privs": "VM.Allocate,VM.Audit,VM.Console", "special": float64(1)},
		},
	}))

	result, err := m.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result["count"])

	roles := result["roles"].([]map[string]any)
	assert.Equal(t, []string{"VM.Allocate", "VM.Audit", "VM.Console"}, roles[0]["privs"])
	assert.Equal(t, float64(1), roles[0]["special"])
}
