package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredString(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		param   string
		want    string
		wantErr string
	}{
		{
			name:  "present",
			args:  map[string]interface{}{"node": "pve1"},
			param: "node",
			want:  "pve1",
		},
		{
			name:    "missing",
			args:    map[string]interface{}{},
			param:   "node",
			wantErr: "node parameter is required",
		},
		{
			name:    "empty string",
			args:    map[string]interface{}{"node": ""},
			param:   "node",
			wantErr: "node parameter is required",
		},
		{
			name:    "wrong type",
			args:    map[string]interface{}{"node": 42},
			param:   "node",
			wantErr: "node parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredString(tt.args, tt.param)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredInt(t *testing.T) {
	// JSON numbers decode to float64, so that is the common shape.
	got, err := RequiredInt(map[string]interface{}{"vmid": float64(100)}, "vmid")
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	got, err = RequiredInt(map[string]interface{}{"vmid": 101}, "vmid")
	require.NoError(t, err)
	assert.Equal(t, 101, got)

	_, err = RequiredInt(map[string]interface{}{}, "vmid")
	require.Error(t, err)
	assert.Equal(t, "vmid parameter is required", err.Error())

	_, err = RequiredInt(map[string]interface{}{"vmid": "100"}, "vmid")
	require.Error(t, err)
}

func TestOptionalString(t *testing.T) {
	args := map[string]interface{}{"vm_type": "lxc", "empty": ""}

	assert.Equal(t, "lxc", OptionalString(args, "vm_type", "qemu"))
	assert.Equal(t, "qemu", OptionalString(args, "missing", "qemu"))
	assert.Equal(t, "qemu", OptionalString(args, "empty", "qemu"))
}

func TestOptionalInt(t *testing.T) {
	args := map[string]interface{}{"limit": float64(5), "raw": 7}

	assert.Equal(t, 5, OptionalInt(args, "limit", 20))
	assert.Equal(t, 7, OptionalInt(args, "raw", 20))
	assert.Equal(t, 20, OptionalInt(args, "missing", 20))
	assert.Equal(t, 50, OptionalInt(map[string]interface{}{"max_lines": "ten"}, "max_lines", 50))
}
