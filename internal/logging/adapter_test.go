package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferedAdapter returns an adapter writing JSON at debug level into buf.
func newBufferedAdapter(buf *bytes.Buffer) *SlogAdapter {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogAdapter(slog.New(handler))
}

func TestNewSlogAdapterNilFallsBackToDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	require.NotNil(t, adapter)
	assert.Equal(t, slog.Default(), adapter.Logger())
}

func TestSlogAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	adapter := newBufferedAdapter(&buf)

	tests := []struct {
		level string
		log   func(msg string, args ...any)
	}{
		{level: "DEBUG", log: adapter.Debug},
		{level: "INFO", log: adapter.Info},
		{level: "WARN", log: adapter.Warn},
		{level: "ERROR", log: adapter.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.log("proxmox call finished", "node", "pve1")

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "proxmox call finished")
			assert.Contains(t, out, `"node":"pve1"`)
		})
	}
}

func TestSlogAdapterWithAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	adapter := newBufferedAdapter(&buf)

	child := adapter.With("component", "registry")
	child.Info("tool dispatched", "tool", "get_nodes")

	out := buf.String()
	assert.Contains(t, out, `"component":"registry"`)
	assert.Contains(t, out, `"tool":"get_nodes"`)

	// The parent stays free of the child's attributes.
	buf.Reset()
	adapter.Info("plain entry")
	assert.NotContains(t, buf.String(), "component")
}

func TestDefaultLogger(t *testing.T) {
	adapter := DefaultLogger()
	require.NotNil(t, adapter)
	assert.NotNil(t, adapter.Logger())
}

func TestSlogAdapterImplementsLogger(t *testing.T) {
	var _ Logger = (*SlogAdapter)(nil)
}
