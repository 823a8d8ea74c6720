package instrumentation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		ServiceName:       "mcp-proxmox-test",
		Enabled:           false,
		TraceSamplingRate: 0.1,
	})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	// Metrics recorder is never nil; recording on it is a no-op.
	require.NotNil(t, provider.Metrics())
	provider.Metrics().RecordToolCall(context.Background(), "get_nodes", StatusSuccess, time.Millisecond)
	assert.Nil(t, provider.AuditLogger())

	// Shutdown on a disabled provider does nothing.
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_PrometheusEnabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		ServiceName:       "mcp-proxmox-test",
		ServiceVersion:    "test",
		Enabled:           true,
		MetricsExporter:   "prometheus",
		TracingExporter:   "none",
		TraceSamplingRate: 0.1,
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, provider.Shutdown(context.Background()))
	}()

	assert.True(t, provider.Enabled())
	require.NotNil(t, provider.Metrics())
	require.NotNil(t, provider.AuditLogger())

	provider.Metrics().RecordToolCall(context.Background(), "get_vms", StatusSuccess, 5*time.Millisecond)

	// The scrape endpoint must serve the recorded metrics.
	rec := httptest.NewRecorder()
	provider.PrometheusHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mcp_tool_calls_total")
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{
		Enabled:           true,
		MetricsExporter:   "graphite",
		TraceSamplingRate: 0.1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metrics exporter")
}

func TestPrometheusHandler_DisabledServesEmptyRegistry(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{
		Enabled:           false,
		TraceSamplingRate: 0.1,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	provider.PrometheusHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
