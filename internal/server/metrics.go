package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/giantswarm/mcp-proxmox/internal/instrumentation"
)

// DefaultMetricsAddr is the default listen address for the metrics server.
const DefaultMetricsAddr = ":9090"

// MetricsServerConfig configures the standalone metrics HTTP server.
type MetricsServerConfig struct {
	// Addr is the listen address. Defaults to DefaultMetricsAddr when empty.
	Addr string

	// InstrumentationProvider supplies the Prometheus handler. Required.
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer serves Prometheus metrics on a dedicated listener, separate
// from the MCP transport so scraping never competes with tool traffic.
type MetricsServer struct {
	addr     string
	provider *instrumentation.Provider
	httpSrv  *http.Server
}

// NewMetricsServer creates a metrics server from the given configuration.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if config.InstrumentationProvider == nil {
		return nil, errors.New("instrumentation provider is required")
	}

	addr := config.Addr
	if addr == "" {
		addr = DefaultMetricsAddr
	}

	ms := &MetricsServer{
		addr:     addr,
		provider: config.InstrumentationProvider,
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", ms.provider.PrometheusHandler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	ms.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return ms, nil
}

// Addr returns the configured listen address.
func (ms *MetricsServer) Addr() string {
	return ms.addr
}

// Start begins serving metrics. It blocks until the server stops and
// returns http.ErrServerClosed on graceful shutdown.
func (ms *MetricsServer) Start() error {
	return ms.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (ms *MetricsServer) Shutdown(ctx context.Context) error {
	return ms.httpSrv.Shutdown(ctx)
}
