// Package instrumentation provides comprehensive OpenTelemetry instrumentation
// for the mcp-proxmox server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for HTTP requests, MCP tool calls, and Proxmox API requests
//   - Distributed tracing for tool invocations and upstream API calls
//   - Prometheus metrics export via /metrics endpoint
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// MCP Tool Metrics:
//   - mcp_tool_calls_total: Counter of tool invocations by category and status
//   - mcp_tool_call_duration_seconds: Histogram of tool invocation durations
//
// Proxmox API Metrics:
//   - proxmox_api_requests_total: Counter of upstream API requests by method and status
//   - proxmox_api_request_duration_seconds: Histogram of upstream request durations
//
// # Cardinality Considerations
//
// Tool names and normalized API endpoints are only recorded as labels when
// detailed labels are enabled (METRICS_DETAILED_LABELS=true). By default the
// metrics carry the tool category and request method/status only, keeping
// series counts low. VMIDs and UPIDs never appear in labels; endpoints are
// normalized before recording.
//
// High cardinality can lead to:
//   - Increased memory usage in metrics backends
//   - Slower query performance
//   - Higher storage costs
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - MCP tool invocations
//   - Proxmox API calls
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: false)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: mcp-proxmox)
//   - METRICS_DETAILED_LABELS: Include tool name and endpoint labels (default: false)
//
// # Example Usage
//
//	// Initialize instrumentation
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "mcp-proxmox",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	// Get metrics recorder
//	recorder := provider.Metrics()
//
//	// Record a tool call
//	recorder.RecordToolCall(ctx, "get_vms", "success", time.Since(start))
//
//	// Record an upstream API request
//	recorder.RecordProxmoxRequest(ctx, "GET", "/nodes", "success", time.Since(start))
package instrumentation
