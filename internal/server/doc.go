// Package server provides the ServerContext pattern and related infrastructure
// for the MCP Proxmox server.
//
// This package implements the core server architecture patterns including:
//
//   - ServerContext: Encapsulates all server dependencies and lifecycle management
//   - Functional Options: Clean dependency injection and configuration
//   - Logger Interface: Abstraction for logging operations
//   - Configuration Management: Centralized server configuration
//   - HealthChecker: Liveness and readiness endpoints for probes
//   - MetricsServer: Dedicated Prometheus scrape endpoint
//
// The ServerContext Pattern:
//
// The ServerContext struct follows the context pattern commonly used in Go
// applications to encapsulate dependencies and provide clean separation of
// concerns. It includes:
//
//   - Proxmox manager for all API operations
//   - Logger interface
//   - Configuration settings
//   - Context for cancellation and timeouts
//   - Lifecycle management (shutdown, cleanup)
//
// All dependencies are injected using functional options, making the code
// highly testable and modular.
//
// Degraded mode:
//
// When the Proxmox connection cannot be established at startup, the server
// is constructed with WithInitError instead of WithManager. Tools remain
// registered and every call answers with the initialization error, so MCP
// clients can still list tools and diagnose the configuration problem.
//
// Example usage:
//
//	ctx := context.Background()
//	serverCtx, err := NewServerContext(ctx,
//		WithManager(manager),
//		WithLogger(customLogger),
//		WithReadOnlyMode(true),
//		WithLogLevel("debug"),
//	)
//	if err != nil {
//		return err
//	}
//	defer serverCtx.Shutdown()
package server
