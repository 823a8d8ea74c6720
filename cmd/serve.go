package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/giantswarm/mcp-proxmox/internal/instrumentation"
	"github.com/giantswarm/mcp-proxmox/internal/logging"
	"github.com/giantswarm/mcp-proxmox/internal/proxmox"
	"github.com/giantswarm/mcp-proxmox/internal/server"
	"github.com/giantswarm/mcp-proxmox/internal/tools"
	"github.com/giantswarm/mcp-proxmox/internal/tools/access"
	"github.com/giantswarm/mcp-proxmox/internal/tools/cluster"
	"github.com/giantswarm/mcp-proxmox/internal/tools/guest"
	"github.com/giantswarm/mcp-proxmox/internal/tools/monitoring"
	"github.com/giantswarm/mcp-proxmox/internal/tools/network"
	"github.com/giantswarm/mcp-proxmox/internal/tools/node"
	"github.com/giantswarm/mcp-proxmox/internal/tools/storage"
)

// Transport type constants
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

const serverName = "mcp-proxmox"

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string
		readOnly        bool
		debugMode       bool
		metricsEnabled  bool
		metricsAddr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Proxmox server",
		Long: `Start the MCP server that provides Proxmox VE tools over the
Model Context Protocol. Connection settings are read from the PROXMOX_HOST,
PROXMOX_TOKEN_NAME (or PROXMOX_TOKEN_ID) and PROXMOX_TOKEN_VALUE (or
PROXMOX_TOKEN_SECRET) environment variables. When the connection cannot be
established, the server still starts and reports the initialization error on
every tool call.

Supported transports:
  - stdio:           Standard input/output (default)
  - sse:             Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := ServeConfig{
				Transport:       transport,
				HTTPAddr:        httpAddr,
				SSEEndpoint:     sseEndpoint,
				MessageEndpoint: messageEndpoint,
				HTTPEndpoint:    httpEndpoint,
				ReadOnlyMode:    readOnly,
				DebugMode:       debugMode,
				Metrics: MetricsServeConfig{
					Enabled: metricsEnabled,
					Addr:    metricsAddr,
				},
			}

			// Environment fallbacks for containerized deployments where
			// flags are awkward to pass through.
			if !config.Metrics.Enabled {
				config.Metrics.Enabled = parseBoolEnv("METRICS_SERVER_ENABLED", false)
			}
			loadEnvIfEmpty(&config.Metrics.Addr, "METRICS_SERVER_ADDR")
			if config.Metrics.Addr == "" {
				config.Metrics.Addr = server.DefaultMetricsAddr
			}
			if !config.ReadOnlyMode {
				config.ReadOnlyMode = parseBoolEnv("PROXMOX_READ_ONLY", false)
			}

			return runServe(config)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", transportStdio,
		"Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080",
		"HTTP server address (used by sse and streamable-http transports)")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse",
		"SSE endpoint path (used by sse transport)")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message",
		"Message endpoint path (used by sse transport)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp",
		"HTTP endpoint path (used by streamable-http transport)")
	cmd.Flags().BoolVar(&readOnly, "read-only", false,
		"Refuse tools that change guest or cluster state")
	cmd.Flags().BoolVar(&debugMode, "debug", false,
		"Enable debug logging")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", false,
		"Serve Prometheus metrics on a dedicated listener (requires INSTRUMENTATION_ENABLED=true)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr,
		"Metrics server listen address")

	return cmd
}

// runServe starts the MCP server with the given configuration.
func runServe(config ServeConfig) error {
	switch config.Transport {
	case transportStdio, transportSSE, transportStreamableHTTP:
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", config.Transport)
	}

	// Logs go to stderr: stdout belongs to the stdio transport.
	logLevel := slog.LevelInfo
	if config.DebugMode {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up instrumentation. Disabled by default; a disabled provider is
	// inert and adds no overhead.
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = rootCmd.Version
	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize instrumentation: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(flushCtx); err != nil && config.Transport != transportStdio {
			logger.Error("failed to shut down instrumentation", logging.Err(err))
		}
	}()

	serverOpts := []server.Option{
		server.WithLogger(newSlogServerLogger(logger)),
		server.WithServerName(serverName),
		server.WithReadOnlyMode(config.ReadOnlyMode),
		server.WithInstrumentationProvider(provider),
	}

	// Connect to Proxmox. A failure here does not abort startup: the
	// server runs in degraded mode and surfaces the error on every tool
	// call, so MCP clients get a diagnosable payload instead of a dead
	// transport.
	clientOpts := []proxmox.ClientOption{proxmox.WithLogger(logger)}
	if provider.Enabled() {
		clientOpts = append(clientOpts, proxmox.WithMetricsRecorder(provider.Metrics()))
	}
	api, err := proxmox.NewAPIFromEnv(shutdownCtx, clientOpts...)
	if err != nil {
		logger.Error("Proxmox connection failed, starting in degraded mode", logging.SanitizedErr(err))
		serverOpts = append(serverOpts, server.WithInitError(err))
	} else {
		serverOpts = append(serverOpts, server.WithManager(proxmox.NewManager(api, logger)))
	}

	serverContext, err := server.NewServerContext(shutdownCtx, serverOpts...)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil && config.Transport != transportStdio {
			logger.Error("error during server context shutdown", logging.Err(err))
		}
	}()

	mcpSrv := mcpserver.NewMCPServer(serverName, rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
	)

	registry := tools.NewRegistry(mcpSrv, serverContext)
	registrations := []func(*tools.Registry) error{
		node.RegisterNodeTools,
		guest.RegisterGuestTools,
		storage.RegisterStorageTools,
		cluster.RegisterClusterTools,
		access.RegisterAccessTools,
		monitoring.RegisterMonitoringTools,
		network.RegisterNetworkTools,
	}
	for _, register := range registrations {
		if err := register(registry); err != nil {
			return fmt.Errorf("failed to register tools: %w", err)
		}
	}

	logger.Debug("registered tools", "count", len(registry.ToolNames()))

	switch config.Transport {
	case transportStdio:
		return runStdioServer(mcpSrv)
	case transportSSE:
		return runSSEServer(mcpSrv, config.HTTPAddr, config.SSEEndpoint, config.MessageEndpoint, shutdownCtx, config.DebugMode)
	case transportStreamableHTTP:
		return runStreamableHTTPServer(mcpSrv, config.HTTPAddr, config.HTTPEndpoint, shutdownCtx, provider, serverContext, config.Metrics)
	default:
		return fmt.Errorf("unsupported transport type: %s", config.Transport)
	}
}
