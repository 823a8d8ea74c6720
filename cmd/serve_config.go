package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/giantswarm/mcp-proxmox/internal/server"
)

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// ReadOnlyMode refuses tools that change guest or cluster state.
	ReadOnlyMode bool

	DebugMode bool

	// Metrics holds the dedicated metrics server configuration.
	Metrics MetricsServeConfig
}

// MetricsServeConfig holds configuration for the standalone metrics server.
type MetricsServeConfig struct {
	// Enabled controls whether the dedicated metrics listener is started.
	// Only effective when instrumentation itself is enabled.
	Enabled bool

	// Addr is the metrics listen address, e.g. ":9090".
	Addr string
}

// slogServerLogger adapts a *slog.Logger to the server.Logger interface.
type slogServerLogger struct {
	logger *slog.Logger
}

func newSlogServerLogger(logger *slog.Logger) *slogServerLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogServerLogger{logger: logger}
}

func (l *slogServerLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

func (l *slogServerLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

func (l *slogServerLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

func (l *slogServerLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}

func (l *slogServerLogger) With(args ...interface{}) server.Logger {
	return &slogServerLogger{logger: l.logger.With(args...)}
}

// loadEnvIfEmpty loads an environment variable into a string pointer if it's empty.
func loadEnvIfEmpty(target *string, envKey string) {
	if *target == "" {
		*target = os.Getenv(envKey)
	}
}

// parseBoolEnv parses a boolean environment variable, returning the default
// when the variable is unset or malformed.
func parseBoolEnv(envKey string, defaultValue bool) bool {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
