// Package logging provides structured logging utilities for the mcp-proxmox application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Credential masking for API tokens
//   - Host/URL sanitization for security
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "guest.list")
//	logger.Info("listing guests",
//	    logging.Node("pve1"),
//	    logging.VMID(100))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("connecting",
//	    logging.Host(cfg.Host))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Proxmox host URLs have IP addresses redacted to prevent topology leakage
//   - API token values are never logged directly
package logging
