// Package middleware provides HTTP middleware for the MCP Proxmox server.
// These middleware functions handle request metrics and other cross-cutting concerns.
package middleware
