// Package proxmox provides the Proxmox VE API client and the operation
// layer backing the MCP tools.
//
// The package is split into three layers:
//
//   - Config: session configuration derived from environment variables
//     (host, user, API token, TLS verification).
//   - API: a thin interface over the Proxmox REST API (/api2/json) with a
//     token-authenticated HTTP implementation. Responses are returned as
//     decoded JSON values with the {"data": ...} envelope already removed.
//   - Manager: the operation layer. Each method backs exactly one MCP tool
//     and returns the tool's response payload, including multi-call
//     aggregations across nodes and storages.
//
// All calls accept a context.Context for cancellation. The client performs
// no retries and sets no per-call timeout; a GET /version probe at
// construction time is the only connectivity check.
package proxmox
