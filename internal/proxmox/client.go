package proxmox

import (
	"context"
	"net/url"
	"time"
)

// API is the low-level interface to the Proxmox VE REST API.
//
// Paths are given relative to the /api2/json root (e.g. "/nodes",
// "/nodes/pve1/qemu/100/status/current"). Both methods return the decoded
// value of the response's "data" field: a JSON object decodes to
// map[string]any, an array to []any, and a bare string (task UPIDs) to
// string. A JSON null decodes to nil; callers treat nil as an empty
// collection.
type API interface {
	// Get performs a GET request with an optional query string.
	Get(ctx context.Context, path string, query url.Values) (any, error)

	// Post performs a POST request with an optional form-encoded body.
	Post(ctx context.Context, path string, form url.Values) (any, error)
}

// MetricsRecorder receives a record for every Proxmox API request made by
// the client. Implemented by the instrumentation package; a nil recorder
// disables recording.
type MetricsRecorder interface {
	RecordProxmoxRequest(ctx context.Context, method, endpoint, status string, duration time.Duration)
}
