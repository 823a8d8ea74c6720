package proxmox

import (
	"log/slog"
	"strings"
)

// Manager is the operation layer over the Proxmox API. Each method backs
// exactly one MCP tool and returns the tool's response payload.
//
// Multi-call aggregations (cluster-wide guest listings, backup enumeration,
// recent tasks) run sequentially; sources that fail mid-aggregation are
// logged at warn level and skipped, and the payload is returned without a
// partial-result marker.
type Manager struct {
	api    API
	logger *slog.Logger
}

// NewManager creates a Manager over the given API client.
// A nil logger falls back to slog.Default.
func NewManager(api API, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{api: api, logger: logger}
}

// toList coerces a decoded JSON value into a list of objects. Non-object
// elements are dropped, and non-list values (including null) yield a
// non-nil empty slice so the payload serializes as [].
func toList(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return make([]map[string]any, 0)
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// toMap coerces a decoded JSON value into an object, or nil.
func toMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// fieldOr returns m[key] when present and non-nil, otherwise def.
func fieldOr(m map[string]any, key string, def any) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return def
}

// strField returns m[key] as a string, or def when absent or not a string.
func strField(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

// numField returns m[key] as a float64, or def. JSON numbers always decode
// to float64 here.
func numField(m map[string]any, key string, def float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return def
}

// splitList splits a comma-joined Proxmox list field ("users", "groups",
// "privs", "content") into a slice. An empty field yields an empty slice,
// never nil, so it serializes as [].
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
