package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with per-call identifiers.

// ToolCategory represents a classification of MCP tool names for metrics.
type ToolCategory string

// Tool category classifications for metrics cardinality control.
const (
	// ToolCategoryNode covers node discovery and status tools.
	ToolCategoryNode ToolCategory = "node"

	// ToolCategoryGuest covers VM and container tools (listing, lifecycle,
	// command execution, snapshots, templates).
	ToolCategoryGuest ToolCategory = "guest"

	// ToolCategoryStorage covers storage pool and backup tools.
	ToolCategoryStorage ToolCategory = "storage"

	// ToolCategoryCluster covers cluster status and log tools.
	ToolCategoryCluster ToolCategory = "cluster"

	// ToolCategoryAccess covers user, group, and role tools.
	ToolCategoryAccess ToolCategory = "access"

	// ToolCategoryMonitoring covers task status and history tools.
	ToolCategoryMonitoring ToolCategory = "monitoring"

	// ToolCategoryNetwork covers network and firewall tools.
	ToolCategoryNetwork ToolCategory = "network"

	// ToolCategoryOther represents tool names that don't match any known pattern.
	ToolCategoryOther ToolCategory = "other"
)

// ClassifyTool classifies an MCP tool name into a category for metrics.
// This groups the per-tool metrics into a handful of stable series so
// dashboards stay readable even as tools are added.
//
// # Examples
//
//	ClassifyTool("get_nodes")          // "node"
//	ClassifyTool("start_vm")           // "guest"
//	ClassifyTool("get_backups")        // "storage"
//	ClassifyTool("get_cluster_status") // "cluster"
//	ClassifyTool("get_users")          // "access"
//	ClassifyTool("get_recent_tasks")   // "monitoring"
//	ClassifyTool("get_firewall_status")// "network"
//	ClassifyTool("something_else")     // "other"
func ClassifyTool(name string) string {
	nameLower := strings.ToLower(name)

	switch {
	// Network tools are checked before guest tools since get_vm_network
	// would otherwise match the "vm" guest pattern.
	case strings.Contains(nameLower, "network") ||
		strings.Contains(nameLower, "firewall"):
		return string(ToolCategoryNetwork)

	case strings.Contains(nameLower, "node"):
		return string(ToolCategoryNode)

	case strings.Contains(nameLower, "vm") ||
		strings.Contains(nameLower, "container") ||
		strings.Contains(nameLower, "template") ||
		strings.Contains(nameLower, "snapshot"):
		return string(ToolCategoryGuest)

	case strings.Contains(nameLower, "storage") ||
		strings.Contains(nameLower, "backup"):
		return string(ToolCategoryStorage)

	case strings.Contains(nameLower, "cluster"):
		return string(ToolCategoryCluster)

	case strings.Contains(nameLower, "user") ||
		strings.Contains(nameLower, "group") ||
		strings.Contains(nameLower, "role"):
		return string(ToolCategoryAccess)

	case strings.Contains(nameLower, "task"):
		return string(ToolCategoryMonitoring)
	}

	return string(ToolCategoryOther)
}
