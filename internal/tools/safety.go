package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/giantswarm/mcp-proxmox/internal/server"
)

// CheckMutatingOperation verifies if a mutating operation is allowed given the
// current server configuration. Returns an error result if blocked, nil if
// allowed.
//
// This centralizes the read-only mode check to avoid code duplication across
// all tool handlers that change guest or cluster state.
//
// Protected operations include: start, stop, reboot, exec, snapshot
func CheckMutatingOperation(sc *server.ServerContext, operation string) *mcp.CallToolResult {
	config := sc.Config()
	if config == nil || !config.ReadOnlyMode {
		return nil
	}

	result, _ := ErrorResult(fmt.Sprintf(
		"%s operations are not allowed in read-only mode",
		cases.Title(language.English).String(operation),
	))
	return result
}
