package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-proxmox/internal/instrumentation"
	"github.com/giantswarm/mcp-proxmox/internal/server"
)

// WrapWithAuditLogging wraps a tool handler with audit logging.
// This function creates a wrapper that automatically captures:
//   - Tool invocation timing
//   - Node, VMID, and storage information from request arguments
//   - Success/error status from the handler result
//   - OpenTelemetry trace context for correlation
//
// The wrapper logs tool invocations using the AuditLogger from the
// instrumentation provider and records tool call metrics. If no
// instrumentation provider is available, the handler is called without
// audit logging.
func WrapWithAuditLogging(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Get the instrumentation provider
		provider := sc.InstrumentationProvider()
		if provider == nil || provider.AuditLogger() == nil {
			// No audit logging available, just call the handler
			return handler(ctx, request, sc)
		}

		auditLogger := provider.AuditLogger()

		// A span per tool call keeps the Proxmox API spans correlated
		spanCtx, span := instrumentation.StartToolSpan(ctx,
			toolName,
			instrumentation.NewSpanAttributeBuilder().WithTool(toolName).Build()...,
		)
		defer span.End()

		// Create tool invocation with span context
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(spanCtx)

		// Extract target info from request arguments
		args := request.GetArguments()
		extractAuditInfoFromArgs(invocation, args)

		// Execute the actual handler
		result, err := handler(spanCtx, request, sc)

		// Determine success/error status
		if err != nil {
			invocation.CompleteWithError(err)
			instrumentation.SetSpanError(span, err)
		} else if result != nil && result.IsError {
			// MCP tool errors are returned in the result, not as Go errors
			invocation.Complete(false, nil)
			// Try to extract error message from result content
			if len(result.Content) > 0 {
				if textContent, ok := result.Content[0].(mcp.TextContent); ok {
					invocation.Error = textContent.Text
				}
			}
		} else {
			invocation.CompleteSuccess()
			instrumentation.SetSpanSuccess(span)
		}

		// Record metrics and log the invocation (cardinality-controlled values)
		provider.Metrics().RecordToolCall(spanCtx, toolName, invocation.Status(), invocation.Duration)
		auditLogger.LogToolCall(spanCtx, invocation)

		return result, err
	}
}

// extractAuditInfoFromArgs extracts node, guest, and storage information
// from tool request arguments for audit logging.
func extractAuditInfoFromArgs(invocation *instrumentation.ToolInvocation, args map[string]interface{}) {
	node, _ := args["node"].(string)

	vmid := 0
	switch v := args["vmid"].(type) {
	case float64:
		vmid = int(v)
	case int:
		vmid = v
	}

	if node != "" || vmid > 0 {
		invocation.WithTarget(node, vmid)
	}

	if vmType, ok := args["vm_type"].(string); ok && vmType != "" {
		invocation.WithGuestType(vmType)
	}

	if storage, ok := args["storage"].(string); ok && storage != "" {
		invocation.WithStorage(storage)
	}
}
