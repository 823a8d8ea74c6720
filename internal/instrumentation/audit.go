package instrumentation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ToolInvocation captures the context of a single MCP tool call for
// structured and audit logging. Build it at the start of the call, enrich it
// as details become known, and complete it when the call finishes.
type ToolInvocation struct {
	Tool      string
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	// Proxmox target, filled in when the tool addresses a specific
	// node, guest, or storage pool.
	Node      string
	VMID      int
	GuestType string
	Storage   string

	// Trace context for log correlation.
	TraceID string
	SpanID  string
}

// NewToolInvocation starts tracking a tool call.
func NewToolInvocation(tool string) *ToolInvocation {
	return &ToolInvocation{
		Tool:      tool,
		StartTime: time.Now(),
	}
}

// WithTarget records the node and guest the tool operates on.
// A zero vmid means the tool targets the node (or the whole cluster).
func (ti *ToolInvocation) WithTarget(node string, vmid int) *ToolInvocation {
	ti.Node = node
	ti.VMID = vmid
	return ti
}

// WithGuestType records the guest type (qemu or lxc).
func (ti *ToolInvocation) WithGuestType(guestType string) *ToolInvocation {
	ti.GuestType = guestType
	return ti
}

// WithStorage records the storage pool the tool operates on.
func (ti *ToolInvocation) WithStorage(storage string) *ToolInvocation {
	ti.Storage = storage
	return ti
}

// WithSpanContext copies the trace and span IDs from the context, when a
// valid span is present.
func (ti *ToolInvocation) WithSpanContext(ctx context.Context) *ToolInvocation {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		ti.TraceID = span.SpanContext().TraceID().String()
		ti.SpanID = span.SpanContext().SpanID().String()
	}
	return ti
}

// Complete finishes the invocation with the given outcome.
func (ti *ToolInvocation) Complete(success bool, err error) *ToolInvocation {
	ti.Duration = time.Since(ti.StartTime)
	ti.Success = success
	if err != nil {
		ti.Error = err.Error()
	}
	return ti
}

// CompleteSuccess finishes the invocation successfully.
func (ti *ToolInvocation) CompleteSuccess() *ToolInvocation {
	return ti.Complete(true, nil)
}

// CompleteWithError finishes the invocation with an error.
func (ti *ToolInvocation) CompleteWithError(err error) *ToolInvocation {
	return ti.Complete(false, err)
}

// Status returns the metric status label for this invocation.
func (ti *ToolInvocation) Status() string {
	if ti.Success {
		return StatusSuccess
	}
	return StatusError
}

// Category returns the classified tool category.
func (ti *ToolInvocation) Category() string {
	return ClassifyTool(ti.Tool)
}

// LogAttrs returns low-cardinality slog attributes for regular logging.
func (ti *ToolInvocation) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.String("category", ti.Category()),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}
	return attrs
}

// LogAuditAttrs returns the full attribute set for the audit log, including
// the exact target and trace context.
func (ti *ToolInvocation) LogAuditAttrs() []slog.Attr {
	attrs := ti.LogAttrs()
	if ti.Node != "" {
		attrs = append(attrs, slog.String("node", ti.Node))
	}
	if ti.VMID > 0 {
		attrs = append(attrs, slog.Int("vmid", ti.VMID))
	}
	if ti.GuestType != "" {
		attrs = append(attrs, slog.String("guest_type", ti.GuestType))
	}
	if ti.Storage != "" {
		attrs = append(attrs, slog.String("storage", ti.Storage))
	}
	if ti.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", ti.TraceID))
	}
	if ti.SpanID != "" {
		attrs = append(attrs, slog.String("span_id", ti.SpanID))
	}
	return attrs
}

// AuditLogger writes structured audit records for tool invocations.
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates an AuditLogger. A nil logger falls back to
// slog.Default.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{logger: logger}
}

// LogToolCall records one completed tool invocation.
func (al *AuditLogger) LogToolCall(ctx context.Context, ti *ToolInvocation) {
	level := slog.LevelInfo
	if !ti.Success {
		level = slog.LevelWarn
	}
	al.logger.LogAttrs(ctx, level, "tool call", ti.LogAuditAttrs()...)
}

// TraceIDFromContext returns the trace ID from the current span in context,
// or an empty string when none is present.
func TraceIDFromContext(ctx context.Context) string {
	return GetTraceID(ctx)
}
