package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the default tracer name for the mcp-proxmox package.
const TracerName = "github.com/giantswarm/mcp-proxmox"

// Span attribute keys for Proxmox operations.
const (
	// SpanAttrTool is the MCP tool name.
	SpanAttrTool = "mcp.tool"

	// SpanAttrToolCategory is the classified tool category attribute.
	SpanAttrToolCategory = "mcp.tool_category"

	// SpanAttrNode is the Proxmox node name.
	SpanAttrNode = "proxmox.node"

	// SpanAttrVMID is the guest identifier.
	SpanAttrVMID = "proxmox.vmid"

	// SpanAttrGuestType is the guest type (qemu or lxc).
	SpanAttrGuestType = "proxmox.guest_type"

	// SpanAttrStorage is the storage pool name.
	SpanAttrStorage = "proxmox.storage"

	// SpanAttrEndpoint is the normalized Proxmox API endpoint.
	SpanAttrEndpoint = "proxmox.endpoint"

	// SpanAttrOperation is the operation type (get, post).
	SpanAttrOperation = "proxmox.operation"
)

// SpanAttributeBuilder helps construct OpenTelemetry span attributes
// with consistent naming and cardinality controls.
type SpanAttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewSpanAttributeBuilder creates a new SpanAttributeBuilder.
func NewSpanAttributeBuilder() *SpanAttributeBuilder {
	return &SpanAttributeBuilder{
		attrs: make([]attribute.KeyValue, 0, 8),
	}
}

// WithTool adds the MCP tool name and its classified category.
func (b *SpanAttributeBuilder) WithTool(tool string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs,
		attribute.String(SpanAttrTool, tool),
		attribute.String(SpanAttrToolCategory, ClassifyTool(tool)),
	)
	return b
}

// WithNode adds the Proxmox node attribute.
func (b *SpanAttributeBuilder) WithNode(node string) *SpanAttributeBuilder {
	if node != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrNode, node))
	}
	return b
}

// WithVMID adds the guest identifier attribute.
func (b *SpanAttributeBuilder) WithVMID(vmid int) *SpanAttributeBuilder {
	if vmid > 0 {
		b.attrs = append(b.attrs, attribute.Int(SpanAttrVMID, vmid))
	}
	return b
}

// WithGuestType adds the guest type attribute.
func (b *SpanAttributeBuilder) WithGuestType(guestType string) *SpanAttributeBuilder {
	if guestType != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrGuestType, guestType))
	}
	return b
}

// WithStorage adds the storage pool attribute.
func (b *SpanAttributeBuilder) WithStorage(storage string) *SpanAttributeBuilder {
	if storage != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrStorage, storage))
	}
	return b
}

// WithOperation adds the operation type attribute.
func (b *SpanAttributeBuilder) WithOperation(operation string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.String(SpanAttrOperation, operation))
	return b
}

// Build returns the constructed attributes.
func (b *SpanAttributeBuilder) Build() []attribute.KeyValue {
	return b.attrs
}

// StartSpan starts a new span with the given name and attributes.
// Returns the context with the span and the span itself.
// The caller is responsible for ending the span with defer span.End().
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartToolSpan starts a span for an MCP tool invocation.
// Automatically adds tool name and sets appropriate span kind.
func StartToolSpan(ctx context.Context, toolName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+1)
	allAttrs = append(allAttrs, attribute.String(SpanAttrTool, toolName))
	allAttrs = append(allAttrs, attrs...)

	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "tool."+toolName,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindServer),
	)
}

// StartProxmoxSpan starts a span for upstream Proxmox API operations.
// Includes operation and endpoint attributes and sets client span kind.
func StartProxmoxSpan(ctx context.Context, operation, endpoint string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+2)
	allAttrs = append(allAttrs, attribute.String(SpanAttrOperation, operation))
	if endpoint != "" {
		allAttrs = append(allAttrs, attribute.String(SpanAttrEndpoint, endpoint))
	}
	allAttrs = append(allAttrs, attrs...)

	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "proxmox."+operation,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// SetSpanError records an error on the span and sets the status to error.
func SetSpanError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess sets the span status to OK.
func SetSpanSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// AddSpanEvent adds an event to the span with optional attributes.
func AddSpanEvent(span trace.Span, name string, attrs ...attribute.KeyValue) {
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// GetTraceID returns the trace ID from the current span in context.
// Returns empty string if no valid span is present.
func GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}

// GetSpanID returns the span ID from the current span in context.
// Returns empty string if no valid span is present.
func GetSpanID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().SpanID().String()
	}
	return ""
}

// SpanContextString returns a human-readable trace context string.
// Format: "trace_id=X span_id=Y" or empty string if no valid context.
func SpanContextString(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return ""
	}
	return "trace_id=" + span.SpanContext().TraceID().String() +
		" span_id=" + span.SpanContext().SpanID().String()
}
