package instrumentation

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation("get_vm_status")

	// Verify initial state
	if ti.Tool != "get_vm_status" {
		t.Errorf("Tool = %q, want %q", ti.Tool, "get_vm_status")
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	// Complete the invocation
	time.Sleep(1 * time.Millisecond) // Ensure some duration
	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	if ti.Duration == 0 {
		t.Error("Duration should be non-zero")
	}
	if ti.Error != "" {
		t.Errorf("Error should be empty, got %q", ti.Error)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation("stop_vm")
	err := errors.New("permission denied")

	ti.CompleteWithError(err)

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "permission denied" {
		t.Errorf("Error = %q, want %q", ti.Error, "permission denied")
	}
}

func TestToolInvocation_WithTarget(t *testing.T) {
	ti := NewToolInvocation("get_vm_status")
	ti.WithTarget("pve1", 100)

	if ti.Node != "pve1" {
		t.Errorf("Node = %q, want %q", ti.Node, "pve1")
	}
	if ti.VMID != 100 {
		t.Errorf("VMID = %d, want 100", ti.VMID)
	}
}

func TestToolInvocation_WithStorage(t *testing.T) {
	ti := NewToolInvocation("get_storage_details")
	ti.WithStorage("local-zfs")

	if ti.Storage != "local-zfs" {
		t.Errorf("Storage = %q, want %q", ti.Storage, "local-zfs")
	}
}

func TestToolInvocation_Category(t *testing.T) {
	tests := []struct {
		tool     string
		expected string
	}{
		{"get_nodes", "node"},
		{"start_vm", "guest"},
		{"get_backups", "storage"},
		{"get_cluster_status", "cluster"},
		{"unknown_thing", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			ti := NewToolInvocation(tt.tool)

			if c := ti.Category(); c != tt.expected {
				t.Errorf("Category() = %q, want %q", c, tt.expected)
			}
		})
	}
}

func TestToolInvocation_Status(t *testing.T) {
	ti := NewToolInvocation("test")

	ti.Success = true
	if status := ti.Status(); status != "success" {
		t.Errorf("Status() = %q, want %q", status, "success")
	}

	ti.Success = false
	if status := ti.Status(); status != "error" {
		t.Errorf("Status() = %q, want %q", status, "error")
	}
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	ti := NewToolInvocation("stop_vm")
	ti.WithTarget("pve1", 100).CompleteSuccess()

	attrs := ti.LogAttrs()

	// Verify we have the expected attributes
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check required attributes
	requiredKeys := []string{"tool", "category", "duration", "success"}
	for _, key := range requiredKeys {
		if _, ok := attrMap[key]; !ok {
			t.Errorf("Missing required attribute: %s", key)
		}
	}

	// Check cardinality-controlled values
	if c := attrMap["category"].Value.String(); c != "guest" {
		t.Errorf("category = %q, want %q", c, "guest")
	}
}

func TestToolInvocation_LogAuditAttrs(t *testing.T) {
	ti := NewToolInvocation("stop_vm")
	ti.WithTarget("pve1", 100).
		WithGuestType("qemu").
		CompleteSuccess()
	ti.TraceID = "abc123def456"
	ti.SpanID = "span789"

	attrs := ti.LogAuditAttrs()

	// Verify we have the expected attributes
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check that full values are present (not cardinality-controlled)
	if node := attrMap["node"].Value.String(); node != "pve1" {
		t.Errorf("node = %q, want %q", node, "pve1")
	}
	if vmid := attrMap["vmid"].Value.Int64(); vmid != 100 {
		t.Errorf("vmid = %d, want 100", vmid)
	}
	if gt := attrMap["guest_type"].Value.String(); gt != "qemu" {
		t.Errorf("guest_type = %q, want %q", gt, "qemu")
	}

	// Check trace context
	if traceID := attrMap["trace_id"].Value.String(); traceID != "abc123def456" {
		t.Errorf("trace_id = %q, want %q", traceID, "abc123def456")
	}
	if spanID := attrMap["span_id"].Value.String(); spanID != "span789" {
		t.Errorf("span_id = %q, want %q", spanID, "span789")
	}
}

func TestToolInvocation_MethodChaining(t *testing.T) {
	ti := NewToolInvocation("create_vm_snapshot").
		WithTarget("pve2", 200).
		WithGuestType("lxc").
		CompleteSuccess()

	if ti.Tool != "create_vm_snapshot" {
		t.Errorf("Tool = %q, want %q", ti.Tool, "create_vm_snapshot")
	}
	if ti.Node != "pve2" {
		t.Errorf("Node = %q, want %q", ti.Node, "pve2")
	}
	if !ti.Success {
		t.Error("Success should be true")
	}
}

func TestAuditLogger_New(t *testing.T) {
	// Test with nil logger (should use default)
	al := NewAuditLogger(nil)
	if al.logger == nil {
		t.Error("logger should not be nil when created with nil")
	}

	// Test with custom logger
	logger := slog.Default()
	al = NewAuditLogger(logger)
	if al.logger != logger {
		t.Error("logger should be the provided logger")
	}
}

func TestTraceIDFromContext_NoSpan(t *testing.T) {
	ctx := context.Background()
	traceID := TraceIDFromContext(ctx)

	if traceID != "" {
		t.Errorf("TraceIDFromContext with no span = %q, want empty string", traceID)
	}
}

func TestToolInvocation_WithSpanContext_NoSpan(t *testing.T) {
	ctx := context.Background()
	ti := NewToolInvocation("test").WithSpanContext(ctx)

	if ti.TraceID != "" {
		t.Errorf("TraceID = %q, want empty string", ti.TraceID)
	}
	if ti.SpanID != "" {
		t.Errorf("SpanID = %q, want empty string", ti.SpanID)
	}
}

func TestToolInvocation_Complete_NilError(t *testing.T) {
	ti := NewToolInvocation("test")
	ti.Complete(true, nil)

	if ti.Error != "" {
		t.Errorf("Error = %q, want empty string", ti.Error)
	}
}
