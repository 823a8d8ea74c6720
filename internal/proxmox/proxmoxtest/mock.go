// Package proxmoxtest provides a mock Proxmox API client for testing.
package proxmoxtest

import (
	"context"
	"fmt"
	"net/url"
	"sync"
)

// Call records one request made against the mock.
type Call struct {
	Method string
	Path   string
	Values url.Values
}

// MockAPI implements proxmox.API with configurable function fields.
// When a field is nil, the corresponding method returns an error.
type MockAPI struct {
	mu    sync.Mutex
	calls []Call

	GetFunc  func(ctx context.Context, path string, query url.Values) (any, error)
	PostFunc func(ctx context.Context, path string, form url.Values) (any, error)
}

// NewMockAPI returns an empty mock. Configure GetFunc/PostFunc before use.
func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

func (m *MockAPI) Get(ctx context.Context, path string, query url.Values) (any, error) {
	m.record(Call{Method: "GET", Path: path, Values: query})
	if m.GetFunc == nil {
		return nil, fmt.Errorf("unexpected GET %s", path)
	}
	return m.GetFunc(ctx, path, query)
}

func (m *MockAPI) Post(ctx context.Context, path string, form url.Values) (any, error) {
	m.record(Call{Method: "POST", Path: path, Values: form})
	if m.PostFunc == nil {
		return nil, fmt.Errorf("unexpected POST %s", path)
	}
	return m.PostFunc(ctx, path, form)
}

func (m *MockAPI) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

// Calls returns a copy of all recorded requests in order.
func (m *MockAPI) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset clears the recorded requests.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
