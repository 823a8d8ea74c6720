package proxmox

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/giantswarm/mcp-proxmox/internal/logging"
)

// maxErrorBodyBytes caps how much of an error response body is carried into
// the returned error message.
const maxErrorBodyBytes = 512

// restAPI is the HTTP implementation of API.
type restAPI struct {
	baseURL string
	authz   string
	httpc   *http.Client
	logger  *slog.Logger
	metrics MetricsRecorder
}

// ClientOption configures the REST client.
type ClientOption func(*restAPI)

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *restAPI) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetricsRecorder sets the recorder for per-request metrics.
func WithMetricsRecorder(recorder MetricsRecorder) ClientOption {
	return func(c *restAPI) {
		c.metrics = recorder
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests to point
// the client at an httptest server.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *restAPI) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithBaseURL overrides the API root derived from the configuration. Useful
// when Proxmox sits behind a reverse proxy on a nonstandard port.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *restAPI) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// NewAPI creates a Proxmox API client from the given configuration and
// verifies connectivity with a GET /version probe. Connection and
// authentication failures surface here rather than on the first tool call.
func NewAPI(ctx context.Context, cfg *Config, opts ...ClientOption) (API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport
	if !cfg.VerifySSL {
		// Proxmox nodes commonly serve self-signed certificates.
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	c := &restAPI{
		baseURL: cfg.BaseURL(),
		authz:   fmt.Sprintf("PVEAPIToken=%s=%s", cfg.TokenID(), cfg.TokenValue),
		httpc:   &http.Client{Transport: transport},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, err := c.Get(ctx, "/version", nil); err != nil {
		return nil, fmt.Errorf("failed to connect to Proxmox at %s: %w",
			logging.SanitizeHost(cfg.Host), err)
	}
	c.logger.Info("connected to Proxmox host", logging.Host(cfg.Host))

	return c, nil
}

// NewAPIFromEnv builds the configuration from the environment and connects.
func NewAPIFromEnv(ctx context.Context, opts ...ClientOption) (API, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewAPI(ctx, cfg, opts...)
}

func (c *restAPI) Get(ctx context.Context, path string, query url.Values) (any, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	return c.do(req, path)
}

func (c *restAPI) Post(ctx context.Context, path string, form url.Values) (any, error) {
	var body io.Reader
	if len(form) > 0 {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return c.do(req, path)
}

// do executes the request, unwraps the {"data": ...} envelope, and records
// request metrics.
func (c *restAPI) do(req *http.Request, path string) (any, error) {
	req.Header.Set("Authorization", c.authz)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.record(req.Context(), req.Method, path, "error", time.Since(start))
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.record(req.Context(), req.Method, path, statusClass(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("%s %s returned %d: %s", req.Method, path, resp.StatusCode, msg)
	}

	var envelope struct {
		Data any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return envelope.Data, nil
}

func (c *restAPI) record(ctx context.Context, method, path, status string, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordProxmoxRequest(ctx, method, normalizeEndpoint(path), status, duration)
}

func statusClass(code int) string {
	if code >= 200 && code <= 299 {
		return "success"
	}
	return "error"
}

// Path segments that vary per request (VMIDs, UPIDs) are collapsed so metric
// cardinality stays bounded.
var (
	numericSegment = regexp.MustCompile(`/\d+(/|$)`)
	upidSegment    = regexp.MustCompile(`/UPID:[^/]+`)
)

func normalizeEndpoint(path string) string {
	path = upidSegment.ReplaceAllString(path, "/:upid")
	return numericSegment.ReplaceAllString(path, "/:id$1")
}
