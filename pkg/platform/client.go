package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
	"github.com/luminalabs/lumina-mcp/pkg/httputil"
	"github.com/luminalabs/lumina-mcp/pkg/observability"
)

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a resource doesn't exist on the tenant.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Config holds the connection settings for a tenant.
type Config struct {
	// TenantURL is the base URL of the tenant, e.g. "https://acme.lumina.cloud".
	TenantURL string

	// APIKey is the bearer token used for every request.
	APIKey string

	// PageSize is the page size for listings, capped at [MaxPageSize].
	// Zero means [DefaultPageSize].
	PageSize int
}

// Client provides access to the Lumina Analytics Cloud REST API.
// It is stateless apart from connection settings and safe for
// concurrent use.
type Client struct {
	http     *http.Client
	baseURL  string
	headers  map[string]string
	pageSize int
}

// NewClient creates a platform client for the given tenant.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.TenantURL), "/")
	if base == "" {
		return nil, luminaerrors.New(luminaerrors.ErrCodeInvalidInput, "tenant URL is required")
	}
	if cfg.APIKey == "" {
		return nil, luminaerrors.New(luminaerrors.ErrCodeUnauthorized, "API key is required")
	}

	size := cfg.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	size = min(size, MaxPageSize)

	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		baseURL: base,
		headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": "Bearer " + cfg.APIKey,
		},
		pageSize: size,
	}, nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// Transient failures are retried with exponential backoff.
func (c *Client) Get(ctx context.Context, path string, query url.Values, v any) error {
	return httputil.RetryWithBackoff(ctx, func() error {
		body, err := c.doRequest(ctx, path, query)
		if err != nil {
			return err
		}
		defer body.Close()
		return json.NewDecoder(body).Decode(v)
	})
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) (io.ReadCloser, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	observability.HTTP().OnRequest(ctx, http.MethodGet, path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	observability.HTTP().OnResponse(ctx, http.MethodGet, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(resp *http.Response) error {
	switch code := resp.StatusCode; {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized:
		return luminaerrors.New(luminaerrors.ErrCodeUnauthorized, "API key rejected by tenant")
	case code == http.StatusForbidden:
		return luminaerrors.New(luminaerrors.ErrCodeForbidden, "access denied")
	case code == http.StatusTooManyRequests:
		return &luminaerrors.RateLimitedError{RetryAfter: retryAfter(resp)}
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func retryAfter(resp *http.Response) int {
	s, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || s < 0 {
		return 0
	}
	return s
}
