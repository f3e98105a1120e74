// Package platform implements the HTTP clients for the upstream platform API.
// Every console repository is a thin fetch-with-headers wrapper: it forwards
// the caller's session token, decodes the standard response envelope, and
// surfaces platform-reported errors verbatim as domain errors.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/commercehub/console/internal/domain/shared"
	"github.com/commercehub/console/internal/infrastructure/auth"
	"github.com/commercehub/console/internal/infrastructure/config"
	"github.com/commercehub/console/internal/infrastructure/logger"
)

// Transport-level errors
var (
	// ErrUnavailable indicates the platform API could not be reached
	ErrUnavailable = errors.New("platform: service unavailable")
	// ErrInvalidResponse indicates the platform returned an unparseable body
	ErrInvalidResponse = errors.New("platform: invalid response")
	// ErrRequestFailed indicates a non-2xx response without a usable error envelope
	ErrRequestFailed = errors.New("platform: request failed")
)

// Meta carries pagination metadata from list responses
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// envelope is the platform's standard response shape
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
	Meta    *Meta           `json:"meta"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client is the shared HTTP transport for all platform repositories
type Client struct {
	baseURL          string
	httpClient       *http.Client
	maxResponseBytes int64
	logger           *zap.Logger
}

// NewClient creates a platform API client
func NewClient(cfg config.PlatformConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxResponseBytes: cfg.MaxResponseBytes,
		logger:           log.Named("platform"),
	}
}

// do performs one platform API call. The caller's session token is taken from
// the context and forwarded as a bearer token; the console holds no platform
// credentials of its own. On a non-2xx response carrying an error envelope,
// the platform's code and message are returned verbatim as a DomainError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*Meta, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("platform: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("platform: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := auth.TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("platform: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		if env.Error != nil {
			// Surface the platform's own code and message untouched
			return nil, shared.NewDomainError(env.Error.Code, env.Error.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	return env.Meta, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (*Meta, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	_, err := c.do(ctx, http.MethodDelete, path, query, nil, nil)
	return err
}
