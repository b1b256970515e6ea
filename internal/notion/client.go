// Package notion implements the remote collaborator against the Notion REST
// API: page search for the target list and block append for entries.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/atomicstack/faultnote/internal/remote"
)

const (
	DefaultBaseURL      = "https://api.notion.com"
	DefaultVersion      = "2022-06-28"
	DefaultTimeout      = 30 * time.Second
	DefaultCodeLanguage = "rust"

	// maxErrorBody bounds how much of a failed response is read for diagnostics.
	maxErrorBody = 4096
	// maxResponseBody bounds successful JSON reads.
	maxResponseBody int64 = 16 << 20
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL      string
	APIKey       string
	Version      string
	Timeout      time.Duration
	CodeLanguage string
	HTTPClient   *http.Client
}

// Client talks to the Notion API. It is safe for concurrent use.
type Client struct {
	baseURL  string
	apiKey   string
	version  string
	language string
	http     *http.Client
}

var _ remote.Collaborator = (*Client)(nil)

// New returns a Client. An empty API key yields remote.ErrNotConfigured so the
// caller can fall back to demo mode.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("API_KEY not set: %w", remote.ErrNotConfigured)
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	language := opts.CodeLanguage
	if language == "" {
		language = DefaultCodeLanguage
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   opts.APIKey,
		version:  version,
		language: language,
		http:     httpClient,
	}, nil
}

// do sends body as JSON and decodes a 2xx response into out (when non-nil).
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &remote.Error{Kind: remote.KindNetwork, Op: op, Err: fmt.Errorf("marshaling request: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &remote.Error{Kind: remote.KindNetwork, Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", c.version)

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return transportError(op, fmt.Errorf("reading response body: %w", err))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &remote.Error{Kind: remote.KindNetwork, Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func transportError(op string, err error) error {
	kind := remote.KindNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = remote.KindTimeout
	}
	return &remote.Error{Kind: kind, Op: op, Err: err}
}

// statusError maps a non-2xx response to a remote error, surfacing the
// Notion error message when the body carries one.
func statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var wire struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	detail := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &wire) == nil && wire.Message != "" {
		detail = wire.Message
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	kind := remote.KindNetwork
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = remote.KindAuth
	case http.StatusNotFound:
		kind = remote.KindNotFound
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		kind = remote.KindTimeout
	}
	return &remote.Error{Kind: kind, Op: op, Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, detail)}
}
