// Package http provides the HTTP transport used by the resource clients.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// Client wraps an HTTP client with the base URL, user agent, and optional
// authentication token. Configuration is fixed at construction; a Client is
// safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     modrinth.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger modrinth.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a new transport client. token may be empty for
// unauthenticated use.
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request describes a single API request.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body, when non-nil, is JSON-encoded and sent with an
	// application/json content type.
	Body interface{}

	// RawBody, when non-nil, is sent verbatim with ContentType. Used for
	// binary uploads such as gallery images.
	RawBody     []byte
	ContentType string

	Headers map[string]string
}

// Response is the outcome of a successful (2xx) round trip.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do issues the request and reads the full response body. Non-2xx statuses
// are returned as a *modrinth.APIError alongside the response. No retries
// are performed; each call is a single round trip.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"bytes":  len(body),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, newAPIError(httpResp.StatusCode, body)
	}

	return resp, nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		bodyReader  io.Reader
		contentType string
	)

	switch {
	case req.RawBody != nil:
		bodyReader = bytes.NewReader(req.RawBody)
		contentType = req.ContentType
	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Modrinth expects the bare token, without a Bearer prefix.
	if c.token != "" {
		httpReq.Header.Set("Authorization", c.token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body. body may be nil.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostRaw issues a POST request with a verbatim payload and content type.
func (c *Client) PostRaw(ctx context.Context, path string, query url.Values, data []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Query:       query,
		RawBody:     data,
		ContentType: contentType,
	})
}

// Delete issues a DELETE request, discarding the body.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// newAPIError decodes the API's {"error", "description"} shape when
// present; the raw body is kept either way.
func newAPIError(status int, body []byte) error {
	apiErr := &modrinth.APIError{
		Status: status,
		Body:   body,
	}

	_ = json.Unmarshal(body, apiErr)

	return apiErr
}
