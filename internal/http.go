package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	pkgerrs "github.com/mazi76erX2/mention-go/pkg/errors"
)

// TokenProvider supplies the bearer token attached to every request.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// Client manages communication with the Mention API. It owns authentication
// headers and status-code checking; request construction lives in Builder.
type Client struct {
	client    *http.Client
	BaseURL   *url.URL
	UserAgent string
	tokens    TokenProvider
	logger    *slog.Logger
}

// NewClient returns a new Mention API transport client.
// If a nil httpClient is provided, http.DefaultClient will be used.
func NewClient(httpClient *http.Client, tokens TokenProvider, baseURL, userAgent string, logger *slog.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if tokens == nil {
		return nil, &pkgerrs.ClientError{Message: "token provider cannot be nil"}
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, &pkgerrs.ClientError{Operation: "parse base URL", Err: err}
	}

	return &Client{
		client:    httpClient,
		BaseURL:   parsedURL,
		UserAgent: userAgent,
		tokens:    tokens,
		logger:    logger,
	}, nil
}

// NewRequest creates an HTTP request for the given RequestSpec, resolved
// against the client's base URL and carrying the bearer token and
// User-Agent headers.
func (c *Client) NewRequest(ctx context.Context, spec *RequestSpec) (*http.Request, error) {
	u := *c.BaseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + spec.Path
	u.RawQuery = spec.Query

	var body io.Reader
	if len(spec.Body) > 0 {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, u.String(), body)
	if err != nil {
		return nil, &pkgerrs.ClientError{Operation: "create request", Err: err}
	}

	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return nil, &pkgerrs.ClientError{Operation: "get access token", Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if len(spec.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do sends an API request and JSON-decodes the response into the value
// pointed to by v, when v is non-nil. A non-2xx status is returned as a
// *errors.APIError carrying the status code and raw body; it is never
// swallowed.
func (c *Client) Do(req *http.Request, v any) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &pkgerrs.ClientError{Operation: req.Method + " " + req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, &pkgerrs.ClientError{Operation: "read response body", Err: err}
	}

	if c.logger != nil {
		c.logger.Debug("mention API response",
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, &pkgerrs.APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if v != nil {
		if err := json.Unmarshal(data, v); err != nil {
			return resp, &pkgerrs.ParseError{Operation: req.Method + " " + req.URL.Path, Err: err}
		}
	}

	return resp, nil
}
