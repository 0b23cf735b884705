package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hanpama/gqlcompose/internal/eventbus"
	"github.com/hanpama/gqlcompose/internal/events"
	"github.com/hanpama/gqlcompose/internal/reqid"
)

// Client submits query documents to a GraphQL endpoint over HTTP POST and
// decodes the spec-shaped response envelope.
type Client struct {
	endpoint string
	hc       *http.Client
	opt      Options
}

type Options struct {
	// Timeout sets a default deadline if the caller's context has none.
	// 0 means no default timeout.
	Timeout time.Duration

	// Headers are added to every request, e.g. for authorization.
	Headers http.Header

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client

	// MaxResponseBytes limits the size of the response body. 0 means unlimited.
	MaxResponseBytes int64
}

type Option func(*Options)

func WithTimeout(d time.Duration) Option    { return func(o *Options) { o.Timeout = d } }
func WithHTTPClient(hc *http.Client) Option { return func(o *Options) { o.HTTPClient = hc } }
func WithMaxResponseBytes(n int64) Option   { return func(o *Options) { o.MaxResponseBytes = n } }
func WithHeader(key, value string) Option {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = http.Header{}
		}
		o.Headers.Add(key, value)
	}
}

// New creates a client for the given endpoint URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("client: endpoint required")
	}
	op := Options{Timeout: 10 * time.Second}
	for _, f := range opts {
		f(&op)
	}
	hc := op.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, hc: hc, opt: op}, nil
}

// Endpoint returns the endpoint URL the client submits to.
func (c *Client) Endpoint() string { return c.endpoint }

// Execute posts the request and decodes the response envelope. Transport
// failures, non-2xx statuses, and malformed response JSON are returned as
// errors; GraphQL errors arrive inside the Response.
func (c *Client) Execute(ctx context.Context, req Request) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok && c.opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opt.Timeout)
		defer cancel()
	}
	ctx, rid := reqid.NewContext(ctx)

	start := time.Now()
	eventbus.Publish(ctx, events.RequestStart{
		Endpoint:      c.endpoint,
		Query:         req.Query,
		OperationName: req.OperationName,
	})
	res, status, err := c.roundTrip(ctx, rid, req)
	finish := events.RequestFinish{
		Endpoint:      c.endpoint,
		OperationName: req.OperationName,
		Status:        status,
		Duration:      time.Since(start),
	}
	if err != nil {
		finish.Errors = []error{err}
	} else {
		for i := range res.Errors {
			finish.Errors = append(finish.Errors, &res.Errors[i])
		}
	}
	eventbus.Publish(ctx, finish)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) roundTrip(ctx context.Context, rid string, req Request) (*Response, int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, 0, fmt.Errorf("client: encode request: %w", err)
	}
	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("client: %w", err)
	}
	hr.Header.Set("Content-Type", "application/json")
	hr.Header.Set("Accept", "application/json")
	for k, vs := range c.opt.Headers {
		for _, v := range vs {
			hr.Header.Add(k, v)
		}
	}
	hr.Header.Set("Graphql-Request-Id", rid)

	resp, err := c.hc.Do(hr)
	if err != nil {
		return nil, 0, fmt.Errorf("client: %w", err)
	}
	defer resp.Body.Close()

	reader := io.Reader(resp.Body)
	if c.opt.MaxResponseBytes > 0 {
		reader = io.LimitReader(resp.Body, c.opt.MaxResponseBytes+1)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("client: read response: %w", err)
	}
	if c.opt.MaxResponseBytes > 0 && int64(len(raw)) > c.opt.MaxResponseBytes {
		return nil, resp.StatusCode, fmt.Errorf("client: response exceeds %d bytes", c.opt.MaxResponseBytes)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, fmt.Errorf("client: endpoint returned status %d: %s", resp.StatusCode, summarize(raw))
	}
	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("client: invalid response JSON: %w", err)
	}
	return &out, resp.StatusCode, nil
}

// ------------------ Wire envelope ------------------

type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
	Extensions    map[string]any `json:"extensions,omitempty"`
}

type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors,omitempty"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type ResponseError struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e *ResponseError) Error() string { return e.Message }

func summarize(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 512 {
		return s[:512] + "..."
	}
	return s
}
