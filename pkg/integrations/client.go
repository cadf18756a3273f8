package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonaspleyer/crate2bib/pkg/httputil"
	"github.com/jonaspleyer/crate2bib/pkg/observability"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 8 << 20

// Doer is the transport used by [Client]. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the status and body of a raw GET issued through [Client.Fetch].
type Response struct {
	StatusCode int
	Body       []byte
}

// Client provides shared HTTP functionality for all registry and hosting
// platform clients. It handles retry logic, rate limiting and common
// request headers.
//
// A Client holds no per-request state and is safe for concurrent use.
type Client struct {
	http     Doer
	headers  map[string]string
	limiter  *rate.Limiter
	hooks    observability.HTTPHooks
	attempts int
	delay    time.Duration
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.http = d
		}
	}
}

// WithRateLimit limits outgoing requests to perSecond with a burst of one.
// A value <= 0 disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithHooks registers HTTP observability hooks.
func WithHooks(h observability.HTTPHooks) Option {
	return func(c *Client) {
		if h != nil {
			c.hooks = h
		}
	}
}

// WithRetry overrides the retry policy. attempts < 1 is treated as 1.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string, opts ...Option) *Client {
	c := &Client{
		http:     NewHTTPClient(),
		headers:  headers,
		hooks:    observability.NoopHTTPHooks{},
		attempts: httputil.DefaultAttempts,
		delay:    httputil.DefaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// It uses the client's default headers and handles retries automatically.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	return c.retry(ctx, func() error {
		resp, err := c.do(ctx, url, headers)
		if err != nil {
			return err
		}
		if err := checkStatus(resp.StatusCode); err != nil {
			return err
		}
		if err := json.Unmarshal(resp.Body, v); err != nil {
			return fmt.Errorf("decode %s: %w", url, err)
		}
		return nil
	})
}

// Fetch performs a GET and returns the status and body without interpreting
// the status code. Transport failures and 5xx/429 responses are retried;
// any other status, including 404, is returned to the caller as-is.
func (c *Client) Fetch(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	var out *Response
	err := c.retry(ctx, func() error {
		resp, err := c.do(ctx, url, headers)
		if err != nil {
			return err
		}
		if isTransient(resp.StatusCode) {
			return checkStatus(resp.StatusCode)
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) retry(ctx context.Context, fn func() error) error {
	return httputil.Retry(ctx, c.attempts, c.delay, fn)
}

func (c *Client) do(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := req.URL.Host, req.URL.Path
	c.hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrNetwork, ctx.Err())
		}
		return nil, httputil.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.hooks.OnError(ctx, req.Method, host, path, err)
		return nil, httputil.Retryable(fmt.Errorf("%w: read body: %v", ErrNetwork, err))
	}
	c.hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func isTransient(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case isTransient(code):
		return httputil.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
