package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrBadStatus is returned for non-2xx responses when strict status
// checking is enabled.
var ErrBadStatus = errors.New("http: unexpected status")

// FetchError is a typed retrieval failure carrying the failing URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Options configures the HTTP client.
type Options struct {
	// Timeout bounds each request end to end.
	// Default: 30s
	Timeout time.Duration

	// StrictStatus turns non-2xx responses into fetch errors. When false,
	// response bodies are returned verbatim regardless of status and the
	// caller decides what to do with the code.
	StrictStatus bool

	// UserAgent is sent with every request.
	// Default: "locfetch/1.0"
	UserAgent string

	// MaxIdleConnsPerHost sets the maximum idle connections per host.
	// Default: 8
	MaxIdleConnsPerHost int
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:             30 * time.Second,
		UserAgent:           "locfetch/1.0",
		MaxIdleConnsPerHost: 8,
	}
}

// Client retrieves image resources. Items are small, so responses are
// buffered fully in memory rather than streamed.
type Client struct {
	client *http.Client
	opts   Options
}

// NewClient creates a new client. Zero-valued options fall back to
// DefaultOptions values.
func NewClient(opts Options) *Client {
	def := DefaultOptions()
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = def.MaxIdleConnsPerHost
	}

	transport := &http.Transport{
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		MaxIdleConns:        opts.MaxIdleConnsPerHost * 2,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		opts: opts,
	}
}

// Fetch performs a single GET and returns the full response body and the
// HTTP status code. Network-level failures (DNS, refused connection,
// timeout) return a *FetchError; there are no retries, the batch runner
// skips failed items instead. With StrictStatus set, a non-2xx response is
// also a *FetchError wrapping ErrBadStatus.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &FetchError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	if c.opts.StrictStatus && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return nil, resp.StatusCode, &FetchError{
			URL: url,
			Err: fmt.Errorf("%w: %d %s", ErrBadStatus, resp.StatusCode, resp.Status),
		}
	}

	return body, resp.StatusCode, nil
}
