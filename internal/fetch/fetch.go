package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response bodies are capped before parsing; product pages larger than
// this are truncated.
const maxBodyBytes = 10 << 20

// FetchError describes a failed page fetch. StatusCode carries the
// upstream HTTP status when one was received, and zero for transport
// failures such as timeouts or DNS errors.
type FetchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch failed: %s", e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches product pages with a fixed identifying user agent and
// a hard timeout.
type Client struct {
	http      *http.Client
	userAgent string
}

func New(timeout time.Duration, userAgent string) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Page GETs the given URL and returns the response body. Non-2xx
// responses and transport failures return a *FetchError.
func (c *Client) Page(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Message: "invalid request", Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Message: "failed to read response body", Err: err}
	}

	return body, nil
}
