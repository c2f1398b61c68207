// Package poll periodically fetches the backend endpoint and reports what came
// back. Results are informational only.
package poll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultURL is the placeholder backend endpoint.
const DefaultURL = "http://127.0.0.1:8000/data.php"

// maxBody caps how much of a response is read and logged.
const maxBody = 64 << 10

// RequestIDHeader carries a fresh uuid on every request.
const RequestIDHeader = "X-Request-ID"

// Result is the outcome of one fetch.
type Result struct {
	RequestID string
	Status    int
	Body      string
	Err       error
	Duration  time.Duration
}

// Client fetches the poll endpoint.
type Client struct {
	URL        string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a client for url.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:        url,
		Timeout:    timeout,
		HTTPClient: &http.Client{},
	}
}

// Fetch performs one GET. Transport errors and non-2xx statuses are reported
// in Result.Err; Fetch itself never fails.
func (c *Client) Fetch(ctx context.Context) Result {
	start := time.Now()
	res := Result{RequestID: uuid.NewString()}
	res.Status, res.Body, res.Err = c.do(ctx, res.RequestID)
	res.Duration = time.Since(start)
	return res
}

func (c *Client) do(ctx context.Context, requestID string) (int, string, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return 0, "", fmt.Errorf("poll: create request: %w", err)
	}
	req.Header.Set(RequestIDHeader, requestID)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("poll: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("poll: read response: %w", err)
	}
	text := strings.TrimSpace(string(body))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, text, &StatusError{Status: resp.StatusCode, Body: text}
	}
	return resp.StatusCode, text, nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("poll: status %d", e.Status)
	}
	return fmt.Sprintf("poll: status %d: %s", e.Status, e.Body)
}

// IsTimeout reports whether err came from the per-request deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// LogLine formats a result the way it appears in the console.
func LogLine(r Result) string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return "Server response: " + r.Body
}
