// Package embed turns text into vectors through an Ollama-style embeddings
// endpoint.
package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

// Defaults for a local Ollama server.
const (
	DefaultURL   = "http://localhost:11434/api/embeddings"
	DefaultModel = "nomic-embed-text"
)

// maxBody caps how much of a response is read.
const maxBody = 32 << 20

// maxParallel bounds concurrent requests in EmbedAll.
const maxParallel = 4

// Client requests embeddings.
type Client struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a client for url.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{URL: url, Timeout: timeout, HTTPClient: &http.Client{}}
}

type request struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// Embed returns the vector for text under model.
func (c *Client) Embed(ctx context.Context, text, model string) ([]float64, error) {
	if model == "" {
		model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(request{Model: model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("embed: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("embed: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embed: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("embed: read response: %w", err)
	}
	return parseResponse(resp.StatusCode, data)
}

// parseResponse reads {"embedding":[...]} or {"error":"..."}. An error field
// wins over the status code.
func parseResponse(status int, data []byte) ([]float64, error) {
	if !gjson.ValidBytes(data) {
		if status < 200 || status >= 300 {
			return nil, fmt.Errorf("embed: status %d: %s", status, strings.TrimSpace(string(data)))
		}
		return nil, fmt.Errorf("embed: invalid JSON response")
	}
	if msg := gjson.GetBytes(data, "error"); msg.Exists() {
		return nil, fmt.Errorf("embedding error: %s", msg.String())
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("embed: status %d", status)
	}
	field := gjson.GetBytes(data, "embedding")
	if !field.IsArray() {
		return nil, fmt.Errorf("embed: response has no embedding")
	}
	items := field.Array()
	vec := make([]float64, len(items))
	for i, v := range items {
		if v.Type != gjson.Number {
			return nil, fmt.Errorf("embed: embedding[%d] is not a number", i)
		}
		vec[i] = v.Float()
	}
	return vec, nil
}

// EmbedAll embeds every text concurrently and returns vectors in input order.
// The first failure cancels the rest.
func (c *Client) EmbedAll(ctx context.Context, texts []string, model string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, text := range texts {
		g.Go(func() error {
			vec, err := c.Embed(ctx, text, model)
			if err != nil {
				return err
			}
			out[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
