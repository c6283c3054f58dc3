package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrRateLimited signals the provider asked us to slow down. The triager
// retries these with a longer delay than ordinary API errors.
var ErrRateLimited = errors.New("triage: rate limited")

// ErrMalformedResponse marks replies the client could not extract text
// from. Retrying cannot fix these, so the triager fails the issue
// immediately instead of burning attempts.
var ErrMalformedResponse = errors.New("triage: malformed response")

// Reasoner produces a completion for a system prompt and user message.
type Reasoner interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const (
	anthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
)

// AnthropicClient is a Reasoner backed by the Anthropic messages API.
type AnthropicClient struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// AnthropicOption customizes an AnthropicClient.
type AnthropicOption func(*AnthropicClient)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(url string) AnthropicOption {
	return func(c *AnthropicClient) { c.baseURL = url }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) AnthropicOption {
	return func(c *AnthropicClient) { c.httpClient.Timeout = d }
}

// NewAnthropicClient creates a messages API client.
func NewAnthropicClient(apiKey, model string, maxTokens int, opts ...AnthropicOption) *AnthropicClient {
	c := &AnthropicClient{
		baseURL:    anthropicBaseURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type messagesRequest struct {
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens"`
	System    string           `json:"system,omitempty"`
	Messages  []messageRequest `json:"messages"`
}

type messageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Complete sends one user message and returns the first text block of the
// reply. A 429 maps to ErrRateLimited; other non-2xx statuses return an
// error carrying the status and response body.
func (c *AnthropicClient) Complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  []messageRequest{{Role: "user", Content: user}},
	})
	if err != nil {
		return "", fmt.Errorf("triage: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("triage: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("triage: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return "", ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("triage: API error %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var out messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrMalformedResponse, err)
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%w: no text content", ErrMalformedResponse)
}
