// Package ai wraps the third-party AI providers behind thin clients: the
// Anthropic messages API for chat and evaluation, ElevenLabs for
// text-to-speech, and OpenAI Whisper for transcription. The clients hold no
// state between calls and never retry; each request awaits a single upstream
// response.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dealercoach/dealercoach/internal/errors"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"

	// MaxTokens caps the length of a simulated customer reply.
	MaxTokens = 1024
)

// Message is a single chat turn in the messages-API shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnthropicClient calls the Anthropic messages API.
type AnthropicClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewAnthropicClient creates a client for the given API key and model.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicAPIURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// SetBaseURL points the client at a different endpoint. Used by tests.
func (c *AnthropicClient) SetBaseURL(url string) {
	c.baseURL = url
}

type anthropicRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

type anthropicErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a conversation to the messages API and returns the text of
// the first content block.
func (c *AnthropicClient) Complete(
	ctx context.Context,
	system string,
	messages []Message,
	maxTokens int,
) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal anthropic request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "create anthropic request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(ErrUpstream, "anthropic call", errors.SlogError(err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(ErrUpstream, "read anthropic response", errors.SlogError(err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", upstreamStatusError(resp.StatusCode, respBody)
	}

	var apiResp anthropicResponse
	if err = json.Unmarshal(respBody, &apiResp); err != nil {
		return "", errors.Wrap(ErrUpstream, "unmarshal anthropic response", errors.SlogError(err))
	}
	if len(apiResp.Content) == 0 {
		return "", errors.Wrap(ErrUpstream, "empty anthropic response content")
	}
	return apiResp.Content[0].Text, nil
}

// upstreamStatusError maps a non-200 provider status to the shared taxonomy.
func upstreamStatusError(status int, body []byte) error {
	detail := string(body)
	var errResp anthropicErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
		detail = errResp.Error.Message
	}
	attrs := []slog.Attr{slog.Int("status", status), slog.String("detail", detail)}
	switch status {
	case http.StatusTooManyRequests:
		return errors.Wrap(ErrRateLimited, "upstream status", attrs...)
	case http.StatusPaymentRequired:
		return errors.Wrap(ErrBillingRequired, "upstream status", attrs...)
	default:
		return errors.Wrap(ErrUpstream, "upstream status", attrs...)
	}
}
