package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dealercoach/dealercoach/internal/errors"
)

const elevenLabsAPIURL = "https://api.elevenlabs.io/v1/text-to-speech"

// ElevenLabsClient synthesizes speech for the simulated customer voices.
type ElevenLabsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewElevenLabsClient creates a text-to-speech client.
func NewElevenLabsClient(apiKey string) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:  apiKey,
		baseURL: elevenLabsAPIURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// SetBaseURL points the client at a different endpoint. Used by tests.
func (c *ElevenLabsClient) SetBaseURL(url string) {
	c.baseURL = url
}

type speakRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Speak converts text into audio/mpeg bytes using the given voice.
func (c *ElevenLabsClient) Speak(ctx context.Context, text, voice string) ([]byte, error) {
	body, err := json.Marshal(speakRequest{
		Text:    text,
		ModelID: "eleven_turbo_v2",
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal speak request")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, voice)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create speak request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrUpstream, "elevenlabs call", errors.SlogError(err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(ErrUpstream, "read elevenlabs response", errors.SlogError(err))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, upstreamStatusError(resp.StatusCode, respBody)
	}
	return respBody, nil
}
