package ai

import (
	"context"
	"io"
	"net/http"

	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/sashabaranov/go-openai"
)

// Transcriber converts recorded trainee audio to text with OpenAI Whisper.
type Transcriber struct {
	client *openai.Client
}

// NewTranscriber creates a transcription client.
func NewTranscriber(apiKey string) *Transcriber {
	return &Transcriber{
		client: openai.NewClient(apiKey),
	}
}

// NewTranscriberWithConfig creates a transcription client with a custom
// configuration, e.g. a test server base URL.
func NewTranscriberWithConfig(config openai.ClientConfig) *Transcriber {
	return &Transcriber{
		client: openai.NewClientWithConfig(config),
	}
}

// Transcribe sends the audio stream to Whisper and returns the transcript.
// filename hints the audio container format to the API.
func (t *Transcriber) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{ //nolint:exhaustruct // defaults are fine
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: filename,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.HTTPStatusCode {
			case http.StatusTooManyRequests:
				return "", errors.Wrap(ErrRateLimited, "create transcription", errors.SlogError(err))
			case http.StatusPaymentRequired:
				return "", errors.Wrap(ErrBillingRequired, "create transcription", errors.SlogError(err))
			}
		}
		return "", errors.Wrap(ErrUpstream, "create transcription", errors.SlogError(err))
	}
	return resp.Text, nil
}
