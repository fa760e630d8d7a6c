// Smoketest exercises a deployed instance end to end: the health endpoint
// and the public invite check. It is run against production after a deploy.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/logging"
)

func checkHealthy(ctx context.Context, client *http.Client, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/healthy", nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call healthy")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return errors.New("unexpected status", slog.Int("status", resp.StatusCode))
	}
	var body struct {
		Status string `json:"status"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "decode healthy response")
	}
	if body.Status != "ok" {
		return errors.New("unexpected health status", slog.String("status", body.Status))
	}
	return nil
}

func checkInvite(ctx context.Context, client *http.Client, baseURL string) error {
	payload, err := json.Marshal(map[string]string{"email": "smoketest@example.com"})
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		baseURL+"/api/check-invite", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "call check-invite")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New("unexpected status",
			slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   = &http.Client{Timeout: 10 * time.Second}
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second) //nolint:mnd // 30 seconds
	defer cancel()

	if err := checkHealthy(ctx, client, url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "health check failed", errors.SlogError(err))
		os.Exit(1)
	}
	if err := checkInvite(ctx, client, url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "invite check failed", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
