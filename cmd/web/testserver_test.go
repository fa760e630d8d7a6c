package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/dealercoach/dealercoach/internal/auth"
	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuthSecret = "test-signing-secret"

// waitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func waitForReady(ctx context.Context, endpoint string) error {
	timeout := 1 * time.Second
	client := http.Client{}
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			endpoint,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(250 * time.Millisecond)
		}
	}
}

// testLookupEnv returns a lookup function with the baseline test environment
// plus the given overrides, typically stub upstream URLs.
func testLookupEnv(overrides map[string]string) func(string) (string, bool) {
	env := map[string]string{
		"DEALERCOACH_ADDR":              "localhost:0",
		"DEALERCOACH_SQLITE_URL":        ":memory:",
		"DEALERCOACH_AUTH_SECRET":       testAuthSecret,
		"DEALERCOACH_ANTHROPIC_API_KEY": "test-api-key",
	}
	for key, value := range overrides {
		env[key] = value
	}
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

type testServer struct {
	url    string
	client http.Client
}

// startTestServer starts the full server in-process, waits for it to be
// ready, and returns a handle for issuing requests against it.
func startTestServer(t *testing.T, lookupEnv func(string) (string, bool)) testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// We need to grab the dynamically allocated port from the log output.
	addrCh := make(chan string, 1)
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "Addr" {
				addrCh <- a.Value.String()
			}
			return a
		},
	})))

	go func() {
		if err := run(ctx, logger, lookupEnv); err != nil {
			cancel()
			assert.NoError(t, err)
		}
	}()
	select {
	case <-ctx.Done():
		t.Fatal("server failed to start")
		return testServer{}
	case addr := <-addrCh:
		serverURL := fmt.Sprintf("http://%s", addr)
		require.NoError(t, waitForReady(ctx, fmt.Sprintf("%s/api/healthy", serverURL)))
		return testServer{url: serverURL, client: http.Client{}}
	}
}

// mintToken signs a bearer token the way the identity provider would.
func mintToken(t *testing.T, userID string, role auth.Role) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@example.com",
		"role":  string(role),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAuthSecret))
	require.NoError(t, err)
	return token
}

// do issues a JSON request with an optional bearer token and returns the
// response. A nil body sends an empty request.
func (s *testServer) do(t *testing.T, method, urlPath, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, s.url+urlPath, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.client.Do(req)
	require.NoError(t, err)
	return resp
}

// decode unmarshals the response body into dst and closes the body.
func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// drain closes the response body, asserting the given status first.
func drain(t *testing.T, resp *http.Response, wantStatus int) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", body)
}
