package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dealercoach/dealercoach/internal/ai"
	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/dealercoach/dealercoach/internal/repositories"
)

// maxJSONBytes bounds the request bodies of the JSON endpoints. The transcribe
// endpoint has its own multipart limit.
const maxJSONBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "write response", errors.SlogError(err))
	}
}

// readJSON decodes the request body into dst. The caller is responsible for
// responding on error; readJSON reports whether decoding succeeded.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError,
		errorResponse{Error: "Internal server error"})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Debug(message, "status", status, "method", method, "uri", uri)
	app.writeJSON(w, r, status, errorResponse{Error: message})
}

// upstreamError maps AI provider failures to the shared error taxonomy:
// 429 for rate limits, 402 for billing problems, 500 for everything else.
func (app *application) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		app.clientError(w, r, http.StatusTooManyRequests,
			"Rate limit exceeded, please try again shortly")
	case errors.Is(err, ai.ErrBillingRequired):
		app.clientError(w, r, http.StatusPaymentRequired,
			"AI provider billing issue, please contact your administrator")
	default:
		app.serverError(w, r, err)
	}
}

// notFoundOrServerError responds 404 for missing rows and 500 otherwise.
func (app *application) notFoundOrServerError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		app.clientError(w, r, http.StatusNotFound, "Not found")
		return
	}
	app.serverError(w, r, err)
}
