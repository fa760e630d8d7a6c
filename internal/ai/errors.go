package ai

import "github.com/dealercoach/dealercoach/internal/errors"

// Upstream failure taxonomy shared by all provider clients. Handlers map these
// to HTTP status codes.
var (
	// ErrRateLimited means the provider returned 429.
	ErrRateLimited = errors.NewSentinel("upstream rate limited")
	// ErrBillingRequired means the provider refused the request for billing
	// reasons (402, or an out-of-credits error body).
	ErrBillingRequired = errors.NewSentinel("upstream billing required")
	// ErrUpstream covers every other provider failure.
	ErrUpstream = errors.NewSentinel("upstream unavailable")
)
