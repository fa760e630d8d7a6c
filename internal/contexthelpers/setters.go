package contexthelpers

import (
	"context"
	"net/http"

	"github.com/dealercoach/dealercoach/internal/auth"
)

// AuthenticateContext attaches the verified token claims to the request
// context.
func AuthenticateContext(r *http.Request, claims auth.Claims) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, isAuthenticatedContextKey, true)
	ctx = context.WithValue(ctx, authenticatedClaimsContextKey, claims)
	return r.WithContext(ctx)
}
