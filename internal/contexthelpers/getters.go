package contexthelpers

import (
	"context"

	"github.com/dealercoach/dealercoach/internal/auth"
)

// IsAuthenticated reports whether the request carries verified claims.
func IsAuthenticated(ctx context.Context) bool {
	isAuthenticated, ok := ctx.Value(isAuthenticatedContextKey).(bool)
	if !ok {
		return false
	}

	return isAuthenticated
}

// AuthenticatedClaims returns the verified token claims, or the zero value
// when the request is unauthenticated.
func AuthenticatedClaims(ctx context.Context) auth.Claims {
	claims, ok := ctx.Value(authenticatedClaimsContextKey).(auth.Claims)
	if !ok {
		return auth.Claims{}
	}

	return claims
}

// AuthenticatedUserID returns the authenticated user's ID, or "" when the
// request is unauthenticated.
func AuthenticatedUserID(ctx context.Context) string {
	return AuthenticatedClaims(ctx).UserID
}

// IsManager reports whether the authenticated user has the manager role.
func IsManager(ctx context.Context) bool {
	return AuthenticatedClaims(ctx).Role == auth.RoleManager
}
