package contexthelpers

type contextKey string

const isAuthenticatedContextKey = contextKey("isAuthenticated")
const authenticatedClaimsContextKey = contextKey("authenticatedClaims")
