// Package auth verifies the bearer tokens issued by the identity provider.
// The provider signs access tokens with a shared HS256 secret; this package
// only validates and extracts claims, it never issues tokens.
package auth

import (
	"strings"

	"github.com/dealercoach/dealercoach/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Role of an authenticated user.
type Role string

const (
	RoleSalesperson Role = "salesperson"
	RoleManager     Role = "manager"
)

// Claims are the token claims the application cares about.
type Claims struct {
	// UserID is the token subject.
	UserID string
	Email  string
	Role   Role
}

var (
	ErrMissingToken = errors.NewSentinel("missing bearer token")
	ErrInvalidToken = errors.NewSentinel("invalid bearer token")
)

// Verifier validates bearer tokens against the identity provider's signing
// secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given HS256 signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// VerifyHeader validates an Authorization header value of the form
// "Bearer <token>" and returns the claims.
func (v *Verifier) VerifyHeader(header string) (Claims, error) {
	if header == "" {
		return Claims{}, ErrMissingToken
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return Claims{}, ErrInvalidToken
	}
	return v.Verify(token)
}

// Verify validates a raw token string and returns the claims.
func (v *Verifier) Verify(tokenString string) (Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, errors.Wrap(ErrInvalidToken, "parse token", errors.SlogError(err))
	}
	if !token.Valid || claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	role := Role(claims.Role)
	if role != RoleManager {
		// Unknown roles are treated as plain salespeople.
		role = RoleSalesperson
	}
	return Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   role,
	}, nil
}
