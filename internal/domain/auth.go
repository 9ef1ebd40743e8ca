package domain

import (
	"context"
	"time"
)

// Role codes carried in issued tokens.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// TokenClaims are the verified claims extracted from a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Roles  []string
}

// HasRole reports whether the claims carry the given role code.
func (c *TokenClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AuthService authenticates the site administrator and issues tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token.
	// Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (string, error)
}
