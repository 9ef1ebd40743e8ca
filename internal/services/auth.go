package services

import (
	"context"
	"fmt"
	"time"

	"communityhub/internal/domain"
)

// adminUserID identifies the site administrator in issued tokens.
const adminUserID = "admin"

type authService struct {
	adminEmail        string
	adminPasswordHash string
	hasher            domain.PasswordHasher
	tokenIssuer       domain.TokenIssuer
	tokenExpiry       time.Duration
}

// NewAuthService creates an AuthService that authenticates the configured
// site administrator and issues bearer tokens.
func NewAuthService(adminEmail, adminPasswordHash string, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		hasher:            hasher,
		tokenIssuer:       tokenIssuer,
		tokenExpiry:       tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		// Admin login not configured for this deployment.
		return "", domain.ErrInvalidCredentials
	}
	if email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.adminPasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(adminUserID, email, []string{domain.RoleAdmin}, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
