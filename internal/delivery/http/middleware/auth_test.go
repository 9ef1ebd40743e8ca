package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"communityhub/internal/delivery/http/helpers"
	"communityhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	claims *domain.TokenClaims
	err    error
}

func (f *fakeTokenVerifier) Verify(_ string) (*domain.TokenClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	validClaims := &domain.TokenClaims{UserID: "user-123", Roles: []string{domain.RoleMember}}

	tests := []struct {
		name          string
		authHeader    string
		verifier      domain.TokenVerifier
		wantStatus    int
		wantBodyCode  string
		nextCalled    bool
		wantContextID string
	}{
		{
			name:          "valid token sets context and calls next",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{claims: validClaims},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "user-123",
		},
		{
			name:         "missing authorization header",
			authHeader:   "",
			verifier:     &fakeTokenVerifier{claims: validClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "invalid authorization format no Bearer prefix",
			authHeader:   "Basic abc",
			verifier:     &fakeTokenVerifier{claims: validClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "empty token after Bearer",
			authHeader:   "Bearer ",
			verifier:     &fakeTokenVerifier{claims: validClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "verifier rejects token",
			authHeader:   "Bearer bad-token",
			verifier:     &fakeTokenVerifier{err: errors.New("expired")},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotUserID string
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUserID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireAuth(tt.verifier, logger)(next)
			req := httptest.NewRequest(http.MethodGet, "/me/registrations", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			handler(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.wantContextID != "" {
				assert.Equal(t, tt.wantContextID, gotUserID)
			}
			if tt.wantBodyCode != "" {
				var resp helpers.APIResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantBodyCode, resp.Error.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	handler := RequireRole(domain.RoleAdmin)(next)

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/subscriptions", nil)
		ctx := SetClaims(req.Context(), &domain.TokenClaims{UserID: "admin", Roles: []string{domain.RoleAdmin}})
		w := httptest.NewRecorder()
		handler(w, req.WithContext(ctx))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/subscriptions", nil)
		ctx := SetClaims(req.Context(), &domain.TokenClaims{UserID: "u1", Roles: []string{domain.RoleMember}})
		w := httptest.NewRecorder()
		handler(w, req.WithContext(ctx))
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no claims is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/subscriptions", nil)
		w := httptest.NewRecorder()
		handler(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
