// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]*AccessTokenClaims

func (s stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*AccessTokenClaims, error) {
	if c, ok := s[token]; ok {
		return c, nil
	}
	return nil, errors.New("token expired")
}

var verifier = stubVerifier{
	"admin": {UserID: "icfc_user_admin", Email: "admin@isiolo.com", Role: RoleAdmin},
	"fan":   {UserID: "icfc_user_fan", Email: "fan@isiolo.com", Role: "FAN"},
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIdentityContext(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Identity
		ok     bool
	}{
		{name: "no header"},
		{name: "wrong scheme", header: "Basic admin"},
		{name: "rejected token", header: "Bearer stale"},
		{
			name:   "admin",
			header: "Bearer admin",
			want:   Identity{ID: "icfc_user_admin", Email: "admin@isiolo.com", Role: RoleAdmin},
			ok:     true,
		},
		{
			name:   "case insensitive scheme",
			header: "bearer fan",
			want:   Identity{ID: "icfc_user_fan", Email: "fan@isiolo.com", Role: "FAN"},
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    Identity
				gotOK  bool
				called bool
			)
			h := IdentityContext(verifier, discard(), false)(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					called = true
					got, gotOK = IdentityFrom(r.Context())
				}),
			)

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			require.True(t, called, "anonymous requests must pass through")
			assert.Equal(t, tt.ok, gotOK)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticatorReusesIdentity(t *testing.T) {
	h := IdentityContext(verifier, discard(), true)(
		Authenticator(stubVerifier{})(RequireAdmin(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}),
		)),
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer admin")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := RequireRole(RoleAdmin, "STAFF")(ok)

	serve := func(ctx context.Context) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		return rec.Code
	}

	bg := context.Background()
	assert.Equal(t, http.StatusUnauthorized, serve(bg))
	assert.Equal(t, http.StatusForbidden, serve(WithIdentity(bg, Identity{ID: "u1", Role: "FAN"})))
	assert.Equal(t, http.StatusOK, serve(WithIdentity(bg, Identity{ID: "u2", Role: "STAFF"})))
	assert.Equal(t, http.StatusUnauthorized, serve(WithIdentity(bg, Identity{Role: RoleAdmin})))
}
