// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isiolocityfc/backend/internal/middleware"
)

type stubRepo struct {
	totals *ClubTotals
	err    error
}

func (s stubRepo) Totals(context.Context) (*ClubTotals, error) {
	return s.totals, s.err
}

type stubVerifier struct{}

func (stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	switch token {
	case "admin":
		return &middleware.AccessTokenClaims{UserID: "icfc_user_a", Role: middleware.RoleAdmin}, nil
	case "fan":
		return &middleware.AccessTokenClaims{UserID: "icfc_user_f", Role: "FAN"}, nil
	}
	return nil, errors.New("bad token")
}

func newRouter(repo Repository) http.Handler {
	h := NewHandler(HandlerConfig{
		Repo:    repo,
		DBStats: func() sql.DBStats { return sql.DBStats{OpenConnections: 3, InUse: 1} },
		DBPing:  func(context.Context) error { return nil },
		RedisPing: func(context.Context) error {
			return errors.New("connection refused")
		},
	})

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		h.RegisterRoutes(r, middleware.Authenticator(stubVerifier{}), middleware.RequireAdmin)
	})
	return r
}

func get(h http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatsRequireAdmin(t *testing.T) {
	h := newRouter(stubRepo{totals: &ClubTotals{}})

	assert.Equal(t, http.StatusUnauthorized, get(h, "/v1/admin/stats", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(h, "/v1/admin/stats", "junk").Code)
	assert.Equal(t, http.StatusForbidden, get(h, "/v1/admin/stats", "fan").Code)
	assert.Equal(t, http.StatusOK, get(h, "/v1/admin/stats", "admin").Code)
}

func TestSystemStats(t *testing.T) {
	h := newRouter(stubRepo{totals: &ClubTotals{Users: 42, ActivePlayers: 25}})

	rec := get(h, "/v1/admin/stats", "admin")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool
		Data    SystemStatsResponse
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.True(t, body.Data.Database.Healthy)
	assert.False(t, body.Data.Redis.Healthy)
	require.NotNil(t, body.Data.Database.Stats)
	assert.Equal(t, 3, body.Data.Database.Stats.OpenConnections)
	assert.Nil(t, body.Data.Redis.Stats)
	require.NotNil(t, body.Data.Club)
	assert.Equal(t, 42, body.Data.Club.Users)
	assert.NotEmpty(t, body.Data.Runtime.GoVersion)
}

func TestSystemStatsSurvivesTotalsFailure(t *testing.T) {
	h := newRouter(stubRepo{err: errors.New("relation does not exist")})

	rec := get(h, "/v1/admin/stats", "admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"club"`)

	rec = get(h, "/v1/admin/stats/club", "admin")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
