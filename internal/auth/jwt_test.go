// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isiolocityfc/backend/internal/config"
	"github.com/isiolocityfc/backend/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-that-is-long-enough",
		AccessTokenExpire:  7 * 24 * time.Hour,
		RefreshTokenExpire: 30 * 24 * time.Hour,
		SessionExpire:      30 * 24 * time.Hour,
	}
}

func TestJWTManagerAccessToken(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	token, err := m.CreateAccessToken(AccessTokenClaims{
		UserID: "icfc_user_abc123",
		Email:  "fan@example.com",
		Role:   "FAN",
	})
	require.NoError(t, err)

	claims, err := m.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "icfc_user_abc123", claims.UserID)
	assert.Equal(t, "fan@example.com", claims.Email)
	assert.Equal(t, "FAN", claims.Role)
}

func TestJWTManagerRejectsWrongType(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	refresh, err := m.CreateRefreshToken("icfc_user_abc123")
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(context.Background(), refresh)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid),
		"refresh token must not authenticate requests")

	access, err := m.CreateAccessToken(AccessTokenClaims{
		UserID: "icfc_user_abc123", Email: "a@b.co", Role: "FAN",
	})
	require.NoError(t, err)

	_, err = m.VerifyRefreshToken(access)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))

	userID, err := m.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "icfc_user_abc123", userID)
}

func TestJWTManagerRejectsForeignSecret(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	other := testJWTConfig()
	other.Secret = "a-completely-different-secret"
	token, err := NewJWTManager(other).CreateAccessToken(AccessTokenClaims{
		UserID: "icfc_user_x", Email: "x@y.z", Role: "ADMIN",
	})
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(context.Background(), token)
	assert.Error(t, err)

	_, err = m.VerifyAccessToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestJWTManagerAcceptsUntypedAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	m := NewJWTManager(cfg)

	sign := func(claims map[string]string) string {
		b := jwt.NewBuilder().
			IssuedAt(time.Now()).
			Expiration(time.Now().Add(time.Hour))
		for k, v := range claims {
			b = b.Claim(k, v)
		}
		token, err := b.Build()
		require.NoError(t, err)
		signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), []byte(cfg.Secret)))
		require.NoError(t, err)
		return string(signed)
	}

	untyped := sign(map[string]string{
		"userId": "icfc_user_legacy",
		"email":  "legacy@example.com",
		"role":   "ADMIN",
	})

	claims, err := m.VerifyAccessToken(context.Background(), untyped)
	require.NoError(t, err)
	assert.Equal(t, "icfc_user_legacy", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)

	_, err = m.VerifyRefreshToken(untyped)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid),
		"refresh verification still requires the type claim")

	odd := sign(map[string]string{
		"userId": "icfc_user_legacy",
		"email":  "legacy@example.com",
		"role":   "ADMIN",
		"type":   "invite",
	})
	_, err = m.VerifyAccessToken(context.Background(), odd)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestJWTManagerExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpire = -time.Minute
	m := NewJWTManager(cfg)

	token, err := m.CreateAccessToken(AccessTokenClaims{
		UserID: "icfc_user_x", Email: "x@y.z", Role: "FAN",
	})
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(context.Background(), token)
	assert.Error(t, err)
}

func TestJWTManagerTokensAreDistinct(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	a, err := m.CreateRefreshToken("icfc_user_x")
	require.NoError(t, err)
	b, err := m.CreateRefreshToken("icfc_user_x")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "tokens minted in the same second differ")
}

func TestJWTManagerDefaultSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	m := NewJWTManager(cfg)

	fallback := testJWTConfig()
	fallback.Secret = config.DefaultJWTSecret

	token, err := NewJWTManager(fallback).CreateRefreshToken("icfc_user_x")
	require.NoError(t, err)

	_, err = m.VerifyRefreshToken(token)
	assert.NoError(t, err)
}
