// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/isiolocityfc/backend/internal/config"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/middleware"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// JWTManager signs and verifies HS256 tokens with one shared secret.
type JWTManager struct {
	secret []byte
	config config.JWTConfig
	now    func() time.Time
}

func NewJWTManager(cfg config.JWTConfig) *JWTManager {
	secret := cfg.Secret
	if secret == "" {
		secret = config.DefaultJWTSecret
	}

	return &JWTManager{
		secret: []byte(secret),
		config: cfg,
		now:    time.Now,
	}
}

type AccessTokenClaims struct {
	UserID string
	Email  string
	Role   string
}

func (m *JWTManager) CreateAccessToken(
	claims AccessTokenClaims,
) (string, error) {
	now := m.now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.NewString()).
		IssuedAt(now).
		Expiration(now.Add(m.config.AccessTokenExpire)).
		Claim("userId", claims.UserID).
		Claim("email", claims.Email).
		Claim("role", claims.Role).
		Claim("type", TokenTypeAccess).
		Build()
	if err != nil {
		return "", fmt.Errorf("build access token: %w", err)
	}

	return m.sign(token)
}

func (m *JWTManager) CreateRefreshToken(userID string) (string, error) {
	now := m.now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.NewString()).
		IssuedAt(now).
		Expiration(now.Add(m.config.RefreshTokenExpire)).
		Claim("userId", userID).
		Claim("type", TokenTypeRefresh).
		Build()
	if err != nil {
		return "", fmt.Errorf("build refresh token: %w", err)
	}

	return m.sign(token)
}

func (m *JWTManager) sign(token jwt.Token) (string, error) {
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return string(signed), nil
}

// VerifyAccessToken accepts bearer tokens typed "access" as well as tokens
// that carry no type claim at all. Any other type, refresh included, is
// rejected.
func (m *JWTManager) VerifyAccessToken(
	_ context.Context,
	tokenString string,
) (*middleware.AccessTokenClaims, error) {
	token, tokenType, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if tokenType != "" && tokenType != TokenTypeAccess {
		return nil, wrongType(TokenTypeAccess)
	}

	userID, err := stringClaim(token, "userId")
	if err != nil {
		return nil, err
	}

	email, err := stringClaim(token, "email")
	if err != nil {
		return nil, err
	}

	role, err := stringClaim(token, "role")
	if err != nil {
		return nil, err
	}

	return &middleware.AccessTokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}

// VerifyRefreshToken checks the signature and type and returns the user id
// the token was issued to.
func (m *JWTManager) VerifyRefreshToken(tokenString string) (string, error) {
	token, tokenType, err := m.parse(tokenString)
	if err != nil {
		return "", err
	}
	if tokenType != TokenTypeRefresh {
		return "", wrongType(TokenTypeRefresh)
	}

	return stringClaim(token, "userId")
}

// parse verifies signature and expiry and returns the token with its type
// claim, empty when absent.
func (m *JWTManager) parse(tokenString string) (jwt.Token, string, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, "", fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, "", fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var tokenType string
	if token.Has("type") {
		if err := token.Get("type", &tokenType); err != nil {
			return nil, "", fmt.Errorf(
				"verify token: malformed type claim: %w",
				core.ErrTokenInvalid,
			)
		}
	}

	return token, tokenType, nil
}

func wrongType(want string) error {
	return fmt.Errorf(
		"verify token: expected %s token: %w",
		want,
		core.ErrTokenInvalid,
	)
}

func isTokenExpiredError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "exp") && strings.Contains(msg, "not satisfied")
}

func stringClaim(token jwt.Token, name string) (string, error) {
	var v string
	if err := token.Get(name, &v); err != nil || v == "" {
		return "", fmt.Errorf(
			"verify token: missing %s claim: %w",
			name,
			core.ErrTokenInvalid,
		)
	}
	return v, nil
}
