// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgInvalidRefresh     = "Invalid or expired refresh token"
	msgEmailTaken         = "User with this email already exists"
)

type UserInfo struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	Tier         string
	IsActive     bool
}

type NewUser struct {
	Email        string
	PasswordHash string
	Name         string
	Phone        *string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, nu NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

type Service struct {
	repo          Repository
	jwt           *JWTManager
	userProvider  UserProvider
	validate      *validator.Validate
	sessionExpire time.Duration
	logger        *slog.Logger
}

func NewService(
	repo Repository,
	jwt *JWTManager,
	userProvider UserProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		jwt:           jwt,
		userProvider:  userProvider,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		sessionExpire: jwt.config.SessionExpire,
		logger:        logger,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
	client ClientInfo,
) (*AuthResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	exists, err := s.userProvider.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, core.DuplicateError(msgEmailTaken)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userProvider.Create(ctx, NewUser{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Phone:        req.Phone,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError(msgEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.openSession(ctx, user, client)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	client ClientInfo,
) (*AuthResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, core.UnauthenticatedError(msgInvalidCredentials)
	}

	user, err := s.userProvider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // run the hash anyway so unknown emails cost the same
			_, _ = core.CheckPasswordOrDummy(req.Password, nil)
			return nil, core.UnauthenticatedError(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	check, err := core.CheckPasswordOrDummy(req.Password, &user.PasswordHash)
	if err != nil {
		s.logger.WarnContext(ctx, "stored password hash unreadable",
			"user_id", user.ID,
			"error", err,
		)
		return nil, core.UnauthenticatedError(msgInvalidCredentials)
	}

	if !check.Valid {
		return nil, core.UnauthenticatedError(msgInvalidCredentials)
	}

	if !user.IsActive {
		return nil, core.NewAppError(
			core.ErrAccountLocked,
			"Account is disabled",
			http.StatusUnauthorized,
			core.CodeUnauthenticated,
		)
	}

	if check.Rehash != "" {
		if err := s.userProvider.UpdatePassword(ctx, user.ID, check.Rehash); err != nil {
			s.logger.WarnContext(ctx, "password rehash failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	return s.openSession(ctx, user, client)
}

// Refresh swaps a refresh token for a new token pair and rewrites the
// session row that held it. Every failure reports the same message.
func (s *Service) Refresh(
	ctx context.Context,
	refreshToken string,
) (*AuthResult, error) {
	result, err := s.refresh(ctx, refreshToken)
	if err != nil {
		s.logger.DebugContext(ctx, "refresh rejected", "error", err)
		return nil, core.UnauthenticatedError(msgInvalidRefresh)
	}
	return result, nil
}

func (s *Service) refresh(
	ctx context.Context,
	refreshToken string,
) (*AuthResult, error) {
	if _, err := s.jwt.VerifyRefreshToken(refreshToken); err != nil {
		return nil, err
	}

	session, err := s.repo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(time.Now()) {
		return nil, fmt.Errorf("session %s: %w", session.ID, core.ErrTokenExpired)
	}

	user, err := s.userProvider.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	token, newRefresh, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.sessionExpire)
	if err := s.repo.Rotate(ctx, session.ID, token, newRefresh, expiresAt); err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:        token,
		RefreshToken: newRefresh,
		User:         user,
	}, nil
}

// Logout deletes the session holding refreshToken. Only the owner may end
// a session; unknown tokens are reported as success.
func (s *Service) Logout(
	ctx context.Context,
	userID, refreshToken string,
) error {
	session, err := s.repo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("logout: %w", err)
	}

	if session.UserID != userID {
		return core.UnauthorizedError("Cannot end another user's session")
	}

	if _, err := s.repo.DeleteByRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

func (s *Service) ListSessions(
	ctx context.Context,
	userID string,
) ([]SessionInfo, error) {
	sessions, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	out := make([]SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, SessionInfo{
			ID:        sess.ID,
			UserAgent: sess.UserAgent,
			IPAddress: sess.IPAddress,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
			ExpiresAt: sess.ExpiresAt,
		})
	}

	return out, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*UserInfo, error) {
	if userID == "" {
		return nil, core.UnauthenticatedError("Not authenticated")
	}

	return s.userProvider.GetByID(ctx, userID)
}

func (s *Service) openSession(
	ctx context.Context,
	user *UserInfo,
	client ClientInfo,
) (*AuthResult, error) {
	token, refreshToken, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:           ids.For("session"),
		UserID:       user.ID,
		Token:        token,
		RefreshToken: refreshToken,
		UserAgent:    optional(client.UserAgent),
		IPAddress:    optional(client.IPAddress),
		ExpiresAt:    time.Now().Add(s.sessionExpire),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &AuthResult{
		Token:        token,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *Service) issue(user *UserInfo) (string, string, error) {
	token, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", "", fmt.Errorf("create access token: %w", err)
	}

	refreshToken, err := s.jwt.CreateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("create refresh token: %w", err)
	}

	return token, refreshToken, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
