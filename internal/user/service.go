// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/isiolocityfc/backend/internal/auth"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return s.repo.ExistsByEmail(ctx, normalizeEmail(email))
}

// Create stores a self-registered account. New accounts are always FAN on
// the FREE tier.
func (s *Service) Create(
	ctx context.Context,
	nu auth.NewUser,
) (*auth.UserInfo, error) {
	user := &User{
		ID:             ids.For("user"),
		Email:          normalizeEmail(nu.Email),
		PasswordHash:   nu.PasswordHash,
		Name:           nu.Name,
		Phone:          nu.Phone,
		Role:           RoleFan,
		MembershipTier: TierFree,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

// EnsureAdmin creates the administrator account when no account with the
// email exists yet. An existing account is returned untouched.
func (s *Service) EnsureAdmin(
	ctx context.Context,
	email, passwordHash, name string,
) (*User, bool, error) {
	existing, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, false, err
	}

	admin := &User{
		ID:             ids.For("user"),
		Email:          normalizeEmail(email),
		PasswordHash:   passwordHash,
		Name:           name,
		Role:           RoleAdmin,
		MembershipTier: TierFree,
		IsActive:       true,
		EmailVerified:  true,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, false, err
	}

	return admin, true, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) UpdateUserRole(
	ctx context.Context,
	id, role string,
) (*User, error) {
	if !ValidRole(role) {
		return nil, fmt.Errorf(
			"update role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	return s.repo.UpdateRole(ctx, id, role)
}

func (s *Service) UpdateUserTier(
	ctx context.Context,
	id, tier string,
) (*User, error) {
	if !ValidTier(tier) {
		return nil, fmt.Errorf(
			"update tier: invalid tier %q: %w",
			tier,
			core.ErrInvalidInput,
		)
	}

	return s.repo.UpdateTier(ctx, id, tier)
}

// SetUserActive enables or disables an account. Admins cannot disable
// themselves.
func (s *Service) SetUserActive(
	ctx context.Context,
	requesterID, targetID string,
	active bool,
) (*User, error) {
	if requesterID == targetID && !active {
		return nil, fmt.Errorf(
			"deactivate own account: %w",
			core.ErrForbidden,
		)
	}

	return s.repo.SetActive(ctx, targetID, active)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Tier:         u.MembershipTier,
		IsActive:     u.IsActive,
	}
}

var _ auth.UserProvider = (*Service)(nil)
