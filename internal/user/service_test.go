// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isiolocityfc/backend/internal/auth"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
	"github.com/isiolocityfc/backend/internal/middleware"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]*User
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]*User{}}
}

func (m *memRepo) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (m *memRepo) UpdatePassword(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}
	u.PasswordHash = hash
	return nil
}

func (m *memRepo) mutate(id string, fn func(*User)) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	fn(u)
	cp := *u
	return &cp, nil
}

func (m *memRepo) UpdateRole(_ context.Context, id, role string) (*User, error) {
	return m.mutate(id, func(u *User) { u.Role = role })
}

func (m *memRepo) UpdateTier(_ context.Context, id, tier string) (*User, error) {
	return m.mutate(id, func(u *User) { u.MembershipTier = tier })
}

func (m *memRepo) SetActive(_ context.Context, id string, active bool) (*User, error) {
	return m.mutate(id, func(u *User) { u.IsActive = active })
}

func (m *memRepo) List(_ context.Context, p ListUsersParams) ([]User, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []User
	for _, u := range m.users {
		if p.Role != "" && u.Role != p.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (m *memRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func TestCreateAssignsFanOnFreeTier(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewService(repo)

	info, err := svc.Create(ctx, auth.NewUser{
		Email:        "  New.Fan@Example.com ",
		PasswordHash: "hash",
		Name:         "New Fan",
	})
	require.NoError(t, err)

	assert.True(t, ids.IsValid(info.ID))
	model, ok := ids.ExtractModel(info.ID)
	require.True(t, ok)
	assert.Equal(t, "user", model)
	assert.Equal(t, "new.fan@example.com", info.Email)

	stored, err := repo.GetByID(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleFan, stored.Role)
	assert.Equal(t, TierFree, stored.MembershipTier)
	assert.True(t, stored.IsActive)

	exists, err := svc.EmailExists(ctx, "NEW.FAN@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	first, created, err := svc.EnsureAdmin(ctx, "admin@isiolo.com", "hash", "Admin")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, RoleAdmin, first.Role)
	assert.True(t, first.EmailVerified)

	second, created, err := svc.EnsureAdmin(ctx, "admin@isiolo.com", "other", "Admin")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "hash", second.PasswordHash)
}

func TestUpdateUserRoleAndTier(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	info, err := svc.Create(ctx, auth.NewUser{Email: "p@club.com", Name: "P"})
	require.NoError(t, err)

	u, err := svc.UpdateUserRole(ctx, info.ID, RolePlayer)
	require.NoError(t, err)
	assert.Equal(t, RolePlayer, u.Role)

	_, err = svc.UpdateUserRole(ctx, info.ID, "superuser")
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	u, err = svc.UpdateUserTier(ctx, info.ID, TierGold)
	require.NoError(t, err)
	assert.Equal(t, TierGold, u.MembershipTier)

	_, err = svc.UpdateUserTier(ctx, info.ID, "pro")
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	_, err = svc.UpdateUserRole(ctx, "icfc_user_missing", RoleCoach)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestSetUserActiveRefusesSelfDeactivation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	admin, _, err := svc.EnsureAdmin(ctx, "admin@isiolo.com", "hash", "Admin")
	require.NoError(t, err)

	_, err = svc.SetUserActive(ctx, admin.ID, admin.ID, false)
	assert.True(t, errors.Is(err, core.ErrForbidden))

	fan, err := svc.Create(ctx, auth.NewUser{Email: "f@club.com", Name: "F"})
	require.NoError(t, err)

	u, err := svc.SetUserActive(ctx, admin.ID, fan.ID, false)
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestAdminRoutes(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())
	fan, err := svc.Create(ctx, auth.NewUser{Email: "f@club.com", Name: "F"})
	require.NoError(t, err)

	withIdentity := func(role string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := middleware.WithIdentity(r.Context(), middleware.Identity{
					ID:   "icfc_user_caller",
					Role: role,
				})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		}
	}

	tests := []struct {
		name   string
		role   string
		body   string
		status int
	}{
		{"admin promotes", "ADMIN", `{"role":"COACH"}`, http.StatusOK},
		{"admin sends bad role", "ADMIN", `{"role":"owner"}`, http.StatusBadRequest},
		{"fan is forbidden", "FAN", `{"role":"ADMIN"}`, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			NewHandler(svc).RegisterAdminRoutes(
				r,
				withIdentity(tt.role),
				middleware.RequireAdmin,
			)

			req := httptest.NewRequest(
				http.MethodPut,
				"/admin/users/"+fan.ID+"/role",
				strings.NewReader(tt.body),
			)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}
