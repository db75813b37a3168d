// AngelaMos | 2026
// seed_test.go

package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isiolocityfc/backend/internal/config"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/match"
	"github.com/isiolocityfc/backend/internal/user"
)

type userRepo struct {
	user.Repository
	byEmail map[string]*user.User
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	return u, nil
}

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	r.byEmail[u.Email] = u
	return nil
}

type matchRepo struct {
	match.Repository
	teams  map[string]string
	venues map[string]string
}

func (r *matchRepo) UpsertTeam(_ context.Context, t *match.Team) error {
	if id, ok := r.teams[t.Name]; ok {
		t.ID = id
		return nil
	}
	r.teams[t.Name] = t.ID
	return nil
}

func (r *matchRepo) UpsertVenue(_ context.Context, v *match.Venue) error {
	if id, ok := r.venues[v.Name]; ok {
		v.ID = id
		return nil
	}
	r.venues[v.Name] = v.ID
	return nil
}

func newSeeder() (*Seeder, *userRepo, *matchRepo) {
	users := &userRepo{byEmail: map[string]*user.User{}}
	matches := &matchRepo{teams: map[string]string{}, venues: map[string]string{}}

	s := New(
		user.NewService(users),
		match.NewService(matches),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	s.hash = func(p string) (string, error) { return "hashed:" + p, nil }
	return s, users, matches
}

func TestRunIsIdempotent(t *testing.T) {
	s, users, matches := newSeeder()
	cfg := config.SeedConfig{
		AdminEmail:    "Secretary@IsioloCityFC.com",
		AdminPassword: "a-long-passphrase",
		AdminName:     "Club Secretary",
	}

	first, err := s.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, first.AdminCreated)
	assert.Equal(t, len(Teams), first.Teams)

	second, err := s.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.False(t, second.AdminCreated)
	assert.Equal(t, first.AdminID, second.AdminID)
	assert.Equal(t, first.VenueID, second.VenueID)

	require.Len(t, users.byEmail, 1)
	admin := users.byEmail["secretary@isiolocityfc.com"]
	require.NotNil(t, admin)
	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.Equal(t, "hashed:a-long-passphrase", admin.PasswordHash)

	assert.Len(t, matches.teams, 3)
	assert.Contains(t, matches.teams, "Isiolo City FC")
	assert.Len(t, matches.venues, 1)
}

func TestRunStopsOnHashFailure(t *testing.T) {
	s, users, _ := newSeeder()
	s.hash = func(string) (string, error) { return "", fmt.Errorf("entropy exhausted") }

	_, err := s.Run(context.Background(), config.SeedConfig{
		AdminEmail:    config.DefaultAdminEmail,
		AdminPassword: config.DefaultAdminPassword,
		AdminName:     config.DefaultAdminName,
	})

	require.Error(t, err)
	assert.Empty(t, users.byEmail)
}
