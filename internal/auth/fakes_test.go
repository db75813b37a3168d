// AngelaMos | 2026
// fakes_test.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	creates  int
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]*Session{}}
}

func (m *memSessions) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.sessions {
		if existing.RefreshToken == s.RefreshToken {
			return fmt.Errorf("create session: %w", core.ErrDuplicateKey)
		}
	}
	now := time.Now()
	s.CreatedAt, s.UpdatedAt = now, now
	cp := *s
	m.sessions[s.ID] = &cp
	m.creates++
	return nil
}

func (m *memSessions) FindByRefreshToken(
	_ context.Context,
	refreshToken string,
) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if s.RefreshToken == refreshToken {
			cp := *s
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("find session: %w", core.ErrNotFound)
}

func (m *memSessions) Rotate(
	_ context.Context,
	id, token, refreshToken string,
	expiresAt time.Time,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("rotate session: %w", core.ErrNotFound)
	}
	s.Token, s.RefreshToken, s.ExpiresAt = token, refreshToken, expiresAt
	s.UpdatedAt = time.Now()
	return nil
}

func (m *memSessions) DeleteByRefreshToken(
	_ context.Context,
	refreshToken string,
) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.RefreshToken == refreshToken {
			delete(m.sessions, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memSessions) ListForUser(
	_ context.Context,
	userID string,
) ([]Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memSessions) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

type memUsers struct {
	mu      sync.Mutex
	byID    map[string]*UserInfo
	creates int
	rehash  map[string]string
}

func newMemUsers() *memUsers {
	return &memUsers{
		byID:   map[string]*UserInfo{},
		rehash: map[string]string{},
	}
}

func (m *memUsers) add(u *UserInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[u.ID] = u
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.byID {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (m *memUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memUsers) Create(_ context.Context, nu NewUser) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := &UserInfo{
		ID:           fmt.Sprintf("icfc_user_%012d", len(m.byID)+1),
		Email:        strings.ToLower(nu.Email),
		Name:         nu.Name,
		PasswordHash: nu.PasswordHash,
		Role:         "FAN",
		Tier:         "FREE",
		IsActive:     true,
	}
	m.byID[u.ID] = u
	m.creates++
	cp := *u
	return &cp, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, userID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[userID]
	if !ok {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}
	u.PasswordHash = hash
	m.rehash[userID] = hash
	return nil
}
