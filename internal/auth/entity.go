// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// Session is a persisted login. Refresh rewrites the same row; the API
// never deletes sessions except on explicit logout.
type Session struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	Token        string    `db:"token"`
	RefreshToken string    `db:"refresh_token"`
	UserAgent    *string   `db:"user_agent"`
	IPAddress    *string   `db:"ip_address"`
	ExpiresAt    time.Time `db:"expires_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
