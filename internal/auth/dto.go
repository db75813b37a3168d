// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,max=128"`
}

type RegisterRequest struct {
	Email    string  `validate:"required,email,max=255"`
	Password string  `validate:"required,min=6,max=128"`
	Name     string  `validate:"required,min=1,max=100"`
	Phone    *string `validate:"omitempty,max=32"`
}

// ClientInfo describes the device a session was opened from.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

type AuthResult struct {
	Token        string
	RefreshToken string
	User         *UserInfo
}

type SessionInfo struct {
	ID        string
	UserAgent *string
	IPAddress *string
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}
