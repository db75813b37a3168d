// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID             string     `db:"id"`
	Email          string     `db:"email"`
	PasswordHash   string     `db:"password_hash"`
	Name           string     `db:"name"`
	Phone          *string    `db:"phone"`
	Avatar         *string    `db:"avatar"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	Nationality    *string    `db:"nationality"`
	Role           string     `db:"role"`
	MembershipTier string     `db:"membership_tier"`
	IsActive       bool       `db:"is_active"`
	EmailVerified  bool       `db:"email_verified"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
	RoleFan    = "FAN"
	RoleCoach  = "COACH"
	RolePlayer = "PLAYER"
)

const (
	TierFree     = "FREE"
	TierBronze   = "BRONZE"
	TierSilver   = "SILVER"
	TierGold     = "GOLD"
	TierPlatinum = "PLATINUM"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMember, RoleFan, RoleCoach, RolePlayer:
		return true
	}
	return false
}

func ValidTier(tier string) bool {
	switch tier {
	case TierFree, TierBronze, TierSilver, TierGold, TierPlatinum:
		return true
	}
	return false
}
