// AngelaMos | 2026
// entity.go

package sponsor

import (
	"time"
)

type Sponsor struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Logo         string     `db:"logo"`
	Website      *string    `db:"website"`
	Tier         string     `db:"tier"`
	Description  *string    `db:"description"`
	StartDate    time.Time  `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	IsActive     bool       `db:"is_active"`
	DisplayOrder int        `db:"display_order"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type Subscriber struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
