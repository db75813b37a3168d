// AngelaMos | 2026
// dto.go

package player

import (
	"time"
)

type CreatePlayerInput struct {
	FirstName     string    `validate:"required,max=100"`
	LastName      string    `validate:"required,max=100"`
	DisplayName   string    `validate:"required,max=100"`
	Position      string    `validate:"required,oneof=GOALKEEPER DEFENDER MIDFIELDER FORWARD"`
	JerseyNumber  int       `validate:"gte=1,lte=99"`
	Nationality   string    `validate:"required,max=100"`
	DateOfBirth   time.Time `validate:"required"`
	Height        *float64  `validate:"omitempty,gt=0"`
	Weight        *float64  `validate:"omitempty,gt=0"`
	PreferredFoot *string   `validate:"omitempty,max=20"`
	Bio           *string
	JoinedDate    time.Time `validate:"required"`
	PhotoURLs     []string  `validate:"omitempty,dive,url"`
}

// UpdatePlayerInput carries the fields an administrator may change. Nil
// fields are left untouched.
type UpdatePlayerInput struct {
	FirstName       *string    `validate:"omitempty,min=1,max=100"`
	LastName        *string    `validate:"omitempty,min=1,max=100"`
	DisplayName     *string    `validate:"omitempty,min=1,max=100"`
	Position        *string    `validate:"omitempty,oneof=GOALKEEPER DEFENDER MIDFIELDER FORWARD"`
	JerseyNumber    *int       `validate:"omitempty,gte=1,lte=99"`
	Nationality     *string    `validate:"omitempty,min=1,max=100"`
	DateOfBirth     *time.Time
	Height          *float64 `validate:"omitempty,gt=0"`
	Weight          *float64 `validate:"omitempty,gt=0"`
	PreferredFoot   *string  `validate:"omitempty,max=20"`
	Status          *string  `validate:"omitempty,oneof=ACTIVE INJURED SUSPENDED ON_LOAN RETIRED"`
	Bio             *string
	JoinedDate      *time.Time
	ContractEndDate *time.Time
	PhotoURLs       *[]string `validate:"omitempty,dive,url"`
}

type BulkResult struct {
	Success bool
	Created int
	Failed  int
	Errors  []string
	Players []Player
}

type ListParams struct {
	Position *string
	Status   *string
}
