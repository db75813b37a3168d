// AngelaMos | 2026
// dto.go

package foundation

import (
	"time"
)

type ListParams struct {
	Type     *string
	IsActive *bool
}

type CreateProgramInput struct {
	Name        string     `validate:"required,max=200"`
	Description string     `validate:"required"`
	Type        string     `validate:"required,oneof=YOUTH_ACADEMY TRAINING_CAMP CLINIC SCHOLARSHIP COMMUNITY_OUTREACH COACHING_COURSE"`
	StartDate   time.Time  `validate:"required"`
	EndDate     *time.Time
	Location    string     `validate:"required,max=200"`
	Capacity    int        `validate:"gt=0"`
	AgeGroup    *string    `validate:"omitempty,max=50"`
	Price       *float64   `validate:"omitempty,gte=0"`
}

type EnrollInput struct {
	ProgramID     string `validate:"required"`
	StudentName   string `validate:"required,max=200"`
	StudentAge    int    `validate:"gt=0,lt=100"`
	GuardianName  string `validate:"required,max=200"`
	GuardianEmail string `validate:"required,email"`
	GuardianPhone string `validate:"required,max=30"`
}
