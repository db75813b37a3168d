// AngelaMos | 2026
// dto.go

package sponsor

import (
	"time"
)

type ListParams struct {
	Tier     *string
	IsActive *bool
}

type CreateSponsorInput struct {
	Name        string     `validate:"required,max=200"`
	Logo        string     `validate:"required,url"`
	Website     *string    `validate:"omitempty,url"`
	Tier        string     `validate:"required,oneof=TITLE PLATINUM GOLD SILVER BRONZE PARTNER"`
	Description *string    `validate:"omitempty,max=2000"`
	StartDate   time.Time  `validate:"required"`
	EndDate     *time.Time
}

// UpdateSponsorInput lists the fields an administrator may change. Nil
// fields keep their stored value.
type UpdateSponsorInput struct {
	Name         *string `validate:"omitempty,min=1,max=200"`
	Logo         *string `validate:"omitempty,url"`
	Website      *string `validate:"omitempty,url"`
	Tier         *string `validate:"omitempty,oneof=TITLE PLATINUM GOLD SILVER BRONZE PARTNER"`
	Description  *string `validate:"omitempty,max=2000"`
	StartDate    *time.Time
	EndDate      *time.Time
	IsActive     *bool
	DisplayOrder *int `validate:"omitempty,gte=0"`
}

type SubscribeInput struct {
	Email string `validate:"required,email,max=254"`
}
