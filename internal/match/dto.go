// AngelaMos | 2026
// dto.go

package match

import (
	"time"
)

const (
	DefaultListLimit     = 20
	DefaultUpcomingLimit = 5
	MaxListLimit         = 100
)

type CreateMatchInput struct {
	HomeTeamID  string    `validate:"required,nefield=AwayTeamID"`
	AwayTeamID  string    `validate:"required"`
	VenueID     string    `validate:"required"`
	KickoffTime time.Time `validate:"required"`
	Competition string    `validate:"required,max=100"`
	Season      string    `validate:"required,max=20"`
}

type UpdateStatusInput struct {
	Status string `validate:"required,oneof=SCHEDULED LIVE HALFTIME FULLTIME POSTPONED CANCELLED"`
}

type UpdateScoreInput struct {
	HomeScore int `validate:"gte=0"`
	AwayScore int `validate:"gte=0"`
}

// TeamInput and VenueInput are used when seeding reference data.
type TeamInput struct {
	Name      string
	ShortName string
	Country   string
	Founded   *int
	Stadium   *string
}

type VenueInput struct {
	Name     string
	City     string
	Country  string
	Capacity int
	Address  *string
}
