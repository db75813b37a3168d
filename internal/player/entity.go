// AngelaMos | 2026
// entity.go

package player

import (
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type Player struct {
	ID              string           `db:"id"`
	FirstName       string           `db:"first_name"`
	LastName        string           `db:"last_name"`
	DisplayName     string           `db:"display_name"`
	Position        string           `db:"position"`
	JerseyNumber    int              `db:"jersey_number"`
	Nationality     string           `db:"nationality"`
	DateOfBirth     time.Time        `db:"date_of_birth"`
	Height          *float64         `db:"height"`
	Weight          *float64         `db:"weight"`
	PreferredFoot   *string          `db:"preferred_foot"`
	Status          string           `db:"status"`
	Bio             *string          `db:"bio"`
	JoinedDate      time.Time        `db:"joined_date"`
	ContractEndDate *time.Time       `db:"contract_end_date"`
	PhotoURLs       core.StringArray `db:"photo_urls"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

type Stats struct {
	ID            string   `db:"id"`
	PlayerID      string   `db:"player_id"`
	Season        string   `db:"season"`
	Appearances   int      `db:"appearances"`
	Goals         int      `db:"goals"`
	Assists       int      `db:"assists"`
	YellowCards   int      `db:"yellow_cards"`
	RedCards      int      `db:"red_cards"`
	MinutesPlayed int      `db:"minutes_played"`
	PassAccuracy  *float64 `db:"pass_accuracy"`
	ShotsOnTarget int      `db:"shots_on_target"`
	Tackles       int      `db:"tackles"`
	Interceptions int      `db:"interceptions"`
	Saves         int      `db:"saves"`
	CleanSheets   int      `db:"clean_sheets"`
}

type Achievement struct {
	ID          string    `db:"id"`
	PlayerID    string    `db:"player_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	AwardedAt   time.Time `db:"awarded_at"`
	Season      *string   `db:"season"`
}

const (
	PositionGoalkeeper = "GOALKEEPER"
	PositionDefender   = "DEFENDER"
	PositionMidfielder = "MIDFIELDER"
	PositionForward    = "FORWARD"
)

const (
	StatusActive    = "ACTIVE"
	StatusInjured   = "INJURED"
	StatusSuspended = "SUSPENDED"
	StatusOnLoan    = "ON_LOAN"
	StatusRetired   = "RETIRED"
)
