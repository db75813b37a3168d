// AngelaMos | 2026
// entity.go

package match

import (
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type Match struct {
	ID            string           `db:"id"`
	HomeTeamID    string           `db:"home_team_id"`
	AwayTeamID    string           `db:"away_team_id"`
	VenueID       string           `db:"venue_id"`
	KickoffTime   time.Time        `db:"kickoff_time"`
	Competition   string           `db:"competition"`
	Season        string           `db:"season"`
	Status        string           `db:"status"`
	HomeScore     *int             `db:"home_score"`
	AwayScore     *int             `db:"away_score"`
	Attendance    *int             `db:"attendance"`
	MatchReport   *string          `db:"match_report"`
	HighlightURLs core.StringArray `db:"highlight_urls"`
	CreatedAt     time.Time        `db:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at"`
}

type Team struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	ShortName string  `db:"short_name"`
	Logo      *string `db:"logo"`
	Country   string  `db:"country"`
	Founded   *int    `db:"founded"`
	Stadium   *string `db:"stadium"`
	Website   *string `db:"website"`
}

type Venue struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	City     string  `db:"city"`
	Country  string  `db:"country"`
	Capacity int     `db:"capacity"`
	Address  *string `db:"address"`
}

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusHalftime  = "HALFTIME"
	StatusFulltime  = "FULLTIME"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)
