// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/isiolocityfc/backend/internal/core"
)

// ClubTotals is a snapshot of row counts across the club's content and
// commerce tables.
type ClubTotals struct {
	Users             int `db:"users" json:"users"`
	ActiveSessions    int `db:"active_sessions" json:"active_sessions"`
	PublishedArticles int `db:"published_articles" json:"published_articles"`
	ActivePlayers     int `db:"active_players" json:"active_players"`
	UpcomingMatches   int `db:"upcoming_matches" json:"upcoming_matches"`
	ActivePrograms    int `db:"active_programs" json:"active_programs"`
	PendingOrders     int `db:"pending_orders" json:"pending_orders"`
	Subscribers       int `db:"newsletter_subscribers" json:"newsletter_subscribers"`
}

type Repository interface {
	Totals(ctx context.Context) (*ClubTotals, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Totals(ctx context.Context) (*ClubTotals, error) {
	query := `
		SELECT
			(SELECT count(*) FROM users) AS users,
			(SELECT count(*) FROM sessions WHERE expires_at > NOW()) AS active_sessions,
			(SELECT count(*) FROM articles WHERE status = 'PUBLISHED') AS published_articles,
			(SELECT count(*) FROM players WHERE status = 'ACTIVE') AS active_players,
			(SELECT count(*) FROM matches
				WHERE status IN ('SCHEDULED', 'LIVE') AND kickoff_time >= NOW()) AS upcoming_matches,
			(SELECT count(*) FROM foundation_programs WHERE is_active) AS active_programs,
			(SELECT count(*) FROM orders WHERE status = 'PENDING') AS pending_orders,
			(SELECT count(*) FROM newsletter_subscribers WHERE is_active) AS newsletter_subscribers`

	var totals ClubTotals
	if err := r.db.GetContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("club totals: %w", err)
	}
	return &totals, nil
}
