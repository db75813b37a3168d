// AngelaMos | 2026
// repository.go

package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context, status *string, limit int) ([]Match, error)
	Upcoming(ctx context.Context, from time.Time, limit int) ([]Match, error)
	GetByID(ctx context.Context, id string) (*Match, error)
	Create(ctx context.Context, m *Match) error
	UpdateStatus(ctx context.Context, id, status string) (*Match, error)
	UpdateScore(ctx context.Context, id string, home, away int) (*Match, error)
	GetTeam(ctx context.Context, id string) (*Team, error)
	GetVenue(ctx context.Context, id string) (*Venue, error)
	UpsertTeam(ctx context.Context, t *Team) error
	UpsertVenue(ctx context.Context, v *Venue) error
}

const matchColumns = `
	id, home_team_id, away_team_id, venue_id, kickoff_time, competition,
	season, status, home_score, away_score, attendance, match_report,
	highlight_urls, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	status *string,
	limit int,
) ([]Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY kickoff_time DESC
		LIMIT $2`

	var matches []Match
	if err := r.db.SelectContext(ctx, &matches, query, status, limit); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

func (r *repository) Upcoming(
	ctx context.Context,
	from time.Time,
	limit int,
) ([]Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE kickoff_time >= $1
		  AND status IN ('SCHEDULED', 'LIVE')
		ORDER BY kickoff_time ASC
		LIMIT $2`

	var matches []Match
	if err := r.db.SelectContext(ctx, &matches, query, from, limit); err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}

	return matches, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	var m Match
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get match: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}

	return &m, nil
}

func (r *repository) Create(ctx context.Context, m *Match) error {
	query := `
		INSERT INTO matches (
			id, home_team_id, away_team_id, venue_id, kickoff_time,
			competition, season, status, highlight_urls
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		m.ID,
		m.HomeTeamID,
		m.AwayTeamID,
		m.VenueID,
		m.KickoffTime,
		m.Competition,
		m.Season,
		m.Status,
		m.HighlightURLs,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create match: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create match: %w", err)
	}

	return nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) (*Match, error) {
	query := `
		UPDATE matches
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + matchColumns

	return r.updateOne(ctx, "update match status", query, id, status)
}

func (r *repository) UpdateScore(
	ctx context.Context,
	id string,
	home, away int,
) (*Match, error) {
	query := `
		UPDATE matches
		SET home_score = $2, away_score = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + matchColumns

	return r.updateOne(ctx, "update match score", query, id, home, away)
}

func (r *repository) updateOne(
	ctx context.Context,
	op, query string,
	args ...any,
) (*Match, error) {
	var m Match
	err := r.db.GetContext(ctx, &m, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &m, nil
}

func (r *repository) GetTeam(ctx context.Context, id string) (*Team, error) {
	query := `
		SELECT id, name, short_name, logo, country, founded, stadium, website
		FROM teams
		WHERE id = $1`

	var t Team
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get team: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}

	return &t, nil
}

func (r *repository) GetVenue(ctx context.Context, id string) (*Venue, error) {
	query := `
		SELECT id, name, city, country, capacity, address
		FROM venues
		WHERE id = $1`

	var v Venue
	err := r.db.GetContext(ctx, &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get venue: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	return &v, nil
}

// UpsertTeam inserts t keyed by name. An existing row keeps its id, which is
// written back into t.
func (r *repository) UpsertTeam(ctx context.Context, t *Team) error {
	query := `
		INSERT INTO teams (id, name, short_name, country, founded, stadium)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	err := r.db.GetContext(ctx, &t.ID, query,
		t.ID,
		t.Name,
		t.ShortName,
		t.Country,
		t.Founded,
		t.Stadium,
	)
	if err != nil {
		return fmt.Errorf("upsert team: %w", err)
	}

	return nil
}

func (r *repository) UpsertVenue(ctx context.Context, v *Venue) error {
	query := `
		INSERT INTO venues (id, name, city, country, capacity, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	err := r.db.GetContext(ctx, &v.ID, query,
		v.ID,
		v.Name,
		v.City,
		v.Country,
		v.Capacity,
		v.Address,
	)
	if err != nil {
		return fmt.Errorf("upsert venue: %w", err)
	}

	return nil
}
