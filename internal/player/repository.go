// AngelaMos | 2026
// repository.go

package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isiolocityfc/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context, position *string, status string) ([]Player, error)
	GetByID(ctx context.Context, id string) (*Player, error)
	FindActiveByJersey(ctx context.Context, jersey int) (*Player, error)
	Create(ctx context.Context, p *Player) error
	Update(ctx context.Context, p *Player) error
	Delete(ctx context.Context, id string) error
	LatestStats(ctx context.Context, playerID string) (*Stats, error)
	Achievements(ctx context.Context, playerID string) ([]Achievement, error)
}

const playerColumns = `
	id, first_name, last_name, display_name, position, jersey_number,
	nationality, date_of_birth, height, weight, preferred_foot, status, bio,
	joined_date, contract_end_date, photo_urls, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	position *string,
	status string,
) ([]Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE status = $1
		  AND ($2::text IS NULL OR position = $2)
		ORDER BY jersey_number ASC`

	var players []Player
	if err := r.db.SelectContext(ctx, &players, query, status, position); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	var p Player
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get player: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}

	return &p, nil
}

// FindActiveByJersey returns any non-retired player wearing jersey, or
// ErrNotFound.
func (r *repository) FindActiveByJersey(
	ctx context.Context,
	jersey int,
) (*Player, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE jersey_number = $1 AND status <> 'RETIRED'
		LIMIT 1`

	var p Player
	err := r.db.GetContext(ctx, &p, query, jersey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find player by jersey: %w", err)
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Player) error {
	query := `
		INSERT INTO players (
			id, first_name, last_name, display_name, position, jersey_number,
			nationality, date_of_birth, height, weight, preferred_foot, status,
			bio, joined_date, contract_end_date, photo_urls
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID,
		p.FirstName,
		p.LastName,
		p.DisplayName,
		p.Position,
		p.JerseyNumber,
		p.Nationality,
		p.DateOfBirth,
		p.Height,
		p.Weight,
		p.PreferredFoot,
		p.Status,
		p.Bio,
		p.JoinedDate,
		p.ContractEndDate,
		p.PhotoURLs,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, p *Player) error {
	query := `
		UPDATE players
		SET first_name = $2, last_name = $3, display_name = $4, position = $5,
		    jersey_number = $6, nationality = $7, date_of_birth = $8,
		    height = $9, weight = $10, preferred_foot = $11, status = $12,
		    bio = $13, joined_date = $14, contract_end_date = $15,
		    photo_urls = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID,
		p.FirstName,
		p.LastName,
		p.DisplayName,
		p.Position,
		p.JerseyNumber,
		p.Nationality,
		p.DateOfBirth,
		p.Height,
		p.Weight,
		p.PreferredFoot,
		p.Status,
		p.Bio,
		p.JoinedDate,
		p.ContractEndDate,
		p.PhotoURLs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update player: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete player: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) LatestStats(
	ctx context.Context,
	playerID string,
) (*Stats, error) {
	query := `
		SELECT id, player_id, season, appearances, goals, assists,
		       yellow_cards, red_cards, minutes_played, pass_accuracy,
		       shots_on_target, tackles, interceptions, saves, clean_sheets
		FROM player_stats
		WHERE player_id = $1
		ORDER BY season DESC
		LIMIT 1`

	var s Stats
	err := r.db.GetContext(ctx, &s, query, playerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get player stats: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get player stats: %w", err)
	}

	return &s, nil
}

func (r *repository) Achievements(
	ctx context.Context,
	playerID string,
) ([]Achievement, error) {
	query := `
		SELECT id, player_id, title, description, awarded_at, season
		FROM achievements
		WHERE player_id = $1
		ORDER BY awarded_at DESC`

	achievements := []Achievement{}
	if err := r.db.SelectContext(ctx, &achievements, query, playerID); err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	return achievements, nil
}
