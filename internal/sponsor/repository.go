// AngelaMos | 2026
// repository.go

package sponsor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isiolocityfc/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context, p ListParams) ([]Sponsor, error)
	GetByID(ctx context.Context, id string) (*Sponsor, error)
	Create(ctx context.Context, s *Sponsor) error
	Update(ctx context.Context, s *Sponsor) error
	UpsertSubscriber(ctx context.Context, id, email string) error
}

const sponsorColumns = `
	id, name, logo, website, tier, description, start_date, end_date,
	is_active, display_order, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, p ListParams) ([]Sponsor, error) {
	query := `
		SELECT ` + sponsorColumns + `
		FROM sponsors
		WHERE ($1::text IS NULL OR tier = $1)
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY display_order ASC`

	var sponsors []Sponsor
	if err := r.db.SelectContext(ctx, &sponsors, query, p.Tier, p.IsActive); err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}

	return sponsors, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Sponsor, error) {
	query := `SELECT ` + sponsorColumns + ` FROM sponsors WHERE id = $1`

	var s Sponsor
	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get sponsor: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get sponsor: %w", err)
	}

	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Sponsor) error {
	query := `
		INSERT INTO sponsors (
			id, name, logo, website, tier, description, start_date, end_date,
			is_active, display_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		s.ID,
		s.Name,
		s.Logo,
		s.Website,
		s.Tier,
		s.Description,
		s.StartDate,
		s.EndDate,
		s.IsActive,
		s.DisplayOrder,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create sponsor: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, s *Sponsor) error {
	query := `
		UPDATE sponsors
		SET name = $2, logo = $3, website = $4, tier = $5, description = $6,
		    start_date = $7, end_date = $8, is_active = $9,
		    display_order = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &s.UpdatedAt, query,
		s.ID,
		s.Name,
		s.Logo,
		s.Website,
		s.Tier,
		s.Description,
		s.StartDate,
		s.EndDate,
		s.IsActive,
		s.DisplayOrder,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update sponsor: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update sponsor: %w", err)
	}

	return nil
}

// UpsertSubscriber adds email to the newsletter list, re-activating it if
// it unsubscribed earlier. id is only used for new rows.
func (r *repository) UpsertSubscriber(ctx context.Context, id, email string) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email)
		VALUES ($1, $2)
		ON CONFLICT (email)
		DO UPDATE SET is_active = TRUE, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, id, email); err != nil {
		return fmt.Errorf("upsert subscriber: %w", err)
	}

	return nil
}
