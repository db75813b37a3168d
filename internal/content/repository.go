// AngelaMos | 2026
// repository.go

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type Repository interface {
	ListPublished(
		ctx context.Context,
		category *string,
		limit, offset int,
	) ([]Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	GetByID(ctx context.Context, id string) (*Article, error)
	IncrementViewCount(ctx context.Context, slug string) error
	Create(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	Publish(ctx context.Context, id string, at time.Time) (*Article, error)
	Delete(ctx context.Context, id string) error
}

const articleColumns = `
	id, slug, title, excerpt, content, category, status, author_id,
	featured_image_url, published_at, view_count, tags, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListPublished(
	ctx context.Context,
	category *string,
	limit, offset int,
) ([]Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = 'PUBLISHED'
		  AND ($1::text IS NULL OR category = $1)
		ORDER BY published_at DESC NULLS LAST
		LIMIT $2 OFFSET $3`

	var articles []Article
	if err := r.db.SelectContext(ctx, &articles, query, category, limit, offset); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return articles, nil
}

func (r *repository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Article, error) {
	return r.getOne(ctx, "get article by slug", "slug", slug)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Article, error) {
	return r.getOne(ctx, "get article", "id", id)
}

func (r *repository) getOne(
	ctx context.Context,
	op, column, value string,
) (*Article, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM articles WHERE %s = $1`,
		articleColumns,
		column,
	)

	var article Article
	err := r.db.GetContext(ctx, &article, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &article, nil
}

func (r *repository) IncrementViewCount(ctx context.Context, slug string) error {
	query := `UPDATE articles SET view_count = view_count + 1 WHERE slug = $1`

	if _, err := r.db.ExecContext(ctx, query, slug); err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}

	return nil
}

func (r *repository) Create(ctx context.Context, a *Article) error {
	query := `
		INSERT INTO articles (
			id, slug, title, excerpt, content, category, status, author_id,
			featured_image_url, tags
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING view_count, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		a.ID,
		a.Slug,
		a.Title,
		a.Excerpt,
		a.Content,
		a.Category,
		a.Status,
		a.AuthorID,
		a.FeaturedImageURL,
		a.Tags,
	).Scan(&a.ViewCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create article: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create article: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, a *Article) error {
	query := `
		UPDATE articles
		SET title = $2, excerpt = $3, content = $4, category = $5,
		    status = $6, featured_image_url = $7, tags = $8,
		    published_at = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &a.UpdatedAt, query,
		a.ID,
		a.Title,
		a.Excerpt,
		a.Content,
		a.Category,
		a.Status,
		a.FeaturedImageURL,
		a.Tags,
		a.PublishedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update article: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	return nil
}

func (r *repository) Publish(
	ctx context.Context,
	id string,
	at time.Time,
) (*Article, error) {
	query := `
		UPDATE articles
		SET status = 'PUBLISHED', published_at = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + articleColumns

	var article Article
	err := r.db.GetContext(ctx, &article, query, id, at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("publish article: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}

	return &article, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete article: %w", core.ErrNotFound)
	}

	return nil
}
