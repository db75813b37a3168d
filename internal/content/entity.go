// AngelaMos | 2026
// entity.go

package content

import (
	"time"

	"github.com/isiolocityfc/backend/internal/core"
)

type Article struct {
	ID               string           `db:"id"`
	Slug             string           `db:"slug"`
	Title            string           `db:"title"`
	Excerpt          string           `db:"excerpt"`
	Content          string           `db:"content"`
	Category         string           `db:"category"`
	Status           string           `db:"status"`
	AuthorID         string           `db:"author_id"`
	FeaturedImageURL *string          `db:"featured_image_url"`
	PublishedAt      *time.Time       `db:"published_at"`
	ViewCount        int              `db:"view_count"`
	Tags             core.StringArray `db:"tags"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)
