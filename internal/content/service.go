// AngelaMos | 2026
// service.go

package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	policy   *bluemonday.Policy
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		policy:   bluemonday.UGCPolicy(),
		now:      time.Now,
	}
}

// List returns published articles, newest first.
func (s *Service) List(ctx context.Context, p ListParams) ([]Article, error) {
	limit := clamp(p.Limit, DefaultListLimit)
	offset := 0
	if p.Offset != nil && *p.Offset > 0 {
		offset = *p.Offset
	}

	return s.repo.ListPublished(ctx, p.Category, limit, offset)
}

func (s *Service) Latest(ctx context.Context, limit *int) ([]Article, error) {
	return s.repo.ListPublished(ctx, nil, clamp(limit, DefaultLatestLimit), 0)
}

// GetBySlug returns the article as stored, then counts the view. Every call
// counts; the returned view count does not include the current read.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	article, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Article")
		}
		return nil, err
	}

	if err := s.repo.IncrementViewCount(ctx, slug); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Article")
	}
	return article, err
}

func (s *Service) Create(
	ctx context.Context,
	authorID string,
	in CreateArticleInput,
) (*Article, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	article := &Article{
		ID:               ids.For("article"),
		Slug:             core.Slugify(in.Title),
		Title:            in.Title,
		Excerpt:          in.Excerpt,
		Content:          s.policy.Sanitize(in.Content),
		Category:         in.Category,
		Status:           StatusDraft,
		AuthorID:         authorID,
		FeaturedImageURL: in.FeaturedImageURL,
		Tags:             tags,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.BadInputError(
				fmt.Sprintf("An article with slug %q already exists", article.Slug),
			)
		}
		return nil, err
	}

	return article, nil
}

// Update applies the non-nil fields of in. The slug is fixed at creation.
func (s *Service) Update(
	ctx context.Context,
	id string,
	in UpdateArticleInput,
) (*Article, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		article.Title = *in.Title
	}
	if in.Excerpt != nil {
		article.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		article.Content = s.policy.Sanitize(*in.Content)
	}
	if in.Category != nil {
		article.Category = *in.Category
	}
	if in.FeaturedImageURL != nil {
		article.FeaturedImageURL = in.FeaturedImageURL
	}
	if in.Tags != nil {
		article.Tags = *in.Tags
	}
	if in.Status != nil {
		article.Status = *in.Status
		if article.Status == StatusPublished && article.PublishedAt == nil {
			now := s.now()
			article.PublishedAt = &now
		}
	}

	if err := s.repo.Update(ctx, article); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Article")
		}
		return nil, err
	}

	return article, nil
}

func (s *Service) Publish(ctx context.Context, id string) (*Article, error) {
	article, err := s.repo.Publish(ctx, id, s.now())
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Article")
	}
	return article, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError("Article")
	}
	return err
}

func clamp(limit *int, def int) int {
	if limit == nil || *limit <= 0 {
		return def
	}
	return min(*limit, MaxListLimit)
}
