// AngelaMos | 2026
// content.go

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/isiolocityfc/backend/internal/content"
)

type articleResolver struct {
	root *Resolver
	a    *content.Article
}

func (r *articleResolver) ID() graphql.ID { return graphql.ID(r.a.ID) }
func (r *articleResolver) Title() string { return r.a.Title }
func (r *articleResolver) Slug() string { return r.a.Slug }
func (r *articleResolver) Excerpt() string { return r.a.Excerpt }
func (r *articleResolver) Content() string { return r.a.Content }
func (r *articleResolver) Category() string { return r.a.Category }
func (r *articleResolver) Status() string { return r.a.Status }
func (r *articleResolver) FeaturedImageURL() *string { return r.a.FeaturedImageURL }
func (r *articleResolver) PublishedAt() *DateTime { return optionalDateTime(r.a.PublishedAt) }
func (r *articleResolver) ViewCount() int32 { return int32(r.a.ViewCount) }
func (r *articleResolver) CreatedAt() DateTime { return newDateTime(r.a.CreatedAt) }
func (r *articleResolver) UpdatedAt() DateTime { return newDateTime(r.a.UpdatedAt) }

func (r *articleResolver) Tags() []string {
	if r.a.Tags == nil {
		return []string{}
	}
	return r.a.Tags
}

func (r *articleResolver) Author(ctx context.Context) (*userResolver, error) {
	return r.root.userByID(ctx, r.a.AuthorID)
}

func (r *Resolver) articles(list []content.Article) []*articleResolver {
	out := make([]*articleResolver, 0, len(list))
	for i := range list {
		out = append(out, &articleResolver{root: r, a: &list[i]})
	}
	return out
}

func (r *Resolver) Articles(ctx context.Context, args struct {
	Category *string
	Limit    *int32
	Offset   *int32
}) ([]*articleResolver, error) {
	list, err := r.svc.Content.List(ctx, content.ListParams{
		Category: args.Category,
		Limit:    intPtr(args.Limit),
		Offset:   intPtr(args.Offset),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.articles(list), nil
}

// Article fetches by slug and counts the read.
func (r *Resolver) Article(
	ctx context.Context,
	args struct{ Slug string },
) (*articleResolver, error) {
	a, err := r.svc.Content.GetBySlug(ctx, args.Slug)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &articleResolver{root: r, a: a}, nil
}

func (r *Resolver) LatestNews(
	ctx context.Context,
	args struct{ Limit *int32 },
) ([]*articleResolver, error) {
	list, err := r.svc.Content.Latest(ctx, intPtr(args.Limit))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.articles(list), nil
}

type createArticleInput struct {
	Title            string
	Excerpt          string
	Content          string
	Category         string
	FeaturedImageURL *string
	Tags             *[]string
}

type updateArticleInput struct {
	Title            *string
	Excerpt          *string
	Content          *string
	Category         *string
	FeaturedImageURL *string
	Tags             *[]string
	Status           *string
}

func (r *Resolver) CreateArticle(
	ctx context.Context,
	args struct{ Input createArticleInput },
) (*articleResolver, error) {
	id, err := r.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	in := content.CreateArticleInput{
		Title:            args.Input.Title,
		Excerpt:          args.Input.Excerpt,
		Content:          args.Input.Content,
		Category:         args.Input.Category,
		FeaturedImageURL: args.Input.FeaturedImageURL,
	}
	if args.Input.Tags != nil {
		in.Tags = *args.Input.Tags
	}

	a, err := r.svc.Content.Create(ctx, id.ID, in)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &articleResolver{root: r, a: a}, nil
}

func (r *Resolver) UpdateArticle(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateArticleInput
}) (*articleResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	a, err := r.svc.Content.Update(ctx, string(args.ID), content.UpdateArticleInput{
		Title:            args.Input.Title,
		Excerpt:          args.Input.Excerpt,
		Content:          args.Input.Content,
		Category:         args.Input.Category,
		FeaturedImageURL: args.Input.FeaturedImageURL,
		Tags:             args.Input.Tags,
		Status:           args.Input.Status,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &articleResolver{root: r, a: a}, nil
}

func (r *Resolver) PublishArticle(
	ctx context.Context,
	args struct{ ID graphql.ID },
) (*articleResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	a, err := r.svc.Content.Publish(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &articleResolver{root: r, a: a}, nil
}

func (r *Resolver) DeleteArticle(
	ctx context.Context,
	args struct{ ID graphql.ID },
) (bool, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return false, err
	}

	if err := r.svc.Content.Delete(ctx, string(args.ID)); err != nil {
		return false, r.fail(ctx, err)
	}
	return true, nil
}
