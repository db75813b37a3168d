// AngelaMos | 2026
// sponsor.go

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/isiolocityfc/backend/internal/sponsor"
)

type sponsorResolver struct {
	s *sponsor.Sponsor
}

func (r *sponsorResolver) ID() graphql.ID { return graphql.ID(r.s.ID) }
func (r *sponsorResolver) Name() string { return r.s.Name }
func (r *sponsorResolver) Logo() string { return r.s.Logo }
func (r *sponsorResolver) Website() *string { return r.s.Website }
func (r *sponsorResolver) Tier() string { return r.s.Tier }
func (r *sponsorResolver) Description() *string { return r.s.Description }
func (r *sponsorResolver) StartDate() DateTime { return newDateTime(r.s.StartDate) }
func (r *sponsorResolver) EndDate() *DateTime { return optionalDateTime(r.s.EndDate) }
func (r *sponsorResolver) IsActive() bool { return r.s.IsActive }
func (r *sponsorResolver) DisplayOrder() int32 { return int32(r.s.DisplayOrder) }

func (r *Resolver) Sponsors(ctx context.Context, args struct {
	Tier     *string
	IsActive *bool
}) ([]*sponsorResolver, error) {
	list, err := r.svc.Sponsors.List(ctx, sponsor.ListParams{
		Tier:     args.Tier,
		IsActive: args.IsActive,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*sponsorResolver, 0, len(list))
	for i := range list {
		out = append(out, &sponsorResolver{s: &list[i]})
	}
	return out, nil
}

func (r *Resolver) Sponsor(
	ctx context.Context,
	args struct{ ID graphql.ID },
) (*sponsorResolver, error) {
	s, err := r.svc.Sponsors.Get(ctx, string(args.ID))
	if err != nil {
		return nil, r.lookup(ctx, err)
	}
	return &sponsorResolver{s: s}, nil
}

type createSponsorInput struct {
	Name        string
	Logo        string
	Website     *string
	Tier        string
	Description *string
	StartDate   DateTime
	EndDate     *DateTime
}

type updateSponsorInput struct {
	Name         *string
	Logo         *string
	Website      *string
	Tier         *string
	Description  *string
	StartDate    *DateTime
	EndDate      *DateTime
	IsActive     *bool
	DisplayOrder *int32
}

func (r *Resolver) CreateSponsor(
	ctx context.Context,
	args struct{ Input createSponsorInput },
) (*sponsorResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	in := args.Input
	s, err := r.svc.Sponsors.Create(ctx, sponsor.CreateSponsorInput{
		Name:        in.Name,
		Logo:        in.Logo,
		Website:     in.Website,
		Tier:        in.Tier,
		Description: in.Description,
		StartDate:   in.StartDate.Time,
		EndDate:     timePtr(in.EndDate),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &sponsorResolver{s: s}, nil
}

func (r *Resolver) UpdateSponsor(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateSponsorInput
}) (*sponsorResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	in := args.Input
	s, err := r.svc.Sponsors.Update(ctx, string(args.ID), sponsor.UpdateSponsorInput{
		Name:         in.Name,
		Logo:         in.Logo,
		Website:      in.Website,
		Tier:         in.Tier,
		Description:  in.Description,
		StartDate:    timePtr(in.StartDate),
		EndDate:      timePtr(in.EndDate),
		IsActive:     in.IsActive,
		DisplayOrder: intPtr(in.DisplayOrder),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &sponsorResolver{s: s}, nil
}

func (r *Resolver) SubscribeNewsletter(
	ctx context.Context,
	args struct{ Email string },
) (bool, error) {
	if err := r.svc.Sponsors.SubscribeNewsletter(ctx, args.Email); err != nil {
		return false, r.fail(ctx, err)
	}
	return true, nil
}
