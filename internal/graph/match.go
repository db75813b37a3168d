// AngelaMos | 2026
// match.go

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/isiolocityfc/backend/internal/match"
)

type matchResolver struct {
	root *Resolver
	m    *match.Match
}

func (r *matchResolver) ID() graphql.ID { return graphql.ID(r.m.ID) }
func (r *matchResolver) KickoffTime() DateTime { return newDateTime(r.m.KickoffTime) }
func (r *matchResolver) Competition() string { return r.m.Competition }
func (r *matchResolver) Season() string { return r.m.Season }
func (r *matchResolver) Status() string { return r.m.Status }
func (r *matchResolver) HomeScore() *int32 { return int32Ptr(r.m.HomeScore) }
func (r *matchResolver) AwayScore() *int32 { return int32Ptr(r.m.AwayScore) }
func (r *matchResolver) Attendance() *int32 { return int32Ptr(r.m.Attendance) }
func (r *matchResolver) MatchReport() *string { return r.m.MatchReport }
func (r *matchResolver) CreatedAt() DateTime { return newDateTime(r.m.CreatedAt) }

func (r *matchResolver) HighlightURLs() []string {
	if r.m.HighlightURLs == nil {
		return []string{}
	}
	return r.m.HighlightURLs
}

func (r *matchResolver) HomeTeam(ctx context.Context) (*teamResolver, error) {
	return r.team(ctx, r.m.HomeTeamID)
}

func (r *matchResolver) AwayTeam(ctx context.Context) (*teamResolver, error) {
	return r.team(ctx, r.m.AwayTeamID)
}

func (r *matchResolver) team(ctx context.Context, id string) (*teamResolver, error) {
	t, err := r.root.svc.Matches.Team(ctx, id)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}
	return &teamResolver{t: t}, nil
}

func (r *matchResolver) Venue(ctx context.Context) (*venueResolver, error) {
	v, err := r.root.svc.Matches.Venue(ctx, r.m.VenueID)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}
	return &venueResolver{v: v}, nil
}

type teamResolver struct {
	t *match.Team
}

func (r *teamResolver) ID() graphql.ID { return graphql.ID(r.t.ID) }
func (r *teamResolver) Name() string { return r.t.Name }
func (r *teamResolver) ShortName() string { return r.t.ShortName }
func (r *teamResolver) Logo() *string { return r.t.Logo }
func (r *teamResolver) Country() string { return r.t.Country }
func (r *teamResolver) Founded() *int32 { return int32Ptr(r.t.Founded) }
func (r *teamResolver) Stadium() *string { return r.t.Stadium }
func (r *teamResolver) Website() *string { return r.t.Website }

type venueResolver struct {
	v *match.Venue
}

func (r *venueResolver) ID() graphql.ID { return graphql.ID(r.v.ID) }
func (r *venueResolver) Name() string { return r.v.Name }
func (r *venueResolver) City() string { return r.v.City }
func (r *venueResolver) Country() string { return r.v.Country }
func (r *venueResolver) Capacity() int32 { return int32(r.v.Capacity) }
func (r *venueResolver) Address() *string { return r.v.Address }

func (r *Resolver) matches(list []match.Match) []*matchResolver {
	out := make([]*matchResolver, 0, len(list))
	for i := range list {
		out = append(out, &matchResolver{root: r, m: &list[i]})
	}
	return out
}

func (r *Resolver) Matches(ctx context.Context, args struct {
	Status *string
	Limit  *int32
}) ([]*matchResolver, error) {
	list, err := r.svc.Matches.List(ctx, args.Status, intPtr(args.Limit))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.matches(list), nil
}

func (r *Resolver) Match(
	ctx context.Context,
	args struct{ ID graphql.ID },
) (*matchResolver, error) {
	m, err := r.svc.Matches.Get(ctx, string(args.ID))
	if err != nil {
		return nil, r.lookup(ctx, err)
	}
	return &matchResolver{root: r, m: m}, nil
}

func (r *Resolver) UpcomingMatches(
	ctx context.Context,
	args struct{ Limit *int32 },
) ([]*matchResolver, error) {
	list, err := r.svc.Matches.Upcoming(ctx, intPtr(args.Limit))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.matches(list), nil
}

type createMatchInput struct {
	HomeTeamID  graphql.ID
	AwayTeamID  graphql.ID
	VenueID     graphql.ID
	KickoffTime DateTime
	Competition string
	Season      string
}

func (r *Resolver) CreateMatch(
	ctx context.Context,
	args struct{ Input createMatchInput },
) (*matchResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	in := args.Input
	m, err := r.svc.Matches.Create(ctx, match.CreateMatchInput{
		HomeTeamID:  string(in.HomeTeamID),
		AwayTeamID:  string(in.AwayTeamID),
		VenueID:     string(in.VenueID),
		KickoffTime: in.KickoffTime.Time,
		Competition: in.Competition,
		Season:      in.Season,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &matchResolver{root: r, m: m}, nil
}

func (r *Resolver) UpdateMatchStatus(ctx context.Context, args struct {
	ID     graphql.ID
	Status string
}) (*matchResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	m, err := r.svc.Matches.UpdateStatus(ctx, string(args.ID), match.UpdateStatusInput{
		Status: args.Status,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &matchResolver{root: r, m: m}, nil
}

func (r *Resolver) UpdateMatchScore(ctx context.Context, args struct {
	ID        graphql.ID
	HomeScore int32
	AwayScore int32
}) (*matchResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	m, err := r.svc.Matches.UpdateScore(ctx, string(args.ID), match.UpdateScoreInput{
		HomeScore: int(args.HomeScore),
		AwayScore: int(args.AwayScore),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &matchResolver{root: r, m: m}, nil
}
