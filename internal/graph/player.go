// AngelaMos | 2026
// player.go

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/isiolocityfc/backend/internal/player"
)

type playerResolver struct {
	root *Resolver
	p    *player.Player
}

func (r *playerResolver) ID() graphql.ID { return graphql.ID(r.p.ID) }
func (r *playerResolver) FirstName() string { return r.p.FirstName }
func (r *playerResolver) LastName() string { return r.p.LastName }
func (r *playerResolver) DisplayName() string { return r.p.DisplayName }
func (r *playerResolver) Position() string { return r.p.Position }
func (r *playerResolver) JerseyNumber() int32 { return int32(r.p.JerseyNumber) }
func (r *playerResolver) Nationality() string { return r.p.Nationality }
func (r *playerResolver) DateOfBirth() DateTime { return newDateTime(r.p.DateOfBirth) }
func (r *playerResolver) Height() *float64 { return r.p.Height }
func (r *playerResolver) Weight() *float64 { return r.p.Weight }
func (r *playerResolver) PreferredFoot() *string { return r.p.PreferredFoot }
func (r *playerResolver) Status() string { return r.p.Status }
func (r *playerResolver) Bio() *string { return r.p.Bio }
func (r *playerResolver) JoinedDate() DateTime { return newDateTime(r.p.JoinedDate) }
func (r *playerResolver) CreatedAt() DateTime { return newDateTime(r.p.CreatedAt) }

func (r *playerResolver) ContractEndDate() *DateTime {
	return optionalDateTime(r.p.ContractEndDate)
}

func (r *playerResolver) PhotoURLs() []string {
	if r.p.PhotoURLs == nil {
		return []string{}
	}
	return r.p.PhotoURLs
}

func (r *playerResolver) Stats(ctx context.Context) (*statsResolver, error) {
	stats, err := r.root.svc.Players.Stats(ctx, r.p.ID)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}
	if stats == nil {
		return nil, nil
	}
	return &statsResolver{s: stats}, nil
}

func (r *playerResolver) Achievements(ctx context.Context) ([]*achievementResolver, error) {
	list, err := r.root.svc.Players.Achievements(ctx, r.p.ID)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}

	out := make([]*achievementResolver, 0, len(list))
	for i := range list {
		out = append(out, &achievementResolver{a: &list[i]})
	}
	return out, nil
}

type statsResolver struct {
	s *player.Stats
}

func (r *statsResolver) ID() graphql.ID { return graphql.ID(r.s.ID) }
func (r *statsResolver) Season() string { return r.s.Season }
func (r *statsResolver) Appearances() int32 { return int32(r.s.Appearances) }
func (r *statsResolver) Goals() int32 { return int32(r.s.Goals) }
func (r *statsResolver) Assists() int32 { return int32(r.s.Assists) }
func (r *statsResolver) YellowCards() int32 { return int32(r.s.YellowCards) }
func (r *statsResolver) RedCards() int32 { return int32(r.s.RedCards) }
func (r *statsResolver) MinutesPlayed() int32 { return int32(r.s.MinutesPlayed) }
func (r *statsResolver) PassAccuracy() *float64 { return r.s.PassAccuracy }
func (r *statsResolver) ShotsOnTarget() int32 { return int32(r.s.ShotsOnTarget) }
func (r *statsResolver) Tackles() int32 { return int32(r.s.Tackles) }
func (r *statsResolver) Interceptions() int32 { return int32(r.s.Interceptions) }
func (r *statsResolver) Saves() int32 { return int32(r.s.Saves) }
func (r *statsResolver) CleanSheets() int32 { return int32(r.s.CleanSheets) }

type achievementResolver struct {
	a *player.Achievement
}

func (r *achievementResolver) ID() graphql.ID { return graphql.ID(r.a.ID) }
func (r *achievementResolver) Title() string { return r.a.Title }
func (r *achievementResolver) Description() *string { return r.a.Description }
func (r *achievementResolver) AwardedAt() DateTime { return newDateTime(r.a.AwardedAt) }
func (r *achievementResolver) Season() *string { return r.a.Season }

type bulkResultResolver struct {
	root   *Resolver
	result *player.BulkResult
}

func (r *bulkResultResolver) Success() bool { return r.result.Success }
func (r *bulkResultResolver) Created() int32 { return int32(r.result.Created) }
func (r *bulkResultResolver) Failed() int32 { return int32(r.result.Failed) }
func (r *bulkResultResolver) Errors() []string { return r.result.Errors }

func (r *bulkResultResolver) Players() []*playerResolver {
	return r.root.players(r.result.Players)
}

func (r *Resolver) players(list []player.Player) []*playerResolver {
	out := make([]*playerResolver, 0, len(list))
	for i := range list {
		out = append(out, &playerResolver{root: r, p: &list[i]})
	}
	return out
}

func (r *Resolver) Players(ctx context.Context, args struct {
	Position *string
	Status   *string
}) ([]*playerResolver, error) {
	list, err := r.svc.Players.List(ctx, player.ListParams{
		Position: args.Position,
		Status:   args.Status,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.players(list), nil
}

func (r *Resolver) Player(
	ctx context.Context,
	args struct{ ID graphql.ID },
) (*playerResolver, error) {
	p, err := r.svc.Players.Get(ctx, string(args.ID))
	if err != nil {
		return nil, r.lookup(ctx, err)
	}
	return &playerResolver{root: r, p: p}, nil
}

func (r *Resolver) PlayersByPosition(
	ctx context.Context,
	args struct{ Position string },
) ([]*playerResolver, error) {
	list, err := r.svc.Players.ListByPosition(ctx, args.Position)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.players(list), nil
}

type createPlayerInput struct {
	FirstName     string
	LastName      string
	DisplayName   string
	Position      string
	JerseyNumber  int32
	Nationality   string
	DateOfBirth   DateTime
	Height        *float64
	Weight        *float64
	PreferredFoot *string
	Bio           *string
	JoinedDate    DateTime
	PhotoURLs     *[]string
}

func (in createPlayerInput) toDomain() player.CreatePlayerInput {
	out := player.CreatePlayerInput{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		DisplayName:   in.DisplayName,
		Position:      in.Position,
		JerseyNumber:  int(in.JerseyNumber),
		Nationality:   in.Nationality,
		DateOfBirth:   in.DateOfBirth.Time,
		Height:        in.Height,
		Weight:        in.Weight,
		PreferredFoot: in.PreferredFoot,
		Bio:           in.Bio,
		JoinedDate:    in.JoinedDate.Time,
	}
	if in.PhotoURLs != nil {
		out.PhotoURLs = *in.PhotoURLs
	}
	return out
}

type updatePlayerInput struct {
	FirstName       *string
	LastName        *string
	DisplayName     *string
	Position        *string
	JerseyNumber    *int32
	Nationality     *string
	DateOfBirth     *DateTime
	Height          *float64
	Weight          *float64
	PreferredFoot   *string
	Status          *string
	Bio             *string
	JoinedDate      *DateTime
	ContractEndDate *DateTime
	PhotoURLs       *[]string
}

func (r *Resolver) CreatePlayer(
	ctx context.Context,
	args struct{ Input createPlayerInput },
) (*playerResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	p, err := r.svc.Players.Create(ctx, args.Input.toDomain())
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &playerResolver{root: r, p: p}, nil
}

// BulkCreatePlayers reports per-record failures in the payload rather than
// as GraphQL errors.
func (r *Resolver) BulkCreatePlayers(
	ctx context.Context,
	args struct{ Input []createPlayerInput },
) (*bulkResultResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	inputs := make([]player.CreatePlayerInput, 0, len(args.Input))
	for _, in := range args.Input {
		inputs = append(inputs, in.toDomain())
	}

	return &bulkResultResolver{
		root:   r,
		result: r.svc.Players.BulkCreate(ctx, inputs),
	}, nil
}

func (r *Resolver) UpdatePlayer(ctx context.Context, args struct {
	ID    graphql.ID
	Input updatePlayerInput
}) (*playerResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	in := args.Input
	p, err := r.svc.Players.Update(ctx, string(args.ID), player.UpdatePlayerInput{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		DisplayName:     in.DisplayName,
		Position:        in.Position,
		JerseyNumber:    intPtr(in.JerseyNumber),
		Nationality:     in.Nationality,
		DateOfBirth:     timePtr(in.DateOfBirth),
		Height:          in.Height,
		Weight:          in.Weight,
		PreferredFoot:   in.PreferredFoot,
		Status:          in.Status,
		Bio:             in.Bio,
		JoinedDate:      timePtr(in.JoinedDate),
		ContractEndDate: timePtr(in.ContractEndDate),
		PhotoURLs:       in.PhotoURLs,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &playerResolver{root: r, p: p}, nil
}

func (r *Resolver) DeletePlayer(
	ctx context.Context,
	args struct{ ID graphql.ID },
) (bool, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return false, err
	}

	if err := r.svc.Players.Delete(ctx, string(args.ID)); err != nil {
		return false, r.fail(ctx, err)
	}
	return true, nil
}
