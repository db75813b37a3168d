// AngelaMos | 2026
// service.go

package match

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// List returns fixtures and results, most recent kickoff first.
func (s *Service) List(
	ctx context.Context,
	status *string,
	limit *int,
) ([]Match, error) {
	return s.repo.List(ctx, status, clamp(limit, DefaultListLimit))
}

// Upcoming returns scheduled or live matches that have not kicked off yet,
// soonest first.
func (s *Service) Upcoming(ctx context.Context, limit *int) ([]Match, error) {
	return s.repo.Upcoming(ctx, s.now(), clamp(limit, DefaultUpcomingLimit))
}

func (s *Service) Get(ctx context.Context, id string) (*Match, error) {
	return notFound(s.repo.GetByID(ctx, id))
}

func (s *Service) Create(ctx context.Context, in CreateMatchInput) (*Match, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	m := &Match{
		ID:            ids.For("match"),
		HomeTeamID:    in.HomeTeamID,
		AwayTeamID:    in.AwayTeamID,
		VenueID:       in.VenueID,
		KickoffTime:   in.KickoffTime,
		Competition:   in.Competition,
		Season:        in.Season,
		Status:        StatusScheduled,
		HighlightURLs: []string{},
	}

	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			return nil, core.BadInputError("Unknown team or venue")
		}
		return nil, err
	}

	return m, nil
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	id string,
	in UpdateStatusInput,
) (*Match, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	return notFound(s.repo.UpdateStatus(ctx, id, in.Status))
}

func (s *Service) UpdateScore(
	ctx context.Context,
	id string,
	in UpdateScoreInput,
) (*Match, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	return notFound(s.repo.UpdateScore(ctx, id, in.HomeScore, in.AwayScore))
}

func (s *Service) Team(ctx context.Context, id string) (*Team, error) {
	t, err := s.repo.GetTeam(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Team")
	}
	return t, err
}

func (s *Service) Venue(ctx context.Context, id string) (*Venue, error) {
	v, err := s.repo.GetVenue(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Venue")
	}
	return v, err
}

// EnsureTeam creates the team unless one with the same name exists.
func (s *Service) EnsureTeam(ctx context.Context, in TeamInput) (*Team, error) {
	t := &Team{
		ID:        ids.For("team"),
		Name:      in.Name,
		ShortName: in.ShortName,
		Country:   in.Country,
		Founded:   in.Founded,
		Stadium:   in.Stadium,
	}
	if err := s.repo.UpsertTeam(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) EnsureVenue(ctx context.Context, in VenueInput) (*Venue, error) {
	v := &Venue{
		ID:       ids.For("venue"),
		Name:     in.Name,
		City:     in.City,
		Country:  in.Country,
		Capacity: in.Capacity,
		Address:  in.Address,
	}
	if err := s.repo.UpsertVenue(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func notFound(m *Match, err error) (*Match, error) {
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Match")
	}
	return m, err
}

func clamp(limit *int, def int) int {
	if limit == nil || *limit <= 0 {
		return def
	}
	return min(*limit, MaxListLimit)
}
