// AngelaMos | 2026
// service.go

package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	logger   *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// List returns players ordered by jersey number. Without a status filter
// only active players are listed.
func (s *Service) List(ctx context.Context, p ListParams) ([]Player, error) {
	status := StatusActive
	if p.Status != nil {
		status = *p.Status
	}

	return s.repo.List(ctx, p.Position, status)
}

func (s *Service) ListByPosition(
	ctx context.Context,
	position string,
) ([]Player, error) {
	return s.repo.List(ctx, &position, StatusActive)
}

func (s *Service) Get(ctx context.Context, id string) (*Player, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Player")
	}
	return p, err
}

// Create inserts a single player. Jersey numbers are not checked here.
func (s *Service) Create(
	ctx context.Context,
	in CreatePlayerInput,
) (*Player, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	p := newPlayer(in)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// BulkCreate imports players one at a time. A failed record is reported in
// the result and never stops the records after it. Records already created
// stay created.
func (s *Service) BulkCreate(
	ctx context.Context,
	inputs []CreatePlayerInput,
) *BulkResult {
	result := &BulkResult{
		Errors:  []string{},
		Players: []Player{},
	}

	for i, in := range inputs {
		n := i + 1

		if err := s.validate.Struct(in); err != nil {
			result.fail(fmt.Sprintf(
				"Player %d (%s): %s", n, in.DisplayName, core.FormatValidationError(err),
			))
			continue
		}

		existing, err := s.repo.FindActiveByJersey(ctx, in.JerseyNumber)
		switch {
		case err == nil:
			result.fail(fmt.Sprintf(
				"Player %d: Jersey number %d is already taken by %s",
				n, in.JerseyNumber, existing.DisplayName,
			))
			continue
		case !errors.Is(err, core.ErrNotFound):
			result.fail(fmt.Sprintf("Player %d (%s): %s", n, in.DisplayName, err))
			continue
		}

		p := newPlayer(in)
		if err := s.repo.Create(ctx, p); err != nil {
			result.fail(fmt.Sprintf("Player %d (%s): %s", n, in.DisplayName, err))
			continue
		}

		result.Created++
		result.Players = append(result.Players, *p)
	}

	result.Success = result.Failed == 0

	s.logger.InfoContext(ctx, "bulk player import finished",
		"created", result.Created,
		"failed", result.Failed,
	)

	return result
}

func (r *BulkResult) fail(msg string) {
	r.Failed++
	r.Errors = append(r.Errors, msg)
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	in UpdatePlayerInput,
) (*Player, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(p)

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Player")
		}
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError("Player")
	}
	return err
}

// Stats returns the most recent season's statistics, or nil when none are
// recorded.
func (s *Service) Stats(ctx context.Context, playerID string) (*Stats, error) {
	stats, err := s.repo.LatestStats(ctx, playerID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil
	}
	return stats, err
}

func (s *Service) Achievements(
	ctx context.Context,
	playerID string,
) ([]Achievement, error) {
	return s.repo.Achievements(ctx, playerID)
}

func newPlayer(in CreatePlayerInput) *Player {
	photos := in.PhotoURLs
	if photos == nil {
		photos = []string{}
	}

	return &Player{
		ID:            ids.For("player"),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		DisplayName:   in.DisplayName,
		Position:      in.Position,
		JerseyNumber:  in.JerseyNumber,
		Nationality:   in.Nationality,
		DateOfBirth:   in.DateOfBirth,
		Height:        in.Height,
		Weight:        in.Weight,
		PreferredFoot: in.PreferredFoot,
		Status:        StatusActive,
		Bio:           in.Bio,
		JoinedDate:    in.JoinedDate,
		PhotoURLs:     photos,
	}
}

func (in UpdatePlayerInput) apply(p *Player) {
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.DisplayName != nil {
		p.DisplayName = *in.DisplayName
	}
	if in.Position != nil {
		p.Position = *in.Position
	}
	if in.JerseyNumber != nil {
		p.JerseyNumber = *in.JerseyNumber
	}
	if in.Nationality != nil {
		p.Nationality = *in.Nationality
	}
	if in.DateOfBirth != nil {
		p.DateOfBirth = *in.DateOfBirth
	}
	if in.Height != nil {
		p.Height = in.Height
	}
	if in.Weight != nil {
		p.Weight = in.Weight
	}
	if in.PreferredFoot != nil {
		p.PreferredFoot = in.PreferredFoot
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Bio != nil {
		p.Bio = in.Bio
	}
	if in.JoinedDate != nil {
		p.JoinedDate = *in.JoinedDate
	}
	if in.ContractEndDate != nil {
		p.ContractEndDate = in.ContractEndDate
	}
	if in.PhotoURLs != nil {
		p.PhotoURLs = *in.PhotoURLs
	}
}
