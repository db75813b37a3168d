// AngelaMos | 2026
// service.go

package sponsor

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List returns sponsors in display order.
func (s *Service) List(ctx context.Context, p ListParams) ([]Sponsor, error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (*Sponsor, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Sponsor")
	}
	return sp, err
}

func (s *Service) Create(ctx context.Context, in CreateSponsorInput) (*Sponsor, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	sp := &Sponsor{
		ID:          ids.For("sponsor"),
		Name:        in.Name,
		Logo:        in.Logo,
		Website:     in.Website,
		Tier:        in.Tier,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}

	return sp, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	in UpdateSponsorInput,
) (*Sponsor, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	sp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		sp.Name = *in.Name
	}
	if in.Logo != nil {
		sp.Logo = *in.Logo
	}
	if in.Website != nil {
		sp.Website = in.Website
	}
	if in.Tier != nil {
		sp.Tier = *in.Tier
	}
	if in.Description != nil {
		sp.Description = in.Description
	}
	if in.StartDate != nil {
		sp.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		sp.EndDate = in.EndDate
	}
	if in.IsActive != nil {
		sp.IsActive = *in.IsActive
	}
	if in.DisplayOrder != nil {
		sp.DisplayOrder = *in.DisplayOrder
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("Sponsor")
		}
		return nil, err
	}

	return sp, nil
}

// SubscribeNewsletter is idempotent: subscribing twice leaves one active row.
func (s *Service) SubscribeNewsletter(ctx context.Context, email string) error {
	in := SubscribeInput{Email: strings.ToLower(strings.TrimSpace(email))}
	if err := s.validate.Struct(in); err != nil {
		return core.BadInputError(core.FormatValidationError(err))
	}

	return s.repo.UpsertSubscriber(ctx, ids.For("newsletter"), in.Email)
}
