// AngelaMos | 2026
// service.go

package foundation

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

const msgUnknownProgram = "Program not found"

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

func (s *Service) ListPrograms(ctx context.Context, p ListParams) ([]Program, error) {
	return s.repo.ListPrograms(ctx, p)
}

func (s *Service) GetProgram(ctx context.Context, id string) (*Program, error) {
	p, err := s.repo.GetProgram(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("Program")
	}
	return p, err
}

func (s *Service) Enrollments(
	ctx context.Context,
	programID string,
) ([]Enrollment, error) {
	return s.repo.ListEnrollments(ctx, programID)
}

func (s *Service) CreateProgram(
	ctx context.Context,
	in CreateProgramInput,
) (*Program, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, core.BadInputError("endDate must not be before startDate")
	}

	p := &Program{
		ID:          ids.For("program"),
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Location:    in.Location,
		Capacity:    in.Capacity,
		AgeGroup:    in.AgeGroup,
		Price:       in.Price,
		IsActive:    true,
	}

	if err := s.repo.CreateProgram(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Enroll registers a student for a program. New enrollments wait in
// PENDING until the foundation staff confirm them.
func (s *Service) Enroll(ctx context.Context, in EnrollInput) (*Enrollment, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, core.BadInputError(core.FormatValidationError(err))
	}

	if _, err := s.repo.GetProgram(ctx, in.ProgramID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.BadInputError(msgUnknownProgram)
		}
		return nil, err
	}

	e := &Enrollment{
		ID:            ids.For("enrollment"),
		ProgramID:     in.ProgramID,
		StudentName:   in.StudentName,
		StudentAge:    in.StudentAge,
		GuardianName:  in.GuardianName,
		GuardianEmail: in.GuardianEmail,
		GuardianPhone: in.GuardianPhone,
		Status:        EnrollmentPending,
	}

	if err := s.repo.CreateEnrollment(ctx, e); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.BadInputError(msgUnknownProgram)
		}
		return nil, err
	}

	return e, nil
}
