// AngelaMos | 2026
// repository.go

package foundation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isiolocityfc/backend/internal/core"
)

type Repository interface {
	ListPrograms(ctx context.Context, p ListParams) ([]Program, error)
	GetProgram(ctx context.Context, id string) (*Program, error)
	CreateProgram(ctx context.Context, p *Program) error
	ListEnrollments(ctx context.Context, programID string) ([]Enrollment, error)
	CreateEnrollment(ctx context.Context, e *Enrollment) error
}

const programColumns = `
	id, name, description, type, start_date, end_date, location, capacity,
	age_group, price, is_active, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListPrograms(
	ctx context.Context,
	p ListParams,
) ([]Program, error) {
	query := `
		SELECT ` + programColumns + `
		FROM foundation_programs
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY start_date DESC`

	var programs []Program
	if err := r.db.SelectContext(ctx, &programs, query, p.Type, p.IsActive); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	return programs, nil
}

func (r *repository) GetProgram(ctx context.Context, id string) (*Program, error) {
	query := `SELECT ` + programColumns + ` FROM foundation_programs WHERE id = $1`

	var p Program
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get program: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}

	return &p, nil
}

func (r *repository) CreateProgram(ctx context.Context, p *Program) error {
	query := `
		INSERT INTO foundation_programs (
			id, name, description, type, start_date, end_date, location,
			capacity, age_group, price, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.Type,
		p.StartDate,
		p.EndDate,
		p.Location,
		p.Capacity,
		p.AgeGroup,
		p.Price,
		p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}

	return nil
}

func (r *repository) ListEnrollments(
	ctx context.Context,
	programID string,
) ([]Enrollment, error) {
	query := `
		SELECT id, program_id, student_name, student_age, guardian_name,
		       guardian_email, guardian_phone, status, enrolled_at
		FROM enrollments
		WHERE program_id = $1
		ORDER BY enrolled_at ASC`

	enrollments := []Enrollment{}
	if err := r.db.SelectContext(ctx, &enrollments, query, programID); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	return enrollments, nil
}

func (r *repository) CreateEnrollment(ctx context.Context, e *Enrollment) error {
	query := `
		INSERT INTO enrollments (
			id, program_id, student_name, student_age, guardian_name,
			guardian_email, guardian_phone, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING enrolled_at`

	err := r.db.QueryRowxContext(ctx, query,
		e.ID,
		e.ProgramID,
		e.StudentName,
		e.StudentAge,
		e.GuardianName,
		e.GuardianEmail,
		e.GuardianPhone,
		e.Status,
	).Scan(&e.EnrolledAt)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create enrollment: %w", core.ErrNotFound)
		}
		return fmt.Errorf("create enrollment: %w", err)
	}

	return nil
}
