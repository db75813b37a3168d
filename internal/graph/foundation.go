// AngelaMos | 2026
// foundation.go

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/isiolocityfc/backend/internal/foundation"
)

type programResolver struct {
	root *Resolver
	p    *foundation.Program
}

func (r *programResolver) ID() graphql.ID { return graphql.ID(r.p.ID) }
func (r *programResolver) Name() string { return r.p.Name }
func (r *programResolver) Description() string { return r.p.Description }
func (r *programResolver) Type() string { return r.p.Type }
func (r *programResolver) StartDate() DateTime { return newDateTime(r.p.StartDate) }
func (r *programResolver) EndDate() *DateTime { return optionalDateTime(r.p.EndDate) }
func (r *programResolver) Location() string { return r.p.Location }
func (r *programResolver) Capacity() int32 { return int32(r.p.Capacity) }
func (r *programResolver) AgeGroup() *string { return r.p.AgeGroup }
func (r *programResolver) Price() *float64 { return r.p.Price }
func (r *programResolver) IsActive() bool { return r.p.IsActive }
func (r *programResolver) CreatedAt() DateTime { return newDateTime(r.p.CreatedAt) }

func (r *programResolver) Enrollments(ctx context.Context) ([]*enrollmentResolver, error) {
	list, err := r.root.svc.Foundation.Enrollments(ctx, r.p.ID)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}

	out := make([]*enrollmentResolver, 0, len(list))
	for i := range list {
		out = append(out, &enrollmentResolver{root: r.root, e: &list[i]})
	}
	return out, nil
}

type enrollmentResolver struct {
	root *Resolver
	e    *foundation.Enrollment
}

func (r *enrollmentResolver) ID() graphql.ID { return graphql.ID(r.e.ID) }
func (r *enrollmentResolver) StudentName() string { return r.e.StudentName }
func (r *enrollmentResolver) StudentAge() int32 { return int32(r.e.StudentAge) }
func (r *enrollmentResolver) GuardianName() string { return r.e.GuardianName }
func (r *enrollmentResolver) GuardianEmail() string { return r.e.GuardianEmail }
func (r *enrollmentResolver) GuardianPhone() string { return r.e.GuardianPhone }
func (r *enrollmentResolver) Status() string { return r.e.Status }
func (r *enrollmentResolver) EnrolledAt() DateTime { return newDateTime(r.e.EnrolledAt) }

func (r *enrollmentResolver) Program(ctx context.Context) (*programResolver, error) {
	p, err := r.root.svc.Foundation.GetProgram(ctx, r.e.ProgramID)
	if err != nil {
		return nil, r.root.fail(ctx, err)
	}
	return &programResolver{root: r.root, p: p}, nil
}

func (r *Resolver) FoundationPrograms(ctx context.Context, args struct {
	Type     *string
	IsActive *bool
}) ([]*programResolver, error) {
	list, err := r.svc.Foundation.ListPrograms(ctx, foundation.ListParams{
		Type:     args.Type,
		IsActive: args.IsActive,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*programResolver, 0, len(list))
	for i := range list {
		out = append(out, &programResolver{root: r, p: &list[i]})
	}
	return out, nil
}

func (r *Resolver) FoundationProgram(
	ctx context.Context,
	args struct{ ID graphql.ID },
) (*programResolver, error) {
	p, err := r.svc.Foundation.GetProgram(ctx, string(args.ID))
	if err != nil {
		return nil, r.lookup(ctx, err)
	}
	return &programResolver{root: r, p: p}, nil
}

type createProgramInput struct {
	Name        string
	Description string
	Type        string
	StartDate   DateTime
	EndDate     *DateTime
	Location    string
	Capacity    int32
	AgeGroup    *string
	Price       *float64
}

type enrollProgramInput struct {
	ProgramID     graphql.ID
	StudentName   string
	StudentAge    int32
	GuardianName  string
	GuardianEmail string
	GuardianPhone string
}

func (r *Resolver) CreateProgram(
	ctx context.Context,
	args struct{ Input createProgramInput },
) (*programResolver, error) {
	if _, err := r.requireAdmin(ctx); err != nil {
		return nil, err
	}

	in := args.Input
	p, err := r.svc.Foundation.CreateProgram(ctx, foundation.CreateProgramInput{
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		StartDate:   in.StartDate.Time,
		EndDate:     timePtr(in.EndDate),
		Location:    in.Location,
		Capacity:    int(in.Capacity),
		AgeGroup:    in.AgeGroup,
		Price:       in.Price,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &programResolver{root: r, p: p}, nil
}

// EnrollInProgram needs a signed-in caller; the enrollment itself is keyed
// to the guardian's details, not the account.
func (r *Resolver) EnrollInProgram(
	ctx context.Context,
	args struct{ Input enrollProgramInput },
) (*enrollmentResolver, error) {
	if _, err := r.requireAuth(ctx); err != nil {
		return nil, err
	}

	in := args.Input
	e, err := r.svc.Foundation.Enroll(ctx, foundation.EnrollInput{
		ProgramID:     string(in.ProgramID),
		StudentName:   in.StudentName,
		StudentAge:    int(in.StudentAge),
		GuardianName:  in.GuardianName,
		GuardianEmail: in.GuardianEmail,
		GuardianPhone: in.GuardianPhone,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &enrollmentResolver{root: r, e: e}, nil
}
