// AngelaMos | 2026
// auth.go

package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/isiolocityfc/backend/internal/auth"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/middleware"
	"github.com/isiolocityfc/backend/internal/user"
)

type userResolver struct {
	u *user.User
}

func (r *userResolver) ID() graphql.ID { return graphql.ID(r.u.ID) }
func (r *userResolver) Email() string { return r.u.Email }
func (r *userResolver) Name() string { return r.u.Name }
func (r *userResolver) Role() string { return r.u.Role }
func (r *userResolver) MembershipTier() string { return r.u.MembershipTier }
func (r *userResolver) Avatar() *string { return r.u.Avatar }
func (r *userResolver) Phone() *string { return r.u.Phone }
func (r *userResolver) DateOfBirth() *DateTime { return optionalDateTime(r.u.DateOfBirth) }
func (r *userResolver) Nationality() *string { return r.u.Nationality }
func (r *userResolver) IsActive() bool { return r.u.IsActive }
func (r *userResolver) CreatedAt() DateTime { return newDateTime(r.u.CreatedAt) }
func (r *userResolver) UpdatedAt() DateTime { return newDateTime(r.u.UpdatedAt) }

type authPayloadResolver struct {
	root   *Resolver
	result *auth.AuthResult
}

func (r *authPayloadResolver) Token() string { return r.result.Token }
func (r *authPayloadResolver) RefreshToken() string { return r.result.RefreshToken }

func (r *authPayloadResolver) User(ctx context.Context) (*userResolver, error) {
	return r.root.userByID(ctx, r.result.User.ID)
}

type sessionResolver struct {
	s auth.SessionInfo
}

func (r *sessionResolver) ID() graphql.ID { return graphql.ID(r.s.ID) }
func (r *sessionResolver) UserAgent() *string { return r.s.UserAgent }
func (r *sessionResolver) IPAddress() *string { return r.s.IPAddress }
func (r *sessionResolver) CreatedAt() DateTime { return newDateTime(r.s.CreatedAt) }
func (r *sessionResolver) UpdatedAt() DateTime { return newDateTime(r.s.UpdatedAt) }
func (r *sessionResolver) ExpiresAt() DateTime { return newDateTime(r.s.ExpiresAt) }

func (r *Resolver) userByID(ctx context.Context, id string) (*userResolver, error) {
	u, err := r.svc.Users.GetUser(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: u}, nil
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	id, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return nil, r.fail(ctx, core.UnauthenticatedError("Not authenticated"))
	}
	return r.userByID(ctx, id.ID)
}

func (r *Resolver) MySessions(ctx context.Context) ([]*sessionResolver, error) {
	id, err := r.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := r.svc.Auth.ListSessions(ctx, id.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*sessionResolver, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, &sessionResolver{s: s})
	}
	return out, nil
}

type registerInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

type loginInput struct {
	Email    string
	Password string
}

func (r *Resolver) Register(
	ctx context.Context,
	args struct{ Input registerInput },
) (*authPayloadResolver, error) {
	result, err := r.svc.Auth.Register(ctx, auth.RegisterRequest{
		Email:    args.Input.Email,
		Password: args.Input.Password,
		Name:     args.Input.Name,
		Phone:    args.Input.Phone,
	}, clientFrom(ctx))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &authPayloadResolver{root: r, result: result}, nil
}

func (r *Resolver) Login(
	ctx context.Context,
	args struct{ Input loginInput },
) (*authPayloadResolver, error) {
	result, err := r.svc.Auth.Login(ctx, auth.LoginRequest{
		Email:    args.Input.Email,
		Password: args.Input.Password,
	}, clientFrom(ctx))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &authPayloadResolver{root: r, result: result}, nil
}

func (r *Resolver) RefreshToken(
	ctx context.Context,
	args struct{ RefreshToken string },
) (*authPayloadResolver, error) {
	result, err := r.svc.Auth.Refresh(ctx, args.RefreshToken)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &authPayloadResolver{root: r, result: result}, nil
}

func (r *Resolver) Logout(
	ctx context.Context,
	args struct{ RefreshToken string },
) (bool, error) {
	id, err := r.requireAuth(ctx)
	if err != nil {
		return false, err
	}

	if err := r.svc.Auth.Logout(ctx, id.ID, args.RefreshToken); err != nil {
		return false, r.fail(ctx, err)
	}
	return true, nil
}
