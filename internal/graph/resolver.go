// AngelaMos | 2026
// resolver.go

package graph

import (
	"context"
	"log/slog"

	"github.com/isiolocityfc/backend/internal/auth"
	"github.com/isiolocityfc/backend/internal/content"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/foundation"
	"github.com/isiolocityfc/backend/internal/match"
	"github.com/isiolocityfc/backend/internal/middleware"
	"github.com/isiolocityfc/backend/internal/player"
	"github.com/isiolocityfc/backend/internal/shop"
	"github.com/isiolocityfc/backend/internal/sponsor"
	"github.com/isiolocityfc/backend/internal/user"
)

type Services struct {
	Auth       *auth.Service
	Users      *user.Service
	Content    *content.Service
	Players    *player.Service
	Matches    *match.Service
	Foundation *foundation.Service
	Shop       *shop.Service
	Sponsors   *sponsor.Service
}

// Resolver is the root of both Query and Mutation. Exported methods are
// matched to schema fields by name, so helpers stay unexported.
type Resolver struct {
	svc        Services
	logger     *slog.Logger
	production bool
}

func NewResolver(svc Services, logger *slog.Logger, production bool) *Resolver {
	return &Resolver{
		svc:        svc,
		logger:     logger,
		production: production,
	}
}

func (r *Resolver) requireAuth(ctx context.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(ctx)
	if !ok {
		return middleware.Identity{}, r.fail(ctx, core.UnauthenticatedError(""))
	}
	return id, nil
}

func (r *Resolver) requireAdmin(ctx context.Context) (middleware.Identity, error) {
	id, err := r.requireAuth(ctx)
	if err != nil {
		return id, err
	}
	if !id.IsAdmin() {
		return id, r.fail(ctx, core.UnauthorizedError(""))
	}
	return id, nil
}
