// AngelaMos | 2026
// seed.go

package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/isiolocityfc/backend/internal/config"
	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/match"
	"github.com/isiolocityfc/backend/internal/user"
)

func ptr[T any](v T) *T { return &v }

// Teams are the clubs every fresh install starts with: the home side and
// two regular opponents.
var Teams = []match.TeamInput{
	{
		Name:      "Isiolo City FC",
		ShortName: "Isiolo",
		Country:   "Kenya",
		Founded:   ptr(2020),
		Stadium:   ptr("Isiolo Stadium"),
	},
	{Name: "Nairobi Stars FC", ShortName: "Nairobi Stars", Country: "Kenya"},
	{Name: "Mombasa United", ShortName: "Mombasa", Country: "Kenya"},
}

var HomeVenue = match.VenueInput{
	Name:     "Isiolo Stadium",
	City:     "Isiolo",
	Country:  "Kenya",
	Capacity: 5000,
	Address:  ptr("Isiolo Town, Kenya"),
}

type Seeder struct {
	users   *user.Service
	matches *match.Service
	logger  *slog.Logger
	hash    func(string) (string, error)
}

func New(users *user.Service, matches *match.Service, logger *slog.Logger) *Seeder {
	return &Seeder{
		users:   users,
		matches: matches,
		logger:  logger,
		hash:    core.HashPassword,
	}
}

type Result struct {
	AdminID      string
	AdminCreated bool
	Teams        int
	VenueID      string
}

// Run is safe to repeat: the admin is only created when its email is free
// and teams and venues are matched by name.
func (s *Seeder) Run(ctx context.Context, cfg config.SeedConfig) (*Result, error) {
	if cfg.UsesDefaultAdmin() {
		s.logger.WarnContext(ctx, "seeding with default admin credentials",
			"hint", "set ADMIN_EMAIL and ADMIN_PASSWORD for production",
		)
	}

	hash, err := s.hash(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	admin, created, err := s.users.EnsureAdmin(ctx, cfg.AdminEmail, hash, cfg.AdminName)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	if created {
		s.logger.InfoContext(ctx, "admin user created",
			"email", admin.Email,
			"id", admin.ID,
		)
	} else {
		s.logger.InfoContext(ctx, "admin user already present", "email", admin.Email)
	}

	result := &Result{AdminID: admin.ID, AdminCreated: created}

	for _, t := range Teams {
		team, err := s.matches.EnsureTeam(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("seed team %s: %w", t.Name, err)
		}
		s.logger.DebugContext(ctx, "team ready", "name", team.Name, "id", team.ID)
		result.Teams++
	}

	venue, err := s.matches.EnsureVenue(ctx, HomeVenue)
	if err != nil {
		return nil, fmt.Errorf("seed venue: %w", err)
	}
	result.VenueID = venue.ID

	s.logger.InfoContext(ctx, "seed complete",
		"teams", result.Teams,
		"venue", venue.Name,
	)
	return result, nil
}
