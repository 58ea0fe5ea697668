package repository

import (
	"context"

	"github.com/maxviazov/league-registry/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// LeagueFinder is the read side the resolver needs: every league with exactly
// this name, in storage order. Matching is case-sensitive.
type LeagueFinder interface {
	FindByName(ctx context.Context, name string) ([]model.League, error)
}

// LeagueRepository declares persistence operations for leagues.
// I return domain models and surface *StorageError from errors.go rather than PG codes.
type LeagueRepository interface {
	LeagueFinder
	Create(ctx context.Context, l model.League) (model.League, error)
	// List returns leagues newest first, optionally narrowed by exact country.
	List(ctx context.Context, f model.LeagueFilter) ([]model.League, error)
}

// TeamRepository declares persistence operations for teams.
type TeamRepository interface {
	Create(ctx context.Context, t model.Team) (model.Team, error)
	// List returns teams joined with their league, ordered by team name.
	List(ctx context.Context, f model.TeamFilter) ([]model.TeamListing, error)
}
