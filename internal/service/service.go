// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"

	"github.com/maxviazov/league-registry/internal/model"
)

// LeagueService defines league-oriented use cases.
type LeagueService interface {
	// CreateLeague stores the league with name and country in title case.
	// A nil country is stored as NULL.
	CreateLeague(ctx context.Context, name string, country *string) (model.League, error)
	ListLeagues(ctx context.Context, f model.LeagueFilter) ([]model.League, error)
}

// CreateTeamInput is the raw request for a new team. LeagueCountry is only
// needed when several leagues share LeagueName.
type CreateTeamInput struct {
	Name          string
	LeagueName    string
	LeagueCountry string
}

// TeamService defines team-oriented use cases.
type TeamService interface {
	CreateTeam(ctx context.Context, in CreateTeamInput) (model.Team, error)
	ListTeams(ctx context.Context, f model.TeamFilter) ([]model.TeamListing, error)
}
