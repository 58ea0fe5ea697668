package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/repository"
	"github.com/maxviazov/league-registry/internal/textcase"
	"github.com/rs/zerolog"
)

// teamService resolves the league a team belongs to, then stores the team.
// The two steps are separate statements; the (name, league_id) unique
// constraint decides races between concurrent creates.
type teamService struct {
	repo     repository.TeamRepository
	resolver *LeagueResolver
	log      zerolog.Logger
}

func NewTeamService(repo repository.TeamRepository, resolver *LeagueResolver, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{repo: repo, resolver: resolver, log: l}
}

func (s *teamService) CreateTeam(ctx context.Context, in CreateTeamInput) (model.Team, error) {
	start := time.Now()
	if strings.TrimSpace(in.Name) == "" {
		s.log.Debug().Str("league_name", in.LeagueName).Msg("team validation failed: name")
		return model.Team{}, validationError("Team name is required")
	}
	if strings.TrimSpace(in.LeagueName) == "" {
		s.log.Debug().Str("name", in.Name).Msg("team validation failed: league_name")
		return model.Team{}, validationError("League name is required to associate the team.")
	}

	res, err := s.resolver.Resolve(ctx, in.LeagueName, in.LeagueCountry)
	if err != nil {
		return model.Team{}, err
	}
	if rerr := res.Err(); rerr != nil {
		s.log.Debug().
			Str("league_name", in.LeagueName).
			Str("league_country", in.LeagueCountry).
			Stringer("outcome", res.Kind).
			Msg("league resolution failed")
		return model.Team{}, rerr
	}

	out, err := s.repo.Create(ctx, model.Team{Name: in.Name, LeagueID: res.LeagueID})
	if err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			return model.Team{}, conflictError(err, `Team with name "%s" already exists in this league.`, in.Name)
		case errors.Is(err, repository.ErrConflict):
			// the league vanished between resolution and insert
			return model.Team{}, notFoundError(`No league found with name: "%s"`, in.LeagueName)
		}
		return model.Team{}, fmt.Errorf("create team: %w", err)
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("team_id", out.ID).Int64("league_id", out.LeagueID).Msg("team created")
	return out, nil
}

func (s *teamService) ListTeams(ctx context.Context, f model.TeamFilter) ([]model.TeamListing, error) {
	teams, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	for i := range teams {
		teams[i].LeagueName = textcase.TitlePtr(teams[i].LeagueName)
		teams[i].LeagueCountry = textcase.TitlePtr(teams[i].LeagueCountry)
	}
	return teams, nil
}
