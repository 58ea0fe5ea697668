package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/repository"
	"github.com/maxviazov/league-registry/internal/textcase"
	"github.com/rs/zerolog"
)

// leagueService holds league use-case logic: validation + orchestration, no transport / SQL details.
type leagueService struct {
	repo repository.LeagueRepository
	log  zerolog.Logger
}

func NewLeagueService(repo repository.LeagueRepository, logger zerolog.Logger) LeagueService {
	l := logger.With().Str("module", "service").Str("component", "league").Logger()
	return &leagueService{repo: repo, log: l}
}

func (s *leagueService) CreateLeague(ctx context.Context, name string, country *string) (model.League, error) {
	start := time.Now()
	if strings.TrimSpace(name) == "" {
		s.log.Debug().Str("name_raw", name).Msg("league validation failed")
		return model.League{}, validationError("League name is required")
	}

	out, err := s.repo.Create(ctx, model.League{
		Name:    textcase.Title(name),
		Country: textcase.TitlePtr(country),
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			// the message echoes what the client sent, not the stored casing
			return model.League{}, conflictError(err, `League with name "%s" already exists in "%s".`, name, orNA(deref(country)))
		}
		return model.League{}, fmt.Errorf("create league: %w", err)
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("league_id", out.ID).Msg("league created")
	return out, nil
}

func (s *leagueService) ListLeagues(ctx context.Context, f model.LeagueFilter) ([]model.League, error) {
	leagues, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	for i := range leagues {
		leagues[i].Name = textcase.Title(leagues[i].Name)
		leagues[i].Country = textcase.TitlePtr(leagues[i].Country)
	}
	return leagues, nil
}
