// Package seed loads the starter set of leagues and teams into an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/repository"
	"github.com/maxviazov/league-registry/internal/textcase"
)

type league struct {
	name    string
	country string
	teams   []string
}

var starter = []league{
	{"Premier League", "England", []string{"Manchester City", "Arsenal", "Liverpool"}},
	{"La Liga", "Spain", []string{"Real Madrid", "FC Barcelona"}},
	{"Bundesliga", "Germany", []string{"Bayern Munich", "Borussia Dortmund"}},
	{"Serie A", "Italy", []string{"Inter Milan", "AC Milan"}},
	{"Ligue 1", "France", []string{"Paris Saint-Germain", "Olympique de Marseille"}},
	{"Championship", "England", []string{"Leicester City", "Leeds United"}},
	{"Scottish Premiership", "Scotland", []string{"Celtic", "Rangers"}},
}

// Result counts what Run inserted.
type Result struct {
	Leagues int
	Teams   int
	Skipped bool
}

// Run inserts the starter data unless at least one league already exists.
// League names and countries go through the same title-casing as the API.
func Run(ctx context.Context, leagues repository.LeagueRepository, teams repository.TeamRepository, logger zerolog.Logger) (Result, error) {
	log := logger.With().Str("module", "seed").Logger()

	existing, err := leagues.List(ctx, model.LeagueFilter{})
	if err != nil {
		return Result{}, fmt.Errorf("check existing leagues: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Int("leagues", len(existing)).Msg("database already seeded, skipping")
		return Result{Skipped: true}, nil
	}

	var res Result
	for _, l := range starter {
		country := l.country
		created, err := leagues.Create(ctx, model.League{
			Name:    textcase.Title(l.name),
			Country: textcase.TitlePtr(&country),
		})
		if err != nil {
			return res, fmt.Errorf("seed league %s: %w", l.name, err)
		}
		res.Leagues++
		for _, name := range l.teams {
			if _, err := teams.Create(ctx, model.Team{Name: name, LeagueID: created.ID}); err != nil {
				return res, fmt.Errorf("seed team %s: %w", name, err)
			}
			res.Teams++
		}
	}
	log.Info().Int("leagues", res.Leagues).Int("teams", res.Teams).Msg("seed complete")
	return res, nil
}
