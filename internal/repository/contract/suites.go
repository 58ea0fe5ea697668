// Package contract holds storage-agnostic test suites every repository
// implementation must pass. Implementations wire them up with a factory.
package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/repository"
)

type LeagueFactory func(t *testing.T) (repository.LeagueRepository, func())

// TeamFactory returns the team repository plus the league repository it joins against.
type TeamFactory func(t *testing.T) (teams repository.TeamRepository, leagues repository.LeagueRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func ptr(s string) *string { return &s }

// League contracts

func RunLeagueRepositoryContract(t *testing.T, makeRepo LeagueFactory) {
	t.Helper()

	t.Run("create_and_find", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.League{Name: "Premier League", Country: ptr("England")})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == 0 || created.CreatedAt.IsZero() {
			t.Fatalf("generated fields not returned: %+v", created)
		}
		got, err := repo.FindByName(ctx, "Premier League")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != created.ID || got[0].Country == nil || *got[0].Country != "England" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("find_is_case_sensitive_and_ordered", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		first, _ := repo.Create(ctx, model.League{Name: "Premier League", Country: ptr("Wales")})
		second, _ := repo.Create(ctx, model.League{Name: "Premier League", Country: ptr("England")})
		got, err := repo.FindByName(ctx, "Premier League")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
			t.Fatalf("expected insertion order, got %+v", got)
		}
		none, err := repo.FindByName(ctx, "premier league")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("expected no case-insensitive match, got %+v", none)
		}
	})

	t.Run("duplicate_is_unique_violation", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, model.League{Name: "La Liga", Country: ptr("Spain")}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		_, err := repo.Create(ctx, model.League{Name: "La Liga", Country: ptr("Spain")})
		if !repository.IsUniqueViolation(err) {
			t.Fatalf("expected unique violation, got %v", err)
		}
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists in chain, got %v", err)
		}
	})

	t.Run("null_country_is_stored", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		created, err := repo.Create(context.Background(), model.League{Name: "Friendlies"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.Country != nil {
			t.Fatalf("expected NULL country, got %q", *created.Country)
		}
	})

	t.Run("list_filter_and_order", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, l := range []model.League{
			{Name: "Premier League", Country: ptr("England")},
			{Name: "La Liga", Country: ptr("Spain")},
			{Name: "Championship", Country: ptr("England")},
		} {
			if _, err := repo.Create(ctx, l); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		all, err := repo.List(ctx, model.LeagueFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 leagues, got %d", len(all))
		}
		for i := 1; i < len(all); i++ {
			if all[i].CreatedAt.After(all[i-1].CreatedAt) {
				t.Fatalf("expected newest first: %+v", all)
			}
		}
		england, err := repo.List(ctx, model.LeagueFilter{Country: "England"})
		if err != nil {
			t.Fatalf("list england: %v", err)
		}
		if len(england) != 2 {
			t.Fatalf("expected 2 english leagues, got %+v", england)
		}
	})
}

// Team contracts

func RunTeamRepositoryContract(t *testing.T, makeRepo TeamFactory) {
	t.Helper()

	seed := func(t *testing.T, leagues repository.LeagueRepository, name, country string) int64 {
		t.Helper()
		l, err := leagues.Create(context.Background(), model.League{Name: name, Country: ptr(country)})
		if err != nil {
			t.Fatalf("seed league: %v", err)
		}
		return l.ID
	}

	t.Run("create_and_list", func(t *testing.T) {
		teams, leagues, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		id := seed(t, leagues, "Serie A", "Italy")
		created, err := teams.Create(ctx, model.Team{Name: "Inter Milan", LeagueID: id})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == 0 || created.LeagueID != id {
			t.Fatalf("unexpected team: %+v", created)
		}
		got, err := teams.List(ctx, model.TeamFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 || got[0].TeamName != "Inter Milan" || got[0].LeagueName == nil || *got[0].LeagueName != "Serie A" {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})

	t.Run("duplicate_in_league_is_unique_violation", func(t *testing.T) {
		teams, leagues, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		a := seed(t, leagues, "Premier League", "England")
		b := seed(t, leagues, "Premier League", "Wales")
		if _, err := teams.Create(ctx, model.Team{Name: "United", LeagueID: a}); err != nil {
			t.Fatalf("create: %v", err)
		}
		// the same name in another league is fine
		if _, err := teams.Create(ctx, model.Team{Name: "United", LeagueID: b}); err != nil {
			t.Fatalf("create in other league: %v", err)
		}
		_, err := teams.Create(ctx, model.Team{Name: "United", LeagueID: a})
		if !repository.IsUniqueViolation(err) {
			t.Fatalf("expected unique violation, got %v", err)
		}
	})

	t.Run("missing_league_is_conflict", func(t *testing.T) {
		teams, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := teams.Create(context.Background(), model.Team{Name: "Ghosts", LeagueID: 987654})
		if !errors.Is(err, repository.ErrConflict) || repository.IsUniqueViolation(err) {
			t.Fatalf("expected foreign key conflict, got %v", err)
		}
	})

	t.Run("list_filters_and_order", func(t *testing.T) {
		teams, leagues, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		pl := seed(t, leagues, "Premier League", "England")
		ch := seed(t, leagues, "Championship", "England")
		ll := seed(t, leagues, "La Liga", "Spain")
		for _, tm := range []model.Team{
			{Name: "Liverpool", LeagueID: pl},
			{Name: "Arsenal", LeagueID: pl},
			{Name: "Leeds United", LeagueID: ch},
			{Name: "Real Madrid", LeagueID: ll},
		} {
			if _, err := teams.Create(ctx, tm); err != nil {
				t.Fatalf("seed team: %v", err)
			}
		}

		all, err := teams.List(ctx, model.TeamFilter{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		want := []string{"Arsenal", "Leeds United", "Liverpool", "Real Madrid"}
		if len(all) != len(want) {
			t.Fatalf("expected %d teams, got %d", len(want), len(all))
		}
		for i, name := range want {
			if all[i].TeamName != name {
				t.Fatalf("position %d: want %s got %s", i, name, all[i].TeamName)
			}
		}

		england, err := teams.List(ctx, model.TeamFilter{Country: "England"})
		if err != nil {
			t.Fatalf("list england: %v", err)
		}
		if len(england) != 3 {
			t.Fatalf("expected 3 english teams, got %d", len(england))
		}

		both, err := teams.List(ctx, model.TeamFilter{Country: "England", LeagueName: "Premier League"})
		if err != nil {
			t.Fatalf("list both: %v", err)
		}
		if len(both) != 2 || both[0].TeamName != "Arsenal" || both[1].TeamName != "Liverpool" {
			t.Fatalf("unexpected filtered listing: %+v", both)
		}
	})
}

// Pinger contract

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
