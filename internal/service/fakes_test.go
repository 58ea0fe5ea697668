package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/repository"
)

var errStorageDown = errors.New("connection refused")

// fakeLeagueRepo enforces the (name, country) uniqueness the real table has.
type fakeLeagueRepo struct {
	nextID   int64
	items    []model.League
	findErr  error
	listErr  error
	lastList model.LeagueFilter
}

func newFakeLeagueRepo(seed ...model.League) *fakeLeagueRepo {
	f := &fakeLeagueRepo{nextID: 1}
	for _, l := range seed {
		if l.ID == 0 {
			l.ID = f.nextID
		}
		if l.ID >= f.nextID {
			f.nextID = l.ID + 1
		}
		f.items = append(f.items, l)
	}
	return f
}

func (f *fakeLeagueRepo) Create(_ context.Context, l model.League) (model.League, error) {
	for _, it := range f.items {
		if it.Name == l.Name && sameCountry(it.Country, l.Country) {
			return model.League{}, &repository.StorageError{
				UniqueViolation: true,
				Constraint:      "leagues_name_country_key",
				Err:             errors.New("duplicate key value"),
			}
		}
	}
	l.ID = f.nextID
	f.nextID++
	l.CreatedAt = time.Now()
	f.items = append(f.items, l)
	return l, nil
}

func (f *fakeLeagueRepo) FindByName(_ context.Context, name string) ([]model.League, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []model.League
	for _, it := range f.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeLeagueRepo) List(_ context.Context, filter model.LeagueFilter) ([]model.League, error) {
	f.lastList = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.League
	for i := len(f.items) - 1; i >= 0; i-- {
		it := f.items[i]
		if filter.Country != "" && (it.Country == nil || *it.Country != filter.Country) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

var _ repository.LeagueRepository = (*fakeLeagueRepo)(nil)

// sameCountry mirrors SQL unique semantics: NULLs never collide.
func sameCountry(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

type fakeTeamRepo struct {
	leagues   *fakeLeagueRepo
	nextID    int64
	items     []model.Team
	createErr error
	lastList  model.TeamFilter
}

func newFakeTeamRepo(leagues *fakeLeagueRepo) *fakeTeamRepo {
	return &fakeTeamRepo{leagues: leagues, nextID: 1}
}

func (f *fakeTeamRepo) Create(_ context.Context, t model.Team) (model.Team, error) {
	if f.createErr != nil {
		return model.Team{}, f.createErr
	}
	for _, it := range f.items {
		if it.Name == t.Name && it.LeagueID == t.LeagueID {
			return model.Team{}, &repository.StorageError{
				UniqueViolation: true,
				Constraint:      "teams_name_league_id_key",
				Err:             errors.New("duplicate key value"),
			}
		}
	}
	t.ID = f.nextID
	f.nextID++
	t.CreatedAt = time.Now()
	f.items = append(f.items, t)
	return t, nil
}

func (f *fakeTeamRepo) List(_ context.Context, filter model.TeamFilter) ([]model.TeamListing, error) {
	f.lastList = filter
	out := make([]model.TeamListing, 0, len(f.items))
	for _, t := range f.items {
		row := model.TeamListing{ID: t.ID, TeamName: t.Name, CreatedAt: t.CreatedAt}
		if f.leagues != nil {
			for _, l := range f.leagues.items {
				if l.ID == t.LeagueID {
					name := l.Name
					row.LeagueName = &name
					row.LeagueCountry = l.Country
				}
			}
		}
		if filter.Country != "" && (row.LeagueCountry == nil || *row.LeagueCountry != filter.Country) {
			continue
		}
		if filter.LeagueName != "" && (row.LeagueName == nil || *row.LeagueName != filter.LeagueName) {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamName < out[j].TeamName })
	return out, nil
}

var _ repository.TeamRepository = (*fakeTeamRepo)(nil)

func ptr(s string) *string { return &s }
