package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/service"
)

type stubTeamService struct {
	create struct {
		team model.Team
		err  error
		in   service.CreateTeamInput
	}
	list struct {
		res    []model.TeamListing
		err    error
		filter model.TeamFilter
	}
}

func (s *stubTeamService) CreateTeam(_ context.Context, in service.CreateTeamInput) (model.Team, error) {
	s.create.in = in
	return s.create.team, s.create.err
}

func (s *stubTeamService) ListTeams(_ context.Context, f model.TeamFilter) ([]model.TeamListing, error) {
	s.list.filter = f
	return s.list.res, s.list.err
}

var _ service.TeamService = (*stubTeamService)(nil)

func TestTeamHandler_Create_OK(t *testing.T) {
	stub := &stubTeamService{}
	stub.create.team = model.Team{ID: 3, Name: "Arsenal", LeagueID: 1}
	r := newEngine(stubPinger{}, nil, stub)

	w := post(r, "/api/teams", `{"name":"Arsenal","league_name":"Premier League","league_country":"England"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, service.CreateTeamInput{Name: "Arsenal", LeagueName: "Premier League", LeagueCountry: "England"}, stub.create.in)

	var got model.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, int64(1), got.LeagueID)
}

func TestTeamHandler_Create_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		body string
		want int
	}{
		{"invalid body", nil, `[1,2]`, http.StatusBadRequest},
		{"validation", &service.Error{Kind: service.ErrValidation, Message: "Team name is required"}, `{}`, http.StatusBadRequest},
		{"not found", service.Resolution{Kind: service.NotFound, Name: "X"}.Err(), `{"name":"a","league_name":"X"}`, http.StatusNotFound},
		{"conflict", &service.Error{Kind: service.ErrConflict, Message: "exists"}, `{"name":"a","league_name":"X"}`, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubTeamService{}
			stub.create.err = tc.err
			r := newEngine(stubPinger{}, nil, stub)

			w := post(r, "/api/teams", tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			assert.NotEmpty(t, decodeError(t, w).Error)
		})
	}
}

func TestTeamHandler_List(t *testing.T) {
	stub := &stubTeamService{}
	league, country := "La Liga", "Spain"
	stub.list.res = []model.TeamListing{{ID: 1, TeamName: "Real Madrid", LeagueName: &league, LeagueCountry: &country}}
	r := newEngine(stubPinger{}, nil, stub)

	w := serve(r, http.MethodGet, "/api/teams?country=Spain&league_name=La+Liga")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.TeamFilter{Country: "Spain", LeagueName: "La Liga"}, stub.list.filter)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Real Madrid", got[0]["team_name"])
	assert.Equal(t, "La Liga", got[0]["league_name"])
	assert.Equal(t, "Spain", got[0]["league_country"])
}
