package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/querybuilder"
	"github.com/maxviazov/league-registry/internal/repository"
)

const teamListingBase = `SELECT t.id, t.name AS team_name, t.created_at, l.name AS league_name, l.country AS league_country
FROM teams t
LEFT JOIN leagues l ON t.league_id = l.id`

type teamRepository struct{ pool *pgxpool.Pool }

func NewTeamRepository(pool *pgxpool.Pool) repository.TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) Create(ctx context.Context, t model.Team) (model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Team{}, err
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO teams (name, league_id) VALUES ($1, $2)
		 RETURNING id, name, league_id, created_at`,
		t.Name, t.LeagueID,
	)
	var out model.Team
	if err := row.Scan(&out.ID, &out.Name, &out.LeagueID, &out.CreatedAt); err != nil {
		return model.Team{}, repository.Classify(err)
	}
	return out, nil
}

func (r *teamRepository) List(ctx context.Context, f model.TeamFilter) ([]model.TeamListing, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	q := teamListQuery(f)
	rows, err := r.pool.Query(ctx, q.Text, q.Args...)
	if err != nil {
		return nil, repository.Classify(err)
	}
	defer rows.Close()

	res := make([]model.TeamListing, 0, 16)
	for rows.Next() {
		var it model.TeamListing
		if err := rows.Scan(&it.ID, &it.TeamName, &it.CreatedAt, &it.LeagueName, &it.LeagueCountry); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Classify(err)
	}
	return res, nil
}

// teamListQuery filters by country first, then league name; placeholder
// positions follow that order.
func teamListQuery(f model.TeamFilter) querybuilder.Query {
	return querybuilder.New(teamListingBase).
		Eq("l.country", f.Country).
		Eq("l.name", f.LeagueName).
		OrderBy("t.name ASC").
		Build()
}

var _ repository.TeamRepository = (*teamRepository)(nil)
