package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/querybuilder"
	"github.com/maxviazov/league-registry/internal/repository"
)

const leagueColumns = `id, name, country, created_at`

type leagueRepository struct{ pool *pgxpool.Pool }

func NewLeagueRepository(pool *pgxpool.Pool) repository.LeagueRepository {
	return &leagueRepository{pool: pool}
}

func (r *leagueRepository) Create(ctx context.Context, l model.League) (model.League, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.League{}, err
	}
	row := r.pool.QueryRow(ctx,
		`INSERT INTO leagues (name, country) VALUES ($1, $2)
		 RETURNING `+leagueColumns,
		l.Name, l.Country,
	)
	var out model.League
	if err := row.Scan(&out.ID, &out.Name, &out.Country, &out.CreatedAt); err != nil {
		return model.League{}, repository.Classify(err)
	}
	return out, nil
}

// FindByName returns every league with exactly this name, oldest first.
func (r *leagueRepository) FindByName(ctx context.Context, name string) ([]model.League, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	return r.query(ctx, querybuilder.Query{
		Text: `SELECT ` + leagueColumns + ` FROM leagues WHERE name = $1 ORDER BY id`,
		Args: []any{name},
	})
}

func (r *leagueRepository) List(ctx context.Context, f model.LeagueFilter) ([]model.League, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	return r.query(ctx, leagueListQuery(f))
}

func leagueListQuery(f model.LeagueFilter) querybuilder.Query {
	return querybuilder.New(`SELECT ` + leagueColumns + ` FROM leagues`).
		Eq("country", f.Country).
		OrderBy("created_at DESC").
		Build()
}

func (r *leagueRepository) query(ctx context.Context, q querybuilder.Query) ([]model.League, error) {
	rows, err := r.pool.Query(ctx, q.Text, q.Args...)
	if err != nil {
		return nil, repository.Classify(err)
	}
	defer rows.Close()

	res := make([]model.League, 0, 8)
	for rows.Next() {
		var it model.League
		if err := rows.Scan(&it.ID, &it.Name, &it.Country, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan league: %w", err)
		}
		res = append(res, it)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Classify(err)
	}
	return res, nil
}

var _ repository.LeagueRepository = (*leagueRepository)(nil)
