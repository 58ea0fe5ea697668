package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// helper to assert we didn't accidentally nil the pool
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}
