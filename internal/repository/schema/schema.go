// Package schema holds the database schema and applies it with goose.
package schema

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed *.sql
var files embed.FS

// Apply brings the schema up to date. It is safe to run repeatedly.
func Apply(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return fmt.Errorf("schema provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	for _, r := range results {
		logger.Info().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("schema step applied")
	}
	return nil
}
