package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/maxviazov/league-registry/internal/config"
	"github.com/maxviazov/league-registry/internal/logger"
	postgres "github.com/maxviazov/league-registry/internal/repository"
	pg "github.com/maxviazov/league-registry/internal/repository/postgres"
	"github.com/maxviazov/league-registry/internal/repository/schema"
	"github.com/maxviazov/league-registry/internal/seed"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqlDB, err := sql.Open("pgx", postgres.DSN(cfg.Postgres))
	if err != nil {
		appLogger.Fatal().Err(err).Msg("open database")
	}
	if err := schema.Apply(ctx, sqlDB, appLogger); err != nil {
		_ = sqlDB.Close()
		appLogger.Fatal().Err(err).Msg("apply schema")
	}
	_ = sqlDB.Close()

	db, err := postgres.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Postgres connection failed")
	}
	defer db.Close()

	res, err := seed.Run(ctx, pg.NewLeagueRepository(db.Pool()), pg.NewTeamRepository(db.Pool()), appLogger)
	if err != nil {
		appLogger.Error().Err(err).Int("leagues", res.Leagues).Int("teams", res.Teams).Msg("seed failed")
		db.Close()
		os.Exit(1)
	}
}
