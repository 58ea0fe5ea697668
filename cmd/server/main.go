package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/league-registry/internal/config"
	"github.com/maxviazov/league-registry/internal/handler"
	"github.com/maxviazov/league-registry/internal/logger"
	postgres "github.com/maxviazov/league-registry/internal/repository"
	pg "github.com/maxviazov/league-registry/internal/repository/postgres"
	"github.com/maxviazov/league-registry/internal/server"
	"github.com/maxviazov/league-registry/internal/service"
)

func main() {
	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.New(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("❌ Postgres connection failed")
	}
	defer db.Close()

	leagues := pg.NewLeagueRepository(db.Pool())
	teams := pg.NewTeamRepository(db.Pool())

	leagueSvc := service.NewLeagueService(leagues, appLogger)
	teamSvc := service.NewTeamService(teams, service.NewLeagueResolver(leagues), appLogger)

	if cfg.Logger.Env == "prod" || cfg.Logger.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(appLogger, pg.NewPinger(db.Pool()), leagueSvc, teamSvc)

	srv := server.New(cfg, router)
	appLogger.Info().Int("port", cfg.App.Port).Msg("🚀 Service started")
	if err := server.Run(ctx, srv, time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second, appLogger); err != nil {
		appLogger.Error().Err(err).Msg("server stopped with error")
	}
}
