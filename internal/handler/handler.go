package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/league-registry/internal/service"
)

// NewRouter builds the gin engine with recovery, request logging and every route mounted.
func NewRouter(logger zerolog.Logger, repo Pinger, leagueSvc service.LeagueService, teamSvc service.TeamService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	Register(r, repo, leagueSvc, teamSvc)
	return r
}

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, leagueSvc service.LeagueService, teamSvc service.TeamService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIPrefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewLeagueHandler(leagueSvc).Register(api)
		NewTeamHandler(teamSvc).Register(api)
	}
}
