package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/service"
	"github.com/maxviazov/league-registry/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.GET("", h.list)
		g.POST("", h.create)
	}
}

type createTeamRequest struct {
	Name          string `json:"name"`
	LeagueName    string `json:"league_name"`
	LeagueCountry string `json:"league_country"`
}

func (h *TeamHandler) create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidBody)
		return
	}
	team, err := h.svc.CreateTeam(c.Request.Context(), service.CreateTeamInput{
		Name:          req.Name,
		LeagueName:    req.LeagueName,
		LeagueCountry: req.LeagueCountry,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, team)
}

func (h *TeamHandler) list(c *gin.Context) {
	f := model.TeamFilter{
		Country:    c.Query("country"),
		LeagueName: c.Query("league_name"),
	}
	teams, err := h.svc.ListTeams(c.Request.Context(), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if teams == nil {
		teams = []model.TeamListing{}
	}
	response.WriteData(c, http.StatusOK, teams)
}
