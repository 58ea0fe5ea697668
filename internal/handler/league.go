package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/league-registry/internal/model"
	"github.com/maxviazov/league-registry/internal/service"
	"github.com/maxviazov/league-registry/pkg/response"
)

type LeagueHandler struct {
	svc service.LeagueService
}

func NewLeagueHandler(svc service.LeagueService) *LeagueHandler { return &LeagueHandler{svc: svc} }

func (h *LeagueHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/leagues")
	{
		g.GET("", h.list)
		g.POST("", h.create)
	}
}

type createLeagueRequest struct {
	Name    string  `json:"name"`
	Country *string `json:"country"`
}

func (h *LeagueHandler) create(c *gin.Context) {
	var req createLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// parser details stay internal
		response.WriteError(c, service.ErrInvalidBody)
		return
	}
	league, err := h.svc.CreateLeague(c.Request.Context(), req.Name, req.Country)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, league)
}

func (h *LeagueHandler) list(c *gin.Context) {
	f := model.LeagueFilter{Country: c.Query("country")}
	leagues, err := h.svc.ListLeagues(c.Request.Context(), f)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if leagues == nil {
		leagues = []model.League{}
	}
	response.WriteData(c, http.StatusOK, leagues)
}
