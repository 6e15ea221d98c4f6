package api

import (
	"net/http"

	"CareerMode/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TeamHandler 球队阵容与赛季接口
type TeamHandler struct {
	data   *service.DataManager
	logger *logrus.Logger
}

func NewTeamHandler(data *service.DataManager, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{data: data, logger: logger}
}

// Roster 球队阵容 GET /api/teams/:team_id/players
func (h *TeamHandler) Roster(c *gin.Context) {
	players, _ := h.data.GetRoster(c.Request.Context(), c.Param("team_id"))
	c.JSON(http.StatusOK, gin.H{"list": players})
}

// GetTeam 球队详情 GET /api/teams/:team_id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, _ := h.data.GetTeam(c.Request.Context(), c.Param("team_id"))
	if team == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetSeason 赛季详情 GET /api/seasons/:season_id
func (h *TeamHandler) GetSeason(c *gin.Context) {
	season, _ := h.data.GetSeason(c.Request.Context(), c.Param("season_id"))
	if season == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "season not found"})
		return
	}
	c.JSON(http.StatusOK, season)
}

// ListMatches 赛季比赛 GET /api/seasons/:season_id/matches
func (h *TeamHandler) ListMatches(c *gin.Context) {
	matches, _ := h.data.ListMatches(c.Request.Context(), c.Param("season_id"))
	c.JSON(http.StatusOK, gin.H{"list": matches})
}

// SeasonStandings 赛季积分榜 GET /api/seasons/:season_id/stats/teams
func (h *TeamHandler) SeasonStandings(c *gin.Context) {
	rows, _ := h.data.GetSeasonStandings(c.Request.Context(), c.Param("season_id"))
	c.JSON(http.StatusOK, gin.H{"list": rows})
}

// MatchStats 单场球队统计 GET /api/matches/:match_id/stats/teams
func (h *TeamHandler) MatchStats(c *gin.Context) {
	rows, _ := h.data.GetMatchStats(c.Request.Context(), c.Param("match_id"))
	c.JSON(http.StatusOK, gin.H{"list": rows})
}
