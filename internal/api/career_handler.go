package api

import (
	"errors"
	"net/http"

	"CareerMode/internal/model"
	"CareerMode/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CareerHandler 新游戏 / 存档 / 联赛球队 / 积分榜接口
type CareerHandler struct {
	data   *service.DataManager
	logger *logrus.Logger
}

func NewCareerHandler(data *service.DataManager, logger *logrus.Logger) *CareerHandler {
	return &CareerHandler{data: data, logger: logger}
}

// ListTeamTemplates 选队界面可选球队 GET /api/team-templates
func (h *CareerHandler) ListTeamTemplates(c *gin.Context) {
	list, _ := h.data.ListTeamTemplates(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"list": list})
}

// CreateCareer 新生涯 POST /api/careers
// body: {"coach_name":"...","team_template_id":"...","league_name":"","year":0}
func (h *CareerHandler) CreateCareer(c *gin.Context) {
	var req model.NewCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	career, err := h.data.CreateNewCareer(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoachName) || errors.Is(err, service.ErrUnknownTeam) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("CreateCareer failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, career)
}

// ListCareers 存档列表 GET /api/careers
func (h *CareerHandler) ListCareers(c *gin.Context) {
	list, _ := h.data.ListCareers(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"list": list, "total": len(list)})
}

// GetCareer 存档详情 GET /api/careers/:career_id
func (h *CareerHandler) GetCareer(c *gin.Context) {
	career, _ := h.data.GetCareer(c.Request.Context(), c.Param("career_id"))
	if career == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
		return
	}
	c.JSON(http.StatusOK, career)
}

// ListTeams 生涯当前联赛的全部球队 GET /api/careers/:career_id/teams
func (h *CareerHandler) ListTeams(c *gin.Context) {
	teams, _ := h.data.GetTeams(c.Request.Context(), c.Param("career_id"))
	c.JSON(http.StatusOK, gin.H{"list": teams})
}

// TeamStandings 积分榜 GET /api/careers/:career_id/stats/teams
func (h *CareerHandler) TeamStandings(c *gin.Context) {
	rows, _ := h.data.GetStandings(c.Request.Context(), c.Param("career_id"))
	c.JSON(http.StatusOK, gin.H{"list": rows})
}

// PlayerStats 球员生涯统计 GET /api/careers/:career_id/stats/players?team_id=
func (h *CareerHandler) PlayerStats(c *gin.Context) {
	rows, _ := h.data.GetPlayerStats(c.Request.Context(), c.Param("career_id"), c.Query("team_id"))
	c.JSON(http.StatusOK, gin.H{"list": rows})
}
