package api

import (
	"CareerMode/internal/metrics"
	"CareerMode/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes 注册全部API路由
func RegisterRoutes(r *gin.Engine, data *service.DataManager, logger *logrus.Logger) {
	r.Use(metrics.GinMiddleware())
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	careerHandler := NewCareerHandler(data, logger)
	r.GET("/api/team-templates", careerHandler.ListTeamTemplates)
	r.POST("/api/careers", careerHandler.CreateCareer)
	r.GET("/api/careers", careerHandler.ListCareers)
	r.GET("/api/careers/:career_id", careerHandler.GetCareer)
	r.GET("/api/careers/:career_id/teams", careerHandler.ListTeams)
	r.GET("/api/careers/:career_id/stats/teams", careerHandler.TeamStandings)
	r.GET("/api/careers/:career_id/stats/players", careerHandler.PlayerStats)

	teamHandler := NewTeamHandler(data, logger)
	r.GET("/api/teams/:team_id", teamHandler.GetTeam)
	r.GET("/api/teams/:team_id/players", teamHandler.Roster)
	r.GET("/api/seasons/:season_id", teamHandler.GetSeason)
	r.GET("/api/seasons/:season_id/matches", teamHandler.ListMatches)
	r.GET("/api/seasons/:season_id/stats/teams", teamHandler.SeasonStandings)
	r.GET("/api/matches/:match_id/stats/teams", teamHandler.MatchStats)

	eventsHandler := NewEventsHandler(data, logger)
	r.GET("/api/events", eventsHandler.Stream)
}
