package session

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/config"
	"github.com/keeperzone/keeperzone/internal/middleware"
	"github.com/keeperzone/keeperzone/internal/team"
)

func RegisterSessionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	sessionRepo := NewSessionRepository(db)
	teamRepo := team.NewTeamRepository(db)
	sessionController := NewSessionController(sessionRepo, teamRepo)

	teamSessions := router.Group("/teams/:team_id/sessions")
	teamSessions.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		teamSessions.POST("", sessionController.CreateSession)
		teamSessions.GET("", sessionController.GetSessionsForTeam)
	}

	sessions := router.Group("/sessions")
	sessions.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		sessions.PUT("/:session_id", sessionController.UpdateSession)
		sessions.DELETE("/:session_id", sessionController.DeleteSession)
	}
}
