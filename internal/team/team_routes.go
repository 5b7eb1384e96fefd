package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/config"
	"github.com/keeperzone/keeperzone/internal/middleware"
)

func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	teams := router.Group("/teams")
	teams.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		teams.POST("", teamController.CreateTeam)
		teams.GET("", teamController.GetTeams)
		teams.GET("/:team_id", teamController.GetTeamByID)
		teams.PUT("/:team_id", teamController.UpdateTeam)
		teams.DELETE("/:team_id", teamController.DeleteTeam)
	}
}
