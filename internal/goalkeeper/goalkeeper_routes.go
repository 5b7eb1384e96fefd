package goalkeeper

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/config"
	"github.com/keeperzone/keeperzone/internal/middleware"
	"github.com/keeperzone/keeperzone/internal/team"
)

func RegisterGoalkeeperRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	gkRepo := NewGoalkeeperRepository(db)
	teamRepo := team.NewTeamRepository(db)
	gkController := NewGoalkeeperController(gkRepo, teamRepo)

	teamKeepers := router.Group("/teams/:team_id/goalkeepers")
	teamKeepers.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		teamKeepers.POST("", gkController.CreateGoalkeeper)
		teamKeepers.GET("", gkController.GetGoalkeepersForTeam)
	}

	keepers := router.Group("/goalkeepers")
	keepers.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		keepers.GET("/:goalkeeper_id", gkController.GetGoalkeeperByID)
		keepers.PUT("/:goalkeeper_id", gkController.UpdateGoalkeeper)
		keepers.DELETE("/:goalkeeper_id", gkController.DeleteGoalkeeper)
	}
}
