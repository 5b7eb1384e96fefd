package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/config"
	"github.com/keeperzone/keeperzone/internal/middleware"
)

func RegisterStatsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	statsRepo := NewStatsRepository(db)
	guard := NewOwnershipGuard(statsRepo)
	statsController := NewStatsController(statsRepo, guard, appConfig)

	keeperStats := router.Group("/goalkeepers/:goalkeeper_id/stats")
	keeperStats.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		keeperStats.POST("", statsController.CreateStats)
		keeperStats.GET("", statsController.GetStatsForGoalkeeper)
	}

	stats := router.Group("/stats")
	stats.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		stats.GET("/records/:record_id", statsController.GetRecord)
		stats.PUT("/records/:record_id", statsController.UpdateRecord)
		stats.DELETE("/records/:record_id", statsController.DeleteRecord)

		stats.GET("/seasons", statsController.GetSeasons)
		stats.GET("/seasons/:season", statsController.GetSeasonOverview)
		stats.GET("/top-performers", statsController.GetTopPerformers)
		stats.POST("/compare", statsController.CompareGoalkeepers)
	}
}
