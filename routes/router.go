package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/keeperzone/keeperzone/config"
	"github.com/keeperzone/keeperzone/internal/auth"
	"github.com/keeperzone/keeperzone/internal/goalkeeper"
	"github.com/keeperzone/keeperzone/internal/session"
	"github.com/keeperzone/keeperzone/internal/stats"
	"github.com/keeperzone/keeperzone/internal/team"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := config.DB
	cfg := config.GetConfig()

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg)
	team.RegisterTeamRoutes(api, db, cfg)
	goalkeeper.RegisterGoalkeeperRoutes(api, db, cfg)
	session.RegisterSessionRoutes(api, db, cfg)
	stats.RegisterStatsRoutes(api, db, cfg)

	return r
}
