package main

import (
	"github.com/charmbracelet/log"

	"github.com/keeperzone/keeperzone/config"
	_ "github.com/keeperzone/keeperzone/docs"
	"github.com/keeperzone/keeperzone/internal/auth"
	"github.com/keeperzone/keeperzone/internal/coach"
	"github.com/keeperzone/keeperzone/internal/goalkeeper"
	"github.com/keeperzone/keeperzone/internal/session"
	"github.com/keeperzone/keeperzone/internal/stats"
	"github.com/keeperzone/keeperzone/internal/team"
	"github.com/keeperzone/keeperzone/routes"
)

// @title KeeperZone REST API
// @version 1.0
// @description Roster, session, and performance-statistics API for goalkeeper coaches.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatal("failed to initialize application", "error", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&coach.Coach{}, &auth.RefreshToken{},
		&team.Team{}, &goalkeeper.Goalkeeper{},
		&session.Session{}, &stats.StatisticsRecord{},
	)
	if err != nil {
		log.Fatal("AutoMigrate failed", "error", err)
	}
	log.Info("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("failed to run server", "error", err)
	}
}
