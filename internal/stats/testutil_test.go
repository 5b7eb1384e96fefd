package stats_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keeperzone/keeperzone/internal/coach"
	"github.com/keeperzone/keeperzone/internal/goalkeeper"
	"github.com/keeperzone/keeperzone/internal/stats"
	"github.com/keeperzone/keeperzone/internal/team"
)

// setupTestDB creates an isolated in-memory SQLite database with the full
// ownership chain migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&coach.Coach{}, &team.Team{}, &goalkeeper.Goalkeeper{}, &stats.StatisticsRecord{},
	))
	return db
}

type roster struct {
	coach  coach.Coach
	team   team.Team
	keeper goalkeeper.Goalkeeper
}

// seedRoster creates a coach with one team and one goalkeeper.
func seedRoster(t *testing.T, db *gorm.DB, name string) roster {
	t.Helper()

	c := coach.Coach{Name: name, Email: fmt.Sprintf("%s@example.com", name), Password: "x"}
	require.NoError(t, db.Create(&c).Error)

	tm := team.Team{CoachID: c.ID, Name: name + " U19"}
	require.NoError(t, db.Create(&tm).Error)

	gk := goalkeeper.Goalkeeper{TeamID: tm.ID, Name: name + " Keeper"}
	require.NoError(t, db.Create(&gk).Error)

	return roster{coach: c, team: tm, keeper: gk}
}

// seedKeeper adds another goalkeeper to an existing team.
func seedKeeper(t *testing.T, db *gorm.DB, teamID uint, name string) goalkeeper.Goalkeeper {
	t.Helper()

	gk := goalkeeper.Goalkeeper{TeamID: teamID, Name: name}
	require.NoError(t, db.Create(&gk).Error)
	return gk
}

// seedRecord persists a statistics record through the repository.
func seedRecord(t *testing.T, repo stats.StatsRepository, rec stats.StatisticsRecord) stats.StatisticsRecord {
	t.Helper()

	require.NoError(t, repo.CreateRecord(&rec))
	return rec
}
