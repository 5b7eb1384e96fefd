package goalkeeper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keeperzone/keeperzone/internal/coach"
	"github.com/keeperzone/keeperzone/internal/goalkeeper"
	"github.com/keeperzone/keeperzone/internal/team"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&coach.Coach{}, &team.Team{}, &goalkeeper.Goalkeeper{}))
	return db
}

func seedTeam(t *testing.T, db *gorm.DB, name string) (coach.Coach, team.Team) {
	t.Helper()

	c := coach.Coach{Name: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&c).Error)
	tm := team.Team{CoachID: c.ID, Name: name + " U19"}
	require.NoError(t, db.Create(&tm).Error)
	return c, tm
}

func TestGoalkeeperCoachScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := goalkeeper.NewGoalkeeperRepository(db)

	alice, aliceTeam := seedTeam(t, db, "alice")
	bob, _ := seedTeam(t, db, "bob")

	gk := goalkeeper.Goalkeeper{TeamID: aliceTeam.ID, Name: "Keeper"}
	require.NoError(t, repo.CreateGoalkeeper(&gk))

	t.Run("owner sees the goalkeeper with the team preloaded", func(t *testing.T) {
		got, err := repo.GetGoalkeeperByID(alice.ID, gk.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.Team)
		assert.Equal(t, aliceTeam.ID, got.Team.ID)
	})

	t.Run("another coach gets nothing, not an error", func(t *testing.T) {
		got, err := repo.GetGoalkeeperByID(bob.ID, gk.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("team listing is scoped and ordered by name", func(t *testing.T) {
		second := goalkeeper.Goalkeeper{TeamID: aliceTeam.ID, Name: "Backup"}
		require.NoError(t, repo.CreateGoalkeeper(&second))

		gks, total, err := repo.GetGoalkeepersByTeam(alice.ID, aliceTeam.ID, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, gks, 2)
		assert.Equal(t, "Backup", gks[0].Name)

		gks, total, err = repo.GetGoalkeepersByTeam(bob.ID, aliceTeam.ID, 1, 10)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, gks)
	})
}
