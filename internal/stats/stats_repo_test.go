package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperzone/keeperzone/internal/stats"
)

func TestCreateRecordUpsertsOnSamePair(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")

	seedRecord(t, repo, stats.StatisticsRecord{
		GoalkeeperID: r.keeper.ID, Season: "2024-2025", MatchesPlayed: 5, Saves: 10,
	})

	// A second create for the same goalkeeper and season must not add a row.
	require.NoError(t, repo.CreateRecord(&stats.StatisticsRecord{
		GoalkeeperID: r.keeper.ID, Season: "2024-2025", MatchesPlayed: 8, Saves: 20,
	}))

	var count int64
	require.NoError(t, db.Model(&stats.StatisticsRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	recs, err := repo.ListByGoalkeeper(r.keeper.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 8, recs[0].MatchesPlayed)
	assert.Equal(t, 20, recs[0].Saves)
}

func TestUpdateRecordMergesOnlySuppliedFields(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")

	rec := seedRecord(t, repo, stats.StatisticsRecord{
		GoalkeeperID: r.keeper.ID, Season: "2024-2025",
		MatchesPlayed: 10, GoalsConceded: 7, CleanSheets: 4, Saves: 30,
	})

	updated, err := repo.UpdateRecord(rec.ID, map[string]interface{}{
		"goals_conceded": 9,
		"saves":          35,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 9, updated.GoalsConceded)
	assert.Equal(t, 35, updated.Saves)
	assert.Equal(t, 10, updated.MatchesPlayed, "omitted counter must keep its value")
	assert.Equal(t, 4, updated.CleanSheets, "omitted counter must keep its value")
	assert.Equal(t, "2024-2025", updated.Season)
}

func TestUpdateRecordEmptyPartialLeavesCountersUntouched(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")

	rec := seedRecord(t, repo, stats.StatisticsRecord{
		GoalkeeperID: r.keeper.ID, Season: "2024-2025",
		MatchesPlayed: 10, GoalsConceded: 7, CleanSheets: 4, Saves: 30,
		PenaltiesSaved: 2, PenaltiesFaced: 5, YellowCards: 1, RedCards: 0, MinutesPlayed: 900,
	})
	before, err := repo.GetRecordByID(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, before)

	updated, err := repo.UpdateRecord(rec.ID, map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, before.MatchesPlayed, updated.MatchesPlayed)
	assert.Equal(t, before.MinutesPlayed, updated.MinutesPlayed)
	assert.Equal(t, before.GoalsConceded, updated.GoalsConceded)
	assert.Equal(t, before.CleanSheets, updated.CleanSheets)
	assert.Equal(t, before.Saves, updated.Saves)
	assert.Equal(t, before.PenaltiesSaved, updated.PenaltiesSaved)
	assert.Equal(t, before.PenaltiesFaced, updated.PenaltiesFaced)
	assert.Equal(t, before.YellowCards, updated.YellowCards)
	assert.Equal(t, before.RedCards, updated.RedCards)
	assert.Equal(t, before.Season, updated.Season)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))
}

func TestDeleteRecordIsIdempotentAndFreesThePair(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")

	rec := seedRecord(t, repo, stats.StatisticsRecord{
		GoalkeeperID: r.keeper.ID, Season: "2024-2025", MatchesPlayed: 3,
	})

	require.NoError(t, repo.DeleteRecord(rec.ID))
	require.NoError(t, repo.DeleteRecord(rec.ID), "second delete must be a no-op")

	got, err := repo.GetRecordByID(rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The pair is reusable after a delete.
	require.NoError(t, repo.CreateRecord(&stats.StatisticsRecord{
		GoalkeeperID: r.keeper.ID, Season: "2024-2025", MatchesPlayed: 1,
	}))
}

func TestListByGoalkeeperOrdersNewestSeasonFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")

	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2022-2023"})
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2024-2025"})
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2023-2024"})

	recs, err := repo.ListByGoalkeeper(r.keeper.ID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "2024-2025", recs[0].Season)
	assert.Equal(t, "2023-2024", recs[1].Season)
	assert.Equal(t, "2022-2023", recs[2].Season)
}

func TestListSeasons(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")

	t.Run("empty store returns empty list", func(t *testing.T) {
		seasons, err := repo.ListSeasons(r.coach.ID)
		require.NoError(t, err)
		assert.Empty(t, seasons)
	})

	t.Run("distinct labels newest first", func(t *testing.T) {
		second := seedKeeper(t, db, r.team.ID, "Backup")
		seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2023-2024"})
		seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2024-2025"})
		seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: second.ID, Season: "2024-2025"})

		seasons, err := repo.ListSeasons(r.coach.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-2025", "2023-2024"}, seasons)
	})

	t.Run("another coach's seasons stay invisible", func(t *testing.T) {
		other := seedRoster(t, db, "bob")
		seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: other.keeper.ID, Season: "1999-2000"})

		seasons, err := repo.ListSeasons(r.coach.ID)
		require.NoError(t, err)
		assert.NotContains(t, seasons, "1999-2000")
	})
}

func TestListBySeasonOrdersByMatchesPlayed(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")
	second := seedKeeper(t, db, r.team.ID, "Backup")

	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2024", MatchesPlayed: 6})
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: second.ID, Season: "2024", MatchesPlayed: 12})

	recs, err := repo.ListBySeason(r.coach.ID, "2024")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, second.ID, recs[0].GoalkeeperID)
	assert.Equal(t, r.keeper.ID, recs[1].GoalkeeperID)

	// Display names ride along for the overview rows.
	require.NotNil(t, recs[0].Goalkeeper)
	assert.Equal(t, "Backup", recs[0].Goalkeeper.Name)
	require.NotNil(t, recs[0].Goalkeeper.Team)
	assert.Equal(t, "alice U19", recs[0].Goalkeeper.Team.Name)
}

func TestTopPerformers(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")
	keeperB := seedKeeper(t, db, r.team.ID, "B")
	keeperC := seedKeeper(t, db, r.team.ID, "C")

	// A: 70% clean sheets, B: 83.33%, C: below the sample threshold.
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2024", MatchesPlayed: 10, CleanSheets: 7})
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: keeperB.ID, Season: "2024", MatchesPlayed: 6, CleanSheets: 5})
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: keeperC.ID, Season: "2024", MatchesPlayed: 4, CleanSheets: 4})

	ranked, err := repo.TopPerformers(r.coach.ID, "2024", 10, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 2, "below-threshold keeper must be excluded")
	assert.Equal(t, keeperB.ID, ranked[0].GoalkeeperID)
	assert.Equal(t, r.keeper.ID, ranked[1].GoalkeeperID)
	assert.Equal(t, 83.33, ranked[0].CleanSheetPercentage)
	assert.Equal(t, 70.0, ranked[1].CleanSheetPercentage)
}

func TestTopPerformersTieBreaks(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")
	keeperB := seedKeeper(t, db, r.team.ID, "B")
	keeperC := seedKeeper(t, db, r.team.ID, "C")

	// Equal clean-sheet percentage; save percentage breaks the tie.
	recA := seedRecord(t, repo, stats.StatisticsRecord{
		GoalkeeperID: r.keeper.ID, Season: "2024", MatchesPlayed: 10, CleanSheets: 5, Saves: 40, GoalsConceded: 10,
	})
	recB := seedRecord(t, repo, stats.StatisticsRecord{
		GoalkeeperID: keeperB.ID, Season: "2024", MatchesPlayed: 10, CleanSheets: 5, Saves: 45, GoalsConceded: 5,
	})
	// Fully tied with A; record id decides deterministically.
	recC := seedRecord(t, repo, stats.StatisticsRecord{
		GoalkeeperID: keeperC.ID, Season: "2024", MatchesPlayed: 10, CleanSheets: 5, Saves: 40, GoalsConceded: 10,
	})

	ranked, err := repo.TopPerformers(r.coach.ID, "2024", 10, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, recB.ID, ranked[0].ID)
	assert.Equal(t, recA.ID, ranked[1].ID)
	assert.Equal(t, recC.ID, ranked[2].ID)
}

func TestTopPerformersScopingAndLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")
	other := seedRoster(t, db, "bob")

	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2024", MatchesPlayed: 9, CleanSheets: 3})
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: other.keeper.ID, Season: "2024", MatchesPlayed: 20, CleanSheets: 20})

	ranked, err := repo.TopPerformers(r.coach.ID, "2024", 10, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 1, "another coach's roster must not leak into the ranking")
	assert.Equal(t, r.keeper.ID, ranked[0].GoalkeeperID)

	t.Run("empty result is a list, not an error", func(t *testing.T) {
		ranked, err := repo.TopPerformers(r.coach.ID, "1990", 10, 5)
		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("limit truncates", func(t *testing.T) {
		second := seedKeeper(t, db, r.team.ID, "Backup")
		seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: second.ID, Season: "2024", MatchesPlayed: 8, CleanSheets: 8})

		ranked, err := repo.TopPerformers(r.coach.ID, "2024", 1, 5)
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, second.ID, ranked[0].GoalkeeperID)
	})
}

func TestCompareRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := stats.NewStatsRepository(db)
	r := seedRoster(t, db, "alice")
	keeperB := seedKeeper(t, db, r.team.ID, "B")
	keeperC := seedKeeper(t, db, r.team.ID, "C")

	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: r.keeper.ID, Season: "2024", MatchesPlayed: 10, Saves: 20, GoalsConceded: 10})
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: keeperB.ID, Season: "2024", MatchesPlayed: 15, Saves: 30, GoalsConceded: 10})
	// keeperC has no record for the requested season.
	seedRecord(t, repo, stats.StatisticsRecord{GoalkeeperID: keeperC.ID, Season: "2023", MatchesPlayed: 5})

	rows, err := repo.CompareRecords(r.coach.ID, []uint{r.keeper.ID, keeperB.ID, keeperC.ID}, "2024")
	require.NoError(t, err)
	require.Len(t, rows, 2, "a goalkeeper without a record for the season is omitted")

	assert.Equal(t, keeperB.ID, rows[0].GoalkeeperID, "ordered by matches played descending")
	assert.Equal(t, r.keeper.ID, rows[1].GoalkeeperID)
	assert.Equal(t, 75.0, rows[0].SavePercentage)
	assert.Equal(t, 66.67, rows[1].SavePercentage)
}
