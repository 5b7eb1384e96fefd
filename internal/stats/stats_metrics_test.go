package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keeperzone/keeperzone/internal/stats"
)

func TestComputeDerivedMetrics(t *testing.T) {
	tests := []struct {
		name           string
		rec            stats.StatisticsRecord
		goalsPerMatch  float64
		cleanSheetPct  float64
		savePct        float64
		penaltySavePct float64
	}{
		{
			name: "typical season",
			rec: stats.StatisticsRecord{
				MatchesPlayed: 10, GoalsConceded: 8, CleanSheets: 4,
				Saves: 32, PenaltiesFaced: 4, PenaltiesSaved: 1,
			},
			goalsPerMatch:  0.8,
			cleanSheetPct:  40,
			savePct:        80,
			penaltySavePct: 25,
		},
		{
			name: "rounding to two decimals",
			rec: stats.StatisticsRecord{
				MatchesPlayed: 3, GoalsConceded: 1, CleanSheets: 2,
				Saves: 1, PenaltiesFaced: 3, PenaltiesSaved: 1,
			},
			goalsPerMatch:  0.33,
			cleanSheetPct:  66.67,
			savePct:        50,
			penaltySavePct: 33.33,
		},
		{
			name: "zero matches zeroes match-based ratios",
			rec: stats.StatisticsRecord{
				MatchesPlayed: 0, GoalsConceded: 5, CleanSheets: 3,
				Saves: 10, PenaltiesFaced: 2, PenaltiesSaved: 1,
			},
			goalsPerMatch:  0,
			cleanSheetPct:  0,
			savePct:        66.67,
			penaltySavePct: 50,
		},
		{
			name:           "no shots faced",
			rec:            stats.StatisticsRecord{MatchesPlayed: 4, Saves: 0, GoalsConceded: 0},
			goalsPerMatch:  0,
			cleanSheetPct:  0,
			savePct:        0,
			penaltySavePct: 0,
		},
		{
			name:           "no penalties faced",
			rec:            stats.StatisticsRecord{MatchesPlayed: 4, PenaltiesSaved: 2, PenaltiesFaced: 0},
			goalsPerMatch:  0,
			cleanSheetPct:  0,
			savePct:        0,
			penaltySavePct: 0,
		},
		{
			name:           "empty record",
			rec:            stats.StatisticsRecord{},
			goalsPerMatch:  0,
			cleanSheetPct:  0,
			savePct:        0,
			penaltySavePct: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats.ComputeDerivedMetrics(&tt.rec)
			assert.Equal(t, tt.goalsPerMatch, tt.rec.GoalsPerMatch, "goals per match")
			assert.Equal(t, tt.cleanSheetPct, tt.rec.CleanSheetPercentage, "clean sheet percentage")
			assert.Equal(t, tt.savePct, tt.rec.SavePercentage, "save percentage")
			assert.Equal(t, tt.penaltySavePct, tt.rec.PenaltySavePercentage, "penalty save percentage")
		})
	}
}

func TestComputeDerivedMetricsResetsStaleValues(t *testing.T) {
	rec := stats.StatisticsRecord{
		GoalsPerMatch:         9.9,
		CleanSheetPercentage:  9.9,
		SavePercentage:        9.9,
		PenaltySavePercentage: 9.9,
	}
	stats.ComputeDerivedMetrics(&rec)

	assert.Zero(t, rec.GoalsPerMatch)
	assert.Zero(t, rec.CleanSheetPercentage)
	assert.Zero(t, rec.SavePercentage)
	assert.Zero(t, rec.PenaltySavePercentage)
}
