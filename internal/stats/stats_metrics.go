package stats

import "math"

// ComputeDerivedMetrics fills the derived ratio fields from the raw counters.
// Every denominator is guarded, so a record with zero matches, shots, or
// penalties derives to zeros instead of NaN. All values are rounded to two
// decimal places. This never fails on a well-formed record.
func ComputeDerivedMetrics(rec *StatisticsRecord) {
	rec.GoalsPerMatch = 0
	rec.CleanSheetPercentage = 0
	rec.SavePercentage = 0
	rec.PenaltySavePercentage = 0

	if rec.MatchesPlayed > 0 {
		rec.GoalsPerMatch = round2(float64(rec.GoalsConceded) / float64(rec.MatchesPlayed))
		rec.CleanSheetPercentage = round2(float64(rec.CleanSheets) / float64(rec.MatchesPlayed) * 100)
	}

	if shots := rec.Saves + rec.GoalsConceded; shots > 0 {
		rec.SavePercentage = round2(float64(rec.Saves) / float64(shots) * 100)
	}

	if rec.PenaltiesFaced > 0 {
		rec.PenaltySavePercentage = round2(float64(rec.PenaltiesSaved) / float64(rec.PenaltiesFaced) * 100)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
