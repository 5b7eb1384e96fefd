package stats

import (
	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/internal/goalkeeper"
)

// StatisticsRecord holds the raw per-season counters for one goalkeeper.
// The composite unique index makes (goalkeeper_id, season) a hard constraint,
// so concurrent creates for the same pair collapse into one row via the
// upsert in the repository.
//
// The four percentage/ratio fields are derived on read and never persisted.
type StatisticsRecord struct {
	gorm.Model
	GoalkeeperID uint                   `gorm:"not null;uniqueIndex:idx_keeper_season" json:"goalkeeper_id"`
	Goalkeeper   *goalkeeper.Goalkeeper `gorm:"foreignKey:GoalkeeperID" json:"goalkeeper,omitempty"`

	// Season is an opaque label ("2024-2025"), grouped and sorted
	// lexicographically, never parsed as a date.
	Season string `gorm:"not null;uniqueIndex:idx_keeper_season" json:"season"`

	MatchesPlayed  int `gorm:"default:0" json:"matches_played"`
	MinutesPlayed  int `gorm:"default:0" json:"minutes_played"`
	GoalsConceded  int `gorm:"default:0" json:"goals_conceded"`
	CleanSheets    int `gorm:"default:0" json:"clean_sheets"`
	Saves          int `gorm:"default:0" json:"saves"`
	PenaltiesSaved int `gorm:"default:0" json:"penalties_saved"`
	PenaltiesFaced int `gorm:"default:0" json:"penalties_faced"`
	YellowCards    int `gorm:"default:0" json:"yellow_cards"`
	RedCards       int `gorm:"default:0" json:"red_cards"`

	GoalsPerMatch         float64 `gorm:"-" json:"goals_per_match"`
	CleanSheetPercentage  float64 `gorm:"-" json:"clean_sheet_percentage"`
	SavePercentage        float64 `gorm:"-" json:"save_percentage"`
	PenaltySavePercentage float64 `gorm:"-" json:"penalty_save_percentage"`
}
