package goalkeeper

import (
	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/internal/team"
)

// Goalkeeper belongs to exactly one team and through it to one coach.
type Goalkeeper struct {
	gorm.Model
	TeamID       uint       `gorm:"index;not null" json:"team_id"`
	Team         *team.Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Name         string     `gorm:"not null" json:"name"`
	BirthYear    int        `json:"birth_year"`
	HeightCM     int        `json:"height_cm"`
	WeightKG     int        `json:"weight_kg"`
	Foot         string     `json:"foot"`
	JerseyNumber int        `json:"jersey_number"`
}
