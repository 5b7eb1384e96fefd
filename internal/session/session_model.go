package session

import (
	"time"

	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/internal/team"
)

// Session is a training session planned or held for a team.
type Session struct {
	gorm.Model
	TeamID          uint       `gorm:"index;not null" json:"team_id"`
	Team            *team.Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Date            time.Time  `gorm:"not null" json:"date"`
	Focus           string     `json:"focus"`
	DurationMinutes int        `json:"duration_minutes"`
	Notes           string     `json:"notes"`
}
