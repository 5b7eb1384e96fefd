package team

import "gorm.io/gorm"

// Team is a coach-owned roster grouping. The coach_id column is the root of
// the ownership chain the statistics guard traverses.
type Team struct {
	gorm.Model
	CoachID  uint   `gorm:"index;not null" json:"coach_id"`
	Name     string `gorm:"not null" json:"name"`
	Club     string `json:"club"`
	AgeGroup string `json:"age_group"`
	Notes    string `json:"notes"`
}
