package coach

import "gorm.io/gorm"

// Coach is the account entity. Every team, goalkeeper, and statistics record
// in the system is transitively owned by exactly one coach.
type Coach struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Club     string `json:"club"`
}
