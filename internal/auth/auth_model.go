package auth

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken is an opaque, persisted refresh token. Tokens are rotated on
// every refresh and revoked on logout.
type RefreshToken struct {
	gorm.Model
	CoachID   uint      `gorm:"index;not null" json:"coach_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}
