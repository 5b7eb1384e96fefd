package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/internal/coach"
)

// AuthRepository defines the data operations behind coach authentication.
type AuthRepository interface {
	CreateCoach(c *coach.Coach) error
	FindCoachByEmail(email string) (*coach.Coach, error)
	GetCoachByID(id uint) (*coach.Coach, error)

	CreateRefreshToken(rt *RefreshToken) error
	FindRefreshToken(tokenStr string) (*RefreshToken, error)
	RevokeRefreshToken(tokenStr string) error
	RevokeAllForCoach(coachID uint) error
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateCoach(c *coach.Coach) error {
	return r.db.Create(c).Error
}

func (r *authRepository) FindCoachByEmail(email string) (*coach.Coach, error) {
	var c coach.Coach
	err := r.db.Where("email = ?", email).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *authRepository) GetCoachByID(id uint) (*coach.Coach, error) {
	var c coach.Coach
	err := r.db.First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *authRepository) CreateRefreshToken(rt *RefreshToken) error {
	return r.db.Create(rt).Error
}

func (r *authRepository) FindRefreshToken(tokenStr string) (*RefreshToken, error) {
	var rt RefreshToken
	err := r.db.Where("token = ? AND revoked = ? AND expires_at > ?", tokenStr, false, time.Now()).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) RevokeRefreshToken(tokenStr string) error {
	return r.db.Model(&RefreshToken{}).Where("token = ?", tokenStr).Update("revoked", true).Error
}

func (r *authRepository) RevokeAllForCoach(coachID uint) error {
	return r.db.Model(&RefreshToken{}).Where("coach_id = ?", coachID).Update("revoked", true).Error
}
