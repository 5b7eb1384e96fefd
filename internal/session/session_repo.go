package session

import (
	"errors"

	"gorm.io/gorm"
)

// SessionRepository defines the data operations for training sessions,
// coach-scoped through the team join.
type SessionRepository interface {
	CreateSession(s *Session) error
	GetSessionByID(coachID, id uint) (*Session, error)
	GetSessionsByTeam(coachID, teamID uint, page, limit int) ([]Session, int64, error)
	UpdateSession(s *Session) error
	DeleteSession(id uint) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(s *Session) error {
	return r.db.Create(s).Error
}

func (r *sessionRepository) GetSessionByID(coachID, id uint) (*Session, error) {
	var s Session
	err := r.db.Joins("JOIN teams ON teams.id = sessions.team_id").
		Where("teams.coach_id = ? AND sessions.id = ?", coachID, id).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) GetSessionsByTeam(coachID, teamID uint, page, limit int) ([]Session, int64, error) {
	var sessions []Session
	var total int64

	query := r.db.Model(&Session{}).
		Joins("JOIN teams ON teams.id = sessions.team_id").
		Where("teams.coach_id = ? AND sessions.team_id = ?", coachID, teamID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("sessions.date DESC").Offset(offset).Limit(limit).Find(&sessions).Error; err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *sessionRepository) UpdateSession(s *Session) error {
	return r.db.Save(s).Error
}

func (r *sessionRepository) DeleteSession(id uint) error {
	return r.db.Delete(&Session{}, id).Error
}
