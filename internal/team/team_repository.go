package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations. Every lookup
// is scoped by coach id; a team belonging to another coach behaves exactly
// like a missing team.
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(coachID, id uint) (*Team, error)
	GetTeamsByCoach(coachID uint, page, limit int) ([]Team, int64, error)
	UpdateTeam(team *Team) error
	DeleteTeam(coachID, id uint) error
	CountGoalkeepers(teamID uint) (int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(coachID, id uint) (*Team, error) {
	var team Team
	err := r.db.Where("coach_id = ?", coachID).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsByCoach(coachID uint, page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{}).Where("coach_id = ?", coachID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

func (r *teamRepository) DeleteTeam(coachID, id uint) error {
	return r.db.Where("coach_id = ?", coachID).Delete(&Team{}, id).Error
}

// CountGoalkeepers counts goalkeepers still attached to a team. The goalkeeper
// table is addressed by name to keep the package dependency one-way.
func (r *teamRepository) CountGoalkeepers(teamID uint) (int64, error) {
	var count int64
	err := r.db.Table("goalkeepers").Where("team_id = ? AND deleted_at IS NULL", teamID).Count(&count).Error
	return count, err
}
