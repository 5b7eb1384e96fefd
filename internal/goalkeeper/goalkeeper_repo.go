package goalkeeper

import (
	"errors"

	"gorm.io/gorm"
)

// GoalkeeperRepository defines the data operations for goalkeepers. Reads are
// coach-scoped through the team join; a goalkeeper owned by another coach is
// indistinguishable from a missing one.
type GoalkeeperRepository interface {
	CreateGoalkeeper(gk *Goalkeeper) error
	GetGoalkeeperByID(coachID, id uint) (*Goalkeeper, error)
	GetGoalkeepersByTeam(coachID, teamID uint, page, limit int) ([]Goalkeeper, int64, error)
	UpdateGoalkeeper(gk *Goalkeeper) error
	DeleteGoalkeeper(id uint) error
}

type goalkeeperRepository struct {
	db *gorm.DB
}

// NewGoalkeeperRepository creates a new instance of GoalkeeperRepository.
func NewGoalkeeperRepository(db *gorm.DB) GoalkeeperRepository {
	return &goalkeeperRepository{db: db}
}

func (r *goalkeeperRepository) CreateGoalkeeper(gk *Goalkeeper) error {
	return r.db.Create(gk).Error
}

func (r *goalkeeperRepository) GetGoalkeeperByID(coachID, id uint) (*Goalkeeper, error) {
	var gk Goalkeeper
	err := r.db.Preload("Team").
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ? AND goalkeepers.id = ?", coachID, id).
		First(&gk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gk, nil
}

func (r *goalkeeperRepository) GetGoalkeepersByTeam(coachID, teamID uint, page, limit int) ([]Goalkeeper, int64, error) {
	var gks []Goalkeeper
	var total int64

	query := r.db.Model(&Goalkeeper{}).
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ? AND goalkeepers.team_id = ?", coachID, teamID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("goalkeepers.name ASC").Offset(offset).Limit(limit).Find(&gks).Error; err != nil {
		return nil, 0, err
	}
	return gks, total, nil
}

func (r *goalkeeperRepository) UpdateGoalkeeper(gk *Goalkeeper) error {
	return r.db.Save(gk).Error
}

func (r *goalkeeperRepository) DeleteGoalkeeper(id uint) error {
	return r.db.Delete(&Goalkeeper{}, id).Error
}
