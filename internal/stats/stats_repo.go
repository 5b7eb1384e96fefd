package stats

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository defines the data operations for statistics records,
// including the ownership lookups the guard is built on and the ranking and
// comparison queries.
type StatsRepository interface {
	CreateRecord(rec *StatisticsRecord) error
	GetRecordByID(id uint) (*StatisticsRecord, error)
	UpdateRecord(id uint, fields map[string]interface{}) (*StatisticsRecord, error)
	DeleteRecord(id uint) error

	ListByGoalkeeper(goalkeeperID uint) ([]StatisticsRecord, error)
	ListBySeason(coachID uint, season string) ([]StatisticsRecord, error)
	ListSeasons(coachID uint) ([]string, error)

	TopPerformers(coachID uint, season string, limit, minMatches int) ([]StatisticsRecord, error)
	CompareRecords(coachID uint, goalkeeperIDs []uint, season string) ([]StatisticsRecord, error)

	// Ownership lookups used by the guard.
	GetOwnedRecord(coachID, recordID uint) (*StatisticsRecord, error)
	RecordExists(recordID uint) (bool, error)
	GoalkeeperOwnedByCoach(coachID, goalkeeperID uint) (bool, error)
	GoalkeeperExists(goalkeeperID uint) (bool, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// counterColumns are the raw columns a create may overwrite when it lands on
// an existing (goalkeeper_id, season) row.
var counterColumns = []string{
	"matches_played", "minutes_played", "goals_conceded", "clean_sheets",
	"saves", "penalties_saved", "penalties_faced", "yellow_cards", "red_cards",
	"updated_at",
}

// CreateRecord inserts a record, or updates the counters in place when a row
// for the same (goalkeeper_id, season) already exists. The unique index plus
// this upsert removes the create/create race entirely.
func (r *statsRepository) CreateRecord(rec *StatisticsRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "goalkeeper_id"}, {Name: "season"}},
		DoUpdates: clause.AssignmentColumns(counterColumns),
	}).Create(rec).Error
}

func (r *statsRepository) GetRecordByID(id uint) (*StatisticsRecord, error) {
	var rec StatisticsRecord
	err := r.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// UpdateRecord merges only the supplied fields into the record. An empty
// partial still refreshes updated_at, leaving every counter untouched.
func (r *statsRepository) UpdateRecord(id uint, fields map[string]interface{}) (*StatisticsRecord, error) {
	if len(fields) == 0 {
		if err := r.db.Model(&StatisticsRecord{}).Where("id = ?", id).Update("updated_at", time.Now()).Error; err != nil {
			return nil, err
		}
	} else {
		if err := r.db.Model(&StatisticsRecord{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetRecordByID(id)
}

// DeleteRecord removes the record permanently; deleting an already-absent id
// is a no-op. A hard delete keeps the (goalkeeper_id, season) unique index
// free for a later re-create.
func (r *statsRepository) DeleteRecord(id uint) error {
	return r.db.Unscoped().Delete(&StatisticsRecord{}, id).Error
}

func (r *statsRepository) ListByGoalkeeper(goalkeeperID uint) ([]StatisticsRecord, error) {
	var recs []StatisticsRecord
	err := r.db.Where("goalkeeper_id = ?", goalkeeperID).
		Order("season DESC").
		Find(&recs).Error
	return recs, err
}

func (r *statsRepository) ListBySeason(coachID uint, season string) ([]StatisticsRecord, error) {
	var recs []StatisticsRecord
	err := r.db.Preload("Goalkeeper.Team").
		Joins("JOIN goalkeepers ON goalkeepers.id = statistics_records.goalkeeper_id").
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ? AND statistics_records.season = ?", coachID, season).
		Order("statistics_records.matches_played DESC").
		Find(&recs).Error
	return recs, err
}

func (r *statsRepository) ListSeasons(coachID uint) ([]string, error) {
	seasons := make([]string, 0)
	err := r.db.Model(&StatisticsRecord{}).
		Joins("JOIN goalkeepers ON goalkeepers.id = statistics_records.goalkeeper_id").
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ?", coachID).
		Distinct("statistics_records.season").
		Order("statistics_records.season DESC").
		Pluck("statistics_records.season", &seasons).Error
	return seasons, err
}

// TopPerformers ranks the coach's goalkeepers for a season. Only records with
// at least minMatches matches played qualify. Ordering is clean-sheet
// percentage, then save percentage, then record id so exact ties stay stable.
func (r *statsRepository) TopPerformers(coachID uint, season string, limit, minMatches int) ([]StatisticsRecord, error) {
	var recs []StatisticsRecord
	err := r.db.Preload("Goalkeeper.Team").
		Joins("JOIN goalkeepers ON goalkeepers.id = statistics_records.goalkeeper_id").
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ? AND statistics_records.season = ? AND statistics_records.matches_played >= ?",
			coachID, season, minMatches).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	for i := range recs {
		ComputeDerivedMetrics(&recs[i])
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].CleanSheetPercentage != recs[j].CleanSheetPercentage {
			return recs[i].CleanSheetPercentage > recs[j].CleanSheetPercentage
		}
		if recs[i].SavePercentage != recs[j].SavePercentage {
			return recs[i].SavePercentage > recs[j].SavePercentage
		}
		return recs[i].ID < recs[j].ID
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// CompareRecords returns the derived season rows for an explicit goalkeeper
// set, ordered by matches played. Goalkeepers without a record for the season
// are silently omitted.
func (r *statsRepository) CompareRecords(coachID uint, goalkeeperIDs []uint, season string) ([]StatisticsRecord, error) {
	var recs []StatisticsRecord
	err := r.db.Preload("Goalkeeper.Team").
		Joins("JOIN goalkeepers ON goalkeepers.id = statistics_records.goalkeeper_id").
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ? AND statistics_records.season = ? AND statistics_records.goalkeeper_id IN ?",
			coachID, season, goalkeeperIDs).
		Order("statistics_records.matches_played DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	for i := range recs {
		ComputeDerivedMetrics(&recs[i])
	}
	return recs, nil
}

// GetOwnedRecord resolves a record only when the requesting coach owns the
// goalkeeper's team.
func (r *statsRepository) GetOwnedRecord(coachID, recordID uint) (*StatisticsRecord, error) {
	var rec StatisticsRecord
	err := r.db.Preload("Goalkeeper.Team").
		Joins("JOIN goalkeepers ON goalkeepers.id = statistics_records.goalkeeper_id").
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ? AND statistics_records.id = ?", coachID, recordID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *statsRepository) RecordExists(recordID uint) (bool, error) {
	var count int64
	err := r.db.Model(&StatisticsRecord{}).Where("id = ?", recordID).Count(&count).Error
	return count > 0, err
}

func (r *statsRepository) GoalkeeperOwnedByCoach(coachID, goalkeeperID uint) (bool, error) {
	var count int64
	err := r.db.Table("goalkeepers").
		Joins("JOIN teams ON teams.id = goalkeepers.team_id").
		Where("teams.coach_id = ? AND goalkeepers.id = ? AND goalkeepers.deleted_at IS NULL", coachID, goalkeeperID).
		Count(&count).Error
	return count > 0, err
}

func (r *statsRepository) GoalkeeperExists(goalkeeperID uint) (bool, error) {
	var count int64
	err := r.db.Table("goalkeepers").
		Where("id = ? AND deleted_at IS NULL", goalkeeperID).
		Count(&count).Error
	return count > 0, err
}
