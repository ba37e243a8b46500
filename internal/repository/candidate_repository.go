package repository

import (
	"github.com/fadilmartias/recruit-track/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CandidateRepositoryInterface interface {
	Upsert(candidate *model.Candidate) (*model.Candidate, error)
	FindByID(id string) (*model.Candidate, error)
	FindByUniqueID(uniqueID string) (*model.Candidate, error)
	FindAll() ([]model.Candidate, error)
	List(offset, limit int) ([]model.Candidate, int64, error)
	Count() (int64, error)
}

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

// Upsert creates or replaces the candidate keyed by unique_id and returns
// the stored row, so callers see the database-assigned id and timestamps.
func (r *CandidateRepository) Upsert(candidate *model.Candidate) (*model.Candidate, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "unique_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "email", "phone", "designation", "experience",
			"current_ctc", "expected_ctc", "top_skills", "all_skills",
			"companies", "location", "portal", "portal_date",
			"application_date", "remark", "resume_url", "updated_at",
		}),
	}).Create(candidate).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUniqueID(candidate.UniqueID)
}

func (r *CandidateRepository) FindByID(id string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.First(&c, "id = ?", id).Error
	return &c, err
}

func (r *CandidateRepository) FindByUniqueID(uniqueID string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.First(&c, "unique_id = ?", uniqueID).Error
	return &c, err
}

func (r *CandidateRepository) FindAll() ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.Order("created_at asc").Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepository) List(offset, limit int) ([]model.Candidate, int64, error) {
	var candidates []model.Candidate
	var total int64
	if err := r.db.Model(&model.Candidate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at desc").Offset(offset).Limit(limit).Find(&candidates).Error
	return candidates, total, err
}

func (r *CandidateRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Candidate{}).Count(&total).Error
	return total, err
}
