package repository

import (
	"digicheck_backend/internal/model"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

func (r *SurveyRepository) Create(submission *model.SurveySubmission) error {
	return r.DB.Create(submission).Error
}

func (r *SurveyRepository) FindLatestByOrg(orgID uint) (*model.SurveySubmission, error) {
	var submission model.SurveySubmission
	err := r.DB.Where("org_id = ?", orgID).Order("created_at desc").First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *SurveyRepository) ListByOrg(orgID uint, page, limit int) ([]model.SurveySubmission, int64, error) {
	q := r.DB.Model(&model.SurveySubmission{}).Where("org_id = ?", orgID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []model.SurveySubmission
	offset := (page - 1) * limit
	err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&submissions).Error
	return submissions, total, err
}
