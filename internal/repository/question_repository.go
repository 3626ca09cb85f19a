package repository

import (
	"digicheck_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindActiveByKeys resolves question keys against the active catalog. Keys
// that are unknown or inactive simply come back missing; partial answer sets
// are an expected occurrence, not an error.
func (r *QuestionRepository) FindActiveByKeys(keys []string) ([]model.SurveyQuestion, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var questions []model.SurveyQuestion
	err := r.DB.Where("`key` IN ? AND active = ?", keys, true).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListActive() ([]model.SurveyQuestion, error) {
	var questions []model.SurveyQuestion
	err := r.DB.Where("active = ?", true).Order("category, `order`").Find(&questions).Error
	return questions, err
}
