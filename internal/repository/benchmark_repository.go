package repository

import (
	"digicheck_backend/internal/model"

	"gorm.io/gorm"
)

type BenchmarkRepository struct {
	DB *gorm.DB
}

func NewBenchmarkRepository(db *gorm.DB) *BenchmarkRepository {
	return &BenchmarkRepository{DB: db}
}

// GetLatest returns the most recent benchmark record, or (nil, nil) when no
// dataset has been loaded yet.
func (r *BenchmarkRepository) GetLatest() (*model.Benchmark, error) {
	var bench model.Benchmark
	err := r.DB.Order("year desc, created_at desc").First(&bench).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bench, nil
}
