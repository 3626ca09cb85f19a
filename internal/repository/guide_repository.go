package repository

import (
	"digicheck_backend/internal/model"

	"gorm.io/gorm"
)

type GuideRepository struct {
	DB *gorm.DB
}

func NewGuideRepository(db *gorm.DB) *GuideRepository {
	return &GuideRepository{DB: db}
}

// GuideFilter narrows a published-guide lookup. Zero values mean "any".
type GuideFilter struct {
	Category     model.CategoryKey
	LevelPresent model.Level
}

// queryWindow bounds how many rows a filtered lookup scans before giving up.
// Level presence lives inside a JSON column, so that part of the filter is
// applied in memory over a recency-ordered window rather than in SQL.
const queryWindow = 50

// FindPublished returns published guides matching the filter, most recently
// updated first, at most limit entries.
func (r *GuideRepository) FindPublished(filter GuideFilter, limit int) ([]model.Guide, error) {
	q := r.DB.Where("status = ?", model.GuidePublished).Order("updated_at desc")
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	window := limit
	if filter.LevelPresent != "" {
		window = queryWindow
	}

	var guides []model.Guide
	if err := q.Limit(window).Find(&guides).Error; err != nil {
		return nil, err
	}

	if filter.LevelPresent == "" {
		return guides, nil
	}

	matched := make([]model.Guide, 0, limit)
	for _, g := range guides {
		if g.HasLevel(filter.LevelPresent) {
			matched = append(matched, g)
			if len(matched) >= limit {
				break
			}
		}
	}
	return matched, nil
}

func (r *GuideRepository) FindBySlug(slug string) (*model.Guide, error) {
	var guide model.Guide
	err := r.DB.Where("slug = ?", slug).First(&guide).Error
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *GuideRepository) ListPublished(page, limit int, category model.CategoryKey) ([]model.Guide, int64, error) {
	q := r.DB.Model(&model.Guide{}).Where("status = ?", model.GuidePublished)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var guides []model.Guide
	offset := (page - 1) * limit
	err := q.Order("updated_at desc").Offset(offset).Limit(limit).Find(&guides).Error
	return guides, total, err
}
