package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"digicheck_backend/internal/model"
	"digicheck_backend/internal/repository"
	"digicheck_backend/internal/util"
	"digicheck_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const guideListCachePrefix = "guides:published:"

// GuideService is the read side of the guide catalog. Authoring and
// publication happen in the content-management system; this service only
// serves published guides.
type GuideService struct {
	Repo     *repository.GuideRepository
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewGuideService(repo *repository.GuideRepository, rdb *redis.Client, cacheTTL time.Duration) *GuideService {
	return &GuideService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL}
}

type guideListPage struct {
	Guides []model.Guide `json:"guides"`
	Total  int64         `json:"total"`
}

func (s *GuideService) ListPublished(page, limit int, category model.CategoryKey) ([]model.Guide, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("%s%s:%d:%d", guideListCachePrefix, category, page, limit)

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached guideListPage
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Guides, cached.Total, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("guide list cache read failed", zap.Error(err))
		}
	}

	guides, total, err := s.Repo.ListPublished(page, limit, category)
	if err != nil {
		return nil, 0, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(guideListPage{Guides: guides, Total: total}); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("guide list cache write failed", zap.Error(err))
			}
		}
	}

	return guides, total, nil
}

func (s *GuideService) GetBySlug(slug string) (*model.Guide, error) {
	guide, err := s.Repo.FindBySlug(slug)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrGuideNotFound
	}
	if err != nil {
		return nil, err
	}
	if guide.Status != model.GuidePublished {
		return nil, util.ErrGuideNotFound
	}
	return guide, nil
}
