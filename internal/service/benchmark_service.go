package service

import (
	"context"
	"encoding/json"
	"time"

	"digicheck_backend/internal/model"
	"digicheck_backend/internal/scoring"
	"digicheck_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BenchmarkSource is the read-only benchmark store.
type BenchmarkSource interface {
	GetLatest() (*model.Benchmark, error)
}

const benchmarkCacheKey = "benchmark:latest"

type BenchmarkService struct {
	Repo     BenchmarkSource
	Redis    *redis.Client
	CacheTTL time.Duration
}

func NewBenchmarkService(repo BenchmarkSource, rdb *redis.Client, cacheTTL time.Duration) *BenchmarkService {
	return &BenchmarkService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL}
}

// GetLatest returns the most recent benchmark record, nil when none has been
// loaded. The record changes at most yearly, so it is cached in redis; cache
// failures fall through to the database.
func (s *BenchmarkService) GetLatest() (*model.Benchmark, error) {
	ctx := context.Background()

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, benchmarkCacheKey).Result()
		if err == nil {
			var bench model.Benchmark
			if err := json.Unmarshal([]byte(val), &bench); err == nil {
				return &bench, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("benchmark cache read failed", zap.Error(err))
		}
	}

	bench, err := s.Repo.GetLatest()
	if err != nil {
		return nil, err
	}
	if bench == nil {
		return nil, nil
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(bench); err == nil {
			if err := s.Redis.Set(ctx, benchmarkCacheKey, payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("benchmark cache write failed", zap.Error(err))
			}
		}
	}

	return bench, nil
}

// CalcDeltas compares the given scores against the latest benchmark. A nil
// result with nil error means no benchmark dataset exists yet.
func (s *BenchmarkService) CalcDeltas(scores model.CategoryScores) (*scoring.DeltaResult, error) {
	bench, err := s.GetLatest()
	if err != nil {
		return nil, err
	}
	if bench == nil {
		return nil, nil
	}
	deltas := scoring.Deltas(scores, bench.Mapping())
	return &deltas, nil
}
