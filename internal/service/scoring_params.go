package service

import (
	"sync"

	"digicheck_backend/internal/config"
	"digicheck_backend/internal/scoring"
)

// ScoringParams holds the tunable engine constants shared across services.
// The config watcher swaps them at runtime, so reads go through a lock.
type ScoringParams struct {
	mu         sync.RWMutex
	thresholds scoring.Thresholds
	lowCutoff  float64
}

func NewScoringParams(cfg config.ScoringConfig) *ScoringParams {
	p := &ScoringParams{}
	p.Update(cfg)
	return p
}

func (p *ScoringParams) Update(cfg config.ScoringConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.thresholds = scoring.Thresholds{
		CoreMin:     cfg.LevelCoreMin,
		AdvancedMin: cfg.LevelAdvancedMin,
	}
	p.lowCutoff = cfg.LowScoreCutoff
}

func (p *ScoringParams) Thresholds() scoring.Thresholds {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.thresholds
}

// LowCutoff is the score below which a category counts as urgent enough to
// claim a second recommendation slot.
func (p *ScoringParams) LowCutoff() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lowCutoff
}
