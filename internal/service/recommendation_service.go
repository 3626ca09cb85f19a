package service

import (
	"sort"

	"digicheck_backend/internal/model"
	"digicheck_backend/internal/repository"
	"digicheck_backend/internal/scoring"
	"digicheck_backend/pkg/monitoring"
)

// GuideFinder is the read-only slice of the guide catalog the selector
// needs. The catalog itself is owned and mutated elsewhere.
type GuideFinder interface {
	FindPublished(filter repository.GuideFilter, limit int) ([]model.Guide, error)
}

const (
	maxActions = 3
	// categoryLookahead bounds how far down the recency-ordered list a
	// per-category pick scans for a not-yet-used guide.
	categoryLookahead = 5
)

type RecommendationService struct {
	Guides GuideFinder
	Params *ScoringParams
}

func NewRecommendationService(guides GuideFinder, params *ScoringParams) *RecommendationService {
	return &RecommendationService{Guides: guides, Params: params}
}

// selection is the state threaded through the selection passes: the ordered
// result list and the slugs already used. Passes take a selection and return
// the advanced one, so each pass can be exercised on its own in tests.
type selection struct {
	picked []model.ActionItem
	seen   map[string]bool
}

func newSelection() selection {
	// picked starts non-nil so an empty result serializes as [] and not null.
	return selection{
		picked: make([]model.ActionItem, 0, maxActions),
		seen:   make(map[string]bool),
	}
}

func (sel selection) full() bool {
	return len(sel.picked) >= maxActions
}

func (sel selection) take(g model.Guide, matched model.Level, pass string) selection {
	sel.seen[g.Slug] = true
	sel.picked = append(sel.picked, model.ActionItem{
		Title:            g.Title,
		Link:             "/guides/" + g.Slug,
		Category:         g.Category,
		EstimatedMinutes: g.EstimatedMinutes,
		Level:            matched,
	})
	monitoring.RecommendationPicks.WithLabelValues(pass).Inc()
	return sel
}

// matchedLevel reports which level band an ActionItem was actually matched
// against: the requested level when the guide carries content for it, the
// first level present on the guide otherwise, or none at all.
func matchedLevel(g model.Guide, requested model.Level) model.Level {
	if g.HasLevel(requested) {
		return requested
	}
	return g.FirstLevel()
}

// Top3ActionsFrom turns category scores into an ordered, deduplicated list
// of at most three recommended actions. Weak categories come first, content
// is preferred at the org's current maturity level, and the result degrades
// gracefully when the catalog is sparse: an empty catalog yields an empty
// list, never an error.
func (s *RecommendationService) Top3ActionsFrom(scores model.CategoryScores) ([]model.ActionItem, error) {
	order := categoriesByNeed(scores)
	thresholds := s.Params.Thresholds()
	lowCutoff := s.Params.LowCutoff()

	sel := newSelection()
	var err error

	// Pass 1: diversity. One pick per category, weakest first, so every weak
	// area is represented before any category gets a second item.
	if sel, err = s.categorySweep(sel, order, scores, thresholds, true, "diversity"); err != nil {
		return nil, err
	}

	// Pass 2: urgency. Categories below the low cutoff may claim a second
	// slot.
	if !sel.full() {
		low := make([]model.CategoryKey, 0, len(order))
		for _, cat := range order {
			if scores[cat] < lowCutoff {
				low = append(low, cat)
			}
		}
		if sel, err = s.categorySweep(sel, low, scores, thresholds, true, "urgency"); err != nil {
			return nil, err
		}
	}

	// Pass 3: level-relaxed. Any published guide in the category qualifies.
	if !sel.full() {
		if sel, err = s.categorySweep(sel, order, scores, thresholds, false, "level_relaxed"); err != nil {
			return nil, err
		}
	}

	// Pass 4: global backfill across the whole published catalog.
	if !sel.full() {
		if sel, err = s.backfill(sel, scores, thresholds); err != nil {
			return nil, err
		}
	}

	return sel.picked, nil
}

// categoriesByNeed orders the categories present in the scores map ascending
// by score, ties broken by the canonical enumeration order. Unknown keys are
// simply absent from the sweep.
func categoriesByNeed(scores model.CategoryScores) []model.CategoryKey {
	cats := make([]model.CategoryKey, 0, len(model.AllCategories))
	for _, cat := range model.AllCategories {
		if _, ok := scores[cat]; ok {
			cats = append(cats, cat)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool {
		si, sj := scores[cats[i]], scores[cats[j]]
		if si == sj {
			return model.CategoryRank(cats[i]) < model.CategoryRank(cats[j])
		}
		return si < sj
	})
	return cats
}

func (s *RecommendationService) categorySweep(sel selection, order []model.CategoryKey, scores model.CategoryScores, thresholds scoring.Thresholds, requireLevel bool, pass string) (selection, error) {
	for _, cat := range order {
		if sel.full() {
			break
		}
		level := thresholds.Classify(scores[cat])
		var err error
		if sel, err = s.pickForCategory(sel, cat, level, requireLevel, pass); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

// pickForCategory attempts exactly one pick for the category. With
// requireLevel set it first looks for level-matched content, then falls back
// to the most recent guide in the category regardless of level.
func (s *RecommendationService) pickForCategory(sel selection, cat model.CategoryKey, level model.Level, requireLevel bool, pass string) (selection, error) {
	if requireLevel {
		candidates, err := s.Guides.FindPublished(repository.GuideFilter{Category: cat, LevelPresent: level}, categoryLookahead)
		if err != nil {
			return sel, err
		}
		for _, g := range candidates {
			if !sel.seen[g.Slug] {
				return sel.take(g, level, pass), nil
			}
		}
	}

	candidates, err := s.Guides.FindPublished(repository.GuideFilter{Category: cat}, categoryLookahead)
	if err != nil {
		return sel, err
	}
	for _, g := range candidates {
		if !sel.seen[g.Slug] {
			return sel.take(g, matchedLevel(g, level), pass), nil
		}
	}
	return sel, nil
}

func (s *RecommendationService) backfill(sel selection, scores model.CategoryScores, thresholds scoring.Thresholds) (selection, error) {
	candidates, err := s.Guides.FindPublished(repository.GuideFilter{}, maxActions+len(sel.seen))
	if err != nil {
		return sel, err
	}
	for _, g := range candidates {
		if sel.full() {
			break
		}
		if sel.seen[g.Slug] {
			continue
		}
		level := thresholds.Classify(scores[g.Category])
		sel = sel.take(g, matchedLevel(g, level), "backfill")
	}
	return sel, nil
}
