package scoring

import "digicheck_backend/internal/model"

// Thresholds holds the score boundaries between the three maturity bands.
// They are configuration, not code: the cut points are tuned against
// production data and hot-reloaded via the config watcher.
type Thresholds struct {
	CoreMin     float64
	AdvancedMin float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{CoreMin: 2.0, AdvancedMin: 4.0}
}

// Classify maps a category score to its maturity band. Exact boundary values
// belong to the higher band; the mapping is monotonic in the score.
func (t Thresholds) Classify(score float64) model.Level {
	switch {
	case score >= t.AdvancedMin:
		return model.LevelAdvanced
	case score >= t.CoreMin:
		return model.LevelCore
	}
	return model.LevelFoundation
}

// ClassifyAll classifies every category of a score map.
func (t Thresholds) ClassifyAll(scores model.CategoryScores) map[model.CategoryKey]model.Level {
	levels := make(map[model.CategoryKey]model.Level, len(model.AllCategories))
	for _, cat := range model.AllCategories {
		levels[cat] = t.Classify(scores[cat])
	}
	return levels
}
