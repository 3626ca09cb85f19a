package scoring

import "digicheck_backend/internal/model"

// DeltaResult compares a survey's scores against a benchmark on the same
// 0–5 scale. Positive values mean the survey scored above the benchmark.
type DeltaResult struct {
	Categories map[model.CategoryKey]float64 `json:"categories"`
	Total      float64                       `json:"total"`
	Totals     DeltaTotals                   `json:"totals"`
}

type DeltaTotals struct {
	Self  float64 `json:"self"`
	Bench float64 `json:"bench"`
}

// Deltas computes per-category self−benchmark differences plus the delta of
// the two overall averages. Categories missing from the benchmark compare
// against 0. Read-only and side-effect free.
func Deltas(scores model.CategoryScores, benchmark model.CategoryScores) DeltaResult {
	categories := make(map[model.CategoryKey]float64, len(model.AllCategories))
	selfSum, benchSum := 0.0, 0.0
	for _, cat := range model.AllCategories {
		self := scores[cat]
		bench := benchmark[cat]
		categories[cat] = self - bench
		selfSum += self
		benchSum += bench
	}
	n := float64(len(model.AllCategories))
	selfTotal := Round1(selfSum / n)
	benchTotal := Round1(benchSum / n)
	return DeltaResult{
		Categories: categories,
		Total:      selfTotal - benchTotal,
		Totals:     DeltaTotals{Self: selfTotal, Bench: benchTotal},
	}
}
