package scoring

import (
	"math"

	"digicheck_backend/internal/model"
)

// Round1 rounds to one decimal place, the display precision used throughout
// scoring.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Aggregate computes per-category scores from normalized answers and the
// overall total. Each category score is the mean of its answers rounded to
// one decimal; categories with no answers score 0. The total is the mean of
// the five already-rounded category scores, rounded again. The double
// rounding is contractual: stored results must reproduce exactly.
func Aggregate(byCategory map[model.CategoryKey][]float64) model.ScoreSet {
	scores := make(model.CategoryScores, len(model.AllCategories))
	sum := 0.0
	for _, cat := range model.AllCategories {
		answers := byCategory[cat]
		score := 0.0
		if len(answers) > 0 {
			total := 0.0
			for _, a := range answers {
				total += a
			}
			score = Round1(total / float64(len(answers)))
		}
		scores[cat] = score
		sum += score
	}
	return model.ScoreSet{
		Scores: scores,
		Total:  Round1(sum / float64(len(model.AllCategories))),
	}
}
