package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digicheck_backend/internal/model"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 2.5, Round1(2.5))
	assert.Equal(t, 2.5, Round1(2.49999))
	assert.Equal(t, 2.5, Round1(2.45))
	assert.Equal(t, 3.3, Round1(3.333333))
	assert.Equal(t, 0.0, Round1(0.04))
}

func TestAggregate_PerCategoryMeans(t *testing.T) {
	// Three index-encoded answers 0, 2, 4 normalize to 0, 2.5, 5; the
	// category mean is 2.5.
	answers := []float64{
		NormalizeAnswer(0.4), // index 0 -> 0
		NormalizeAnswer(2.2), // index 2 -> 2.5
		NormalizeAnswer(3.8), // index 4 -> 5
	}
	set := Aggregate(map[model.CategoryKey][]float64{
		model.CategoryCollaboration: answers,
	})
	assert.Equal(t, 2.5, set.Scores[model.CategoryCollaboration])
}

func TestAggregate_EmptyCategoriesScoreZero(t *testing.T) {
	set := Aggregate(map[model.CategoryKey][]float64{
		model.CategorySecurity: {5, 5},
	})
	for _, cat := range model.AllCategories {
		if cat == model.CategorySecurity {
			continue
		}
		assert.Equal(t, 0.0, set.Scores[cat], "category %s", cat)
	}
	assert.Equal(t, 5.0, set.Scores[model.CategorySecurity])
	assert.Equal(t, 1.0, set.Total)
}

func TestAggregate_TotalUsesRoundedCategoryScores(t *testing.T) {
	// Each category mean rounds before entering the total, so the total is
	// the rounded mean of rounded values, not of the raw sums.
	byCategory := map[model.CategoryKey][]float64{}
	for _, cat := range model.AllCategories {
		byCategory[cat] = []float64{1, 1, 2} // mean 1.3333 -> 1.3
	}
	set := Aggregate(byCategory)
	for _, cat := range model.AllCategories {
		assert.Equal(t, 1.3, set.Scores[cat])
	}
	assert.Equal(t, 1.3, set.Total)
}

func TestAggregate_AllCategoriesAlwaysPresent(t *testing.T) {
	set := Aggregate(nil)
	assert.Len(t, set.Scores, len(model.AllCategories))
	assert.Equal(t, 0.0, set.Total)
}
