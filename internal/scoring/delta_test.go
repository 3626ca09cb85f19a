package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digicheck_backend/internal/model"
)

func TestDeltas_SignConvention(t *testing.T) {
	scores := model.CategoryScores{
		model.CategoryCollaboration:  3.0,
		model.CategorySecurity:       1.0,
		model.CategoryFinanceOps:     2.5,
		model.CategorySalesMarketing: 4.0,
		model.CategorySkillsCulture:  2.0,
	}
	bench := model.CategoryScores{
		model.CategoryCollaboration:  2.0,
		model.CategorySecurity:       3.0,
		model.CategoryFinanceOps:     2.5,
		model.CategorySalesMarketing: 3.5,
		model.CategorySkillsCulture:  2.5,
	}
	res := Deltas(scores, bench)

	assert.Equal(t, 1.0, res.Categories[model.CategoryCollaboration], "above benchmark is positive")
	assert.Equal(t, -2.0, res.Categories[model.CategorySecurity], "below benchmark is negative")
	assert.Equal(t, 0.0, res.Categories[model.CategoryFinanceOps])

	assert.Equal(t, 2.5, res.Totals.Self)
	assert.Equal(t, 2.7, res.Totals.Bench)
	assert.InDelta(t, -0.2, res.Total, 1e-9)
}

func TestDeltas_MissingBenchmarkCategoriesCompareAgainstZero(t *testing.T) {
	scores := model.CategoryScores{model.CategorySecurity: 2.0}
	res := Deltas(scores, model.CategoryScores{})
	assert.Equal(t, 2.0, res.Categories[model.CategorySecurity])
	assert.Equal(t, 0.0, res.Categories[model.CategoryCollaboration])
	assert.Equal(t, 0.0, res.Totals.Bench)
	assert.Len(t, res.Categories, len(model.AllCategories))
}
