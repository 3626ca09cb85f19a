package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuideLevelContent(t *testing.T) {
	g := Guide{ContentByLevel: []byte(`{"foundation":{"steps":["a"]},"advanced":{"steps":["b"]}}`)}

	assert.True(t, g.HasLevel(LevelFoundation))
	assert.False(t, g.HasLevel(LevelCore))
	assert.Equal(t, LevelFoundation, g.FirstLevel(), "lowest band wins")

	empty := Guide{}
	assert.False(t, empty.HasLevel(LevelFoundation))
	assert.Equal(t, Level(""), empty.FirstLevel())

	malformed := Guide{ContentByLevel: []byte(`not json`)}
	assert.Empty(t, malformed.LevelContent())
}

func TestSurveySubmissionScoreSet(t *testing.T) {
	s := SurveySubmission{
		Scores: []byte(`{"security":3.5,"bogusCategory":9}`),
		Total:  0.7,
	}
	set := s.ScoreSet()
	assert.Equal(t, 3.5, set.Scores[CategorySecurity])
	assert.Equal(t, 0.0, set.Scores[CategoryCollaboration], "missing categories decode as zero")
	assert.Len(t, set.Scores, len(AllCategories), "unknown keys are dropped")
	assert.Equal(t, 0.7, set.Total)
}

func TestCategoryKeyValid(t *testing.T) {
	for _, cat := range AllCategories {
		assert.True(t, cat.Valid(), "category %s", cat)
	}
	assert.False(t, CategoryKey("observability").Valid())
}

func TestBenchmarkMapping(t *testing.T) {
	b := Benchmark{Values: []byte(`{"security":3.0,"made_up":1.0}`)}
	m := b.Mapping()
	assert.Equal(t, 3.0, m[CategorySecurity])
	assert.NotContains(t, m, CategoryKey("made_up"))

	var emptyBench Benchmark
	assert.Empty(t, emptyBench.Mapping())
}
