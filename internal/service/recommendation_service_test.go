package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digicheck_backend/internal/config"
	"digicheck_backend/internal/model"
	"digicheck_backend/internal/repository"
)

// catalogStub serves guides from a fixed slice, newest first, applying the
// same filter semantics as the SQL-backed repository. Every lookup is
// recorded so tests can check which selection pass issued it.
type catalogStub struct {
	guides []model.Guide
	calls  []repository.GuideFilter
}

func (c *catalogStub) FindPublished(filter repository.GuideFilter, limit int) ([]model.Guide, error) {
	c.calls = append(c.calls, filter)
	out := make([]model.Guide, 0, limit)
	for _, g := range c.guides {
		if g.Status != model.GuidePublished {
			continue
		}
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		if filter.LevelPresent != "" && !g.HasLevel(filter.LevelPresent) {
			continue
		}
		out = append(out, g)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func levels(ls ...model.Level) json.RawMessage {
	m := make(map[model.Level]json.RawMessage, len(ls))
	for _, l := range ls {
		m[l] = json.RawMessage(`{"steps":[]}`)
	}
	raw, _ := json.Marshal(m)
	return raw
}

func publishedGuide(slug string, cat model.CategoryKey, ls ...model.Level) model.Guide {
	return model.Guide{
		Slug:           slug,
		Title:          "Guide " + slug,
		Category:       cat,
		Status:         model.GuidePublished,
		ContentByLevel: levels(ls...),
	}
}

func testParams() *ScoringParams {
	return NewScoringParams(config.ScoringConfig{
		LevelCoreMin:     2.0,
		LevelAdvancedMin: 4.0,
		LowScoreCutoff:   2.5,
	})
}

func allScores(v float64) model.CategoryScores {
	scores := make(model.CategoryScores, len(model.AllCategories))
	for _, cat := range model.AllCategories {
		scores[cat] = v
	}
	return scores
}

func TestTop3Actions_WeakestCategoriesFirst(t *testing.T) {
	catalog := &catalogStub{}
	for _, cat := range model.AllCategories {
		catalog.guides = append(catalog.guides,
			publishedGuide(string(cat)+"-basics", cat, model.LevelFoundation, model.LevelCore, model.LevelAdvanced))
	}
	svc := NewRecommendationService(catalog, testParams())

	scores := allScores(4.5)
	scores[model.CategorySecurity] = 1.0

	actions, err := svc.Top3ActionsFrom(scores)
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, model.CategorySecurity, actions[0].Category, "weakest category leads")
	assert.Equal(t, model.LevelFoundation, actions[0].Level)
	// The remaining slots go to the next categories in canonical order since
	// their scores tie.
	assert.Equal(t, model.CategoryCollaboration, actions[1].Category)
	assert.Equal(t, model.CategoryFinanceOps, actions[2].Category)
}

func TestTop3Actions_UrgentCategoryClaimsSecondSlot(t *testing.T) {
	// Only two categories have any content. Security sits below the low
	// cutoff, so once the diversity pass has covered both categories the
	// urgency pass hands security a second guide.
	catalog := &catalogStub{guides: []model.Guide{
		publishedGuide("sec-new", model.CategorySecurity, model.LevelFoundation),
		publishedGuide("sec-old", model.CategorySecurity, model.LevelFoundation),
		publishedGuide("collab-1", model.CategoryCollaboration, model.LevelAdvanced),
	}}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(model.CategoryScores{
		model.CategorySecurity:      1.0,
		model.CategoryCollaboration: 4.5,
	})
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, "/guides/sec-new", actions[0].Link)
	assert.Equal(t, "/guides/collab-1", actions[1].Link)
	assert.Equal(t, "/guides/sec-old", actions[2].Link, "second security pick from the urgency pass")
}

func TestTop3Actions_LevelRelaxedFallback(t *testing.T) {
	// The only security guide carries advanced content while the org sits at
	// foundation. The level-matched lookup finds nothing; the relaxed lookup
	// still picks it and reports the level actually matched.
	catalog := &catalogStub{guides: []model.Guide{
		publishedGuide("sec-adv", model.CategorySecurity, model.LevelAdvanced),
	}}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(model.CategoryScores{
		model.CategorySecurity: 0.5,
	})
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "/guides/sec-adv", actions[0].Link)
	assert.Equal(t, model.LevelAdvanced, actions[0].Level)
}

func TestTop3Actions_GlobalBackfill(t *testing.T) {
	// Scores only cover security, which has a single guide. The remaining
	// slots fill from the rest of the published catalog, newest first.
	catalog := &catalogStub{guides: []model.Guide{
		publishedGuide("sales-1", model.CategorySalesMarketing, model.LevelCore),
		publishedGuide("sec-1", model.CategorySecurity, model.LevelFoundation),
		publishedGuide("fin-1", model.CategoryFinanceOps, model.LevelCore),
	}}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(model.CategoryScores{
		model.CategorySecurity: 1.0,
	})
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, "/guides/sec-1", actions[0].Link)
	assert.Equal(t, "/guides/sales-1", actions[1].Link)
	assert.Equal(t, "/guides/fin-1", actions[2].Link)
}

func TestTop3Actions_NoDuplicatesAndAtMostThree(t *testing.T) {
	catalog := &catalogStub{}
	for _, cat := range model.AllCategories {
		catalog.guides = append(catalog.guides,
			publishedGuide(string(cat)+"-a", cat, model.LevelFoundation),
			publishedGuide(string(cat)+"-b", cat, model.LevelFoundation),
		)
	}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(allScores(0.5))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(actions), 3)
	seen := map[string]bool{}
	for _, a := range actions {
		assert.False(t, seen[a.Link], "duplicate pick %s", a.Link)
		seen[a.Link] = true
	}
}

func TestTop3Actions_EmptyCatalog(t *testing.T) {
	svc := NewRecommendationService(&catalogStub{}, testParams())
	actions, err := svc.Top3ActionsFrom(allScores(1.0))
	require.NoError(t, err)
	assert.Empty(t, actions)

	// The empty result must be a real slice so API responses carry [] and
	// not null.
	assert.NotNil(t, actions)
	payload, err := json.Marshal(actions)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(payload))
}

func TestTop3Actions_MaxedScoresFilledByFirstSweep(t *testing.T) {
	// With every category at the top score and content available everywhere,
	// the first sweep alone fills all three slots: every catalog lookup is
	// category-scoped and level-matched, and the global any-category query
	// never runs.
	catalog := &catalogStub{}
	for _, cat := range model.AllCategories {
		catalog.guides = append(catalog.guides,
			publishedGuide(string(cat)+"-top", cat, model.LevelAdvanced))
	}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(allScores(5.0))
	require.NoError(t, err)
	require.Len(t, actions, 3)
	for _, a := range actions {
		assert.Equal(t, model.LevelAdvanced, a.Level)
	}
	require.Len(t, catalog.calls, 3)
	for _, call := range catalog.calls {
		assert.NotEmpty(t, call.Category)
		assert.Equal(t, model.LevelAdvanced, call.LevelPresent)
	}
}

func TestTop3Actions_BackfillOnlyWhenCategoriesAreBare(t *testing.T) {
	// The global any-category lookup is a last resort: it runs only after
	// the per-category sweeps have come up short.
	catalog := &catalogStub{guides: []model.Guide{
		publishedGuide("sec-top", model.CategorySecurity, model.LevelAdvanced),
	}}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(model.CategoryScores{
		model.CategorySecurity: 5.0,
	})
	require.NoError(t, err)
	require.Len(t, actions, 1)

	last := catalog.calls[len(catalog.calls)-1]
	assert.Empty(t, last.Category, "final lookup is the global backfill")
	for _, call := range catalog.calls[:len(catalog.calls)-1] {
		assert.NotEmpty(t, call.Category, "category sweeps run before backfill")
	}
}

func TestTop3Actions_DraftGuidesNeverSelected(t *testing.T) {
	draft := publishedGuide("sec-draft", model.CategorySecurity, model.LevelFoundation)
	draft.Status = model.GuideDraft
	catalog := &catalogStub{guides: []model.Guide{draft}}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(model.CategoryScores{model.CategorySecurity: 0.5})
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestTop3Actions_AdvancedOrgGetsAdvancedContent(t *testing.T) {
	catalog := &catalogStub{guides: []model.Guide{
		publishedGuide("collab-adv", model.CategoryCollaboration, model.LevelAdvanced),
		publishedGuide("collab-found", model.CategoryCollaboration, model.LevelFoundation),
	}}
	svc := NewRecommendationService(catalog, testParams())

	actions, err := svc.Top3ActionsFrom(model.CategoryScores{
		model.CategoryCollaboration: 5.0,
	})
	require.NoError(t, err)
	require.NotEmpty(t, actions)
	assert.Equal(t, "/guides/collab-adv", actions[0].Link)
	assert.Equal(t, model.LevelAdvanced, actions[0].Level)
}
