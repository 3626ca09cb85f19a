package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digicheck_backend/internal/model"
	"digicheck_backend/internal/util"
)

func newDashboardServiceForTest(store SurveyStore, bench BenchmarkSource) *DashboardService {
	params := testParams()
	catalog := &catalogStub{}
	for _, cat := range model.AllCategories {
		catalog.guides = append(catalog.guides,
			publishedGuide(string(cat)+"-dash", cat, model.LevelFoundation, model.LevelCore, model.LevelAdvanced))
	}
	return NewDashboardService(
		store,
		NewRecommendationService(catalog, params),
		NewBenchmarkService(bench, nil, 0),
		params,
	)
}

func TestGetDashboard_NoSubmissionServesStarterPlan(t *testing.T) {
	svc := newDashboardServiceForTest(&surveyStoreStub{}, &benchSourceStub{})

	report, err := svc.GetDashboard(7)
	require.NoError(t, err)
	assert.False(t, report.HasSubmission)
	assert.Equal(t, StarterActions(), report.Actions)
	assert.Nil(t, report.Deltas)
	assert.Empty(t, report.Scores)
}

func TestGetDashboard_WithSubmission(t *testing.T) {
	store := &surveyStoreStub{latest: &model.SurveySubmission{
		OrgID:      7,
		SurveyType: model.SurveyQuarterly,
		Scores:     []byte(`{"security":1.0,"collaboration":4.5,"financeOps":4.5,"salesMarketing":4.5,"skillsCulture":4.5}`),
		Total:      3.8,
	}}
	bench := &benchSourceStub{bench: &model.Benchmark{
		Year:   2025,
		Values: []byte(`{"security":3.0}`),
	}}
	svc := newDashboardServiceForTest(store, bench)

	report, err := svc.GetDashboard(7)
	require.NoError(t, err)
	assert.True(t, report.HasSubmission)
	assert.Equal(t, model.SurveyQuarterly, report.SurveyType)
	assert.Equal(t, 3.8, report.Total)
	assert.Equal(t, model.LevelFoundation, report.Levels[model.CategorySecurity])
	assert.Equal(t, model.LevelAdvanced, report.Levels[model.CategoryCollaboration])
	require.NotEmpty(t, report.Actions)
	assert.Equal(t, model.CategorySecurity, report.Actions[0].Category, "weakest category leads the plan")
	require.NotNil(t, report.Deltas)
	assert.Equal(t, -2.0, report.Deltas.Categories[model.CategorySecurity])
}

func TestGetDashboard_MissingOrg(t *testing.T) {
	svc := newDashboardServiceForTest(&surveyStoreStub{}, &benchSourceStub{})
	_, err := svc.GetDashboard(0)
	assert.ErrorIs(t, err, util.ErrMissingOrg)
}
