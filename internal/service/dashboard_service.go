package service

import (
	"digicheck_backend/internal/model"
	"digicheck_backend/internal/scoring"
	"digicheck_backend/internal/util"
	"digicheck_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DashboardService struct {
	Surveys         SurveyStore
	Recommendations *RecommendationService
	Benchmarks      *BenchmarkService
	Params          *ScoringParams
}

func NewDashboardService(
	surveys SurveyStore,
	recommendations *RecommendationService,
	benchmarks *BenchmarkService,
	params *ScoringParams,
) *DashboardService {
	return &DashboardService{
		Surveys:         surveys,
		Recommendations: recommendations,
		Benchmarks:      benchmarks,
		Params:          params,
	}
}

type DashboardReport struct {
	HasSubmission bool                              `json:"hasSubmission"`
	SubmittedAt   string                            `json:"submittedAt,omitempty"`
	SurveyType    model.SurveyType                  `json:"surveyType,omitempty"`
	Scores        model.CategoryScores              `json:"scores,omitempty"`
	Total         float64                           `json:"total,omitempty"`
	Levels        map[model.CategoryKey]model.Level `json:"levels,omitempty"`
	Actions       []model.ActionItem                `json:"actions"`
	Deltas        *scoring.DeltaResult              `json:"deltas,omitempty"`
}

// GetDashboard assembles the report for an organization's latest survey. An
// org that has never submitted gets the starter plan from the static action
// library instead of catalog-driven recommendations.
func (s *DashboardService) GetDashboard(orgID uint) (*DashboardReport, error) {
	if orgID == 0 {
		return nil, util.ErrMissingOrg
	}

	submission, err := s.Surveys.FindLatestByOrg(orgID)
	if err == gorm.ErrRecordNotFound {
		return &DashboardReport{
			HasSubmission: false,
			Actions:       StarterActions(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	scoreSet := submission.ScoreSet()

	actions, err := s.Recommendations.Top3ActionsFrom(scoreSet.Scores)
	if err != nil {
		return nil, err
	}

	deltas, err := s.Benchmarks.CalcDeltas(scoreSet.Scores)
	if err != nil {
		logger.Log.Warn("benchmark comparison unavailable", zap.Error(err))
		deltas = nil
	}

	return &DashboardReport{
		HasSubmission: true,
		SubmittedAt:   submission.CreatedAt.Format("2006-01-02 15:04:05"),
		SurveyType:    submission.SurveyType,
		Scores:        scoreSet.Scores,
		Total:         scoreSet.Total,
		Levels:        s.Params.Thresholds().ClassifyAll(scoreSet.Scores),
		Actions:       actions,
		Deltas:        deltas,
	}, nil
}
