package service

import (
	"encoding/json"
	"fmt"

	"digicheck_backend/internal/model"
	"digicheck_backend/internal/scoring"
	"digicheck_backend/internal/util"
	"digicheck_backend/pkg/logger"
	"digicheck_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SurveyStore persists scored submissions; survey documents are owned by
// the storage layer, the engine itself stays request-scoped.
type SurveyStore interface {
	Create(submission *model.SurveySubmission) error
	FindLatestByOrg(orgID uint) (*model.SurveySubmission, error)
	ListByOrg(orgID uint, page, limit int) ([]model.SurveySubmission, int64, error)
}

type SurveyService struct {
	Scoring         *ScoringService
	Recommendations *RecommendationService
	Benchmarks      *BenchmarkService
	Repo            SurveyStore
	Params          *ScoringParams
}

func NewSurveyService(
	scoringSvc *ScoringService,
	recommendations *RecommendationService,
	benchmarks *BenchmarkService,
	repo SurveyStore,
	params *ScoringParams,
) *SurveyService {
	return &SurveyService{
		Scoring:         scoringSvc,
		Recommendations: recommendations,
		Benchmarks:      benchmarks,
		Repo:            repo,
		Params:          params,
	}
}

// TaggedAnswer is the submission format for new integrations: the encoding
// is declared instead of inferred from the numeric range.
type TaggedAnswer struct {
	QuestionKey string  `json:"questionKey" binding:"required"`
	Encoding    string  `json:"encoding" binding:"required"`
	Value       float64 `json:"value"`
}

// SurveySubmitRequest accepts either the legacy fixed-question map or tagged
// per-question responses; exactly one of Answers and Responses must be set.
type SurveySubmitRequest struct {
	SurveyType model.SurveyType   `json:"surveyType"`
	Answers    map[string]float64 `json:"answers"`
	Responses  []TaggedAnswer     `json:"responses"`
}

type SurveyResult struct {
	SubmissionID    string                            `json:"submissionId"`
	Scores          model.CategoryScores              `json:"scores"`
	Total           float64                           `json:"total"`
	Levels          map[model.CategoryKey]model.Level `json:"levels"`
	Actions         []model.ActionItem                `json:"actions"`
	Deltas          *scoring.DeltaResult              `json:"deltas,omitempty"`
	QuestionVersion int                               `json:"questionVersion"`
}

// SubmitSurvey validates, scores, classifies, and persists one questionnaire
// submission, then assembles the recommendations and benchmark comparison
// for the response. Benchmark lookup failures degrade to a result without
// deltas rather than failing the whole submission.
func (s *SurveyService) SubmitSurvey(orgID uint, req SurveySubmitRequest) (*SurveyResult, error) {
	if orgID == 0 {
		return nil, util.ErrMissingOrg
	}
	if (len(req.Answers) == 0) == (len(req.Responses) == 0) {
		return nil, fmt.Errorf("%w: exactly one of answers and responses must be provided", util.ErrInvalidAnswerPayload)
	}

	result, err := s.score(req)
	if err != nil {
		return nil, err
	}

	surveyType := req.SurveyType
	if surveyType == "" {
		surveyType = model.SurveyBaseline
	}

	answersJSON, _ := json.Marshal(req)
	scoresJSON, _ := json.Marshal(result.Scores)
	submission := &model.SurveySubmission{
		OrgID:           orgID,
		SurveyType:      surveyType,
		Answers:         answersJSON,
		Scores:          scoresJSON,
		Total:           result.Total,
		QuestionVersion: result.QuestionVersion,
	}
	if err := s.Repo.Create(submission); err != nil {
		return nil, err
	}
	monitoring.SurveysScored.Inc()

	actions, err := s.Recommendations.Top3ActionsFrom(result.Scores)
	if err != nil {
		return nil, err
	}

	deltas, err := s.Benchmarks.CalcDeltas(result.Scores)
	if err != nil {
		logger.Log.Warn("benchmark comparison unavailable", zap.Error(err))
		deltas = nil
	}

	return &SurveyResult{
		SubmissionID:    submission.ID,
		Scores:          result.Scores,
		Total:           result.Total,
		Levels:          s.Params.Thresholds().ClassifyAll(result.Scores),
		Actions:         actions,
		Deltas:          deltas,
		QuestionVersion: result.QuestionVersion,
	}, nil
}

// score routes the request into the right scoring path: the legacy untagged
// map or the tagged catalog-driven path.
func (s *SurveyService) score(req SurveySubmitRequest) (*KeyedScoreResult, error) {
	if len(req.Answers) > 0 {
		scoreSet, err := s.Scoring.CalcScores(req.Answers)
		if err != nil {
			return nil, err
		}
		return &KeyedScoreResult{ScoreSet: scoreSet, QuestionVersion: 1}, nil
	}

	decoded := make(map[string]float64, len(req.Responses))
	for _, r := range req.Responses {
		value, err := scoring.DecodeAnswer(r.Encoding, r.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: question %q: %v", util.ErrInvalidAnswerPayload, r.QuestionKey, err)
		}
		decoded[r.QuestionKey] = value
	}
	return s.Scoring.scoreKeyed(decoded, false)
}

func (s *SurveyService) GetLatest(orgID uint) (*model.SurveySubmission, error) {
	if orgID == 0 {
		return nil, util.ErrMissingOrg
	}
	submission, err := s.Repo.FindLatestByOrg(orgID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *SurveyService) ListByOrg(orgID uint, page, limit int) ([]model.SurveySubmission, int64, error) {
	if orgID == 0 {
		return nil, 0, util.ErrMissingOrg
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.Repo.ListByOrg(orgID, page, limit)
}
