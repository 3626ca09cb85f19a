package service

import (
	"fmt"
	"sort"

	"digicheck_backend/internal/model"
	"digicheck_backend/internal/scoring"
	"digicheck_backend/internal/util"
)

// QuestionSource is the slice of the question catalog the scoring path needs.
type QuestionSource interface {
	FindActiveByKeys(keys []string) ([]model.SurveyQuestion, error)
}

type ScoringService struct {
	Questions QuestionSource
}

func NewScoringService(questions QuestionSource) *ScoringService {
	return &ScoringService{Questions: questions}
}

// legacyQuestionsPerCategory is the fixed shape of the historical
// questionnaire: three questions per category, keyed "<category>_<n>".
const legacyQuestionsPerCategory = 3

var legacyQuestionCategory = func() map[string]model.CategoryKey {
	m := make(map[string]model.CategoryKey, len(model.AllCategories)*legacyQuestionsPerCategory)
	for _, cat := range model.AllCategories {
		for i := 1; i <= legacyQuestionsPerCategory; i++ {
			m[fmt.Sprintf("%s_%d", cat, i)] = cat
		}
	}
	return m
}()

// CalcScores scores the legacy fixed-mapping payload: answers keyed by the
// canonical question ids of the 15-question set. Unknown keys are a payload
// error and rejected eagerly; missing keys are fine, abandoned surveys are
// expected.
func (s *ScoringService) CalcScores(answers map[string]float64) (model.ScoreSet, error) {
	byCategory := make(map[model.CategoryKey][]float64, len(model.AllCategories))
	for key, raw := range answers {
		cat, ok := legacyQuestionCategory[key]
		if !ok {
			return model.ScoreSet{}, fmt.Errorf("%w: %q", util.ErrUnknownQuestion, key)
		}
		byCategory[cat] = append(byCategory[cat], scoring.NormalizeAnswer(raw))
	}
	return scoring.Aggregate(byCategory), nil
}

// KeyedScoreResult is the catalog-driven scoring output. QuestionKeys lists
// the keys that actually resolved; QuestionVersion is the highest catalog
// version among them.
type KeyedScoreResult struct {
	model.ScoreSet
	QuestionKeys    []string `json:"questionKeys"`
	QuestionVersion int      `json:"questionVersion"`
}

// CalcScoresFromKeys scores answers keyed by catalog question key. Values
// still carry the historical untagged encodings and go through range
// normalization. Keys that do not resolve to an active question are silently
// dropped.
func (s *ScoringService) CalcScoresFromKeys(answersByKey map[string]float64) (*KeyedScoreResult, error) {
	return s.scoreKeyed(answersByKey, true)
}

// scoreKeyed resolves keys against the catalog and aggregates. The tagged
// submission path decodes values before calling, so it skips normalization.
func (s *ScoringService) scoreKeyed(answersByKey map[string]float64, normalize bool) (*KeyedScoreResult, error) {
	keys := make([]string, 0, len(answersByKey))
	for k := range answersByKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	questions, err := s.Questions.FindActiveByKeys(keys)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]model.SurveyQuestion, len(questions))
	for _, q := range questions {
		byKey[q.Key] = q
	}

	byCategory := make(map[model.CategoryKey][]float64, len(model.AllCategories))
	usedKeys := make([]string, 0, len(keys))
	version := 1
	for _, key := range keys {
		q, ok := byKey[key]
		if !ok {
			continue
		}
		value := answersByKey[key]
		if normalize {
			value = scoring.NormalizeAnswer(value)
		}
		byCategory[q.Category] = append(byCategory[q.Category], value)
		usedKeys = append(usedKeys, key)
		if q.Version > version {
			version = q.Version
		}
	}

	return &KeyedScoreResult{
		ScoreSet:        scoring.Aggregate(byCategory),
		QuestionKeys:    usedKeys,
		QuestionVersion: version,
	}, nil
}
