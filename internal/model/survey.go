package model

import "encoding/json"

type SurveyType string

const (
	SurveyBaseline  SurveyType = "baseline"
	SurveyPulse     SurveyType = "pulse"
	SurveyQuarterly SurveyType = "quarterly"
)

// SurveySubmission is the persisted record of one scored questionnaire.
// Answers keeps the raw payload as submitted so historical encodings can be
// re-scored later; Scores holds the computed per-category result.
// swagger:model SurveySubmission
type SurveySubmission struct {
	UUIDBase
	OrgID           uint            `gorm:"index;not null" json:"orgId"`
	SurveyType      SurveyType      `gorm:"size:20;default:'baseline'" json:"surveyType"`
	Answers         json.RawMessage `gorm:"type:json" json:"answers"`
	Scores          json.RawMessage `gorm:"type:json" json:"scores"`
	Total           float64         `gorm:"default:0" json:"total"`
	QuestionVersion int             `gorm:"default:1" json:"questionVersion"`
}

func (SurveySubmission) TableName() string {
	return "survey_submissions"
}

// ScoreSet decodes the stored per-category scores. Missing categories come
// back as 0 so callers always see a complete map.
func (s *SurveySubmission) ScoreSet() ScoreSet {
	scores := make(CategoryScores, len(AllCategories))
	for _, c := range AllCategories {
		scores[c] = 0
	}
	if len(s.Scores) > 0 {
		var raw map[CategoryKey]float64
		if err := json.Unmarshal(s.Scores, &raw); err == nil {
			for k, v := range raw {
				if k.Valid() {
					scores[k] = v
				}
			}
		}
	}
	return ScoreSet{Scores: scores, Total: s.Total}
}
