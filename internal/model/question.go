package model

// SurveyQuestion is one entry of the versioned question catalog. The legacy
// fixed-mapping scoring path bypasses this table entirely; the by-key path
// resolves answers through it and silently drops keys that are unknown or
// inactive.
// swagger:model SurveyQuestion
type SurveyQuestion struct {
	BaseModel
	Key      string      `gorm:"size:80;uniqueIndex;not null" json:"key"`
	Category CategoryKey `gorm:"size:40;index;not null" json:"category"`
	Text     string      `gorm:"type:text" json:"text"`
	Version  int         `gorm:"default:1" json:"version"`
	Order    int         `gorm:"default:0" json:"order"`
	Active   bool        `gorm:"default:true;index" json:"active"`
}

func (SurveyQuestion) TableName() string {
	return "survey_questions"
}
