package model

import "encoding/json"

type GuideStatus string

const (
	GuideDraft     GuideStatus = "draft"
	GuidePublished GuideStatus = "published"
)

// Guide is a remediation content unit owned by the content-management side.
// The engine only ever reads published guides; ContentByLevel is a partial
// mapping, a guide need not cover every level.
// swagger:model Guide
type Guide struct {
	BaseModel
	Slug             string          `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Title            string          `gorm:"size:255;not null" json:"title"`
	Category         CategoryKey     `gorm:"size:40;index;not null" json:"category"`
	Status           GuideStatus     `gorm:"size:20;index;default:'draft'" json:"status"`
	Summary          string          `gorm:"type:text" json:"summary"`
	ContentByLevel   json.RawMessage `gorm:"type:json" json:"contentByLevel,omitempty"`
	EstimatedMinutes int             `gorm:"default:0" json:"estimatedMinutes"`
}

func (Guide) TableName() string {
	return "guides"
}

// LevelContent decodes ContentByLevel. A nil or malformed payload decodes to
// an empty map rather than an error; a guide without level variants is valid.
func (g *Guide) LevelContent() map[Level]json.RawMessage {
	out := make(map[Level]json.RawMessage)
	if len(g.ContentByLevel) == 0 {
		return out
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(g.ContentByLevel, &raw); err != nil {
		return out
	}
	for k, v := range raw {
		out[Level(k)] = v
	}
	return out
}

func (g *Guide) HasLevel(l Level) bool {
	_, ok := g.LevelContent()[l]
	return ok
}

// FirstLevel returns the lowest band the guide carries content for, or ""
// when it has no level variants at all.
func (g *Guide) FirstLevel() Level {
	content := g.LevelContent()
	for _, l := range LevelsInOrder {
		if _, ok := content[l]; ok {
			return l
		}
	}
	return ""
}
