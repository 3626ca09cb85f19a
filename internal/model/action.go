package model

// ActionItem is a recommended guide, annotated with the maturity level the
// content was matched against. Built fresh per request, never persisted.
// swagger:model ActionItem
type ActionItem struct {
	Title            string      `json:"title"`
	Link             string      `json:"link"`
	Category         CategoryKey `json:"category"`
	EstimatedMinutes int         `json:"estimatedMinutes,omitempty"`
	Level            Level       `json:"level,omitempty"`
}
