package model

import "encoding/json"

// Benchmark is an external reference score set on the same 0–5 scale,
// read-only from the engine's perspective.
// swagger:model Benchmark
type Benchmark struct {
	BaseModel
	Year   int             `gorm:"index;not null" json:"year"`
	Source string          `gorm:"size:255" json:"source"`
	Values json.RawMessage `gorm:"type:json" json:"values"`
}

func (Benchmark) TableName() string {
	return "benchmarks"
}

// Mapping decodes the per-category reference scores, dropping unknown keys.
func (b *Benchmark) Mapping() CategoryScores {
	out := make(CategoryScores)
	if len(b.Values) == 0 {
		return out
	}
	var raw map[CategoryKey]float64
	if err := json.Unmarshal(b.Values, &raw); err != nil {
		return out
	}
	for k, v := range raw {
		if k.Valid() {
			out[k] = v
		}
	}
	return out
}
