package model

// CategoryKey is one of the five fixed business-capability buckets scored
// independently. The set is closed; there are no dynamic categories.
type CategoryKey string

const (
	CategoryCollaboration  CategoryKey = "collaboration"
	CategorySecurity       CategoryKey = "security"
	CategoryFinanceOps     CategoryKey = "financeOps"
	CategorySalesMarketing CategoryKey = "salesMarketing"
	CategorySkillsCulture  CategoryKey = "skillsCulture"
)

// AllCategories is the canonical enumeration order. Sweep tie-breaks and
// seeded data both rely on this order staying stable.
var AllCategories = []CategoryKey{
	CategoryCollaboration,
	CategorySecurity,
	CategoryFinanceOps,
	CategorySalesMarketing,
	CategorySkillsCulture,
}

var categoryIndex = func() map[CategoryKey]int {
	m := make(map[CategoryKey]int, len(AllCategories))
	for i, c := range AllCategories {
		m[c] = i
	}
	return m
}()

// CategoryRank returns the position of c in the canonical order, or -1 for an
// unknown key.
func CategoryRank(c CategoryKey) int {
	if i, ok := categoryIndex[c]; ok {
		return i
	}
	return -1
}

func (c CategoryKey) Valid() bool {
	_, ok := categoryIndex[c]
	return ok
}

// CategoryScores maps every category to its 0–5 score. A complete map always
// carries all five keys, defaulting to 0 where no answers exist.
type CategoryScores map[CategoryKey]float64

// ScoreSet is the aggregation output: per-category scores plus the overall
// total (average of the five rounded category scores, itself rounded).
type ScoreSet struct {
	Scores CategoryScores `json:"scores"`
	Total  float64        `json:"total"`
}
