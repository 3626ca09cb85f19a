package model

// Level is the three-band maturity classification derived from a category
// score. Bands are ordered: foundation < core < advanced.
type Level string

const (
	LevelFoundation Level = "foundation"
	LevelCore       Level = "core"
	LevelAdvanced   Level = "advanced"
)

var LevelsInOrder = []Level{LevelFoundation, LevelCore, LevelAdvanced}

// LevelRank returns 0/1/2 for the three bands, -1 for anything else.
func LevelRank(l Level) int {
	switch l {
	case LevelFoundation:
		return 0
	case LevelCore:
		return 1
	case LevelAdvanced:
		return 2
	}
	return -1
}
