package scoring

import (
	"fmt"
	"math"
)

// choiceSteps maps a 0-based option index from a 5-option radio group onto
// the 0–5 scale.
var choiceSteps = [5]float64{0, 1.25, 2.5, 3.75, 5}

// NormalizeAnswer maps a raw answer value onto the canonical 0–5 scale.
// Answers arrive in three incompatible encodings with no type tag, so the
// numeric range is the only signal. Priority order matters: exact legacy
// integers in {0..5} win over the index reading, so a literal index value
// that coincides with a legacy integer is never reinterpreted as an index.
// Do not reorder these checks.
func NormalizeAnswer(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	if raw == math.Trunc(raw) && raw >= 0 && raw <= 5 {
		return raw
	}
	if raw >= 0 && raw <= 4 {
		return choiceSteps[int(math.Round(raw))]
	}
	if raw >= 1 && raw <= 5 {
		return choiceSteps[int(math.Round(raw-1))]
	}
	if raw < 0 {
		return 0
	}
	return 5
}

// Answer encodings accepted on the tagged submission path. New integrations
// declare their encoding explicitly; range sniffing via NormalizeAnswer is
// kept only for historical payloads.
const (
	EncodingLegacy5     = "legacy5"
	EncodingIndex0to4   = "index0to4"
	EncodingOrdinal1to5 = "ordinal1to5"
)

// DecodeAnswer converts a tagged answer value onto the 0–5 scale. Unlike
// NormalizeAnswer it rejects values outside the declared encoding's range
// instead of guessing.
func DecodeAnswer(encoding string, value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("non-finite answer value")
	}
	switch encoding {
	case EncodingLegacy5:
		if value < 0 || value > 5 {
			return 0, fmt.Errorf("legacy5 answer %v out of range [0,5]", value)
		}
		return value, nil
	case EncodingIndex0to4:
		if value < 0 || value > 4 {
			return 0, fmt.Errorf("index0to4 answer %v out of range [0,4]", value)
		}
		return choiceSteps[int(math.Round(value))], nil
	case EncodingOrdinal1to5:
		if value < 1 || value > 5 {
			return 0, fmt.Errorf("ordinal1to5 answer %v out of range [1,5]", value)
		}
		return choiceSteps[int(math.Round(value-1))], nil
	}
	return 0, fmt.Errorf("unknown answer encoding %q", encoding)
}
