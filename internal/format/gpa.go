package format

import (
	"math"
	"strconv"
)

// GPA normalizes a GPA value of unknown upstream type for display.
//
// Numeric input is truncated (not rounded) to two decimal places by flooring
// the value scaled by 100. Nil, non-numeric, and unparsable input all
// normalize to 0. The function is idempotent: GPA(GPA(x)) == GPA(x).
func GPA(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Floor(f*100) / 100
}
