package dataset

import "math"

// IsMissing reports whether v is nil or a NaN float.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	default:
		return false
	}
}

// ToFloat converts numeric cells to float64. Strings and bools are not numeric.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// ToInt converts integral numeric cells to int. Values outside the int range
// are rejected.
func ToInt(v any) (int, bool) {
	x, ok := ToFloat(v)
	if !ok || math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
		return 0, false
	}
	if x < math.MinInt || x >= -math.MinInt {
		return 0, false
	}
	return int(x), true
}
