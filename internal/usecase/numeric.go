package usecase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SafeFloat coerces an arbitrary value (number, numeric string, json.Number)
// to a finite float64. nil, blank or non-numeric strings, NaN and ±Inf all
// report ok=false so callers can distinguish "no data" from "value is zero".
func SafeFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

// LossyFloat is the aggregation-side coercion: anything SafeFloat rejects
// contributes zero instead of being dropped.
func LossyFloat(v any) float64 {
	f, ok := SafeFloat(v)
	if !ok {
		return 0
	}
	return f
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
