package utils

import "math"

// RoundUnit округляет сумму до целой денежной единицы.
// Половины округляются к чётному (0.5 -> 0, 1.5 -> 2, 2.5 -> 2).
func RoundUnit(value float64) int64 {
	return int64(math.RoundToEven(value))
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
