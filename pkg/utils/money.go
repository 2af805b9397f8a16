package utils

import "math"

// ToCents converts a decimal currency amount from the wire into cents
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
