package utils

import (
	"fmt"
	"math"
)

// Money moves through the API as decimal dollars, but sums and derived
// amounts are computed in integer cents to keep repeated additions exact.

// Cents converts a dollar amount to integer cents.
func Cents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// Dollars converts integer cents back to a dollar amount.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}

// FormatAmount renders a dollar amount with exactly two decimal places.
func FormatAmount(dollars float64) string {
	return fmt.Sprintf("%.2f", dollars)
}
