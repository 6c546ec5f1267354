package utils

import (
	"math"
	"strconv"
)

// FormatAmount renders a money amount the way it appears in customer-facing
// messages: rounded to kopiykas, with no trailing zeros (100, not 100.00).
func FormatAmount(v float64) string {

	rounded := math.Round(v*100) / 100

	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
