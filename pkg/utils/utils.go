package utils

import (
	"math"
	"strings"
)

// Round2 rounds to cents
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite reports whether value is neither NaN nor infinite
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// NormalizeDecimal rewrites user-typed numbers into the form strconv accepts.
// Both "1000.50" and the Brazilian "1.000,50" become "1000.50".
func NormalizeDecimal(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}
