package schema

import (
	"math"
	"strconv"
)

// RatePrecision is the number of decimals used for all reported rates.
const RatePrecision = 4

// Round4 rounds a rate to four decimals, the precision used everywhere
// a rate is reported or compared.
func Round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// Rate computes survived/total rounded to four decimals, defined as 0
// when total is 0 to avoid division by zero.
func Rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round4(float64(part) / float64(total))
}

// FormatRate renders a rate with four decimals (e.g. "0.7000").
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', RatePrecision, 64)
}

// QualityIndex derives the dashboard's composite metric from a row's
// survival and rework rates. An unknown rework rate contributes zero,
// matching how the reference dashboard fills missing values.
func QualityIndex(survival, rework float64, reworkKnown bool) float64 {
	if !reworkKnown {
		rework = 0
	}
	return Round4(survival * (1 - rework))
}
