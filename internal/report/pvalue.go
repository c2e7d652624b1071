// Package report renders BatteryResults into the classic TestU01-style
// summary text, plus the supplemental protocol and JSON sidecar files this
// rewrite adds. Grounded on BatteryIO::WritePValue/WriteReport in
// original_source/testu01_mt.cpp and sibench's incremental report.go.
package report

import (
	"fmt"
	"math"
)

// Default suspicious-band half-width (spec.md §4.4's ε = 0.001).
const DefaultEpsilon = 0.001

// epsilonLower/epsilonUpper1 mirror TestU01's gofw_Epsilonp/gofw_Epsilonp1:
// below these thresholds a p-value is considered to have collapsed past
// the precision double arithmetic can usefully distinguish, and is
// rendered as the literal "eps"/"1 - eps1" rather than a magnitude.
const (
	epsilonLower  = 1e-300
	epsilonUpper1 = 1e-15
)

// Suspicious reports whether p falls outside the band [epsilon, 1-epsilon];
// the bounds themselves count as passing.
func Suspicious(p, epsilon float64) bool {
	return p < epsilon || p > 1.0-epsilon
}

// FormatPValue renders a single p-value using the formatting rules in
// spec.md §4.4, applied in order. Ported from BatteryIO::WritePValue in
// original_source/testu01_mt.cpp (which in turn delegates to TestU01's
// gofw_Writep0 for the p < 0.01 branch).
func FormatPValue(p float64) string {
	switch {
	case p < epsilonLower:
		return "   eps  "
	case p < 0.01:
		return formatScientific2SigFigs(p)
	case p > 1.0-epsilonUpper1:
		return " 1 - eps1"
	case p > 0.9999:
		return " 1 - " + formatScientific2SigFigs(1.0-p)
	case p >= 0.01 && p <= 0.99:
		return fmt.Sprintf("%8.2f", p)
	default:
		return fmt.Sprintf("%8.4f", p)
	}
}

// formatScientific2SigFigs renders x with two significant digits in
// scientific notation, e.g. 0.0015 -> "1.5e-03".
func formatScientific2SigFigs(x float64) string {
	if x == 0 {
		return "0.0e+00"
	}
	exp := int(math.Floor(math.Log10(math.Abs(x))))
	mantissa := x / math.Pow(10, float64(exp))
	// Guard against rounding mantissa up to 10.0 (e.g. 9.999e-03 -> 10.0e-03).
	if mantissa >= 9.995 {
		mantissa /= 10
		exp++
	}
	return fmt.Sprintf("%.1fe%+03d", mantissa, exp)
}
