package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPValueMidRange(t *testing.T) {
	require.Equal(t, "    0.50", FormatPValue(0.5))
}

func TestFormatPValueNearOneDefaultBand(t *testing.T) {
	require.Equal(t, "  0.9990", FormatPValue(0.999))
}

func TestFormatPValueSmallScientific(t *testing.T) {
	got := FormatPValue(0.001)
	require.Contains(t, got, "e-03")
}

func TestFormatPValueVeryCloseToOne(t *testing.T) {
	require.Equal(t, " 1 - eps1", FormatPValue(1.0-1e-16))
}

func TestFormatPValueExtremelySmall(t *testing.T) {
	require.Equal(t, "   eps  ", FormatPValue(1e-310))
}

func TestFormatPValueJustBelowOne(t *testing.T) {
	got := FormatPValue(1.0 - 1e-6)
	require.Contains(t, got, "1 - ")
	require.Contains(t, got, "e-")
}

func TestSuspiciousBand(t *testing.T) {
	require.True(t, Suspicious(0.0001, DefaultEpsilon))
	require.True(t, Suspicious(0.9999, DefaultEpsilon))
	require.False(t, Suspicious(0.5, DefaultEpsilon))
	require.False(t, Suspicious(DefaultEpsilon, DefaultEpsilon))
}
