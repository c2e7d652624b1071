package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatHMSCentis(t *testing.T) {
	d := 1*time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond
	require.Equal(t, "01:02:03.45", FormatHMSCentis(d))
}

func TestFormatHMSMillis(t *testing.T) {
	d := 2*time.Hour + 5*time.Minute + 9*time.Second + 7*time.Millisecond
	require.Equal(t, "02:05:09.007", FormatHMSMillis(d))
}

func TestFormatHMSCentisZero(t *testing.T) {
	require.Equal(t, "00:00:00.00", FormatHMSCentis(0))
}

func TestFormatHMSMillisOverAnHour(t *testing.T) {
	d := 25 * time.Hour
	require.Equal(t, "25:00:00.000", FormatHMSMillis(d))
}
