package report

import (
	"fmt"
	"time"
)

// FormatHMSCentis renders d as "hh:mm:ss.cc" (centiseconds), the format
// TestU01's chrono_Write(timer, chrono_hms) uses for total CPU time.
func FormatHMSCentis(d time.Duration) string {
	return formatHMS(d, 100, "%02d:%02d:%02d.%02d")
}

// FormatHMSMillis renders d as "hh:mm:ss.mmm" (milliseconds), used for the
// dispatcher's wall-clock elapsed time.
func FormatHMSMillis(d time.Duration) string {
	return formatHMS(d, 1000, "%02d:%02d:%02d.%03d")
}

func formatHMS(d time.Duration, subunitsPerSecond int64, layout string) string {
	total := d.Milliseconds()
	subMillis := int64(1000) / subunitsPerSecond
	sub := (total / subMillis) % subunitsPerSecond
	totalSeconds := total / 1000
	s := totalSeconds % 60
	m := (totalSeconds / 60) % 60
	h := totalSeconds / 3600
	return fmt.Sprintf(layout, h, m, s, sub)
}
