package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// PValueRecord is one test's recorded outcome. Several records may share the
// same TestID (a test family emitting more than one p-value), matching
// original_source's PValueRecord.
type PValueRecord struct {
	TestID int
	Name   string
	PValue float64
}

// Results is the per-worker (or, after merge, battery-wide) ordered
// collection of PValueRecords — the Go analogue of BatteryIO's results
// vector in original_source/testu01_mt.h. It is not safe for concurrent
// use; each dispatcher worker owns its own instance, exactly like the
// original's "not thread safe, each thread should use its own" contract.
type Results struct {
	records []PValueRecord
}

// Add appends a new record in program order.
func (r *Results) Add(testID int, name string, pvalue float64) {
	r.records = append(r.records, PValueRecord{TestID: testID, Name: name, PValue: pvalue})
}

// Merge appends another Results' records into r and stable-sorts the
// combined set by TestID — BatteryIO::Add(const BatteryIO&)'s
// concatenate-then-sort behavior.
func (r *Results) Merge(other *Results) {
	r.records = append(r.records, other.records...)
	sort.SliceStable(r.records, func(i, j int) bool {
		return r.records[i].TestID < r.records[j].TestID
	})
}

// Records returns the accumulated records in their current order.
func (r *Results) Records() []PValueRecord {
	return r.records
}

// NFailed counts records whose p-value falls outside the suspicious band.
func (r *Results) NFailed(epsilon float64) int {
	n := 0
	for _, rec := range r.records {
		if Suspicious(rec.PValue, epsilon) {
			n++
		}
	}
	return n
}

// Summary is the rendered-report input: battery/generator identity, elapsed
// timings and the merged result set. It plays the role of BatteryResults +
// the arguments to BatteryIO::WriteReport in the original.
type Summary struct {
	BatteryName  string
	GeneratorName string
	Version      string
	Results      *Results
	CPUTime      time.Duration // summed across worker goroutines
	WallTime     time.Duration
	Epsilon      float64 // 0 means DefaultEpsilon
}

// WriteReport renders a Summary into the classic TestU01 battery-summary
// text, per spec.md §4.4. Ported from
// BatteryIO::WriteReport in original_source/testu01_mt.cpp.
func WriteReport(s Summary) string {
	epsilon := s.Epsilon
	if epsilon == 0 {
		epsilon = DefaultEpsilon
	}

	var b strings.Builder
	b.WriteString("\n========= Summary results of ")
	b.WriteString(s.BatteryName)
	b.WriteString(" =========\n\n")
	if s.Version != "" {
		b.WriteString(" Version:          " + s.Version + "\n")
	}
	b.WriteString(" Generator:        " + s.GeneratorName + "\n")
	fmt.Fprintf(&b, "\n Number of statistics:  %d\n", len(s.Results.Records()))
	b.WriteString(" Total CPU time:   " + FormatHMSCentis(s.CPUTime) + "\n")
	b.WriteString(" Elapsed time:     " + FormatHMSMillis(s.WallTime) + "\n")

	if s.Results.NFailed(epsilon) == 0 {
		b.WriteString("\n\n All tests were passed\n\n\n\n")
		return b.String()
	}

	b.WriteString("\n The following tests gave p-values outside [")
	b.WriteString(formatEpsilon(epsilon))
	b.WriteString(", ")
	b.WriteString(formatEpsilon(1.0 - epsilon))
	b.WriteString("]:\n (eps  means a value < 1.0e-300)")
	b.WriteString(":\n (eps1 means a value < 1.0e-15)")
	b.WriteString(":\n\n       Test                          p-value\n")
	b.WriteString(" ----------------------------------------------\n")

	records := append([]PValueRecord(nil), s.Results.Records()...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TestID < records[j].TestID
	})
	for _, r := range records {
		if !Suspicious(r.PValue, epsilon) {
			continue
		}
		fmt.Fprintf(&b, " %2d %-30s%s\n", r.TestID, r.Name, FormatPValue(r.PValue))
	}

	b.WriteString(" ----------------------------------------------\n")
	b.WriteString(" All other tests were passed\n\n\n\n")
	return b.String()
}

func formatEpsilon(e float64) string {
	return FormatPValue(e)
}
