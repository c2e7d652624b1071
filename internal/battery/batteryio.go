package battery

import (
	"github.com/sibench-rng/rngbattery/internal/prng"
	"github.com/sibench-rng/rngbattery/internal/report"
)

// BatteryIO bundles one worker's PRNG with its own result set — the Go
// analogue of BatteryIO in original_source/testu01_mt.h, which likewise
// conflates "the generator this worker samples from" and "the p-values
// this worker has recorded so far" into a single not-thread-safe object
// owned by exactly one worker.
type BatteryIO struct {
	Gen     prng.Generator
	Results *report.Results
}

// NewBatteryIO wraps gen with a fresh, empty Results set.
func NewBatteryIO(gen prng.Generator) *BatteryIO {
	return &BatteryIO{Gen: gen, Results: &report.Results{}}
}

// Add records one test outcome, delegating to the underlying Results.
func (b *BatteryIO) Add(testID int, name string, pvalue float64) {
	b.Results.Add(testID, name, pvalue)
}
