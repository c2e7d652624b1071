package battery

import (
	"fmt"

	"github.com/sibench-rng/rngbattery/internal/prng"
	"github.com/sibench-rng/rngbattery/internal/report"
)

// Version is the string stamped into every rendered report's header.
const Version = "rngbattery 1.0"

// Battery is a named, ordered list of tests plus the PRNG factory they run
// against — the Go analogue of TestsBattery in
// original_source/testu01_mt.h/.cpp (SmallCrush, Crush, BigCrush,
// pseudoDIEHARD are all instances of this shape; see internal/statlib for
// the declarative test lists themselves).
type Battery struct {
	Name     string
	Tests    []TestDescr
	Factory  prng.Factory
	Parallel bool // false selects the *_ser (serial) variant
}

// Run executes every test in the battery and renders the summary report.
func (b *Battery) Run() (string, *RunResult, error) {
	d := &Dispatcher{Name: b.Name, Factory: b.Factory, Parallel: b.Parallel}
	result, err := d.Run(b.Tests)
	if err != nil {
		return "", nil, err
	}
	return renderReport(b.Name, result), result, nil
}

// RunTest executes only the tests sharing id. A non-positive id runs the
// whole battery, matching TestsBattery::RunTest's id<=0 fallback. Returns
// an error if id is positive but no test in the battery carries it.
func (b *Battery) RunTest(id int) (string, *RunResult, error) {
	if id <= 0 {
		return b.Run()
	}

	var selected []TestDescr
	for _, t := range b.Tests {
		if t.ID() == id {
			selected = append(selected, t)
		}
	}
	if len(selected) == 0 {
		return "", nil, fmt.Errorf("battery %q has no test with id %d", b.Name, id)
	}

	d := &Dispatcher{Name: b.Name, Factory: b.Factory, Parallel: b.Parallel}
	result, err := d.Run(selected)
	if err != nil {
		return "", nil, err
	}
	return renderReport(b.Name, result), result, nil
}

func renderReport(batteryName string, result *RunResult) string {
	return report.WriteReport(report.Summary{
		BatteryName:   batteryName,
		GeneratorName: result.GeneratorName,
		Version:       Version,
		Results:       result.Results,
		CPUTime:       result.CPUTime,
		WallTime:      result.WallTime,
	})
}
