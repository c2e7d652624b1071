package battery

import (
	"runtime"
	"sync"
	"time"

	"github.com/sibench-rng/rngbattery/internal/logger"
	"github.com/sibench-rng/rngbattery/internal/metrics"
	"github.com/sibench-rng/rngbattery/internal/prng"
	"github.com/sibench-rng/rngbattery/internal/report"
)

// Dispatcher runs an ordered list of tests against a pool of worker
// goroutines, each with its own PRNG instance. Grounded on TestsPull::Run
// in original_source/testu01_mt.cpp.
type Dispatcher struct {
	// Name labels this run's metrics (battery name, or "" for an ad hoc
	// dispatch); purely a diagnostics label, never used for control flow.
	Name string
	// Factory manufactures one Generator per worker. Each worker owns
	// exactly one instance for its whole run.
	Factory prng.Factory
	// Parallel forces serial (single-worker) execution when false — the
	// *_ser battery variant's Open Question decision (see DESIGN.md):
	// rather than a second code path, the serial batteries just call Run
	// with Parallel=false, reusing every other piece of the dispatcher.
	Parallel bool
}

// RunResult bundles everything a caller needs to render or persist a
// battery run: the merged report, the worker count (used to split the
// protocol's seed table per thread), and the timings.
type RunResult struct {
	GeneratorName string
	Results       *report.Results
	NThreads      int
	CPUTime       time.Duration
	WallTime      time.Duration
}

// Run executes every test in tests exactly once, merges the per-worker
// results into a single stable-by-ID-sorted report.Results, and returns the
// accumulated timings. Matches spec.md §4.3's dispatch algorithm.
func (d *Dispatcher) Run(tests []TestDescr) (*RunResult, error) {
	pull := NewTestsPull(tests)

	nthreads := 1
	if d.Parallel {
		nthreads = ThreadCount(runtime.GOMAXPROCS(0), pull.Len())
	}
	logger.Infof("=====> Number of threads: %d\n", nthreads)
	metrics.SetActiveWorkers(d.Name, nthreads)
	defer metrics.SetActiveWorkers(d.Name, 0)

	workers := make([]*BatteryIO, nthreads)
	workerCPU := make([]time.Duration, nthreads)
	var genName string

	var wg sync.WaitGroup

	wallStart := time.Now()
	for w := 0; w < nthreads; w++ {
		gen, err := d.Factory()
		if err != nil {
			return nil, err
		}
		if w == 0 {
			genName = gen.Name()
		}
		workers[w] = NewBatteryIO(gen)

		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			start := time.Now()
			runWorker(d.Name, id, pull, workers[id])
			workerCPU[id] = time.Since(start)
		}(w)
	}
	wg.Wait()
	wallElapsed := time.Since(wallStart)

	merged := &report.Results{}
	var cpuTotal time.Duration
	for i, w := range workers {
		merged.Merge(w.Results)
		cpuTotal += workerCPU[i]
	}

	metrics.RecordBatteryRun(d.Name, wallElapsed.Seconds())

	return &RunResult{
		GeneratorName: genName,
		Results:       merged,
		NThreads:      nthreads,
		CPUTime:       cpuTotal,
		WallTime:      wallElapsed,
	}, nil
}

// runWorker is TestsPull::ThreadFunc: repeatedly pull a test, run it against
// this worker's own BatteryIO, and log progress to the diagnostic stream
// (internal/logger, which prints to stdout) on start and finish.
func runWorker(batteryName string, id int, pull *TestsPull, io *BatteryIO) {
	logger.Debugf("vvvvvvvvvv  Thread #%d started  vvvvvvvvvv\n", id)
	for {
		td, posMsg := pull.Get()
		if td == nil {
			break
		}
		metrics.RecordTestPulled(batteryName)
		logger.Debugf("vvvvv  Thread #%d: test %s started (%s)\n", id, td.Name(), posMsg)
		before := len(io.Results.Records())
		start := time.Now()
		td.Run(io)
		duration := time.Since(start)
		after := len(io.Results.Records())
		if after > before {
			newRecords := io.Results.Records()[before:after]
			pvalues := make([]float64, len(newRecords))
			for i, r := range newRecords {
				pvalues[i] = r.PValue
			}
			metrics.RecordTest(batteryName, td.Name(), io.Gen.Name(), duration.Seconds(), pvalues, report.DefaultEpsilon)
			logger.Debugf("^^^^^  Thread #%d: test %s finished (%s); p = %v\n",
				id, td.Name(), posMsg, newRecords)
		} else {
			logger.Debugf("^^^^^  Thread #%d: test %s finished (%s)\n", id, td.Name(), posMsg)
		}
	}
	logger.Debugf("^^^^^^^^^^  Thread #%d finished  ^^^^^^^^^^\n", id)
}
