// Package metrics exposes the dispatcher's live diagnostics —
// active workers, tests pulled from the shared pull cursor, p-values
// recorded, and seeds issued by the entropy service — as Prometheus
// collectors, in the promauto registration style
// _examples/pronitdas-poker-platform-b2b/internal/fraud/metrics.go uses for
// its own package-level metric vars plus small Record*/Update* helpers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveWorkers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rngbattery_active_workers",
		Help: "Number of dispatcher worker goroutines currently running.",
	}, []string{"battery"})

	TestsPulled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rngbattery_tests_pulled_total",
		Help: "Total number of tests claimed from the dispatcher's pull cursor.",
	}, []string{"battery"})

	PValuesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rngbattery_pvalues_recorded_total",
		Help: "Total number of p-value records added to a battery's results.",
	}, []string{"battery", "generator"})

	SuspiciousPValues = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rngbattery_suspicious_pvalues_total",
		Help: "Total number of p-value records falling outside the suspicious band.",
	}, []string{"battery", "generator"})

	SeedsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rngbattery_seeds_issued_total",
		Help: "Total number of 64-bit seeds issued by the entropy service.",
	})

	TestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rngbattery_test_duration_seconds",
		Help:    "Wall-clock duration of a single test callback invocation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"battery", "test"})

	BatteryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rngbattery_battery_duration_seconds",
		Help:    "Wall-clock duration of a full battery run.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"battery"})
)

// RecordTest records one test callback's duration and resulting p-value
// count for a battery/generator pair.
func RecordTest(batteryName, testName, generatorName string, duration float64, pvalues []float64, epsilon float64) {
	TestDuration.WithLabelValues(batteryName, testName).Observe(duration)
	for _, p := range pvalues {
		PValuesRecorded.WithLabelValues(batteryName, generatorName).Inc()
		if p < epsilon || p > 1-epsilon {
			SuspiciousPValues.WithLabelValues(batteryName, generatorName).Inc()
		}
	}
}

// RecordTestPulled increments the tests-pulled counter for a battery.
func RecordTestPulled(batteryName string) {
	TestsPulled.WithLabelValues(batteryName).Inc()
}

// SetActiveWorkers sets the active-worker gauge for a battery run.
func SetActiveWorkers(batteryName string, n int) {
	ActiveWorkers.WithLabelValues(batteryName).Set(float64(n))
}

// RecordBatteryRun records a full battery run's wall-clock duration.
func RecordBatteryRun(batteryName string, duration float64) {
	BatteryDuration.WithLabelValues(batteryName).Observe(duration)
}

// RecordSeedIssued increments the seeds-issued counter by one.
func RecordSeedIssued() {
	SeedsIssued.Inc()
}
