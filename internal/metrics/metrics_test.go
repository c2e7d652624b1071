package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordTestIncrementsPValuesAndSuspicious(t *testing.T) {
	before := testutil.ToFloat64(PValuesRecorded.WithLabelValues("TestBattery", "gen1"))
	RecordTest("TestBattery", "BirthdaySpacings", "gen1", 0.01, []float64{0.5, 1e-20}, 0.001)
	after := testutil.ToFloat64(PValuesRecorded.WithLabelValues("TestBattery", "gen1"))
	require.Equal(t, float64(2), after-before)

	suspicious := testutil.ToFloat64(SuspiciousPValues.WithLabelValues("TestBattery", "gen1"))
	require.GreaterOrEqual(t, suspicious, float64(1))
}

func TestSetActiveWorkersReflectsGaugeValue(t *testing.T) {
	SetActiveWorkers("TestBattery2", 4)
	require.Equal(t, float64(4), testutil.ToFloat64(ActiveWorkers.WithLabelValues("TestBattery2")))
	SetActiveWorkers("TestBattery2", 0)
	require.Equal(t, float64(0), testutil.ToFloat64(ActiveWorkers.WithLabelValues("TestBattery2")))
}

func TestRecordSeedIssuedIncrementsCounter(t *testing.T) {
	before := testutil.ToFloat64(SeedsIssued)
	RecordSeedIssued()
	after := testutil.ToFloat64(SeedsIssued)
	require.Equal(t, before+1, after)
}
