package statlib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sibench-rng/rngbattery/internal/battery"
	"github.com/sibench-rng/rngbattery/internal/prng"
)

func newIO(seed uint64) *battery.BatteryIO {
	return battery.NewBatteryIO(prng.NewSplitMix64Seeded(seed))
}

func TestBirthdaySpacingsCbRecordsOneRecord(t *testing.T) {
	td := battery.NewTestDescr(1, "BirthdaySpacings", BirthdaySpacingsCb(Reference{}, 200, 1, 1<<20, 2))
	io := newIO(1)
	td.Run(io)
	require.Len(t, io.Results.Records(), 1)
	require.Equal(t, "BirthdaySpacings", io.Results.Records()[0].Name)
}

func TestRandomWalk1CbRecordsFiveRecords(t *testing.T) {
	td := battery.NewTestDescr(5, "RandomWalk1", RandomWalk1Cb(Reference{}, 5, 1, 128, 0, 0))
	io := newIO(2)
	td.Run(io)
	records := io.Results.Records()
	require.Len(t, records, 5)
	for _, r := range records {
		require.Equal(t, 5, r.TestID)
	}
	require.Contains(t, records[0].Name, "RandomWalk1")
}

func TestSmallCrushTestsHasEightEntries(t *testing.T) {
	tests := SmallCrushTests(Reference{})
	require.Len(t, tests, 8)
}

func TestSmallCrushRunsEndToEndThroughBattery(t *testing.T) {
	b := &battery.Battery{
		Name:     "SmallCrush",
		Tests:    SmallCrushTests(Reference{}),
		Factory:  func() (prng.Generator, error) { return prng.NewSplitMix64Seeded(42), nil },
		Parallel: false,
	}
	text, result, err := b.Run()
	require.NoError(t, err)
	require.Contains(t, text, "SmallCrush")
	require.GreaterOrEqual(t, len(result.Results.Records()), 8)
}

func TestPseudoDIEHARDTestsHasFourEntries(t *testing.T) {
	require.Len(t, PseudoDIEHARDTests(Reference{}), 4)
}
