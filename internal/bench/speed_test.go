package bench

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sibench-rng/rngbattery/internal/prng"
)

func splitMixFactory() (prng.Generator, error) {
	return prng.NewSplitMix64Seeded(99), nil
}

func TestSpeedIncludesScalarMeasurementsForSplitMix64(t *testing.T) {
	report, err := Speed(splitMixFactory)
	require.NoError(t, err)
	require.Equal(t, "SplitMix64", report.GeneratorName)

	labels := make(map[string]bool)
	for _, m := range report.Measurements {
		labels[m.Label] = true
		require.Greater(t, m.GBPerSec, 0.0)
	}
	require.True(t, labels["double (U01)"])
	require.True(t, labels["uint32 (Bits32)"])
	require.True(t, labels["uint64 (Bits64)"])
}

func TestSpeedSkipsArrayAndSumWhenGeneratorLacksThem(t *testing.T) {
	report, err := Speed(splitMixFactory)
	require.NoError(t, err)
	for _, m := range report.Measurements {
		require.NotEqual(t, "array of uint32 (Array32)", m.Label)
		require.NotEqual(t, "sum of uint32 (Sum32)", m.Label)
	}
}

func TestDummyGeneratorImplementsEveryOptionalCapability(t *testing.T) {
	var g prng.Generator = dummyGenerator{}
	_, ok := g.(prng.Bits64Provider)
	require.True(t, ok)
	_, ok = g.(prng.Array32Provider)
	require.True(t, ok)
	_, ok = g.(prng.Array64Provider)
	require.True(t, ok)
	_, ok = g.(prng.Sum32Provider)
	require.True(t, ok)
	_, ok = g.(prng.Sum64Provider)
	require.True(t, ok)
}
