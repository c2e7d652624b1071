package statlib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sibench-rng/rngbattery/internal/prng"
)

func TestChiSquarePValueIsOneAtZeroStatistic(t *testing.T) {
	require.InDelta(t, 1.0, chiSquarePValue(0, 10), 0.05)
}

func TestChiSquarePValueShrinksAsStatGrows(t *testing.T) {
	small := chiSquarePValue(5, 10)
	large := chiSquarePValue(500, 10)
	require.Greater(t, small, large)
}

func TestReferenceBirthdaySpacingsProducesValidPValue(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(1)
	p := Reference{}.BirthdaySpacings(gen, 200, 1, 1<<20, 4)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestReferenceCollisionOverProducesValidPValue(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(2)
	p := Reference{}.CollisionOver(gen, 500, 1, 1<<16, 4)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestReferenceGapProducesValidPValue(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(3)
	p := Reference{}.Gap(gen, 2000, 1, 0, 0.5)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestReferenceMatrixRankProducesValidPValue(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(4)
	p := Reference{}.MatrixRank(gen, 20, 1, 1, 32, 32)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestReferenceRandomWalk1ProducesFiveValidPValues(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(5)
	pv := Reference{}.RandomWalk1(gen, 10, 1, 256, 0, 0)
	for _, p := range []float64{pv.H, pv.M, pv.J, pv.R, pv.C} {
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
	}
}

func TestReferenceHammingWeightProducesValidPValue(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(6)
	p := Reference{}.HammingWeight(gen, 1000, 1, 32)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestReferenceFourier3ProducesValidPValue(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(7)
	p := Reference{}.Fourier3(gen, 256, 1, 20)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestReferenceLinearComplexityProducesValidPValue(t *testing.T) {
	gen := prng.NewSplitMix64Seeded(8)
	p := Reference{}.LinearComplexity(gen, 20, 1, 256)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestBerlekampMasseyAllZerosHasZeroComplexity(t *testing.T) {
	seq := make([]int, 32)
	require.Equal(t, 0, berlekampMassey(seq))
}

func TestBerlekampMasseyAlternatingHasLowComplexity(t *testing.T) {
	seq := make([]int, 32)
	for i := range seq {
		seq[i] = i % 2
	}
	c := berlekampMassey(seq)
	require.LessOrEqual(t, c, 2)
}

func TestGF2RankOfIdentityIsFullRank(t *testing.T) {
	rows := []uint64{0b100, 0b010, 0b001}
	require.Equal(t, 3, gf2Rank(rows, 3))
}

func TestGF2RankOfDependentRowsIsLessThanFull(t *testing.T) {
	rows := []uint64{0b110, 0b011, 0b101}
	require.Less(t, gf2Rank(rows, 3), 3)
}
