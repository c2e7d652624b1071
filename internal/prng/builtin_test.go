package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitMix64IsDeterministicGivenSameSeed(t *testing.T) {
	a := NewSplitMix64Seeded(42)
	b := NewSplitMix64Seeded(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Bits64(), b.Bits64())
	}
}

func TestSplitMix64DiffersAcrossSeeds(t *testing.T) {
	a := NewSplitMix64Seeded(1)
	b := NewSplitMix64Seeded(2)
	require.NotEqual(t, a.Bits64(), b.Bits64())
}

func TestSplitMix64U01InUnitInterval(t *testing.T) {
	g := NewSplitMix64Seeded(7)
	for i := 0; i < 1000; i++ {
		u := g.U01()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestSplitMix64Bits32IsTopHalfOfBits64(t *testing.T) {
	a := NewSplitMix64Seeded(99)
	b := NewSplitMix64Seeded(99)
	require.Equal(t, uint32(a.Bits64()>>32), b.Bits32())
}

type fixedSeeder struct{ seeds []uint64 }

func (f *fixedSeeder) Seed64() uint64 {
	v := f.seeds[0]
	f.seeds = f.seeds[1:]
	return v
}

func TestXorshift64StarRerollsOnZeroSeed(t *testing.T) {
	src := &fixedSeeder{seeds: []uint64{0, 0, 123}}
	g := NewXorshift64Star(src)
	require.NotZero(t, g.v)
}

func TestXorshift64StarProducesVaryingOutput(t *testing.T) {
	src := &fixedSeeder{seeds: []uint64{0xdeadbeefcafef00d}}
	g := NewXorshift64Star(src)
	first := g.Bits32()
	second := g.Bits32()
	require.NotEqual(t, first, second)
}

func TestPCG32AdvancesLCGState(t *testing.T) {
	src := &fixedSeeder{seeds: []uint64{1}}
	g := NewPCG32(src)
	before := g.x
	g.Bits32()
	require.Equal(t, before*6364136223846793005+12345, g.x)
}

func TestUint64ToUDoubleInUnitInterval(t *testing.T) {
	require.Equal(t, 0.0, uint64ToUDouble(0))
	require.Less(t, uint64ToUDouble(^uint64(0)), 1.0)
}

func TestBits32ToUDoubleInUnitInterval(t *testing.T) {
	require.Equal(t, 0.0, bits32ToUDouble(0))
	require.Less(t, bits32ToUDouble(^uint32(0)), 1.0)
}
