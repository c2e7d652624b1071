package prng

// Built-in reference generators, ported field-for-field from the small
// single-file PRNGs in original_source/generators/*.c and
// original_source/splitmix_gen.c. These exist so the battery has something
// to run against without a plug-in, and so the dispatcher's tests don't
// depend on cgo or an external .so.

// seeder is satisfied by *entropy.Service; it's declared locally to avoid an
// import cycle (entropy has no reason to depend on prng).
type seeder interface {
	Seed64() uint64
}

// SplitMix64 is the fixed-increment SplitMix generator from
// original_source/splitmix_gen.c. NewSplitMix64Seeded gives the tests of
// other packages (bench, sink, statlib) a deterministic generator.
type SplitMix64 struct {
	x uint64
}

// NewSplitMix64 seeds a SplitMix64 generator from src.
func NewSplitMix64(src seeder) *SplitMix64 {
	return &SplitMix64{x: src.Seed64()}
}

// NewSplitMix64Seeded builds a SplitMix64 from an explicit seed, for
// reproducible tests and for deriving sub-streams from another generator's
// output.
func NewSplitMix64Seeded(seed uint64) *SplitMix64 {
	return &SplitMix64{x: seed}
}

func (g *SplitMix64) Name() string { return "SplitMix64" }

func (g *SplitMix64) Bits64() uint64 {
	const gamma uint64 = 0x9E3779B97F4A7C15
	g.x += gamma
	z := g.x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (g *SplitMix64) Bits32() uint32 {
	return uint32(g.Bits64() >> 32)
}

func (g *SplitMix64) U01() float64 {
	return uint64ToUDouble(g.Bits64())
}

// Xorshift64Star is the "Ranq1" generator from original_source's
// xorshift64st_shared.c — classical xorshift64 with a nonlinear
// multiplicative output stage.
type Xorshift64Star struct {
	v uint64
}

// NewXorshift64Star seeds from src, re-rolling on the zero state exactly as
// init_state does in the C original (xorshift has a fixed point at 0).
func NewXorshift64Star(src seeder) *Xorshift64Star {
	g := &Xorshift64Star{}
	for g.v == 0 {
		g.v = src.Seed64()
	}
	g.bits32Raw() // discard one output, matching init_state's warm-up call
	return g
}

func (g *Xorshift64Star) Name() string { return "xorshift64*" }

func (g *Xorshift64Star) bits32Raw() uint32 {
	g.v ^= g.v >> 12
	g.v ^= g.v << 25
	g.v ^= g.v >> 27
	u := g.v * 2685821657736338717
	return uint32(u >> 32)
}

func (g *Xorshift64Star) Bits32() uint32 {
	return g.bits32Raw()
}

func (g *Xorshift64Star) U01() float64 {
	return bits32ToUDouble(g.Bits32())
}

// PCG32 is O'Neill's PCG32 generator, ported from
// original_source/generators/pcg32_shared.c.
type PCG32 struct {
	x uint64
}

// NewPCG32 seeds from src.
func NewPCG32(src seeder) *PCG32 {
	return &PCG32{x: src.Seed64()}
}

func (g *PCG32) Name() string { return "PCG32" }

func (g *PCG32) Bits32() uint32 {
	xorshifted := uint32(((g.x >> 18) ^ g.x) >> 27)
	rot := uint32(g.x >> 59)
	g.x = g.x*6364136223846793005 + 12345
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

func (g *PCG32) U01() float64 {
	return bits32ToUDouble(g.Bits32())
}

// uint64ToUDouble maps a 64-bit word to [0, 1) using the top 52 bits, giving
// 2^52 equiprobable values (mirrors original_source/include's
// uint64_to_udouble helper).
func uint64ToUDouble(x uint64) float64 {
	return float64(x>>12) / (1 << 52)
}

// bits32ToUDouble maps a 32-bit word to [0, 1) at single precision, used by
// generators whose native output is 32 bits.
func bits32ToUDouble(x uint32) float64 {
	return float64(x) / 4294967296.0
}
