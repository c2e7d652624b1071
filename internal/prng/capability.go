// Package prng defines the PRNG capability boundary described in spec.md
// §3/§4.2: the operation set every generator — built in, externally loaded,
// or wrapping a third-party library — is accessed through, plus the
// plug-in/legacy-callback machinery bridging that boundary to the outside
// world.
package prng

import "errors"

// ErrUnsupportedOutput is returned (or, for the scalar capability check,
// signaled by a false ok) when a caller asks a generator for an output it
// does not implement — spec.md §4.2 and §7's UnsupportedOutput error kind.
var ErrUnsupportedOutput = errors.New("prng: unsupported output")

// Generator is the mandatory part of the PRNG capability: every generator,
// in-process or loaded from a plug-in, implements this.
type Generator interface {
	// Name identifies the generator for reports and diagnostics.
	Name() string
	// U01 returns a value in [0, 1), uniformly distributed over the
	// generator's native precision (2^32 or 2^52 equiprobable reals).
	U01() float64
	// Bits32 returns a uniformly distributed 32-bit value.
	Bits32() uint32
}

// The remaining capability-set operations are optional ("nullable" in
// spec.md's terms). Rather than a struct of nullable function pointers, the
// in-process boundary expresses optionality the idiomatic Go way: a
// generator either implements one of these extension interfaces or it
// doesn't, and callers use a type assertion to find out. The externally
// loaded plug-in boundary (cmodule.go) still uses an explicit nullable
// struct-of-function-pointers shape, because that one has to survive being
// compiled by a different toolchain — see DESIGN.md.

// Bits64Provider is implemented by generators that can produce 64-bit output.
type Bits64Provider interface {
	Bits64() uint64
}

// Array32Provider is implemented by generators that can fill a 32-bit buffer
// more efficiently than n successive Bits32 calls (e.g. SIMD-friendly
// block generation).
type Array32Provider interface {
	Array32(out []uint32)
}

// Array64Provider is the 64-bit analogue of Array32Provider.
type Array64Provider interface {
	Array64(out []uint64)
}

// Sum32Provider computes the modulo-32 sum of n successive outputs,
// advancing state as if n scalar calls had been made. It exists to defeat
// compiler/optimizer elimination of throughput benchmarks (spec.md §3).
type Sum32Provider interface {
	Sum32(n int) uint32
}

// Sum64Provider is the 64-bit analogue of Sum32Provider.
type Sum64Provider interface {
	Sum64(n int) uint64
}

// SelfTester is implemented by generators that carry deterministic reference
// vectors to validate their own implementation.
type SelfTester interface {
	SelfTest() bool
}

// Factory manufactures a single, independently seeded Generator. Invoking it
// twice must yield two generators with distinct seeds, distinct internal
// state, and no aliasing (spec.md §3's PrngFactory invariant). Each worker
// in the dispatcher owns exactly one Generator built from exactly one
// Factory call.
type Factory func() (Generator, error)

// Bits64 returns a generator's 64-bit output, or ErrUnsupportedOutput if it
// doesn't implement Bits64Provider.
func Bits64(g Generator) (uint64, error) {
	if b, ok := g.(Bits64Provider); ok {
		return b.Bits64(), nil
	}
	return 0, ErrUnsupportedOutput
}

// Array32 fills out using a generator's Array32Provider if present, or
// ErrUnsupportedOutput otherwise. Callers that want a transparent fallback
// to successive Bits32 calls should use FillArray32 instead; this function
// exists because some call sites (the CLI's vectorized stdout sinks) must
// surface the unsupported-output error rather than silently degrade.
func Array32(g Generator, out []uint32) error {
	if a, ok := g.(Array32Provider); ok {
		a.Array32(out)
		return nil
	}
	return ErrUnsupportedOutput
}

// Array64 is the 64-bit analogue of Array32.
func Array64(g Generator, out []uint64) error {
	if a, ok := g.(Array64Provider); ok {
		a.Array64(out)
		return nil
	}
	return ErrUnsupportedOutput
}

// FillArray32 fills out with n := len(out) 32-bit outputs, using the
// generator's own Array32Provider when available and falling back to n
// successive Bits32 calls otherwise — the "equivalent to n successive
// calls" guarantee from spec.md §4.2.
func FillArray32(g Generator, out []uint32) {
	if a, ok := g.(Array32Provider); ok {
		a.Array32(out)
		return
	}
	for i := range out {
		out[i] = g.Bits32()
	}
}

// FillArray64 is the 64-bit analogue of FillArray32, falling back to
// Bits64Provider when no Array64Provider is present.
func FillArray64(g Generator, out []uint64) error {
	if a, ok := g.(Array64Provider); ok {
		a.Array64(out)
		return nil
	}
	b, ok := g.(Bits64Provider)
	if !ok {
		return ErrUnsupportedOutput
	}
	for i := range out {
		out[i] = b.Bits64()
	}
	return nil
}

// Sum32 returns the modulo-32 sum of n outputs, using Sum32Provider when
// present and falling back to n successive Bits32 calls otherwise.
func Sum32(g Generator, n int) uint32 {
	if s, ok := g.(Sum32Provider); ok {
		return s.Sum32(n)
	}
	var sum uint32
	for i := 0; i < n; i++ {
		sum += g.Bits32()
	}
	return sum
}

// Sum64 is the 64-bit analogue of Sum32, returning ErrUnsupportedOutput if
// the generator has neither Sum64Provider nor Bits64Provider.
func Sum64(g Generator, n int) (uint64, error) {
	if s, ok := g.(Sum64Provider); ok {
		return s.Sum64(n), nil
	}
	b, ok := g.(Bits64Provider)
	if !ok {
		return 0, ErrUnsupportedOutput
	}
	var sum uint64
	for i := 0; i < n; i++ {
		sum += b.Bits64()
	}
	return sum, nil
}

// RunSelfTest runs a generator's self-test if it implements SelfTester. The
// bool return distinguishes "implemented and passed/failed" from "not
// implemented" (spec.md §7's PrngMissingSelfTest).
func RunSelfTest(g Generator) (passed bool, implemented bool) {
	if st, ok := g.(SelfTester); ok {
		return st.SelfTest(), true
	}
	return false, false
}
