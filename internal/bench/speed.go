// Package bench implements the "speed" battery: a throughput
// micro-benchmark over every output a generator's capability set exposes.
// Grounded on original_source/src/speedtest.cpp (measure_speed/test_speed/
// test_battery_speed): double niter until 500ms have elapsed, report
// nanoseconds per call, and subtract a "dummy" baseline generator's own
// measured overhead so the result isolates the generator's own work from
// call-dispatch overhead. The original additionally reports CPU-tick
// counts via a platform clock-cycle read; that has no portable Go stdlib
// equivalent and no pack dependency supplies one, so this port reports
// nanoseconds and throughput only (see DESIGN.md).
package bench

import (
	"time"

	"github.com/sibench-rng/rngbattery/internal/prng"
)

// Measurement holds one block function's corrected throughput result.
type Measurement struct {
	Label        string
	NsPerCallRaw float64
	NsPerCallCorrected float64
	GBPerSec     float64
}

// Report is the full speed-battery output for one generator.
type Report struct {
	GeneratorName string
	Measurements  []Measurement
}

// blockFunc runs niter iterations of one output kind and returns a value
// derived from the output, so the compiler can't prove the loop is
// dead and eliminate it — matching run_u01_block/run_uint32_block/etc. in
// speedtest.cpp, each of which sums its output into a returned value for
// the same reason.
type blockFunc func(gen prng.Generator, niter int) uint64

func runU01(gen prng.Generator, niter int) uint64 {
	var sum float64
	for i := 0; i < niter; i++ {
		sum += gen.U01()
	}
	return uint64(sum)
}

func runBits32(gen prng.Generator, niter int) uint64 {
	var sum uint32
	for i := 0; i < niter; i++ {
		sum += gen.Bits32()
	}
	return uint64(sum)
}

func runBits64(gen prng.Generator, niter int) uint64 {
	b64 := gen.(prng.Bits64Provider)
	var sum uint64
	for i := 0; i < niter; i++ {
		sum += b64.Bits64()
	}
	return sum
}

const elementsPerBlock = 256

func runArray32(gen prng.Generator, niter int) uint64 {
	a32 := gen.(prng.Array32Provider)
	buf := make([]uint32, elementsPerBlock)
	var sum uint32
	for i := 0; i < niter; i++ {
		a32.Array32(buf)
		sum += buf[0]
	}
	return uint64(sum)
}

func runArray64(gen prng.Generator, niter int) uint64 {
	a64 := gen.(prng.Array64Provider)
	buf := make([]uint64, elementsPerBlock)
	var sum uint64
	for i := 0; i < niter; i++ {
		a64.Array64(buf)
		sum += buf[0]
	}
	return sum
}

func runSum32(gen prng.Generator, niter int) uint64 {
	s32 := gen.(prng.Sum32Provider)
	var sum uint32
	for i := 0; i < niter; i++ {
		sum += s32.Sum32(elementsPerBlock)
	}
	return uint64(sum)
}

func runSum64(gen prng.Generator, niter int) uint64 {
	s64 := gen.(prng.Sum64Provider)
	var sum uint64
	for i := 0; i < niter; i++ {
		sum += s64.Sum64(elementsPerBlock)
	}
	return sum
}

// measureSpeed doubles niter starting from 2 until at least 500ms have
// elapsed, then reports nanoseconds per call — the exact loop shape of
// measure_speed in speedtest.cpp.
func measureSpeed(factory prng.Factory, run blockFunc) (float64, error) {
	gen, err := factory()
	if err != nil {
		return 0, err
	}
	var nsPerCall float64
	for niter, elapsed := 2, time.Duration(0); elapsed < 500*time.Millisecond; niter <<= 1 {
		start := time.Now()
		run(gen, niter)
		elapsed = time.Since(start)
		nsPerCall = float64(elapsed.Nanoseconds()) / float64(niter)
	}
	return nsPerCall, nil
}

// dummyGenerator is an empty baseline generator implementing every optional
// capability trivially, used to measure and subtract call-dispatch overhead
// from the real generator's raw timing — the Go analogue of speedtest.cpp's
// dummy_cmodule.
type dummyGenerator struct{}

func (dummyGenerator) Name() string   { return "dummy" }
func (dummyGenerator) U01() float64   { return 0 }
func (dummyGenerator) Bits32() uint32 { return 0 }
func (dummyGenerator) Bits64() uint64 { return 0 }
func (dummyGenerator) Array32(out []uint32) {
	for i := range out {
		out[i] = 0
	}
}
func (dummyGenerator) Array64(out []uint64) {
	for i := range out {
		out[i] = 0
	}
}
func (dummyGenerator) Sum32(n int) uint32 { return 0 }
func (dummyGenerator) Sum64(n int) uint64 { return 0 }

func dummyFactory() (prng.Generator, error) { return dummyGenerator{}, nil }

func measure(label string, factory prng.Factory, run blockFunc, bytesPerCall float64) (Measurement, error) {
	raw, err := measureSpeed(factory, run)
	if err != nil {
		return Measurement{}, err
	}
	dummy, err := measureSpeed(dummyFactory, run)
	if err != nil {
		return Measurement{}, err
	}
	corrected := raw - dummy
	if corrected <= 0 {
		corrected = raw
	}
	gbPerSec := bytesPerCall / (1e-9 * corrected) / (1 << 30)
	return Measurement{
		Label:              label,
		NsPerCallRaw:        raw,
		NsPerCallCorrected:  corrected,
		GBPerSec:            gbPerSec,
	}, nil
}

// Speed runs the full speed battery against a generator built from
// factory: scalar U01/Bits32/Bits64 always, plus Array32/Array64/Sum32/
// Sum64 whenever the generator factory implements the corresponding
// capability — matching test_battery_speed's three-part
// scalar/vectorized/inlining structure.
func Speed(factory prng.Factory) (*Report, error) {
	probe, err := factory()
	if err != nil {
		return nil, err
	}

	report := &Report{GeneratorName: probe.Name()}

	addIf := func(label string, ok bool, run blockFunc, bytesPerCall float64) error {
		if !ok {
			return nil
		}
		m, err := measure(label, factory, run, bytesPerCall)
		if err != nil {
			return err
		}
		report.Measurements = append(report.Measurements, m)
		return nil
	}

	if err := addIf("double (U01)", true, runU01, 8); err != nil {
		return nil, err
	}
	if err := addIf("uint32 (Bits32)", true, runBits32, 4); err != nil {
		return nil, err
	}
	_, hasBits64 := probe.(prng.Bits64Provider)
	if err := addIf("uint64 (Bits64)", hasBits64, runBits64, 8); err != nil {
		return nil, err
	}
	_, hasArray32 := probe.(prng.Array32Provider)
	if err := addIf("array of uint32 (Array32)", hasArray32, runArray32, elementsPerBlock*4); err != nil {
		return nil, err
	}
	_, hasArray64 := probe.(prng.Array64Provider)
	if err := addIf("array of uint64 (Array64)", hasArray64, runArray64, elementsPerBlock*8); err != nil {
		return nil, err
	}
	_, hasSum32 := probe.(prng.Sum32Provider)
	if err := addIf("sum of uint32 (Sum32)", hasSum32, runSum32, elementsPerBlock*4); err != nil {
		return nil, err
	}
	_, hasSum64 := probe.(prng.Sum64Provider)
	if err := addIf("sum of uint64 (Sum64)", hasSum64, runSum64, elementsPerBlock*8); err != nil {
		return nil, err
	}

	return report, nil
}
