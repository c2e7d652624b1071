package statlib

import (
	"fmt"

	"github.com/sibench-rng/rngbattery/internal/battery"
)

// The functions below are the Go analogue of TestU01's TestCbFunc factories
// (svaria_AppearanceSpacings_cb, smarsa_BirthdaySpacings_cb,
// smarsa_CollisionOver_cb, sknuth_CollisionPermut_cb, and friends in
// original_source/testu01_mt.cpp): each returns a battery.CallbackFunc
// closure that, when the dispatcher runs it, pulls a Library method,
// records one (or several) p-values against the worker's BatteryIO, and
// carries no state of its own between invocations — every parameter is
// closed over at battery-definition time, matching the original's
// allocate/call/record/free shape minus the allocate/free step a GC
// language doesn't need.

// BirthdaySpacingsCb builds a callback for the birthday-spacings family.
func BirthdaySpacingsCb(lib Library, n, r int, d int64, t int) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		p := lib.BirthdaySpacings(io.Gen, n, r, d, t)
		io.Add(td.ID(), td.Name(), p)
	}
}

// CollisionOverCb builds a callback for the collision-over-blocks family.
func CollisionOverCb(lib Library, n, r int, d int64, t int) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		p := lib.CollisionOver(io.Gen, n, r, d, t)
		io.Add(td.ID(), td.Name(), p)
	}
}

// GapCb builds a callback for the gap-test family.
func GapCb(lib Library, n, r int, alpha, beta float64) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		p := lib.Gap(io.Gen, n, r, alpha, beta)
		io.Add(td.ID(), td.Name(), p)
	}
}

// MatrixRankCb builds a callback for the matrix-rank family.
func MatrixRankCb(lib Library, n, r, s, l, k int) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		p := lib.MatrixRank(io.Gen, n, r, s, l, k)
		io.Add(td.ID(), td.Name(), p)
	}
}

// RandomWalk1Cb builds a callback for the RandomWalk1 family. Matching
// GetPValue_Walk, it records five p-values — one per H/M/J/R/C statistic —
// each carrying the base test's id and a statistic-qualified name.
func RandomWalk1Cb(lib Library, n, r, s int, l0, l1 int64) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		pv := lib.RandomWalk1(io.Gen, n, r, s, l0, l1)
		io.Add(td.ID(), fmt.Sprintf("%s H", td.Name()), pv.H)
		io.Add(td.ID(), fmt.Sprintf("%s M", td.Name()), pv.M)
		io.Add(td.ID(), fmt.Sprintf("%s J", td.Name()), pv.J)
		io.Add(td.ID(), fmt.Sprintf("%s R", td.Name()), pv.R)
		io.Add(td.ID(), fmt.Sprintf("%s C", td.Name()), pv.C)
	}
}

// HammingWeightCb builds a callback for the Hamming-weight family.
func HammingWeightCb(lib Library, n, r int, l int64) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		p := lib.HammingWeight(io.Gen, n, r, l)
		io.Add(td.ID(), td.Name(), p)
	}
}

// Fourier3Cb builds a callback for the Fourier-spectral family.
func Fourier3Cb(lib Library, k, r, s int) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		p := lib.Fourier3(io.Gen, k, r, s)
		io.Add(td.ID(), td.Name(), p)
	}
}

// LinearComplexityCb builds a callback for the linear-complexity family.
func LinearComplexityCb(lib Library, n, r, s int) battery.CallbackFunc {
	return func(td *battery.TestDescr, io *battery.BatteryIO) {
		p := lib.LinearComplexity(io.Gen, n, r, s)
		io.Add(td.ID(), td.Name(), p)
	}
}
