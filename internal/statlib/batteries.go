package statlib

import "github.com/sibench-rng/rngbattery/internal/battery"

// Parameters below are deliberately modest (small n, small block sizes):
// these batteries are meant to be runnable in the time a demonstration or
// a test suite affords, not to match TestU01's published sample sizes
// test for test. SmallCrush is the smallest and fastest; Crush and
// BigCrush scale sample sizes up; pseudoDIEHARD mirrors the older, looser
// DIEHARD-style battery TestU01 also ships as a legacy compatibility mode.

// SmallCrushTests returns the test list for the SmallCrush battery, the
// fastest of TestU01's standard batteries.
func SmallCrushTests(lib Library) []battery.TestDescr {
	return []battery.TestDescr{
		battery.NewTestDescr(1, "BirthdaySpacings", BirthdaySpacingsCb(lib, 200, 1, 1<<24, 1)),
		battery.NewTestDescr(2, "Collision", CollisionOverCb(lib, 500, 1, 1<<16, 1)),
		battery.NewTestDescr(3, "Gap", GapCb(lib, 2000, 1, 0, 0.5)),
		battery.NewTestDescr(4, "MatrixRank", MatrixRankCb(lib, 10, 1, 1, 32, 32)),
		battery.NewTestDescr(5, "RandomWalk1", RandomWalk1Cb(lib, 10, 1, 256, 0, 0)),
		battery.NewTestDescr(6, "HammingWeight", HammingWeightCb(lib, 500, 1, 32)),
		battery.NewTestDescr(7, "Fourier3", Fourier3Cb(lib, 256, 1, 20)),
		battery.NewTestDescr(8, "LinearComplexity", LinearComplexityCb(lib, 20, 1, 256)),
	}
}

// CrushTests returns the test list for the Crush battery: the same
// families as SmallCrush, run with heavier sample sizes.
func CrushTests(lib Library) []battery.TestDescr {
	return []battery.TestDescr{
		battery.NewTestDescr(1, "BirthdaySpacings", BirthdaySpacingsCb(lib, 2000, 1, 1<<28, 5)),
		battery.NewTestDescr(2, "Collision", CollisionOverCb(lib, 5000, 1, 1<<20, 5)),
		battery.NewTestDescr(3, "Gap", GapCb(lib, 20000, 1, 0, 0.5)),
		battery.NewTestDescr(4, "MatrixRank", MatrixRankCb(lib, 40, 1, 1, 64, 64)),
		battery.NewTestDescr(5, "RandomWalk1", RandomWalk1Cb(lib, 40, 1, 1024, 0, 0)),
		battery.NewTestDescr(6, "HammingWeight", HammingWeightCb(lib, 5000, 1, 32)),
		battery.NewTestDescr(7, "Fourier3", Fourier3Cb(lib, 1024, 1, 50)),
		battery.NewTestDescr(8, "LinearComplexity", LinearComplexityCb(lib, 50, 1, 1024)),
	}
}

// BigCrushTests returns the test list for the BigCrush battery: Crush's
// families again, at BigCrush-scale sample sizes.
func BigCrushTests(lib Library) []battery.TestDescr {
	return []battery.TestDescr{
		battery.NewTestDescr(1, "BirthdaySpacings", BirthdaySpacingsCb(lib, 20000, 1, 1<<30, 20)),
		battery.NewTestDescr(2, "Collision", CollisionOverCb(lib, 50000, 1, 1<<22, 20)),
		battery.NewTestDescr(3, "Gap", GapCb(lib, 200000, 1, 0, 0.5)),
		battery.NewTestDescr(4, "MatrixRank", MatrixRankCb(lib, 200, 1, 1, 100, 100)),
		battery.NewTestDescr(5, "RandomWalk1", RandomWalk1Cb(lib, 200, 1, 4096, 0, 0)),
		battery.NewTestDescr(6, "HammingWeight", HammingWeightCb(lib, 50000, 1, 32)),
		battery.NewTestDescr(7, "Fourier3", Fourier3Cb(lib, 4096, 1, 200)),
		battery.NewTestDescr(8, "LinearComplexity", LinearComplexityCb(lib, 200, 1, 4096)),
	}
}

// PseudoDIEHARDTests returns the test list for the legacy DIEHARD-style
// battery: a smaller subset, favoring the families DIEHARD itself shipped
// (birthday spacings, gap, rank tests).
func PseudoDIEHARDTests(lib Library) []battery.TestDescr {
	return []battery.TestDescr{
		battery.NewTestDescr(1, "BirthdaySpacings", BirthdaySpacingsCb(lib, 512, 1, 1<<24, 1)),
		battery.NewTestDescr(2, "Gap", GapCb(lib, 5000, 1, 0, 0.5)),
		battery.NewTestDescr(3, "MatrixRank", MatrixRankCb(lib, 40, 1, 1, 32, 32)),
		battery.NewTestDescr(4, "HammingWeight", HammingWeightCb(lib, 2000, 1, 32)),
	}
}
