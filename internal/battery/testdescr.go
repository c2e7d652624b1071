// Package battery implements the parallel test dispatcher: an ordered list
// of tests pulled by a fixed pool of workers, each with its own PRNG, merged
// into a single stable-ordered report. Grounded on TestsPull/TestsBattery in
// original_source/testu01_mt.h and testu01_mt.cpp.
package battery

// CallbackFunc runs one statistical test and records its p-value(s) into
// io. It is the Go analogue of TestCbFunc — a closure over the test's
// numeric parameters, built by a factory in internal/statlib.
type CallbackFunc func(td *TestDescr, io *BatteryIO)

// TestDescr names one test instance and carries the closure that runs it.
// Several TestDescr values may share the same ID (a test family that emits
// more than one p-value record under one nominal test).
type TestDescr struct {
	id   int
	name string
	run  CallbackFunc
}

// NewTestDescr builds a TestDescr. Matches TestDescr's constructor in
// original_source/testu01_mt.h.
func NewTestDescr(id int, name string, run CallbackFunc) TestDescr {
	return TestDescr{id: id, name: name, run: run}
}

// ID returns the test's ID (its sort key in the final report).
func (t *TestDescr) ID() int { return t.id }

// Name returns the test's display name.
func (t *TestDescr) Name() string { return t.name }

// Run invokes the test's closure against io.
func (t *TestDescr) Run(io *BatteryIO) {
	t.run(t, io)
}
