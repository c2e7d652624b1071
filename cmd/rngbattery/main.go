// Command rngbattery is the CLI front-end over the battery runner core, in
// the docopt-and-dieOnError style of sibench/main.go: parse arguments into a
// struct, validate what docopt itself can't enforce, then dispatch. Battery
// dispatch and exit-code mapping are ported from main() in
// original_source/testu01th_run.cpp.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/docopt/docopt-go"
	"github.com/google/uuid"

	"github.com/sibench-rng/rngbattery/internal/battery"
	"github.com/sibench-rng/rngbattery/internal/bench"
	"github.com/sibench-rng/rngbattery/internal/entropy"
	"github.com/sibench-rng/rngbattery/internal/logger"
	"github.com/sibench-rng/rngbattery/internal/prng"
	"github.com/sibench-rng/rngbattery/internal/report"
	"github.com/sibench-rng/rngbattery/internal/sink"
	"github.com/sibench-rng/rngbattery/internal/statlib"
)

// Arguments is what docopt binds our parsed command line into.
type Arguments struct {
	Battery    string
	Module     string
	TestId     string
	GenOptions string
	Verbose    bool
	Output     string
}

func usage() string {
	return `rngbattery: a parallel statistical test battery runner for PRNGs.

Usage:
  rngbattery [-v] [-o FILE] <battery> <module> [<test_id>] [<gen_options>]
  rngbattery -h | --help

Batteries:
  SmallCrush, Crush, BigCrush, pseudoDIEHARD   parallel standard batteries
  SmallCrush_ser, Crush_ser, BigCrush_ser,
  pseudoDIEHARD_ser                            serial (single-worker) variants
  stdout32, stdout64, stdout32v, stdout64v      binary dumps to stdout
  speed                                         throughput micro-benchmark
  selftest                                      calls the PRNG's self-test

Module is either a built-in generator name (splitmix64, xorshift64*, pcg32,
chacha20) or a path to a compiled Go plugin implementing the PRNG plug-in
ABI (InitLib/CloseLib/GetInfo).

Options:
  -h, --help               Show this help.
  -v, --verbose            Turn on debug output.
  -o FILE, --output FILE   Protocol file to write.                [default: report.txt]
`
}

// dieOnError mirrors sibench's helper: print a formatted message plus the
// error, then exit with a non-zero code.
func dieOnError(err error, format string, a ...interface{}) {
	if err != nil {
		fmt.Fprintf(os.Stderr, format, a...)
		fmt.Fprintf(os.Stderr, ": %v\n", err)
		os.Exit(1)
	}
}

func main() {
	opts, err := docopt.ParseDoc(usage())
	dieOnError(err, "error parsing arguments")

	var args Arguments
	err = opts.Bind(&args)
	dieOnError(err, "failure binding arguments")

	if args.Verbose {
		logger.SetLevel(logger.Debug)
	}

	os.Exit(run(&args))
}

// run performs the full dispatch and returns the process exit code, kept
// separate from main so battery selection logic is testable without
// os.Exit calls interfering.
func run(args *Arguments) int {
	svc := entropy.New()
	if !svc.SelfTest() {
		fmt.Fprintln(os.Stderr, "entropy self-test failed")
		return 1
	}

	factory, closer, err := resolveModule(args.Module, svc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if closer != nil {
		defer closer()
	}

	switch args.Battery {
	case "selftest":
		return runSelfTest(factory)
	case "stdout32":
		return runSink(factory, sink.Bits32)
	case "stdout64":
		return runSink(factory, sink.Bits64)
	case "stdout32v":
		return runSink(factory, sink.Array32)
	case "stdout64v":
		return runSink(factory, sink.Array64)
	case "speed":
		return runSpeed(factory)
	default:
		return runBattery(args, factory, svc)
	}
}

// resolveModule decides whether module names a built-in generator or a
// path to an externally loaded plug-in — an extension of the original's
// load_module step, which only ever loaded an external shared library;
// built-ins are this port's way of letting the CLI demo-run without
// requiring a separately compiled plugin (see DESIGN.md).
func resolveModule(module string, svc *entropy.Service) (prng.Factory, func() error, error) {
	if f, ok := prng.Builtins(svc)[module]; ok {
		return f, nil, nil
	}
	factory, closer, err := prng.LoadFactory(module)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load module %q: %w", module, err)
	}
	return factory, closer, nil
}

func runSelfTest(factory prng.Factory) int {
	fmt.Println("----- Internal self-test -----")
	gen, err := factory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	tester, ok := gen.(prng.SelfTester)
	if !ok {
		fmt.Println("Internal self-test is not implemented")
		return 1
	}
	if tester.SelfTest() {
		fmt.Println("Internal self-test: PASSED")
		return 0
	}
	fmt.Println("Internal self-test: NOT PASSED")
	return 1
}

func runSink(factory prng.Factory, fn func(context.Context, io.Writer, prng.Generator) error) int {
	gen, err := factory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := fn(ctx, os.Stdout, gen); err != nil && !sink.IsBrokenPipe(err) && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSpeed(factory prng.Factory) int {
	r, err := bench.Speed(factory)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Generator name: %s\n", r.GeneratorName)
	for _, m := range r.Measurements {
		fmt.Printf("----- Speed test for %s -----\n", m.Label)
		fmt.Printf("  Nanoseconds per call (corrected): %.2f\n", m.NsPerCallCorrected)
		fmt.Printf("  Throughput (GB/sec):              %.3f\n", m.GBPerSec)
	}
	return 0
}

func runBattery(args *Arguments, factory prng.Factory, svc *entropy.Service) int {
	def, ok := batteryDefinitions[args.Battery]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown battery %q\n", args.Battery)
		return 1
	}

	b := &battery.Battery{
		Name:     def.name,
		Tests:    def.tests(statlib.Reference{}),
		Factory:  factory,
		Parallel: def.parallel,
	}

	testID := 0
	if args.TestId != "" {
		id, err := parseTestID(args.TestId)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		testID = id
	}

	text, result, err := b.RunTest(testID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(text)

	runID := uuid.New().String()
	if err := saveProtocol(args.Output, text, svc, result, runID, def.name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func parseTestID(s string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid test number %q", s)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid test number %q", s)
	}
	return id, nil
}

func saveProtocol(path, reportText string, svc *entropy.Service, result *battery.RunResult, runID, batteryName string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sidecar, err := report.NewSidecar(path+".json", report.SidecarHeader{
		Battery:   batteryName,
		Generator: result.GeneratorName,
		RunID:     runID,
	})
	if err == nil {
		for _, rec := range result.Results.Records() {
			sidecar.AddRecord(rec)
		}
		sidecar.Close()
	}

	return report.WriteProtocol(f, reportText, svc.SeedsLog(), result.NThreads)
}

// batteryDef bundles a battery name with its standard test list and
// parallelism, keyed by the CLI battery name.
type batteryDef struct {
	name     string
	tests    func(statlib.Library) []battery.TestDescr
	parallel bool
}

var batteryDefinitions = map[string]batteryDef{
	"SmallCrush":         {"SmallCrush", statlib.SmallCrushTests, true},
	"Crush":              {"Crush", statlib.CrushTests, true},
	"BigCrush":           {"BigCrush", statlib.BigCrushTests, true},
	"pseudoDIEHARD":      {"pseudoDIEHARD", statlib.PseudoDIEHARDTests, true},
	"SmallCrush_ser":     {"SmallCrush", statlib.SmallCrushTests, false},
	"Crush_ser":          {"Crush", statlib.CrushTests, false},
	"BigCrush_ser":       {"BigCrush", statlib.BigCrushTests, false},
	"pseudoDIEHARD_ser":  {"pseudoDIEHARD", statlib.PseudoDIEHARDTests, false},
}
