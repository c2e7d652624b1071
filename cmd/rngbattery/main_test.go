package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sibench-rng/rngbattery/internal/entropy"
)

func TestResolveModuleFindsBuiltin(t *testing.T) {
	svc := entropy.New()
	factory, closer, err := resolveModule("splitmix64", svc)
	require.NoError(t, err)
	require.Nil(t, closer)
	gen, err := factory()
	require.NoError(t, err)
	require.Equal(t, "SplitMix64", gen.Name())
}

func TestResolveModuleErrorsOnUnknownPath(t *testing.T) {
	svc := entropy.New()
	_, _, err := resolveModule("/nonexistent/module.so", svc)
	require.Error(t, err)
}

func TestParseTestIDRejectsZeroAndNonNumeric(t *testing.T) {
	_, err := parseTestID("0")
	require.Error(t, err)
	_, err = parseTestID("abc")
	require.Error(t, err)
}

func TestParseTestIDAcceptsPositiveInteger(t *testing.T) {
	id, err := parseTestID("3")
	require.NoError(t, err)
	require.Equal(t, 3, id)
}

func TestRunDispatchesSmallCrushAndWritesProtocol(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.txt")
	args := &Arguments{
		Battery: "SmallCrush",
		Module:  "splitmix64",
		Output:  out,
	}
	code := run(args)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "SmallCrush")

	_, err = os.Stat(out + ".json")
	require.NoError(t, err)
}

func TestRunUnknownBatteryReturnsNonZero(t *testing.T) {
	dir := t.TempDir()
	args := &Arguments{
		Battery: "NotABattery",
		Module:  "splitmix64",
		Output:  filepath.Join(dir, "report.txt"),
	}
	code := run(args)
	require.Equal(t, 1, code)
}

func TestRunSelfTestReportsNotImplementedForSplitMix64(t *testing.T) {
	// SplitMix64 carries no SelfTester implementation, so this exercises the
	// PrngMissingSelfTest path: non-fatal, but still exit code 1.
	args := &Arguments{Battery: "selftest", Module: "splitmix64"}
	code := run(args)
	require.Equal(t, 1, code)
}
