package battery

import (
	"sync/atomic"
	"testing"

	"github.com/sibench-rng/rngbattery/internal/prng"
	"github.com/stretchr/testify/require"
)

type countingGen struct {
	n uint32
}

func (g *countingGen) Name() string   { return "counting" }
func (g *countingGen) U01() float64   { return 0.5 }
func (g *countingGen) Bits32() uint32 { atomic.AddUint32(&g.n, 1); return g.n }

func countingFactory() prng.Factory {
	return func() (prng.Generator, error) {
		return &countingGen{}, nil
	}
}

func TestDispatcherEveryTestProducesOneRecord(t *testing.T) {
	tests := make([]TestDescr, 20)
	for i := range tests {
		id := i
		tests[i] = NewTestDescr(id, "echo", func(td *TestDescr, io *BatteryIO) {
			io.Add(td.ID(), td.Name(), io.Gen.U01())
		})
	}

	d := &Dispatcher{Factory: countingFactory(), Parallel: true}
	result, err := d.Run(tests)
	require.NoError(t, err)
	require.Len(t, result.Results.Records(), 20)

	ids := make([]int, len(result.Results.Records()))
	for i, r := range result.Results.Records() {
		ids[i] = r.TestID
	}
	for i := 0; i < 20; i++ {
		require.Contains(t, ids, i)
	}
	// stable-sorted by TestID
	for i := 1; i < len(ids); i++ {
		require.LessOrEqual(t, ids[i-1], ids[i])
	}
}

func TestDispatcherSerialUsesExactlyOneWorker(t *testing.T) {
	tests := make([]TestDescr, 5)
	for i := range tests {
		tests[i] = NewTestDescr(i, "noop", func(*TestDescr, *BatteryIO) {})
	}

	d := &Dispatcher{Factory: countingFactory(), Parallel: false}
	result, err := d.Run(tests)
	require.NoError(t, err)
	require.Equal(t, 1, result.NThreads)
}

func TestDispatcherSkippedTestYieldsNoRecord(t *testing.T) {
	tests := []TestDescr{
		NewTestDescr(1, "silent", func(*TestDescr, *BatteryIO) {}),
	}
	d := &Dispatcher{Factory: countingFactory(), Parallel: false}
	result, err := d.Run(tests)
	require.NoError(t, err)
	require.Empty(t, result.Results.Records())
}
