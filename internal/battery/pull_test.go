package battery

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func noopCb(*TestDescr, *BatteryIO) {}

func makeTests(n int) []TestDescr {
	tests := make([]TestDescr, n)
	for i := range tests {
		tests[i] = NewTestDescr(i, fmt.Sprintf("test-%d", i), noopCb)
	}
	return tests
}

func TestThreadCountHalvesUntilBelowTestCount(t *testing.T) {
	require.Equal(t, 1, ThreadCount(8, 1))
	require.Equal(t, 2, ThreadCount(8, 2))
	require.Equal(t, 4, ThreadCount(8, 5))
	require.Equal(t, 8, ThreadCount(8, 100))
}

func TestThreadCountMinimumOne(t *testing.T) {
	require.Equal(t, 1, ThreadCount(0, 10))
}

func TestThreadCountZeroTests(t *testing.T) {
	require.Equal(t, 1, ThreadCount(8, 0))
}

func TestTestsPullEveryTestClaimedExactlyOnce(t *testing.T) {
	const n = 50
	pull := NewTestsPull(makeTests(n))

	var mu sync.Mutex
	claimed := map[int]int{}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				td, msg := pull.Get()
				if td == nil {
					require.Equal(t, "NONE", msg)
					return
				}
				mu.Lock()
				claimed[td.ID()]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, claimed, n)
	for id, count := range claimed {
		require.Equal(t, 1, count, "test %d claimed %d times", id, count)
	}
}

func TestTestsPullShufflesOrder(t *testing.T) {
	tests := makeTests(100)
	pull := NewTestsPull(tests)

	sameOrder := true
	for i := range tests {
		td, _ := pull.Get()
		if td.ID() != i {
			sameOrder = false
			break
		}
	}
	require.False(t, sameOrder, "shuffled order should (overwhelmingly likely) differ from input order")
}

func TestTestsPullLen(t *testing.T) {
	pull := NewTestsPull(makeTests(7))
	require.Equal(t, 7, pull.Len())
}
