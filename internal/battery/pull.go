package battery

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// TestsPull is the shared, mutex-guarded work queue every dispatcher worker
// pulls from. Grounded on TestsPull in original_source/testu01_mt.h/.cpp:
// tests are shuffled once at construction (balancing load so long tests
// land at random positions and late-steal tails stay bounded), then handed
// out one at a time under a single mutex.
type TestsPull struct {
	mu    sync.Mutex
	tests []TestDescr
	pos   int
}

// NewTestsPull copies tests into a uniformly shuffled internal order.
func NewTestsPull(tests []TestDescr) *TestsPull {
	shuffled := make([]TestDescr, len(tests))
	copy(shuffled, tests)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &TestsPull{tests: shuffled}
}

// Get returns the next unclaimed test and a "test N of M" progress message,
// or (nil, "NONE") once the pull is exhausted.
func (p *TestsPull) Get() (*TestDescr, string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pos >= len(p.tests) {
		return nil, "NONE"
	}
	t := &p.tests[p.pos]
	msg := fmt.Sprintf("test %d of %d", p.pos+1, len(p.tests))
	p.pos++
	return t, msg
}

// Len returns the total number of tests in the pull.
func (p *TestsPull) Len() int {
	return len(p.tests)
}

// ThreadCount applies spec.md §4.3's thread-count selection rule: start
// from available, halve while it exceeds the test count, minimum 1.
func ThreadCount(available, testCount int) int {
	if testCount <= 0 {
		return 1
	}
	n := available
	for n > testCount {
		n /= 2
	}
	if n < 1 {
		n = 1
	}
	return n
}
