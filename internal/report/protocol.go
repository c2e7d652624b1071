package report

import (
	"fmt"
	"io"
)

// SeedLogEntry is one row of the persisted seed table: which worker thread
// drew the seed, its position within that thread's allocation, and the
// seed value itself.
type SeedLogEntry struct {
	Thread   int
	Position int
	Seed     uint64
}

// BuildSeedLog splits a flat, issue-order seed log into the per-thread rows
// SaveProtocol prints in original_source/testu01th_run.cpp: threads are
// assumed to have drawn their seeds in equal-sized contiguous chunks of
// nseeds/nthreads, with any remainder left unattributed (mirroring the
// original's integer-division truncation exactly, including the dropped
// remainder).
func BuildSeedLog(seeds []uint64, nthreads int) []SeedLogEntry {
	if nthreads <= 0 {
		return nil
	}
	perThread := len(seeds) / nthreads
	entries := make([]SeedLogEntry, 0, perThread*nthreads)
	pos := 0
	for th := 0; th < nthreads; th++ {
		for j := 0; j < perThread; j++ {
			entries = append(entries, SeedLogEntry{Thread: th, Position: j, Seed: seeds[pos]})
			pos++
		}
	}
	return entries
}

// WriteProtocol writes the full protocol file: the rendered battery report
// followed by the seed-allocator report and tab-separated seed table, per
// spec.md §4.4 ("The full protocol ... is written to an auxiliary file")
// and SaveProtocol in original_source/testu01th_run.cpp.
func WriteProtocol(w io.Writer, reportText string, seeds []uint64, nthreads int) error {
	if _, err := io.WriteString(w, reportText); err != nil {
		return err
	}

	nseeds := len(seeds)
	var seedsPerThread, leftover int
	if nthreads > 0 {
		seedsPerThread = nseeds / nthreads
		leftover = nseeds - nthreads*seedsPerThread
	}

	if _, err := fmt.Fprintf(w,
		"========= Seeds allocator report =========\n"+
			"  Number of threads: %d\n"+
			"  Seeds generated:   %d\n"+
			"  Seeds per thread:  %d\n"+
			"  Seeds outside threads: %d\n\n"+
			"===== List of seeds =====\n"+
			"  %3s\t%3s\t%25s\t%16s\n",
		nthreads, nseeds, seedsPerThread, leftover, "TH", "#", "DEC", "HEX"); err != nil {
		return err
	}

	for _, e := range BuildSeedLog(seeds, nthreads) {
		if _, err := fmt.Fprintf(w, "  %3d\t%3d\t%25d\t0x%016X\n", e.Thread, e.Position, e.Seed, e.Seed); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
