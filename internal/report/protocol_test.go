package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSeedLogSplitsContiguousChunksByThread(t *testing.T) {
	seeds := []uint64{1, 2, 3, 4, 5, 6, 7}
	entries := BuildSeedLog(seeds, 3)

	// 7 / 3 = 2 per thread, remainder of 1 dropped, matching the original's
	// truncating integer division.
	require.Len(t, entries, 6)
	require.Equal(t, SeedLogEntry{Thread: 0, Position: 0, Seed: 1}, entries[0])
	require.Equal(t, SeedLogEntry{Thread: 0, Position: 1, Seed: 2}, entries[1])
	require.Equal(t, SeedLogEntry{Thread: 2, Position: 1, Seed: 6}, entries[5])
}

func TestBuildSeedLogZeroThreads(t *testing.T) {
	require.Nil(t, BuildSeedLog([]uint64{1, 2, 3}, 0))
}

func TestWriteProtocolIncludesReportAndSeedTable(t *testing.T) {
	var sb strings.Builder
	err := WriteProtocol(&sb, "REPORT TEXT\n", []uint64{10, 20, 30, 40}, 2)
	require.NoError(t, err)

	out := sb.String()
	require.Contains(t, out, "REPORT TEXT")
	require.Contains(t, out, "Seeds generated:   4")
	require.Contains(t, out, "Seeds per thread:  2")
	require.Contains(t, out, "0x000000000000000A")
}
