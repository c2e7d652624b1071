package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSidecarProducesValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sidecar.json")

	s, err := NewSidecar(path, SidecarHeader{Battery: "SmallCrush", Generator: "SplitMix64", RunID: "abc-123"})
	require.NoError(t, err)

	s.AddRecord(PValueRecord{TestID: 1, Name: "BirthdaySpacings", PValue: 0.5})
	s.AddRecord(PValueRecord{TestID: 2, Name: "CollisionOver", PValue: 1e-20})
	require.NoError(t, s.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Header struct {
			Battery   string `json:"battery"`
			Generator string `json:"generator"`
			RunID     string `json:"run_id"`
		} `json:"header"`
		Records []struct {
			TestID int     `json:"test_id"`
			Name   string  `json:"name"`
			PValue float64 `json:"p_value"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Equal(t, "SmallCrush", decoded.Header.Battery)
	require.Len(t, decoded.Records, 2)
	require.Equal(t, "BirthdaySpacings", decoded.Records[0].Name)
	require.Equal(t, 2, decoded.Records[1].TestID)
}
