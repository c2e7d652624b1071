package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sibench-rng/rngbattery/internal/logger"
)

// Sidecar is a JSON companion to the text protocol file, written
// incrementally as records arrive so a long-running battery never holds its
// whole result set twice in memory. This mirrors sibench's Report type
// (MakeReport/AddStat/Close): a file handle, a sticky error that turns every
// further write into a no-op, and a separator that flips on after the first
// element of the Records array.
type Sidecar struct {
	file      *os.File
	err       error
	separator string
}

// SidecarHeader is marshaled once, up front, as the non-repeating part of
// the JSON document.
type SidecarHeader struct {
	Battery   string `json:"battery"`
	Generator string `json:"generator"`
	RunID     string `json:"run_id"`
}

// NewSidecar creates path and writes the opening object plus header fields,
// leaving the "records" array open for incremental AddRecord calls.
func NewSidecar(path string, header SidecarHeader) (*Sidecar, error) {
	var s Sidecar
	s.file, s.err = os.Create(path)
	if s.err != nil {
		logger.Errorf("failed to create sidecar file %s: %v\n", path, s.err)
		return &s, s.err
	}

	s.writeString("{\n  \"header\": ")
	s.writeJSON(header)
	s.writeString(",\n  \"records\": [\n")
	return &s, s.err
}

// AddRecord appends one PValueRecord to the records array. Written
// immediately, like sibench's AddStat.
func (s *Sidecar) AddRecord(r PValueRecord) {
	val := fmt.Sprintf(`%s    {"test_id": %d, "name": %q, "p_value": %s}`,
		s.separator, r.TestID, r.Name, jsonFloat(r.PValue))
	s.writeString(val)
	s.separator = ",\n"
}

// Close finishes the JSON document (the closing array/object brackets) and
// closes the file.
func (s *Sidecar) Close() error {
	if s.err != nil {
		return s.err
	}
	s.writeString("\n  ]\n}\n")
	if s.err != nil {
		return s.err
	}
	return s.file.Close()
}

func (s *Sidecar) writeJSON(val interface{}) {
	if s.err != nil {
		return
	}
	encoded, err := json.MarshalIndent(val, "  ", "  ")
	if err != nil {
		s.err = err
		logger.Errorf("failed to marshal sidecar value: %v\n", err)
		return
	}
	s.writeString(string(encoded))
}

func (s *Sidecar) writeString(val string) {
	if s.err != nil {
		return
	}
	_, s.err = s.file.WriteString(val)
	if s.err != nil {
		logger.Errorf("failed writing sidecar file: %v\n", s.err)
	}
}

// jsonFloat renders a float64 so that NaN/Inf (which encoding/json rejects)
// degrade to valid JSON rather than aborting the whole sidecar; ordinary
// p-values pass through unchanged.
func jsonFloat(f float64) string {
	b, err := json.Marshal(f)
	if err != nil {
		return "null"
	}
	return string(b)
}
