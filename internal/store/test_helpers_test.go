package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/sequ/internal/ir"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a successful arabic run record.
func createTestRun(runID string, items int) ir.RunRecord {
	return ir.RunRecord{
		RunID:     runID,
		Notation:  ir.Arabic,
		Start:     "1",
		End:       "10",
		Increment: "1",
		Items:     items,
		Status:    ir.RunOK,
	}
}
