package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkravets/floodlock/internal/engine"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	results := []Result{
		{PuzzleID: "2026-01-01", Moves: 6, Par: 5, Status: engine.StatusSolved, HintsUsed: 1},
		{PuzzleID: "2026-01-01", Moves: 5, Par: 5, Status: engine.StatusSolved},
		{PuzzleID: "2026-01-02", Moves: 3, Par: 4, Status: engine.StatusLost, HintsUsed: 2},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// Most recent result for a puzzle
	latest, err := store.ResultFor("2026-01-01")
	if err != nil {
		t.Fatalf("ResultFor() failed: %v", err)
	}
	if latest == nil {
		t.Fatal("ResultFor() returned nil for a recorded puzzle")
	}
	if latest.Moves != 5 {
		t.Errorf("ResultFor() moves = %d, want 5 (most recent)", latest.Moves)
	}
	if latest.Status != engine.StatusSolved {
		t.Errorf("ResultFor() status = %v, want solved", latest.Status)
	}

	// Unknown puzzle yields nil, not an error
	missing, err := store.ResultFor("never-played")
	if err != nil {
		t.Fatalf("ResultFor() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("ResultFor() = %+v for an unplayed puzzle, want nil", missing)
	}

	// Recent results across all puzzles, newest first
	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentResults() = %d results, want 3", len(recent))
	}
	if recent[0].PuzzleID != "2026-01-02" {
		t.Errorf("RecentResults()[0].PuzzleID = %q, want the latest insert", recent[0].PuzzleID)
	}
	if recent[0].HintsUsed != 2 {
		t.Errorf("RecentResults()[0].HintsUsed = %d, want 2", recent[0].HintsUsed)
	}
}

func TestStoreGetStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Played != 0 || stats.Solved != 0 || stats.Lost != 0 || stats.BestMoves != 0 {
		t.Errorf("GetStats() on empty db = %+v, want zeros", stats)
	}

	for _, r := range []Result{
		{PuzzleID: "2026-01-01", Moves: 8, Par: 5, Status: engine.StatusSolved},
		{PuzzleID: "2026-01-02", Moves: 4, Par: 4, Status: engine.StatusSolved},
		{PuzzleID: "2026-01-03", Moves: 6, Par: 5, Status: engine.StatusLost},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Played != 3 {
		t.Errorf("Played = %d, want 3", stats.Played)
	}
	if stats.Solved != 2 {
		t.Errorf("Solved = %d, want 2", stats.Solved)
	}
	if stats.Lost != 1 {
		t.Errorf("Lost = %d, want 1", stats.Lost)
	}
	if stats.BestMoves != 4 {
		t.Errorf("BestMoves = %d, want 4", stats.BestMoves)
	}
	if stats.AvgMoves != 6.0 {
		t.Errorf("AvgMoves = %v, want 6.0", stats.AvgMoves)
	}
}

func TestStoreCreatesParentDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
