package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveAndRecentSessions(t *testing.T) {
	store := openTestStore(t)

	entries := []SessionEntry{
		{Pattern: "glider", Generations: 40, PeakPopulation: 5, FinalPopulation: 5, DurationSecs: 60},
		{Pattern: "", Generations: 12, PeakPopulation: 90, FinalPopulation: 3, DurationSecs: 30},
		{Pattern: "pulsar", Generations: 300, PeakPopulation: 72, FinalPopulation: 48, DurationSecs: 200},
	}
	for _, e := range entries {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(recent))
	}

	// Newest first
	if recent[0].Pattern != "pulsar" {
		t.Errorf("Expected most recent session first, got %q", recent[0].Pattern)
	}
	if recent[2].Pattern != "glider" {
		t.Errorf("Expected oldest session last, got %q", recent[2].Pattern)
	}
	if recent[0].Generations != 300 || recent[0].PeakPopulation != 72 {
		t.Errorf("Session fields not round-tripped: %+v", recent[0])
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(SessionEntry{Generations: i})
	}

	recent, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(recent))
	}
}

func TestLongestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, g := range []int{10, 500, 50} {
		store.SaveSession(SessionEntry{Generations: g})
	}

	runs, err := store.LongestRuns(2)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Generations != 500 || runs[1].Generations != 50 {
		t.Errorf("Runs not ordered by generations: %d, %d", runs[0].Generations, runs[1].Generations)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	// Empty store
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.MaxGenerations != 0 {
		t.Errorf("Empty store stats should be zero, got %+v", stats)
	}

	store.SaveSession(SessionEntry{Generations: 100, PeakPopulation: 40})
	store.SaveSession(SessionEntry{Generations: 300, PeakPopulation: 20})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", stats.Sessions)
	}
	if stats.MaxGenerations != 300 {
		t.Errorf("MaxGenerations = %d, expected 300", stats.MaxGenerations)
	}
	if stats.MaxPeak != 40 {
		t.Errorf("MaxPeak = %d, expected 40", stats.MaxPeak)
	}
	if stats.AvgGenerations != 200 {
		t.Errorf("AvgGenerations = %f, expected 200", stats.AvgGenerations)
	}
	if stats.TotalGeneration != 400 {
		t.Errorf("TotalGeneration = %d, expected 400", stats.TotalGeneration)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{Generations: 10})
	store.SaveSession(SessionEntry{Generations: 20})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	recent, _ := store.RecentSessions(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(recent))
	}
}
