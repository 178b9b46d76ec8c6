package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRun(t *testing.T, store *Store, gameID string, distance, collected int) {
	t.Helper()
	_, err := store.SaveRun(Run{
		GameID:    gameID,
		Score:     distance + collected,
		Distance:  distance,
		Collected: collected,
		Duration:  12.5,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "highway", 90, 10)
	saveRun(t, store, "highway", 40, 10)
	saveRun(t, store, "highway", 150, 50)
	saveRun(t, store, "highway_autofire", 400, 100)

	runs, err := store.TopRuns("highway", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if runs[i].Score != want {
			t.Errorf("run %d: expected score %d, got %d", i, want, runs[i].Score)
		}
	}

	top := runs[0]
	if top.Distance != 150 || top.Collected != 50 || top.Duration != 12.5 {
		t.Errorf("run fields not stored: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		saveRun(t, store, "highway", (i+1)*100, 0)
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{0, 5}, // Defaults to 10
		{-1, 5},
	}
	for _, tc := range tests {
		runs, err := store.TopRuns("highway", tc.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tc.limit, err)
		}
		if len(runs) != tc.want {
			t.Errorf("TopRuns(%d) returned %d runs, expected %d", tc.limit, len(runs), tc.want)
		}
	}
}

func TestStoreAllRunsUnlimited(t *testing.T) {
	store := openTestStore(t)
	for i := range 12 {
		saveRun(t, store, "highway", (i+1)*10, 0)
	}
	saveRun(t, store, "highway_autofire", 999, 0)

	runs, err := store.AllRuns("highway")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 12 {
		t.Fatalf("expected 12 runs, got %d", len(runs))
	}
	if runs[0].Score != 120 || runs[11].Score != 10 {
		t.Errorf("expected highest score first, got %d..%d", runs[0].Score, runs[11].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("highway")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty game, got %d", high)
	}

	saveRun(t, store, "highway", 100, 0)
	saveRun(t, store, "highway", 280, 20)
	saveRun(t, store, "highway", 200, 0)

	high, err = store.HighScore("highway")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "highway", 100, 0)
	saveRun(t, store, "highway", 200, 0)
	saveRun(t, store, "highway_autofire", 300, 0)

	if err := store.ClearScores("highway"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if runs, _ := store.AllRuns("highway"); len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if runs, _ := store.AllRuns("highway_autofire"); len(runs) != 1 {
		t.Error("Other modes should not be affected by clearing highway")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("highway")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	saveRun(t, store, "highway", 100, 20)
	saveRun(t, store, "highway", 250, 30)

	stats, err := store.GetGameStats("highway")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 280 || stats.BestDistance != 250 || stats.TotalCollected != 50 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["highway"].RunsCount != 2 {
		t.Errorf("unexpected all-games stats %+v", all)
	}
}
