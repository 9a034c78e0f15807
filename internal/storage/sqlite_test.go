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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.mazes/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".mazes", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 1, 7} {
		if _, err := store.SaveRun(Run{GameID: "hideseek", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{GameID: "raycast", Score: 9}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("hideseek", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 7 || runs[1].Score != 3 || runs[2].Score != 1 {
		t.Errorf("runs not sorted by score: %+v", runs)
	}
	for _, r := range runs {
		if r.GameID != "hideseek" {
			t.Errorf("run from another game: %+v", r)
		}
	}
}

func TestStoreRunMetadata(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "hideseek", Score: 4, Seed: 1234, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.AllRuns("hideseek")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id || r.Seed != 1234 || r.Difficulty != "hard" || r.Score != 4 {
		t.Errorf("run = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{GameID: "hideseek", Score: i + 1})
	}

	runs, err := store.TopRuns("hideseek", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 5 || runs[1].Score != 4 || runs[2].Score != 3 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	// Non-positive limits fall back to 10.
	runs, err = store.TopRuns("hideseek", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(runs))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("hideseek")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed game, got %d", high)
	}

	store.SaveRun(Run{GameID: "hideseek", Score: 2})
	store.SaveRun(Run{GameID: "hideseek", Score: 6})
	store.SaveRun(Run{GameID: "hideseek", Score: 4})

	high, err = store.HighScore("hideseek")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 6 {
		t.Errorf("Expected high score of 6, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "hideseek", Score: 1})
	store.SaveRun(Run{GameID: "hideseek", Score: 2})
	store.SaveRun(Run{GameID: "raycast", Score: 3})

	if err := store.ClearRuns("hideseek"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("hideseek", 10); len(runs) != 0 {
		t.Errorf("Expected 0 hideseek runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("raycast", 10); len(runs) != 1 {
		t.Error("raycast runs should not be affected by clearing hideseek")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("hideseek")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed game = %+v", empty)
	}

	store.SaveRun(Run{GameID: "hideseek", Score: 2})
	store.SaveRun(Run{GameID: "hideseek", Score: 4})
	store.SaveRun(Run{GameID: "raycast", Score: 1})

	stats, err := store.Stats("hideseek")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 4 || stats.TotalScore != 6 || stats.AvgScore != 3 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["raycast"].Runs != 1 {
		t.Errorf("raycast stats = %+v", all["raycast"])
	}
}
