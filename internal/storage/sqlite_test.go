package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
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

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("LoadHighScore() on empty database = %d, expected 0", score)
	}

	for _, s := range []int{100, 50, 150, 120} {
		if err := store.SaveHighScore(s); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s, err)
		}
	}

	score, err = store.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 150 {
		t.Errorf("LoadHighScore() = %d, expected 150", score)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(90); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if score, _ := store.LoadHighScore(); score != 90 {
		t.Errorf("LoadHighScore() after reopen = %d, expected 90", score)
	}
}

func TestStoreTopSessions(t *testing.T) {
	store := openTestStore(t)

	sessions := []struct {
		score   int
		level   int
		outcome string
	}{
		{100, 12, breaker.OutcomeAbandoned},
		{200, 20, breaker.OutcomeWin},
		{50, 6, breaker.OutcomeAbandoned},
	}
	for _, s := range sessions {
		if err := store.RecordSession(s.score, s.level, s.outcome); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(top))
	}

	expected := []int{200, 100, 50}
	for i, e := range expected {
		if top[i].Score != e {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, e)
		}
	}
	if top[0].Outcome != breaker.OutcomeWin || top[0].Level != 20 {
		t.Errorf("top[0] = %+v, expected a level 20 win", top[0])
	}

	seen := map[string]bool{}
	for _, e := range top {
		if e.SessionID == "" || seen[e.SessionID] {
			t.Errorf("session ID %q is empty or repeated", e.SessionID)
		}
		seen[e.SessionID] = true
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if err := store.RecordSession(i*10, 1, breaker.OutcomeAbandoned); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions(5)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 sessions, got %d", len(top))
	}

	// A non-positive limit falls back to 10
	top, err = store.TopSessions(0)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected 10 sessions, got %d", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.Wins != 0 {
		t.Errorf("Stats() on empty database = %+v", stats)
	}

	store.RecordSession(200, 20, breaker.OutcomeWin)
	store.RecordSession(100, 14, breaker.OutcomeAbandoned)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.Wins != 1 || stats.BestLevel != 20 {
		t.Errorf("Stats() = %+v, expected 2 sessions, 1 win, best level 20", stats)
	}
	if stats.AvgScore != 150 {
		t.Errorf("AvgScore = %v, expected 150", stats.AvgScore)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveHighScore(80)
	store.RecordSession(80, 9, breaker.OutcomeAbandoned)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	if score, _ := store.LoadHighScore(); score != 0 {
		t.Errorf("LoadHighScore() after Clear = %d, expected 0", score)
	}
	top, _ := store.TopSessions(10)
	if len(top) != 0 {
		t.Errorf("Expected no sessions after Clear, got %d", len(top))
	}
}
