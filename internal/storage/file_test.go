package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	store, err := OpenFile(filepath.Join(t.TempDir(), "highscore.txt"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	score, err := store.LoadHighScore()
	if score != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0", score)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadHighScore() error = %v, expected not-exist", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text", "lots"},
		{"empty", ""},
		{"negative", "-20"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			store, err := OpenFile(path)
			if err != nil {
				t.Fatalf("OpenFile() failed: %v", err)
			}

			score, err := store.LoadHighScore()
			if score != 0 || err == nil {
				t.Errorf("LoadHighScore() = (%d, %v), expected (0, error)", score, err)
			}
		})
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.txt")
	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	if err := store.SaveHighScore(130); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "130" {
		t.Errorf("file content = %q, expected %q", data, "130")
	}

	score, err := store.LoadHighScore()
	if err != nil || score != 130 {
		t.Errorf("LoadHighScore() = (%d, %v), expected (130, nil)", score, err)
	}
}

func TestFileStoreToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	os.WriteFile(path, []byte("75\n"), 0o644)

	store, _ := OpenFile(path)
	if score, err := store.LoadHighScore(); err != nil || score != 75 {
		t.Errorf("LoadHighScore() = (%d, %v), expected (75, nil)", score, err)
	}
}

func TestFileStoreKeepsHigherScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	store.SaveHighScore(150)
	if err := store.SaveHighScore(90); err != nil {
		t.Fatalf("SaveHighScore(90) failed: %v", err)
	}

	if score, err := store.LoadHighScore(); err != nil || score != 150 {
		t.Errorf("LoadHighScore() = (%d, %v), expected (150, nil)", score, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "150" {
		t.Errorf("file content = %q, expected %q", data, "150")
	}
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	store, _ := OpenFile(path)

	// Clearing a store that was never written is fine
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on missing file failed: %v", err)
	}

	store.SaveHighScore(40)
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be removed by Clear")
	}
}
