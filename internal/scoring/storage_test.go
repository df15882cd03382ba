package scoring

import (
	"testing"
	"time"
)

func TestMemoryStorage_SaveAndLoad(t *testing.T) {
	storage := NewMemoryStorage()

	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty storage returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}

	saved := []ScoreHistoryEntry{
		{Difficulty: "EASY", Score: 3, Length: 4, Outcome: OutcomeCollision, Timestamp: time.Now()},
		{Difficulty: "HARD", Score: 12, Length: 7, Outcome: OutcomeCollision, Timestamp: time.Now()},
	}
	if err := storage.SaveAll(saved); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	loaded, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(loaded))
	}
	if loaded[1].Score != 12 || loaded[1].Difficulty != "HARD" {
		t.Errorf("Entry mismatch: %+v", loaded[1])
	}
}

func TestMemoryStorage_NoAliasing(t *testing.T) {
	storage := NewMemoryStorage()
	saved := []ScoreHistoryEntry{{Difficulty: "EASY", Score: 3}}
	_ = storage.SaveAll(saved)

	saved[0].Score = 99
	loaded, _ := storage.LoadAll()
	if loaded[0].Score != 3 {
		t.Errorf("Saved entries should not alias the caller's slice, got %d", loaded[0].Score)
	}

	loaded[0].Score = 42
	again, _ := storage.LoadAll()
	if again[0].Score != 3 {
		t.Errorf("Loaded entries should not alias storage, got %d", again[0].Score)
	}
}
