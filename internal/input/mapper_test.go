package input

import (
	"go-snake/internal/grid"
	"testing"
)

func TestMapper_RejectsReversal(t *testing.T) {
	for _, d := range []grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right} {
		m := NewMapper(d, 1, nil)
		if m.SubmitDirection(d.Opposite()) {
			t.Errorf("Reversal %v -> %v should be rejected", d, d.Opposite())
		}
		if _, ok := m.Pending(); ok {
			t.Errorf("Pending should stay empty after rejected reversal from %v", d)
		}
	}
}

func TestMapper_ReversalDoesNotOverwritePending(t *testing.T) {
	m := NewMapper(grid.Right, 1, nil)
	m.Submit("up")
	m.Submit("left") // opposite of applied RIGHT

	p, ok := m.Pending()
	if !ok || p != grid.Up {
		t.Errorf("Expected pending UP, got %v (%v)", p, ok)
	}
}

func TestMapper_LastWriterWins(t *testing.T) {
	m := NewMapper(grid.Right, 1, nil)
	m.Submit("up")
	m.Submit("down")

	if got := m.Commit(); got != grid.Down {
		t.Errorf("Expected DOWN, got %v", got)
	}
	if m.Current() != grid.Down {
		t.Errorf("Current should be DOWN, got %v", m.Current())
	}
	// Nothing left: direction stays.
	if got := m.Commit(); got != grid.Down {
		t.Errorf("Expected DOWN to persist, got %v", got)
	}
}

func TestMapper_UnknownKeysIgnored(t *testing.T) {
	m := NewMapper(grid.Right, 1, nil)
	for _, k := range []string{"", "x", "enter", "UP"} {
		if m.Submit(k) {
			t.Errorf("Key %q should be ignored", k)
		}
	}
	if _, ok := m.Pending(); ok {
		t.Error("No pending turn expected")
	}
}

func TestMapper_BrowserKeyNames(t *testing.T) {
	m := NewMapper(grid.Right, 1, nil)
	m.Submit("ArrowDown")
	if got := m.Commit(); got != grid.Down {
		t.Errorf("Expected DOWN, got %v", got)
	}
}

func TestMapper_Queue(t *testing.T) {
	m := NewMapper(grid.Right, 3, nil)

	// Up then Left is a legal U-turn over two ticks.
	if !m.Submit("up") || !m.Submit("left") {
		t.Fatal("Both turns should be queued")
	}
	// Right is the opposite of the queued LEFT.
	if m.Submit("right") {
		t.Error("Reversal against the previous queued turn should be rejected")
	}

	if got := m.Commit(); got != grid.Up {
		t.Errorf("First move should be UP, got %v", got)
	}
	if got := m.Commit(); got != grid.Left {
		t.Errorf("Second move should be LEFT, got %v", got)
	}
}

func TestMapper_QueueEntriesNeverReverse(t *testing.T) {
	m := NewMapper(grid.Right, 2, nil)
	keys := []string{"up", "left", "down", "right", "up", "left", "down"}
	for _, k := range keys {
		m.Submit(k)
	}

	prev := m.Current()
	for _, d := range m.Queued() {
		if prev.IsOpposite(d) {
			t.Fatalf("Queued %v reverses %v", d, prev)
		}
		prev = d
	}
	if len(m.Queued()) > 2 {
		t.Errorf("Queue exceeded capacity: %v", m.Queued())
	}
}

func TestMapper_NextDoesNotApply(t *testing.T) {
	m := NewMapper(grid.Right, 1, nil)
	m.Submit("up")

	if got := m.Next(); got != grid.Up {
		t.Errorf("Expected next UP, got %v", got)
	}
	if m.Current() != grid.Right {
		t.Errorf("Next should not change the current direction, got %v", m.Current())
	}
	if _, ok := m.Pending(); !ok {
		t.Error("Next should keep the turn buffered")
	}
}

func TestMapper_DiscardKeepsCurrent(t *testing.T) {
	m := NewMapper(grid.Down, 1, nil)
	m.Submit("right")
	m.Discard()

	if m.Current() != grid.Down {
		t.Errorf("Expected DOWN after a discarded turn, got %v", m.Current())
	}
	if _, ok := m.Pending(); ok {
		t.Error("Discard should drop the buffered turn")
	}
	// LEFT only reverses the discarded RIGHT, not the applied DOWN.
	if !m.Submit("left") {
		t.Error("LEFT should be accepted while heading DOWN")
	}
}

func TestMapper_QueueDropsRepeats(t *testing.T) {
	m := NewMapper(grid.Right, 3, nil)
	if m.Submit("right") {
		t.Error("Repeat of the current direction should not take a queue slot")
	}
	m.Submit("up")
	if m.Submit("up") {
		t.Error("Repeat of the previous queued turn should be dropped")
	}
	if got := len(m.Queued()); got != 1 {
		t.Errorf("Expected 1 queued turn, got %d", got)
	}
}
