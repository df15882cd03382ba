package main

import (
	"go-snake/internal/config"
	"go-snake/internal/grid"
	"go-snake/internal/input"
	"go-snake/internal/spawn"
	"go-snake/internal/state"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	cfg.PowerUpChance = 0
	m, err := initialModel(cfg)
	if err != nil {
		t.Fatalf("initialModel failed: %v", err)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_FramesDriveTicks(t *testing.T) {
	m := newTestModel(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// The first frame only sets the reference time.
	_, cmd := m.Update(FrameMsg(start))
	if cmd == nil {
		t.Fatal("A frame should schedule the next one")
	}
	if m.game.Snapshot().Steps != 0 {
		t.Error("No step expected on the first frame")
	}

	m.Update(FrameMsg(start.Add(100 * time.Millisecond)))
	if m.game.Snapshot().Steps != 0 {
		t.Error("100ms is below the MEDIUM interval")
	}

	m.Update(FrameMsg(start.Add(150 * time.Millisecond)))
	snap := m.game.Snapshot()
	if snap.Steps != 1 || snap.Snake[0] != (grid.Coordinate{X: 11, Y: 10}) {
		t.Errorf("Expected one step to (11,10), got %d steps head %v", snap.Steps, snap.Snake[0])
	}
}

func TestModel_DirectionKeys(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	snap := m.game.Snapshot()
	if !snap.HasPending || snap.Pending != grid.Down {
		t.Errorf("Expected pending DOWN, got %v (%v)", snap.Pending, snap.HasPending)
	}

	m.Update(runeKey('k'))
	if got := m.game.Snapshot().Pending; got != grid.Up {
		t.Errorf("Expected k to queue UP, got %v", got)
	}

	m.Update(runeKey('a')) // LEFT reverses RIGHT
	if got := m.game.Snapshot().Pending; got != grid.Up {
		t.Errorf("Reversal should be ignored, got %v", got)
	}
}

func TestModel_PauseKey(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.game.Phase() != state.Paused {
		t.Fatalf("Expected paused, got %s", m.game.Phase())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View should show the pause overlay")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.game.Phase() != state.Running {
		t.Errorf("Expected running, got %s", m.game.Phase())
	}
}

func TestModel_GameOverAndRestart(t *testing.T) {
	m := newTestModel(t)
	g := m.game
	g.State.Snake = []grid.Coordinate{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}}
	g.State.Input = input.NewMapper(grid.Right, 1, nil)
	g.State.Score.CurrentScore = 4
	g.Tick(time.Second)

	if g.Phase() != state.Over {
		t.Fatalf("Expected over, got %s", g.Phase())
	}
	view := m.View()
	if !strings.Contains(view, "Game over! Final score: 4") {
		t.Errorf("View should show the final score, got:\n%s", view)
	}
	if !strings.Contains(view, "You got a high score!") {
		t.Error("First finished game with points is a high score")
	}

	m.Update(runeKey('r'))
	snap := g.Snapshot()
	if snap.Phase != state.Running || snap.Score != 0 || snap.HighScore != 4 {
		t.Errorf("Expected a fresh running game with high score 4, got %+v", snap)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestRenderBoard(t *testing.T) {
	m := newTestModel(t)
	g := m.game
	g.State.Snake = []grid.Coordinate{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}
	g.State.PowerUp = &spawn.PowerUp{Position: grid.Coordinate{X: 7, Y: 7}, Kind: spawn.Multiplier}

	board := renderBoard(g.Snapshot())
	if strings.Count(board, cellHead) != 1 {
		t.Errorf("Expected one head, got:\n%s", board)
	}
	if strings.Count(board, cellBody) != 2 {
		t.Errorf("Expected two body cells, got:\n%s", board)
	}
	if strings.Count(board, cellFood) != 1 {
		t.Errorf("Expected one food, got:\n%s", board)
	}
	if !strings.Contains(board, powerUpGlyphs[spawn.Multiplier]) {
		t.Errorf("Expected the multiplier glyph, got:\n%s", board)
	}
}

func TestRenderStatus(t *testing.T) {
	m := newTestModel(t)
	g := m.game
	g.State.Score.ApplyMultiplier(2, 0, 5*time.Second)
	g.State.Shield = true

	status := renderStatus(g.Snapshot())
	for _, want := range []string{"SCORE: 0", "HIGH: 0", "SPEED: 150ms", "LEVEL: MEDIUM", "x2 (5s)", "SHIELD"} {
		if !strings.Contains(status, want) {
			t.Errorf("Status %q is missing %q", status, want)
		}
	}
}

func TestDifficultyFlag(t *testing.T) {
	var d difficultyFlag
	if err := d.Set("hard"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if d.String() != "HARD" {
		t.Errorf("Expected HARD, got %s", d.String())
	}
	if err := d.Set("impossible"); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}

func TestDirectionFlag(t *testing.T) {
	var d directionFlag
	if err := d.Set("Left"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if grid.Direction(d) != grid.Left || d.String() != "LEFT" {
		t.Errorf("Expected LEFT, got %s", d.String())
	}
	if err := d.Set("sideways"); err == nil {
		t.Error("Expected an error for an unknown direction")
	}
}

func TestFitBoard(t *testing.T) {
	tests := []struct {
		size     int
		keepFood bool
	}{
		{size: 20, keepFood: true},
		{size: 17, keepFood: true},
		{size: 16, keepFood: false}, // (15,15) is on the outer ring
		{size: 10, keepFood: false},
	}

	for _, tt := range tests {
		cfg := config.Default()
		cfg.GridSize = tt.size
		fitBoard(&cfg)

		if (cfg.StartFood != nil) != tt.keepFood {
			t.Errorf("grid %d: expected keepFood=%v, got food %v", tt.size, tt.keepFood, cfg.StartFood)
		}
		if cfg.MaxGridSize < cfg.GridSize {
			t.Errorf("grid %d: max grid %d below grid size", tt.size, cfg.MaxGridSize)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("grid %d: fitted config is invalid: %v", tt.size, err)
		}
	}
}

func TestView_PowerUpLegend(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1
	m, err := initialModel(cfg)
	if err != nil {
		t.Fatalf("initialModel failed: %v", err)
	}
	if !strings.Contains(m.View(), "double points") {
		t.Error("Legend should be shown when power-ups can spawn")
	}

	if strings.Contains(newTestModel(t).View(), "double points") {
		t.Error("Legend should be hidden when power-ups are off")
	}
}
