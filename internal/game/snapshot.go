package game

import (
	"go-snake/internal/difficulty"
	"go-snake/internal/grid"
	"go-snake/internal/scoring"
	"go-snake/internal/spawn"
	"go-snake/internal/state"
	"time"
)

// Snapshot is a read-only copy of the game for one rendered frame. It shares
// no memory with the engine.
type Snapshot struct {
	Snake     []grid.Coordinate
	Food      grid.Coordinate
	PowerUp   *spawn.PowerUp
	Direction grid.Direction
	Pending   grid.Direction
	// HasPending is false when no turn is buffered; Pending then equals Direction.
	HasPending bool

	Score     int
	HighScore int
	Speed     time.Duration
	GridSize  int
	Phase     state.Phase

	ScoreMultiplier     int
	MultiplierRemaining time.Duration
	Shield              bool

	Difficulty   difficulty.Level
	Steps        int
	FoodEaten    int
	GotHighScore bool
	Games        int
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := g.State

	snake := make([]grid.Coordinate, len(s.Snake))
	copy(snake, s.Snake)

	var p *spawn.PowerUp
	if s.PowerUp != nil {
		cp := *s.PowerUp
		p = &cp
	}

	pending, hasPending := s.Input.Pending()

	return Snapshot{
		Snake:      snake,
		Food:       s.Food,
		PowerUp:    p,
		Direction:  s.Input.Current(),
		Pending:    pending,
		HasPending: hasPending,

		Score:     s.Score.CurrentScore,
		HighScore: s.Score.HighScore(),
		Speed:     s.Speed,
		GridSize:  s.GridSize,
		Phase:     s.Phase(),

		ScoreMultiplier:     s.Score.Multiplier,
		MultiplierRemaining: s.Score.MultiplierRemaining(s.Clock),
		Shield:              s.Shield,

		Difficulty:   g.config.Difficulty,
		Steps:        s.Steps,
		FoodEaten:    s.Score.FoodEaten,
		GotHighScore: s.IsOver() && s.Score.GotHighScore(),
		Games:        g.Games,
	}
}

// TopScores lists the best n games of the session at this difficulty, the
// current one included.
func (g *Game) TopScores(n int) []scoring.ScoreHistoryEntry {
	return g.State.Score.GetNScoreEntries(n)
}
