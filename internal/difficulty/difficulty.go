// Package difficulty holds the difficulty levels and the escalation rules
// that speed the game up and grow the board as the score climbs.
package difficulty

import (
	"fmt"
	"strings"
	"time"
)

// Level is chosen once before a run.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

func (l Level) String() string {
	switch l {
	case Easy:
		return "EASY"
	case Medium:
		return "MEDIUM"
	case Hard:
		return "HARD"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return Easy, nil
	case "MEDIUM":
		return Medium, nil
	case "HARD":
		return Hard, nil
	}
	return Medium, fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", s)
}

// Settings is the base tick interval and score multiplier of a level.
type Settings struct {
	Speed      time.Duration
	Multiplier float64
}

// DefaultSettings returns the stock speed/multiplier table.
func DefaultSettings() map[Level]Settings {
	return map[Level]Settings{
		Easy:   {Speed: 200 * time.Millisecond, Multiplier: 1},
		Medium: {Speed: 150 * time.Millisecond, Multiplier: 1.5},
		Hard:   {Speed: 100 * time.Millisecond, Multiplier: 2},
	}
}

// Rules are the escalation constants.
type Rules struct {
	SpeedInterval int           // score multiple that speeds the game up
	SpeedStep     time.Duration // interval reduction per speed-up
	MinSpeed      time.Duration // floor of the tick interval
	GrowInterval  int           // score multiple that grows the board
	GrowStep      int
	MaxGridSize   int
}

// Controller applies Rules at most once per distinct score.
type Controller struct {
	rules      Rules
	lastScored int
}

func NewController(rules Rules) *Controller {
	return &Controller{rules: rules}
}

// OnScored returns the tick interval and board size after score was reached.
// Repeating the same score is a no-op.
func (c *Controller) OnScored(score int, speed time.Duration, gridSize int) (time.Duration, int) {
	if score <= 0 || score == c.lastScored {
		return speed, gridSize
	}
	c.lastScored = score

	if c.rules.SpeedInterval > 0 && score%c.rules.SpeedInterval == 0 {
		speed = SpeedUp(speed, c.rules.SpeedStep, c.rules.MinSpeed)
	}
	if c.rules.GrowInterval > 0 && score%c.rules.GrowInterval == 0 {
		gridSize = min(gridSize+c.rules.GrowStep, c.rules.MaxGridSize)
	}
	return speed, gridSize
}

// Reset forgets the last escalation, for a new game.
func (c *Controller) Reset() {
	c.lastScored = 0
}

// SpeedUp shortens the interval by step without going below floor.
func SpeedUp(interval, step, floor time.Duration) time.Duration {
	return max(interval-step, floor)
}
